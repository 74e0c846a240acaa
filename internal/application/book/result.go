package book

import (
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// timeLayout 响应中时间戳的格式
const timeLayout = "2006-01-02 15:04:05"

// BookResult 图书DTO(各用例共用的输出形状)
// description为null表示无描述
type BookResult struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// toBookResult 领域实体 → DTO
func toBookResult(b *book.Book) *BookResult {
	return &BookResult{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		CreatedAt:   b.CreatedAt.Format(timeLayout),
		UpdatedAt:   b.UpdatedAt.Format(timeLayout),
	}
}
