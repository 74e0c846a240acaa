package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// 分页参数钳制边界
// 超出范围的值被钳制而非拒绝(文档化的策略选择)
const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ListBooksUseCase 图书列表查询用例
// 支持分页与作者过滤(大小写不敏感子串匹配)
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Author   string // 作者过滤,空串表示不过滤
}

// ListBooksResult 列表查询响应DTO
type ListBooksResult struct {
	Items      []BookResult `json:"items"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
}

// Execute 执行列表查询
// 参数钳制:page<1→1, page_size<1→10, page_size>100→100
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResult, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = defaultPageSize
	}
	if req.PageSize > maxPageSize {
		req.PageSize = maxPageSize
	}

	books, total, err := uc.bookService.ListBooks(ctx, book.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Author:   req.Author,
	})
	if err != nil {
		return nil, err
	}

	items := make([]BookResult, len(books))
	for i, b := range books {
		items[i] = *toBookResult(b)
	}

	// 向上取整计算总页数
	totalPages := int((total + int64(req.PageSize) - 1) / int64(req.PageSize))

	return &ListBooksResult{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}, nil
}
