package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// AuthorStatsUseCase 作者统计用例
// 按作者分组计数,保留计数>=min_count的分组,按计数降序返回
type AuthorStatsUseCase struct {
	bookService book.Service
}

// NewAuthorStatsUseCase 创建作者统计用例
func NewAuthorStatsUseCase(bookService book.Service) *AuthorStatsUseCase {
	return &AuthorStatsUseCase{bookService: bookService}
}

// AuthorCountResult 作者计数DTO
type AuthorCountResult struct {
	Author    string `json:"author"`
	BookCount int64  `json:"book_count"`
}

// Execute 执行作者统计
// minCount<1时钳制为1(每个有图书的作者都计入)
func (uc *AuthorStatsUseCase) Execute(ctx context.Context, minCount int) ([]AuthorCountResult, error) {
	if minCount < 1 {
		minCount = 1
	}

	counts, err := uc.bookService.CountByAuthor(ctx, minCount)
	if err != nil {
		return nil, err
	}

	results := make([]AuthorCountResult, len(counts))
	for i, c := range counts {
		results[i] = AuthorCountResult{
			Author:    c.Author,
			BookCount: c.Count,
		}
	}

	return results, nil
}
