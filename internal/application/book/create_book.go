package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// CreateBookUseCase 创建图书用例
// 应用层只负责流程编排,业务规则校验由领域服务负责
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// CreateBookRequest 创建请求DTO
type CreateBookRequest struct {
	Title       string  // 书名(必填)
	Author      string  // 作者(必填)
	Description *string // 描述(可选)
}

// Execute 执行创建用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookResult, error) {
	b, err := uc.bookService.CreateBook(ctx, req.Title, req.Author, req.Description)
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.BooksCreatedTotal)

	return toBookResult(b), nil
}
