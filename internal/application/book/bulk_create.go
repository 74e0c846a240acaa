package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// BulkCreateUseCase 批量创建用例
// 整批在同一事务中执行:任意一条违反约束(如书名重复),
// 全部回滚,不留下任何已插入的行
type BulkCreateUseCase struct {
	bookService book.Service
	txManager   book.TxManager
}

// NewBulkCreateUseCase 创建批量用例
func NewBulkCreateUseCase(bookService book.Service, txManager book.TxManager) *BulkCreateUseCase {
	return &BulkCreateUseCase{
		bookService: bookService,
		txManager:   txManager,
	}
}

// BulkCreateRequest 批量创建请求DTO
type BulkCreateRequest struct {
	Items []CreateBookRequest
}

// Execute 执行批量创建
// 提交前并发读者看不到任何部分写入;失败时返回触发错误
func (uc *BulkCreateUseCase) Execute(ctx context.Context, req BulkCreateRequest) ([]BookResult, error) {
	if len(req.Items) == 0 {
		return nil, book.ErrEmptyBulkList
	}

	results := make([]BookResult, 0, len(req.Items))
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		for _, item := range req.Items {
			b, err := uc.bookService.CreateBook(txCtx, item.Title, item.Author, item.Description)
			if err != nil {
				return err // 整批回滚
			}
			results = append(results, *toBookResult(b))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for range results {
		metrics.IncCounter(metrics.BooksCreatedTotal)
	}

	return results, nil
}
