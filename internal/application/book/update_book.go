package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// UpdateBookUseCase 全量更新用例(PUT语义)
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建全量更新用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// UpdateBookRequest 全量更新请求DTO
// description为nil时清空描述
type UpdateBookRequest struct {
	Title       string
	Author      string
	Description *string
}

// Execute 执行全量更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, req UpdateBookRequest) (*BookResult, error) {
	b, err := uc.bookService.UpdateBook(ctx, id, req.Title, req.Author, req.Description)
	if err != nil {
		return nil, err
	}

	return toBookResult(b), nil
}

// PatchBookUseCase 部分更新用例(PATCH语义)
// 只应用请求中提供的字段,未提供的保持原值
type PatchBookUseCase struct {
	bookService book.Service
}

// NewPatchBookUseCase 创建部分更新用例
func NewPatchBookUseCase(bookService book.Service) *PatchBookUseCase {
	return &PatchBookUseCase{bookService: bookService}
}

// PatchBookRequest 部分更新请求DTO
// nil字段表示"未提供"
type PatchBookRequest struct {
	Title       *string
	Author      *string
	Description *string
}

// Execute 执行部分更新
func (uc *PatchBookUseCase) Execute(ctx context.Context, id uint, req PatchBookRequest) (*BookResult, error) {
	b, err := uc.bookService.PatchBook(ctx, id, book.Patch{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	return toBookResult(b), nil
}
