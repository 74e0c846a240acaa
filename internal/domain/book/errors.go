package book

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.KindNotFound, "book not found")

	// ErrTitleDuplicate 书名已存在
	ErrTitleDuplicate = apperrors.New(apperrors.KindConflict, "a book with this title already exists")

	// ErrEmptyTitle 书名为空(去除首尾空白后)
	ErrEmptyTitle = apperrors.New(apperrors.KindValidation, "title cannot be empty")

	// ErrEmptyAuthor 作者为空(去除首尾空白后)
	ErrEmptyAuthor = apperrors.New(apperrors.KindValidation, "author cannot be empty")

	// ErrEmptyBulkList 批量创建列表为空
	ErrEmptyBulkList = apperrors.New(apperrors.KindValidation, "bulk create list cannot be empty")
)
