package db

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// bookRepository 图书仓储实现
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 数据库特定错误(书名重复)转换为业务错误
// 4. 所有读写通过getDB(ctx),以便加入TxManager开启的事务
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
	}

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrTitleDuplicate
		}
		return apperrors.Wrap(err, "failed to create book")
	}

	// 回填自增ID与数据库时间戳
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query book")
	}

	return toBookEntity(&model), nil
}

// FindByTitle 根据书名查找图书
func (r *bookRepository) FindByTitle(ctx context.Context, title string) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).Where("title = ?", title).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query book")
	}

	return toBookEntity(&model), nil
}

// Update 保存图书全部字段
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}

	// Save更新所有字段,autoUpdateTime刷新UpdatedAt
	if err := r.getDB(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrTitleDuplicate
		}
		return apperrors.Wrap(err, "failed to update book")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 物理删除图书
// RowsAffected为0时视为不存在,重复删除同样返回ErrBookNotFound
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete book")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// List 分页查询图书列表
// 按ID升序保证分页稳定;作者过滤为大小写不敏感的子串匹配
// LOWER(...) LIKE LOWER(...)在MySQL与SQLite下行为一致
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := r.getDB(ctx).Model(&BookModel{})

	if params.Author != "" {
		pattern := "%" + strings.ToLower(params.Author) + "%"
		query = query.Where("LOWER(author) LIKE ?", pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count books")
	}

	offset := (params.Page - 1) * params.PageSize
	err := query.Order("id ASC").Limit(params.PageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list books")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// CountByAuthor 按作者分组计数
// HAVING过滤最小计数;计数降序+作者升序保证结果确定
func (r *bookRepository) CountByAuthor(ctx context.Context, minCount int) ([]book.AuthorCount, error) {
	var rows []struct {
		Author    string
		BookCount int64
	}

	err := r.getDB(ctx).
		Model(&BookModel{}).
		Select("author, COUNT(id) AS book_count").
		Group("author").
		Having("COUNT(id) >= ?", minCount).
		Order("book_count DESC, author ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to aggregate books by author")
	}

	counts := make([]book.AuthorCount, len(rows))
	for i, row := range rows {
		counts[i] = book.AuthorCount{
			Author: row.Author,
			Count:  row.BookCount,
		}
	}

	return counts, nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:          model.ID,
		Title:       model.Title,
		Author:      model.Author,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// getDB 从context获取事务DB,没有则使用默认连接
func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}
