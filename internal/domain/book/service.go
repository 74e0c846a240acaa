package book

import (
	"context"
	"errors"
	"strings"
)

// Service 图书领域服务接口
// 封装跨操作的业务规则:非空校验、书名唯一性预检
type Service interface {
	// CreateBook 创建图书
	// 业务规则:
	// - title/author去除首尾空白后不能为空
	// - title不能与已有图书重复
	CreateBook(ctx context.Context, title, author string, description *string) (*Book, error)

	// GetBook 根据ID获取图书
	GetBook(ctx context.Context, id uint) (*Book, error)

	// ListBooks 分页查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// UpdateBook 全量更新(PUT语义)
	// 新书名与其他行冲突返回ErrTitleDuplicate
	UpdateBook(ctx context.Context, id uint, title, author string, description *string) (*Book, error)

	// PatchBook 部分更新(PATCH语义),只应用patch中非nil的字段
	PatchBook(ctx context.Context, id uint, patch Patch) (*Book, error)

	// DeleteBook 删除图书(物理删除,不可恢复)
	DeleteBook(ctx context.Context, id uint) error

	// CountByAuthor 按作者分组计数
	CountByAuthor(ctx context.Context, minCount int) ([]AuthorCount, error)
}

type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, title, author string, description *string) (*Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	if title == "" {
		return nil, ErrEmptyTitle
	}
	if author == "" {
		return nil, ErrEmptyAuthor
	}

	// 书名唯一性预检(数据库唯一索引是最终保障)
	if err := s.checkTitleFree(ctx, title, 0); err != nil {
		return nil, err
	}

	b := NewBook(title, author, description)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// UpdateBook 全量更新
func (s *service) UpdateBook(ctx context.Context, id uint, title, author string, description *string) (*Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	if title == "" {
		return nil, ErrEmptyTitle
	}
	if author == "" {
		return nil, ErrEmptyAuthor
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != b.Title {
		if err := s.checkTitleFree(ctx, title, b.ID); err != nil {
			return nil, err
		}
	}

	b.ApplyUpdate(title, author, description)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// PatchBook 部分更新
func (s *service) PatchBook(ctx context.Context, id uint, patch Patch) (*Book, error) {
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		if trimmed == "" {
			return nil, ErrEmptyTitle
		}
		patch.Title = &trimmed
	}
	if patch.Author != nil {
		trimmed := strings.TrimSpace(*patch.Author)
		if trimmed == "" {
			return nil, ErrEmptyAuthor
		}
		patch.Author = &trimmed
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil && *patch.Title != b.Title {
		if err := s.checkTitleFree(ctx, *patch.Title, b.ID); err != nil {
			return nil, err
		}
	}

	b.ApplyPatch(patch)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// CountByAuthor 按作者分组计数
func (s *service) CountByAuthor(ctx context.Context, minCount int) ([]AuthorCount, error) {
	return s.repo.CountByAuthor(ctx, minCount)
}

// checkTitleFree 校验书名未被其他图书占用
// selfID>0时排除自身(更新场景)
func (s *service) checkTitleFree(ctx context.Context, title string, selfID uint) error {
	existing, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrTitleDuplicate
	}
	return nil
}
