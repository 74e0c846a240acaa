package book

import (
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. Title是业务唯一标识(数据库层保证唯一性)
// 2. Description可为空,使用*string区分"无描述"与空字符串
// 3. CreatedAt创建后不再变化,UpdatedAt随每次成功修改刷新
type Book struct {
	ID          uint
	Title       string  // 书名(全局唯一,最长200字符)
	Author      string  // 作者(最长100字符,可重复,用作过滤/分组键)
	Description *string // 描述(可选,最长1000字符)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
// 调用方需先完成格式校验(非空、长度)
func NewBook(title, author string, description *string) *Book {
	now := time.Now()
	return &Book{
		Title:       title,
		Author:      author,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyUpdate 全量更新可变字段(PUT语义)
// description为nil时清空描述
func (b *Book) ApplyUpdate(title, author string, description *string) {
	b.Title = title
	b.Author = author
	b.Description = description
	b.UpdatedAt = time.Now()
}

// ApplyPatch 按提供的字段部分更新(PATCH语义)
// nil字段保持原值
func (b *Book) ApplyPatch(patch Patch) {
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Author != nil {
		b.Author = *patch.Author
	}
	if patch.Description != nil {
		b.Description = patch.Description
	}
	b.UpdatedAt = time.Now()
}

// Patch 部分更新字段集
// nil表示"未提供,保持原值"
type Patch struct {
	Title       *string
	Author      *string
	Description *string
}
