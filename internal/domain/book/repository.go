package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 图书行的读写全部经由Repository,其他组件不直接触碰持久化状态
type Repository interface {
	// Create 创建图书,回填自增ID与时间戳
	// 书名冲突返回ErrTitleDuplicate
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByTitle 根据书名查找图书,不存在返回ErrBookNotFound
	FindByTitle(ctx context.Context, title string) (*Book, error)

	// Update 保存图书全部字段,刷新UpdatedAt
	// 书名与其他行冲突返回ErrTitleDuplicate
	Update(ctx context.Context, book *Book) error

	// Delete 物理删除图书,不存在返回ErrBookNotFound
	// 重复删除同样返回ErrBookNotFound,不产生副作用
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表,按ID升序(稳定、确定)
	// 返回当前页数据与过滤后的总数
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// CountByAuthor 按作者分组计数,保留计数>=minCount的分组
	// 按计数降序排列,计数相同按作者名升序(保证确定性)
	CountByAuthor(ctx context.Context, minCount int) ([]AuthorCount, error)
}

// TxManager 事务管理器接口
// fn内的所有Repository操作在同一事务中执行:
// fn返回error时回滚,返回nil时提交
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始,调用方已钳制)
	PageSize int    // 每页数量(1-100,调用方已钳制)
	Author   string // 作者过滤(大小写不敏感的子串匹配),空串表示不过滤
}

// AuthorCount 作者分组计数
type AuthorCount struct {
	Author string
	Count  int64
}
