package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// newTestDB 创建内存SQLite测试库
// MaxOpenConns(1):内存库每个连接是独立数据库,必须限制为单连接
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(gdb))
	return gdb
}

func strPtr(s string) *string {
	return &s
}

func TestBookRepository_CreateAndFind(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBookRepository(gdb)
	ctx := context.Background()

	t.Run("创建后回填ID与时间戳", func(t *testing.T) {
		b := book.NewBook("Dune", "Frank Herbert", strPtr("A science fiction classic"))
		err := repo.Create(ctx, b)
		require.NoError(t, err)

		assert.NotZero(t, b.ID)
		assert.False(t, b.CreatedAt.IsZero())
		assert.False(t, b.UpdatedAt.IsZero())

		found, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dune", found.Title)
		assert.Equal(t, "Frank Herbert", found.Author)
		require.NotNil(t, found.Description)
		assert.Equal(t, "A science fiction classic", *found.Description)
	})

	t.Run("描述可以为空", func(t *testing.T) {
		b := book.NewBook("Neuromancer", "William Gibson", nil)
		require.NoError(t, repo.Create(ctx, b))

		found, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Nil(t, found.Description)
	})

	t.Run("书名重复返回冲突错误", func(t *testing.T) {
		dup := book.NewBook("Dune", "Someone Else", nil)
		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, book.ErrTitleDuplicate)
	})

	t.Run("按书名查找", func(t *testing.T) {
		found, err := repo.FindByTitle(ctx, "Dune")
		require.NoError(t, err)
		assert.Equal(t, "Frank Herbert", found.Author)

		_, err = repo.FindByTitle(ctx, "No Such Book")
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("不存在的ID返回未找到", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 99999)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestBookRepository_Update(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBookRepository(gdb)
	ctx := context.Background()

	b := book.NewBook("Dune", "Frank Herbert", nil)
	require.NoError(t, repo.Create(ctx, b))
	other := book.NewBook("Dune Messiah", "Frank Herbert", nil)
	require.NoError(t, repo.Create(ctx, other))

	t.Run("更新刷新UpdatedAt并保留CreatedAt", func(t *testing.T) {
		createdAt := b.CreatedAt
		time.Sleep(20 * time.Millisecond)

		b.ApplyUpdate("Dune (Revised)", "Frank Herbert", strPtr("New edition"))
		require.NoError(t, repo.Update(ctx, b))

		found, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dune (Revised)", found.Title)
		assert.Equal(t, createdAt.Unix(), found.CreatedAt.Unix())
		assert.True(t, found.UpdatedAt.After(found.CreatedAt))
	})

	t.Run("改成已占用的书名返回冲突错误", func(t *testing.T) {
		b.Title = "Dune Messiah"
		err := repo.Update(ctx, b)
		assert.ErrorIs(t, err, book.ErrTitleDuplicate)
	})
}

func TestBookRepository_Delete(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBookRepository(gdb)
	ctx := context.Background()

	b := book.NewBook("Dune", "Frank Herbert", nil)
	require.NoError(t, repo.Create(ctx, b))

	t.Run("删除后查不到", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, b.ID))

		_, err := repo.FindByID(ctx, b.ID)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("重复删除返回未找到", func(t *testing.T) {
		err := repo.Delete(ctx, b.ID)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestBookRepository_List(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBookRepository(gdb)
	ctx := context.Background()

	// 25本书:奇数号是Fitzgerald,偶数号是Hemingway
	for i := 1; i <= 25; i++ {
		author := "F. Scott Fitzgerald"
		if i%2 == 0 {
			author = "Ernest Hemingway"
		}
		b := book.NewBook(fmt.Sprintf("Book %02d", i), author, nil)
		require.NoError(t, repo.Create(ctx, b))
	}

	t.Run("分页按ID升序且页间不重叠", func(t *testing.T) {
		page1, total, err := repo.List(ctx, book.ListParams{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)
		require.Len(t, page1, 10)

		page2, _, err := repo.List(ctx, book.ListParams{Page: 2, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, page2, 10)

		page3, _, err := repo.List(ctx, book.ListParams{Page: 3, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, page3, 5)

		assert.Equal(t, "Book 01", page1[0].Title)
		assert.Equal(t, "Book 11", page2[0].Title)
		assert.Equal(t, "Book 21", page3[0].Title)
		assert.Less(t, page1[9].ID, page2[0].ID)
	})

	t.Run("超出范围的页返回空列表", func(t *testing.T) {
		books, total, err := repo.List(ctx, book.ListParams{Page: 99, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)
		assert.Empty(t, books)
	})

	t.Run("作者过滤大小写不敏感子串匹配", func(t *testing.T) {
		books, total, err := repo.List(ctx, book.ListParams{Page: 1, PageSize: 100, Author: "fitz"})
		require.NoError(t, err)
		assert.Equal(t, int64(13), total)
		for _, b := range books {
			assert.Equal(t, "F. Scott Fitzgerald", b.Author)
		}
	})

	t.Run("无匹配作者返回空列表", func(t *testing.T) {
		books, total, err := repo.List(ctx, book.ListParams{Page: 1, PageSize: 10, Author: "tolkien"})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, books)
	})
}

func TestBookRepository_CountByAuthor(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBookRepository(gdb)
	ctx := context.Background()

	seed := []struct {
		title  string
		author string
	}{
		{"The Great Gatsby", "F. Scott Fitzgerald"},
		{"Tender Is the Night", "F. Scott Fitzgerald"},
		{"This Side of Paradise", "F. Scott Fitzgerald"},
		{"The Old Man and the Sea", "Ernest Hemingway"},
		{"A Farewell to Arms", "Ernest Hemingway"},
		{"Dune", "Frank Herbert"},
	}
	for _, s := range seed {
		require.NoError(t, repo.Create(ctx, book.NewBook(s.title, s.author, nil)))
	}

	t.Run("按计数降序且过滤最小计数", func(t *testing.T) {
		counts, err := repo.CountByAuthor(ctx, 2)
		require.NoError(t, err)
		require.Len(t, counts, 2)
		assert.Equal(t, "F. Scott Fitzgerald", counts[0].Author)
		assert.Equal(t, int64(3), counts[0].Count)
		assert.Equal(t, "Ernest Hemingway", counts[1].Author)
		assert.Equal(t, int64(2), counts[1].Count)
	})

	t.Run("默认阈值包含所有作者", func(t *testing.T) {
		counts, err := repo.CountByAuthor(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, counts, 3)
	})

	t.Run("阈值过高返回空列表", func(t *testing.T) {
		counts, err := repo.CountByAuthor(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, counts)
	})
}

func TestTxManager_Rollback(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBookRepository(gdb)
	txManager := NewTxManager(gdb)
	ctx := context.Background()

	t.Run("事务内任一失败则全部回滚", func(t *testing.T) {
		err := txManager.Transaction(ctx, func(txCtx context.Context) error {
			if err := repo.Create(txCtx, book.NewBook("Dune", "Frank Herbert", nil)); err != nil {
				return err
			}
			if err := repo.Create(txCtx, book.NewBook("Dune Messiah", "Frank Herbert", nil)); err != nil {
				return err
			}
			// 书名重复触发回滚
			return repo.Create(txCtx, book.NewBook("Dune", "Someone Else", nil))
		})
		assert.ErrorIs(t, err, book.ErrTitleDuplicate)

		_, total, listErr := repo.List(ctx, book.ListParams{Page: 1, PageSize: 10})
		require.NoError(t, listErr)
		assert.Zero(t, total)
	})

	t.Run("事务成功则全部提交", func(t *testing.T) {
		err := txManager.Transaction(ctx, func(txCtx context.Context) error {
			if err := repo.Create(txCtx, book.NewBook("Dune", "Frank Herbert", nil)); err != nil {
				return err
			}
			return repo.Create(txCtx, book.NewBook("Dune Messiah", "Frank Herbert", nil))
		})
		require.NoError(t, err)

		_, total, listErr := repo.List(ctx, book.ListParams{Page: 1, PageSize: 10})
		require.NoError(t, listErr)
		assert.Equal(t, int64(2), total)
	})
}
