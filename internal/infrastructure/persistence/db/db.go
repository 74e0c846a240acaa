package db

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
)

// defaultSQLitePath 未配置DSN时的本地开发数据库
const defaultSQLitePath = "crud_service.db"

// NewDB 创建数据库连接
// 设计说明:
// 1. 使用GORM v2,TranslateError开启后各驱动的唯一索引冲突统一为gorm.ErrDuplicatedKey
// 2. DSN决定驱动:MySQL连接串 → mysql,其余 → sqlite(含空串回退)
// 3. 启动时AutoMigrate保证表存在(幂等,只增不删)
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(openDialector(cfg.Database.DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}

// openDialector 根据DSN选择驱动
func openDialector(dsn string) gorm.Dialector {
	switch {
	case dsn == "":
		return sqlite.Open(defaultSQLitePath)
	case strings.Contains(dsn, "@tcp("):
		return mysql.Open(dsn)
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(dsn, "sqlite://"))
	default:
		return sqlite.Open(dsn)
	}
}

// AutoMigrate 迁移表结构(幂等)
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&BookModel{},
	)
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain/book/entity.go是领域实体,不依赖GORM,Repository负责转换
// 3. Title唯一索引保证全局唯一;Author普通索引支撑过滤/分组查询
// 4. 无DeletedAt:删除是物理删除,不可恢复
type BookModel struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"uniqueIndex:uq_book_title;size:200;not null"`
	Author      string    `gorm:"index;size:100;not null"`
	Description *string   `gorm:"size:1000"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}
