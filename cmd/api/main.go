package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookshelf/docs"
	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/db"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// @title        Bookshelf CRUD Service
// @version      1.0
// @description  图书CRUD服务:分页、作者过滤、作者聚合统计、事务批量创建
// @BasePath     /api/v1

// main 主程序入口
// 依赖注入链:Repository ← Service ← UseCase ← Handler
// (wire.go提供编译期自动组装的版本,这里保留手动组装)
func main() {
	// .env可选,缺失时直接使用系统环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	metrics.InitMetrics()

	// 数据库连接(进程级资源,启动时获取,退出时随进程释放)
	// NewDB内部完成建表迁移,保证首个请求前表已存在
	gormDB, err := db.NewDB(cfg)
	if err != nil {
		zlog.Fatal("init database", zap.Error(err))
	}

	// 基础设施层
	bookRepo := db.NewBookRepository(gormDB)
	txManager := db.NewTxManager(gormDB)

	// 领域层
	bookService := book.NewService(bookRepo)

	// 应用层
	createBook := appbook.NewCreateBookUseCase(bookService)
	getBook := appbook.NewGetBookUseCase(bookService)
	listBooks := appbook.NewListBooksUseCase(bookService)
	updateBook := appbook.NewUpdateBookUseCase(bookService)
	patchBook := appbook.NewPatchBookUseCase(bookService)
	deleteBook := appbook.NewDeleteBookUseCase(bookService)
	authorStats := appbook.NewAuthorStatsUseCase(bookService)
	bulkCreate := appbook.NewBulkCreateUseCase(bookService, txManager)

	// 接口层
	bookHandler := handler.NewBookHandler(
		createBook, getBook, listBooks, updateBook,
		patchBook, deleteBook, authorStats, bulkCreate,
	)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.CORS(),
		middleware.Logger(zlog),
		middleware.Metrics(),
	)
	registerRoutes(r, bookHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()
	zlog.Info("server started", zap.Int("port", cfg.Server.Port), zap.String("mode", cfg.Server.Mode))

	// 优雅关停:等待SIGINT/SIGTERM,给在途请求10秒
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("shutdown", zap.Error(err))
	}
	zlog.Info("server stopped")
}

// registerRoutes 注册路由
func registerRoutes(r *gin.Engine, bookHandler *handler.BookHandler) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		items := v1.Group("/items")
		{
			items.POST("/", bookHandler.CreateBook)
			items.GET("/", bookHandler.ListBooks)
			items.POST("/bulk", bookHandler.BulkCreate)
			items.GET("/stats/authors", bookHandler.AuthorStats)
			items.GET("/:id", bookHandler.GetBook)
			items.PUT("/:id", bookHandler.UpdateBook)
			items.PATCH("/:id", bookHandler.PatchBook)
			items.DELETE("/:id", bookHandler.DeleteBook)
		}
	}
}
