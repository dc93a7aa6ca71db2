package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appauthor "github.com/xiebiao/library/internal/application/author"
	appbook "github.com/xiebiao/library/internal/application/book"
	appcategory "github.com/xiebiao/library/internal/application/category"
	apporder "github.com/xiebiao/library/internal/application/order"
	appstudent "github.com/xiebiao/library/internal/application/student"
	appuser "github.com/xiebiao/library/internal/application/user"
	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/library/internal/infrastructure/storage"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	"github.com/xiebiao/library/pkg/jwt"
	"github.com/xiebiao/library/pkg/logger"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/response"
)

// @title           图书馆管理系统 API
// @version         1.0
// @description     图书/作者/分类/学生管理与借还书流程,基于JWT的ADMIN/STUDENT角色鉴权
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

// main 主程序入口
// 说明:手动依赖注入,组装顺序 Repository → Service → UseCase → Handler
// (wire.go提供等价的Wire注入器,运行wire gen可生成wire_gen.go替代手动组装)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志与指标
	if err := logger.Init(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	}); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	metrics.InitMetrics()

	logrus.WithFields(logrus.Fields{
		"port":     cfg.Server.Port,
		"mode":     cfg.Server.Mode,
		"database": fmt.Sprintf("%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName),
		"redis":    cfg.Redis.Addr(),
	}).Info("配置加载成功")

	// 3. 初始化外部连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	s3Client, err := storage.NewS3Client(cfg)
	if err != nil {
		log.Fatalf("初始化S3客户端失败: %v", err)
	}

	// 4. 依赖注入(手动组装)
	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	authorRepo := mysql.NewAuthorRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	studentRepo := mysql.NewStudentRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	uploader := storage.NewUploader(s3Client, cfg)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)

	// 应用层
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore, cfg)
	seedUseCase := appuser.NewSeedUseCase(userRepo, userService, cfg)

	saveBookUseCase := appbook.NewSaveBookUseCase(bookRepo, authorRepo, categoryRepo, uploader)
	listBooksUseCase := appbook.NewListBooksUseCase(bookRepo, authorRepo, categoryRepo)
	getBookUseCase := appbook.NewGetBookUseCase(bookRepo, authorRepo, categoryRepo)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookRepo)
	updateCoverUseCase := appbook.NewUpdateCoverUseCase(bookRepo, uploader)

	authorUseCase := appauthor.NewManageAuthorsUseCase(authorRepo)
	categoryUseCase := appcategory.NewManageCategoriesUseCase(categoryRepo)
	studentUseCase := appstudent.NewManageStudentsUseCase(studentRepo)

	borrowBookUseCase := apporder.NewBorrowBookUseCase(orderRepo, bookRepo, studentRepo, txManager)
	returnBookUseCase := apporder.NewReturnBookUseCase(orderRepo, bookRepo, txManager)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo, bookRepo, studentRepo)

	// 接口层
	userHandler := handler.NewUserHandler(loginUseCase, logoutUseCase, jwtManager)
	bookHandler := handler.NewBookHandler(saveBookUseCase, listBooksUseCase, getBookUseCase, deleteBookUseCase, updateCoverUseCase)
	catalogHandler := handler.NewCatalogHandler(authorUseCase, categoryUseCase)
	studentHandler := handler.NewStudentHandler(studentUseCase)
	orderHandler := handler.NewOrderHandler(borrowBookUseCase, returnBookUseCase, listOrdersUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 5. 种子数据:默认管理员与学生账号(幂等)
	if err := seedUseCase.Execute(context.Background()); err != nil {
		log.Fatalf("初始化种子数据失败: %v", err)
	}

	// 6. 初始化Gin引擎并注册路由
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.Metrics())

	registerRoutes(r, userHandler, bookHandler, catalogHandler, studentHandler, orderHandler, authMiddleware)

	// 7. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logrus.WithField("addr", addr).Info("服务启动")
	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
// 权限划分(角色来自JWT Claims):
// - /api/v1/auth/**: 公开(登出除外)
// - /api/v1/admin/**: 仅ADMIN
// - /api/v1/student/**: 仅STUDENT
// - 其余已登录即可访问(图书/作者/分类的只读接口)
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	catalogHandler *handler.CatalogHandler,
	studentHandler *handler.StudentHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档: http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// 认证模块
	auth := v1.Group("/auth")
	{
		auth.POST("/login", userHandler.Login)
		auth.POST("/refresh", userHandler.RefreshToken)
		auth.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
	}

	// 只读接口:登录即可访问(管理员与学生共用)
	authorized := v1.Group("", authMiddleware.RequireAuth())
	{
		authorized.GET("/books", bookHandler.ListBooks)
		authorized.GET("/books/:id", bookHandler.GetBook)
		authorized.GET("/authors", catalogHandler.ListAuthors)
		authorized.GET("/authors/:id", catalogHandler.GetAuthor)
		authorized.GET("/categories", catalogHandler.ListCategories)
		authorized.GET("/categories/:id", catalogHandler.GetCategory)
		authorized.GET("/categories/:id/books", bookHandler.ListBooksByCategory)
	}

	// 管理端:仅ADMIN
	admin := v1.Group("/admin", authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
	{
		admin.POST("/books", bookHandler.CreateBook)
		admin.PUT("/books/:id", bookHandler.UpdateBook)
		admin.PUT("/books/:id/cover", bookHandler.UpdateCover)
		admin.DELETE("/books/:id", bookHandler.DeleteBook)

		admin.POST("/authors", catalogHandler.CreateAuthor)
		admin.PUT("/authors/:id", catalogHandler.UpdateAuthor)
		admin.DELETE("/authors/:id", catalogHandler.DeleteAuthor)

		admin.POST("/categories", catalogHandler.CreateCategory)
		admin.PUT("/categories/:id", catalogHandler.UpdateCategory)
		admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)

		admin.GET("/students", studentHandler.ListStudents)
		admin.GET("/students/:id", studentHandler.GetStudent)
		admin.POST("/students", studentHandler.CreateStudent)
		admin.PUT("/students/:id", studentHandler.UpdateStudent)
		admin.DELETE("/students/:id", studentHandler.DeleteStudent)

		admin.GET("/orders", orderHandler.ListOrders)
		admin.GET("/students/:id/orders", orderHandler.ListOrdersByStudent)
	}

	// 学生端:仅STUDENT
	student := v1.Group("/student", authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleStudent))
	{
		student.POST("/orders", orderHandler.BorrowBook)
		student.POST("/orders/:id/return", orderHandler.ReturnBook)
	}
}
