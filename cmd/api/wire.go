//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入不同,Wire在编译期生成代码
// 3. 优势:零运行时开销、类型安全、编译期检测循环依赖
//
// 工作流程:
// Step 1: 编写wire.go(本文件),定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go,包含完整的依赖创建代码

package main

import (
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

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
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
	storage.NewS3Client,
	wire.Bind(new(storage.ObjectPutter), new(*awss3.Client)),
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewBookRepository,
	mysql.NewAuthorRepository,
	mysql.NewCategoryRepository,
	mysql.NewStudentRepository,
	mysql.NewOrderRepository,
	mysql.NewTxManager,
	wire.Bind(new(apporder.TxManager), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewSeedUseCase,
	appbook.NewSaveBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewUpdateCoverUseCase,
	appauthor.NewManageAuthorsUseCase,
	appcategory.NewManageCategoriesUseCase,
	appstudent.NewManageStudentsUseCase,
	apporder.NewBorrowBookUseCase,
	apporder.NewReturnBookUseCase,
	apporder.NewListOrdersUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	middleware.NewAuthMiddleware,
)

// storageSet 对象存储依赖
var storageSet = wire.NewSet(
	storage.NewUploader,
	wire.Bind(new(appbook.CoverStorage), new(*storage.Uploader)),
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewBookHandler,
	handler.NewCatalogHandler,
	handler.NewStudentHandler,
	handler.NewOrderHandler,
)

// provideJWTManager 从配置创建JWT管理器
// Wire无法自动从Config提取字段参数,需要手动编写Provider
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建会话存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	catalogHandler *handler.CatalogHandler,
	studentHandler *handler.StudentHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.Metrics())

	registerRoutes(r, userHandler, bookHandler, catalogHandler, studentHandler, orderHandler, authMiddleware)
	return r
}

// InitializeApp 初始化整个应用(Wire Injector)
// Wire会按依赖链自动调用所有构造函数:
// *gin.Engine ← Handler ← UseCase ← Service/Repository ← *gorm.DB ← *config.Config
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		storageSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
