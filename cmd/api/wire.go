//go:build wireinject
// +build wireinject

package main

// 设计说明：Wire依赖注入
//
// 本文件与main.go中的手动注入等价，演示Google Wire的用法：
//  1. 定义ProviderSet（按架构分层组织）
//  2. 编写Injector函数（函数体只是声明，不会真正执行）
//  3. 运行 `wire gen ./cmd/api` 生成 wire_gen.go
//
// 学习要点：
//  1. wire.Bind 把接口绑定到具体实现（应用层依赖接口，基础设施层提供实现）
//  2. 自定义Provider处理需要从配置取参数、或按开关决定是否创建的依赖
//  3. Wire在编译期生成代码，没有运行时反射开销

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appauthor "github.com/xiebiao/bookdepot/internal/application/author"
	appbook "github.com/xiebiao/bookdepot/internal/application/book"
	appcustomer "github.com/xiebiao/bookdepot/internal/application/customer"
	apporder "github.com/xiebiao/bookdepot/internal/application/order"
	appschema "github.com/xiebiao/bookdepot/internal/application/schema"
	"github.com/xiebiao/bookdepot/internal/domain/book"
	"github.com/xiebiao/bookdepot/internal/domain/customer"
	"github.com/xiebiao/bookdepot/internal/infrastructure/config"
	"github.com/xiebiao/bookdepot/internal/infrastructure/events"
	"github.com/xiebiao/bookdepot/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookdepot/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookdepot/internal/interface/http/handler"
	"github.com/xiebiao/bookdepot/internal/interface/http/middleware"
	"github.com/xiebiao/bookdepot/pkg/jwt"
)

// infrastructureSet 基础设施层Provider
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
	provideJWTManager,
	provideNotifier,
)

// repositorySet 仓储层Provider
var repositorySet = wire.NewSet(
	mysql.NewAuthorRepository,
	mysql.NewBookRepository,
	mysql.NewCustomerRepository,
	mysql.NewOrderRepository,
	mysql.NewTxManager,
	mysql.NewSchemaInspector,
	redis.NewSessionStore,
	wire.Bind(new(apporder.TxManager), new(*mysql.TxManager)),
)

// domainSet 领域层Provider
var domainSet = wire.NewSet(
	customer.NewService,
	book.NewService,
)

// applicationSet 应用层Provider
var applicationSet = wire.NewSet(
	appcustomer.NewRegisterUseCase,
	appcustomer.NewLoginUseCase,
	appcustomer.NewLogoutUseCase,
	appauthor.NewCreateAuthorUseCase,
	appauthor.NewListAuthorsUseCase,
	appbook.NewPublishBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewRestockBookUseCase,
	appbook.NewDeleteBookUseCase,
	apporder.NewFulfillOrderUseCase,
	apporder.NewGetOrderUseCase,
	apporder.NewListOrdersUseCase,
	appschema.NewInspectSchemaUseCase,
)

// middlewareSet 中间件Provider
var middlewareSet = wire.NewSet(
	middleware.NewAuthMiddleware,
)

// handlerSet 接口层Provider
var handlerSet = wire.NewSet(
	handler.NewCustomerHandler,
	handler.NewAuthorHandler,
	handler.NewBookHandler,
	handler.NewOrderHandler,
	handler.NewSchemaHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideNotifier 按配置开关创建事件发布器
// MQ未启用时返回nil，履约用例对nil通知器做了兼容
func provideNotifier(cfg *config.Config) (apporder.FulfillmentNotifier, error) {
	if !cfg.MQ.Enabled {
		return nil, nil
	}
	return events.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	customerHandler *handler.CustomerHandler,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	schemaHandler *handler.SchemaHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, customerHandler, authorHandler, bookHandler, orderHandler, schemaHandler, authMiddleware)
	return r
}

// InitializeApp Injector：组装完整应用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
