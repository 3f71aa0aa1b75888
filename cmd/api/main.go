package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

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
	"github.com/xiebiao/bookdepot/pkg/metrics"
	"github.com/xiebiao/bookdepot/pkg/response"
	"github.com/xiebiao/bookdepot/pkg/tracing"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go是等价的Wire版本，运行wire gen生成）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化可观测性组件
	metrics.InitMetrics()

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			log.Fatalf("初始化Tracer失败: %v", err)
		}
		defer shutdown(context.Background())
	}

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 5. 初始化事件发布器(可选,MQ未启用时履约不发事件)
	var notifier apporder.FulfillmentNotifier
	if cfg.MQ.Enabled {
		publisher, err := events.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			log.Fatalf("初始化MQ失败: %v", err)
		}
		defer publisher.Close()
		notifier = publisher
	}

	// 6. 依赖注入（手动组装）
	// 学习要点：依赖注入链
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	authorRepo := mysql.NewAuthorRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	customerRepo := mysql.NewCustomerRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	schemaInspector := mysql.NewSchemaInspector(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	customerService := customer.NewService(customerRepo)
	bookService := book.NewService(bookRepo)

	// 应用层
	registerUseCase := appcustomer.NewRegisterUseCase(customerService)
	loginUseCase := appcustomer.NewLoginUseCase(customerService, jwtManager, sessionStore)
	logoutUseCase := appcustomer.NewLogoutUseCase(sessionStore)

	createAuthorUseCase := appauthor.NewCreateAuthorUseCase(authorRepo)
	listAuthorsUseCase := appauthor.NewListAuthorsUseCase(authorRepo)

	publishBookUseCase := appbook.NewPublishBookUseCase(bookService)
	getBookUseCase := appbook.NewGetBookUseCase(bookService, authorRepo)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService)
	restockBookUseCase := appbook.NewRestockBookUseCase(bookService)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService)

	fulfillOrderUseCase := apporder.NewFulfillOrderUseCase(orderRepo, bookRepo, txManager, notifier)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)

	inspectSchemaUseCase := appschema.NewInspectSchemaUseCase(schemaInspector)

	// 接口层
	customerHandler := handler.NewCustomerHandler(registerUseCase, loginUseCase, logoutUseCase)
	authorHandler := handler.NewAuthorHandler(createAuthorUseCase, listAuthorsUseCase)
	bookHandler := handler.NewBookHandler(
		publishBookUseCase, getBookUseCase, listBooksUseCase,
		updateBookUseCase, restockBookUseCase, deleteBookUseCase,
	)
	orderHandler := handler.NewOrderHandler(fulfillOrderUseCase, getOrderUseCase, listOrdersUseCase)
	schemaHandler := handler.NewSchemaHandler(inspectSchemaUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// 8. 注册路由
	registerRoutes(r, customerHandler, authorHandler, bookHandler, orderHandler, schemaHandler, authMiddleware)

	// 9. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   监控指标: http://localhost%s/metrics\n", addr)
	fmt.Printf("   客户注册: POST http://localhost%s/api/v1/customers/register\n", addr)
	fmt.Printf("   客户登录: POST http://localhost%s/api/v1/customers/login\n", addr)
	fmt.Printf("   下单购书: POST http://localhost%s/api/v1/orders (需要登录)\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	customerHandler *handler.CustomerHandler,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	schemaHandler *handler.SchemaHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 客户模块（注册登录公开，登出需要登录）
		customers := v1.Group("/customers")
		{
			customers.POST("/register", customerHandler.Register)
			customers.POST("/login", customerHandler.Login)
			customers.POST("/logout", authMiddleware.RequireAuth(), customerHandler.Logout)
		}

		// 作者模块（查询公开，录入需要登录）
		authors := v1.Group("/authors")
		{
			authors.GET("", authorHandler.ListAuthors)
			authors.POST("", authMiddleware.RequireAuth(), authorHandler.CreateAuthor)
		}

		// 图书模块（查询公开，写操作需要登录）
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.GET("/:id", bookHandler.GetBook)

			books.POST("", authMiddleware.RequireAuth(), bookHandler.PublishBook)
			books.PUT("/:id", authMiddleware.RequireAuth(), bookHandler.UpdateBook)
			books.PUT("/:id/stock", authMiddleware.RequireAuth(), bookHandler.RestockBook)
			books.DELETE("/:id", authMiddleware.RequireAuth(), bookHandler.DeleteBook)
		}

		// 订单模块（全部需要登录）
		orders := v1.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			orders.POST("", orderHandler.FulfillOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		// 表结构巡检（运维接口，需要登录）
		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			admin.GET("/schema/tables", schemaHandler.ListTables)
			admin.GET("/schema/tables/:table", schemaHandler.DescribeTable)
			admin.GET("/schema/tables/:table/columns", schemaHandler.ListColumns)
			admin.GET("/schema/tables/:table/keys", schemaHandler.ListKeys)
		}
	}
}
