package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookdepot/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明:
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数(MaxOpenConns、MaxIdleConns、ConnMaxLifetime)
// 3. 开发环境开启SQL日志,生产环境关闭
// 4. 自动迁移表结构(AutoMigrate),建表DDL不属于核心业务逻辑
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	// 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构(开发环境)
	// 注意:生产环境应使用专门的迁移工具(如golang-migrate)
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 说明:
// 1. AutoMigrate只会创建表、添加字段和约束,不会删除或修改现有字段
// 2. 外键约束必须真实建在数据库里,SchemaInspector才能从信息模式查到它们
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&CustomerModel{},
		&BookModel{},
		&OrderModel{},
	)
}

// AuthorModel GORM作者模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain/author/entity.go是领域实体,不依赖GORM
// 3. Repository负责两者之间的转换
// 4. 列名沿用既有库表习惯(author_id/author_name),不用GORM默认的id/name
type AuthorModel struct {
	ID        uint      `gorm:"column:author_id;primaryKey"`
	Name      string    `gorm:"column:author_name;size:255;not null;comment:作者姓名"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// CustomerModel GORM客户模型
type CustomerModel struct {
	ID        uint      `gorm:"column:customer_id;primaryKey"`
	Name      string    `gorm:"column:customer_name;size:255;not null;comment:客户姓名"`
	Email     string    `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string    `gorm:"size:255;not null;comment:密码(bcrypt加密)"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CustomerModel) TableName() string {
	return "customers"
}

// BookModel GORM图书模型
// 设计说明:
// 1. Stock是库存数量,不变量:>=0(由履约事务的悲观锁+条件更新保证)
// 2. AuthorID是可空外键(图书可以暂时没有作者信息)
// 3. Author关联字段只为让AutoMigrate生成真实的外键约束,业务代码不Preload它
type BookModel struct {
	ID        uint         `gorm:"column:book_id;primaryKey"`
	Title     string       `gorm:"column:title;index:idx_search;size:255;not null;comment:书名"`
	AuthorID  *uint        `gorm:"column:author_id;index;comment:作者ID(可空)"`
	Stock     int          `gorm:"column:stock_quantity;not null;default:0;comment:库存数量"`
	Author    *AuthorModel `gorm:"foreignKey:AuthorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	CreatedAt time.Time    `gorm:"comment:创建时间"`
	UpdatedAt time.Time    `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// OrderModel GORM订单模型
// 设计说明:
// 1. OrderNo有唯一索引(业务主键)
// 2. 订单行只在履约事务提交时写入,之后不再更新,所以没有UpdatedAt
// 3. Customer/Book关联字段让AutoMigrate生成外键约束:
//    引用不存在的客户/图书时INSERT会被数据库拒绝(履约事务整体回滚)
type OrderModel struct {
	ID         uint           `gorm:"column:order_id;primaryKey"`
	OrderNo    string         `gorm:"column:order_no;uniqueIndex;size:32;not null;comment:订单号"`
	CustomerID uint           `gorm:"column:customer_id;index;not null;comment:买家客户ID"`
	BookID     uint           `gorm:"column:book_id;index;not null;comment:图书ID"`
	Quantity   int            `gorm:"column:quantity;not null;comment:购买数量"`
	Customer   *CustomerModel `gorm:"foreignKey:CustomerID;references:ID"`
	Book       *BookModel     `gorm:"foreignKey:BookID;references:ID"`
	CreatedAt  time.Time      `gorm:"index;comment:创建时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}
