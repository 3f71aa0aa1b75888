package customer

import (
	"context"
)

// Repository 客户仓储接口
// DDD设计说明:
// 1. 接口定义在domain层(依赖倒置原则)
// 2. 具体实现在infrastructure/persistence/mysql层
// 3. 便于单元测试(Mock此接口)
type Repository interface {
	// Create 创建客户
	// 注意:如果邮箱已存在,应返回ErrEmailDuplicate
	Create(ctx context.Context, c *Customer) error

	// FindByID 根据ID查找客户
	// 不存在时返回ErrCustomerNotFound
	FindByID(ctx context.Context, id uint) (*Customer, error)

	// FindByEmail 根据邮箱查找客户
	// 不存在时返回ErrCustomerNotFound
	FindByEmail(ctx context.Context, email string) (*Customer, error)
}
