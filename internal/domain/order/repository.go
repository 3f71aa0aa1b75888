package order

import (
	"context"
)

// Repository 订单仓储接口
// 设计说明:
// 1. Create必须在履约事务中调用(通过context传递事务DB)
// 2. 订单创建后不再修改,因此没有Update/Delete
type Repository interface {
	// Create 创建订单
	Create(ctx context.Context, o *Order) error

	// FindByID 根据ID查找订单
	// 不存在时返回ErrOrderNotFound
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindByOrderNo 根据订单号查找订单
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)

	// ListByCustomerID 分页查询客户的订单列表(按创建时间降序)
	ListByCustomerID(ctx context.Context, customerID uint, page, pageSize int) ([]*Order, int64, error)
}
