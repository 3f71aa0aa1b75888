package order

import (
	"context"

	"github.com/xiebiao/bookdepot/internal/domain/order"
)

// GetOrderUseCase 订单详情查询用例
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建详情查询用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
	}
}

// OrderDetail 订单详情DTO
type OrderDetail struct {
	OrderID    uint   `json:"order_id"`
	OrderNo    string `json:"order_no"`
	CustomerID uint   `json:"customer_id"`
	BookID     uint   `json:"book_id"`
	Quantity   int    `json:"quantity"`
	CreatedAt  string `json:"created_at"`
}

// Execute 执行详情查询
// 权限规则:只能查自己的订单,他人订单返回ErrOrderNotFound
// (教学要点:水平越权防护,不暴露"订单存在但不属于你"这一信息)
func (uc *GetOrderUseCase) Execute(ctx context.Context, customerID, orderID uint) (*OrderDetail, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !o.IsOwnedBy(customerID) {
		return nil, order.ErrOrderNotFound
	}

	return &OrderDetail{
		OrderID:    o.ID,
		OrderNo:    o.OrderNo,
		CustomerID: o.CustomerID,
		BookID:     o.BookID,
		Quantity:   o.Quantity,
		CreatedAt:  o.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
