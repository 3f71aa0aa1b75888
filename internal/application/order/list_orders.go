package order

import (
	"context"

	"github.com/xiebiao/bookdepot/internal/domain/order"
)

// ListOrdersUseCase 客户订单列表用例
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
	}
}

// ListOrdersRequest 列表请求DTO
type ListOrdersRequest struct {
	CustomerID uint // 从JWT中提取,不信任客户端传参
	Page       int
	PageSize   int
}

// ListOrdersResponse 列表响应DTO
type ListOrdersResponse struct {
	List     []OrderDetail `json:"list"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// Execute 执行订单列表查询(按创建时间降序)
func (uc *ListOrdersUseCase) Execute(ctx context.Context, req ListOrdersRequest) (*ListOrdersResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	orders, total, err := uc.orderRepo.ListByCustomerID(ctx, req.CustomerID, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	list := make([]OrderDetail, len(orders))
	for i, o := range orders {
		list[i] = OrderDetail{
			OrderID:    o.ID,
			OrderNo:    o.OrderNo,
			CustomerID: o.CustomerID,
			BookID:     o.BookID,
			Quantity:   o.Quantity,
			CreatedAt:  o.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	return &ListOrdersResponse{
		List:     list,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
