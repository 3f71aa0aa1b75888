package dto

// FulfillOrderRequest HTTP下单请求
// 一次下单购买一种图书;customer_id不在请求体中,从JWT提取
type FulfillOrderRequest struct {
	BookID   uint `json:"book_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1,max=999"`
}

// FulfillOrderResponse HTTP下单响应
type FulfillOrderResponse struct {
	OrderID   uint   `json:"order_id" example:"1"`
	OrderNo   string `json:"order_no" example:"ORD1699248000123456"`
	CreatedAt string `json:"created_at" example:"2024-11-06 10:30:00"`
}

// OrderResponse HTTP订单详情响应
type OrderResponse struct {
	OrderID    uint   `json:"order_id" example:"1"`
	OrderNo    string `json:"order_no" example:"ORD1699248000123456"`
	CustomerID uint   `json:"customer_id" example:"1"`
	BookID     uint   `json:"book_id" example:"1"`
	Quantity   int    `json:"quantity" example:"2"`
	CreatedAt  string `json:"created_at" example:"2024-11-06 10:30:00"`
}

// ListOrdersRequest HTTP订单列表请求
type ListOrdersRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
}

// ListOrdersResponse HTTP订单列表响应
type ListOrdersResponse struct {
	List     []OrderResponse `json:"list"`
	Total    int64           `json:"total" example:"3"`
	Page     int             `json:"page" example:"1"`
	PageSize int             `json:"page_size" example:"20"`
}
