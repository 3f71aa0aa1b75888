package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookdepot/internal/application/order"
	"github.com/xiebiao/bookdepot/internal/interface/http/dto"
	"github.com/xiebiao/bookdepot/internal/interface/http/middleware"
	"github.com/xiebiao/bookdepot/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	fulfillOrderUseCase *apporder.FulfillOrderUseCase
	getOrderUseCase     *apporder.GetOrderUseCase
	listOrdersUseCase   *apporder.ListOrdersUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	fulfillOrderUseCase *apporder.FulfillOrderUseCase,
	getOrderUseCase *apporder.GetOrderUseCase,
	listOrdersUseCase *apporder.ListOrdersUseCase,
) *OrderHandler {
	return &OrderHandler{
		fulfillOrderUseCase: fulfillOrderUseCase,
		getOrderUseCase:     getOrderUseCase,
		listOrdersUseCase:   listOrdersUseCase,
	}
}

// FulfillOrder 下单购书
// @Summary      下单购书
// @Description  客户下单购买图书（需要登录），使用悲观锁防止超卖
// @Tags         订单模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.FulfillOrderRequest true "订单信息"
// @Success      200 {object} response.Response{data=dto.FulfillOrderResponse} "下单成功"
// @Failure      400 {object} response.Response "参数错误(数量<=0)或库存不足"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      500 {object} response.Response "下单事务失败(已回滚)"
// @Router       /api/v1/orders [post]
//
// 教学说明：防超卖的核心逻辑
// 本接口是整个项目的核心功能，演示了如何在高并发场景下防止库存超卖。
//
// 实现方案：悲观锁（SELECT FOR UPDATE）+ 条件扣减双保险
// 1. 开启数据库事务
// 2. 使用SELECT FOR UPDATE锁定库存行
// 3. 检查库存是否充足（数量恰好等于库存时允许，库存清零）
// 4. 创建订单
// 5. 条件扣减库存（WHERE stock_quantity - ? >= 0）
// 6. 提交事务
//
// 为什么不用乐观锁（Version字段）？
// - 高并发场景下，乐观锁会导致大量重试，用户体验差
// - 悲观锁虽然性能略低，但能保证一次成功，更适合抢购场景
//
// 测试方法：
// 1. 创建库存为10的图书
// 2. 启动10个并发请求，每个购买5本
// 3. 预期结果：只有2个请求成功（10÷5=2），其他8个返回库存不足
func (h *OrderHandler) FulfillOrder(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.FulfillOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	// 2. 获取当前登录客户ID
	customerID := middleware.MustGetCustomerID(c)

	// 3. 调用应用层用例
	result, err := h.fulfillOrderUseCase.Execute(c.Request.Context(), apporder.FulfillOrderRequest{
		CustomerID: customerID,
		BookID:     req.BookID,
		Quantity:   req.Quantity,
	})

	if err != nil {
		response.Error(c, err)
		return
	}

	// 4. 构建HTTP响应
	response.Success(c, &dto.FulfillOrderResponse{
		OrderID:   result.OrderID,
		OrderNo:   result.OrderNo,
		CreatedAt: result.CreatedAt,
	})
}

// GetOrder 订单详情
// @Summary      订单详情
// @Description  查询自己的订单（需要登录）；他人订单按不存在处理
// @Tags         订单模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.ErrorWithCode(c, 40900, "无效的订单ID")
		return
	}

	customerID := middleware.MustGetCustomerID(c)

	result, err := h.getOrderUseCase.Execute(c.Request.Context(), customerID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.OrderResponse{
		OrderID:    result.OrderID,
		OrderNo:    result.OrderNo,
		CustomerID: result.CustomerID,
		BookID:     result.BookID,
		Quantity:   result.Quantity,
		CreatedAt:  result.CreatedAt,
	})
}

// ListOrders 我的订单列表
// @Summary      订单列表
// @Description  分页查询当前客户的订单（需要登录），按创建时间降序
// @Tags         订单模块
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码(默认1)"
// @Param        page_size query int false "每页数量(默认20)"
// @Success      200 {object} response.Response{data=dto.ListOrdersResponse}
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	customerID := middleware.MustGetCustomerID(c)

	result, err := h.listOrdersUseCase.Execute(c.Request.Context(), apporder.ListOrdersRequest{
		CustomerID: customerID,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.OrderResponse, len(result.List))
	for i, o := range result.List {
		list[i] = dto.OrderResponse{
			OrderID:    o.OrderID,
			OrderNo:    o.OrderNo,
			CustomerID: o.CustomerID,
			BookID:     o.BookID,
			Quantity:   o.Quantity,
			CreatedAt:  o.CreatedAt,
		}
	}

	response.Success(c, &dto.ListOrdersResponse{
		List:     list,
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
	})
}
