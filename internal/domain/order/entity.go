package order

import (
	"time"
)

// Order 订单实体(聚合根)
// 设计说明:
// 1. 一条订单对应一本图书的一次购买(customer_id, book_id, quantity)
// 2. 订单只在履约事务提交时写入:数据库中存在订单行 <=> 履约成功
//    因此没有"待处理"状态,订单创建后不再修改、不会删除
// 3. OrderNo是业务主键(全局唯一,时间有序),对外暴露时优先使用
type Order struct {
	ID         uint
	OrderNo    string // 订单号(业务主键)
	CustomerID uint   // 买家客户ID
	BookID     uint   // 图书ID
	Quantity   int    // 购买数量,不变量:>0
	CreatedAt  time.Time
}

// NewOrder 创建新订单(工厂方法)
// 业务规则:数量必须>0(履约引擎在进入事务前已校验,这里兜底)
func NewOrder(orderNo string, customerID, bookID uint, quantity int) (*Order, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &Order{
		OrderNo:    orderNo,
		CustomerID: customerID,
		BookID:     bookID,
		Quantity:   quantity,
		CreatedAt:  time.Now(),
	}, nil
}

// IsOwnedBy 检查订单是否属于指定客户
// 用途:权限校验,防止客户访问他人订单
func (o *Order) IsOwnedBy(customerID uint) bool {
	return o.CustomerID == customerID
}
