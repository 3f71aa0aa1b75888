// Package events 领域事件的RabbitMQ发布实现
//
// 设计说明:
// 1. 履约事件在数据库事务提交之后发布,属于"尽力而为"通知:
//    发布失败只记日志,绝不影响已提交的订单
// 2. MQ发布被熔断器包住:broker宕机时快速失败,
//    不让履约接口被发布超时拖慢
// 3. 下游(邮件通知、报表统计)各自建队列订阅order.*路由键
package events

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/bookdepot/internal/domain/order"
	"github.com/xiebiao/bookdepot/pkg/circuitbreaker"
	"github.com/xiebiao/bookdepot/pkg/metrics"
	"github.com/xiebiao/bookdepot/pkg/mq"
)

// 路由键定义
const (
	// RoutingKeyOrderFulfilled 订单履约成功事件
	RoutingKeyOrderFulfilled = "order.fulfilled"
)

// OrderFulfilledEvent 订单履约成功事件体
type OrderFulfilledEvent struct {
	OrderID     uint   `json:"order_id"`
	OrderNo     string `json:"order_no"`
	CustomerID  uint   `json:"customer_id"`
	BookID      uint   `json:"book_id"`
	Quantity    int    `json:"quantity"`
	FulfilledAt string `json:"fulfilled_at"` // 格式:2006-01-02 15:04:05
}

// Publisher 事件发布器
// 实现application/order.FulfillmentNotifier接口
type Publisher struct {
	mq      *mq.Publisher
	breaker *circuitbreaker.CircuitBreaker
}

// NewPublisher 创建事件发布器
//
// 参数:
//
//	url: RabbitMQ连接URL
//	exchange: Exchange名称(topic类型,如bookdepot.events)
func NewPublisher(url, exchange string) (*Publisher, error) {
	publisher, err := mq.NewPublisher(url, exchange, "topic")
	if err != nil {
		return nil, err
	}

	// 连续5次失败即熔断,30秒后半开探测
	breaker := circuitbreaker.NewCircuitBreaker("order-events", circuitbreaker.Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	// 状态变化同步到监控指标
	breaker.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		log.Printf("[events] 熔断器%s状态变化: %s → %s", name, from, to)
		metrics.SetGaugeVec(metrics.CircuitBreakerState,
			map[string]string{"name": name}, float64(to))
	})

	return &Publisher{
		mq:      publisher,
		breaker: breaker,
	}, nil
}

// NotifyFulfilled 发布订单履约成功事件
// 教学要点:此方法没有error返回值,发布失败不是履约失败
func (p *Publisher) NotifyFulfilled(ctx context.Context, o *order.Order) {
	event := OrderFulfilledEvent{
		OrderID:     o.ID,
		OrderNo:     o.OrderNo,
		CustomerID:  o.CustomerID,
		BookID:      o.BookID,
		Quantity:    o.Quantity,
		FulfilledAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	err := p.breaker.Execute(func() error {
		return p.mq.Publish(RoutingKeyOrderFulfilled, event)
	})
	if err != nil {
		// 含熔断拒绝(ErrOpenState):快速失败,不等broker超时
		log.Printf("[events] 发布%s失败 order_no=%s: %v",
			RoutingKeyOrderFulfilled, event.OrderNo, err)
	}
}

// Close 关闭底层MQ连接
func (p *Publisher) Close() error {
	return p.mq.Close()
}
