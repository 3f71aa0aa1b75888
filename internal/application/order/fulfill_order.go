package order

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/bookdepot/internal/domain/book"
	"github.com/xiebiao/bookdepot/internal/domain/order"
	apperrors "github.com/xiebiao/bookdepot/pkg/errors"
	"github.com/xiebiao/bookdepot/pkg/metrics"
	"github.com/xiebiao/bookdepot/pkg/tracing"
)

// TxManager 事务边界
// 教学要点:用例层只依赖"在一个事务里执行fn"这一能力,
// 不依赖具体数据库。mysql.TxManager是生产实现,测试时用假实现替换
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// FulfillmentNotifier 履约成功事件通知
// 事务提交后尽力而为地发出,失败不影响履约结果(见infrastructure/events)
type FulfillmentNotifier interface {
	NotifyFulfilled(ctx context.Context, o *order.Order)
}

// FulfillOrderUseCase 订单履约用例
// 教学要点:这是整个项目最核心的用例
// 涉及:事务处理、并发控制、业务规则校验
type FulfillOrderUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	txManager TxManager
	notifier  FulfillmentNotifier // 可为nil(未启用MQ时)
}

// NewFulfillOrderUseCase 创建履约用例
func NewFulfillOrderUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	txManager TxManager,
	notifier FulfillmentNotifier,
) *FulfillOrderUseCase {
	return &FulfillOrderUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
		notifier:  notifier,
	}
}

// FulfillOrderRequest 履约请求DTO
type FulfillOrderRequest struct {
	CustomerID uint // 买家客户ID(从JWT中提取)
	BookID     uint // 图书ID
	Quantity   int  // 购买数量
}

// FulfillOrderResponse 履约响应DTO
type FulfillOrderResponse struct {
	OrderID   uint   `json:"order_id"`
	OrderNo   string `json:"order_no"`
	CreatedAt string `json:"created_at"`
}

// Execute 执行履约用例
// 教学重点:防止超卖的完整流程
//
// 核心问题:库存超卖
// 场景:图书库存10本,100人同时下单
// 错误实现:
//  1. 查询库存 → 10本
//  2. 判断够不够 → 够
//  3. 扣减库存 → stock = stock - 1
//     结果:100个请求都通过了步骤2,最后卖出100本(超卖90本!)
//
// 正确实现:悲观锁 + 条件扣减双保险
//  1. SELECT FOR UPDATE 锁定图书行
//  2. 判断库存是否充足
//  3. 创建订单
//  4. UPDATE ... WHERE stock_quantity - ? >= 0 条件扣减
//  5. COMMIT释放锁
//
// 错误分类:
//   - 数量<=0       → order.ErrInvalidQuantity(进入事务前拒绝,不触库)
//   - 图书不存在     → book.ErrBookNotFound(回滚,无任何写入)
//   - 库存不足       → book.ErrInsufficientStock(回滚,无任何写入)
//   - 其他数据库故障 → order.NewFulfillmentFailed(回滚,保留底层原因)
func (uc *FulfillOrderUseCase) Execute(ctx context.Context, req FulfillOrderRequest) (*FulfillOrderResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "bookdepot", "FulfillOrder")
	defer span.End()

	start := time.Now()
	metrics.IncGauge(metrics.OrdersInProgress)
	defer metrics.DecGauge(metrics.OrdersInProgress)

	// 1. 参数校验(教学要点:必须在任何存储访问之前完成)
	if req.Quantity <= 0 {
		uc.recordFailure("invalid_quantity")
		return nil, order.ErrInvalidQuantity
	}

	// 2. 事务执行整个履约流程
	// 教学要点:事务保证原子性,订单写入和库存扣减要么全成功,要么全失败
	// 数据库中存在订单行 <=> 库存已扣减
	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// ========================================
		// 步骤1:锁定图书行(悲观锁,防止并发超卖)
		// ========================================
		// LockByID执行:SELECT * FROM books WHERE book_id = ? FOR UPDATE
		// 其他事务必须等待当前事务COMMIT或ROLLBACK后才能访问该行
		b, err := uc.bookRepo.LockByID(txCtx, req.BookID)
		if err != nil {
			return err
		}

		// ========================================
		// 步骤2:检查库存
		// ========================================
		// 教学要点:必须在锁定后检查,否则可能并发扣减导致超卖
		// 库存恰好等于数量时允许下单(库存清零)
		if !b.CanFulfill(req.Quantity) {
			return book.ErrInsufficientStock
		}

		// ========================================
		// 步骤3:创建订单
		// ========================================
		newOrder, err := order.NewOrder(order.GenerateOrderNo(), req.CustomerID, req.BookID, req.Quantity)
		if err != nil {
			return err
		}
		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		// ========================================
		// 步骤4:扣减库存(条件扣减,双保险)
		// ========================================
		// UPDATE books SET stock_quantity = stock_quantity - ?
		// WHERE book_id = ? AND stock_quantity - ? >= 0
		// 即使锁被绕过,负库存也写不进去
		if err := uc.bookRepo.UpdateStock(txCtx, req.BookID, -req.Quantity); err != nil {
			return err
		}

		// 步骤5:返回订单(事务自动COMMIT)
		result = newOrder
		return nil
	})

	if err != nil {
		err = uc.classify(err)
		span.RecordError(err)
		return nil, err
	}

	metrics.IncCounter(metrics.OrdersFulfilledTotal)
	metrics.ObserveHistogram(metrics.OrderFulfillmentDuration, time.Since(start).Seconds())

	// 3. 事务提交后发布履约事件(尽力而为,失败只记日志)
	if uc.notifier != nil {
		uc.notifier.NotifyFulfilled(ctx, result)
	}

	return &FulfillOrderResponse{
		OrderID:   result.ID,
		OrderNo:   result.OrderNo,
		CreatedAt: result.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// classify 错误分类
// 业务错误(图书不存在、库存不足)原样透传;
// 其余一律视为事务失败,包装后保留底层原因
func (uc *FulfillOrderUseCase) classify(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case apperrors.ErrCodeBookNotFound:
			uc.recordFailure("book_not_found")
			return err
		case apperrors.ErrCodeInsufficientStock:
			uc.recordFailure("insufficient_stock")
			return err
		case apperrors.ErrCodeInvalidQuantity:
			uc.recordFailure("invalid_quantity")
			return err
		}
	}
	uc.recordFailure("transaction_failed")
	return order.NewFulfillmentFailed(err)
}

func (uc *FulfillOrderUseCase) recordFailure(reason string) {
	metrics.IncCounterVec(metrics.FulfillmentFailedTotal, map[string]string{"reason": reason})
}
