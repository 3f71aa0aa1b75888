package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookdepot/internal/domain/book"
	"github.com/xiebiao/bookdepot/internal/domain/order"
	apperrors "github.com/xiebiao/bookdepot/pkg/errors"
	"github.com/xiebiao/bookdepot/pkg/metrics"
)

// 教学说明：履约用例单元测试
//
// 单元测试 vs 集成测试（test/integration是后者）：
// - 这里用假实现（fake）替换Repository和TxManager，不碰真实数据库
// - 假实现直接在内存里维护状态，每个测试用例独立构造
// - 并发防超卖依赖真实数据库的行锁，由集成测试覆盖；
//   这里只验证用例层自身的错误分类和调用顺序

func TestMain(m *testing.M) {
	metrics.InitMetrics()
	m.Run()
}

// fakeBookRepo 内存图书仓储
// 记录方法调用次数，用于断言"非法数量不触库"这类约束
type fakeBookRepo struct {
	books      map[uint]*book.Book
	lockCalls  int
	stockCalls int
	stockErr   error // UpdateStock强制返回的错误（模拟存储故障）
}

func newFakeBookRepo(books ...*book.Book) *fakeBookRepo {
	repo := &fakeBookRepo{books: make(map[uint]*book.Book)}
	for _, b := range books {
		repo.books[b.ID] = b
	}
	return repo
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error { return nil }

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) error { return nil }

func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error { return nil }

func (r *fakeBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	return nil, 0, nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	r.lockCalls++
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
	r.stockCalls++
	if r.stockErr != nil {
		return r.stockErr
	}
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.Stock+delta < 0 {
		return book.ErrInsufficientStock
	}
	b.Stock += delta
	return nil
}

// fakeOrderRepo 内存订单仓储
type fakeOrderRepo struct {
	orders    []*order.Order
	createErr error // Create强制返回的错误（模拟存储故障）
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	o.ID = uint(len(r.orders) + 1)
	r.orders = append(r.orders, o)
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	for _, o := range r.orders {
		if o.OrderNo == orderNo {
			return o, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (r *fakeOrderRepo) ListByCustomerID(ctx context.Context, customerID uint, page, pageSize int) ([]*order.Order, int64, error) {
	var result []*order.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			result = append(result, o)
		}
	}
	return result, int64(len(result)), nil
}

// fakeTxManager 直接执行fn,不提供真实事务
// 注意:fake仓储的状态变更不会回滚,所以测试里的"无副作用"断言
// 依赖用例本身的调用顺序(失败路径根本不会走到写操作)
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// fakeNotifier 记录收到的履约事件
type fakeNotifier struct {
	notified []*order.Order
}

func (n *fakeNotifier) NotifyFulfilled(ctx context.Context, o *order.Order) {
	n.notified = append(n.notified, o)
}

func newBook(id uint, stock int) *book.Book {
	return &book.Book{ID: id, Title: "测试图书", Stock: stock}
}

func TestFulfillOrder_Success(t *testing.T) {
	bookRepo := newFakeBookRepo(newBook(1, 10))
	orderRepo := &fakeOrderRepo{}
	tx := &fakeTxManager{}
	notifier := &fakeNotifier{}
	uc := NewFulfillOrderUseCase(orderRepo, bookRepo, tx, notifier)

	resp, err := uc.Execute(context.Background(), FulfillOrderRequest{
		CustomerID: 7, BookID: 1, Quantity: 3,
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotZero(t, resp.OrderID)
	assert.NotEmpty(t, resp.OrderNo)

	// 库存已扣减,订单已落库
	assert.Equal(t, 7, bookRepo.books[1].Stock)
	require.Len(t, orderRepo.orders, 1)
	assert.Equal(t, uint(7), orderRepo.orders[0].CustomerID)
	assert.Equal(t, 3, orderRepo.orders[0].Quantity)

	// 整个流程在一个事务里
	assert.Equal(t, 1, tx.calls)

	// 事务提交后发布履约事件
	require.Len(t, notifier.notified, 1)
	assert.Equal(t, resp.OrderNo, notifier.notified[0].OrderNo)
}

func TestFulfillOrder_ExactStock(t *testing.T) {
	// 边界规则:数量恰好等于库存时允许成交,库存清零
	bookRepo := newFakeBookRepo(newBook(1, 5))
	orderRepo := &fakeOrderRepo{}
	uc := NewFulfillOrderUseCase(orderRepo, bookRepo, &fakeTxManager{}, nil)

	resp, err := uc.Execute(context.Background(), FulfillOrderRequest{
		CustomerID: 1, BookID: 1, Quantity: 5,
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 0, bookRepo.books[1].Stock)
}

func TestFulfillOrder_InvalidQuantity(t *testing.T) {
	bookRepo := newFakeBookRepo(newBook(1, 10))
	orderRepo := &fakeOrderRepo{}
	tx := &fakeTxManager{}
	uc := NewFulfillOrderUseCase(orderRepo, bookRepo, tx, nil)

	for _, quantity := range []int{0, -1, -100} {
		resp, err := uc.Execute(context.Background(), FulfillOrderRequest{
			CustomerID: 1, BookID: 1, Quantity: quantity,
		})

		require.Error(t, err, "数量%d应该被拒绝", quantity)
		assert.Nil(t, resp)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrCodeInvalidQuantity, appErr.Code)
	}

	// 关键断言:非法数量在进入存储层之前就被拒绝
	assert.Zero(t, tx.calls, "不应该开启事务")
	assert.Zero(t, bookRepo.lockCalls, "不应该访问图书仓储")
	assert.Equal(t, 10, bookRepo.books[1].Stock, "库存不应该有任何变化")
}

func TestFulfillOrder_BookNotFound(t *testing.T) {
	bookRepo := newFakeBookRepo() // 空仓储
	orderRepo := &fakeOrderRepo{}
	uc := NewFulfillOrderUseCase(orderRepo, bookRepo, &fakeTxManager{}, nil)

	resp, err := uc.Execute(context.Background(), FulfillOrderRequest{
		CustomerID: 1, BookID: 999, Quantity: 1,
	})

	require.Error(t, err)
	assert.Nil(t, resp)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeBookNotFound, appErr.Code)

	assert.Empty(t, orderRepo.orders, "不应该创建订单")
}

func TestFulfillOrder_InsufficientStock(t *testing.T) {
	bookRepo := newFakeBookRepo(newBook(1, 2))
	orderRepo := &fakeOrderRepo{}
	uc := NewFulfillOrderUseCase(orderRepo, bookRepo, &fakeTxManager{}, nil)

	resp, err := uc.Execute(context.Background(), FulfillOrderRequest{
		CustomerID: 1, BookID: 1, Quantity: 3,
	})

	require.Error(t, err)
	assert.Nil(t, resp)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeInsufficientStock, appErr.Code)

	// 库存检查失败后不应该有任何写入
	assert.Empty(t, orderRepo.orders, "不应该创建订单")
	assert.Equal(t, 2, bookRepo.books[1].Stock, "库存不应该变化")
	assert.Zero(t, bookRepo.stockCalls, "不应该执行扣减")
}

func TestFulfillOrder_CreateOrderFails(t *testing.T) {
	// 模拟订单写入阶段的存储故障(如唯一索引冲突、连接中断)
	cause := errors.New("driver: bad connection")
	bookRepo := newFakeBookRepo(newBook(1, 10))
	orderRepo := &fakeOrderRepo{createErr: cause}
	uc := NewFulfillOrderUseCase(orderRepo, bookRepo, &fakeTxManager{}, nil)

	resp, err := uc.Execute(context.Background(), FulfillOrderRequest{
		CustomerID: 1, BookID: 1, Quantity: 1,
	})

	require.Error(t, err)
	assert.Nil(t, resp)

	// 归类为事务失败,且底层原因被保留(errors.Is穿透AppError.Unwrap)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeTransactionFailed, appErr.Code)
	assert.ErrorIs(t, err, cause, "底层原因应该被保留供诊断")

	// 订单写入失败发生在扣减之前,库存不应该变化
	assert.Equal(t, 10, bookRepo.books[1].Stock)
}

func TestFulfillOrder_StockUpdateFails(t *testing.T) {
	cause := errors.New("invalid connection")
	bookRepo := newFakeBookRepo(newBook(1, 10))
	bookRepo.stockErr = cause
	orderRepo := &fakeOrderRepo{}
	uc := NewFulfillOrderUseCase(orderRepo, bookRepo, &fakeTxManager{}, nil)

	resp, err := uc.Execute(context.Background(), FulfillOrderRequest{
		CustomerID: 1, BookID: 1, Quantity: 1,
	})

	require.Error(t, err)
	assert.Nil(t, resp)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeTransactionFailed, appErr.Code)
	assert.ErrorIs(t, err, cause)
}

func TestFulfillOrder_NilNotifier(t *testing.T) {
	// 未启用MQ时notifier为nil,履约流程不受影响
	bookRepo := newFakeBookRepo(newBook(1, 10))
	uc := NewFulfillOrderUseCase(&fakeOrderRepo{}, bookRepo, &fakeTxManager{}, nil)

	resp, err := uc.Execute(context.Background(), FulfillOrderRequest{
		CustomerID: 1, BookID: 1, Quantity: 1,
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
}
