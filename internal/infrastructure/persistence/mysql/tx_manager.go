package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey context中事务DB的键
// 设计说明:使用非导出的自定义类型做key,避免与其他包的context值冲突
type txKey struct{}

// TxManager 事务管理器
// 设计说明:
// 1. 封装GORM的Transaction方法:fn返回error时自动ROLLBACK,返回nil时自动COMMIT
// 2. 通过context传递事务DB(避免全局变量和共享连接上的自动提交开关)
//    每次调用都是独立的事务作用域,并发调用互不可见、互不干扰
// 3. 无论fn正常返回还是panic,GORM都会关闭事务,连接归还连接池时状态干净
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn函数内通过同一context调用的所有Repository操作都在同一事务中执行
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    // 1. 锁定库存行
//	    b, err := bookRepo.LockByID(ctx, bookID)
//	    if err != nil {
//	        return err
//	    }
//	    // 2. 创建订单
//	    if err := orderRepo.Create(ctx, o); err != nil {
//	        return err // 自动回滚
//	    }
//	    // 3. 扣减库存
//	    return bookRepo.UpdateStock(ctx, bookID, -quantity) // nil则提交
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 将事务DB注入到context中,Repository通过dbFromContext提取
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFromContext 从context获取事务DB,没有事务时回退到默认DB
// 所有Repository的读写都经过这里,保证"同一context=同一事务"
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
