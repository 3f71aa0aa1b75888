package order

import (
	apperrors "github.com/xiebiao/bookdepot/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidQuantity, "购买数量必须大于0")
)

// NewFulfillmentFailed 构造履约事务失败错误
// 设计说明:
// 1. 写入阶段的任何数据访问故障(约束冲突、连接中断)都归入此类
// 2. 事务已回滚,底层原因保留在Err中供诊断,不返回给客户端
func NewFulfillmentFailed(cause error) *apperrors.AppError {
	return apperrors.WrapCode(apperrors.ErrCodeTransactionFailed, cause, "下单失败,请稍后重试")
}
