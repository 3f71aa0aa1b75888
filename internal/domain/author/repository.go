package author

import (
	"context"
)

// Repository 作者仓储接口
// 设计说明:
// 1. 接口定义在domain层,实现在infrastructure/persistence/mysql层(依赖倒置)
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建作者
	Create(ctx context.Context, a *Author) error

	// FindByID 根据ID查找作者
	// 不存在时返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// List 查询全部作者(按ID升序)
	List(ctx context.Context) ([]*Author, error)
}
