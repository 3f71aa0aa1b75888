package author

import (
	"time"
)

// Author 作者实体
// 设计说明:
// 1. 作者是独立聚合,图书通过AuthorID(可空外键)引用
// 2. 创建后不可变(本服务不提供修改作者的入口)
// 3. 领域实体不依赖GORM tag,映射由infrastructure层处理
type Author struct {
	ID        uint
	Name      string // 作者姓名
	CreatedAt time.Time
}

// NewAuthor 创建新作者(工厂方法)
// 业务规则:姓名不能为空
func NewAuthor(name string) (*Author, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	return &Author{
		Name:      name,
		CreatedAt: time.Now(),
	}, nil
}
