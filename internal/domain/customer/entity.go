package customer

import (
	"time"
)

// Customer 客户实体(聚合根)
// DDD设计说明:
// 1. Customer是客户聚合的根实体,订单通过CustomerID引用
// 2. 密码已加密存储(bcrypt),不应该有GetPassword()等方法暴露明文
// 3. 领域实体不依赖GORM tag(infrastructure层的Repository实现时会处理映射)
type Customer struct {
	ID        uint
	Name      string // 客户姓名
	Email     string
	Password  string // bcrypt哈希值
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer 创建新客户(工厂方法)
// hashedPassword必须是bcrypt加密后的密码
func NewCustomer(name, email, hashedPassword string) *Customer {
	now := time.Now()
	return &Customer{
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateName 更新姓名(领域行为)
func (c *Customer) UpdateName(name string) {
	c.Name = name
	c.UpdatedAt = time.Now()
}
