package book

import (
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,库存(Stock)是其核心不变量:永远>=0
// 2. AuthorID是可空外键(允许上架暂时没有作者信息的图书)
// 3. 不直接引用Author对象,只保存AuthorID(避免跨聚合引用)
type Book struct {
	ID        uint
	Title     string // 书名
	AuthorID  *uint  // 作者ID(可空,关联Authors表)
	Stock     int    // 库存数量,不变量:>=0
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook 创建新图书(工厂方法)
// 业务规则:
// - 书名不能为空
// - 初始库存不能为负数
func NewBook(title string, authorID *uint, stock int) (*Book, error) {
	if title == "" {
		return nil, ErrInvalidTitle
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	now := time.Now()
	return &Book{
		Title:     title,
		AuthorID:  authorID,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CanFulfill 判断当前库存能否满足指定数量
// 注意:quantity == Stock时允许(库存可以刚好清零)
func (b *Book) CanFulfill(quantity int) bool {
	return quantity > 0 && b.Stock >= quantity
}

// DecrStock 扣减库存(用于订单履约)
// 业务规则:扣减后库存不能为负数
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.Stock < quantity {
		return ErrInsufficientStock
	}
	b.Stock -= quantity
	b.UpdatedAt = time.Now()
	return nil
}

// IncrStock 增加库存(用于补货)
func (b *Book) IncrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	b.Stock += quantity
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新图书基本信息
// 空字符串表示不修改该字段
func (b *Book) UpdateInfo(title string, authorID *uint) {
	if title != "" {
		b.Title = title
	}
	if authorID != nil {
		b.AuthorID = authorID
	}
	b.UpdatedAt = time.Now()
}
