package book

import (
	"context"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验,不处理HTTP请求
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// PublishBook 上架图书
	// 业务规则:
	// - 书名不能为空
	// - 初始库存>=0
	// - authorID可以为nil(作者信息暂缺)
	PublishBook(ctx context.Context, title string, authorID *uint, stock int) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// UpdateBookInfo 更新图书信息(书名/作者)
	UpdateBookInfo(ctx context.Context, id uint, title string, authorID *uint) (*Book, error)

	// RestockBook 补货(增加库存)
	RestockBook(ctx context.Context, id uint, quantity int) (*Book, error)

	// DeleteBook 下架图书
	DeleteBook(ctx context.Context, id uint) error

	// ListBooks 分页查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// PublishBook 上架图书
func (s *service) PublishBook(ctx context.Context, title string, authorID *uint, stock int) (*Book, error) {
	b, err := NewBook(title, authorID, stock)
	if err != nil {
		return nil, err
	}

	// 作者存在性由数据库外键约束保证,Repository会转换为ErrAuthorNotExists
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBookByID 根据ID获取图书详情
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBookInfo 更新图书信息
func (s *service) UpdateBookInfo(ctx context.Context, id uint, title string, authorID *uint) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.UpdateInfo(title, authorID)

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// RestockBook 补货
// 说明:补货走原子UpdateStock(delta>0),不需要悲观锁
func (s *service) RestockBook(ctx context.Context, id uint, quantity int) (*Book, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if err := s.repo.UpdateStock(ctx, id, quantity); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

// DeleteBook 下架图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	// 分页参数兜底
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 10
	}

	return s.repo.List(ctx, params)
}
