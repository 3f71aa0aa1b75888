package book

import (
	"context"

	"github.com/xiebiao/bookdepot/internal/domain/book"
)

// RestockBookUseCase 图书补货用例
// 设计说明:补货走原子UPDATE(delta>0),与履约扣减共用同一条件更新语句,
// 和并发中的履约事务天然兼容
type RestockBookUseCase struct {
	bookService book.Service
}

// NewRestockBookUseCase 创建补货用例
func NewRestockBookUseCase(bookService book.Service) *RestockBookUseCase {
	return &RestockBookUseCase{
		bookService: bookService,
	}
}

// RestockBookRequest 补货请求DTO
type RestockBookRequest struct {
	ID       uint
	Quantity int // 补货数量,必须>0
}

// RestockBookResponse 补货响应DTO
type RestockBookResponse struct {
	ID    uint `json:"id"`
	Stock int  `json:"stock"` // 补货后的库存
}

// Execute 执行补货用例
func (uc *RestockBookUseCase) Execute(ctx context.Context, req RestockBookRequest) (*RestockBookResponse, error) {
	b, err := uc.bookService.RestockBook(ctx, req.ID, req.Quantity)
	if err != nil {
		return nil, err
	}

	return &RestockBookResponse{
		ID:    b.ID,
		Stock: b.Stock,
	}, nil
}
