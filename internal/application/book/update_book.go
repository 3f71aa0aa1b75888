package book

import (
	"context"

	"github.com/xiebiao/bookdepot/internal/domain/book"
)

// UpdateBookUseCase 图书信息更新用例
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
	}
}

// UpdateBookRequest 更新请求DTO
// 空字段表示不修改
type UpdateBookRequest struct {
	ID       uint
	Title    string // 新书名(空串不修改)
	AuthorID *uint  // 新作者ID(nil不修改)
}

// UpdateBookResponse 更新响应DTO
type UpdateBookResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	AuthorID  *uint  `json:"author_id,omitempty"`
	Stock     int    `json:"stock"`
	UpdatedAt string `json:"updated_at"`
}

// Execute 执行更新用例
// 注意:库存不在此处修改,补货走RestockBookUseCase,扣减只发生在履约事务
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*UpdateBookResponse, error) {
	b, err := uc.bookService.UpdateBookInfo(ctx, req.ID, req.Title, req.AuthorID)
	if err != nil {
		return nil, err
	}

	return &UpdateBookResponse{
		ID:        b.ID,
		Title:     b.Title,
		AuthorID:  b.AuthorID,
		Stock:     b.Stock,
		UpdatedAt: b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
