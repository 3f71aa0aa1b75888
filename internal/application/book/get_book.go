package book

import (
	"context"
	"errors"

	"github.com/xiebiao/bookdepot/internal/domain/author"
	"github.com/xiebiao/bookdepot/internal/domain/book"
)

// GetBookUseCase 图书详情查询用例
// 设计说明:跨聚合组装(Book + Author),作者名在应用层查出拼装,
// 领域实体之间不相互引用
type GetBookUseCase struct {
	bookService book.Service
	authorRepo  author.Repository
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(bookService book.Service, authorRepo author.Repository) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
		authorRepo:  authorRepo,
	}
}

// GetBookResponse 详情响应DTO
type GetBookResponse struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	AuthorID   *uint  `json:"author_id,omitempty"`
	AuthorName string `json:"author_name,omitempty"`
	Stock      int    `json:"stock"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// Execute 执行详情查询
// 边界情况:图书的作者被删除后AuthorID置NULL,此时author_name为空
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*GetBookResponse, error) {
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &GetBookResponse{
		ID:        b.ID,
		Title:     b.Title,
		AuthorID:  b.AuthorID,
		Stock:     b.Stock,
		CreatedAt: b.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}

	if b.AuthorID != nil {
		a, err := uc.authorRepo.FindByID(ctx, *b.AuthorID)
		switch {
		case err == nil:
			resp.AuthorName = a.Name
		case errors.Is(err, author.ErrAuthorNotFound):
			// 外键约束下不应出现,出现时按作者缺失处理
		default:
			return nil, err
		}
	}

	return resp, nil
}
