package book

import (
	"context"

	"github.com/xiebiao/bookdepot/internal/domain/book"
)

// PublishBookUseCase 图书上架用例
// 设计说明:
// 1. 应用层负责用例编排,协调领域服务完成业务流程
// 2. 输入输出使用DTO(Data Transfer Object),与HTTP层解耦
// 3. 此用例比较简单,只需调用领域服务即可
type PublishBookUseCase struct {
	bookService book.Service
}

// NewPublishBookUseCase 创建上架用例
func NewPublishBookUseCase(bookService book.Service) *PublishBookUseCase {
	return &PublishBookUseCase{
		bookService: bookService,
	}
}

// PublishBookRequest 上架请求DTO
type PublishBookRequest struct {
	Title    string // 书名
	AuthorID *uint  // 作者ID(可空,作者信息暂缺时不填)
	Stock    int    // 初始库存
}

// PublishBookResponse 上架响应DTO
type PublishBookResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	AuthorID  *uint  `json:"author_id,omitempty"`
	Stock     int    `json:"stock"`
	CreatedAt string `json:"created_at"`
}

// Execute 执行上架用例
// 学习要点:
// 1. 应用层不直接操作Repository,通过领域服务间接操作
// 2. 业务规则校验由领域服务负责(书名非空、库存非负)
// 3. 作者存在性由外键约束保证,违反时领域层返回ErrAuthorNotExists
func (uc *PublishBookUseCase) Execute(ctx context.Context, req PublishBookRequest) (*PublishBookResponse, error) {
	b, err := uc.bookService.PublishBook(ctx, req.Title, req.AuthorID, req.Stock)
	if err != nil {
		return nil, err
	}

	return &PublishBookResponse{
		ID:        b.ID,
		Title:     b.Title,
		AuthorID:  b.AuthorID,
		Stock:     b.Stock,
		CreatedAt: b.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
