package book

import (
	"context"

	"github.com/xiebiao/bookdepot/internal/domain/book"
)

// DeleteBookUseCase 图书下架用例
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase 创建下架用例
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
	}
}

// Execute 执行下架用例
// 注意:已产生订单的图书受orders表外键保护,删除会失败并返回错误,
// 这是有意为之(订单历史必须能追溯到图书)
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	return uc.bookService.DeleteBook(ctx, id)
}
