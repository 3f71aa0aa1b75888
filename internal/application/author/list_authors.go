package author

import (
	"context"

	"github.com/xiebiao/bookdepot/internal/domain/author"
)

// ListAuthorsUseCase 作者列表查询用例
// 说明:作者总量有限,不做分页,按主键顺序全量返回
type ListAuthorsUseCase struct {
	authorRepo author.Repository
}

// NewListAuthorsUseCase 创建作者列表用例
func NewListAuthorsUseCase(authorRepo author.Repository) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{
		authorRepo: authorRepo,
	}
}

// AuthorItem 作者列表项DTO
type AuthorItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Execute 执行作者列表查询
func (uc *ListAuthorsUseCase) Execute(ctx context.Context) ([]AuthorItem, error) {
	authors, err := uc.authorRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]AuthorItem, len(authors))
	for i, a := range authors {
		list[i] = AuthorItem{ID: a.ID, Name: a.Name}
	}
	return list, nil
}
