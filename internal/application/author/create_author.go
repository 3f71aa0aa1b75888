package author

import (
	"context"

	"github.com/xiebiao/bookdepot/internal/domain/author"
)

// CreateAuthorUseCase 新增作者用例
type CreateAuthorUseCase struct {
	authorRepo author.Repository
}

// NewCreateAuthorUseCase 创建新增作者用例
func NewCreateAuthorUseCase(authorRepo author.Repository) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{
		authorRepo: authorRepo,
	}
}

// CreateAuthorRequest 新增作者请求DTO
type CreateAuthorRequest struct {
	Name string // 作者姓名
}

// CreateAuthorResponse 新增作者响应DTO
type CreateAuthorResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// Execute 执行新增作者用例
func (uc *CreateAuthorUseCase) Execute(ctx context.Context, req CreateAuthorRequest) (*CreateAuthorResponse, error) {
	a, err := author.NewAuthor(req.Name)
	if err != nil {
		return nil, err
	}

	if err := uc.authorRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	return &CreateAuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
