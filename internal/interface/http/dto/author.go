package dto

// CreateAuthorRequest HTTP新增作者请求
type CreateAuthorRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"威廉·肯尼迪"`
}

// AuthorResponse HTTP作者响应
type AuthorResponse struct {
	ID        uint   `json:"id" example:"1"`
	Name      string `json:"name" example:"威廉·肯尼迪"`
	CreatedAt string `json:"created_at,omitempty" example:"2024-01-15 10:30:00"`
}
