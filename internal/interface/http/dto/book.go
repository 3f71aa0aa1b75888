package dto

// PublishBookRequest HTTP上架请求
// validator tag说明:
// - required: 必填字段
// - min/max: 数值范围校验
type PublishBookRequest struct {
	Title    string `json:"title" binding:"required,max=200" example:"Go语言实战"`
	AuthorID *uint  `json:"author_id" binding:"omitempty,min=1" example:"1"` // 可空:作者信息暂缺
	Stock    int    `json:"stock" binding:"min=0" example:"100"`
}

// UpdateBookRequest HTTP图书更新请求
// 空字段表示不修改
type UpdateBookRequest struct {
	Title    string `json:"title" binding:"omitempty,max=200" example:"Go语言实战(第2版)"`
	AuthorID *uint  `json:"author_id" binding:"omitempty,min=1" example:"2"`
}

// RestockBookRequest HTTP补货请求
type RestockBookRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=99999" example:"50"`
}

// BookResponse HTTP图书响应
// 用于单个图书详情返回
type BookResponse struct {
	ID         uint   `json:"id" example:"1"`
	Title      string `json:"title" example:"Go语言实战"`
	AuthorID   *uint  `json:"author_id,omitempty" example:"1"`
	AuthorName string `json:"author_name,omitempty" example:"威廉·肯尼迪"`
	Stock      int    `json:"stock" example:"100"`
	CreatedAt  string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt  string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// BookListItem HTTP图书列表项
type BookListItem struct {
	ID        uint   `json:"id" example:"1"`
	Title     string `json:"title" example:"Go语言实战"`
	AuthorID  *uint  `json:"author_id,omitempty" example:"1"`
	Stock     int    `json:"stock" example:"100"`
	CreatedAt string `json:"created_at" example:"2024-01-15 10:30:00"`
}

// ListBooksRequest HTTP图书列表请求
type ListBooksRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	Keyword  string `form:"keyword" binding:"omitempty,max=100" example:"Go"`
}

// ListBooksResponse HTTP图书列表响应
type ListBooksResponse struct {
	List       []BookListItem `json:"list"`
	Total      int64          `json:"total" example:"100"`
	Page       int            `json:"page" example:"1"`
	PageSize   int            `json:"page_size" example:"20"`
	TotalPages int            `json:"total_pages" example:"5"`
}
