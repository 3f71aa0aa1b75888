package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/bookdepot/internal/application/author"
	"github.com/xiebiao/bookdepot/internal/interface/http/dto"
	"github.com/xiebiao/bookdepot/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	createAuthorUseCase *appauthor.CreateAuthorUseCase
	listAuthorsUseCase  *appauthor.ListAuthorsUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(
	createAuthorUseCase *appauthor.CreateAuthorUseCase,
	listAuthorsUseCase *appauthor.ListAuthorsUseCase,
) *AuthorHandler {
	return &AuthorHandler{
		createAuthorUseCase: createAuthorUseCase,
		listAuthorsUseCase:  listAuthorsUseCase,
	}
}

// CreateAuthor 新增作者
// @Summary      新增作者
// @Description  录入作者信息(需要登录)
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.createAuthorUseCase.Execute(c.Request.Context(), appauthor.CreateAuthorRequest{
		Name: req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.AuthorResponse{
		ID:        result.ID,
		Name:      result.Name,
		CreatedAt: result.CreatedAt,
	})
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Description  全量作者列表(按主键顺序)
// @Tags         作者
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.AuthorResponse}
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	result, err := h.listAuthorsUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.AuthorResponse, len(result))
	for i, a := range result {
		list[i] = dto.AuthorResponse{ID: a.ID, Name: a.Name}
	}
	response.Success(c, list)
}
