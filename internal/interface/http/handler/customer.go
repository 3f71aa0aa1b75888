package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	appcustomer "github.com/xiebiao/bookdepot/internal/application/customer"
	"github.com/xiebiao/bookdepot/internal/interface/http/dto"
	"github.com/xiebiao/bookdepot/internal/interface/http/middleware"
	"github.com/xiebiao/bookdepot/pkg/response"
)

// CustomerHandler 客户HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑（业务逻辑在domain和application层）
// 3. 使用依赖注入，便于测试
type CustomerHandler struct {
	registerUseCase *appcustomer.RegisterUseCase
	loginUseCase    *appcustomer.LoginUseCase
	logoutUseCase   *appcustomer.LogoutUseCase
}

// NewCustomerHandler 创建客户处理器
func NewCustomerHandler(
	registerUseCase *appcustomer.RegisterUseCase,
	loginUseCase *appcustomer.LoginUseCase,
	logoutUseCase *appcustomer.LogoutUseCase,
) *CustomerHandler {
	return &CustomerHandler{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		logoutUseCase:   logoutUseCase,
	}
}

// Register 客户注册
// @Summary      客户注册
// @Description  创建新客户账号
// @Tags         客户
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      200 {object} response.Response{data=dto.CustomerResponse} "注册成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Router       /api/v1/customers/register [post]
func (h *CustomerHandler) Register(c *gin.Context) {
	// 1. 绑定并验证参数
	// 学习要点：Gin的ShouldBindJSON会自动校验binding tag
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// 参数验证失败（如邮箱格式错误、密码长度不足）
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	// 2. 调用应用层用例
	// 学习要点：Handler不直接调用domain层，而是通过application层
	result, err := h.registerUseCase.Execute(c.Request.Context(), appcustomer.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})

	if err != nil {
		// 业务错误（如邮箱已存在、密码强度不足）
		response.Error(c, err)
		return
	}

	// 3. 返回成功响应
	// 将application层的DTO转换为HTTP层的DTO
	response.Success(c, &dto.CustomerResponse{
		ID:    result.ID,
		Name:  result.Name,
		Email: result.Email,
	})
}

// Login 客户登录
// @Summary      客户登录
// @Description  验证邮箱密码，返回JWT Token
// @Tags         客户
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{data=dto.LoginResponse} "登录成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /api/v1/customers/login [post]
func (h *CustomerHandler) Login(c *gin.Context) {
	// 1. 绑定并验证参数
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	// 2. 调用登录用例
	result, err := h.loginUseCase.Execute(c.Request.Context(), appcustomer.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})

	if err != nil {
		// 登录失败（邮箱不存在或密码错误）
		response.Error(c, err)
		return
	}

	// 3. 返回成功响应（包含Token）
	response.Success(c, &dto.LoginResponse{
		Customer: dto.CustomerResponse{
			ID:    result.Customer.ID,
			Name:  result.Customer.Name,
			Email: result.Customer.Email,
		},
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// Logout 客户登出
// @Summary      客户登出
// @Description  删除会话并将当前Token加入黑名单
// @Tags         客户
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "登出成功"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/customers/logout [post]
func (h *CustomerHandler) Logout(c *gin.Context) {
	customerID := middleware.MustGetCustomerID(c)

	// 提取当前Access Token(中间件已验证过格式)
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")

	if err := h.logoutUseCase.Execute(c.Request.Context(), customerID, token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// =========================================
// 学习要点总结
// =========================================
//
// 1. 为什么需要多个DTO？
//    - HTTP层DTO（dto.RegisterRequest）：包含验证tag，服务于HTTP协议
//    - 应用层DTO（appcustomer.RegisterRequest）：纯数据结构，服务于用例
//    - 领域实体（customer.Customer）：包含业务逻辑，不应暴露给外部
//
// 2. 参数验证的三层防护：
//    - HTTP层：binding tag校验（格式、长度）
//    - 领域服务：业务规则校验（密码强度、邮箱唯一性）
//    - 数据库：约束校验（UNIQUE索引、NOT NULL）
//
// 3. 错误处理：
//    - 参数绑定失败：返回40900（客户端参数错误）
//    - 业务错误：由response.Error()自动处理AppError
//    - 系统错误：包装为50000，记录详细日志
