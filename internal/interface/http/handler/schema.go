package handler

import (
	"github.com/gin-gonic/gin"

	appschema "github.com/xiebiao/bookdepot/internal/application/schema"
	"github.com/xiebiao/bookdepot/pkg/response"
)

// SchemaHandler 表结构巡检HTTP处理器
// 设计说明:
// 1. 运维/排障用接口,挂在/api/v1/admin下并要求登录
// 2. 结果直接来自information_schema,建表加列后立刻生效
// 3. 对不存在的表返回空列表而非404(与目录查询"无匹配行"语义一致)
type SchemaHandler struct {
	inspectSchemaUseCase *appschema.InspectSchemaUseCase
}

// NewSchemaHandler 创建表结构处理器
func NewSchemaHandler(inspectSchemaUseCase *appschema.InspectSchemaUseCase) *SchemaHandler {
	return &SchemaHandler{
		inspectSchemaUseCase: inspectSchemaUseCase,
	}
}

// ListTables 枚举用户表
// @Summary      枚举用户表
// @Description  当前库的全部业务表(排除内部前缀表)
// @Tags         表结构
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]schema.TableInfo}
// @Router       /api/v1/admin/schema/tables [get]
func (h *SchemaHandler) ListTables(c *gin.Context) {
	tables, err := h.inspectSchemaUseCase.ListTables(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tables)
}

// ListColumns 枚举表的列
// @Summary      枚举表的列
// @Description  指定表的列(按目录定义顺序);表不存在返回空列表
// @Tags         表结构
// @Produce      json
// @Security     BearerAuth
// @Param        table path string true "表名"
// @Success      200 {object} response.Response{data=[]schema.ColumnInfo}
// @Router       /api/v1/admin/schema/tables/{table}/columns [get]
func (h *SchemaHandler) ListColumns(c *gin.Context) {
	columns, err := h.inspectSchemaUseCase.ListColumns(c.Request.Context(), c.Param("table"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, columns)
}

// ListKeys 枚举表的键
// @Summary      枚举表的键
// @Description  指定表的主键与外键;无键或表不存在返回空报表
// @Tags         表结构
// @Produce      json
// @Security     BearerAuth
// @Param        table path string true "表名"
// @Success      200 {object} response.Response{data=schema.KeyReport}
// @Router       /api/v1/admin/schema/tables/{table}/keys [get]
func (h *SchemaHandler) ListKeys(c *gin.Context) {
	keys, err := h.inspectSchemaUseCase.ListKeys(c.Request.Context(), c.Param("table"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, keys)
}

// DescribeTable 单表结构报表
// @Summary      单表结构报表
// @Description  列+键的汇总视图
// @Tags         表结构
// @Produce      json
// @Security     BearerAuth
// @Param        table path string true "表名"
// @Success      200 {object} response.Response{data=appschema.TableReport}
// @Router       /api/v1/admin/schema/tables/{table} [get]
func (h *SchemaHandler) DescribeTable(c *gin.Context) {
	report, err := h.inspectSchemaUseCase.DescribeTable(c.Request.Context(), c.Param("table"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}
