package schema

import (
	"context"

	"github.com/xiebiao/bookdepot/internal/domain/schema"
)

// InspectSchemaUseCase 表结构巡检用例
// 设计说明:
// 1. 编排Inspector的三个查询,为HTTP层提供报表形式的输出
// 2. 不做任何缓存:表结构是运行时数据,DDL之后必须立刻反映
type InspectSchemaUseCase struct {
	inspector schema.Inspector
}

// NewInspectSchemaUseCase 创建巡检用例
func NewInspectSchemaUseCase(inspector schema.Inspector) *InspectSchemaUseCase {
	return &InspectSchemaUseCase{
		inspector: inspector,
	}
}

// ListTables 枚举当前库的用户表
func (uc *InspectSchemaUseCase) ListTables(ctx context.Context) ([]schema.TableInfo, error) {
	return uc.inspector.ListTables(ctx)
}

// ListColumns 枚举指定表的列(目录定义顺序)
// 表不存在时返回空列表,不报错
func (uc *InspectSchemaUseCase) ListColumns(ctx context.Context, table string) ([]schema.ColumnInfo, error) {
	return uc.inspector.ListColumns(ctx, table)
}

// ListKeys 枚举指定表的主键与外键
// 无键或表不存在时返回空的KeyReport
func (uc *InspectSchemaUseCase) ListKeys(ctx context.Context, table string) (*schema.KeyReport, error) {
	return uc.inspector.ListKeys(ctx, table)
}

// TableReport 单表完整结构报表
type TableReport struct {
	Table   string              `json:"table"`
	Columns []schema.ColumnInfo `json:"columns"`
	Keys    *schema.KeyReport   `json:"keys"`
}

// DescribeTable 汇总单表的列与键信息
func (uc *InspectSchemaUseCase) DescribeTable(ctx context.Context, table string) (*TableReport, error) {
	columns, err := uc.inspector.ListColumns(ctx, table)
	if err != nil {
		return nil, err
	}

	keys, err := uc.inspector.ListKeys(ctx, table)
	if err != nil {
		return nil, err
	}

	return &TableReport{
		Table:   table,
		Columns: columns,
		Keys:    keys,
	}, nil
}
