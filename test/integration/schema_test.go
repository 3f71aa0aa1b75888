package integration

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：表结构巡检模块集成测试
//
// 巡检接口对标JDBC的DatabaseMetaData，基于information_schema实现：
// 1. 列出当前库的全部用户表（过滤"__"前缀的内部表）
// 2. 列出指定表的列（按目录定义顺序）
// 3. 列出指定表的主键与外键
// 4. 表不存在时返回空结果而不是报错（与元数据查询语义一致）

// TestSchemaListTables 测试表枚举功能
func TestSchemaListTables(t *testing.T) {
	_, token := RegisterTestCustomer(t, "schema_inspector")

	resp := GetJSON(t, BaseURL+"/admin/schema/tables", token)
	require.Equal(t, 0, resp.Code, "查询表列表应该成功: %s", resp.Message)

	var tables []TableData
	err := json.Unmarshal(resp.Data, &tables)
	require.NoError(t, err, "解析响应数据失败")

	names := make([]string, 0, len(tables))
	for _, tbl := range tables {
		names = append(names, tbl.Name)
		// 内部表（"__"前缀）不应该出现在结果里
		assert.False(t, strings.HasPrefix(tbl.Name, "__"),
			"内部表不应该被列出: %s", tbl.Name)
	}

	// 核心业务表必须在列表里
	assert.Contains(t, names, "books", "表列表应该包含books")
	assert.Contains(t, names, "orders", "表列表应该包含orders")
	assert.Contains(t, names, "customers", "表列表应该包含customers")
	assert.Contains(t, names, "authors", "表列表应该包含authors")

	t.Logf("✓ 表列表查询成功，共%d张表", len(tables))
}

// TestSchemaListColumns 测试列枚举功能
func TestSchemaListColumns(t *testing.T) {
	_, token := RegisterTestCustomer(t, "column_inspector")

	t.Run("books表的列按定义顺序返回", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/admin/schema/tables/books/columns", token)
		require.Equal(t, 0, resp.Code, "查询列信息应该成功: %s", resp.Message)

		var columns []ColumnData
		err := json.Unmarshal(resp.Data, &columns)
		require.NoError(t, err, "解析响应数据失败")

		require.NotEmpty(t, columns, "books表应该有列")

		// book_id是第一列（按ORDINAL_POSITION排序）
		assert.Equal(t, "book_id", columns[0].Name, "第一列应该是book_id")

		names := make([]string, 0, len(columns))
		for _, col := range columns {
			names = append(names, col.Name)
			assert.NotEmpty(t, col.DataType, "每一列都应该有类型信息")
		}
		assert.Contains(t, names, "title")
		assert.Contains(t, names, "stock_quantity")
		assert.Contains(t, names, "author_id")

		t.Logf("✓ books表共%d列: %s", len(columns), strings.Join(names, ", "))
	})

	t.Run("表不存在返回空列表", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/admin/schema/tables/no_such_table/columns", token)

		// 元数据查询语义：无匹配行 => 空结果，不是错误
		assert.Equal(t, 0, resp.Code, "表不存在不应该报错")

		var columns []ColumnData
		err := json.Unmarshal(resp.Data, &columns)
		require.NoError(t, err, "解析响应数据失败")
		assert.Empty(t, columns, "不存在的表应该返回空列表")

		t.Logf("✓ 不存在的表正确返回空列表")
	})
}

// TestSchemaListKeys 测试键枚举功能
func TestSchemaListKeys(t *testing.T) {
	_, token := RegisterTestCustomer(t, "key_inspector")

	t.Run("orders表的主键与外键", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/admin/schema/tables/orders/keys", token)
		require.Equal(t, 0, resp.Code, "查询键信息应该成功: %s", resp.Message)

		var report KeyReportData
		err := json.Unmarshal(resp.Data, &report)
		require.NoError(t, err, "解析响应数据失败")

		// 主键
		require.Len(t, report.PrimaryKeys, 1, "orders表应该有单列主键")
		assert.Equal(t, "order_id", report.PrimaryKeys[0].Name, "主键应该是order_id")

		// 外键：customer_id → customers.customer_id, book_id → books.book_id
		fkByColumn := make(map[string]struct {
			table  string
			column string
		})
		for _, fk := range report.ForeignKeys {
			fkByColumn[fk.Column] = struct {
				table  string
				column string
			}{fk.ReferencedTable, fk.ReferencedColumn}
		}

		customerFK, ok := fkByColumn["customer_id"]
		require.True(t, ok, "orders表应该有customer_id外键")
		assert.Equal(t, "customers", customerFK.table)
		assert.Equal(t, "customer_id", customerFK.column)

		bookFK, ok := fkByColumn["book_id"]
		require.True(t, ok, "orders表应该有book_id外键")
		assert.Equal(t, "books", bookFK.table)
		assert.Equal(t, "book_id", bookFK.column)

		t.Logf("✓ orders表键信息正确: 主键%d个, 外键%d个",
			len(report.PrimaryKeys), len(report.ForeignKeys))
	})

	t.Run("表不存在返回空键集", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/admin/schema/tables/no_such_table/keys", token)

		assert.Equal(t, 0, resp.Code, "表不存在不应该报错")

		var report KeyReportData
		err := json.Unmarshal(resp.Data, &report)
		require.NoError(t, err, "解析响应数据失败")
		assert.Empty(t, report.PrimaryKeys, "不存在的表主键应该为空")
		assert.Empty(t, report.ForeignKeys, "不存在的表外键应该为空")

		t.Logf("✓ 不存在的表正确返回空键集")
	})

	t.Run("巡检结果幂等", func(t *testing.T) {
		// 只读查询:库表结构不变时,连续两次巡检必须返回相同的结果
		resp1 := GetJSON(t, BaseURL+"/admin/schema/tables", token)
		resp2 := GetJSON(t, BaseURL+"/admin/schema/tables", token)
		require.Equal(t, 0, resp1.Code)
		require.Equal(t, 0, resp2.Code)

		var tables1, tables2 []TableData
		require.NoError(t, json.Unmarshal(resp1.Data, &tables1))
		require.NoError(t, json.Unmarshal(resp2.Data, &tables2))
		assert.ElementsMatch(t, tables1, tables2, "两次表枚举应该返回相同集合")

		// 列顺序有目录定义顺序的约定,必须逐项一致
		cols1 := GetJSON(t, BaseURL+"/admin/schema/tables/orders/columns", token)
		cols2 := GetJSON(t, BaseURL+"/admin/schema/tables/orders/columns", token)

		var columns1, columns2 []ColumnData
		require.NoError(t, json.Unmarshal(cols1.Data, &columns1))
		require.NoError(t, json.Unmarshal(cols2.Data, &columns2))
		assert.Equal(t, columns1, columns2, "两次列枚举应该逐项相同")

		keys1 := GetJSON(t, BaseURL+"/admin/schema/tables/orders/keys", token)
		keys2 := GetJSON(t, BaseURL+"/admin/schema/tables/orders/keys", token)

		var report1, report2 KeyReportData
		require.NoError(t, json.Unmarshal(keys1.Data, &report1))
		require.NoError(t, json.Unmarshal(keys2.Data, &report2))
		assert.ElementsMatch(t, report1.PrimaryKeys, report2.PrimaryKeys, "两次主键枚举应该返回相同集合")
		assert.ElementsMatch(t, report1.ForeignKeys, report2.ForeignKeys, "两次外键枚举应该返回相同集合")

		t.Logf("✓ 连续两次巡检结果一致")
	})

	t.Run("未登录不能访问巡检接口", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/admin/schema/tables", "")

		assert.NotEqual(t, 0, resp.Code, "未登录应该被拒绝")

		t.Logf("✓ 未登录正确被拒绝: %s", resp.Message)
	})
}
