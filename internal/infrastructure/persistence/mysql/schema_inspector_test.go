package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xiebiao/bookdepot/internal/domain/schema"
)

func TestFilterInternalTables(t *testing.T) {
	t.Run("过滤内部表前缀", func(t *testing.T) {
		names := []string{
			"__migrations",
			"__stock_snapshot",
			"authors",
			"books",
			"customers",
			"orders",
		}

		tables := filterInternalTables(names)

		assert.Equal(t, []schema.TableInfo{
			{Name: "authors"},
			{Name: "books"},
			{Name: "customers"},
			{Name: "orders"},
		}, tables)
	})

	t.Run("单下划线前缀不过滤", func(t *testing.T) {
		// 约定是"__"双下划线前缀,普通下划线开头的表是正常用户表
		tables := filterInternalTables([]string{"_drafts", "books"})

		assert.Len(t, tables, 2)
	})

	t.Run("空输入返回空切片", func(t *testing.T) {
		tables := filterInternalTables(nil)

		assert.NotNil(t, tables, "应该返回空切片而不是nil")
		assert.Empty(t, tables)
	})

	t.Run("全部是内部表", func(t *testing.T) {
		tables := filterInternalTables([]string{"__a", "__b"})

		assert.Empty(t, tables)
	})
}
