package mysql

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/xiebiao/bookdepot/internal/domain/schema"
	apperrors "github.com/xiebiao/bookdepot/pkg/errors"
)

// internalTablePrefix 内部保留表前缀
// 以"__"开头的表(如迁移记录、对账快照)属于内部簿记,不对外展示
// 过滤逻辑收在Inspector内部,调用方不需要记住这条约定
const internalTablePrefix = "__"

// schemaInspector 目录元数据查询实现(MySQL information_schema)
// 设计说明:
// 1. 对标JDBC的DatabaseMetaData:getTables/getColumns/getPrimaryKeys/getImportedKeys
// 2. 所有查询都用TABLE_SCHEMA = DATABASE()限定在当前库,
//    mysql/sys/information_schema等系统库天然不会出现在结果里
// 3. 只读查询,无事务需求;表不存在时信息模式返回零行,对应空切片
type schemaInspector struct {
	db *gorm.DB
}

// NewSchemaInspector 创建目录元数据查询器
func NewSchemaInspector(db *gorm.DB) schema.Inspector {
	return &schemaInspector{db: db}
}

// ListTables 枚举当前库的全部用户表
func (i *schemaInspector) ListTables(ctx context.Context) ([]schema.TableInfo, error) {
	var names []string
	err := i.db.WithContext(ctx).Raw(`
		SELECT TABLE_NAME
		FROM information_schema.TABLES
		WHERE TABLE_SCHEMA = DATABASE()
		  AND TABLE_TYPE = 'BASE TABLE'
		ORDER BY TABLE_NAME`).Scan(&names).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询表列表失败")
	}

	return filterInternalTables(names), nil
}

// ListColumns 枚举指定表的列(按目录定义顺序)
func (i *schemaInspector) ListColumns(ctx context.Context, table string) ([]schema.ColumnInfo, error) {
	type columnRow struct {
		ColumnName string
		ColumnType string
	}

	var rows []columnRow
	err := i.db.WithContext(ctx).Raw(`
		SELECT COLUMN_NAME AS column_name, COLUMN_TYPE AS column_type
		FROM information_schema.COLUMNS
		WHERE TABLE_SCHEMA = DATABASE()
		  AND TABLE_NAME = ?
		ORDER BY ORDINAL_POSITION`, table).Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询列信息失败")
	}

	// 表不存在时rows为空,直接返回空切片(与元数据查询"无匹配行"语义一致)
	columns := make([]schema.ColumnInfo, len(rows))
	for idx, row := range rows {
		columns[idx] = schema.ColumnInfo{
			Name:     row.ColumnName,
			DataType: row.ColumnType,
		}
	}
	return columns, nil
}

// ListKeys 枚举指定表的主键与外键
// 主键:KEY_COLUMN_USAGE中CONSTRAINT_NAME='PRIMARY'的列(按序号排序,支持联合主键)
// 外键:REFERENCED_TABLE_NAME非空的列
func (i *schemaInspector) ListKeys(ctx context.Context, table string) (*schema.KeyReport, error) {
	var pkNames []string
	err := i.db.WithContext(ctx).Raw(`
		SELECT COLUMN_NAME
		FROM information_schema.KEY_COLUMN_USAGE
		WHERE TABLE_SCHEMA = DATABASE()
		  AND TABLE_NAME = ?
		  AND CONSTRAINT_NAME = 'PRIMARY'
		ORDER BY ORDINAL_POSITION`, table).Scan(&pkNames).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询主键失败")
	}

	type fkRow struct {
		ColumnName           string
		ReferencedTableName  string
		ReferencedColumnName string
	}

	var fkRows []fkRow
	err = i.db.WithContext(ctx).Raw(`
		SELECT COLUMN_NAME            AS column_name,
		       REFERENCED_TABLE_NAME  AS referenced_table_name,
		       REFERENCED_COLUMN_NAME AS referenced_column_name
		FROM information_schema.KEY_COLUMN_USAGE
		WHERE TABLE_SCHEMA = DATABASE()
		  AND TABLE_NAME = ?
		  AND REFERENCED_TABLE_NAME IS NOT NULL
		ORDER BY CONSTRAINT_NAME, ORDINAL_POSITION`, table).Scan(&fkRows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询外键失败")
	}

	report := &schema.KeyReport{
		PrimaryKeys: make([]schema.KeyColumn, len(pkNames)),
		ForeignKeys: make([]schema.ForeignKey, len(fkRows)),
	}
	for idx, name := range pkNames {
		report.PrimaryKeys[idx] = schema.KeyColumn{Name: name}
	}
	for idx, row := range fkRows {
		report.ForeignKeys[idx] = schema.ForeignKey{
			Column:           row.ColumnName,
			ReferencedTable:  row.ReferencedTableName,
			ReferencedColumn: row.ReferencedColumnName,
		}
	}

	// 没有键的表(或表不存在)返回两个空切片,不是错误
	return report, nil
}

// filterInternalTables 过滤内部保留表
// 独立成纯函数便于单元测试(不需要真实数据库)
func filterInternalTables(names []string) []schema.TableInfo {
	tables := make([]schema.TableInfo, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, internalTablePrefix) {
			continue
		}
		tables = append(tables, schema.TableInfo{Name: name})
	}
	return tables
}
