package schema

// 目录元数据(catalog metadata)的领域类型
// 设计说明:
// 1. 这些类型描述的是"表结构"而非"行数据",来源是数据库的信息模式
// 2. 结果完全是运行时数据驱动的:建表/加列后重新查询,结果随之变化
// 3. 只读、无副作用、可重复查询(两次查询之间无DDL则结果一致)

// TableInfo 表信息
type TableInfo struct {
	Name string `json:"name"` // 表名
}

// ColumnInfo 列信息
type ColumnInfo struct {
	Name     string `json:"name"`      // 列名
	DataType string `json:"data_type"` // 声明类型(如int unsigned、varchar(255))
}

// KeyColumn 主键列
type KeyColumn struct {
	Name string `json:"name"` // 列名
}

// ForeignKey 外键信息
type ForeignKey struct {
	Column           string `json:"column"`            // 本表列名
	ReferencedTable  string `json:"referenced_table"`  // 引用的表
	ReferencedColumn string `json:"referenced_column"` // 引用的列
}

// KeyReport 某张表的键信息汇总
type KeyReport struct {
	PrimaryKeys []KeyColumn  `json:"primary_keys"`
	ForeignKeys []ForeignKey `json:"foreign_keys"`
}
