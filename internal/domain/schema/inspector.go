package schema

import (
	"context"
)

// Inspector 目录元数据查询接口
// 设计说明:
// 1. 接口定义在domain层,MySQL information_schema实现在infrastructure层
// 2. 三个方法都是只读查询,对不存在的表返回空切片而不是错误
//    (与数据库元数据查询"无匹配行"的语义一致)
//    调用方如需区分"表不存在"和"表没有键",先用ListTables交叉确认
// 3. 连接类故障直接向上传播(只读查询没有需要恢复的变更)
type Inspector interface {
	// ListTables 枚举当前库的全部用户表
	// 系统目录表(其他schema、内部前缀表)被排除在结果之外
	ListTables(ctx context.Context) ([]TableInfo, error)

	// ListColumns 枚举指定表的列(按目录定义顺序)
	ListColumns(ctx context.Context, table string) ([]ColumnInfo, error)

	// ListKeys 枚举指定表的主键与外键
	ListKeys(ctx context.Context, table string) (*KeyReport, error)
}
