package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：图书与作者模块集成测试
//
// 测试场景覆盖：
// 1. 作者录入（需要认证）
// 2. 图书上架（需要认证，作者可空）
// 3. 图书列表查询（公开接口）、分页、搜索
// 4. 图书详情（回填作者姓名）
// 5. 补货、修改、下架
// 6. 参数验证（书名必填、库存非负）

// TestAuthorCreate 测试作者录入功能
func TestAuthorCreate(t *testing.T) {
	_, token := RegisterTestCustomer(t, "author_creator")

	t.Run("正常录入作者", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/authors", map[string]string{"name": "测试作者"}, token)

		assert.Equal(t, 0, resp.Code, "录入作者应该成功")

		var data AuthorData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.NotZero(t, data.ID, "作者ID应该大于0")
		assert.Equal(t, "测试作者", data.Name, "作者姓名应该一致")

		t.Logf("✓ 作者录入成功，ID: %d", data.ID)
	})

	t.Run("姓名为空应失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/authors", map[string]string{"name": ""}, token)

		assert.NotEqual(t, 0, resp.Code, "姓名为空应该失败")

		t.Logf("✓ 姓名为空正确返回错误: %s", resp.Message)
	})

	t.Run("未登录不能录入作者", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/authors", map[string]string{"name": "匿名作者"}, "")

		assert.NotEqual(t, 0, resp.Code, "未登录应该失败")

		t.Logf("✓ 未登录正确被拒绝: %s", resp.Message)
	})
}

// TestBookPublish 测试图书上架功能
func TestBookPublish(t *testing.T) {
	_, token := RegisterTestCustomer(t, "book_publisher")

	t.Run("正常上架图书", func(t *testing.T) {
		authorID := CreateTestAuthor(t, token, "威廉·肯尼迪")
		bookReq := map[string]interface{}{
			"title":     "《Go语言实战》",
			"author_id": authorID,
			"stock":     100,
		}

		resp := PostJSON(t, BaseURL+"/books", bookReq, token)

		assert.Equal(t, 0, resp.Code, "上架应该成功")

		var data BookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.NotZero(t, data.ID, "图书ID应该大于0")
		assert.Equal(t, "《Go语言实战》", data.Title, "标题应该一致")
		assert.Equal(t, 100, data.Stock, "库存应该一致")
		require.NotNil(t, data.AuthorID, "作者ID不应该为空")
		assert.Equal(t, authorID, *data.AuthorID, "作者ID应该一致")

		t.Logf("✓ 上架成功，图书ID: %d", data.ID)
	})

	t.Run("作者可空", func(t *testing.T) {
		// 业务规则：允许上架暂时没有作者信息的图书
		bookReq := map[string]interface{}{
			"title": "《无名氏文集》",
			"stock": 5,
		}

		resp := PostJSON(t, BaseURL+"/books", bookReq, token)

		assert.Equal(t, 0, resp.Code, "无作者上架应该成功")

		var data BookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")
		assert.Nil(t, data.AuthorID, "作者ID应该为空")

		t.Logf("✓ 无作者图书上架成功，ID: %d", data.ID)
	})

	t.Run("书名为空应失败", func(t *testing.T) {
		bookReq := map[string]interface{}{
			"title": "",
			"stock": 10,
		}

		resp := PostJSON(t, BaseURL+"/books", bookReq, token)

		assert.NotEqual(t, 0, resp.Code, "书名为空应该失败")

		t.Logf("✓ 书名为空正确返回错误: %s", resp.Message)
	})

	t.Run("库存为负应失败", func(t *testing.T) {
		bookReq := map[string]interface{}{
			"title": "《负库存图书》",
			"stock": -1,
		}

		resp := PostJSON(t, BaseURL+"/books", bookReq, token)

		assert.NotEqual(t, 0, resp.Code, "负库存应该失败")

		t.Logf("✓ 负库存正确返回错误: %s", resp.Message)
	})

	t.Run("未登录不能上架", func(t *testing.T) {
		bookReq := map[string]interface{}{
			"title": "《匿名图书》",
			"stock": 10,
		}

		resp := PostJSON(t, BaseURL+"/books", bookReq, "")

		assert.NotEqual(t, 0, resp.Code, "未登录应该失败")

		t.Logf("✓ 未登录正确被拒绝: %s", resp.Message)
	})
}

// TestBookQuery 测试图书查询功能
func TestBookQuery(t *testing.T) {
	_, token := RegisterTestCustomer(t, "book_reader")
	authorID := CreateTestAuthor(t, token, "查询测试作者")

	bookReq := map[string]interface{}{
		"title":     "《查询测试专用图书》",
		"author_id": authorID,
		"stock":     42,
	}
	publishResp := PostJSON(t, BaseURL+"/books", bookReq, token)
	require.Equal(t, 0, publishResp.Code, "准备测试数据失败")

	var published BookData
	require.NoError(t, json.Unmarshal(publishResp.Data, &published))

	t.Run("图书详情回填作者姓名", func(t *testing.T) {
		// 详情接口是公开的，不需要token
		resp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, published.ID), "")

		assert.Equal(t, 0, resp.Code, "查询详情应该成功")

		var data BookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.Equal(t, "《查询测试专用图书》", data.Title)
		assert.Equal(t, 42, data.Stock)
		assert.Equal(t, "查询测试作者", data.AuthorName, "应该回填作者姓名")

		t.Logf("✓ 详情查询成功，作者: %s", data.AuthorName)
	})

	t.Run("图书不存在返回404错误码", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books/999999999", "")

		assert.NotEqual(t, 0, resp.Code, "图书不存在应该失败")

		t.Logf("✓ 图书不存在正确返回错误: %s", resp.Message)
	})

	t.Run("关键词搜索", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books?keyword=查询测试专用", "")

		assert.Equal(t, 0, resp.Code, "搜索应该成功")

		var data BookListData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		require.NotEmpty(t, data.List, "搜索结果不应该为空")
		assert.GreaterOrEqual(t, data.Total, int64(1), "总数应该至少为1")

		t.Logf("✓ 搜索成功，命中%d条", data.Total)
	})

	t.Run("分页参数默认值", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books", "")

		assert.Equal(t, 0, resp.Code, "列表查询应该成功")

		var data BookListData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.Equal(t, 1, data.Page, "默认页码应该是1")
		assert.Equal(t, 20, data.PageSize, "默认每页数量应该是20")

		t.Logf("✓ 分页默认值正确: page=%d, page_size=%d", data.Page, data.PageSize)
	})
}

// TestBookRestock 测试补货功能
func TestBookRestock(t *testing.T) {
	_, token := RegisterTestCustomer(t, "restock_operator")
	bookID := PublishTestBook(t, token, "《补货测试图书》", 10)

	t.Run("正常补货", func(t *testing.T) {
		resp := PutJSON(t, fmt.Sprintf("%s/books/%d/stock", BaseURL, bookID),
			map[string]interface{}{"quantity": 50}, token)

		assert.Equal(t, 0, resp.Code, "补货应该成功")

		// 验证库存已增加
		detail := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID), "")
		var data BookData
		require.NoError(t, json.Unmarshal(detail.Data, &data))
		assert.Equal(t, 60, data.Stock, "补货后库存应该是10+50=60")

		t.Logf("✓ 补货成功，当前库存: %d", data.Stock)
	})

	t.Run("补货数量为0应失败", func(t *testing.T) {
		resp := PutJSON(t, fmt.Sprintf("%s/books/%d/stock", BaseURL, bookID),
			map[string]interface{}{"quantity": 0}, token)

		assert.NotEqual(t, 0, resp.Code, "补货数量为0应该失败")

		t.Logf("✓ 补货数量为0正确返回错误: %s", resp.Message)
	})
}
