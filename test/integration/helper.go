package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 教学说明：集成测试辅助工具
// 这个文件包含集成测试的通用辅助函数，遵循DRY原则（Don't Repeat Yourself）
// 将重复的代码（HTTP请求、JSON解析、注册登录流程）封装成可复用的函数
//
// 运行前提：服务已在本地启动（go run ./cmd/api），MySQL/Redis可用

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// RegisterData 注册响应数据
type RegisterData struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthorData 作者响应数据
type AuthorData struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// BookData 图书响应数据
type BookData struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	AuthorID   *uint  `json:"author_id"`
	AuthorName string `json:"author_name"`
	Stock      int    `json:"stock"`
}

// BookListData 图书列表响应数据
type BookListData struct {
	List       []BookData `json:"list"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}

// OrderData 下单响应数据
type OrderData struct {
	OrderID uint   `json:"order_id"`
	OrderNo string `json:"order_no"`
}

// OrderDetailData 订单详情响应数据
type OrderDetailData struct {
	OrderID    uint   `json:"order_id"`
	OrderNo    string `json:"order_no"`
	CustomerID uint   `json:"customer_id"`
	BookID     uint   `json:"book_id"`
	Quantity   int    `json:"quantity"`
}

// OrderListData 订单列表响应数据
type OrderListData struct {
	List     []OrderDetailData `json:"list"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// TableData 表信息响应数据
type TableData struct {
	Name string `json:"name"`
}

// ColumnData 列信息响应数据
type ColumnData struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
}

// KeyReportData 键信息响应数据
type KeyReportData struct {
	PrimaryKeys []struct {
		Name string `json:"name"`
	} `json:"primary_keys"`
	ForeignKeys []struct {
		Column           string `json:"column"`
		ReferencedTable  string `json:"referenced_table"`
		ReferencedColumn string `json:"referenced_column"`
	} `json:"foreign_keys"`
}

// PostJSON 发送POST请求并解析JSON响应
//
// 教学说明：
// - 使用*testing.T参数，可以在失败时立即终止测试
// - 使用require包进行断言，失败会立即停止（不继续执行）
// - 返回*Response而非error，简化调用方代码
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	jsonData, err := json.Marshal(data)
	require.NoError(t, err, "JSON序列化失败")

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	require.NoError(t, err, "创建HTTP请求失败")

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(body))

	return &result
}

// PutJSON 发送PUT请求并解析JSON响应
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	jsonData, err := json.Marshal(data)
	require.NoError(t, err, "JSON序列化失败")

	req, err := http.NewRequest("PUT", url, bytes.NewBuffer(jsonData))
	require.NoError(t, err, "创建HTTP请求失败")

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(body))

	return &result
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string, token string) *Response {
	req, err := http.NewRequest("GET", url, nil)
	require.NoError(t, err, "创建HTTP请求失败")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(body))

	return &result
}

// GenerateTestEmail 生成唯一的测试邮箱
//
// 教学说明：
// 使用纳秒时间戳确保邮箱唯一性，避免测试重复运行时邮箱冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// RegisterTestCustomer 注册测试客户并返回Token
//
// 教学说明：
// 这是一个"高阶"辅助函数，封装了注册+登录的完整流程
// 简化了测试代码，让测试更关注业务逻辑而非基础设施
func RegisterTestCustomer(t *testing.T, name string) (email string, token string) {
	// 1. 注册
	email = GenerateTestEmail(name)
	registerReq := map[string]string{
		"name":     name,
		"email":    email,
		"password": "Test1234",
	}

	registerResp := PostJSON(t, BaseURL+"/customers/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	// 2. 登录
	loginReq := map[string]string{
		"email":    email,
		"password": "Test1234",
	}

	loginResp := PostJSON(t, BaseURL+"/customers/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return email, loginData.AccessToken
}

// CreateTestAuthor 录入测试作者并返回作者ID
func CreateTestAuthor(t *testing.T, token string, name string) uint {
	resp := PostJSON(t, BaseURL+"/authors", map[string]string{"name": name}, token)
	require.Equal(t, 0, resp.Code, "录入作者失败: %s", resp.Message)

	var data AuthorData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析作者响应失败")

	return data.ID
}

// PublishTestBook 上架测试图书并返回图书ID
//
// 教学说明：
// 封装了图书上架流程，返回bookID供后续测试使用
func PublishTestBook(t *testing.T, token string, title string, stock int) uint {
	bookReq := map[string]interface{}{
		"title": title,
		"stock": stock,
	}

	bookResp := PostJSON(t, BaseURL+"/books", bookReq, token)
	require.Equal(t, 0, bookResp.Code, "图书上架失败: %s", bookResp.Message)

	var bookData BookData
	err := json.Unmarshal(bookResp.Data, &bookData)
	require.NoError(t, err, "解析图书响应失败")

	return bookData.ID
}
