package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：客户模块集成测试
//
// 集成测试 vs 单元测试：
// - 单元测试：Mock外部依赖（数据库、Redis），测试单个函数的逻辑
// - 集成测试：使用真实的数据库和Redis，测试完整的API流程
//
// 集成测试的价值：
// 1. 验证各组件协同工作（Handler → UseCase → Service → Repository → Database）
// 2. 发现配置错误（如数据库连接、Wire依赖注入）
// 3. 验证业务流程的完整性
//
// 运行方式：
//   make test-integration   # 需要先启动Docker环境
//   go test -v ./test/integration/...

// TestCustomerRegister 测试客户注册功能
//
// 测试场景：
// 1. 正常注册
// 2. 重复邮箱注册（应失败）
// 3. 密码格式校验
// 4. 邮箱格式校验
func TestCustomerRegister(t *testing.T) {
	// 教学说明：使用t.Run()组织子测试
	// 好处：
	// 1. 测试结果更清晰（可以看到每个子场景的结果）
	// 2. 子测试失败不影响其他子测试
	// 3. 可以使用 go test -run=TestCustomerRegister/正常注册 运行单个子测试

	t.Run("正常注册", func(t *testing.T) {
		email := GenerateTestEmail("normal_customer")
		registerReq := map[string]string{
			"name":     "测试客户",
			"email":    email,
			"password": "Test1234",
		}

		resp := PostJSON(t, BaseURL+"/customers/register", registerReq, "")

		assert.Equal(t, 0, resp.Code, "注册应该成功")

		var data RegisterData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.NotZero(t, data.ID, "客户ID应该大于0")
		assert.Equal(t, email, data.Email, "返回的邮箱应该与请求一致")
		assert.Equal(t, "测试客户", data.Name, "返回的姓名应该与请求一致")

		t.Logf("✓ 注册成功，客户ID: %d", data.ID)
	})

	t.Run("重复邮箱注册应失败", func(t *testing.T) {
		email := GenerateTestEmail("duplicate_customer")
		registerReq := map[string]string{
			"name":     "测试客户1",
			"email":    email,
			"password": "Test1234",
		}

		resp1 := PostJSON(t, BaseURL+"/customers/register", registerReq, "")
		require.Equal(t, 0, resp1.Code, "第一次注册应该成功")

		registerReq["name"] = "测试客户2"
		resp2 := PostJSON(t, BaseURL+"/customers/register", registerReq, "")

		assert.NotEqual(t, 0, resp2.Code, "重复邮箱注册应该失败")
		assert.Contains(t, resp2.Message, "邮箱", "错误信息应该提示邮箱相关")

		t.Logf("✓ 重复邮箱注册正确返回错误: %s", resp2.Message)
	})

	t.Run("密码过短应失败", func(t *testing.T) {
		registerReq := map[string]string{
			"name":     "测试客户",
			"email":    GenerateTestEmail("short_pwd"),
			"password": "123", // 太短（<8位）
		}

		resp := PostJSON(t, BaseURL+"/customers/register", registerReq, "")

		assert.NotEqual(t, 0, resp.Code, "密码过短应该失败")

		t.Logf("✓ 密码过短正确返回错误: %s", resp.Message)
	})

	t.Run("邮箱格式错误应失败", func(t *testing.T) {
		registerReq := map[string]string{
			"name":     "测试客户",
			"email":    "invalid-email", // 无效邮箱格式
			"password": "Test1234",
		}

		resp := PostJSON(t, BaseURL+"/customers/register", registerReq, "")

		assert.NotEqual(t, 0, resp.Code, "邮箱格式错误应该失败")

		t.Logf("✓ 邮箱格式错误正确返回错误: %s", resp.Message)
	})
}

// TestCustomerLogin 测试客户登录功能
//
// 测试场景：
// 1. 正常登录（返回双Token）
// 2. 密码错误
// 3. 邮箱不存在
func TestCustomerLogin(t *testing.T) {
	// 准备测试数据：先注册一个客户
	email := GenerateTestEmail("login_customer")
	registerReq := map[string]string{
		"name":     "登录测试",
		"email":    email,
		"password": "Test1234",
	}
	registerResp := PostJSON(t, BaseURL+"/customers/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "准备测试数据失败")

	t.Run("正常登录", func(t *testing.T) {
		loginReq := map[string]string{
			"email":    email,
			"password": "Test1234",
		}

		resp := PostJSON(t, BaseURL+"/customers/login", loginReq, "")

		assert.Equal(t, 0, resp.Code, "登录应该成功")

		var data LoginData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		// 教学说明：JWT双Token设计
		// - AccessToken：短期有效（2小时），用于API认证
		// - RefreshToken：长期有效（7天），用于刷新AccessToken
		assert.NotEmpty(t, data.AccessToken, "应该返回AccessToken")
		assert.NotEmpty(t, data.RefreshToken, "应该返回RefreshToken")

		t.Logf("✓ 登录成功，获得双Token")
	})

	t.Run("密码错误应失败", func(t *testing.T) {
		loginReq := map[string]string{
			"email":    email,
			"password": "WrongPwd1",
		}

		resp := PostJSON(t, BaseURL+"/customers/login", loginReq, "")

		assert.NotEqual(t, 0, resp.Code, "密码错误应该失败")

		t.Logf("✓ 密码错误正确返回错误: %s", resp.Message)
	})

	t.Run("邮箱不存在应失败", func(t *testing.T) {
		loginReq := map[string]string{
			"email":    "nobody_" + GenerateTestEmail("x"),
			"password": "Test1234",
		}

		resp := PostJSON(t, BaseURL+"/customers/login", loginReq, "")

		assert.NotEqual(t, 0, resp.Code, "邮箱不存在应该失败")

		t.Logf("✓ 邮箱不存在正确返回错误: %s", resp.Message)
	})
}

// TestCustomerLogout 测试客户登出功能
//
// 测试场景：登出后Token进入黑名单，再次访问受保护接口应被拒绝
func TestCustomerLogout(t *testing.T) {
	_, token := RegisterTestCustomer(t, "logout_customer")

	// 登出
	resp := PostJSON(t, BaseURL+"/customers/logout", nil, token)
	assert.Equal(t, 0, resp.Code, "登出应该成功")

	// 登出后再访问受保护接口（订单列表）
	listResp := GetJSON(t, BaseURL+"/orders", token)
	assert.NotEqual(t, 0, listResp.Code, "登出后Token应该失效")

	t.Logf("✓ 登出后Token正确失效: %s", listResp.Message)
}
