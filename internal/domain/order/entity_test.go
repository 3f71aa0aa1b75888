package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("正常创建", func(t *testing.T) {
		o, err := NewOrder("ORD1699248000123456", 7, 1, 3)

		require.NoError(t, err)
		assert.Equal(t, "ORD1699248000123456", o.OrderNo)
		assert.Equal(t, uint(7), o.CustomerID)
		assert.Equal(t, uint(1), o.BookID)
		assert.Equal(t, 3, o.Quantity)
		assert.False(t, o.CreatedAt.IsZero())
	})

	t.Run("数量为0拒绝", func(t *testing.T) {
		_, err := NewOrder("ORD1", 7, 1, 0)

		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("数量为负拒绝", func(t *testing.T) {
		_, err := NewOrder("ORD1", 7, 1, -5)

		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestOrderIsOwnedBy(t *testing.T) {
	o := &Order{CustomerID: 7}

	assert.True(t, o.IsOwnedBy(7))
	assert.False(t, o.IsOwnedBy(8), "他人不拥有该订单")
}

func TestGenerateOrderNo(t *testing.T) {
	no := GenerateOrderNo()

	// 格式:ORD + 时间戳(秒) + 6位随机数
	assert.True(t, strings.HasPrefix(no, "ORD"), "订单号应该以ORD开头")
	assert.GreaterOrEqual(t, len(no), 13, "订单号长度不应该过短")

	// 多次生成应该基本不重复(随机部分有100万种取值)
	seen := make(map[string]bool)
	duplicates := 0
	for i := 0; i < 100; i++ {
		n := GenerateOrderNo()
		if seen[n] {
			duplicates++
		}
		seen[n] = true
	}
	assert.LessOrEqual(t, duplicates, 1, "短时间内大量重复说明随机数生成有问题")
}
