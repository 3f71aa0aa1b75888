package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	t.Run("正常创建", func(t *testing.T) {
		authorID := uint(1)
		b, err := NewBook("Go语言实战", &authorID, 100)

		require.NoError(t, err)
		assert.Equal(t, "Go语言实战", b.Title)
		assert.Equal(t, 100, b.Stock)
		require.NotNil(t, b.AuthorID)
		assert.Equal(t, uint(1), *b.AuthorID)
	})

	t.Run("作者可空", func(t *testing.T) {
		b, err := NewBook("无名氏文集", nil, 10)

		require.NoError(t, err)
		assert.Nil(t, b.AuthorID)
	})

	t.Run("零库存允许", func(t *testing.T) {
		b, err := NewBook("预售图书", nil, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, b.Stock)
	})

	t.Run("书名为空拒绝", func(t *testing.T) {
		_, err := NewBook("", nil, 10)

		assert.ErrorIs(t, err, ErrInvalidTitle)
	})

	t.Run("负库存拒绝", func(t *testing.T) {
		_, err := NewBook("负库存图书", nil, -1)

		assert.ErrorIs(t, err, ErrInvalidStock)
	})
}

func TestBookCanFulfill(t *testing.T) {
	b := &Book{Title: "测试图书", Stock: 10}

	tests := []struct {
		name     string
		quantity int
		want     bool
	}{
		{"数量小于库存", 3, true},
		{"数量恰好等于库存", 10, true}, // 边界:允许库存清零
		{"数量超过库存", 11, false},
		{"数量为0", 0, false},
		{"数量为负", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.CanFulfill(tt.quantity))
		})
	}
}

func TestBookDecrStock(t *testing.T) {
	t.Run("正常扣减", func(t *testing.T) {
		b := &Book{Stock: 10}

		require.NoError(t, b.DecrStock(3))
		assert.Equal(t, 7, b.Stock)
	})

	t.Run("扣到零", func(t *testing.T) {
		b := &Book{Stock: 5}

		require.NoError(t, b.DecrStock(5))
		assert.Equal(t, 0, b.Stock)
	})

	t.Run("库存不足拒绝", func(t *testing.T) {
		b := &Book{Stock: 2}

		err := b.DecrStock(3)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 2, b.Stock, "失败时库存不变")
	})

	t.Run("非法数量拒绝", func(t *testing.T) {
		b := &Book{Stock: 10}

		assert.ErrorIs(t, b.DecrStock(0), ErrInvalidQuantity)
		assert.ErrorIs(t, b.DecrStock(-1), ErrInvalidQuantity)
		assert.Equal(t, 10, b.Stock)
	})
}

func TestBookIncrStock(t *testing.T) {
	b := &Book{Stock: 10}

	require.NoError(t, b.IncrStock(5))
	assert.Equal(t, 15, b.Stock)

	assert.ErrorIs(t, b.IncrStock(0), ErrInvalidQuantity)
	assert.ErrorIs(t, b.IncrStock(-3), ErrInvalidQuantity)
}

func TestBookUpdateInfo(t *testing.T) {
	authorID := uint(1)
	newAuthorID := uint(2)
	b := &Book{Title: "旧书名", AuthorID: &authorID}

	t.Run("空字段不修改", func(t *testing.T) {
		b.UpdateInfo("", nil)

		assert.Equal(t, "旧书名", b.Title)
		assert.Equal(t, uint(1), *b.AuthorID)
	})

	t.Run("非空字段覆盖", func(t *testing.T) {
		b.UpdateInfo("新书名", &newAuthorID)

		assert.Equal(t, "新书名", b.Title)
		assert.Equal(t, uint(2), *b.AuthorID)
	})
}
