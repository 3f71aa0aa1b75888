package author

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthor(t *testing.T) {
	t.Run("正常创建", func(t *testing.T) {
		a, err := NewAuthor("威廉·肯尼迪")

		require.NoError(t, err)
		assert.Equal(t, "威廉·肯尼迪", a.Name)
		assert.False(t, a.CreatedAt.IsZero())
	})

	t.Run("姓名为空拒绝", func(t *testing.T) {
		_, err := NewAuthor("")

		assert.ErrorIs(t, err, ErrInvalidName)
	})
}
