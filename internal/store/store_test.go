package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_GetAbsentKey(t *testing.T) {
	st := NewMemory()

	value, found, err := st.Get(context.Background(), KeyProducts)

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestMemory_SetThenGet(t *testing.T) {
	st := NewMemory()

	err := st.Set(context.Background(), KeyOrders, []byte(`[{"id":"a"}]`))
	assert.NoError(t, err)

	value, found, err := st.Get(context.Background(), KeyOrders)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[{"id":"a"}]`), value)
}

func TestMemory_SetOverwrites(t *testing.T) {
	st := NewMemory()

	assert.NoError(t, st.Set(context.Background(), KeyUsers, []byte(`[1]`)))
	assert.NoError(t, st.Set(context.Background(), KeyUsers, []byte(`[1,2]`)))

	value, found, err := st.Get(context.Background(), KeyUsers)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[1,2]`), value)
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	st := NewMemory()

	assert.NoError(t, st.Set(context.Background(), KeyProducts, []byte(`abc`)))

	value, _, err := st.Get(context.Background(), KeyProducts)
	assert.NoError(t, err)
	value[0] = 'x'

	fresh, _, err := st.Get(context.Background(), KeyProducts)
	assert.NoError(t, err)
	assert.Equal(t, []byte(`abc`), fresh)
}

func TestCartKey(t *testing.T) {
	assert.Equal(t, "cart_user-1", CartKey("user-1"))
}
