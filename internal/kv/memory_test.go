package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetRemove(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	v, err := m.Get(ctx, "absent")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, m.Set(ctx, "k", []byte("v1")))
	require.NoError(t, m.Set(ctx, "k", []byte("v2")))

	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)

	require.NoError(t, m.Remove(ctx, "k"))
	require.NoError(t, m.Remove(ctx, "k"))

	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemoryStore_ValuesAreCopied(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), out)

	out[1] = 'Y'
	again, _ := m.Get(ctx, "k")
	require.Equal(t, []byte("abc"), again)
}

func TestMemoryStore_Update(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.Update(ctx, "k", func(old []byte) ([]byte, error) {
		require.Nil(t, old)
		return []byte("first"), nil
	}))
	require.NoError(t, m.Update(ctx, "k", func(old []byte) ([]byte, error) {
		return append(old, "+second"...), nil
	}))

	v, _ := m.Get(ctx, "k")
	require.Equal(t, []byte("first+second"), v)

	boom := errors.New("boom")
	err := m.Update(ctx, "k", func(old []byte) ([]byte, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	v, _ = m.Get(ctx, "k")
	require.Equal(t, []byte("first+second"), v, "failed update must not write")
}
