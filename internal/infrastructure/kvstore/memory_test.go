package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_OrdenDeInsercion(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, NSStock, []byte{2}, []byte("b")))
	require.NoError(t, s.Put(ctx, NSStock, []byte{0}, []byte("a")))
	require.NoError(t, s.Put(ctx, NSStock, []byte{1}, []byte("c")))

	entries, err := s.List(ctx, NSStock, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []byte{2}, entries[0].Key)
	assert.Equal(t, []byte{0}, entries[1].Key)
	assert.Equal(t, []byte{1}, entries[2].Key)
}

func TestMemoryStore_SobrescribirConservaPosicion(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, NSStock, []byte{0}, []byte("a")))
	require.NoError(t, s.Put(ctx, NSStock, []byte{1}, []byte("b")))
	require.NoError(t, s.Put(ctx, NSStock, []byte{0}, []byte("a2")))

	entries, err := s.List(ctx, NSStock, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, []byte{0}, entries[0].Key)
	assert.Equal(t, []byte("a2"), entries[0].Value)

	n, err := s.Len(ctx, NSStock)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)
}

func TestMemoryStore_GetClaveInexistente(t *testing.T) {
	s := NewMemoryStore()
	v, err := s.Get(context.Background(), NSCatalog, []byte{9})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemoryStore_ListOffsetFueraDeRango(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, NSStock, []byte{0}, []byte("a")))

	entries, err := s.List(ctx, NSStock, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = s.List(ctx, NSStock, 0, ^uint64(0))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMemoryTx_CommitAplicaTodo(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Put(ctx, NSStock, []byte{0}, []byte("a")))
	require.NoError(t, tx.Put(ctx, NSPurchases, []byte{0}, []byte("r")))

	// Antes del Commit el estado base no ve nada.
	n, err := s.Len(ctx, NSStock)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)

	require.NoError(t, tx.Commit(ctx))

	v, err := s.Get(ctx, NSStock, []byte{0})
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), v)
	v, err = s.Get(ctx, NSPurchases, []byte{0})
	require.NoError(t, err)
	assert.Equal(t, []byte("r"), v)
}

func TestMemoryTx_RollbackDescartaTodo(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, NSStock, []byte{0}, []byte("a")))

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Put(ctx, NSStock, []byte{0}, []byte("mutado")))
	require.NoError(t, tx.Put(ctx, NSStock, []byte{1}, []byte("nuevo")))
	require.NoError(t, tx.Rollback(ctx))

	v, err := s.Get(ctx, NSStock, []byte{0})
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), v)

	n, err := s.Len(ctx, NSStock)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
}

func TestMemoryTx_LecturasVenEscriturasPropias(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, NSPurchases, []byte{0}, []byte("r0")))

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Put(ctx, NSPurchases, []byte{1}, []byte("r1")))

	v, err := tx.Get(ctx, NSPurchases, []byte{1})
	require.NoError(t, err)
	assert.Equal(t, []byte("r1"), v)

	n, err := tx.Len(ctx, NSPurchases)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)

	entries, err := tx.List(ctx, NSPurchases, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, []byte("r0"), entries[0].Value)
	assert.Equal(t, []byte("r1"), entries[1].Value)

	require.NoError(t, tx.Rollback(ctx))
}

func TestMemoryTx_UsoDespuesDeFinalizarFalla(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	assert.ErrorIs(t, tx.Put(ctx, NSStock, []byte{0}, []byte("a")), errTxDone)
	_, err = tx.Get(ctx, NSStock, []byte{0})
	assert.ErrorIs(t, err, errTxDone)
}
