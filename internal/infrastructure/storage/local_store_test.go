package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/infrastructure/storage"
)

func TestLocalStore_PutYGet(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), "compras/voucher-001.pdf", "application/pdf",
		strings.NewReader("contenido del voucher"))
	require.NoError(t, err)
	assert.Equal(t, "compras/voucher-001.pdf", ref)

	rc, contentType, err := store.Get(context.Background(), ref)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "contenido del voucher", string(data))
	assert.Equal(t, "application/pdf", contentType)
}

func TestLocalStore_GetInexistente(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, _, err = store.Get(context.Background(), "no-existe.pdf")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocalStore_RechazaEscapeDelDirectorio(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "../fuera.pdf", "application/pdf", strings.NewReader("x"))
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestLocalStore_DeleteIdempotente(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), "gastos/recibo.pdf", "application/pdf", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), ref))
	require.NoError(t, store.Delete(context.Background(), ref))

	_, _, err = store.Get(context.Background(), ref)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
