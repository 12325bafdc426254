package library

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/gerich15/TemplateHub/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestReplaceAndList(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	got, err := r.List(ctx, "buyer")
	require.NoError(t, err)
	assert.Empty(t, got)

	first := []models.Entitlement{
		{TemplateID: 9, TemplateName: "Portfolio", PurchasedAt: at.Add(time.Hour)},
		{TemplateID: 7, TemplateName: "Landing Page", PurchasedAt: at},
	}
	require.NoError(t, r.Replace(ctx, "buyer", first))
	require.NoError(t, r.Replace(ctx, "other", first[:1]))

	got, err = r.List(ctx, "buyer")
	require.NoError(t, err)
	assert.Equal(t, first, got)

	require.NoError(t, r.Replace(ctx, "buyer", first[1:]))
	got, err = r.List(ctx, "buyer")
	require.NoError(t, err)
	assert.Equal(t, first[1:], got)

	got, err = r.List(ctx, "other")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Replace(ctx, "buyer", []models.Entitlement{{TemplateID: 7, TemplateName: "Landing Page", PurchasedAt: time.Now()}}))
	require.NoError(t, r.Clear(ctx, "buyer"))

	got, err := r.List(ctx, "buyer")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "library.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteRepository(db).Replace(ctx, "buyer", []models.Entitlement{{TemplateID: 7, TemplateName: "Landing Page", PurchasedAt: time.Now()}}))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	got, err := NewSQLiteRepository(db).List(ctx, "buyer")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].TemplateID)
}
