package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresaoe/portafolio/internal/contact"
	"github.com/andresaoe/portafolio/internal/store"
)

// Set TEST_DATABASE_URL to a disposable database to run these.
func openPostgres(t *testing.T) *store.Postgres {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := store.Connect(ctx, store.PostgresConfig{
		ConnectionString: url,
		RetryAttempts:    1,
		RetryInterval:    time.Second,
		MaxOpenConns:     2,
	})
	require.NoError(t, err)

	pg := store.NewPostgres(pool)
	t.Cleanup(func() { _ = pg.Close() })

	require.NoError(t, store.MigratePostgres(ctx, pool, discardLogger()))
	_, err = pool.Exec(ctx, "TRUNCATE contact_messages")
	require.NoError(t, err)
	return pg
}

func TestPostgres_InsertCountDelete(t *testing.T) {
	ctx := context.Background()
	pg := openPostgres(t)

	require.NoError(t, pg.Insert(ctx, contact.Submission{Name: "Jo", Email: "jo@example.com", Message: "Mensaje en Postgres"}))

	n, err := pg.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	recent, err := pg.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)

	require.NoError(t, pg.Delete(ctx, recent[0].ID))
	require.ErrorIs(t, pg.Delete(ctx, recent[0].ID), store.ErrNotFound)
}

func TestPostgres_EmailConstraintMessage(t *testing.T) {
	pg := openPostgres(t)

	err := pg.Insert(context.Background(), contact.Submission{Name: "Jo", Email: "sin-arroba", Message: "Mensaje en Postgres"})

	var insertErr *store.InsertError
	require.ErrorAs(t, err, &insertErr)
	assert.Contains(t, insertErr.Error(), "contact_messages_email_format")
	assert.NotContains(t, insertErr.Error(), "SQLSTATE")
}

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := store.Connect(context.Background(), store.PostgresConfig{ConnectionString: "://nope"})
	require.ErrorIs(t, err, store.ErrParseConfig)
}
