package infra

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLKVWrapsDriverErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("disk I/O error")
	kv := NewSQLKV(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM kv_store").WithArgs("album:1").WillReturnError(boom)
	_, err = kv.Get(ctx, "album:1")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "kv get")

	mock.ExpectExec("INSERT INTO kv_store").WithArgs("album:1", `{}`).WillReturnError(boom)
	err = kv.Set(ctx, "album:1", []byte(`{}`))
	require.ErrorIs(t, err, boom)

	mock.ExpectExec("DELETE FROM kv_store").WithArgs("album:1").WillReturnError(boom)
	err = kv.Delete(ctx, "album:1")
	require.ErrorIs(t, err, boom)

	mock.ExpectQuery("SELECT key, value FROM kv_store").WithArgs(6, "album:").WillReturnError(boom)
	_, err = kv.GetByPrefix(ctx, "album:")
	require.ErrorIs(t, err, boom)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLKVGetMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("faq:1").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	got, err := NewSQLKV(db).Get(context.Background(), "faq:1")
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLKVScanRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT key, value FROM kv_store").
		WithArgs(6, "video:").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("video:1", `{"title":"a"}`).
			AddRow("video:2", `{"title":"b"}`))

	entries, err := NewSQLKV(db).GetByPrefix(context.Background(), "video:")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "video:2", entries[1].Key)
	assert.JSONEq(t, `{"title":"b"}`, string(entries[1].Value))
}
