package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"migrations/000002_add_index.up.sql":     {Data: []byte("CREATE INDEX idx_updated ON content_entries(updated_at);\n")},
		"migrations/000001_create_table.up.sql":  {Data: []byte("CREATE TABLE content_entries (content_key VARCHAR2(100))")},
		"migrations/000001_create_table.down.sql": {Data: []byte("DROP TABLE content_entries")},
	}

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE content_entries (content_key VARCHAR2(100))")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX idx_updated ON content_entries(updated_at)") + "$").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, RunMigrations(context.Background(), db, fsys))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_StopsOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"migrations/000001_a.up.sql": {Data: []byte("CREATE TABLE a (id NUMBER)")},
		"migrations/000002_b.up.sql": {Data: []byte("CREATE TABLE b (id NUMBER)")},
	}
	dbErr := errors.New("ORA-00955: name is already used by an existing object")
	mock.ExpectExec("CREATE TABLE a").WillReturnError(dbErr)

	err = RunMigrations(context.Background(), db, fsys)
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorContains(t, err, "000001_a.up.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}
