package migration_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/muhammadheryan/inventory-management/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_NilDB(t *testing.T) {
	assert.Error(t, migration.RunMigrations(context.Background(), nil))
}

func TestRunMigrations_ReleasesConnectionOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// an empty schema name stops the driver before any statement runs
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DATABASE()")).
		WillReturnRows(sqlmock.NewRows([]string{"DATABASE()"}).AddRow(""))

	err = migration.RunMigrations(context.Background(), db)
	require.Error(t, err)

	assert.Equal(t, 0, db.Stats().InUse)
	// the shared pool is still usable afterwards
	assert.NoError(t, db.PingContext(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
