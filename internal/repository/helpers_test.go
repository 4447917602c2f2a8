package repository

import (
	"testing"

	"japantune/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupGormWithMock открывает gorm поверх sqlmock
func setupGormWithMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	orm, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), database.GormConfig())
	require.NoError(t, err)
	return orm, mock
}
