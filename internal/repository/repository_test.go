package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"japantune/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var supplierColumns = []string{"title", "country"}

func supplierRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "version", "created_at", "updated_at", "title", "country"}).
		AddRow(1, 1, now, now, "Tein", "Japan").
		AddRow(2, 3, now, now, "HKS", "Japan")
}

func TestRepository_List(t *testing.T) {
	orm, mock := setupGormWithMock(t)
	repo := New[model.Supplier](orm, model.TableSuppliers, supplierColumns)

	mock.ExpectQuery(`SELECT \* FROM "supplier" ORDER BY id`).WillReturnRows(supplierRows())

	items, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Tein", items[0].Title)
	assert.Equal(t, 3, items[1].Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_PreloadsRelations(t *testing.T) {
	orm, mock := setupGormWithMock(t)
	repo := New[model.Material](orm, model.TableMaterials, []string{"title", "price", "quantity", "supplier_id"}, "Supplier")
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "material" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "version", "created_at", "updated_at", "title", "price", "quantity", "supplier_id"}).
			AddRow(4, 1, now, now, "Coilover", "1200.50", 3, 2))
	mock.ExpectQuery(`SELECT \* FROM "supplier" WHERE .*"id" = \$1`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "country"}).AddRow(2, "HKS", "Japan"))

	items, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, decimal.RequireFromString("1200.50").Equal(items[0].Price))
	assert.Equal(t, "HKS", items[0].Supplier.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get_NotFound(t *testing.T) {
	orm, mock := setupGormWithMock(t)
	repo := New[model.Supplier](orm, model.TableSuppliers, supplierColumns)

	mock.ExpectQuery(`SELECT \* FROM "supplier" WHERE .*"id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	item, err := repo.Get(context.Background(), 42)

	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_Get_Found(t *testing.T) {
	orm, mock := setupGormWithMock(t)
	repo := New[model.Supplier](orm, model.TableSuppliers, supplierColumns)

	mock.ExpectQuery(`SELECT \* FROM "supplier" WHERE .*"id" = \$1`).
		WillReturnRows(supplierRows())

	item, err := repo.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, item.ID)
	assert.Equal(t, "Japan", item.Country)
}

func TestRepository_Create(t *testing.T) {
	orm, mock := setupGormWithMock(t)
	repo := New[model.Supplier](orm, model.TableSuppliers, supplierColumns)

	mock.ExpectQuery(`INSERT INTO "supplier"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	item := &model.Supplier{Title: "Cusco", Country: "Japan"}
	err := repo.Create(context.Background(), item)

	require.NoError(t, err)
	assert.Equal(t, 9, item.ID)
	assert.Equal(t, 1, item.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Duplicate(t *testing.T) {
	orm, mock := setupGormWithMock(t)
	repo := New[model.User](orm, model.TableUsers, nil)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_users_client_login"})

	err := repo.Create(context.Background(), &model.User{ClientLogin: "ivan"})

	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRepository_Update_BumpsVersion(t *testing.T) {
	orm, mock := setupGormWithMock(t)
	repo := New[model.Supplier](orm, model.TableSuppliers, supplierColumns)

	mock.ExpectExec(`UPDATE "supplier" SET .*WHERE version = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	item := &model.Supplier{Base: model.Base{ID: 1, Version: 2}, Title: "Tein", Country: "Japan"}
	err := repo.Update(context.Background(), item)

	require.NoError(t, err)
	assert.Equal(t, 3, item.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_Conflict(t *testing.T) {
	orm, mock := setupGormWithMock(t)
	repo := New[model.Supplier](orm, model.TableSuppliers, supplierColumns)

	mock.ExpectExec(`UPDATE "supplier" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "supplier" WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	item := &model.Supplier{Base: model.Base{ID: 1, Version: 2}, Title: "Tein", Country: "Japan"}
	err := repo.Update(context.Background(), item)

	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 2, item.Version, "версия не должна меняться при конфликте")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_Vanished(t *testing.T) {
	orm, mock := setupGormWithMock(t)
	repo := New[model.Supplier](orm, model.TableSuppliers, supplierColumns)

	mock.ExpectExec(`UPDATE "supplier" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "supplier"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := repo.Update(context.Background(), &model.Supplier{Base: model.Base{ID: 1, Version: 1}})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_Delete(t *testing.T) {
	orm, mock := setupGormWithMock(t)
	repo := New[model.Material](orm, model.TableMaterials, nil)

	mock.ExpectExec(`DELETE FROM "material" WHERE .*"id" = \$1`).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_Referenced(t *testing.T) {
	orm, mock := setupGormWithMock(t)
	repo := New[model.Material](orm, model.TableMaterials, nil)

	mock.ExpectExec(`DELETE FROM "material"`).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "fk_orders_material"})

	err := repo.Delete(context.Background(), 4)

	assert.ErrorIs(t, err, ErrReference)
	assert.Contains(t, err.Error(), "fk_orders_material")
}

func TestRepository_Delete_NotFound(t *testing.T) {
	orm, mock := setupGormWithMock(t)
	repo := New[model.Review](orm, model.TableReviews, nil)

	mock.ExpectExec(`DELETE FROM "review"`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 4), ErrNotFound)
}

func TestClassify_StoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := classify("car.list", cause)

	assert.ErrorIs(t, err, cause)
	for _, sentinel := range []error{ErrNotFound, ErrConflict, ErrReference, ErrDuplicate, ErrCheck} {
		assert.NotErrorIs(t, err, sentinel)
	}
	assert.Nil(t, classify("car.list", nil))
}
