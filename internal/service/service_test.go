package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"japantune/internal/model"
	"japantune/internal/repository"
	"japantune/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func carForm() url.Values {
	return url.Values{
		"mark":         {"Toyota"},
		"model":        {"Supra"},
		"releaseYear":  {"1998"},
		"licensePlate": {"A123BC"},
		"userId":       {"3"},
	}
}

// setupCarServiceAndMocks - хелпер для инициализации сервиса автомобилей и моков
func setupCarServiceAndMocks(t *testing.T) (*Service[model.Car, *model.Car], *mocks.MockStore[model.Car, *model.Car], *mocks.MockCatalog, *mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore[model.Car, *model.Car](ctrl)
	catalog := mocks.NewMockCatalog(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	svc := New[model.Car, *model.Car](model.TableCars, store, NewCarRules(catalog), catalog, WithPublisher(publisher))
	return svc, store, catalog, publisher
}

func TestService_Create_Valid(t *testing.T) {
	svc, store, catalog, publisher := setupCarServiceAndMocks(t)
	ctx := WithActor(context.Background(), "admin")

	catalog.EXPECT().Exists(gomock.Any(), model.TableUsers, 3).Return(true, nil)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *model.Car) error {
		c.ID = 10
		return nil
	})
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e model.AuditEvent) error {
		assert.Equal(t, model.ActionCreate, e.Action)
		assert.Equal(t, model.TableCars, e.Entity)
		assert.Equal(t, 10, e.EntityID)
		assert.Equal(t, "admin", e.Actor)
		return nil
	})

	car, err := svc.Create(ctx, carForm())

	require.NoError(t, err)
	assert.Equal(t, 10, car.ID)
	assert.Equal(t, "Supra", car.Model)
	assert.Equal(t, 1998, car.ReleaseYear)
	require.NotNil(t, car.LicensePlate)
	assert.Equal(t, "A123BC", *car.LicensePlate)
}

func TestService_Create_ReleaseYearBounds(t *testing.T) {
	cases := []struct {
		year string
		ok   bool
	}{
		{"1899", false},
		{"1900", true},
		{"2100", true},
		{"2101", false},
	}
	for _, tc := range cases {
		t.Run(tc.year, func(t *testing.T) {
			svc, store, catalog, publisher := setupCarServiceAndMocks(t)
			form := carForm()
			form.Set("releaseYear", tc.year)

			if tc.ok {
				catalog.EXPECT().Exists(gomock.Any(), model.TableUsers, 3).Return(true, nil)
				store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			} else {
				store.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			}

			_, err := svc.Create(context.Background(), form)

			if tc.ok {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, MsgReleaseYear, verr.Message)
			assert.Equal(t, tc.year, verr.Values.Get("releaseYear"))
		})
	}
}

func TestService_Create_UnparsableInput(t *testing.T) {
	svc, store, _, _ := setupCarServiceAndMocks(t)
	form := carForm()
	form.Set("releaseYear", "девяносто восьмой")
	form.Set("mark", "")

	store.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Create(context.Background(), form)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgInvalidInput, verr.Message)
	assert.Equal(t, "девяносто восьмой", verr.Values.Get("releaseYear"))
	assert.True(t, Recoverable(err))
}

func TestService_Create_MissingOwner(t *testing.T) {
	svc, store, catalog, _ := setupCarServiceAndMocks(t)

	catalog.EXPECT().Exists(gomock.Any(), model.TableUsers, 3).Return(false, nil)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Create(context.Background(), carForm())

	assert.Equal(t, MsgMissingRef, Message(err))
}

func TestService_Create_StoreError(t *testing.T) {
	svc, store, catalog, _ := setupCarServiceAndMocks(t)
	dbErr := errors.New("connection refused")

	catalog.EXPECT().Exists(gomock.Any(), model.TableUsers, 3).Return(true, nil)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dbErr)

	_, err := svc.Create(context.Background(), carForm())

	assert.ErrorIs(t, err, dbErr)
	assert.False(t, Recoverable(err))
	assert.Equal(t, MsgSaveFailed, Message(err))
}

func TestService_Create_ConstraintRejected(t *testing.T) {
	svc, store, catalog, _ := setupCarServiceAndMocks(t)

	catalog.EXPECT().Exists(gomock.Any(), model.TableUsers, 3).Return(true, nil)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("car.create: %w", repository.ErrReference))

	_, err := svc.Create(context.Background(), carForm())

	var rerr *ReferentialError
	require.ErrorAs(t, err, &rerr)
	assert.ErrorIs(t, err, ErrReference)
	assert.Equal(t, "Supra", rerr.Values.Get("model"))
}

func TestService_Update_OnlyMutableFields(t *testing.T) {
	svc, store, catalog, publisher := setupCarServiceAndMocks(t)
	existing := &model.Car{Base: model.Base{ID: 4, Version: 2}, Mark: "Nissan", Model: "Skyline", ReleaseYear: 1995, UserID: 3}
	createdAt := existing.CreatedAt

	store.EXPECT().Get(gomock.Any(), 4).Return(existing, nil)
	catalog.EXPECT().Exists(gomock.Any(), model.TableUsers, 3).Return(true, nil)
	store.EXPECT().Update(gomock.Any(), existing).Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	form := carForm()
	form.Set("version", "2")
	car, err := svc.Update(context.Background(), 4, form)

	require.NoError(t, err)
	assert.Equal(t, 4, car.ID)
	assert.Equal(t, "Toyota", car.Mark)
	assert.Equal(t, createdAt, car.CreatedAt)
}

func TestService_Update_StaleForm(t *testing.T) {
	svc, store, _, _ := setupCarServiceAndMocks(t)

	store.EXPECT().Get(gomock.Any(), 4).Return(&model.Car{Base: model.Base{ID: 4, Version: 3}}, nil)
	store.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	form := carForm()
	form.Set("version", "2")
	_, err := svc.Update(context.Background(), 4, form)

	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, MsgConflict, Message(err))
	assert.True(t, Recoverable(err))
}

func TestService_Update_ConcurrentModification(t *testing.T) {
	svc, store, catalog, _ := setupCarServiceAndMocks(t)

	store.EXPECT().Get(gomock.Any(), 4).Return(&model.Car{Base: model.Base{ID: 4, Version: 1}}, nil)
	catalog.EXPECT().Exists(gomock.Any(), model.TableUsers, 3).Return(true, nil)
	store.EXPECT().Update(gomock.Any(), gomock.Any()).Return(repository.ErrConflict)

	_, err := svc.Update(context.Background(), 4, carForm())

	assert.ErrorIs(t, err, ErrConflict)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr), "конфликт не должен выглядеть как ошибка проверки")
}

func TestService_Update_NotFound(t *testing.T) {
	svc, store, _, _ := setupCarServiceAndMocks(t)

	store.EXPECT().Get(gomock.Any(), 99).Return(nil, repository.ErrNotFound)

	_, err := svc.Update(context.Background(), 99, carForm())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalog(ctrl)
	catalog.EXPECT().Exists(gomock.Any(), model.TableUsers, 3).Return(true, nil).AnyTimes()

	store := newMemoryStore(&model.Car{Base: model.Base{ID: 1, Version: 1}, Mark: "Honda", Model: "NSX", ReleaseYear: 1990, UserID: 3})
	svc := New[model.Car, *model.Car](model.TableCars, store, NewCarRules(catalog), catalog)

	_, err := svc.Update(context.Background(), 1, carForm())
	require.NoError(t, err)
	first := *store.rows[1]

	_, err = svc.Update(context.Background(), 1, carForm())
	require.NoError(t, err)
	second := *store.rows[1]

	assert.Equal(t, first.Mark, second.Mark)
	assert.Equal(t, first.Model, second.Model)
	assert.Equal(t, first.ReleaseYear, second.ReleaseYear)
	assert.Equal(t, first.LicensePlate, second.LicensePlate)
	assert.Equal(t, first.UserID, second.UserID)
}

func TestService_Delete_Direct(t *testing.T) {
	svc, store, _, publisher := setupCarServiceAndMocks(t)

	store.EXPECT().Delete(gomock.Any(), 4).Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

	n, err := svc.Delete(context.Background(), 4)

	require.NoError(t, err, "ошибка аудита не должна ломать удаление")
	assert.Equal(t, int64(1), n)
}

func TestService_Delete_Referenced(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore[model.Material, *model.Material](ctrl)
	catalog := mocks.NewMockCatalog(ctrl)
	svc := New[model.Material, *model.Material](model.TableMaterials, store, NewMaterialRules(catalog), catalog)

	store.EXPECT().Delete(gomock.Any(), 2).Return(fmt.Errorf("material.delete: %w (fk_orders_material)", repository.ErrReference))

	_, err := svc.Delete(context.Background(), 2)

	var rerr *ReferentialError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, MsgInUse, rerr.Message)
	assert.ErrorIs(t, err, ErrReference)
}

func TestService_Delete_Cascade(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore[model.User, *model.User](ctrl)
	catalog := mocks.NewMockCatalog(ctrl)
	cascade := mocks.NewMockCascader(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	svc := New[model.User, *model.User](model.TableUsers, store, NewUserRules(catalog, fakeHash), catalog,
		WithCascade(cascade, model.UserOwnership), WithPublisher(publisher))

	store.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
	cascade.EXPECT().Delete(gomock.Any(), model.UserOwnership, 5).Return(int64(8), nil)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e model.AuditEvent) error {
		assert.Equal(t, model.ActionDelete, e.Action)
		assert.Equal(t, int64(8), e.Rows)
		return nil
	})

	n, err := svc.Delete(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(8), n)
}

func TestService_Delete_CascadeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore[model.Payment, *model.Payment](ctrl)
	catalog := mocks.NewMockCatalog(ctrl)
	cascade := mocks.NewMockCascader(ctrl)
	svc := New[model.Payment, *model.Payment](model.TablePayments, store, NewPaymentRules(catalog), catalog,
		WithCascade(cascade, model.PaymentOwnership))

	cascade.EXPECT().Delete(gomock.Any(), model.PaymentOwnership, 7).Return(int64(0), errors.New("deadlock detected"))

	n, err := svc.Delete(context.Background(), 7)

	assert.Zero(t, n)
	assert.Equal(t, MsgDeleteFailed, Message(err))
}

func TestService_Delete_NotFound(t *testing.T) {
	svc, store, _, _ := setupCarServiceAndMocks(t)

	store.EXPECT().Delete(gomock.Any(), 4).Return(repository.ErrNotFound)

	_, err := svc.Delete(context.Background(), 4)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_EditForm(t *testing.T) {
	svc, store, catalog, _ := setupCarServiceAndMocks(t)
	users := []model.Option{{ID: 3, Label: "Ivan Petrov"}}

	store.EXPECT().Get(gomock.Any(), 4).Return(&model.Car{Base: model.Base{ID: 4, Version: 6}, Mark: "Mazda", Model: "RX-7", ReleaseYear: 1992, UserID: 3}, nil)
	catalog.EXPECT().Options(gomock.Any(), model.LookupUsers).Return(users, nil)

	form, err := svc.EditForm(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "RX-7", form.Values.Get("model"))
	assert.Equal(t, "6", form.Values.Get("version"))
	assert.Equal(t, users, form.Lookups[model.LookupUsers])
	assert.Empty(t, form.Error)
}

func TestService_RetryForm_DropsPasswords(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore[model.User, *model.User](ctrl)
	catalog := mocks.NewMockCatalog(ctrl)
	svc := New[model.User, *model.User](model.TableUsers, store, NewUserRules(catalog, fakeHash), catalog)

	catalog.EXPECT().Options(gomock.Any(), model.LookupRoles).Return([]model.Option{{ID: 1, Label: "admin"}}, nil)

	posted := url.Values{"clientLogin": {"ivan"}, "clientPassword": {"secret"}}
	form, err := svc.RetryForm(context.Background(), 0, posted, invalid(posted, MsgLoginTaken))

	require.NoError(t, err)
	assert.Equal(t, MsgLoginTaken, form.Error)
	assert.Equal(t, "ivan", form.Values.Get("clientLogin"))
	assert.Empty(t, form.Values.Get("clientPassword"))
	assert.Equal(t, "secret", posted.Get("clientPassword"), "исходная форма не меняется")
}

func TestService_RetryForm_ConflictTakesCurrentVersion(t *testing.T) {
	svc, store, catalog, _ := setupCarServiceAndMocks(t)

	store.EXPECT().Get(gomock.Any(), 4).Return(&model.Car{Base: model.Base{ID: 4, Version: 3}, Mark: "Nissan"}, nil).Times(2)
	catalog.EXPECT().Options(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	posted := carForm()
	posted.Set("version", "2")

	form, err := svc.RetryForm(context.Background(), 4, posted, ErrConflict)
	require.NoError(t, err)
	assert.Equal(t, MsgConflict, form.Error)
	assert.Equal(t, "3", form.Values.Get("version"))
	assert.Equal(t, posted.Get("mark"), form.Values.Get("mark"))
	assert.Equal(t, "2", posted.Get("version"), "исходная форма не меняется")

	// При ошибке проверки версия из формы остается прежней.
	form, err = svc.RetryForm(context.Background(), 4, posted, invalid(posted, MsgConstraint))
	require.NoError(t, err)
	assert.Equal(t, "2", form.Values.Get("version"))
}

func TestService_Dependents(t *testing.T) {
	svc, _, catalog, _ := setupCarServiceAndMocks(t)

	catalog.EXPECT().CountReferences(gomock.Any(), model.TableCars, 4).Return([]model.DependentCount{}, nil)

	counts, err := svc.Dependents(context.Background(), 4)

	require.NoError(t, err)
	assert.Empty(t, counts)
}

// memoryStore - хранилище в памяти для проверки повторных обновлений
type memoryStore struct {
	rows map[int]*model.Car
}

func newMemoryStore(cars ...*model.Car) *memoryStore {
	s := &memoryStore{rows: map[int]*model.Car{}}
	for _, c := range cars {
		s.rows[c.ID] = c
	}
	return s
}

func (s *memoryStore) List(context.Context) ([]model.Car, error) { return nil, nil }

func (s *memoryStore) Get(_ context.Context, id int) (*model.Car, error) {
	c, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *memoryStore) Create(_ context.Context, c *model.Car) error {
	c.ID = len(s.rows) + 1
	s.rows[c.ID] = c
	return nil
}

func (s *memoryStore) Update(_ context.Context, c *model.Car) error {
	cp := *c
	cp.Version++
	s.rows[c.ID] = &cp
	return nil
}

func (s *memoryStore) Delete(_ context.Context, id int) error {
	delete(s.rows, id)
	return nil
}
