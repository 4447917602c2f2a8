package appcontext

import (
	"errors"
	"fmt"

	"japantune/internal/api"
	"japantune/internal/auth"
	"japantune/internal/config"
	"japantune/internal/database"
	"japantune/internal/kafka"
	"japantune/internal/model"
	"japantune/internal/repository"
	"japantune/internal/service"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Изменяемые колонки сущностей. created_at и payment_date сюда не входят.
var (
	userColumns     = []string{"first_name", "sur_name", "last_name", "phone_number", "client_login", "client_password", "card_num", "role_id"}
	carColumns      = []string{"mark", "model", "release_year", "license_plate", "user_id"}
	supplierColumns = []string{"title", "country"}
	materialColumns = []string{"title", "price", "quantity", "supplier_id"}
	orderColumns    = []string{"order_date", "status", "payment_id", "user_id", "material_id", "review_id"}
	paymentColumns  = []string{"price", "pay_method", "user_id"}
	reviewColumns   = []string{"title", "rating", "review_date", "user_id"}
)

// Services - CRUD-сервисы всех сущностей.
type Services struct {
	Users     *service.Service[model.User, *model.User]
	Cars      *service.Service[model.Car, *model.Car]
	Suppliers *service.Service[model.Supplier, *model.Supplier]
	Materials *service.Service[model.Material, *model.Material]
	Orders    *service.Service[model.Order, *model.Order]
	Payments  *service.Service[model.Payment, *model.Payment]
	Reviews   *service.Service[model.Review, *model.Review]
}

// ApplicationContext собирает зависимости приложения.
type ApplicationContext struct {
	Cf        *config.Config
	Storage   *database.Storage
	Catalog   *database.Catalog
	Publisher *kafka.AuditPublisher // nil, если Kafka выключена
	Services  Services
	Auth      *auth.Service
	Sessions  *auth.Sessions
}

// NewApplicationContext подключается к базе, применяет миграции и создает сервисы.
func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := &ApplicationContext{Cf: cf}
	if err := app.Init(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

func (app *ApplicationContext) Init() error {
	if err := app.setUpStorage(); err != nil {
		return err
	}
	app.setUpPublisher()
	app.setUpServices()
	app.setUpAuth()
	return nil
}

func (app *ApplicationContext) setUpStorage() error {
	storage, err := database.New(app.Cf.Postgres)
	if err != nil {
		return fmt.Errorf("ошибка инициализации хранилища: %w", err)
	}
	app.Storage = storage
	app.Catalog = database.NewCatalog(storage.SQL)
	return nil
}

func (app *ApplicationContext) setUpPublisher() {
	if !app.Cf.Kafka.Enabled {
		log.Info().Msg("Kafka выключена, события аудита не отправляются")
		return
	}
	app.Publisher = kafka.NewAuditPublisher(app.Cf.Kafka)
}

func (app *ApplicationContext) setUpServices() {
	app.Services = NewServices(app.Storage.ORM, app.Catalog, app.Publisher)
}

func (app *ApplicationContext) setUpAuth() {
	app.Auth = auth.NewService(repository.NewAccounts(app.Storage.ORM))
	app.Sessions = auth.NewSessions(auth.SessionKey(app.Cf.HTTP.SessionKey), app.Cf.HTTP.SessionName, app.Cf.HTTP.SecureCookie)
}

// NewServices создает сервисы сущностей поверх orm. publisher может быть nil.
func NewServices(orm *gorm.DB, catalog service.Catalog, publisher *kafka.AuditPublisher) Services {
	var opts []service.Option
	if publisher != nil {
		opts = append(opts, service.WithPublisher(publisher))
	}
	cascade := repository.NewCascade(orm)
	with := func(extra ...service.Option) []service.Option {
		return append(append([]service.Option(nil), opts...), extra...)
	}

	return Services{
		Users: service.New[model.User](model.TableUsers,
			repository.New[model.User](orm, model.TableUsers, userColumns, "Role"),
			service.NewUserRules(catalog, auth.HashPassword), catalog,
			with(service.WithCascade(cascade, model.UserOwnership))...),
		Cars: service.New[model.Car](model.TableCars,
			repository.New[model.Car](orm, model.TableCars, carColumns, "User"),
			service.NewCarRules(catalog), catalog, with()...),
		Suppliers: service.New[model.Supplier](model.TableSuppliers,
			repository.New[model.Supplier](orm, model.TableSuppliers, supplierColumns, "Materials"),
			service.NewSupplierRules(), catalog, with()...),
		Materials: service.New[model.Material](model.TableMaterials,
			repository.New[model.Material](orm, model.TableMaterials, materialColumns, "Supplier"),
			service.NewMaterialRules(catalog), catalog, with()...),
		Orders: service.New[model.Order](model.TableOrders,
			repository.New[model.Order](orm, model.TableOrders, orderColumns, "User", "Material", "Payment", "Review"),
			service.NewOrderRules(catalog), catalog, with()...),
		Payments: service.New[model.Payment](model.TablePayments,
			repository.New[model.Payment](orm, model.TablePayments, paymentColumns, "User", "Orders"),
			service.NewPaymentRules(catalog), catalog,
			with(service.WithCascade(cascade, model.PaymentOwnership))...),
		Reviews: service.New[model.Review](model.TableReviews,
			repository.New[model.Review](orm, model.TableReviews, reviewColumns, "User"),
			service.NewReviewRules(catalog), catalog, with()...),
	}
}

// Handlers собирает HTTP-обработчики всех разделов.
func (app *ApplicationContext) Handlers() (*api.Handlers, error) {
	views, err := api.NewViews()
	if err != nil {
		return nil, err
	}
	s := app.Services
	return api.NewHandlers(views, app.Auth, app.Sessions, app.Cf.HTTP.AuthRequired,
		api.UserResource(s.Users),
		api.CarResource(s.Cars),
		api.SupplierResource(s.Suppliers),
		api.MaterialResource(s.Materials),
		api.OrderResource(s.Orders),
		api.PaymentResource(s.Payments),
		api.ReviewResource(s.Reviews),
	), nil
}

// Close освобождает соединения.
func (app *ApplicationContext) Close() error {
	var errs []error
	if app.Publisher != nil {
		errs = append(errs, app.Publisher.Close())
	}
	if app.Storage != nil {
		errs = append(errs, app.Storage.Close())
	}
	return errors.Join(errs...)
}
