package api

import (
	"strconv"

	"japantune/internal/model"
)

// Названия таблиц для страницы подтверждения удаления.
var tableTitles = map[string]string{
	model.TableRoles:     "Роли",
	model.TableUsers:     "Пользователи",
	model.TableCars:      "Автомобили",
	model.TableSuppliers: "Поставщики",
	model.TableMaterials: "Материалы",
	model.TableOrders:    "Заказы",
	model.TablePayments:  "Платежи",
	model.TableReviews:   "Отзывы",
}

const dateLayout = "02.01.2006"

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// maskCard оставляет видимыми последние четыре цифры карты.
func maskCard(s *string) string {
	v := optional(s)
	if len(v) <= 4 {
		return v
	}
	return "**** " + v[len(v)-4:]
}

func UserResource(svc EntityService[model.User, *model.User]) *Resource[model.User, *model.User] {
	return &Resource[model.User, *model.User]{
		Path:    "users",
		Title:   "Пользователи",
		Service: svc,
		Cascade: true,
		Columns: []Column[model.User]{
			{"Имя", func(u *model.User) string { return u.FirstName }},
			{"Фамилия", func(u *model.User) string { return u.SurName }},
			{"Отчество", func(u *model.User) string { return optional(u.LastName) }},
			{"Телефон", func(u *model.User) string { return u.PhoneNumber }},
			{"Логин", func(u *model.User) string { return u.ClientLogin }},
			{"Карта", func(u *model.User) string { return maskCard(u.CardNum) }},
			{"Роль", func(u *model.User) string { return u.Role.Title }},
		},
		Fields: []Field{
			{Name: "firstName", Label: "Имя", Type: "text", Required: true, MaxLen: 30},
			{Name: "surName", Label: "Фамилия", Type: "text", Required: true, MaxLen: 30},
			{Name: "lastName", Label: "Отчество", Type: "text", MaxLen: 30},
			{Name: "phoneNumber", Label: "Телефон", Type: "tel", Required: true, MaxLen: 20},
			{Name: "clientLogin", Label: "Логин", Type: "text", Required: true, MaxLen: 20},
			{Name: "clientPassword", Label: "Пароль", Type: "password", Required: true, Hint: "При изменении оставьте пустым, чтобы сохранить прежний пароль"},
			{Name: "cardNum", Label: "Номер карты", Type: "text", MaxLen: 20},
			{Name: "roleId", Label: "Роль", Type: "select", Lookup: model.LookupRoles},
		},
	}
}

func CarResource(svc EntityService[model.Car, *model.Car]) *Resource[model.Car, *model.Car] {
	return &Resource[model.Car, *model.Car]{
		Path:    "cars",
		Title:   "Автомобили",
		Service: svc,
		Columns: []Column[model.Car]{
			{"Марка", func(c *model.Car) string { return c.Mark }},
			{"Модель", func(c *model.Car) string { return c.Model }},
			{"Год выпуска", func(c *model.Car) string { return strconv.Itoa(c.ReleaseYear) }},
			{"Госномер", func(c *model.Car) string { return optional(c.LicensePlate) }},
			{"Владелец", func(c *model.Car) string { return c.User.FullName() }},
		},
		Fields: []Field{
			{Name: "mark", Label: "Марка", Type: "text", Required: true, MaxLen: 30},
			{Name: "model", Label: "Модель", Type: "text", Required: true, MaxLen: 30},
			{Name: "releaseYear", Label: "Год выпуска", Type: "number", Required: true, Min: "1900", Max: "2100"},
			{Name: "licensePlate", Label: "Госномер", Type: "text", MaxLen: 10},
			{Name: "userId", Label: "Владелец", Type: "select", Lookup: model.LookupUsers, Required: true},
		},
	}
}

func SupplierResource(svc EntityService[model.Supplier, *model.Supplier]) *Resource[model.Supplier, *model.Supplier] {
	return &Resource[model.Supplier, *model.Supplier]{
		Path:    "suppliers",
		Title:   "Поставщики",
		Service: svc,
		Columns: []Column[model.Supplier]{
			{"Название", func(s *model.Supplier) string { return s.Title }},
			{"Страна", func(s *model.Supplier) string { return s.Country }},
			{"Материалов", func(s *model.Supplier) string { return strconv.Itoa(len(s.Materials)) }},
		},
		Fields: []Field{
			{Name: "title", Label: "Название", Type: "text", Required: true, MaxLen: 50},
			{Name: "country", Label: "Страна", Type: "text", Required: true, MaxLen: 50},
		},
	}
}

func MaterialResource(svc EntityService[model.Material, *model.Material]) *Resource[model.Material, *model.Material] {
	return &Resource[model.Material, *model.Material]{
		Path:    "materials",
		Title:   "Материалы",
		Service: svc,
		Columns: []Column[model.Material]{
			{"Название", func(m *model.Material) string { return m.Title }},
			{"Цена", func(m *model.Material) string { return m.Price.StringFixed(2) }},
			{"Количество", func(m *model.Material) string { return strconv.Itoa(m.Quantity) }},
			{"Поставщик", func(m *model.Material) string { return m.Supplier.Title }},
		},
		Fields: []Field{
			{Name: "title", Label: "Название", Type: "text", Required: true, MaxLen: 30},
			{Name: "price", Label: "Цена", Type: "number", Required: true, Min: "0.01", Step: "0.01"},
			{Name: "quantity", Label: "Количество", Type: "number", Required: true, Min: "0"},
			{Name: "supplierId", Label: "Поставщик", Type: "select", Lookup: model.LookupSuppliers, Required: true},
		},
	}
}

func OrderResource(svc EntityService[model.Order, *model.Order]) *Resource[model.Order, *model.Order] {
	return &Resource[model.Order, *model.Order]{
		Path:    "orders",
		Title:   "Заказы",
		Service: svc,
		Columns: []Column[model.Order]{
			{"Дата", func(o *model.Order) string { return o.OrderDate.Format(dateLayout) }},
			{"Статус", func(o *model.Order) string { return o.Status }},
			{"Клиент", func(o *model.Order) string { return o.User.FullName() }},
			{"Материал", func(o *model.Order) string { return o.Material.Title }},
			{"Платеж", func(o *model.Order) string { return "#" + strconv.Itoa(o.PaymentID) }},
			{"Отзыв", func(o *model.Order) string {
				if o.Review == nil {
					return ""
				}
				return optional(o.Review.Title)
			}},
		},
		Fields: []Field{
			{Name: "orderDate", Label: "Дата заказа", Type: "date", Required: true},
			{Name: "status", Label: "Статус", Type: "text", Required: true, MaxLen: 12},
			{Name: "userId", Label: "Клиент", Type: "select", Lookup: model.LookupUsers, Required: true},
			{Name: "materialId", Label: "Материал", Type: "select", Lookup: model.LookupMaterials, Required: true},
			{Name: "paymentId", Label: "Платеж", Type: "select", Lookup: model.LookupPayments, Required: true},
			{Name: "reviewId", Label: "Отзыв", Type: "select", Lookup: model.LookupReviews},
		},
	}
}

func PaymentResource(svc EntityService[model.Payment, *model.Payment]) *Resource[model.Payment, *model.Payment] {
	return &Resource[model.Payment, *model.Payment]{
		Path:    "payments",
		Title:   "Платежи",
		Service: svc,
		Cascade: true,
		Columns: []Column[model.Payment]{
			{"Сумма", func(p *model.Payment) string { return p.Price.StringFixed(2) }},
			{"Способ оплаты", func(p *model.Payment) string { return p.PayMethod }},
			{"Дата", func(p *model.Payment) string { return p.PaymentDate.Format(dateLayout) }},
			{"Клиент", func(p *model.Payment) string { return p.User.FullName() }},
			{"Заказов", func(p *model.Payment) string { return strconv.Itoa(len(p.Orders)) }},
		},
		Fields: []Field{
			{Name: "price", Label: "Сумма", Type: "number", Required: true, Min: "0.01", Step: "0.01"},
			{Name: "payMethod", Label: "Способ оплаты", Type: "text", Required: true, MaxLen: 15},
			{Name: "userId", Label: "Клиент", Type: "select", Lookup: model.LookupUsers, Required: true},
		},
	}
}

func ReviewResource(svc EntityService[model.Review, *model.Review]) *Resource[model.Review, *model.Review] {
	return &Resource[model.Review, *model.Review]{
		Path:    "reviews",
		Title:   "Отзывы",
		Service: svc,
		Columns: []Column[model.Review]{
			{"Заголовок", func(rv *model.Review) string { return optional(rv.Title) }},
			{"Оценка", func(rv *model.Review) string { return strconv.Itoa(rv.Rating) }},
			{"Дата", func(rv *model.Review) string { return rv.ReviewDate.Format(dateLayout) }},
			{"Клиент", func(rv *model.Review) string { return rv.User.FullName() }},
		},
		Fields: []Field{
			{Name: "title", Label: "Заголовок", Type: "textarea", MaxLen: 200},
			{Name: "rating", Label: "Оценка", Type: "number", Required: true, Min: "1", Max: "5"},
			{Name: "reviewDate", Label: "Дата отзыва", Type: "date", Required: true},
			{Name: "userId", Label: "Клиент", Type: "select", Lookup: model.LookupUsers, Required: true},
		},
	}
}
