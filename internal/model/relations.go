package model

// Dependent: таблица, строки которой ссылаются на родителя через колонку Column.
// Children удаляются раньше самих строк Dependent.
type Dependent struct {
	Table    string
	Column   string
	Children []Dependent
}

// Ownership: граф владения: корневая таблица и зависимые от нее строки,
// которые должны быть удалены до удаления корня.
type Ownership struct {
	Table      string
	Dependents []Dependent
}

// UserOwnership: заказы платежей пользователя, платежи, прямые заказы,
// автомобили, отзывы, затем сам пользователь.
var UserOwnership = Ownership{
	Table: TableUsers,
	Dependents: []Dependent{
		{
			Table:    TablePayments,
			Column:   "user_id",
			Children: []Dependent{{Table: TableOrders, Column: "payment_id"}},
		},
		{Table: TableOrders, Column: "user_id"},
		{Table: TableCars, Column: "user_id"},
		{Table: TableReviews, Column: "user_id"},
	},
}

// PaymentOwnership: заказы платежа, затем сам платеж.
var PaymentOwnership = Ownership{
	Table:      TablePayments,
	Dependents: []Dependent{{Table: TableOrders, Column: "payment_id"}},
}

// References перечисляет прямые внешние ключи, указывающие на строку таблицы.
var References = map[string][]Dependent{
	TableRoles:     {{Table: TableUsers, Column: "role_id"}},
	TableUsers:     {{Table: TableCars, Column: "user_id"}, {Table: TablePayments, Column: "user_id"}, {Table: TableOrders, Column: "user_id"}, {Table: TableReviews, Column: "user_id"}},
	TableSuppliers: {{Table: TableMaterials, Column: "supplier_id"}},
	TableMaterials: {{Table: TableOrders, Column: "material_id"}},
	TablePayments:  {{Table: TableOrders, Column: "payment_id"}},
	TableReviews:   {{Table: TableOrders, Column: "review_id"}},
	TableCars:      nil,
	TableOrders:    nil,
}

// KnownTable сообщает, относится ли имя к схеме приложения.
func KnownTable(name string) bool {
	_, ok := References[name]
	return ok
}
