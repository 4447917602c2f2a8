package model

// LookupKind: вид справочного списка для выпадающих списков форм.
type LookupKind string

const (
	LookupRoles     LookupKind = "roles"
	LookupUsers     LookupKind = "users"
	LookupSuppliers LookupKind = "suppliers"
	LookupMaterials LookupKind = "materials"
	LookupPayments  LookupKind = "payments"
	LookupReviews   LookupKind = "reviews"
)

// Option: элемент справочного списка.
type Option struct {
	ID    int    `db:"id"`
	Label string `db:"label"`
}

// DependentCount: количество строк таблицы Table, ссылающихся на запись.
type DependentCount struct {
	Table string
	Count int
}
