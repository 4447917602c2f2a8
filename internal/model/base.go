package model

import "time"

// Имена таблиц. Используются и маппингом gorm, и сырыми запросами каталога.
const (
	TableRoles     = "roles"
	TableUsers     = "users"
	TableCars      = "car"
	TableSuppliers = "supplier"
	TableMaterials = "material"
	TableOrders    = "orders"
	TablePayments  = "payment"
	TableReviews   = "review"
)

// Base содержит идентичность, токен оптимистичной блокировки и аудит-поля,
// общие для всех редактируемых сущностей.
type Base struct {
	ID        int       `gorm:"primaryKey"`
	Version   int       `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"not null;<-:create"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (b *Base) Key() int { return b.ID }

func (b *Base) Revision() int { return b.Version }

func (b *Base) SetRevision(v int) { b.Version = v }

// DateLayout: формат дат в формах и сообщениях.
const DateLayout = "2006-01-02"
