package model

import "github.com/shopspring/decimal"

// Supplier: поставщик материалов.
type Supplier struct {
	Base
	Title   string `gorm:"size:50;not null" validate:"required,max=50"`
	Country string `gorm:"size:50;not null" validate:"required,max=50"`

	Materials []Material `gorm:"foreignKey:SupplierID" validate:"-"`
}

func (Supplier) TableName() string { return TableSuppliers }

// Material: расходник или деталь, которую можно заказать.
type Material struct {
	Base
	Title      string          `gorm:"size:30;not null" validate:"required,max=30"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null" validate:"-"`
	Quantity   int             `gorm:"not null" validate:"gte=0"`
	SupplierID int             `gorm:"column:supplier_id;not null" validate:"gt=0"`

	Supplier Supplier `gorm:"foreignKey:SupplierID" validate:"-"`
	Orders   []Order  `gorm:"foreignKey:MaterialID" validate:"-"`
}

func (Material) TableName() string { return TableMaterials }
