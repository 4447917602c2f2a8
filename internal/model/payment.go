package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment: платеж клиента. Дата платежа проставляется при создании и больше не меняется.
type Payment struct {
	Base
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" validate:"-"`
	PayMethod   string          `gorm:"size:15;not null" validate:"required,max=15"`
	PaymentDate time.Time       `gorm:"type:date;not null;<-:create" validate:"-"`
	UserID      int             `gorm:"column:user_id;not null" validate:"gt=0"`

	User   User    `gorm:"foreignKey:UserID" validate:"-"`
	Orders []Order `gorm:"foreignKey:PaymentID" validate:"-"`
}

func (Payment) TableName() string { return TablePayments }
