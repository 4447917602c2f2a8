package model

import "time"

// Order: заказ материала клиентом, оплаченный платежом.
type Order struct {
	Base
	OrderDate  time.Time `gorm:"type:date;not null" validate:"required"`
	Status     string    `gorm:"size:12;not null" validate:"required,max=12"`
	PaymentID  int       `gorm:"column:payment_id;not null" validate:"gt=0"`
	UserID     int       `gorm:"column:user_id;not null" validate:"gt=0"`
	MaterialID int       `gorm:"column:material_id;not null" validate:"gt=0"`
	ReviewID   *int      `gorm:"column:review_id" validate:"omitempty,gt=0"`

	Material Material `gorm:"foreignKey:MaterialID" validate:"-"`
	Payment  Payment  `gorm:"foreignKey:PaymentID" validate:"-"`
	Review   *Review  `gorm:"foreignKey:ReviewID" validate:"-"`
	User     User     `gorm:"foreignKey:UserID" validate:"-"`
}

func (Order) TableName() string { return TableOrders }
