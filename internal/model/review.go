package model

import "time"

// Review: отзыв клиента с оценкой от 1 до 5.
type Review struct {
	Base
	Title      *string   `gorm:"size:200" validate:"omitempty,max=200"`
	Rating     int       `gorm:"type:smallint;not null" validate:"gte=1,lte=5"`
	ReviewDate time.Time `gorm:"type:date;not null" validate:"required"`
	UserID     int       `gorm:"column:user_id;not null" validate:"gt=0"`

	User   User    `gorm:"foreignKey:UserID" validate:"-"`
	Orders []Order `gorm:"foreignKey:ReviewID" validate:"-"`
}

func (Review) TableName() string { return TableReviews }
