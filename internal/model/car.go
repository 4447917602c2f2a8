package model

// Car: автомобиль клиента.
type Car struct {
	Base
	Mark         string  `gorm:"size:30;not null" validate:"required,max=30"`
	Model        string  `gorm:"size:30;not null" validate:"required,max=30"`
	ReleaseYear  int     `gorm:"column:release_year;not null" validate:"gte=1900,lte=2100"`
	LicensePlate *string `gorm:"size:10" validate:"omitempty,max=10"`
	UserID       int     `gorm:"column:user_id;not null" validate:"gt=0"`

	User User `gorm:"foreignKey:UserID" validate:"-"`
}

func (Car) TableName() string { return TableCars }
