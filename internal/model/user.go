package model

// Role: справочник ролей пользователей.
type Role struct {
	ID    int    `gorm:"primaryKey"`
	Title string `gorm:"size:15;not null" validate:"required,max=15"`
}

func (Role) TableName() string { return TableRoles }

// Названия ролей, создаваемых начальной миграцией.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User: клиент или сотрудник мастерской.
type User struct {
	Base
	FirstName      string  `gorm:"size:30;not null" validate:"required,max=30"`
	SurName        string  `gorm:"size:30;not null" validate:"required,max=30"`
	LastName       *string `gorm:"size:30" validate:"omitempty,max=30"`
	PhoneNumber    string  `gorm:"size:20;not null;uniqueIndex:uq_users_phone_number" validate:"required,max=20"`
	ClientLogin    string  `gorm:"size:20;not null;uniqueIndex:uq_users_client_login" validate:"required,max=20"`
	ClientPassword string  `gorm:"size:100;not null" json:"-" validate:"required"`
	CardNum        *string `gorm:"size:20" validate:"omitempty,max=20"`
	RoleID         int     `gorm:"column:role_id;not null" validate:"gt=0"`

	Role     Role      `gorm:"foreignKey:RoleID" validate:"-"`
	Cars     []Car     `gorm:"foreignKey:UserID" validate:"-"`
	Orders   []Order   `gorm:"foreignKey:UserID" validate:"-"`
	Payments []Payment `gorm:"foreignKey:UserID" validate:"-"`
	Reviews  []Review  `gorm:"foreignKey:UserID" validate:"-"`
}

func (User) TableName() string { return TableUsers }

// FullName возвращает "Имя Фамилия", так пользователь показывается в списках выбора.
func (u User) FullName() string {
	return u.FirstName + " " + u.SurName
}
