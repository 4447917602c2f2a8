package repository

import (
	"context"
	"errors"

	"japantune/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Accounts - доступ к пользователям для входа и регистрации.
type Accounts struct {
	db *gorm.DB
}

// NewAccounts создает хранилище учетных записей.
func NewAccounts(db *gorm.DB) *Accounts {
	return &Accounts{db: db}
}

// FindByLogin возвращает пользователя с указанным логином вместе с ролью.
func (a *Accounts) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	var user model.User
	err := a.db.WithContext(ctx).Preload("Role").Where("client_login = ?", login).First(&user).Error
	if err != nil {
		return nil, classify("users.find_by_login", err)
	}
	return &user, nil
}

// LoginTaken сообщает, занят ли логин.
func (a *Accounts) LoginTaken(ctx context.Context, login string) (bool, error) {
	var n int64
	if err := a.db.WithContext(ctx).Model(&model.User{}).Where("client_login = ?", login).Count(&n).Error; err != nil {
		return false, classify("users.login_taken", err)
	}
	return n > 0, nil
}

// PhoneTaken сообщает, зарегистрирован ли уже номер телефона.
func (a *Accounts) PhoneTaken(ctx context.Context, phone string) (bool, error) {
	var n int64
	if err := a.db.WithContext(ctx).Model(&model.User{}).Where("phone_number = ?", phone).Count(&n).Error; err != nil {
		return false, classify("users.phone_taken", err)
	}
	return n > 0, nil
}

// DefaultRoleID возвращает id роли клиента, а если ее нет - первой роли.
func (a *Accounts) DefaultRoleID(ctx context.Context) (int, error) {
	var role model.Role
	err := a.db.WithContext(ctx).Where("title = ?", model.RoleClient).Take(&role).Error
	if err == nil {
		return role.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, classify("roles.default", err)
	}

	if err := a.db.WithContext(ctx).Order("id").First(&role).Error; err != nil {
		return 0, classify("roles.default", err)
	}
	return role.ID, nil
}

// CreateUser сохраняет нового пользователя.
func (a *Accounts) CreateUser(ctx context.Context, user *model.User) error {
	user.Version = 1
	if err := a.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error; err != nil {
		return classify("users.register", err)
	}
	return nil
}
