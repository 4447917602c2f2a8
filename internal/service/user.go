package service

import (
	"context"
	"net/url"
	"strconv"

	"japantune/internal/model"
)

// Hasher превращает пароль в хранимый хеш.
type Hasher func(password string) (string, error)

// UserRules - разбор формы пользователя.
type UserRules struct {
	refs Refs
	hash Hasher
}

func NewUserRules(refs Refs, hash Hasher) *UserRules {
	return &UserRules{refs: refs, hash: hash}
}

func (r *UserRules) Lookups() []model.LookupKind {
	return []model.LookupKind{model.LookupRoles}
}

// Bind: пустой пароль при редактировании оставляет прежний, пустая роль
// заменяется первой существующей.
func (r *UserRules) Bind(ctx context.Context, form url.Values, dst *model.User, isNew bool) error {
	f := newFormReader(form)
	dst.FirstName = f.required("firstName")
	dst.SurName = f.required("surName")
	dst.LastName = f.optional("lastName")
	dst.PhoneNumber = f.required("phoneNumber")
	dst.ClientLogin = f.required("clientLogin")
	dst.CardNum = f.optional("cardNum")
	roleID := f.optionalInt("roleId")
	password := f.text("clientPassword")
	if f.failed() {
		return invalid(form, MsgInvalidInput)
	}
	if isNew && password == "" {
		return invalid(form, MsgPasswordNeeded)
	}

	if roleID == 0 {
		first, err := r.refs.FirstID(ctx, model.TableRoles)
		if err != nil {
			return err
		}
		if first == 0 {
			return invalid(form, MsgNoRoles)
		}
		roleID = first
	} else if err := requireRefs(ctx, r.refs, form, target{model.TableRoles, roleID}); err != nil {
		return err
	}
	dst.RoleID = roleID

	if password != "" {
		hashed, err := r.hash(password)
		if err != nil {
			return err
		}
		dst.ClientPassword = hashed
	}

	if err := checkStruct(form, dst); err != nil {
		return err
	}

	taken, err := r.refs.Taken(ctx, model.TableUsers, "client_login", dst.ClientLogin, dst.ID)
	if err != nil {
		return err
	}
	if taken {
		return invalid(form, MsgLoginTaken)
	}
	taken, err = r.refs.Taken(ctx, model.TableUsers, "phone_number", dst.PhoneNumber, dst.ID)
	if err != nil {
		return err
	}
	if taken {
		return invalid(form, MsgPhoneTaken)
	}
	return nil
}

// Values не возвращает пароль.
func (r *UserRules) Values(u *model.User) url.Values {
	return url.Values{
		"firstName":   {u.FirstName},
		"surName":     {u.SurName},
		"lastName":    {formatOptional(u.LastName)},
		"phoneNumber": {u.PhoneNumber},
		"clientLogin": {u.ClientLogin},
		"cardNum":     {formatOptional(u.CardNum)},
		"roleId":      {strconv.Itoa(u.RoleID)},
	}
}
