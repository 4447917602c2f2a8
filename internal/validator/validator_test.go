package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Login string `validate:"required,max=5"`
	Phone string `validate:"required,e164"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(&sample{Login: "alice", Phone: "+1234567890"}))

	err := ValidateStruct(&sample{Login: "too-long", Phone: "123"})
	assert.Error(t, err)
	assert.ElementsMatch(t, []string{"Login", "Phone"}, Fields(err))
}

func TestFields_NotValidationError(t *testing.T) {
	assert.Nil(t, Fields(assert.AnError))
}
