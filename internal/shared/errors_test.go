package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabeledErrorsMatchSentinels(t *testing.T) {
	err := Invalid("preço deve ser maior que zero")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "preço deve ser maior que zero", err.Error())

	err = NotFound("produto não encontrado")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))

	err = Duplicate("cnpj já cadastrado")
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestLabeledErrorsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("create supplier: %w", Invalid("cnpj inválido"))
	assert.True(t, errors.Is(err, ErrValidation))
}
