package validator_test

import (
	"testing"

	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/validator"
	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	var v validator.Validator
	assert.False(t, v.HasErrors())

	v.Check(true, "should not appear")
	assert.False(t, v.HasErrors())

	v.Check(false, "boom")
	assert.True(t, v.HasErrors())
	assert.Equal(t, []string{"boom"}, v.Errors)
}

func TestCheckFieldKeepsFirstMessage(t *testing.T) {
	var v validator.Validator

	v.CheckField(false, "fullName", "first")
	v.CheckField(false, "fullName", "second")

	assert.Equal(t, "first", v.FieldErrors["fullName"])
}

func TestNotBlank(t *testing.T) {
	assert.True(t, validator.NotBlank("Jane"))
	assert.False(t, validator.NotBlank(""))
	assert.False(t, validator.NotBlank("   \t"))
}

func TestIn(t *testing.T) {
	assert.True(t, validator.In("2", "1", "2", "3"))
	assert.False(t, validator.In("4", "1", "2", "3"))
}

func TestMaxRunes(t *testing.T) {
	assert.True(t, validator.MaxRunes("abc", 3))
	assert.False(t, validator.MaxRunes("abcd", 3))
}
