package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
)

func NewError(model string, err error) error {
	return fmt.Errorf("%s: %w", strings.ToLower(model), err)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsExists(err error) bool {
	return errors.Is(err, ErrExists)
}
