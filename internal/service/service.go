package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_backend.go -package=mocks

// Backend определяет контракт HTTP клиента бэкенда
type Backend interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// ErrValidation - входные данные отклонены до обращения к сети
var ErrValidation = errors.New("validation failed")

var validate = validator.New()

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return nil
}

// ValidateHouseholdID проверяет, что id домохозяйства - положительное целое
func ValidateHouseholdID(id string) error {
	if err := validate.Var(id, "required,numeric"); err != nil {
		return fmt.Errorf("%w: household id %q is not a number", ErrValidation, id)
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return fmt.Errorf("%w: household id %q must be a positive integer", ErrValidation, id)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
