package httperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindForbidden        Kind = "forbidden"
	KindInvalidReference Kind = "invalid_reference"
	KindInvalidOperation Kind = "invalid_operation"
	KindValidation       Kind = "validation"
	KindUnauthorized     Kind = "unauthorized"
)

// BusinessError is a rule violation the caller can act on.
// Code is stable and machine readable, Message is shown to the user.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Field   string
}

func (e BusinessError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Field, e.Message)
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Kind: KindInvalidOperation, Code: code}
}

func NotFoundErr(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ForbiddenErr(code, message string) error {
	return BusinessError{Kind: KindForbidden, Code: code, Message: message}
}

func InvalidReferenceErr(field, code, message string) error {
	return BusinessError{Kind: KindInvalidReference, Code: code, Message: message, Field: field}
}

func InvalidOperationErr(code, message string) error {
	return BusinessError{Kind: KindInvalidOperation, Code: code, Message: message}
}

func ValidationErr(field, message string) error {
	return BusinessError{Kind: KindValidation, Code: "validation_error", Message: message, Field: field}
}

func UnauthorizedErr(code, message string) error {
	return BusinessError{Kind: KindUnauthorized, Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf returns the kind of a business error, or "" for anything else.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

// IsUniqueViolation reports a unique constraint violation, either translated
// by gorm or raw from postgres (23505).
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
