package model

import "errors"

// ドメイン共通のエラー分類
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("requested item not found")
	ErrStoreFailure = errors.New("store failure")
)

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError 新しいValidationErrorを作成
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
