package resume

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 表示按 id 更新或导出时目标记录不存在。
	ErrNotFound = errors.New("not found")
	// ErrForeignKeyViolation 表示创建/更新时引用的父记录不存在。
	ErrForeignKeyViolation = errors.New("foreign key violation")
	// ErrDuplicateEmail 表示邮箱已被其他用户占用。
	ErrDuplicateEmail = errors.New("email already exists")
)

// ValidationError 在触达存储之前报告非法或缺失的字段。
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// NotFound builds an ErrNotFound wrapper naming the entity and id.
func NotFound(entity string, id uint) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

// MissingParent builds an ErrForeignKeyViolation wrapper naming the dangling reference.
func MissingParent(field string, id uint) error {
	return fmt.Errorf("%s %d does not exist: %w", field, id, ErrForeignKeyViolation)
}
