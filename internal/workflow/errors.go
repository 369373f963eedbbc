package workflow

import (
	"errors"
	"fmt"
)

// 业务失败分类。除 ErrStorage 外均为终态失败,不应重试;
// ErrStorage 表示提交未持久化,调用方可按"决定未保存"重试。
var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrValidation        = errors.New("validation failed")
	ErrStorage           = errors.New("storage failure")
)

// Fault 携带分类的业务错误,通过 errors.Is 与上面的哨兵匹配
type Fault struct {
	Kind   error
	Detail string
}

func (f *Fault) Error() string {
	return f.Detail
}

func (f *Fault) Unwrap() error {
	return f.Kind
}

// NewFault 创建指定分类的业务错误
func NewFault(kind error, format string, args ...interface{}) error {
	return &Fault{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...interface{}) error {
	return NewFault(ErrNotFound, format, args...)
}

func unauthorizedf(format string, args ...interface{}) error {
	return NewFault(ErrUnauthorized, format, args...)
}

func invalidTransitionf(format string, args ...interface{}) error {
	return NewFault(ErrInvalidTransition, format, args...)
}

func validationf(format string, args ...interface{}) error {
	return NewFault(ErrValidation, format, args...)
}

func storagef(format string, args ...interface{}) error {
	return NewFault(ErrStorage, format, args...)
}
