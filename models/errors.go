package models

import "fmt"

// ValidationError 用户输入校验错误，直接返回给前端内联提示，不重试
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError 创建一个校验错误
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NetworkError 外部服务不可达或返回非2xx
type NetworkError struct {
	Service string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s service unavailable: %v", e.Service, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError 外部服务响应解析失败，展示层面等同于网络错误处理
type ParseError struct {
	Service string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s response malformed: %v", e.Service, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
