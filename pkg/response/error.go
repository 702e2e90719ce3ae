package response

import "net/http"

// BizError 业务错误，Code 同时作为 HTTP 状态码返回
type BizError struct {
	Code   int
	Msg    string
	Fields map[string]string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// NewValidationError 字段校验错误，带字段级错误信息
func NewValidationError(fields map[string]string) *BizError {
	return &BizError{
		Code:   http.StatusUnprocessableEntity,
		Msg:    "参数校验失败",
		Fields: fields,
	}
}
