package service

import (
	"Tipbox/pkg/response"
	"net/http"
)

var (
	// ErrForbidden 角色校验失败
	ErrForbidden = response.NewError(http.StatusForbidden, "无权限，需要管理员身份")
	// ErrUnauthorized 未登录
	ErrUnauthorized = response.NewError(http.StatusUnauthorized, "请先登录")
	// ErrTipNotFound 贴士不存在
	ErrTipNotFound = response.NewError(http.StatusNotFound, "贴士不存在")
	// ErrNoTipToday 当天没有可用贴士
	ErrNoTipToday = response.NewError(http.StatusNotFound, "暂无贴士")
)
