package handler

import (
	"Tipbox/pkg/context"
	"Tipbox/pkg/response"
	"Tipbox/service"
	"Tipbox/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/auth")
	g.POST("/register", context.Wrap(h.Register))
	g.POST("/login", context.Wrap(h.Login))
}

// Register 用户注册
func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	user, err := h.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "注册成功",
		"user_id": user.ID,
	})
	return nil
}

// Login 用户登录，签发访问令牌
func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, resp)
	return nil
}
