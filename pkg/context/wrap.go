package context

import (
	"Tipbox/models"
	"Tipbox/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误，Code 即 HTTP 状态码
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(be.Code, response.Response{
					Message: be.Msg,
					Errors:  be.Fields,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: err.Error(),
			})
		}
	}
}

// GetActor 从 gin context 取出当前登录用户
func GetActor(c *gin.Context) (models.Actor, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return models.Actor{}, errors.New("user_id 不存在")
	}

	uid, ok := v.(uint64)
	if !ok {
		return models.Actor{}, errors.New("user_id 类型错误")
	}

	role := models.RoleMember
	if r, ok := c.Get(CtxRole); ok {
		if s, ok := r.(string); ok {
			role = models.Role(s)
		}
	}

	return models.Actor{ID: uid, Role: role}, nil
}
