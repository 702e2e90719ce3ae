package handler

import (
	"Tipbox/config"
	"Tipbox/middleware"
	"Tipbox/pkg/context"
	"Tipbox/pkg/response"
	"Tipbox/service"
	"Tipbox/types"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Tip struct {
	TipService  service.ITipService
	LikeService service.ILikeService
	Config      *config.Config
}

func (h *Tip) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/tips")
	g.GET("", context.Wrap(h.List))
	g.GET("/today", context.Wrap(h.TipOfDay))
	g.POST("", authorize, context.Wrap(h.Create))
	g.PUT("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
	g.POST("/:id/like", authorize, context.Wrap(h.ToggleLike))
}

// List 全部贴士列表
func (h *Tip) List(c *gin.Context) error {
	tips, err := h.TipService.ListTips(c.Request.Context())
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, tips)
	return nil
}

// TipOfDay 每日贴士
func (h *Tip) TipOfDay(c *gin.Context) error {
	tip, err := h.TipService.GetTipOfDay(c.Request.Context(), time.Now())
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, tip)
	return nil
}

// Create 创建贴士，仅管理员
func (h *Tip) Create(c *gin.Context) error {
	actor, err := context.GetActor(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.CreateTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	tip, err := h.TipService.CreateTip(c.Request.Context(), actor, &req)
	if err != nil {
		return err
	}

	c.JSON(http.StatusCreated, types.TipResponse{
		Message: "贴士创建成功",
		Tip:     tip,
	})
	return nil
}

// Update 更新贴士，仅管理员
func (h *Tip) Update(c *gin.Context) error {
	actor, err := context.GetActor(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	tipID, err := parseTipID(c)
	if err != nil {
		return err
	}

	var req types.UpdateTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	tip, err := h.TipService.UpdateTip(c.Request.Context(), actor, tipID, &req)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, types.TipResponse{
		Message: "贴士更新成功",
		Tip:     tip,
	})
	return nil
}

// Delete 删除贴士，仅管理员
func (h *Tip) Delete(c *gin.Context) error {
	actor, err := context.GetActor(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	tipID, err := parseTipID(c)
	if err != nil {
		return err
	}

	if err := h.TipService.DeleteTip(c.Request.Context(), actor, tipID); err != nil {
		return err
	}

	c.JSON(http.StatusOK, types.MessageResponse{
		Message: "贴士删除成功",
	})
	return nil
}

// ToggleLike 点赞/取消点赞，任意登录用户
func (h *Tip) ToggleLike(c *gin.Context) error {
	actor, err := context.GetActor(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	tipID, err := parseTipID(c)
	if err != nil {
		return err
	}

	liked, likesCount, err := h.LikeService.ToggleLike(c.Request.Context(), actor, tipID)
	if err != nil {
		return err
	}

	msg := "取消点赞成功"
	if liked {
		msg = "点赞成功"
	}
	c.JSON(http.StatusOK, types.ToggleLikeResponse{
		Message:    msg,
		IsLiked:    liked,
		LikesCount: likesCount,
	})
	return nil
}

func parseTipID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusNotFound, "贴士不存在")
	}
	return id, nil
}
