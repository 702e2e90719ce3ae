package service

import (
	"Tipbox/dao"
	"Tipbox/dao/cache"
	"Tipbox/models"
	"Tipbox/pkg/response"
	"Tipbox/pkg/snowflake"
	"Tipbox/types"
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

var _ ITipService = (*TipService)(nil)

type ITipService interface {
	ListTips(ctx context.Context) ([]*models.Tip, error)
	GetTipOfDay(ctx context.Context, now time.Time) (*models.Tip, error)
	CreateTip(ctx context.Context, actor models.Actor, req *types.CreateTipRequest) (*models.Tip, error)
	UpdateTip(ctx context.Context, actor models.Actor, tipID uint64, req *types.UpdateTipRequest) (*models.Tip, error)
	DeleteTip(ctx context.Context, actor models.Actor, tipID uint64) error
}

type TipService struct {
	TipDAO   *dao.TipDAO
	TipOfDay *cache.TipOfDayStorage
}

// ListTips 按创建时间倒序返回全部贴士
func (s *TipService) ListTips(ctx context.Context) ([]*models.Tip, error) {
	return s.TipDAO.List(ctx)
}

// GetTipOfDay 每日贴士
// 当天的抽取结果是稳定的（缓存ID），但返回的数据始终取库里最新的记录
func (s *TipService) GetTipOfDay(ctx context.Context, now time.Time) (*models.Tip, error) {
	day := now.Format("2006-01-02")

	tipID, found, err := s.TipOfDay.Get(ctx, day)
	if err != nil {
		return nil, err
	}
	if !found {
		picked, err := s.TipDAO.PickRandom(ctx)
		if err != nil {
			return nil, err
		}
		var pickedID uint64
		if picked != nil {
			pickedID = picked.ID
		}
		// 空库也写入哨兵，当天不再反复抽取
		tipID, err = s.TipOfDay.Remember(ctx, day, pickedID, endOfDay(now).Sub(now))
		if err != nil {
			return nil, err
		}
	}

	if tipID == 0 {
		return nil, ErrNoTipToday
	}

	tip, err := s.TipDAO.GetWithLikes(ctx, tipID)
	if err != nil {
		return nil, err
	}
	if tip == nil {
		// 缓存的贴士当天被删掉了：直接报 404，不重新抽取
		return nil, ErrTipNotFound
	}
	return tip, nil
}

// CreateTip 创建贴士，仅管理员
func (s *TipService) CreateTip(ctx context.Context, actor models.Actor, req *types.CreateTipRequest) (*models.Tip, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if err := validateTipFields(req.Title, req.Content); err != nil {
		return nil, err
	}

	tip := &models.Tip{
		ID:         snowflake.GenTipID(),
		Title:      req.Title,
		Content:    req.Content,
		LikesCount: 0,
	}
	if err := s.TipDAO.Create(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

// UpdateTip 更新贴士，仅管理员
// 若当天缓存的正是这条贴士，则删除缓存条目（下次访问重新抽取）
func (s *TipService) UpdateTip(ctx context.Context, actor models.Actor, tipID uint64, req *types.UpdateTipRequest) (*models.Tip, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if err := validateTipFields(req.Title, req.Content); err != nil {
		return nil, err
	}

	tip, err := s.TipDAO.FindById(ctx, tipID)
	if err != nil {
		return nil, err
	}
	if tip == nil {
		return nil, ErrTipNotFound
	}

	err = s.TipDAO.UpdateFields(ctx, tipID, map[string]any{
		"title":   req.Title,
		"content": req.Content,
	})
	if err != nil {
		return nil, err
	}

	day := time.Now().Format("2006-01-02")
	if err := s.TipOfDay.Invalidate(ctx, day, tipID); err != nil {
		return nil, err
	}

	return s.TipDAO.GetWithLikes(ctx, tipID)
}

// DeleteTip 删除贴士，仅管理员，点赞记录一并清理
func (s *TipService) DeleteTip(ctx context.Context, actor models.Actor, tipID uint64) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	tip, err := s.TipDAO.FindById(ctx, tipID)
	if err != nil {
		return err
	}
	if tip == nil {
		return ErrTipNotFound
	}

	// 先删缓存再删记录
	day := time.Now().Format("2006-01-02")
	if err := s.TipOfDay.Invalidate(ctx, day, tipID); err != nil {
		return err
	}

	return s.TipDAO.DeleteWithLikes(ctx, tipID)
}

// validateTipFields 标题必填且不超过255字符，正文必填
func validateTipFields(title, content string) error {
	fields := make(map[string]string)
	if strings.TrimSpace(title) == "" {
		fields["title"] = "标题不能为空"
	} else if utf8.RuneCountInString(title) > 255 {
		fields["title"] = "标题长度不能超过255个字符"
	}
	if strings.TrimSpace(content) == "" {
		fields["content"] = "内容不能为空"
	}
	if len(fields) > 0 {
		return response.NewValidationError(fields)
	}
	return nil
}

// endOfDay 当天结束时刻（次日零点）
func endOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}
