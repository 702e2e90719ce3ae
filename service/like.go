package service

import (
	"Tipbox/dao"
	"Tipbox/models"
	"context"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	ToggleLike(ctx context.Context, actor models.Actor, tipID uint64) (liked bool, likesCount int64, err error)
}

type LikeService struct {
	TipDAO     *dao.TipDAO
	TipLikeDAO *dao.TipLikeDAO
}

// ToggleLike 点赞/取消点赞，返回最新状态和计数
func (s *LikeService) ToggleLike(ctx context.Context, actor models.Actor, tipID uint64) (bool, int64, error) {
	if actor.ID == 0 {
		return false, 0, ErrUnauthorized
	}

	// 校验贴士存在
	exist, err := s.TipDAO.IsExist(ctx, "id = ?", tipID)
	if err != nil {
		return false, 0, err
	}
	if !exist {
		return false, 0, ErrTipNotFound
	}

	liked, err := s.TipLikeDAO.Toggle(ctx, tipID, actor.ID)
	if err != nil {
		return false, 0, err
	}

	tip, err := s.TipDAO.FindById(ctx, tipID)
	if err != nil {
		return false, 0, err
	}
	if tip == nil {
		return false, 0, ErrTipNotFound
	}
	return liked, tip.LikesCount, nil
}
