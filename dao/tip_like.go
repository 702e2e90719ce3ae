package dao

import (
	"Tipbox/models"
	"context"

	"gorm.io/gorm"
)

type TipLikeDAO struct {
	Repo[models.TipLike]
}

func NewTipLikeDAO(db *gorm.DB) *TipLikeDAO {
	return &TipLikeDAO{Repo: NewRepo[models.TipLike](db)}
}

// IsLiked 指定用户是否已点赞
func (d *TipLikeDAO) IsLiked(ctx context.Context, tipID uint64, userID uint64) (bool, error) {
	return d.IsExist(ctx, "tip_id = ? AND user_id = ?", tipID, userID)
}

// Toggle 点赞/取消点赞，记录与计数在同一事务中变更
// 计数走原子 SQL 增减，并发下不会丢更新
func (d *TipLikeDAO) Toggle(ctx context.Context, tipID uint64, userID uint64) (bool, error) {
	liked := false
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.TipLike
		res := tx.Where("tip_id = ? AND user_id = ?", tipID, userID).Limit(1).Find(&item)
		if res.Error != nil {
			return res.Error
		}

		if item.ID != 0 { // 取消点赞
			if err := tx.Delete(&models.TipLike{}, "id = ?", item.ID).Error; err != nil {
				return err
			}
			liked = false
			return tx.Model(&models.Tip{}).
				Where("id = ? AND likes_count > 0", tipID).
				UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1)).Error
		}

		// 点赞，uk_tip_user 保证同一用户至多一条记录
		item = models.TipLike{TipID: tipID, UserID: userID}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		liked = true
		return tx.Model(&models.Tip{}).
			Where("id = ?", tipID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}
