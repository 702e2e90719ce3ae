package dao

import (
	"Tipbox/models"
	"context"
	"errors"
	"math/rand"

	"gorm.io/gorm"
)

type TipDAO struct {
	Repo[models.Tip]
}

func NewTipDAO(db *gorm.DB) *TipDAO {
	return &TipDAO{Repo: NewRepo[models.Tip](db)}
}

// List 按创建时间倒序返回全部贴士
func (d *TipDAO) List(ctx context.Context) ([]*models.Tip, error) {
	items := make([]*models.Tip, 0)
	err := d.Db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetWithLikes 按主键查询并加载点赞记录，不存在返回 nil
func (d *TipDAO) GetWithLikes(ctx context.Context, tipID uint64) (*models.Tip, error) {
	var item models.Tip
	err := d.Db.WithContext(ctx).Preload("Likes").First(&item, "id = ?", tipID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// PickRandom 均匀随机取一条贴士，库为空返回 nil
func (d *TipDAO) PickRandom(ctx context.Context) (*models.Tip, error) {
	var count int64
	if err := d.Db.WithContext(ctx).Model(&models.Tip{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	var item models.Tip
	err := d.Db.WithContext(ctx).
		Order("id").
		Offset(rand.Intn(int(count))).
		Limit(1).
		Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		// 取样窗口内被并发删除，当作空库处理
		return nil, nil
	}
	return &item, nil
}

// UpdateFields 更新指定字段
func (d *TipDAO) UpdateFields(ctx context.Context, tipID uint64, fields map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Tip{}).
		Where("id = ?", tipID).
		Updates(fields).Error
}

// DeleteWithLikes 删除贴士并显式清理点赞记录
func (d *TipDAO) DeleteWithLikes(ctx context.Context, tipID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tip_id = ?", tipID).Delete(&models.TipLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tip{}, "id = ?", tipID).Error
	})
}
