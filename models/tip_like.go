package models

import "time"

// TipLike 点赞记录
// 对应表 tip_likes
// 唯一键: tip_id + user_id，保证同一用户对同一贴士至多一条记录
type TipLike struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	TipID     uint64    `gorm:"column:tip_id;not null;uniqueIndex:uk_tip_user,priority:1" json:"tip_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_tip_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (t TipLike) TableName() string { return "tip_likes" }
