package models

import "time"

type Tip struct {
	ID         uint64    `gorm:"column:id;primary_key" json:"id"`
	Title      string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	LikesCount int64     `gorm:"column:likes_count;not null;default:0" json:"likes_count"`
	CreatedAt  time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`

	Likes []TipLike `gorm:"foreignKey:TipID;references:ID" json:"likes,omitempty"`
}

func (t Tip) TableName() string { return "tips" }
