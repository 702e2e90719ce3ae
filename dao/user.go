package dao

import (
	"Tipbox/models"
	"context"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

// FindByUsername 用户名查询，不存在返回 nil
func (d *UserDAO) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return d.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 判断用户名是否存在
func (d *UserDAO) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := d.IsExist(ctx, "username = ?", username)
	return exist
}
