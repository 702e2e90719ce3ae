package models

import "time"

// Role 用户角色
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Actor 当前操作者，由认证中间件解析后传入各个业务操作
type Actor struct {
	ID   uint64
	Role Role
}

// IsAdmin 是否管理员
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type User struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_username" json:"username"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Role      Role      `gorm:"column:role;type:varchar(16);not null;default:member" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (u User) TableName() string { return "users" }
