package user

import (
	"errors"
	"time"
)

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

var ErrNotFound = errors.New("user not found")

type User struct {
	ID           uint64     `gorm:"primaryKey;column:id"`
	Username     string     `gorm:"column:username;size:100;not null;uniqueIndex:ux_users_username"`
	Email        string     `gorm:"column:email;size:256;not null;uniqueIndex:ux_users_email"`
	PasswordHash string     `gorm:"column:password_hash;size:256;not null"`
	Role         Role       `gorm:"column:role;size:50;not null"`
	IsActive     bool       `gorm:"column:is_active;not null"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string { return "users" }
