package model

import (
	"errors"
	"strings"
	"time"
)

// UserModel 账户数据模型
type UserModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"` // 注册时统一转小写
	FullName     string    `gorm:"type:varchar(100);not null" json:"full_name"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"` // 永不序列化
	Role         string    `gorm:"type:varchar(20);not null" json:"role"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// Validate 验证账户模型
func (um *UserModel) Validate() error {
	if strings.TrimSpace(um.Email) == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(um.Email, "@") {
		return errors.New("email format is invalid")
	}
	if strings.TrimSpace(um.FullName) == "" {
		return errors.New("full name is required")
	}
	if um.PasswordHash == "" {
		return errors.New("password hash is required")
	}
	if _, err := ParseRole(um.Role); err != nil {
		return err
	}
	return nil
}

// NormalizeEmail 邮箱按小写比较,入库前统一归一化
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
