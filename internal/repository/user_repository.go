package repository

import (
	"github.com/contractops/contract-gin/internal/model"
	"gorm.io/gorm"
)

// UserRepository 账户仓储接口
type UserRepository interface {
	Create(user *model.UserModel) error
	FindByID(id uint) (*model.UserModel, error)
	FindByEmail(email string) (*model.UserModel, error)
	FindByIDs(ids []uint) ([]*model.UserModel, error)
}

// userRepository 账户仓储实现
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建账户仓储
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create 保存账户
func (r *userRepository) Create(user *model.UserModel) error {
	return r.db.Create(user).Error
}

// FindByID 根据 ID 查找账户
func (r *userRepository) FindByID(id uint) (*model.UserModel, error) {
	var user model.UserModel
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail 根据邮箱查找账户,邮箱入库前已归一化为小写
func (r *userRepository) FindByEmail(email string) (*model.UserModel, error) {
	var user model.UserModel
	if err := r.db.Where("email = ?", model.NormalizeEmail(email)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDs 批量查找账户,供读视图一次性装载创建人
func (r *userRepository) FindByIDs(ids []uint) ([]*model.UserModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []*model.UserModel
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}
