package repository

import (
	"time"

	"github.com/contractops/contract-gin/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ContractRepository 合同仓储接口
type ContractRepository interface {
	Create(contract *model.ContractModel) error
	Save(contract *model.ContractModel) error
	Delete(id uint) error
	FindByID(id uint) (*model.ContractModel, error)
	FindByCreator(userID uint) ([]*model.ContractModel, error)
	FindByStatus(status model.ContractStatus) ([]*model.ContractModel, error)
	FindByIDs(ids []uint) ([]*model.ContractModel, error)
	FindAll() ([]*model.ContractModel, error)
	TransitionStatus(id uint, from, to model.ContractStatus, submittedAt *time.Time) (int64, error)
	UpdateDraftContent(id uint, title, description string, amount decimal.Decimal) (int64, error)
}

// contractRepository 合同仓储实现
type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository 创建合同仓储
func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

// Create 新建合同
func (r *contractRepository) Create(contract *model.ContractModel) error {
	return r.db.Create(contract).Error
}

// Save 保存合同
func (r *contractRepository) Save(contract *model.ContractModel) error {
	return r.db.Save(contract).Error
}

// Delete 删除合同
func (r *contractRepository) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&model.ContractModel{}).Error
}

// FindByID 根据 ID 查找合同
func (r *contractRepository) FindByID(id uint) (*model.ContractModel, error) {
	var contract model.ContractModel
	if err := r.db.Where("id = ?", id).First(&contract).Error; err != nil {
		return nil, err
	}
	return &contract, nil
}

// FindByCreator 查找指定用户创建的全部合同
func (r *contractRepository) FindByCreator(userID uint) ([]*model.ContractModel, error) {
	var contracts []*model.ContractModel
	err := r.db.Where("created_by = ?", userID).Find(&contracts).Error
	return contracts, err
}

// FindByStatus 查找指定状态的全部合同
func (r *contractRepository) FindByStatus(status model.ContractStatus) ([]*model.ContractModel, error) {
	var contracts []*model.ContractModel
	err := r.db.Where("status = ?", string(status)).Find(&contracts).Error
	return contracts, err
}

// FindByIDs 批量查找合同
func (r *contractRepository) FindByIDs(ids []uint) ([]*model.ContractModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var contracts []*model.ContractModel
	err := r.db.Where("id IN ?", ids).Find(&contracts).Error
	return contracts, err
}

// FindAll 查找全部合同
func (r *contractRepository) FindAll() ([]*model.ContractModel, error) {
	var contracts []*model.ContractModel
	err := r.db.Find(&contracts).Error
	return contracts, err
}

// UpdateDraftContent 条件内容更新:仅当合同仍为 Draft 时写入,返回受影响行数
// 不做整行覆盖,并发提交设置的 status/submitted_at 不会被冲掉
func (r *contractRepository) UpdateDraftContent(id uint, title, description string, amount decimal.Decimal) (int64, error) {
	res := r.db.Model(&model.ContractModel{}).
		Where("id = ? AND status = ?", id, string(model.StatusDraft)).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
			"amount":      amount,
		})
	return res.RowsAffected, res.Error
}

// TransitionStatus 条件状态迁移:仅当当前状态仍为 from 时生效,返回受影响行数
// 并发迁移竞争同一份合同时,后提交者在这里拿到 0 行而失败
func (r *contractRepository) TransitionStatus(id uint, from, to model.ContractStatus, submittedAt *time.Time) (int64, error) {
	updates := map[string]interface{}{"status": string(to)}
	if submittedAt != nil {
		updates["submitted_at"] = *submittedAt
	}
	res := r.db.Model(&model.ContractModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	return res.RowsAffected, res.Error
}
