package repository

import (
	"github.com/contractops/contract-gin/internal/model"
	"gorm.io/gorm"
)

// ApprovalRepository 审批记录仓储接口
// 记录只增不改:接口刻意不提供 Update
type ApprovalRepository interface {
	Create(record *model.ApprovalModel) error
	FindByContractID(contractID uint) (*model.ApprovalModel, error)
	FindByApprover(approverID uint) ([]*model.ApprovalModel, error)
	CountByContractID(contractID uint) (int64, error)
	DeleteByContractID(contractID uint) error
}

// approvalRepository 审批记录仓储实现
type approvalRepository struct {
	db *gorm.DB
}

// NewApprovalRepository 创建审批记录仓储
func NewApprovalRepository(db *gorm.DB) ApprovalRepository {
	return &approvalRepository{db: db}
}

// Create 保存审批记录
func (r *approvalRepository) Create(record *model.ApprovalModel) error {
	return r.db.Create(record).Error
}

// FindByContractID 查找合同的审批记录(每份合同至多一条)
func (r *approvalRepository) FindByContractID(contractID uint) (*model.ApprovalModel, error) {
	var record model.ApprovalModel
	if err := r.db.Where("contract_id = ?", contractID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByApprover 查找审批人作出的全部决定
func (r *approvalRepository) FindByApprover(approverID uint) ([]*model.ApprovalModel, error) {
	var records []*model.ApprovalModel
	err := r.db.Where("approver_id = ?", approverID).Order("decided_at DESC").Find(&records).Error
	return records, err
}

// CountByContractID 统计合同的审批记录数
func (r *approvalRepository) CountByContractID(contractID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.ApprovalModel{}).Where("contract_id = ?", contractID).Count(&count).Error
	return count, err
}

// DeleteByContractID 级联删除合同的审批记录
// 合同仅在 Draft 可删,此时不可能有记录,保留本方法只为保证级联语义完整
func (r *approvalRepository) DeleteByContractID(contractID uint) error {
	return r.db.Where("contract_id = ?", contractID).Delete(&model.ApprovalModel{}).Error
}
