package model

import (
	"errors"
	"time"
	"unicode/utf8"
)

// ApprovalModel 审批记录数据模型
// 每份合同离开 PendingApproval 时恰好产生一条记录,作为审计轨迹永不修改或删除
// contract_id 上的唯一索引在存储层兜底"至多一条"不变量
type ApprovalModel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ContractID uint      `gorm:"not null;uniqueIndex" json:"contract_id"`
	ApproverID uint      `gorm:"not null;index" json:"approver_id"`
	Decision   string    `gorm:"type:varchar(32);not null" json:"decision"` // Approved/Rejected
	Comments   string    `gorm:"type:varchar(500)" json:"comments"`
	DecidedAt  time.Time `gorm:"not null" json:"decided_at"`
}

// TableName 指定表名
func (ApprovalModel) TableName() string {
	return "approvals"
}

// Validate 验证审批记录模型
func (am *ApprovalModel) Validate() error {
	if am.ContractID == 0 {
		return errors.New("contract ID is required")
	}
	if am.ApproverID == 0 {
		return errors.New("approver ID is required")
	}
	if _, err := ParseDecision(am.Decision); err != nil {
		return err
	}
	if utf8.RuneCountInString(am.Comments) > 500 {
		return errors.New("comments must be at most 500 characters")
	}
	return nil
}
