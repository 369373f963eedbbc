package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ContractModel 合同数据模型
// 内容字段(标题/描述/金额)仅在 Draft 状态可变,提交后永久冻结
type ContractModel struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"type:varchar(200);not null" json:"title"`
	Description string          `gorm:"type:varchar(1000)" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	Status      string          `gorm:"type:varchar(32);not null;index" json:"status"`
	CreatedBy   uint            `gorm:"not null;index" json:"created_by"` // 所有者引用,创建后不可变
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	SubmittedAt *time.Time      `gorm:"index" json:"submitted_at"` // 仅在 Draft→PendingApproval 时设置一次
}

// TableName 指定表名
func (ContractModel) TableName() string {
	return "contracts"
}

// Validate 验证合同模型
func (cm *ContractModel) Validate() error {
	if err := ValidateContractFields(cm.Title, cm.Description, cm.Amount); err != nil {
		return err
	}
	if _, err := ParseContractStatus(cm.Status); err != nil {
		return err
	}
	if cm.CreatedBy == 0 {
		return errors.New("contract owner is required")
	}
	return nil
}

// ValidateContractFields 验证合同内容字段约束,长度按字符数计
func ValidateContractFields(title, description string, amount decimal.Decimal) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(trimmed) > 200 {
		return errors.New("title must be at most 200 characters")
	}
	if utf8.RuneCountInString(description) > 1000 {
		return errors.New("description must be at most 1000 characters")
	}
	if !amount.IsPositive() {
		return errors.New("amount must be greater than zero")
	}
	return nil
}
