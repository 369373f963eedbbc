package model

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestValidateContractFields 测试合同内容字段约束
func TestValidateContractFields(t *testing.T) {
	amount := decimal.NewFromInt(1000)

	// 合法字段
	assert.NoError(t, ValidateContractFields("服务合同", "年度维护", amount))

	// 标题为空或纯空白
	assert.Error(t, ValidateContractFields("", "desc", amount))
	assert.Error(t, ValidateContractFields("   ", "desc", amount))

	// 标题超长
	assert.Error(t, ValidateContractFields(strings.Repeat("a", 201), "desc", amount))
	assert.NoError(t, ValidateContractFields(strings.Repeat("a", 200), "desc", amount))

	// 描述超长
	assert.Error(t, ValidateContractFields("title", strings.Repeat("a", 1001), amount))
	assert.NoError(t, ValidateContractFields("title", strings.Repeat("a", 1000), amount))

	// 长度按字符数计,多字节字符不按字节膨胀
	assert.NoError(t, ValidateContractFields(strings.Repeat("合", 200), strings.Repeat("同", 1000), amount))
	assert.Error(t, ValidateContractFields(strings.Repeat("合", 201), "desc", amount))
	assert.Error(t, ValidateContractFields("title", strings.Repeat("同", 1001), amount))

	// 金额必须为正
	assert.Error(t, ValidateContractFields("title", "desc", decimal.Zero))
	assert.Error(t, ValidateContractFields("title", "desc", decimal.NewFromInt(-1)))
	assert.NoError(t, ValidateContractFields("title", "desc", decimal.NewFromFloat(0.01)))
}

// TestContractModel_Validate 测试合同模型验证
func TestContractModel_Validate(t *testing.T) {
	contract := &ContractModel{
		Title:     "服务合同",
		Amount:    decimal.NewFromInt(500),
		Status:    string(StatusDraft),
		CreatedBy: 1,
	}
	assert.NoError(t, contract.Validate())

	// 非法状态
	contract.Status = "Unknown"
	assert.Error(t, contract.Validate())

	// 缺少所有者
	contract.Status = string(StatusDraft)
	contract.CreatedBy = 0
	assert.Error(t, contract.Validate())
}
