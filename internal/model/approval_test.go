package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestApprovalModel_Validate 测试审批记录模型验证
func TestApprovalModel_Validate(t *testing.T) {
	record := &ApprovalModel{
		ContractID: 1,
		ApproverID: 2,
		Decision:   string(DecisionApproved),
		Comments:   "预算充足",
	}
	assert.NoError(t, record.Validate())

	bad := *record
	bad.ContractID = 0
	assert.Error(t, bad.Validate())

	bad = *record
	bad.ApproverID = 0
	assert.Error(t, bad.Validate())

	bad = *record
	bad.Decision = "Pending"
	assert.Error(t, bad.Validate())

	// 意见长度按字符数计
	ok := *record
	ok.Comments = strings.Repeat("见", 500)
	assert.NoError(t, ok.Validate())

	bad = *record
	bad.Comments = strings.Repeat("a", 501)
	assert.Error(t, bad.Validate())
	bad.Comments = strings.Repeat("见", 501)
	assert.Error(t, bad.Validate())
}
