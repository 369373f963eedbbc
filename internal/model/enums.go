package model

import "fmt"

// Role 账户角色,闭合枚举
type Role string

const (
	RoleRequester Role = "Requester" // 合同发起人
	RoleApprover  Role = "Approver"  // 审批经理
)

// ParseRole 解析角色字符串,未知值在边界处拒绝
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleRequester, RoleApprover:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

// ContractStatus 合同状态,闭合枚举
type ContractStatus string

const (
	StatusDraft           ContractStatus = "Draft"
	StatusPendingApproval ContractStatus = "PendingApproval"
	StatusApproved        ContractStatus = "Approved"
	StatusRejected        ContractStatus = "Rejected"
)

// ParseContractStatus 解析合同状态字符串
func ParseContractStatus(s string) (ContractStatus, error) {
	switch ContractStatus(s) {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected:
		return ContractStatus(s), nil
	default:
		return "", fmt.Errorf("unknown contract status: %q", s)
	}
}

// IsTerminal 判断是否为终态(不再允许任何转换)
func (s ContractStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Decision 审批决定,闭合枚举
type Decision string

const (
	DecisionApproved Decision = "Approved"
	DecisionRejected Decision = "Rejected"
)

// ParseDecision 解析审批决定字符串
func ParseDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionApproved, DecisionRejected:
		return Decision(s), nil
	default:
		return "", fmt.Errorf("unknown decision: %q", s)
	}
}

// Status 审批决定对应的合同终态
func (d Decision) Status() ContractStatus {
	if d == DecisionApproved {
		return StatusApproved
	}
	return StatusRejected
}
