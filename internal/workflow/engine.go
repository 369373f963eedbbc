package workflow

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/contractops/contract-gin/internal/metrics"
	"github.com/contractops/contract-gin/internal/model"
	"github.com/contractops/contract-gin/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Actor 经外部接入层认证后的调用者身份
// 引擎只信任这里的 id 和 role,从不使用客户端自报的身份字段
type Actor struct {
	ID   uint
	Role model.Role
}

// ContractInput 创建/编辑合同的内容字段
type ContractInput struct {
	Title       string
	Description string
	Amount      decimal.Decimal
}

// DecisionInput 审批决定
type DecisionInput struct {
	ContractID uint
	Decision   model.Decision
	Comments   string
}

// Engine 合同生命周期状态机
//
// 状态图: Draft → PendingApproval → {Approved, Rejected}
// Draft 为初始态,Approved/Rejected 为终态。任何未列出的(状态,事件)组合
// 返回 ErrInvalidTransition。权限校验先于状态校验。
type Engine interface {
	Create(ctx context.Context, actor Actor, input *ContractInput) (*model.ContractModel, error)
	Update(ctx context.Context, actor Actor, id uint, input *ContractInput) (*model.ContractModel, error)
	Delete(ctx context.Context, actor Actor, id uint) error
	Submit(ctx context.Context, actor Actor, id uint) (*model.ContractModel, error)
	Decide(ctx context.Context, actor Actor, input *DecisionInput) (*model.ContractModel, error)
}

// engine 状态机实现
// 不持有任何进程内锁:并发安全完全依赖存储层的事务提交原子性,
// 状态迁移一律走条件更新,在提交事务内重新验证当前状态
type engine struct {
	repos  *repository.Repositories
	logger *logrus.Logger
}

// NewEngine 创建生命周期引擎
func NewEngine(repos *repository.Repositories, logger *logrus.Logger) Engine {
	return &engine{repos: repos, logger: logger}
}

// Create 创建合同,初始状态 Draft,所有者为当前调用者
func (e *engine) Create(ctx context.Context, actor Actor, input *ContractInput) (*model.ContractModel, error) {
	if err := model.ValidateContractFields(input.Title, input.Description, input.Amount); err != nil {
		return nil, validationf("%v", err)
	}

	contract := &model.ContractModel{
		Title:       input.Title,
		Description: input.Description,
		Amount:      input.Amount,
		Status:      string(model.StatusDraft),
		CreatedBy:   actor.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := e.repos.Contracts.Create(contract); err != nil {
		return nil, storagef("failed to create contract: %v", err)
	}

	metrics.RecordContractCreated()
	e.logger.WithFields(logrus.Fields{
		"contract_id": contract.ID,
		"actor_id":    actor.ID,
	}).Info("contract created")

	return contract, nil
}

// Update 编辑合同内容,仅所有者且仅 Draft 状态允许
func (e *engine) Update(ctx context.Context, actor Actor, id uint, input *ContractInput) (*model.ContractModel, error) {
	contract, err := e.loadContract(id)
	if err != nil {
		return nil, err
	}
	if contract.CreatedBy != actor.ID {
		return nil, unauthorizedf("only the contract owner can update it")
	}
	if contract.Status != string(model.StatusDraft) {
		return nil, invalidTransitionf("only draft contracts can be updated")
	}
	if err := model.ValidateContractFields(input.Title, input.Description, input.Amount); err != nil {
		return nil, validationf("%v", err)
	}

	rows, err := e.repos.Contracts.UpdateDraftContent(id, input.Title, input.Description, input.Amount)
	if err != nil {
		return nil, storagef("failed to update contract: %v", err)
	}
	if rows == 0 {
		// 状态在读取后已被并发提交改变,冻结的内容不可覆盖
		return nil, invalidTransitionf("only draft contracts can be updated")
	}

	return e.loadContract(id)
}

// Delete 删除合同,仅所有者且仅 Draft 状态允许
// 与审批记录在同一事务中删除,保证级联语义
func (e *engine) Delete(ctx context.Context, actor Actor, id uint) error {
	contract, err := e.loadContract(id)
	if err != nil {
		return err
	}
	if contract.CreatedBy != actor.ID {
		return unauthorizedf("only the contract owner can delete it")
	}
	if contract.Status != string(model.StatusDraft) {
		return invalidTransitionf("only draft contracts can be deleted")
	}

	err = e.repos.Atomically(func(tx *repository.Repositories) error {
		if err := tx.Approvals.DeleteByContractID(id); err != nil {
			return err
		}
		return tx.Contracts.Delete(id)
	})
	if err != nil {
		return storagef("failed to delete contract: %v", err)
	}

	e.logger.WithFields(logrus.Fields{
		"contract_id": id,
		"actor_id":    actor.ID,
	}).Info("contract deleted")

	return nil
}

// Submit 提交合同进入审批,Draft→PendingApproval,submitted_at 只在这里设置一次
func (e *engine) Submit(ctx context.Context, actor Actor, id uint) (*model.ContractModel, error) {
	contract, err := e.loadContract(id)
	if err != nil {
		return nil, err
	}
	if contract.CreatedBy != actor.ID {
		return nil, unauthorizedf("only the contract owner can submit it")
	}
	if contract.Status != string(model.StatusDraft) {
		return nil, invalidTransitionf("contract is not in draft status")
	}

	now := time.Now().UTC()
	rows, err := e.repos.Contracts.TransitionStatus(id, model.StatusDraft, model.StatusPendingApproval, &now)
	if err != nil {
		return nil, storagef("failed to submit contract: %v", err)
	}
	if rows == 0 {
		// 状态在读取后已被并发请求改变
		return nil, invalidTransitionf("contract is not in draft status")
	}

	metrics.RecordContractSubmitted()
	e.logger.WithFields(logrus.Fields{
		"contract_id": id,
		"actor_id":    actor.ID,
	}).Info("contract submitted for approval")

	return e.loadContract(id)
}

// Decide 审批决定:状态迁移与审批记录插入在同一事务内提交
//
// 事务内通过条件更新重新验证 status == PendingApproval,两个并发的
// Decide 竞争同一份合同时,后提交者会在这里失败,不会产生第二条记录;
// 提交失败时两个写入都不可见,以 ErrStorage 上抛("决定未保存",可重试)
func (e *engine) Decide(ctx context.Context, actor Actor, input *DecisionInput) (*model.ContractModel, error) {
	// 权限先于状态校验:非审批角色无法探测合同状态
	if actor.Role != model.RoleApprover {
		return nil, unauthorizedf("only approvers can decide on contracts")
	}
	if _, err := model.ParseDecision(string(input.Decision)); err != nil {
		return nil, validationf("%v", err)
	}
	if utf8.RuneCountInString(input.Comments) > 500 {
		return nil, validationf("comments must be at most 500 characters")
	}

	contract, err := e.loadContract(input.ContractID)
	if err != nil {
		return nil, err
	}

	approver, err := e.repos.Users.FindByID(actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("approver account not found")
		}
		return nil, storagef("failed to resolve approver: %v", err)
	}
	if !approver.Active {
		return nil, unauthorizedf("approver account is inactive")
	}

	if contract.Status != string(model.StatusPendingApproval) {
		return nil, invalidTransitionf("contract is not pending approval")
	}

	finalStatus := input.Decision.Status()
	record := &model.ApprovalModel{
		ContractID: contract.ID,
		ApproverID: approver.ID,
		Decision:   string(input.Decision),
		Comments:   input.Comments,
		DecidedAt:  time.Now().UTC(),
	}

	err = e.repos.Atomically(func(tx *repository.Repositories) error {
		rows, err := tx.Contracts.TransitionStatus(contract.ID, model.StatusPendingApproval, finalStatus, nil)
		if err != nil {
			return err
		}
		if rows == 0 {
			return invalidTransitionf("contract is not pending approval")
		}
		return tx.Approvals.Create(record)
	})
	if err != nil {
		var fault *Fault
		if errors.As(err, &fault) {
			return nil, err
		}
		return nil, storagef("decision not saved: %v", err)
	}

	metrics.RecordDecision(string(input.Decision))
	e.logger.WithFields(logrus.Fields{
		"contract_id": contract.ID,
		"approver_id": approver.ID,
		"decision":    string(input.Decision),
	}).Info("contract decided")

	return e.loadContract(contract.ID)
}

// loadContract 读取合同,未找到映射为 ErrNotFound
func (e *engine) loadContract(id uint) (*model.ContractModel, error) {
	contract, err := e.repos.Contracts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("contract not found")
		}
		return nil, storagef("failed to load contract: %v", err)
	}
	return contract, nil
}
