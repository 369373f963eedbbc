package service

import (
	"errors"
	"sort"
	"time"

	"github.com/contractops/contract-gin/internal/model"
	"github.com/contractops/contract-gin/internal/repository"
	"github.com/contractops/contract-gin/internal/workflow"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UnknownCreatorName 创建人账户缺失时的占位显示名,列表不因此整体失败
const UnknownCreatorName = "Unknown User"

// ContractView 合同读视图,附带创建人姓名
// @Description 合同详情,含创建人显示名
type ContractView struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	CreatedBy   uint            `json:"created_by"`
	CreatorName string          `json:"creator_name"`
	CreatedAt   time.Time       `json:"created_at"`
	SubmittedAt *time.Time      `json:"submitted_at"`
}

// QueryService 合同读视图服务接口
type QueryService interface {
	GetContract(id uint) (*ContractView, error)
	ListOwned(userID uint) ([]*ContractView, error)
	ListPending() ([]*ContractView, error)
	ListAll() ([]*ContractView, error)
	History(approverID uint) ([]*ContractView, error)
}

// queryService 合同读视图服务实现
type queryService struct {
	repos *repository.Repositories
}

// NewQueryService 创建查询服务
func NewQueryService(repos *repository.Repositories) QueryService {
	return &queryService{repos: repos}
}

// GetContract 获取单份合同视图
func (s *queryService) GetContract(id uint) (*ContractView, error) {
	contract, err := s.repos.Contracts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, workflow.NewFault(workflow.ErrNotFound, "contract not found")
		}
		return nil, workflow.NewFault(workflow.ErrStorage, "failed to load contract: %v", err)
	}

	views, err := s.enrich([]*model.ContractModel{contract})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// ListOwned 列出指定用户创建的全部合同
func (s *queryService) ListOwned(userID uint) ([]*ContractView, error) {
	contracts, err := s.repos.Contracts.FindByCreator(userID)
	if err != nil {
		return nil, workflow.NewFault(workflow.ErrStorage, "failed to list contracts: %v", err)
	}
	return s.enrich(contracts)
}

// ListPending 列出所有待审批合同
func (s *queryService) ListPending() ([]*ContractView, error) {
	contracts, err := s.repos.Contracts.FindByStatus(model.StatusPendingApproval)
	if err != nil {
		return nil, workflow.NewFault(workflow.ErrStorage, "failed to list pending contracts: %v", err)
	}
	return s.enrich(contracts)
}

// ListAll 列出全部合同,调用边界限定 Approver 角色
func (s *queryService) ListAll() ([]*ContractView, error) {
	contracts, err := s.repos.Contracts.FindAll()
	if err != nil {
		return nil, workflow.NewFault(workflow.ErrStorage, "failed to list contracts: %v", err)
	}
	return s.enrich(contracts)
}

// History 列出指定审批人已审结的合同,按提交时间倒序,未提交时间排最后
func (s *queryService) History(approverID uint) ([]*ContractView, error) {
	records, err := s.repos.Approvals.FindByApprover(approverID)
	if err != nil {
		return nil, workflow.NewFault(workflow.ErrStorage, "failed to list approvals: %v", err)
	}
	if len(records) == 0 {
		return []*ContractView{}, nil
	}

	contractIDs := make([]uint, 0, len(records))
	seen := make(map[uint]bool, len(records))
	for _, r := range records {
		if !seen[r.ContractID] {
			seen[r.ContractID] = true
			contractIDs = append(contractIDs, r.ContractID)
		}
	}

	contracts, err := s.repos.Contracts.FindByIDs(contractIDs)
	if err != nil {
		return nil, workflow.NewFault(workflow.ErrStorage, "failed to load reviewed contracts: %v", err)
	}

	// 只保留已审结的合同
	reviewed := make([]*model.ContractModel, 0, len(contracts))
	for _, c := range contracts {
		if model.ContractStatus(c.Status).IsTerminal() {
			reviewed = append(reviewed, c)
		}
	}

	sort.SliceStable(reviewed, func(i, j int) bool {
		a, b := reviewed[i].SubmittedAt, reviewed[j].SubmittedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})

	return s.enrich(reviewed)
}

// enrich 批量装载创建人并组装视图
// 每次调用对每个不同的 created_by 只查一次,避免逐行回查
func (s *queryService) enrich(contracts []*model.ContractModel) ([]*ContractView, error) {
	views := make([]*ContractView, 0, len(contracts))
	if len(contracts) == 0 {
		return views, nil
	}

	creatorIDs := make([]uint, 0, len(contracts))
	seen := make(map[uint]bool, len(contracts))
	for _, c := range contracts {
		if !seen[c.CreatedBy] {
			seen[c.CreatedBy] = true
			creatorIDs = append(creatorIDs, c.CreatedBy)
		}
	}

	creators, err := s.repos.Users.FindByIDs(creatorIDs)
	if err != nil {
		return nil, workflow.NewFault(workflow.ErrStorage, "failed to load creators: %v", err)
	}
	names := make(map[uint]string, len(creators))
	for _, u := range creators {
		names[u.ID] = u.FullName
	}

	for _, c := range contracts {
		name, ok := names[c.CreatedBy]
		if !ok {
			name = UnknownCreatorName
		}
		views = append(views, &ContractView{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Amount:      c.Amount,
			Status:      c.Status,
			CreatedBy:   c.CreatedBy,
			CreatorName: name,
			CreatedAt:   c.CreatedAt,
			SubmittedAt: c.SubmittedAt,
		})
	}

	return views, nil
}
