package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/contractops/contract-gin/internal/model"
	"github.com/contractops/contract-gin/internal/repository"
	"github.com/contractops/contract-gin/internal/service"
	"github.com/contractops/contract-gin/internal/workflow"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupQueryService 创建查询服务测试环境
func setupQueryService(t *testing.T) (service.QueryService, *repository.Repositories) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&model.UserModel{}, &model.ContractModel{}, &model.ApprovalModel{})
	require.NoError(t, err)

	repos := repository.New(db)
	return service.NewQueryService(repos), repos
}

func seedUser(t *testing.T, repos *repository.Repositories, email, name string, role model.Role) *model.UserModel {
	user := &model.UserModel{
		Email:        email,
		FullName:     name,
		PasswordHash: "hash",
		Role:         string(role),
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repos.Users.Create(user))
	return user
}

func seedContract(t *testing.T, repos *repository.Repositories, createdBy uint, status model.ContractStatus, submittedAt *time.Time) *model.ContractModel {
	contract := &model.ContractModel{
		Title:       "测试合同",
		Amount:      decimal.NewFromInt(1000),
		Status:      string(status),
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
		SubmittedAt: submittedAt,
	}
	require.NoError(t, repos.Contracts.Create(contract))
	return contract
}

// TestQueryService_GetContract 测试获取单份合同视图
func TestQueryService_GetContract(t *testing.T) {
	qs, repos := setupQueryService(t)
	alice := seedUser(t, repos, "alice@example.com", "Alice Chen", model.RoleRequester)
	contract := seedContract(t, repos, alice.ID, model.StatusDraft, nil)

	view, err := qs.GetContract(contract.ID)
	require.NoError(t, err)
	assert.Equal(t, contract.ID, view.ID)
	assert.Equal(t, "Alice Chen", view.CreatorName)
	assert.Equal(t, string(model.StatusDraft), view.Status)

	_, err = qs.GetContract(9999)
	assert.True(t, errors.Is(err, workflow.ErrNotFound))
}

// TestQueryService_UnknownCreator 测试创建人账户缺失时的占位名
func TestQueryService_UnknownCreator(t *testing.T) {
	qs, repos := setupQueryService(t)
	contract := seedContract(t, repos, 9999, model.StatusDraft, nil)

	view, err := qs.GetContract(contract.ID)
	require.NoError(t, err)
	assert.Equal(t, service.UnknownCreatorName, view.CreatorName)
}

// TestQueryService_ListOwned 测试按所有者列出合同
func TestQueryService_ListOwned(t *testing.T) {
	qs, repos := setupQueryService(t)
	alice := seedUser(t, repos, "alice@example.com", "Alice Chen", model.RoleRequester)
	bob := seedUser(t, repos, "bob@example.com", "Bob Li", model.RoleRequester)
	seedContract(t, repos, alice.ID, model.StatusDraft, nil)
	seedContract(t, repos, alice.ID, model.StatusPendingApproval, nil)
	seedContract(t, repos, bob.ID, model.StatusDraft, nil)

	views, err := qs.ListOwned(alice.ID)
	require.NoError(t, err)
	assert.Len(t, views, 2)
	for _, v := range views {
		assert.Equal(t, alice.ID, v.CreatedBy)
		assert.Equal(t, "Alice Chen", v.CreatorName)
	}

	// 没有合同的用户拿到空列表,不报错
	empty, err := qs.ListOwned(9999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestQueryService_ListPending 测试待审批列表
func TestQueryService_ListPending(t *testing.T) {
	qs, repos := setupQueryService(t)
	alice := seedUser(t, repos, "alice@example.com", "Alice Chen", model.RoleRequester)
	seedContract(t, repos, alice.ID, model.StatusDraft, nil)
	seedContract(t, repos, alice.ID, model.StatusPendingApproval, nil)
	seedContract(t, repos, alice.ID, model.StatusApproved, nil)

	views, err := qs.ListPending()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, string(model.StatusPendingApproval), views[0].Status)
}

// TestQueryService_ListAll 测试全量列表
func TestQueryService_ListAll(t *testing.T) {
	qs, repos := setupQueryService(t)
	alice := seedUser(t, repos, "alice@example.com", "Alice Chen", model.RoleRequester)
	seedContract(t, repos, alice.ID, model.StatusDraft, nil)
	seedContract(t, repos, alice.ID, model.StatusApproved, nil)

	views, err := qs.ListAll()
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

// TestQueryService_History 测试审批历史:只含已审结合同,按提交时间倒序
func TestQueryService_History(t *testing.T) {
	qs, repos := setupQueryService(t)
	alice := seedUser(t, repos, "alice@example.com", "Alice Chen", model.RoleRequester)
	mgr := seedUser(t, repos, "mgr@example.com", "Manager Wang", model.RoleApprover)

	earlier := time.Now().UTC().Add(-2 * time.Hour)
	later := time.Now().UTC().Add(-time.Hour)

	oldContract := seedContract(t, repos, alice.ID, model.StatusApproved, &earlier)
	newContract := seedContract(t, repos, alice.ID, model.StatusRejected, &later)

	for _, c := range []*model.ContractModel{oldContract, newContract} {
		decision := model.DecisionApproved
		if c.Status == string(model.StatusRejected) {
			decision = model.DecisionRejected
		}
		require.NoError(t, repos.Approvals.Create(&model.ApprovalModel{
			ContractID: c.ID,
			ApproverID: mgr.ID,
			Decision:   string(decision),
			DecidedAt:  time.Now().UTC(),
		}))
	}

	views, err := qs.History(mgr.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// 提交时间更近的排在前面
	assert.Equal(t, newContract.ID, views[0].ID)
	assert.Equal(t, oldContract.ID, views[1].ID)

	// 没有审批过的审批人拿到空列表
	empty, err := qs.History(9999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
