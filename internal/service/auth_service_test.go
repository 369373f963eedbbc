package service_test

import (
	"errors"
	"io"
	"testing"

	"github.com/contractops/contract-gin/internal/model"
	"github.com/contractops/contract-gin/internal/repository"
	"github.com/contractops/contract-gin/internal/service"
	"github.com/contractops/contract-gin/internal/workflow"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupAuthService 创建账户服务测试环境
func setupAuthService(t *testing.T) (service.AuthService, *repository.Repositories) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&model.UserModel{})
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repos := repository.New(db)
	return service.NewAuthService(repos, logger), repos
}

// TestAuthService_Register 测试注册账户
func TestAuthService_Register(t *testing.T) {
	authService, repos := setupAuthService(t)

	account, err := authService.Register(&service.RegisterRequest{
		Email:    "Alice@Example.COM",
		FullName: "Alice Chen",
		Password: "secret123",
		Role:     "Requester",
	})
	require.NoError(t, err)
	assert.NotZero(t, account.ID)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.Equal(t, "Requester", account.Role)

	// 密码散列入库,不以明文保存
	stored, err := repos.Users.FindByID(account.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.True(t, stored.Active)
}

// TestAuthService_Register_DuplicateEmail 测试邮箱重复注册
func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	authService, _ := setupAuthService(t)

	req := &service.RegisterRequest{
		Email:    "alice@example.com",
		FullName: "Alice Chen",
		Password: "secret123",
		Role:     "Requester",
	}
	_, err := authService.Register(req)
	require.NoError(t, err)

	// 大小写不同也算重复
	req.Email = "ALICE@example.com"
	_, err = authService.Register(req)
	assert.True(t, errors.Is(err, workflow.ErrValidation))
}

// TestAuthService_Register_InvalidRole 测试非法角色
func TestAuthService_Register_InvalidRole(t *testing.T) {
	authService, _ := setupAuthService(t)

	_, err := authService.Register(&service.RegisterRequest{
		Email:    "alice@example.com",
		FullName: "Alice Chen",
		Password: "secret123",
		Role:     "Admin",
	})
	assert.True(t, errors.Is(err, workflow.ErrValidation))
}

// TestAuthService_Login 测试登录
func TestAuthService_Login(t *testing.T) {
	authService, _ := setupAuthService(t)

	_, err := authService.Register(&service.RegisterRequest{
		Email:    "alice@example.com",
		FullName: "Alice Chen",
		Password: "secret123",
		Role:     "Approver",
	})
	require.NoError(t, err)

	account, err := authService.Login(&service.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Approver", account.Role)

	// 错误密码与不存在的邮箱返回同一条消息,不泄露账户是否存在
	_, err = authService.Login(&service.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, workflow.ErrUnauthorized))
	wrongPassword := err.Error()

	_, err = authService.Login(&service.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, workflow.ErrUnauthorized))
	assert.Equal(t, wrongPassword, err.Error())
}

// TestAuthService_Login_InactiveAccount 测试停用账户登录
func TestAuthService_Login_InactiveAccount(t *testing.T) {
	authService, repos := setupAuthService(t)

	account, err := authService.Register(&service.RegisterRequest{
		Email:    "alice@example.com",
		FullName: "Alice Chen",
		Password: "secret123",
		Role:     "Requester",
	})
	require.NoError(t, err)

	user, err := repos.Users.FindByID(account.ID)
	require.NoError(t, err)
	user.Active = false
	require.NoError(t, repos.DB().Save(user).Error)

	_, err = authService.Login(&service.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.True(t, errors.Is(err, workflow.ErrUnauthorized))
}

// TestAuthService_GetAccount 测试查询账户视图
func TestAuthService_GetAccount(t *testing.T) {
	authService, _ := setupAuthService(t)

	created, err := authService.Register(&service.RegisterRequest{
		Email:    "alice@example.com",
		FullName: "Alice Chen",
		Password: "secret123",
		Role:     "Requester",
	})
	require.NoError(t, err)

	got, err := authService.GetAccount(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)

	_, err = authService.GetAccount(9999)
	assert.True(t, errors.Is(err, workflow.ErrNotFound))
}
