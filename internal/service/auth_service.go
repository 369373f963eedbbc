package service

import (
	"errors"
	"strings"
	"time"

	"github.com/contractops/contract-gin/internal/model"
	"github.com/contractops/contract-gin/internal/repository"
	"github.com/contractops/contract-gin/internal/workflow"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterRequest 注册请求
// @Description 注册新账户的请求参数
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required,max=100"`
	Password string `json:"password" binding:"required,min=6,max=100"`
	Role     string `json:"role" binding:"required"` // Requester 或 Approver
}

// LoginRequest 登录请求
// @Description 登录的请求参数
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AccountView 账户视图,永不携带密码散列
type AccountView struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// AuthService 账户服务接口:注册、登录、查询
// 凭据只在这里经手,下游(引擎/查询层)只见已解析的身份
type AuthService interface {
	Register(req *RegisterRequest) (*AccountView, error)
	Login(req *LoginRequest) (*AccountView, error)
	GetAccount(id uint) (*AccountView, error)
}

// authService 账户服务实现
type authService struct {
	repos  *repository.Repositories
	logger *logrus.Logger
}

// NewAuthService 创建账户服务
func NewAuthService(repos *repository.Repositories, logger *logrus.Logger) AuthService {
	return &authService{repos: repos, logger: logger}
}

// Register 注册账户:邮箱唯一(不区分大小写),角色必须是闭合枚举值
func (s *authService) Register(req *RegisterRequest) (*AccountView, error) {
	role, err := model.ParseRole(req.Role)
	if err != nil {
		return nil, workflow.NewFault(workflow.ErrValidation, "%v", err)
	}

	email := model.NormalizeEmail(req.Email)
	if _, err := s.repos.Users.FindByEmail(email); err == nil {
		return nil, workflow.NewFault(workflow.ErrValidation, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, workflow.NewFault(workflow.ErrStorage, "failed to check email: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, workflow.NewFault(workflow.ErrStorage, "failed to hash password: %v", err)
	}

	user := &model.UserModel{
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hash),
		Role:         string(role),
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := user.Validate(); err != nil {
		return nil, workflow.NewFault(workflow.ErrValidation, "%v", err)
	}
	if err := s.repos.Users.Create(user); err != nil {
		return nil, workflow.NewFault(workflow.ErrStorage, "failed to create account: %v", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("account registered")

	return toAccountView(user), nil
}

// Login 验证凭据。失败统一返回"invalid email or password",
// 不泄露账户是否存在;停用账户单独拒绝
func (s *authService) Login(req *LoginRequest) (*AccountView, error) {
	user, err := s.repos.Users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, workflow.NewFault(workflow.ErrUnauthorized, "invalid email or password")
		}
		return nil, workflow.NewFault(workflow.ErrStorage, "failed to load account: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, workflow.NewFault(workflow.ErrUnauthorized, "invalid email or password")
	}

	if !user.Active {
		return nil, workflow.NewFault(workflow.ErrUnauthorized, "account is inactive")
	}

	return toAccountView(user), nil
}

// GetAccount 根据 ID 查询账户视图
func (s *authService) GetAccount(id uint) (*AccountView, error) {
	user, err := s.repos.Users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, workflow.NewFault(workflow.ErrNotFound, "account not found")
		}
		return nil, workflow.NewFault(workflow.ErrStorage, "failed to load account: %v", err)
	}
	return toAccountView(user), nil
}

func toAccountView(user *model.UserModel) *AccountView {
	return &AccountView{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}
}
