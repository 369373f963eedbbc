package api

import (
	"errors"
	"net/http"

	"github.com/contractops/contract-gin/internal/auth"
	"github.com/contractops/contract-gin/internal/service"
	"github.com/contractops/contract-gin/internal/workflow"
	"github.com/gin-gonic/gin"
)

// AuthController 账户控制器:注册、登录、当前账户
type AuthController struct {
	authService service.AuthService
	tokenIssuer *auth.TokenIssuer
}

// NewAuthController 创建账户控制器
func NewAuthController(authService service.AuthService, tokenIssuer *auth.TokenIssuer) *AuthController {
	return &AuthController{
		authService: authService,
		tokenIssuer: tokenIssuer,
	}
}

// Register 注册账户
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	account, err := c.authService.Register(&req)
	if err != nil {
		RespondFault(ctx, err)
		return
	}
	Created(ctx, account)
}

// Login 登录并签发访问令牌
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	account, err := c.authService.Login(&req)
	if err != nil {
		// 认证失败用 401,403 留给角色/所有权拒绝
		if errors.Is(err, workflow.ErrUnauthorized) {
			Error(ctx, http.StatusUnauthorized, "unauthorized", err.Error())
			return
		}
		RespondFault(ctx, err)
		return
	}

	token, err := c.tokenIssuer.Issue(account)
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	Success(ctx, gin.H{
		"account": account,
		"token":   token,
	})
}

// Me 返回当前登录账户
func (c *AuthController) Me(ctx *gin.Context) {
	actor, ok := auth.ActorFrom(ctx)
	if !ok {
		Error(ctx, http.StatusUnauthorized, "not authenticated", "")
		return
	}

	account, err := c.authService.GetAccount(actor.ID)
	if err != nil {
		RespondFault(ctx, err)
		return
	}
	Success(ctx, account)
}
