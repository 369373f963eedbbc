package auth_test

import (
	"testing"
	"time"

	"github.com/contractops/contract-gin/internal/auth"
	"github.com/contractops/contract-gin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount() *service.AccountView {
	return &service.AccountView{
		ID:       7,
		Email:    "alice@example.com",
		FullName: "Alice Chen",
		Role:     "Approver",
	}
}

// TestTokenIssuer_IssueAndValidate 测试令牌签发与验证往返
func TestTokenIssuer_IssueAndValidate(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", "contract-gin", time.Hour)

	token, err := issuer.Issue(testAccount())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice Chen", claims.FullName)
	assert.Equal(t, "Approver", claims.Role)
	assert.Equal(t, "contract-gin", claims.Issuer)
}

// TestTokenIssuer_WrongSecret 测试密钥不匹配
func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret-a", "contract-gin", time.Hour)
	other := auth.NewTokenIssuer("secret-b", "contract-gin", time.Hour)

	token, err := issuer.Issue(testAccount())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

// TestTokenIssuer_WrongIssuer 测试签发方不匹配
func TestTokenIssuer_WrongIssuer(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", "issuer-a", time.Hour)
	other := auth.NewTokenIssuer("test-secret", "issuer-b", time.Hour)

	token, err := issuer.Issue(testAccount())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

// TestTokenIssuer_Expired 测试过期令牌
func TestTokenIssuer_Expired(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", "contract-gin", time.Millisecond)

	token, err := issuer.Issue(testAccount())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = issuer.Validate(token)
	assert.Error(t, err)
}

// TestTokenIssuer_InvalidRoleClaim 测试角色声明为非法枚举值
func TestTokenIssuer_InvalidRoleClaim(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", "contract-gin", time.Hour)

	account := testAccount()
	account.Role = "SuperUser"
	token, err := issuer.Issue(account)
	require.NoError(t, err)

	// 签名合法但角色不在闭合枚举内,验证时拒绝
	_, err = issuer.Validate(token)
	assert.Error(t, err)
}

// TestTokenIssuer_Garbage 测试无法解析的令牌
func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", "contract-gin", time.Hour)

	_, err := issuer.Validate("not-a-token")
	assert.Error(t, err)
	_, err = issuer.Validate("")
	assert.Error(t, err)
}
