package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/contractops/contract-gin/internal/model"
	"github.com/contractops/contract-gin/internal/service"
	"github.com/golang-jwt/jwt/v5"
)

// Claims 访问令牌声明
type Claims struct {
	UserID   uint   `json:"uid"`
	Email    string `json:"email"`
	FullName string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer HS256 访问令牌签发与验证
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenIssuer 创建令牌签发器
func NewTokenIssuer(secret, issuer string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Issue 为登录成功的账户签发令牌
func (i *TokenIssuer) Issue(account *service.AccountView) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   account.ID,
		Email:    account.Email,
		FullName: account.FullName,
		Role:     account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   fmt.Sprintf("%d", account.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Validate 验证令牌并解析声明
// 角色声明在这里就按闭合枚举校验,非法角色不会进入业务逻辑
func (i *TokenIssuer) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to validate token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if i.issuer != "" && claims.Issuer != i.issuer {
		return nil, errors.New("invalid issuer")
	}
	if claims.UserID == 0 {
		return nil, errors.New("missing user id claim")
	}
	if _, err := model.ParseRole(claims.Role); err != nil {
		return nil, err
	}

	return claims, nil
}
