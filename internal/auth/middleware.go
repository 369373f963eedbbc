package auth

import (
	"net/http"
	"strings"

	"github.com/contractops/contract-gin/internal/model"
	"github.com/contractops/contract-gin/internal/workflow"
	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// Middleware 认证中间件:解析 Bearer 令牌,把已验证的调用者身份放进请求上下文
// 下游处理器通过 ActorFrom 取身份,从不读取客户端自报的 id/role 字段
func Middleware(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "authorization header must be a bearer token")
			return
		}

		claims, err := issuer.Validate(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		// Validate 已确认 role 是合法枚举值
		role, _ := model.ParseRole(claims.Role)
		c.Set(actorKey, workflow.Actor{ID: claims.UserID, Role: role})
		c.Next()
	}
}

// RequireRole 角色门卫,置于需要特定角色的路由之前
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			abortUnauthorized(c, "not authenticated")
			return
		}
		if actor.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    http.StatusForbidden,
				"message": "insufficient role",
			})
			return
		}
		c.Next()
	}
}

// ActorFrom 从请求上下文取出已认证的调用者身份
func ActorFrom(c *gin.Context) (workflow.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return workflow.Actor{}, false
	}
	actor, ok := v.(workflow.Actor)
	return actor, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": message,
	})
}
