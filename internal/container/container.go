package container

import (
	"fmt"
	"time"

	"github.com/contractops/contract-gin/internal/api"
	"github.com/contractops/contract-gin/internal/auth"
	"github.com/contractops/contract-gin/internal/config"
	"github.com/contractops/contract-gin/internal/database"
	"github.com/contractops/contract-gin/internal/repository"
	"github.com/contractops/contract-gin/internal/service"
	"github.com/contractops/contract-gin/internal/workflow"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Container 依赖注入容器
// 管理数据库连接、仓储、引擎与各服务的装配
type Container struct {
	db           *gorm.DB
	logger       *logrus.Logger
	repos        *repository.Repositories
	engine       workflow.Engine
	authService  service.AuthService
	queryService service.QueryService
	tokenIssuer  *auth.TokenIssuer
}

// NewContainer 创建依赖注入容器
func NewContainer(cfg *config.Config) (*Container, error) {
	logger, err := api.NewLoggerFromConfig(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// 初始化数据库(带重试:3 次,初始间隔 1 秒,指数退避)
	db, err := database.ConnectWithRetry(cfg.Database, 3, time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required")
	}

	repos := repository.New(db)
	engine := workflow.NewEngine(repos, logger)
	tokenIssuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	return &Container{
		db:           db,
		logger:       logger,
		repos:        repos,
		engine:       engine,
		authService:  service.NewAuthService(repos, logger),
		queryService: service.NewQueryService(repos),
		tokenIssuer:  tokenIssuer,
	}, nil
}

// DB 获取数据库连接
func (c *Container) DB() *gorm.DB {
	return c.db
}

// Logger 获取日志记录器
func (c *Container) Logger() *logrus.Logger {
	return c.logger
}

// Repositories 获取仓储集合
func (c *Container) Repositories() *repository.Repositories {
	return c.repos
}

// Engine 获取生命周期引擎
func (c *Container) Engine() workflow.Engine {
	return c.engine
}

// AuthService 获取账户服务
func (c *Container) AuthService() service.AuthService {
	return c.authService
}

// QueryService 获取查询服务
func (c *Container) QueryService() service.QueryService {
	return c.queryService
}

// TokenIssuer 获取令牌签发器
func (c *Container) TokenIssuer() *auth.TokenIssuer {
	return c.tokenIssuer
}

// Close 关闭容器,清理资源
func (c *Container) Close() error {
	if c.db != nil {
		sqlDB, err := c.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	return nil
}
