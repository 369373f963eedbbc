package repository

import (
	"gorm.io/gorm"
)

// Repositories 聚合所有实体仓储,作为一个工作单元的入口
type Repositories struct {
	db        *gorm.DB
	Users     UserRepository
	Contracts ContractRepository
	Approvals ApprovalRepository
}

// New 基于数据库连接(或事务)创建仓储集合
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		db:        db,
		Users:     NewUserRepository(db),
		Contracts: NewContractRepository(db),
		Approvals: NewApprovalRepository(db),
	}
}

// Atomically 在单个事务中执行 fn,其中的全部写入要么一起提交要么全部回滚
// fn 收到的仓储集合绑定在事务连接上,提交前的变更对其他工作单元不可见
func (r *Repositories) Atomically(fn func(tx *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// DB 返回底层连接,供健康检查和指标采集使用
func (r *Repositories) DB() *gorm.DB {
	return r.db
}
