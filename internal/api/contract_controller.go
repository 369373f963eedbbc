package api

import (
	"net/http"

	"github.com/contractops/contract-gin/internal/auth"
	"github.com/contractops/contract-gin/internal/service"
	"github.com/contractops/contract-gin/internal/utils"
	"github.com/contractops/contract-gin/internal/workflow"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ContractRequest 创建/编辑合同请求
// @Description 合同内容字段
type ContractRequest struct {
	Title       string          `json:"title" binding:"required,max=200"`
	Description string          `json:"description" binding:"max=1000"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// ContractController 合同控制器
type ContractController struct {
	engine       workflow.Engine
	queryService service.QueryService
}

// NewContractController 创建合同控制器
func NewContractController(engine workflow.Engine, queryService service.QueryService) *ContractController {
	return &ContractController{
		engine:       engine,
		queryService: queryService,
	}
}

// contractID 解析路径里的合同 ID
func (c *ContractController) contractID(ctx *gin.Context) (uint, bool) {
	id, err := utils.ParseID(ctx.Param("id"))
	if err != nil {
		Error(ctx, http.StatusBadRequest, "invalid contract ID", err.Error())
		return 0, false
	}
	return id, true
}

// toInput 请求转引擎输入,入库前统一清理文本字段
func (r *ContractRequest) toInput() *workflow.ContractInput {
	return &workflow.ContractInput{
		Title:       utils.SanitizeString(r.Title),
		Description: utils.SanitizeString(r.Description),
		Amount:      r.Amount,
	}
}

// Create 创建合同
func (c *ContractController) Create(ctx *gin.Context) {
	var req ContractRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	actor, _ := auth.ActorFrom(ctx)
	contract, err := c.engine.Create(ctx.Request.Context(), actor, req.toInput())
	if err != nil {
		RespondFault(ctx, err)
		return
	}

	view, err := c.queryService.GetContract(contract.ID)
	if err != nil {
		RespondFault(ctx, err)
		return
	}
	Created(ctx, view)
}

// Get 获取合同详情
func (c *ContractController) Get(ctx *gin.Context) {
	id, ok := c.contractID(ctx)
	if !ok {
		return
	}

	view, err := c.queryService.GetContract(id)
	if err != nil {
		RespondFault(ctx, err)
		return
	}
	Success(ctx, view)
}

// Update 编辑合同,仅 Draft 状态的所有者可用
func (c *ContractController) Update(ctx *gin.Context) {
	id, ok := c.contractID(ctx)
	if !ok {
		return
	}

	var req ContractRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	actor, _ := auth.ActorFrom(ctx)
	if _, err := c.engine.Update(ctx.Request.Context(), actor, id, req.toInput()); err != nil {
		RespondFault(ctx, err)
		return
	}

	view, err := c.queryService.GetContract(id)
	if err != nil {
		RespondFault(ctx, err)
		return
	}
	Success(ctx, view)
}

// Delete 删除合同,仅 Draft 状态的所有者可用
func (c *ContractController) Delete(ctx *gin.Context) {
	id, ok := c.contractID(ctx)
	if !ok {
		return
	}

	actor, _ := auth.ActorFrom(ctx)
	if err := c.engine.Delete(ctx.Request.Context(), actor, id); err != nil {
		RespondFault(ctx, err)
		return
	}
	Success(ctx, gin.H{"deleted": true})
}

// Submit 提交合同进入审批
func (c *ContractController) Submit(ctx *gin.Context) {
	id, ok := c.contractID(ctx)
	if !ok {
		return
	}

	actor, _ := auth.ActorFrom(ctx)
	if _, err := c.engine.Submit(ctx.Request.Context(), actor, id); err != nil {
		RespondFault(ctx, err)
		return
	}

	view, err := c.queryService.GetContract(id)
	if err != nil {
		RespondFault(ctx, err)
		return
	}
	Success(ctx, view)
}

// ListMine 列出当前用户创建的合同
func (c *ContractController) ListMine(ctx *gin.Context) {
	actor, _ := auth.ActorFrom(ctx)
	views, err := c.queryService.ListOwned(actor.ID)
	if err != nil {
		RespondFault(ctx, err)
		return
	}
	Success(ctx, views)
}

// ListAll 列出全部合同,路由层已限定 Approver 角色
func (c *ContractController) ListAll(ctx *gin.Context) {
	views, err := c.queryService.ListAll()
	if err != nil {
		RespondFault(ctx, err)
		return
	}
	Success(ctx, views)
}
