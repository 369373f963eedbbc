package api

import (
	"net/http"

	"github.com/contractops/contract-gin/internal/auth"
	"github.com/contractops/contract-gin/internal/model"
	"github.com/contractops/contract-gin/internal/service"
	"github.com/contractops/contract-gin/internal/utils"
	"github.com/contractops/contract-gin/internal/workflow"
	"github.com/gin-gonic/gin"
)

// DecideRequest 审批决定请求
// @Description 审批决定的请求参数
type DecideRequest struct {
	ContractID uint   `json:"contract_id" binding:"required"`
	Decision   string `json:"decision" binding:"required,oneof=Approved Rejected"`
	Comments   string `json:"comments" binding:"max=500"`
}

// ApprovalController 审批控制器,所有路由限定 Approver 角色
type ApprovalController struct {
	engine       workflow.Engine
	queryService service.QueryService
}

// NewApprovalController 创建审批控制器
func NewApprovalController(engine workflow.Engine, queryService service.QueryService) *ApprovalController {
	return &ApprovalController{
		engine:       engine,
		queryService: queryService,
	}
}

// Pending 列出所有待审批合同
func (c *ApprovalController) Pending(ctx *gin.Context) {
	views, err := c.queryService.ListPending()
	if err != nil {
		RespondFault(ctx, err)
		return
	}
	Success(ctx, views)
}

// Decide 对待审批合同作出决定
func (c *ApprovalController) Decide(ctx *gin.Context) {
	var req DecideRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	// oneof 绑定已拒绝未知值,这里转成闭合枚举
	decision, err := model.ParseDecision(req.Decision)
	if err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	actor, _ := auth.ActorFrom(ctx)
	input := &workflow.DecisionInput{
		ContractID: req.ContractID,
		Decision:   decision,
		Comments:   utils.SanitizeString(req.Comments),
	}
	contract, err := c.engine.Decide(ctx.Request.Context(), actor, input)
	if err != nil {
		RespondFault(ctx, err)
		return
	}

	Success(ctx, gin.H{
		"contract_id": contract.ID,
		"status":      contract.Status,
	})
}

// History 列出当前审批人已审结的合同
func (c *ApprovalController) History(ctx *gin.Context) {
	actor, _ := auth.ActorFrom(ctx)
	views, err := c.queryService.History(actor.ID)
	if err != nil {
		RespondFault(ctx, err)
		return
	}
	Success(ctx, views)
}
