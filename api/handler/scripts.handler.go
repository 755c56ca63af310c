package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cutsea110/payroll-core/api/response"
	"github.com/cutsea110/payroll-core/internal/audit"
	"github.com/cutsea110/payroll-core/internal/authn"
	"github.com/cutsea110/payroll-core/internal/command"
	"github.com/cutsea110/payroll-core/internal/domain"
	"github.com/cutsea110/payroll-core/internal/driver"
	"github.com/cutsea110/payroll-core/internal/txn"
)

// ScriptsHandler runs operator-submitted scripts through the payroll
// driver and audits each command it ran.
type ScriptsHandler struct {
	ctx       *txn.Ctx
	auditRepo audit.Repository
}

// NewScriptsHandler creates a new ScriptsHandler.
func NewScriptsHandler(ctx *txn.Ctx, auditRepo audit.Repository) *ScriptsHandler {
	return &ScriptsHandler{ctx: ctx, auditRepo: auditRepo}
}

// RunScriptRequest is the body of POST /api/scripts: raw script text.
type RunScriptRequest struct {
	Script string `json:"script" binding:"required"`
}

// commandResult reports one command's outcome back to the caller.
type commandResult struct {
	Index   int    `json:"index"`
	Command string `json:"command"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

// entityForCommand names the audited entity a command kind acts on:
// ServiceCharge is the only command addressed by member id rather than
// employee id.
func entityForCommand(kind command.Kind) string {
	if kind == command.KindServiceCharge {
		return "Member"
	}
	return "Employee"
}

// RunScript parses and executes a script body, logging one audit row per
// command, and returns a per-command result list plus any deliveries the
// run produced (Payday is the only command that produces any).
func (h *ScriptsHandler) RunScript(c *gin.Context) {
	var req RunScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.APIResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload",
			Data:    err.Error(),
		})
		return
	}

	cmds, err := command.Parse(req.Script)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIResponse{
			Code:    http.StatusBadRequest,
			Message: "Script failed to parse",
			Data:    err.Error(),
		})
		return
	}

	ipAddress := c.ClientIP()
	requestID := c.GetHeader("X-Request-ID")

	var operatorID *uuid.UUID
	if u, exists := c.Get("currentUser"); exists {
		if operator, ok := u.(*authn.User); ok {
			operatorID = &operator.ID
		}
	}

	results := make([]commandResult, 0, len(cmds))
	var deliveries []domain.Delivery

	for i, cmd := range cmds {
		tx := driver.Build(cmd)
		out, runErr := tx.Run(h.ctx)

		result := commandResult{Index: i, Command: cmd.Kind.String(), OK: runErr == nil}
		if runErr != nil {
			result.Error = runErr.Error()
		} else if cmd.Kind == command.KindPayday {
			if ds, ok := out.([]domain.Delivery); ok {
				deliveries = append(deliveries, ds...)
			}
		}
		results = append(results, result)

		// The roster uses int64 employee/member ids, not uuids; derive a
		// stable synthetic entity id so the audit row still names one.
		entityKey := cmd.EmployeeID.String()
		if cmd.Kind == command.KindServiceCharge {
			entityKey = cmd.MemberID.String()
		}
		entityID := uuid.NewSHA1(uuid.Nil, []byte(entityKey))
		_ = audit.Record(h.auditRepo, operatorID, cmd.Kind.String(), entityForCommand(cmd.Kind), &entityID, nil, result, ipAddress, requestID)
	}

	c.JSON(http.StatusOK, response.APIResponse{
		Code:    http.StatusOK,
		Message: "Script executed",
		Data: gin.H{
			"results":    results,
			"deliveries": deliveries,
		},
	})
}
