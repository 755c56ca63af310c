package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cutsea110/payroll-core/api/response"
	"github.com/cutsea110/payroll-core/internal/domain"
	"github.com/cutsea110/payroll-core/internal/txn"
)

// EmployeesHandler exposes read-only roster and paycheck inspection over
// the same Store the script driver runs against.
type EmployeesHandler struct {
	ctx *txn.Ctx
}

// NewEmployeesHandler creates a new EmployeesHandler.
func NewEmployeesHandler(ctx *txn.Ctx) *EmployeesHandler {
	return &EmployeesHandler{ctx: ctx}
}

// employeeView is the roster-listing projection: it exposes each aspect's
// Kind() rather than the concrete struct, the same way a CLI summary would.
type employeeView struct {
	ID             domain.EmployeeID `json:"id"`
	Name           string            `json:"name"`
	Address        string            `json:"address"`
	Classification string            `json:"classification"`
	Schedule       string            `json:"schedule"`
	Method         string            `json:"method"`
	Affiliation    string            `json:"affiliation"`
}

func toEmployeeView(emp *domain.Employee) employeeView {
	return employeeView{
		ID:             emp.ID,
		Name:           emp.Name,
		Address:        emp.Address,
		Classification: emp.Classification.Kind(),
		Schedule:       emp.Schedule.Kind(),
		Method:         emp.Method.Kind(),
		Affiliation:    emp.Affiliation.Kind(),
	}
}

// ListEmployees handles GET /api/employees.
func (h *EmployeesHandler) ListEmployees(c *gin.Context) {
	all, err := h.ctx.Store.GetAll()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list employees", err.Error())
		return
	}

	views := make([]employeeView, 0, len(all))
	for _, emp := range all {
		views = append(views, toEmployeeView(emp))
	}

	response.Success(c, "Roster listed", views)
}

// ListPaychecks handles GET /api/employees/:id/paychecks.
func (h *EmployeesHandler) ListPaychecks(c *gin.Context) {
	raw, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid employee id", err.Error())
		return
	}
	id := domain.EmployeeID(raw)

	paychecks, err := h.ctx.Store.Paychecks(id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list paychecks", err.Error())
		return
	}

	response.Success(c, "Paychecks listed", paychecks)
}
