package http

import (
	"net/http"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/dashboard"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/handler/http/middleware"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/handler/http/response"
)

type DashboardHandler interface {
	Admin(w http.ResponseWriter, r *http.Request)
	Reports(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	MyWeek(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Admin implements DashboardHandler.
func (h *dashboardHandlerImpl) Admin(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.AdminDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}

// Reports implements DashboardHandler.
func (h *dashboardHandlerImpl) Reports(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.Reports(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}

// MonthlyReport implements DashboardHandler.
func (h *dashboardHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.MonthlyReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}

// MyWeek implements DashboardHandler.
func (h *dashboardHandlerImpl) MyWeek(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.SubjectID(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	data, err := h.dashboardService.EmployeeWeek(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}
