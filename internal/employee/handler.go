package employee

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/prakashpaswan/employee-portal/internal"
	"github.com/prakashpaswan/employee-portal/internal/transport"
	"github.com/prakashpaswan/employee-portal/pkg/logger"
)

type ServiceAPI interface {
	CreateEmployee(dto EmployeeDTO) (*Employee, error)
	GetAllEmployees() ([]*Employee, error)
	GetEmployeeByID(id string) (*Employee, error)
	UpdateEmployee(id string, dto EmployeeDTO) (*Employee, error)
	DeleteEmployee(id string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// serviceError maps employee sentinel errors to AppErrors carrying HTTP
// status. Anything unrecognized becomes a 500 with the raw store message.
func serviceError(err error) error {
	if errors.Is(err, ErrEmployeeNotFound) {
		return internal.NewNotFoundError("Employee not found", internal.ErrCodeEmployeeNotFound)
	}
	return internal.NewInternalError(err.Error(), err)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var dto EmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateEmployee: invalid request body", "error", err)
		h.HandleServiceError(w, internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed))
		return
	}

	emp, err := h.Service.CreateEmployee(dto)
	if err != nil {
		h.Logger.Error("CreateEmployee: service error", "error", err)
		h.HandleServiceError(w, serviceError(err))
		return
	}

	h.WriteJSON(w, http.StatusCreated, emp)
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.GetAllEmployees()
	if err != nil {
		h.Logger.Error("ListEmployees: service error", "error", err)
		h.HandleServiceError(w, serviceError(err))
		return
	}

	h.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.Service.GetEmployeeByID(id)
	if err != nil {
		if !errors.Is(err, ErrEmployeeNotFound) {
			h.Logger.Error("GetEmployee: service error", "error", err, "employee_id", id)
		}
		h.HandleServiceError(w, serviceError(err))
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto EmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateEmployee: invalid request body", "error", err)
		h.HandleServiceError(w, internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed))
		return
	}

	emp, err := h.Service.UpdateEmployee(id, dto)
	if err != nil {
		if !errors.Is(err, ErrEmployeeNotFound) {
			h.Logger.Error("UpdateEmployee: service error", "error", err, "employee_id", id)
		}
		h.HandleServiceError(w, serviceError(err))
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.DeleteEmployee(id); err != nil {
		if !errors.Is(err, ErrEmployeeNotFound) {
			h.Logger.Error("DeleteEmployee: service error", "error", err, "employee_id", id)
		}
		h.HandleServiceError(w, serviceError(err))
		return
	}

	h.WriteJSON(w, http.StatusOK, DeleteResponse{Message: "Employee deleted successfully"})
}
