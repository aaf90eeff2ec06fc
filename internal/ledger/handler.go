package ledger

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"settleup/internal/metrics"
	"settleup/pkg/response"
)

// Handler handles HTTP requests for expense operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /expenses
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.GroupID == "" {
		response.BadRequest(w, "group_id is required")
		return
	}

	expense, validationErrs, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrNoSplitTargets) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create expense")
		return
	}
	if len(validationErrs) > 0 {
		metrics.ValidationRejections.WithLabelValues("expense").Inc()
		response.ValidationFailed(w, validationErrs)
		return
	}

	response.JSON(w, http.StatusCreated, expense.ToResponse())
}

// List handles GET /expenses?group_id=...
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	groupID := r.URL.Query().Get("group_id")
	if groupID == "" {
		response.BadRequest(w, "group_id query parameter is required")
		return
	}

	expenses, err := h.service.ListByGroup(r.Context(), groupID)
	if err != nil {
		response.InternalError(w, "Failed to list expenses")
		return
	}

	out := make([]*ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = expenses[i].ToResponse()
	}
	response.JSON(w, http.StatusOK, out)
}

// GetByID handles GET /expenses/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	expense, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get expense")
		return
	}

	response.JSON(w, http.StatusOK, expense.ToResponse())
}

// Delete handles DELETE /expenses/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete expense")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
