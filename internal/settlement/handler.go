package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"settleup/internal/metrics"
	"settleup/internal/validation"
	"settleup/pkg/middleware"
	"settleup/pkg/response"
)

// Handler handles HTTP requests for settlement operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Record)
	r.Get("/", h.List)
	r.Get("/completed", h.ListCompleted)
	r.Get("/exists", h.Exists)
	r.Get("/stats", h.Stats)

	return r
}

// Record handles POST /settlements
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	var req RecordSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errs := validation.ValidateSettlement(validation.SettlementInput{
		PayerID: req.PayerID,
		PayeeID: req.PayeeID,
		Amount:  req.Amount,
	}); len(errs) > 0 {
		metrics.ValidationRejections.WithLabelValues("settlement").Inc()
		response.ValidationFailed(w, errs)
		return
	}

	settlement, err := h.service.Record(r.Context(), req.GroupID, req.PayerID, req.PayeeID, req.Amount)
	if err != nil {
		if errors.Is(err, ErrSamePayerPayee) || errors.Is(err, ErrNonPositiveAmount) ||
			errors.Is(err, ErrMissingParty) || errors.Is(err, ErrMissingGroup) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to record settlement")
		return
	}

	response.JSON(w, http.StatusCreated, settlement.ToResponse())
}

// List handles GET /settlements?group_id=...
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, h.service.ListByGroup)
}

// ListCompleted handles GET /settlements/completed?group_id=...
func (h *Handler) ListCompleted(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, h.service.ListCompleted)
}

// Exists handles GET /settlements/exists?group_id=...&payer_id=...&payee_id=...[&amount=...]
func (h *Handler) Exists(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	groupID, payerID, payeeID := q.Get("group_id"), q.Get("payer_id"), q.Get("payee_id")
	if groupID == "" || payerID == "" || payeeID == "" {
		response.BadRequest(w, "group_id, payer_id and payee_id are required")
		return
	}

	var amount *float64
	if raw := q.Get("amount"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.BadRequest(w, "Invalid amount")
			return
		}
		amount = &parsed
	}

	exists, err := h.service.Exists(r.Context(), groupID, payerID, payeeID, amount)
	if err != nil {
		response.InternalError(w, "Failed to check settlement")
		return
	}

	response.JSON(w, http.StatusOK, ExistsResponse{Exists: exists})
}

// Stats handles GET /settlements/stats?group_id=...[&user_id=...]
// When user_id is omitted the authenticated request user is used.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	groupID := r.URL.Query().Get("group_id")
	if groupID == "" {
		response.BadRequest(w, "group_id query parameter is required")
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		ctxUser, ok := middleware.GetUserID(r.Context())
		if !ok {
			response.BadRequest(w, "user_id query parameter is required")
			return
		}
		userID = ctxUser
	}

	stats, err := h.service.Stats(r.Context(), groupID, userID)
	if err != nil {
		response.InternalError(w, "Failed to compute settlement stats")
		return
	}

	response.JSON(w, http.StatusOK, stats)
}

func (h *Handler) listWith(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, groupID string) ([]*Settlement, error)) {
	groupID := r.URL.Query().Get("group_id")
	if groupID == "" {
		response.BadRequest(w, "group_id query parameter is required")
		return
	}

	settlements, err := list(r.Context(), groupID)
	if err != nil {
		response.InternalError(w, "Failed to list settlements")
		return
	}

	out := make([]*SettlementResponse, len(settlements))
	for i, s := range settlements {
		out[i] = s.ToResponse()
	}
	response.JSON(w, http.StatusOK, out)
}
