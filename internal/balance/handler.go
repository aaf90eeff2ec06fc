package balance

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"settleup/pkg/response"
)

// UserBalanceResponse is one participant's net position.
type UserBalanceResponse struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"` // positive = is owed, negative = owes
}

// Handler handles HTTP requests for balance and plan queries.
type Handler struct {
	service *Service
}

// NewHandler creates a new balance handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for group balance endpoints.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/{groupID}/balances", h.GetBalances)
	r.Get("/{groupID}/settlements/plan", h.GetSettlementPlan)

	return r
}

// GetBalances handles GET /groups/{groupID}/balances
func (h *Handler) GetBalances(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	balances, err := h.service.GroupBalances(r.Context(), groupID)
	if err != nil {
		response.InternalError(w, "Failed to compute balances")
		return
	}

	out := make([]UserBalanceResponse, 0, balances.Len())
	for _, id := range balances.UserIDs() {
		out = append(out, UserBalanceResponse{UserID: id, Amount: balances.Get(id)})
	}
	response.JSON(w, http.StatusOK, out)
}

// GetSettlementPlan handles GET /groups/{groupID}/settlements/plan
func (h *Handler) GetSettlementPlan(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	transfers, err := h.service.SettlementPlan(r.Context(), groupID)
	if err != nil {
		response.InternalError(w, "Failed to compute settlement plan")
		return
	}

	if transfers == nil {
		transfers = []Transfer{}
	}
	response.JSON(w, http.StatusOK, transfers)
}
