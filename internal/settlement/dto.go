package settlement

import "time"

// RecordSettlementRequest represents the request to record a settlement.
type RecordSettlementRequest struct {
	GroupID string  `json:"group_id" validate:"required"`
	PayerID string  `json:"payer_id" validate:"required"`
	PayeeID string  `json:"payee_id" validate:"required"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
}

// SettlementResponse represents the response for a settlement.
type SettlementResponse struct {
	ID          string  `json:"id"`
	GroupID     string  `json:"group_id"`
	PayerID     string  `json:"payer_id"`
	PayeeID     string  `json:"payee_id"`
	Amount      float64 `json:"amount"`
	Status      Status  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	CompletedAt string  `json:"completed_at,omitempty"`
}

// ExistsResponse represents the response for an existence check.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// ToResponse converts a Settlement model to a SettlementResponse DTO.
func (s *Settlement) ToResponse() *SettlementResponse {
	resp := &SettlementResponse{
		ID:        s.ID,
		GroupID:   s.GroupID,
		PayerID:   s.PayerID,
		PayeeID:   s.PayeeID,
		Amount:    s.Amount,
		Status:    s.Status,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
	if s.CompletedAt != nil {
		resp.CompletedAt = s.CompletedAt.Format(time.RFC3339)
	}
	return resp
}
