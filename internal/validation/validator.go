// Package validation holds the pure input checks for expenses, splits and
// settlements. Validators never return Go errors for bad input; they return
// an ordered list of field-tagged messages so callers decide whether to block.
package validation

import (
	"fmt"
	"strings"
	"time"

	"settleup/internal/money"
)

const (
	// MaxAmount is the upper bound accepted for any monetary input.
	MaxAmount = 10_000_000

	maxDescriptionLen = 200
)

// ValidationError describes a single failed check on a named field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Split is one participant's portion of an expense.
type Split struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

// ExpenseInput carries the fields checked when creating or editing an expense.
type ExpenseInput struct {
	Description string
	Amount      float64
	Date        *time.Time
	PaidBy      string
	Splits      []Split
}

// SettlementInput carries the fields checked when recording a settlement.
type SettlementInput struct {
	PayerID string
	PayeeID string
	Amount  float64
	Date    *time.Time
}

// ValidateExpense checks an expense input against the ledger rules and
// returns every violation in field order.
func ValidateExpense(in ExpenseInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(in.Description) == "" {
		errs = append(errs, ValidationError{Field: "description", Message: "description is required"})
	} else if len(in.Description) > maxDescriptionLen {
		errs = append(errs, ValidationError{Field: "description", Message: fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)})
	}

	errs = append(errs, checkAmount("amount", in.Amount)...)
	errs = append(errs, checkDate("date", in.Date)...)

	if strings.TrimSpace(in.PaidBy) == "" {
		errs = append(errs, ValidationError{Field: "paid_by", Message: "paid_by is required"})
	}

	if len(in.Splits) == 0 {
		errs = append(errs, ValidationError{Field: "splits", Message: "at least one split is required"})
		return errs
	}

	errs = append(errs, checkSplitAmounts(in.Splits, nil)...)

	if sum := splitSum(in.Splits); !money.ApproxEqual(sum, in.Amount) {
		errs = append(errs, ValidationError{
			Field:   "splits",
			Message: fmt.Sprintf("split amounts must sum to the expense amount (got %.2f, want %.2f)", sum, in.Amount),
		})
	}

	return errs
}

// ValidateSplits is the standalone variant used when only the splits of an
// existing expense are re-validated. In addition to the expense rules, no
// single split may exceed the total.
func ValidateSplits(splits []Split, total float64) []ValidationError {
	var errs []ValidationError

	if len(splits) == 0 {
		errs = append(errs, ValidationError{Field: "splits", Message: "at least one split is required"})
		return errs
	}

	errs = append(errs, checkSplitAmounts(splits, &total)...)

	if sum := splitSum(splits); !money.ApproxEqual(sum, total) {
		errs = append(errs, ValidationError{
			Field:   "splits",
			Message: fmt.Sprintf("split amounts must sum to the total (got %.2f, want %.2f)", sum, total),
		})
	}

	return errs
}

// ValidateSettlement checks a settlement input before it is recorded.
func ValidateSettlement(in SettlementInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(in.PayerID) == "" {
		errs = append(errs, ValidationError{Field: "payer_id", Message: "payer_id is required"})
	}
	if strings.TrimSpace(in.PayeeID) == "" {
		errs = append(errs, ValidationError{Field: "payee_id", Message: "payee_id is required"})
	} else if in.PayerID == in.PayeeID {
		errs = append(errs, ValidationError{Field: "payee_id", Message: "payer and payee cannot be the same"})
	}

	errs = append(errs, checkAmount("amount", in.Amount)...)
	errs = append(errs, checkDate("date", in.Date)...)

	return errs
}

// IsValidExpense reports whether the expense input passes every check.
func IsValidExpense(in ExpenseInput) bool {
	return len(ValidateExpense(in)) == 0
}

// IsValidSplits reports whether the splits pass every check.
func IsValidSplits(splits []Split, total float64) bool {
	return len(ValidateSplits(splits, total)) == 0
}

// IsValidSettlement reports whether the settlement input passes every check.
func IsValidSettlement(in SettlementInput) bool {
	return len(ValidateSettlement(in)) == 0
}

// FirstError returns the first validation message, or "" when the list is empty.
func FirstError(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}
	return errs[0].Message
}

func checkAmount(field string, amount float64) []ValidationError {
	if amount <= 0 {
		return []ValidationError{{Field: field, Message: "amount must be greater than zero"}}
	}
	if amount > MaxAmount {
		return []ValidationError{{Field: field, Message: fmt.Sprintf("amount must not exceed %d", MaxAmount)}}
	}
	return nil
}

func checkDate(field string, date *time.Time) []ValidationError {
	if date != nil && date.After(time.Now()) {
		return []ValidationError{{Field: field, Message: "date cannot be in the future"}}
	}
	return nil
}

// checkSplitAmounts validates each split's amount and user uniqueness.
// When max is non-nil, a split may not exceed it.
func checkSplitAmounts(splits []Split, max *float64) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, len(splits))

	for i, s := range splits {
		if s.Amount <= 0 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("splits[%d].amount", i),
				Message: "split amount must be greater than zero",
			})
		} else if max != nil && s.Amount > *max+money.Epsilon {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("splits[%d].amount", i),
				Message: "split amount must not exceed the total",
			})
		}
		if seen[s.UserID] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("splits[%d].user_id", i),
				Message: fmt.Sprintf("duplicate split for user %s", s.UserID),
			})
		}
		seen[s.UserID] = true
	}

	return errs
}

func splitSum(splits []Split) float64 {
	var sum float64
	for _, s := range splits {
		sum += s.Amount
	}
	return sum
}
