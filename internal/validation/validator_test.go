package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func hasField(errs []ValidationError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func messages(errs []ValidationError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Field + ": " + e.Message
	}
	return strings.Join(parts, "; ")
}

func TestValidateExpense(t *testing.T) {
	valid := ExpenseInput{
		Description: "Hotel",
		Amount:      300,
		PaidBy:      "alice",
		Splits: []Split{
			{UserID: "alice", Amount: 100},
			{UserID: "bob", Amount: 100},
			{UserID: "charlie", Amount: 100},
		},
	}

	t.Run("valid input has no errors", func(t *testing.T) {
		errs := ValidateExpense(valid)
		assert.Empty(t, errs, messages(errs))
		assert.True(t, IsValidExpense(valid))
	})

	t.Run("empty description, negative amount, mismatched splits", func(t *testing.T) {
		errs := ValidateExpense(ExpenseInput{
			Description: "",
			Amount:      -100,
			PaidBy:      "u1",
			Splits: []Split{
				{UserID: "u1", Amount: 50},
				{UserID: "u2", Amount: 40},
			},
		})

		assert.True(t, hasField(errs, "description"), messages(errs))
		assert.True(t, hasField(errs, "amount"), messages(errs))
		assert.True(t, hasField(errs, "splits"), messages(errs))
		assert.False(t, IsValidExpense(ExpenseInput{}))
	})

	t.Run("description too long", func(t *testing.T) {
		in := valid
		in.Description = strings.Repeat("x", 201)
		errs := ValidateExpense(in)
		assert.True(t, hasField(errs, "description"), messages(errs))
	})

	t.Run("amount above cap", func(t *testing.T) {
		in := valid
		in.Amount = 10_000_001
		errs := ValidateExpense(in)
		assert.True(t, hasField(errs, "amount"), messages(errs))
	})

	t.Run("future date rejected", func(t *testing.T) {
		in := valid
		future := time.Now().Add(48 * time.Hour)
		in.Date = &future
		errs := ValidateExpense(in)
		assert.True(t, hasField(errs, "date"), messages(errs))
	})

	t.Run("past date accepted", func(t *testing.T) {
		in := valid
		past := time.Now().Add(-48 * time.Hour)
		in.Date = &past
		assert.Empty(t, ValidateExpense(in))
	})

	t.Run("missing payer", func(t *testing.T) {
		in := valid
		in.PaidBy = ""
		errs := ValidateExpense(in)
		assert.True(t, hasField(errs, "paid_by"), messages(errs))
	})

	t.Run("no splits", func(t *testing.T) {
		in := valid
		in.Splits = nil
		errs := ValidateExpense(in)
		assert.True(t, hasField(errs, "splits"), messages(errs))
	})

	t.Run("duplicate split user", func(t *testing.T) {
		in := valid
		in.Splits = []Split{
			{UserID: "alice", Amount: 150},
			{UserID: "alice", Amount: 150},
		}
		errs := ValidateExpense(in)
		assert.True(t, hasField(errs, "splits[1].user_id"), messages(errs))
	})

	t.Run("tolerance allows sub-cent drift", func(t *testing.T) {
		in := valid
		in.Splits = []Split{
			{UserID: "alice", Amount: 100.0},
			{UserID: "bob", Amount: 100.0},
			{UserID: "charlie", Amount: 99.995},
		}
		assert.Empty(t, ValidateExpense(in))
	})
}

func TestValidateSplits(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		errs := ValidateSplits([]Split{
			{UserID: "u1", Amount: 3.33},
			{UserID: "u2", Amount: 3.33},
			{UserID: "u3", Amount: 3.34},
		}, 10)
		assert.Empty(t, errs, messages(errs))
	})

	t.Run("empty splits", func(t *testing.T) {
		errs := ValidateSplits(nil, 10)
		assert.True(t, hasField(errs, "splits"))
	})

	t.Run("split exceeds total", func(t *testing.T) {
		errs := ValidateSplits([]Split{
			{UserID: "u1", Amount: 15},
		}, 10)
		assert.True(t, hasField(errs, "splits[0].amount"), messages(errs))
	})

	t.Run("non-positive split", func(t *testing.T) {
		errs := ValidateSplits([]Split{
			{UserID: "u1", Amount: 10},
			{UserID: "u2", Amount: 0},
		}, 10)
		assert.True(t, hasField(errs, "splits[1].amount"), messages(errs))
	})

	t.Run("sum mismatch", func(t *testing.T) {
		errs := ValidateSplits([]Split{
			{UserID: "u1", Amount: 4},
			{UserID: "u2", Amount: 4},
		}, 10)
		assert.True(t, hasField(errs, "splits"), messages(errs))
		assert.False(t, IsValidSplits([]Split{{UserID: "u1", Amount: 4}}, 10))
	})
}

func TestValidateSettlement(t *testing.T) {
	valid := SettlementInput{PayerID: "u1", PayeeID: "u2", Amount: 100}

	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, ValidateSettlement(valid))
		assert.True(t, IsValidSettlement(valid))
	})

	t.Run("same payer and payee", func(t *testing.T) {
		errs := ValidateSettlement(SettlementInput{PayerID: "u1", PayeeID: "u1", Amount: 100})
		assert.True(t, hasField(errs, "payee_id"), messages(errs))
		assert.Contains(t, FirstError(errs), "cannot be the same")
	})

	t.Run("missing parties", func(t *testing.T) {
		errs := ValidateSettlement(SettlementInput{Amount: 100})
		assert.True(t, hasField(errs, "payer_id"))
		assert.True(t, hasField(errs, "payee_id"))
	})

	t.Run("non-positive amount", func(t *testing.T) {
		in := valid
		in.Amount = 0
		errs := ValidateSettlement(in)
		assert.True(t, hasField(errs, "amount"), messages(errs))
	})

	t.Run("future date", func(t *testing.T) {
		in := valid
		future := time.Now().Add(time.Hour)
		in.Date = &future
		errs := ValidateSettlement(in)
		assert.True(t, hasField(errs, "date"), messages(errs))
	})
}

func TestFirstError(t *testing.T) {
	assert.Equal(t, "", FirstError(nil))
	assert.Equal(t, "a", FirstError([]ValidationError{{Field: "f", Message: "a"}, {Field: "g", Message: "b"}}))
}
