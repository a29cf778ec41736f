package get_equipment_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubRepo struct {
	items []domain.EquipmentItem
	loans []domain.EquipmentLoan
}

func (r *stubRepo) ListItems(context.Context) ([]domain.EquipmentItem, error) {
	return r.items, nil
}

func (r *stubRepo) ListLoansOverlapping(context.Context, time.Time, time.Time, bool) ([]domain.EquipmentLoan, error) {
	return r.loans, nil
}

func TestExecute_SubtractsHeldStock(t *testing.T) {
	repo := &stubRepo{
		items: []domain.EquipmentItem{
			{Name: "Tripod", TotalStock: 3},
			{Name: "HDMI Cable", TotalStock: 7},
		},
		loans: []domain.EquipmentLoan{
			{Items: []domain.LoanItem{{ItemName: "Tripod", Quantity: 2}}},
			{Items: []domain.LoanItem{{ItemName: "Tripod", Quantity: 2}, {ItemName: "HDMI Cable", Quantity: 1}}},
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		PickupAt: "2026-03-10T09:00",
		ReturnAt: "2026-03-12T09:00",
	})
	require.NoError(t, err)

	// Over-held stock clamps at zero instead of going negative.
	assert.Equal(t, map[string]int{"Tripod": 0, "HDMI Cable": 6}, resp.Stock)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := NewUseCase(&stubRepo{}, nopLogger{})

	tests := []struct {
		name    string
		request Request
	}{
		{"missing pickup", Request{ReturnAt: "2026-03-12T09:00"}},
		{"malformed return", Request{PickupAt: "2026-03-10T09:00", ReturnAt: "tomorrow"}},
		{"inverted", Request{PickupAt: "2026-03-12T09:00", ReturnAt: "2026-03-10T09:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.request)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}
