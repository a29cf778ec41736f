package get_equipment_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

// UseCase computes how many pieces of each borrowable item remain free
// over a pickup/return window: total stock minus the quantities held by
// active loans overlapping the window.
type UseCase struct {
	equipmentRepo EquipmentRepository
	logger        Logger
}

// NewUseCase creates the use case.
func NewUseCase(equipmentRepo EquipmentRepository, logger Logger) *UseCase {
	return &UseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

// Execute performs the stock computation.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Parse and order the window
	from, err := time.Parse(domain.DateTimeFormat, req.PickupAt)
	if err != nil {
		return nil, ErrInvalidRange
	}
	to, err := time.Parse(domain.DateTimeFormat, req.ReturnAt)
	if err != nil {
		return nil, ErrInvalidRange
	}
	if !to.After(from) {
		return nil, ErrInvalidRange
	}

	// 2. Load catalog and overlapping loans
	items, err := uc.equipmentRepo.ListItems(ctx)
	if err != nil {
		uc.logger.Error("GetEquipmentAvailability: failed to list items: %v", err)
		return nil, fmt.Errorf("%w: failed to list items: %v", ErrInternal, err)
	}
	loans, err := uc.equipmentRepo.ListLoansOverlapping(ctx, from, to, false)
	if err != nil {
		uc.logger.Error("GetEquipmentAvailability: failed to list loans: %v", err)
		return nil, fmt.Errorf("%w: failed to list loans: %v", ErrInternal, err)
	}

	// 3. Subtract held quantities from total stock
	stock := Remaining(items, loans)

	uc.logger.Info("GetEquipmentAvailability: pickup=%s return=%s items=%d loans=%d",
		req.PickupAt, req.ReturnAt, len(items), len(loans))
	return &Response{Stock: stock}, nil
}

// Remaining computes the free stock per item given the loans holding
// stock over the window. The result never goes below zero.
func Remaining(items []domain.EquipmentItem, loans []domain.EquipmentLoan) map[string]int {
	stock := make(map[string]int, len(items))
	for _, item := range items {
		stock[item.Name] = item.TotalStock
	}
	for _, loan := range loans {
		for _, line := range loan.Items {
			if _, ok := stock[line.ItemName]; !ok {
				continue
			}
			stock[line.ItemName] -= line.Quantity
			if stock[line.ItemName] < 0 {
				stock[line.ItemName] = 0
			}
		}
	}
	return stock
}
