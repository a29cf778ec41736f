package domain

import "time"

// EquipmentItem is a borrowable catalog entry with its physical stock.
type EquipmentItem struct {
	ID         int64
	Name       string
	TotalStock int
	Borrowable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EquipmentLoan represents one equipment borrowing request covering a
// pickup/return window and a set of item quantities.
type EquipmentLoan struct {
	ID  int64
	Ref string

	Email    string
	WANumber string

	PickupAt time.Time
	ReturnAt time.Time

	Items  []LoanItem
	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LoanItem is one requested item line of a loan.
type LoanItem struct {
	ItemName string
	Quantity int
}

// IsActive reports whether the loan still holds stock.
func (l *EquipmentLoan) IsActive() bool {
	return l.Status == StatusPending || l.Status == StatusApproved || l.Status == StatusCheckedIn
}

// OverlapsRange reports whether the loan window intersects [from, to).
func (l *EquipmentLoan) OverlapsRange(from, to time.Time) bool {
	return l.PickupAt.Before(to) && from.Before(l.ReturnAt)
}

// QuantityOf returns the requested quantity for the named item, 0 when the
// item is not part of the loan.
func (l *EquipmentLoan) QuantityOf(name string) int {
	for _, it := range l.Items {
		if it.ItemName == name {
			return it.Quantity
		}
	}
	return 0
}

// LoanFilter narrows loan lookups to those overlapping a window.
type LoanFilter struct {
	From            *time.Time
	To              *time.Time
	IncludeInactive bool
}
