package domain

import "time"

// Supplier represents a supplier company allowed to book dock slots.
// TaxID is unique and immutable once registered. Deactivation (IsActive=false)
// blocks new appointments but keeps history; soft delete (IsDeleted=true)
// additionally hides the supplier from listings.
type Supplier struct {
	ID           int64
	TaxID        string
	Name         string
	ContactEmail string
	IsActive     bool
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanBook returns true if the supplier may create new appointments
func (s *Supplier) CanBook() bool {
	return s.IsActive && !s.IsDeleted
}
