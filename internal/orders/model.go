package orders

import (
	"database/sql"
	"strings"
)

// Status is a human-readable order phase. The set is open: labels other than
// the constants below are stored and shown as they are.
type Status string

const (
	StatusPreparing      Status = "Preparing"
	StatusOutForDelivery Status = "Out for delivery"
	StatusDelivered      Status = "Delivered"
)

// Progress returns how far along the order is, 0–100, for the progress bar
// in the orders view. Unknown labels report 0.
func (s Status) Progress() int {
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "placed":
		return 10
	case "preparing":
		return 40
	case "out for delivery":
		return 75
	case "delivered":
		return 100
	default:
		return 0
	}
}

// Terminal reports whether the order has reached its final phase.
func (s Status) Terminal() bool {
	return s.Progress() == 100
}

// Order is one record of the order collaborator. A missing ETA means the
// order is delivered.
type Order struct {
	ID     string
	Owner  string
	Item   string
	Status Status
	ETA    sql.NullString
}

// HasETA reports whether an ETA is known.
func (o Order) HasETA() bool {
	return o.ETA.Valid && o.ETA.String != ""
}
