package period

import "time"

// PayrollPeriod is a named date range against which completed transactions
// are aggregated into payments. The date window is inclusive on both ends.
type PayrollPeriod struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Status string

const (
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
	StatusProcessed Status = "processed"
)

// Contains reports whether t falls within the period's inclusive window.
func (p *PayrollPeriod) Contains(t time.Time) bool {
	return !t.Before(p.StartDate) && !t.After(p.EndDate)
}
