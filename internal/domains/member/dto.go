package member

import (
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateLayout is the calendar-date format used on every surface:
// form fields, filter params and CSV export.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date permissively: blank or malformed
// input comes back nil, never an error. Filter URLs with bad dates must
// keep working with the bound simply not applied.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// ========================================
// CREATE DTO
// ========================================

// CreateMemberRequest carries the registration form fields.
// Dates arrive as strings and are parsed by the service; the explicit
// expiry is permissive (malformed means auto-derive), the join date is
// not (missing or malformed rejects the write).
type CreateMemberRequest struct {
	Name            string `form:"name" json:"name"`
	Contact         string `form:"contact" json:"contact,omitempty"`
	MembershipClass string `form:"membership_class" json:"membership_class"`
	JoinDate        string `form:"join_date" json:"join_date"`
	ExpiryDate      string `form:"expiry_date" json:"expiry_date,omitempty"`
	Source          string `form:"source" json:"source,omitempty"`
	Note            string `form:"note" json:"note,omitempty"`
}

func (r CreateMemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 80),
		),
		validation.Field(&r.MembershipClass,
			validation.Required.Error("membership class is required"),
			validation.Length(1, 20),
		),
		validation.Field(&r.JoinDate,
			validation.Required.Error("join date is required"),
			validation.Date(DateLayout).Error("join date must be YYYY-MM-DD"),
		),
	)
}

// ========================================
// LIST FILTER
// ========================================

// Expiry state filter values.
const (
	StateActive  = "active"
	StateExpired = "expired"
)

// ListFilter is the optional-criteria bundle for listing and export.
// Zero values mean "no constraint". Criteria compose with AND; the free
// text query ORs across name, contact, source and note.
type ListFilter struct {
	Query           string
	MembershipClass string
	ExpiryState     string // "", "active" or "expired"
	JoinFrom        *time.Time
	JoinTo          *time.Time
	ExpFrom         *time.Time
	ExpTo           *time.Time
	Today           time.Time // reference date for the expiry state
}

// NewListFilter builds a filter from request query params. Parsing is
// deliberately forgiving: malformed dates drop the bound, an unknown
// expiry state is ignored.
func NewListFilter(values url.Values, today time.Time) ListFilter {
	// The expiry state compares calendar days against a DATE column, so
	// the reference date must carry no time of day: a member expiring
	// today is still active.
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	f := ListFilter{
		Query:           strings.TrimSpace(values.Get("q")),
		MembershipClass: strings.TrimSpace(values.Get("membership_class")),
		JoinFrom:        ParseDate(values.Get("join_from")),
		JoinTo:          ParseDate(values.Get("join_to")),
		ExpFrom:         ParseDate(values.Get("exp_from")),
		ExpTo:           ParseDate(values.Get("exp_to")),
		Today:           today,
	}

	switch strings.TrimSpace(values.Get("expired")) {
	case StateActive:
		f.ExpiryState = StateActive
	case StateExpired:
		f.ExpiryState = StateExpired
	}

	return f
}

// ========================================
// PRESENTATION DTO
// ========================================

// D-Day severity buckets, purely presentational.
const (
	DDayOverdue = "overdue"
	DDayUrgent  = "urgent"
	DDayWarning = "warning"
	DDayNormal  = "normal"
)

// MemberDTO is the listing representation: the stored fields plus the
// display state recomputed from today at render time.
type MemberDTO struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Contact         string  `json:"contact,omitempty"`
	MembershipClass string  `json:"membership_class"`
	JoinDate        string  `json:"join_date"`
	ExpiryDate      string  `json:"expiry_date,omitempty"`
	Source          string  `json:"source,omitempty"`
	Note            string  `json:"note,omitempty"`
	Status          string  `json:"status"`
	DaysLeft        *int    `json:"days_left,omitempty"`
	DDay            string  `json:"dday,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// ToDTO derives the presentation fields relative to today.
func (m *Member) ToDTO(today time.Time) MemberDTO {
	dto := MemberDTO{
		ID:              m.ID,
		Name:            m.Name,
		Contact:         deref(m.Contact),
		MembershipClass: string(m.MembershipClass),
		JoinDate:        m.JoinDate.Format(DateLayout),
		Source:          deref(m.Source),
		Note:            deref(m.Note),
		Status:          StateActive,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       m.UpdatedAt.Format(time.RFC3339),
	}

	if m.ExpiryDate == nil {
		// No expiry tracked: active, no badge.
		return dto
	}

	dto.ExpiryDate = m.ExpiryDate.Format(DateLayout)

	daysLeft := wholeDaysBetween(today, *m.ExpiryDate)
	dto.DaysLeft = &daysLeft

	if daysLeft < 0 {
		dto.Status = StateExpired
	}

	switch {
	case daysLeft < 0:
		dto.DDay = DDayOverdue
	case daysLeft <= 7:
		dto.DDay = DDayUrgent
	case daysLeft <= 30:
		dto.DDay = DDayWarning
	default:
		dto.DDay = DDayNormal
	}

	return dto
}

// wholeDaysBetween counts calendar days from a to b, ignoring the
// time-of-day component.
func wholeDaysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
