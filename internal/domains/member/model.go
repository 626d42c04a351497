package member

import (
	"time"
)

// MembershipClass is the membership tier a member signed up for.
// The value is stored as free text: filters match it exactly and
// unknown classes simply derive no expiry date.
type MembershipClass string

const (
	ClassMonthly       MembershipClass = "monthly"
	ClassQuarterly     MembershipClass = "quarterly"
	ClassYearly        MembershipClass = "yearly"
	ClassGardenBoxOnly MembershipClass = "garden_box_only"
)

// classDays maps each known class to its default expiry offset in days.
var classDays = map[MembershipClass]int{
	ClassMonthly:       30,
	ClassQuarterly:     90,
	ClassYearly:        365,
	ClassGardenBoxOnly: 14,
}

// Member maps one row of the members table.
type Member struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Contact         *string         `json:"contact,omitempty"`
	MembershipClass MembershipClass `json:"membership_class"`
	JoinDate        time.Time       `json:"join_date"`
	ExpiryDate      *time.Time      `json:"expiry_date,omitempty"`
	Source          *string         `json:"source,omitempty"`
	Note            *string         `json:"note,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
