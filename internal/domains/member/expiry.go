package member

import "time"

// ComputeExpiry resolves the expiry date for a new member.
// An explicit expiry always wins over derivation. Otherwise the date is
// the join date plus the class offset. A nil join date or an unknown
// class yields nil: the member has no expiry tracked and is never
// flagged as expired.
func ComputeExpiry(joinDate *time.Time, class MembershipClass, explicit *time.Time) *time.Time {
	if explicit != nil {
		return explicit
	}
	if joinDate == nil {
		return nil
	}
	days, ok := classDays[class]
	if !ok {
		return nil
	}
	expiry := joinDate.AddDate(0, 0, days)
	return &expiry
}
