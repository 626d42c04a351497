package repository

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden-members-backend/internal/domains/member"
)

func date(s string) time.Time {
	t, err := time.Parse(member.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func TestBuildFilterClauses_Empty(t *testing.T) {
	where, args := buildFilterClauses(member.ListFilter{Today: date("2024-06-01")})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildFilterClauses_TextQueryORsAcrossFields(t *testing.T) {
	where, args := buildFilterClauses(member.ListFilter{Query: "kim"})

	require.Len(t, where, 1)
	assert.Equal(t,
		"(name ILIKE $1 OR contact ILIKE $1 OR source ILIKE $1 OR note ILIKE $1)",
		where[0])
	assert.Equal(t, []interface{}{"%kim%"}, args)
}

func TestBuildFilterClauses_MembershipClass(t *testing.T) {
	where, args := buildFilterClauses(member.ListFilter{MembershipClass: "monthly"})

	require.Len(t, where, 1)
	assert.Equal(t, "membership_class = $1", where[0])
	assert.Equal(t, []interface{}{"monthly"}, args)
}

func TestBuildFilterClauses_ExpiryState(t *testing.T) {
	today := date("2024-06-01")

	where, args := buildFilterClauses(member.ListFilter{ExpiryState: member.StateActive, Today: today})
	require.Len(t, where, 1)
	// Members with no expiry tracked count as active.
	assert.Equal(t, "(expiry_date IS NULL OR expiry_date >= $1)", where[0])
	assert.Equal(t, []interface{}{today}, args)

	where, args = buildFilterClauses(member.ListFilter{ExpiryState: member.StateExpired, Today: today})
	require.Len(t, where, 1)
	// Members with no expiry tracked are never expired.
	assert.Equal(t, "(expiry_date IS NOT NULL AND expiry_date < $1)", where[0])
	assert.Equal(t, []interface{}{today}, args)
}

func TestBuildFilterClauses_ExpiryStateArgumentIsDateOnly(t *testing.T) {
	// Built from a wall-clock timestamp, the comparison argument must be
	// midnight: otherwise a member expiring today would satisfy
	// expiry_date < $1 and be misfiled as expired.
	now := time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)
	f := member.NewListFilter(url.Values{"expired": []string{"expired"}}, now)

	_, args := buildFilterClauses(f)

	require.Len(t, args, 1)
	assert.Equal(t, date("2024-06-01"), args[0])
}

func TestBuildFilterClauses_DateRanges(t *testing.T) {
	f := member.ListFilter{
		JoinFrom: datePtr("2024-01-01"),
		JoinTo:   datePtr("2024-12-31"),
		ExpFrom:  datePtr("2024-02-01"),
		ExpTo:    datePtr("2024-03-01"),
	}

	where, args := buildFilterClauses(f)

	require.Len(t, where, 4)
	assert.Equal(t, "join_date >= $1", where[0])
	assert.Equal(t, "join_date <= $2", where[1])
	assert.Equal(t, "expiry_date >= $3", where[2])
	assert.Equal(t, "expiry_date <= $4", where[3])
	assert.Equal(t, []interface{}{
		date("2024-01-01"), date("2024-12-31"),
		date("2024-02-01"), date("2024-03-01"),
	}, args)
}

func TestBuildFilterClauses_PlaceholderNumbering(t *testing.T) {
	f := member.ListFilter{
		Query:           "kim",
		MembershipClass: "monthly",
		ExpiryState:     member.StateExpired,
		JoinFrom:        datePtr("2024-01-01"),
		Today:           date("2024-06-01"),
	}

	where, args := buildFilterClauses(f)

	require.Len(t, where, 4)
	assert.Equal(t, "membership_class = $2", where[1])
	assert.Equal(t, "(expiry_date IS NOT NULL AND expiry_date < $3)", where[2])
	assert.Equal(t, "join_date >= $4", where[3])
	assert.Len(t, args, 4)
}

func TestBuildFilterClauses_Idempotent(t *testing.T) {
	f := member.NewListFilter(url.Values{
		"q":       []string{"garden"},
		"expired": []string{"active"},
	}, date("2024-06-01"))

	where1, args1 := buildFilterClauses(f)
	where2, args2 := buildFilterClauses(f)

	assert.Equal(t, where1, where2)
	assert.Equal(t, args1, args2)
}
