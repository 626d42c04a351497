package member

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func TestComputeExpiry_ClassOffsets(t *testing.T) {
	join := date("2024-01-01")

	tests := []struct {
		name  string
		class MembershipClass
		want  string
	}{
		{"monthly is 30 days", ClassMonthly, "2024-01-31"},
		{"quarterly is 90 days", ClassQuarterly, "2024-03-31"},
		{"yearly is 365 days", ClassYearly, "2024-12-31"},
		{"garden box only is 14 days", ClassGardenBoxOnly, "2024-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeExpiry(&join, tt.class, nil)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Format(DateLayout))
		})
	}
}

func TestComputeExpiry_ExplicitAlwaysWins(t *testing.T) {
	join := date("2024-01-01")
	explicit := date("2023-06-15") // earlier than the join date on purpose

	for _, class := range []MembershipClass{ClassMonthly, ClassYearly, "no_such_class", ""} {
		got := ComputeExpiry(&join, class, &explicit)
		require.NotNil(t, got)
		assert.Equal(t, explicit, *got, "class %q", class)
	}

	// Explicit wins even without a join date.
	got := ComputeExpiry(nil, ClassMonthly, &explicit)
	require.NotNil(t, got)
	assert.Equal(t, explicit, *got)
}

func TestComputeExpiry_AbsentJoinDate(t *testing.T) {
	assert.Nil(t, ComputeExpiry(nil, ClassMonthly, nil))
}

func TestComputeExpiry_UnknownClass(t *testing.T) {
	join := date("2024-01-01")

	assert.Nil(t, ComputeExpiry(&join, "platinum", nil))
	assert.Nil(t, ComputeExpiry(&join, "", nil))
}
