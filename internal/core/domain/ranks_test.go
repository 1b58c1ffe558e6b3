package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankLabelFor_Thresholds(t *testing.T) {
	cases := []struct {
		roleID int
		want   string
	}{
		{255, "Proprietor"},
		{254, "Executive Board"},
		{253, "Board of Directors"},
		{252, "Chief Staff Officer"},
		{250, "Marketing Department"}, // falls to 240 bucket
		{240, "Marketing Department"},
		{235, "Chief Administrative Officer"},
		{225, "Public Relations Officer"},
		{222, "Senior Management"},
		{220, "General Manager"},
		{205, "Assistant Manager"},
		{200, "Supervisor"},
		{199, "Staff"},
		{100, "Staff"},
		{1, "Staff"},
		{0, "Staff"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, RankLabelFor(tc.roleID), "roleID=%d", tc.roleID)
	}
}

func TestRankLabelFor_AlwaysDefined(t *testing.T) {
	defined := map[string]bool{DefaultRankLabel: true}
	for _, th := range RankLadder {
		defined[th.Label] = true
	}

	for roleID := 0; roleID <= 300; roleID++ {
		label := RankLabelFor(roleID)
		assert.True(t, defined[label], "roleID=%d produced unknown label %q", roleID, label)
	}
}

// Labels must be monotonically non-decreasing in seniority as the role id
// increases: once a higher bucket is reached, lower role ids never map above it.
func TestRankLabelFor_Monotonic(t *testing.T) {
	seniority := map[string]int{DefaultRankLabel: 0}
	for i := len(RankLadder) - 1; i >= 0; i-- {
		seniority[RankLadder[i].Label] = len(RankLadder) - i
	}

	prev := -1
	for roleID := 0; roleID <= 300; roleID++ {
		cur := seniority[RankLabelFor(roleID)]
		assert.GreaterOrEqual(t, cur, prev, "seniority dropped at roleID=%d", roleID)
		prev = cur
	}
}

func TestIsEligible(t *testing.T) {
	assert.True(t, IsEligible(200))
	assert.True(t, IsEligible(255))
	assert.False(t, IsEligible(199))
	assert.False(t, IsEligible(0))
	assert.False(t, IsEligible(-1))
}

func TestIsPrivilegedLabel(t *testing.T) {
	assert.True(t, IsPrivilegedLabel("Board of Directors"))
	assert.True(t, IsPrivilegedLabel("Executive Board"))
	assert.False(t, IsPrivilegedLabel("Proprietor"))
	assert.False(t, IsPrivilegedLabel("Supervisor"))
	assert.False(t, IsPrivilegedLabel("Staff"))
	assert.False(t, IsPrivilegedLabel(""))
}
