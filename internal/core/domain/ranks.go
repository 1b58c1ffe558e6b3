package domain

// MinEligibleRoleID is the lowest group role id allowed to use the portal.
// Independent of the label ladder below; re-checked on every login.
const MinEligibleRoleID = 200

// RankThreshold maps a minimum role id to a rank label
type RankThreshold struct {
	MinRoleID int
	Label     string
}

// RankLadder is the single source of truth for rank classification,
// ordered by descending role id. The first threshold the role id meets wins.
var RankLadder = []RankThreshold{
	{255, "Proprietor"},
	{254, "Executive Board"},
	{253, "Board of Directors"},
	{252, "Chief Staff Officer"},
	{240, "Marketing Department"},
	{235, "Chief Administrative Officer"},
	{225, "Public Relations Officer"},
	{222, "Senior Management"},
	{220, "General Manager"},
	{205, "Assistant Manager"},
	{200, "Supervisor"},
}

// DefaultRankLabel is the fall-through label for role ids below the ladder
const DefaultRankLabel = "Staff"

// RankLabelFor classifies a numeric group role id into a rank label
func RankLabelFor(roleID int) string {
	for _, t := range RankLadder {
		if roleID >= t.MinRoleID {
			return t.Label
		}
	}
	return DefaultRankLabel
}

// IsEligible reports whether a role id meets the portal minimum
func IsEligible(roleID int) bool {
	return roleID >= MinEligibleRoleID
}

// privilegedLabels are the rank labels allowed on admin endpoints
var privilegedLabels = map[string]bool{
	"Board of Directors": true,
	"Executive Board":    true,
}

// IsPrivilegedLabel reports whether a rank label may act on admin endpoints
func IsPrivilegedLabel(label string) bool {
	return privilegedLabels[label]
}
