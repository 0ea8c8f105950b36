package rules

// Lookup tables driving the registration rules. They are ordered: session
// evaluation and fee lookup depend on iteration order. Accessors return
// copies so callers cannot mutate the rule set.

// FeeTier prices a registration for speakers whose years of experience fall
// within [MinYears, MaxYears], bounds inclusive.
type FeeTier struct {
	MinYears int
	MaxYears int
	Fee      int
}

// Contains reports whether years falls inside the tier.
func (t FeeTier) Contains(years int) bool {
	return t.MinYears <= years && years <= t.MaxYears
}

const (
	// Eligibility thresholds are strict: the speaker needs more than these.
	minYearsForEligibility          = 10
	minCertificationsForEligibility = 3

	// Internet Explorer releases before this major version are flagged.
	minInternetExplorerVersion = 9
)

var allowedEmployers = []string{
	"Pluralsight",
	"Microsoft",
	"Google",
	"Fog Creek Software",
	"37Signals",
	"Telerik",
}

var deniedEmailDomains = []string{
	"aol.com",
	"hotmail.com",
	"prodigy.com",
	"compuserve.com",
}

var bannedTechnologies = []string{
	"Cobol",
	"Punch Cards",
	"Commodore",
	"VBScript",
}

var feeTiers = []FeeTier{
	{MinYears: 0, MaxYears: 1, Fee: 500},
	{MinYears: 2, MaxYears: 3, Fee: 250},
	{MinYears: 4, MaxYears: 5, Fee: 100},
	{MinYears: 6, MaxYears: 9, Fee: 50},
}

// AllowedEmployers lists employers whose speakers are eligible outright.
func AllowedEmployers() []string { return append([]string(nil), allowedEmployers...) }

// DeniedEmailDomains lists email domains flagged by the domain check.
func DeniedEmailDomains() []string { return append([]string(nil), deniedEmailDomains...) }

// BannedTechnologies lists session keywords in evaluation order.
func BannedTechnologies() []string { return append([]string(nil), bannedTechnologies...) }

// FeeTiers lists the fee tiers in ascending order.
func FeeTiers() []FeeTier { return append([]FeeTier(nil), feeTiers...) }

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
