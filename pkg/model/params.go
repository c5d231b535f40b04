package model

// Params are the tunable thresholds of model training.
type Params struct {
	// TopFraction is the share of a postcode's distinct terms that is
	// ranked. When it rounds down to zero the whole list is ranked.
	TopFraction float64

	// MinGlobalCount is the corpus-wide count a term needs to be kept.
	MinGlobalCount int

	// CrowdedListLen is the ranked-list length above which MinGroupCount
	// applies.
	CrowdedListLen int

	// MinGroupCount is the in-postcode count a term needs in a crowded list.
	MinGroupCount int

	// GroupShare is the part of a term's global count that must come from
	// the postcode.
	GroupShare float64

	// PairMinCount is the floor a pair count has to exceed.
	PairMinCount int

	// PairShare is the part of each member's global count a pair count has
	// to exceed.
	PairShare float64

	// MaxTermsPerAddress caps the distinct terms of one address used for
	// pair counting. Zero means no cap.
	MaxTermsPerAddress int

	// MetroTerm is only kept for postcodes with MetroPostcodePrefix.
	MetroTerm           string
	MetroPostcodePrefix string

	// LinkedOnly writes vocabulary entries only for postcodes that have
	// gazetteer candidates.
	LinkedOnly bool
}

// DefaultParams returns the thresholds tuned on Cape Town patient data.
func DefaultParams() Params {
	return Params{
		TopFraction:         0.10,
		MinGlobalCount:      4,
		CrowdedListLen:      5,
		MinGroupCount:       5,
		GroupShare:          0.10,
		PairMinCount:        5,
		PairShare:           0.10,
		MaxTermsPerAddress:  40,
		MetroTerm:           "CAPE-TOWN",
		MetroPostcodePrefix: "8",
		LinkedOnly:          true,
	}
}
