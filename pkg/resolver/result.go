package resolver

import (
	"github.com/cogpn/cogpn/pkg/address"
	"github.com/cogpn/cogpn/pkg/textnorm"
)

// State is the classification of an address after term lookup.
type State int

const (
	// NoMatch means no significant term was found.
	NoMatch State = iota

	// TermOnly means significant terms were found but none of them names
	// a gazetteer place.
	TermOnly

	// Unambiguous means every matched place name has exactly one node.
	Unambiguous

	// Ambiguous means at least one matched name has several nodes.
	Ambiguous
)

func (s State) String() string {
	switch s {
	case NoMatch:
		return "no_match"
	case TermOnly:
		return "term_only"
	case Unambiguous:
		return "unambiguous"
	case Ambiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Stream is the output an address is routed to.
type Stream int

const (
	Resolved Stream = iota
	NeedsReview
)

func (s Stream) String() string {
	if s == Resolved {
		return "resolved"
	}
	return "needs_review"
}

// Method tells how a place was chosen.
type Method int

const (
	NotResolved Method = iota
	ByUniqueName
	ByPostcode
	ByMetro
)

func (m Method) String() string {
	switch m {
	case ByUniqueName:
		return "unique_name"
	case ByPostcode:
		return "postcode"
	case ByMetro:
		return "metro"
	default:
		return "none"
	}
}

// Result is the outcome of resolving one address.
type Result struct {
	Record     address.Record
	Normalized textnorm.Result

	// Postcode is the supplied postcode or, if none, the one found in the
	// address text.
	Postcode string

	State  State
	Stream Stream
	Method Method

	Suburb  string
	Town    string
	SubID   string
	SubCode string

	AfrigisMatch         bool
	AmbiguousMatch       bool
	ProbablyInMetro      bool
	PostcodeResolved     bool
	InconsistentPostcode bool

	// SupportingTerms are the significant terms of the address in order of
	// appearance. For a term-only match with a known postcode they are the
	// postcode's gazetteer candidates instead.
	SupportingTerms []string

	// Postcodes are the sorted postcodes linked to supporting terms.
	Postcodes []string

	// AmbiguousTerms lists every candidate place of the ambiguous terms as
	// "PLACE,PARENT".
	AmbiguousTerms []string
}
