package query

// Mode is the retrieval mode of a listing request. Modes are mutually
// exclusive and chosen by fixed precedence, not by combining filters.
type Mode int

const (
	ModePaginatedAll Mode = iota
	ModeFeatured
	ModeSearch
	ModeCategory
)

func (m Mode) String() string {
	switch m {
	case ModeFeatured:
		return "featured"
	case ModeSearch:
		return "search"
	case ModeCategory:
		return "category"
	default:
		return "paginated-all"
	}
}

// ResolveMode applies the precedence featured > search > category >
// paginated-all. This is an explicit ordered decision so tests can enumerate
// every signal combination.
func (p Params) ResolveMode() Mode {
	switch {
	case p.Featured:
		return ModeFeatured
	case p.Search != "":
		return ModeSearch
	case p.hasCategory():
		return ModeCategory
	default:
		return ModePaginatedAll
	}
}

func (p Params) hasCategory() bool {
	if p.CategorySlug != "" && p.CategorySlug != All {
		return true
	}
	return p.CategoryID != "" && p.CategoryID != All
}
