package catalog

// Kind identifies one of the seven disjoint effect catalogs.
type Kind string

const (
	KindFont       Kind = "font"
	KindIntro      Kind = "intro"
	KindOutro      Kind = "outro"
	KindTextIntro  Kind = "text_intro"
	KindTextOutro  Kind = "text_outro"
	KindTransition Kind = "transition"
	KindFilter     Kind = "filter"
)

// Kinds returns every catalog kind in presentation order.
func Kinds() []Kind {
	return []Kind{
		KindFont,
		KindIntro,
		KindOutro,
		KindTextIntro,
		KindTextOutro,
		KindTransition,
		KindFilter,
	}
}

// Valid reports whether k names a known catalog.
func (k Kind) Valid() bool {
	switch k {
	case KindFont, KindIntro, KindOutro, KindTextIntro, KindTextOutro, KindTransition, KindFilter:
		return true
	}
	return false
}

// Entry is one resolvable effect: a human-readable name mapped to the
// resource identifier embedded into serialized drafts.
type Entry struct {
	Kind       Kind
	Name       string
	ResourceID string
}
