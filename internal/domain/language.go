package domain

// Language is a language variant of the corpus, e.g. Maskwacîs Cree.
type Language struct {
	ID      int64
	Slug    string
	Name    string
	Family  *string
	Endonym *string
}
