package dock

import "github.com/TheBitDrifter/dock/engine"

//go:generate go run ./cmd/generate

// MaxGroupSize is the largest component tuple the generated group, filter,
// query and system types cover.
const MaxGroupSize = 8

// Group is an ordered tuple of component types. ComponentIDs registers each
// element and returns the ids in tuple order, which is the order rows are
// interpreted in.
type Group interface {
	Len() int
	ComponentIDs(w *World) []engine.ID
}

// groupTerms turns group ids into terms with one access mode. A type repeated
// within a group panics since two columns would alias the same storage.
func groupTerms(ids []engine.ID, access engine.Access) []engine.Term {
	terms := make([]engine.Term, len(ids))
	for i, id := range ids {
		for _, prev := range ids[:i] {
			if prev == id {
				panic(engine.DuplicateTermError{ID: id})
			}
		}
		terms[i] = engine.Term{ID: id, Access: access}
	}
	return terms
}

var (
	_ Group = Group1[struct{}]{}
	_ Group = Group8[int8, int16, int32, int64, uint8, uint16, uint32, uint64]{}
)
