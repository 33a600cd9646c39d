package dock

import "github.com/TheBitDrifter/dock/engine"

// Iterable is what Filter, Query and every generated filter or query share.
type Iterable interface {
	Terms() []engine.Term
	Iter(func(Entity, engine.Row) bool)
	Count() int
}

var (
	_ Iterable = &Filter{}
	_ Iterable = &Query{}
	_ Iterable = &Filter2[struct{}, int]{}
	_ Iterable = &Query2[struct{}, int]{}
)
