package dock

import (
	"testing"

	"github.com/rs/zerolog"
)

const (
	nPosVel = 1000
	nPos    = 9000
)

func newBenchWorld(b *testing.B) *World {
	w := Factory.NewWorld(WithLogger(zerolog.Nop()))
	b.Cleanup(func() { w.Close() })
	for range nPosVel {
		With(With(w.Entity(), Position{}), Velocity{X: 1, Y: 1})
	}
	for range nPos {
		With(w.Entity(), Position{})
	}
	return w
}

func BenchmarkIterEachMut2(b *testing.B) {
	b.StopTimer()
	w := newBenchWorld(b)
	query := NewQuery2[Position, Velocity](w)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		query.EachMut(func(_ Entity, pos *Position, vel *Velocity) {
			pos.X += vel.X
			pos.Y += vel.Y
		})
	}
}

func BenchmarkIterGet(b *testing.B) {
	b.StopTimer()
	w := newBenchWorld(b)
	var entities []Entity
	for e := range NewQuery2[Position, Velocity](w).Entities() {
		entities = append(entities, e)
	}
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for _, e := range entities {
			pos, _ := Get[Position](w, e)
			vel, _ := Get[Velocity](w, e)
			pos.X += vel.X
			pos.Y += vel.Y
		}
	}
}
