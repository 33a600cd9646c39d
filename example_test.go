package dock_test

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/TheBitDrifter/dock"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification
type Name struct {
	Value string
}

// Example shows basic usage with entity creation and typed iteration
func Example_basic() {
	w := dock.Factory.NewWorld(dock.WithLogger(zerolog.Nop()))
	defer w.Close()

	// Create entities
	for range 5 {
		dock.With(w.Entity(), Position{})
	}
	for range 3 {
		dock.With(dock.With(w.Entity(), Position{}), Velocity{})
	}

	// Create one named entity
	player := w.Entity()
	dock.Set(w, player, Position{X: 10, Y: 20})
	dock.Set(w, player, Velocity{X: 1, Y: 2})
	dock.Set(w, player, Name{Value: "Player"})

	moving := dock.NewFilter2[Position, Velocity](w)
	fmt.Printf("Found %d entities with position and velocity\n", moving.Count())

	dock.EachMut3(w, func(_ dock.Entity, pos *Position, vel *Velocity, name *Name) {
		pos.X += vel.X
		pos.Y += vel.Y
		fmt.Printf("Updated %s to position (%.1f, %.1f)\n", name.Value, pos.X, pos.Y)
	})

	// Output:
	// Found 4 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
}

// Example_systems shows systems running in registration order each frame
func Example_systems() {
	w := dock.Factory.NewWorld(dock.WithLogger(zerolog.Nop()))
	defer w.Close()

	ball := dock.With(dock.With(w.Entity().Named("ball"), Position{Y: 100}), Velocity{})

	dock.NewSystem1[Velocity](w, "gravity").EachMut(func(_ dock.Entity, vel *Velocity) {
		vel.Y -= 10 * float64(w.DeltaTime())
	})
	dock.NewSystem2[Velocity, Position](w, "move").EachMut(func(_ dock.Entity, vel *Velocity, pos *Position) {
		pos.X += vel.X * float64(w.DeltaTime())
		pos.Y += vel.Y * float64(w.DeltaTime())
	})

	for range 2 {
		w.Progress(0.5)
	}
	pos, _ := dock.Get[Position](w, ball)
	fmt.Printf("%s at (%.1f, %.1f)\n", ball, pos.X, pos.Y)

	// Output:
	// ball at (0.0, 92.5)
}

// Example_hierarchy shows scoped names and prefabs
func Example_hierarchy() {
	w := dock.Factory.NewWorld(dock.WithLogger(zerolog.Nop()))
	defer w.Close()

	level := w.Entity().Named("level")
	door := w.Entity().Named("door").ChildOf(level)

	found, ok := w.Lookup("level::door")
	fmt.Println(found.Path(), ok && found == door)

	dock.With(w.Prefab("orc"), Name{Value: "template"})
	dock.With(w.Entity(), Name{Value: "grunt"})
	dock.Each1(w, func(_ dock.Entity, name Name) {
		fmt.Println("named:", name.Value)
	})

	// Output:
	// level::door true
	// named: grunt
}
