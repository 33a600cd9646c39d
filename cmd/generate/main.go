// Command generate writes the fixed-arity group, filter, query and system
// types of package dock. Run it through go generate from the module root.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxArity = 8

type arity struct {
	N          int
	TypeParams string
	TypeArgs   string
	PtrTypes   string
	Results    string
	PtrResults string
	Values     string
	Pointers   string
	Derefs     string
	Casts      string
	Registers  string
	Names      string
}

func newArity(n int) arity {
	var (
		types, ptrs, values, pointers, derefs, casts, registers []string
	)
	for i := 1; i <= n; i++ {
		t := fmt.Sprintf("T%d", i)
		types = append(types, t)
		ptrs = append(ptrs, "*"+t)
		values = append(values, fmt.Sprintf("v%d", i))
		pointers = append(pointers, fmt.Sprintf("p%d", i))
		derefs = append(derefs, fmt.Sprintf("*(*%s)(row.Columns[%d])", t, i-1))
		casts = append(casts, fmt.Sprintf("(*%s)(row.Columns[%d])", t, i-1))
		registers = append(registers, fmt.Sprintf("\t\tRegisterComponent[%s](w),\n", t))
	}
	a := arity{
		N:          n,
		TypeParams: strings.Join(types, ", ") + " any",
		TypeArgs:   strings.Join(types, ", "),
		PtrTypes:   strings.Join(ptrs, ", "),
		Results:    strings.Join(types, ", "),
		PtrResults: strings.Join(ptrs, ", "),
		Values:     strings.Join(values, ", "),
		Pointers:   strings.Join(pointers, ", "),
		Derefs:     strings.Join(derefs, ", "),
		Casts:      strings.Join(casts, ", "),
		Registers:  strings.Join(registers, ""),
		Names:      names(types),
	}
	if n > 1 {
		a.Results = "(" + a.Results + ")"
		a.PtrResults = "(" + a.PtrResults + ")"
	}
	return a
}

// names renders "T1", "T1 and T2", "T1, T2 and T3".
func names(types []string) string {
	if len(types) == 1 {
		return types[0]
	}
	return strings.Join(types[:len(types)-1], ", ") + " and " + types[len(types)-1]
}

const header = `// Code generated by cmd/generate; DO NOT EDIT.

package dock

import "github.com/TheBitDrifter/dock/engine"
`

var groupTemplate = template.Must(template.New("group").Parse(`
// Group{{.N}} is the component tuple ({{.TypeArgs}}).
type Group{{.N}}[{{.TypeParams}}] struct{}

func (Group{{.N}}[{{.TypeArgs}}]) Len() int {
	return {{.N}}
}

func (Group{{.N}}[{{.TypeArgs}}]) ComponentIDs(w *World) []engine.ID {
	return []engine.ID{
{{.Registers}}	}
}

// Refs copies the row's components out in tuple order.
func (Group{{.N}}[{{.TypeArgs}}]) Refs(row engine.Row) {{.Results}} {
	return {{.Derefs}}
}

// MutRefs points into the row's storage in tuple order.
func (Group{{.N}}[{{.TypeArgs}}]) MutRefs(row engine.Row) {{.PtrResults}} {
	return {{.Casts}}
}
`))

var filterTemplate = template.Must(template.New("filter").Parse(`
type Filter{{.N}}[{{.TypeParams}}] struct {
	*Filter
	group Group{{.N}}[{{.TypeArgs}}]
}

// NewFilter{{.N}} builds a filter over every entity holding {{.Names}}.
func NewFilter{{.N}}[{{.TypeParams}}](w *World) *Filter{{.N}}[{{.TypeArgs}}] {
	var g Group{{.N}}[{{.TypeArgs}}]
	raw := mustBuild(w, groupTerms(g.ComponentIDs(w), engine.AccessDefault), false)
	return &Filter{{.N}}[{{.TypeArgs}}]{Filter: &Filter{world: w, raw: raw}}
}

func (f *Filter{{.N}}[{{.TypeArgs}}]) Each(fn func(Entity, {{.TypeArgs}})) {
	for row := range f.raw.Rows() {
		{{.Values}} := f.group.Refs(row)
		fn(Entity{world: f.world, id: row.Entity}, {{.Values}})
	}
}

func (f *Filter{{.N}}[{{.TypeArgs}}]) EachMut(fn func(Entity, {{.PtrTypes}})) {
	for row := range f.raw.Rows() {
		{{.Pointers}} := f.group.MutRefs(row)
		fn(Entity{world: f.world, id: row.Entity}, {{.Pointers}})
	}
}

type Query{{.N}}[{{.TypeParams}}] struct {
	*Query
	group Group{{.N}}[{{.TypeArgs}}]
}

// NewQuery{{.N}} builds a cached query over every entity holding {{.Names}}.
func NewQuery{{.N}}[{{.TypeParams}}](w *World) *Query{{.N}}[{{.TypeArgs}}] {
	var g Group{{.N}}[{{.TypeArgs}}]
	raw := mustBuild(w, groupTerms(g.ComponentIDs(w), engine.AccessDefault), true)
	return &Query{{.N}}[{{.TypeArgs}}]{Query: &Query{Filter: Filter{world: w, raw: raw}}}
}

func (q *Query{{.N}}[{{.TypeArgs}}]) Each(fn func(Entity, {{.TypeArgs}})) {
	for row := range q.raw.Rows() {
		{{.Values}} := q.group.Refs(row)
		fn(Entity{world: q.world, id: row.Entity}, {{.Values}})
	}
}

func (q *Query{{.N}}[{{.TypeArgs}}]) EachMut(fn func(Entity, {{.PtrTypes}})) {
	for row := range q.raw.Rows() {
		{{.Pointers}} := q.group.MutRefs(row)
		fn(Entity{world: q.world, id: row.Entity}, {{.Pointers}})
	}
}

type SystemBuilder{{.N}}[{{.TypeParams}}] struct {
	systemSpec
	access [{{.N}}]engine.Access
}

// NewSystem{{.N}} starts a system over {{.Names}} registered under name.
func NewSystem{{.N}}[{{.TypeParams}}](w *World, name string) *SystemBuilder{{.N}}[{{.TypeArgs}}] {
	return &SystemBuilder{{.N}}[{{.TypeArgs}}]{systemSpec: systemSpec{world: w, name: name}}
}

// Access overrides the access mode of tuple element i, counted from 0. An i
// outside the tuple panics with AccessIndexError.
func (b *SystemBuilder{{.N}}[{{.TypeArgs}}]) Access(i int, access engine.Access) *SystemBuilder{{.N}}[{{.TypeArgs}}] {
	if i < 0 || i >= len(b.access) {
		panic(AccessIndexError{Index: i, Len: len(b.access)})
	}
	b.access[i] = access
	return b
}

func (b *SystemBuilder{{.N}}[{{.TypeArgs}}]) Each(fn func(Entity, {{.TypeArgs}})) (*System, error) {
	var g Group{{.N}}[{{.TypeArgs}}]
	terms, err := b.terms(g.ComponentIDs(b.world), b.access[:], engine.AccessIn)
	if err != nil {
		return nil, err
	}
	return b.register(terms, func(e Entity, row engine.Row) {
		{{.Values}} := g.Refs(row)
		fn(e, {{.Values}})
	})
}

func (b *SystemBuilder{{.N}}[{{.TypeArgs}}]) EachMut(fn func(Entity, {{.PtrTypes}})) (*System, error) {
	var g Group{{.N}}[{{.TypeArgs}}]
	terms, err := b.terms(g.ComponentIDs(b.world), b.access[:], engine.AccessInOut)
	if err != nil {
		return nil, err
	}
	return b.register(terms, func(e Entity, row engine.Row) {
		{{.Pointers}} := g.MutRefs(row)
		fn(e, {{.Pointers}})
	})
}

// Each{{.N}} visits every entity holding {{.Names}} with copies of the components.
func Each{{.N}}[{{.TypeParams}}](w *World, fn func(Entity, {{.TypeArgs}})) {
	var g Group{{.N}}[{{.TypeArgs}}]
	raw := mustBuild(w, groupTerms(g.ComponentIDs(w), engine.AccessIn), false)
	for row := range raw.Rows() {
		{{.Values}} := g.Refs(row)
		fn(Entity{world: w, id: row.Entity}, {{.Values}})
	}
}

// EachMut{{.N}} visits every entity holding {{.Names}} with pointers into storage.
func EachMut{{.N}}[{{.TypeParams}}](w *World, fn func(Entity, {{.PtrTypes}})) {
	var g Group{{.N}}[{{.TypeArgs}}]
	raw := mustBuild(w, groupTerms(g.ComponentIDs(w), engine.AccessInOut), false)
	for row := range raw.Rows() {
		{{.Pointers}} := g.MutRefs(row)
		fn(Entity{world: w, id: row.Entity}, {{.Pointers}})
	}
}
`))

func render(path string, tmpl *template.Template) error {
	var buf bytes.Buffer
	buf.WriteString(header)
	for n := 1; n <= maxArity; n++ {
		if err := tmpl.Execute(&buf, newArity(n)); err != nil {
			return fmt.Errorf("render %s arity %d: %w", path, n, err)
		}
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	return os.WriteFile(path, src, 0o644)
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	outputs := []struct {
		path string
		tmpl *template.Template
	}{
		{"group_generated.go", groupTemplate},
		{"filter_generated.go", filterTemplate},
	}
	for _, out := range outputs {
		if err := render(out.path, out.tmpl); err != nil {
			log.Fatal().Err(err).Msg("generate failed")
		}
		log.Info().Str("file", out.path).Int("arities", maxArity).Msg("generated")
	}
}
