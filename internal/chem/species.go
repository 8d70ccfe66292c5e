// Package chem holds the immutable species registry and the reaction table.
package chem

import (
	"fmt"

	"github.com/dasbooter/physics/internal/draw"
)

// Species describes one particle kind (atom or compound). Entries are
// immutable once the registry is built.
type Species struct {
	Symbol string
	Name   string     // Common name, empty for bare atoms
	Mass   float64    // Relative atomic/molecular mass
	Color  draw.Color // Render color
	Radius float64    // Render and collision radius, in world units
}

// MaxAtomicNumber is the highest atomic number the registry covers.
const MaxAtomicNumber = 118

// atomData lists the elements with real data. Everything else up to
// MaxAtomicNumber gets a gray placeholder so the whole table is selectable.
var atomData = map[int]Species{
	1:  {Symbol: "H", Mass: 1, Color: draw.Color{R: 255, G: 0, B: 0}, Radius: 1.6},
	2:  {Symbol: "He", Mass: 4, Color: draw.Color{R: 200, G: 200, B: 255}, Radius: 1.6},
	3:  {Symbol: "Li", Mass: 7, Color: draw.Color{R: 200, G: 200, B: 200}, Radius: 1.6},
	4:  {Symbol: "Be", Mass: 9, Color: draw.Color{R: 0, G: 255, B: 0}, Radius: 1.6},
	5:  {Symbol: "B", Mass: 11, Color: draw.Color{R: 255, G: 200, B: 0}, Radius: 1.6},
	6:  {Symbol: "C", Mass: 12, Color: draw.Color{R: 80, G: 80, B: 80}, Radius: 1.8},
	7:  {Symbol: "N", Mass: 14, Color: draw.Color{R: 100, G: 100, B: 255}, Radius: 1.8},
	8:  {Symbol: "O", Mass: 16, Color: draw.Color{R: 255, G: 100, B: 100}, Radius: 1.8},
	9:  {Symbol: "F", Mass: 19, Color: draw.Color{R: 0, G: 255, B: 255}, Radius: 1.6},
	10: {Symbol: "Ne", Mass: 20, Color: draw.Color{R: 200, G: 200, B: 200}, Radius: 1.6},
	11: {Symbol: "Na", Mass: 23, Color: draw.Color{R: 170, G: 170, B: 255}, Radius: 1.6},
	12: {Symbol: "Mg", Mass: 24, Color: draw.Color{R: 170, G: 255, B: 170}, Radius: 1.6},
}

const (
	placeholderMass   = 50
	placeholderRadius = 2.0
)

// compoundData lists every compound the reaction table can produce, plus a
// few spectator compounds that only appear via future rules.
var compoundData = []Species{
	{Symbol: "H₂", Name: "Dihydrogen", Mass: 2, Color: draw.Color{R: 255, G: 50, B: 50}, Radius: 1.8},
	{Symbol: "O₂", Name: "Dioxygen", Mass: 32, Color: draw.Color{R: 255, G: 150, B: 150}, Radius: 2.1},
	{Symbol: "N₂", Name: "Dinitrogen", Mass: 28, Color: draw.Color{R: 150, G: 150, B: 255}, Radius: 2.1},
	{Symbol: "H₂O", Name: "Water", Mass: 18, Color: draw.Color{R: 0, G: 0, B: 255}, Radius: 2.3},
	{Symbol: "N₂O", Name: "Nitrous Oxide", Mass: 44, Color: draw.Color{R: 100, G: 200, B: 255}, Radius: 2.6},
	{Symbol: "NO", Name: "Nitric Oxide", Mass: 30, Color: draw.Color{R: 200, G: 200, B: 100}, Radius: 2.1},
	{Symbol: "NH₃", Name: "Ammonia", Mass: 17, Color: draw.Color{R: 100, G: 255, B: 100}, Radius: 2.1},
	{Symbol: "CO", Name: "Carbon Monoxide", Mass: 28, Color: draw.Color{R: 200, G: 200, B: 200}, Radius: 1.8},
	{Symbol: "CO₂", Name: "Carbon Dioxide", Mass: 44, Color: draw.Color{R: 80, G: 200, B: 80}, Radius: 2.1},
	{Symbol: "NO₂", Name: "Nitrogen Dioxide", Mass: 46, Color: draw.Color{R: 200, G: 180, B: 120}, Radius: 2.1},
	{Symbol: "CH₄", Name: "Methane", Mass: 16, Color: draw.Color{R: 200, G: 255, B: 200}, Radius: 1.8},
	{Symbol: "He₂", Name: "Helium Dimer", Mass: 8, Color: draw.Color{R: 210, G: 210, B: 255}, Radius: 1.6},
	{Symbol: "HeH", Name: "Helium Hydride", Mass: 5, Color: draw.Color{R: 230, G: 230, B: 255}, Radius: 1.6},
	{Symbol: "Li₂", Name: "Lithium Dimer", Mass: 14, Color: draw.Color{R: 220, G: 220, B: 220}, Radius: 1.6},
	{Symbol: "LiH", Name: "Lithium Hydride", Mass: 8, Color: draw.Color{R: 240, G: 240, B: 240}, Radius: 1.6},
	{Symbol: "Be₂", Name: "Beryllium Dimer", Mass: 18, Color: draw.Color{R: 180, G: 255, B: 180}, Radius: 1.6},
	{Symbol: "BeO", Name: "Beryllium Oxide", Mass: 25, Color: draw.Color{R: 100, G: 255, B: 100}, Radius: 1.8},
	{Symbol: "B₂", Name: "Boron Dimer", Mass: 22, Color: draw.Color{R: 255, G: 220, B: 100}, Radius: 1.6},
	{Symbol: "F₂", Name: "Fluorine Gas", Mass: 38, Color: draw.Color{R: 0, G: 255, B: 255}, Radius: 1.8},
	{Symbol: "BF", Name: "Boron Monofluoride", Mass: 30, Color: draw.Color{R: 255, G: 160, B: 50}, Radius: 1.8},
	{Symbol: "NeF", Name: "Neon Fluoride", Mass: 39, Color: draw.Color{R: 220, G: 220, B: 255}, Radius: 1.8},
}

// Registry maps species symbols to their immutable data. Built once at
// startup and never mutated afterwards; safe to share by reference.
type Registry struct {
	bySymbol map[string]Species
	byNumber [MaxAtomicNumber + 1]Species // index = atomic number, 0 unused
}

// NewRegistry builds the full registry: all atoms up to MaxAtomicNumber
// (placeholders where no real data exists) plus every known compound.
func NewRegistry() *Registry {
	r := &Registry{
		bySymbol: make(map[string]Species, MaxAtomicNumber+len(compoundData)),
	}

	for z := 1; z <= MaxAtomicNumber; z++ {
		sp, ok := atomData[z]
		if !ok {
			sp = Species{
				Symbol: fmt.Sprintf("El%d", z),
				Mass:   placeholderMass,
				Color:  draw.Color{R: 150, G: 150, B: 150},
				Radius: placeholderRadius,
			}
		}
		r.byNumber[z] = sp
		r.bySymbol[sp.Symbol] = sp
	}

	for _, sp := range compoundData {
		r.bySymbol[sp.Symbol] = sp
	}

	return r
}

// Get returns the species for a symbol. Unknown symbols are an error, never
// a silent placeholder.
func (r *Registry) Get(symbol string) (Species, error) {
	sp, ok := r.bySymbol[symbol]
	if !ok {
		return Species{}, fmt.Errorf("chem: unknown species %q", symbol)
	}
	return sp, nil
}

// MustGet is Get for symbols that are known to exist, such as reaction
// products (the rule table is validated against the registry by tests).
// It panics on a miss, which would be a programming error.
func (r *Registry) MustGet(symbol string) Species {
	sp, err := r.Get(symbol)
	if err != nil {
		panic(err)
	}
	return sp
}

// Atom returns the species for an atomic number in [1, MaxAtomicNumber].
func (r *Registry) Atom(z int) (Species, error) {
	if z < 1 || z > MaxAtomicNumber {
		return Species{}, fmt.Errorf("chem: atomic number %d out of range", z)
	}
	return r.byNumber[z], nil
}

// Len returns the number of distinct symbols in the registry.
func (r *Registry) Len() int {
	return len(r.bySymbol)
}
