package sim

import (
	"sort"

	"github.com/dasbooter/physics/internal/chem"
	"github.com/dasbooter/physics/internal/physics"
)

// productOffset is the lateral displacement applied when a reaction emits
// two products, so they never spawn exactly co-located.
const productOffset = 2.5

// resolveReactions runs the match-and-replace passes over the colliding
// pairs of the current substep, in descending arity order: quadruple, then
// triple, then pairwise. Higher-arity rules therefore get first claim on
// reactants; a pairwise match can never starve a valid quadruple.
//
// All passes share one consumed-index set and operate on the same colliding
// pair snapshot, so indices stay valid throughout. Removals and product
// appends are applied once, after the last pass (two-phase mutation:
// read-only scan, then structural change).
func (w *World) resolveReactions() {
	pairs := w.collidingPairs()
	if len(pairs) == 0 {
		return
	}

	w.buildAdjacency(pairs)
	w.resetConsumed()
	w.products = w.products[:0]

	w.quadruplePass()
	w.triplePass()
	w.pairwisePass(pairs)

	w.applyMutations()
}

// buildAdjacency converts the colliding pair list into per-particle sorted
// neighbor lists. Group matching then reduces to neighbor-list intersection
// instead of an all-pairs scan over the whole colliding set.
func (w *World) buildAdjacency(pairs []physics.Pair) {
	n := len(w.particles)
	if cap(w.adjacency) < n {
		w.adjacency = make([][]int, n)
	}
	w.adjacency = w.adjacency[:n]
	for i := range w.adjacency {
		w.adjacency[i] = w.adjacency[i][:0]
	}

	for _, pr := range pairs {
		w.adjacency[pr.I] = append(w.adjacency[pr.I], pr.J)
		w.adjacency[pr.J] = append(w.adjacency[pr.J], pr.I)
	}
	for i := range w.adjacency {
		sort.Ints(w.adjacency[i])
	}
}

func (w *World) resetConsumed() {
	n := len(w.particles)
	if cap(w.consumed) < n {
		w.consumed = make([]bool, n)
	}
	w.consumed = w.consumed[:n]
	clear(w.consumed)
}

// touching reports whether particles a and b overlap, via the adjacency list.
func (w *World) touching(a, b int) bool {
	adj := w.adjacency[a]
	k := sort.SearchInts(adj, b)
	return k < len(adj) && adj[k] == b
}

// quadruplePass matches groups of four mutually overlapping particles
// against the arity-4 rules. Groups are enumerated once each by walking
// neighbor lists in ascending index order with i as the smallest member.
func (w *World) quadruplePass() {
	if w.rules.MaxArity() < 4 {
		return
	}
	var symbols [4]string

	for i := range w.particles {
		if w.consumed[i] {
			continue
		}
		adj := w.adjacency[i]
		for ji, j := range adj {
			if j <= i || w.consumed[j] {
				continue
			}
			for ki := ji + 1; ki < len(adj); ki++ {
				k := adj[ki]
				if w.consumed[k] || !w.touching(j, k) {
					continue
				}
				for li := ki + 1; li < len(adj); li++ {
					l := adj[li]
					if w.consumed[l] || !w.touching(j, l) || !w.touching(k, l) {
						continue
					}

					symbols[0] = w.particles[i].Symbol
					symbols[1] = w.particles[j].Symbol
					symbols[2] = w.particles[k].Symbol
					symbols[3] = w.particles[l].Symbol
					rule, ok := w.rules.Match(symbols[:4])
					if !ok {
						continue
					}
					w.react(rule, []int{i, j, k, l})
					break
				}
				if w.consumed[i] {
					break
				}
			}
			if w.consumed[i] {
				break
			}
		}
	}
}

// triplePass matches groups of three mutually overlapping particles against
// the arity-3 rules. A group only qualifies when all three pairs overlap,
// not just a chain of two.
func (w *World) triplePass() {
	if w.rules.MaxArity() < 3 {
		return
	}
	var symbols [3]string

	for i := range w.particles {
		if w.consumed[i] {
			continue
		}
		adj := w.adjacency[i]
		for ji, j := range adj {
			if j <= i || w.consumed[j] {
				continue
			}
			for ki := ji + 1; ki < len(adj); ki++ {
				k := adj[ki]
				if w.consumed[k] || !w.touching(j, k) {
					continue
				}

				symbols[0] = w.particles[i].Symbol
				symbols[1] = w.particles[j].Symbol
				symbols[2] = w.particles[k].Symbol
				rule, ok := w.rules.Match(symbols[:3])
				if !ok {
					continue
				}
				w.react(rule, []int{i, j, k})
				break
			}
			if w.consumed[i] {
				break
			}
		}
	}
}

// pairwisePass matches the remaining colliding pairs against the arity-2
// rules.
func (w *World) pairwisePass(pairs []physics.Pair) {
	var symbols [2]string

	for _, pr := range pairs {
		if w.consumed[pr.I] || w.consumed[pr.J] {
			continue
		}
		symbols[0] = w.particles[pr.I].Symbol
		symbols[1] = w.particles[pr.J].Symbol
		rule, ok := w.rules.Match(symbols[:2])
		if !ok {
			continue
		}
		w.react(rule, []int{pr.I, pr.J})
	}
}

// react consumes the group members and queues product particles. Products
// spawn at the group centroid with the combined mass split evenly and the
// combined momentum divided out, so total mass and momentum are conserved
// exactly (kinetic energy intentionally is not).
func (w *World) react(rule chem.Rule, members []int) {
	var mSum, pxSum, pySum, xSum, ySum float64
	for _, idx := range members {
		p := w.particles[idx]
		mSum += p.Mass
		pxSum += p.VX * p.Mass
		pySum += p.VY * p.Mass
		xSum += p.X
		ySum += p.Y
		w.consumed[idx] = true
	}

	cx := xSum / float64(len(members))
	cy := ySum / float64(len(members))
	vx := pxSum / mSum
	vy := pySum / mSum
	each := mSum / float64(len(rule.Products))

	for n, sym := range rule.Products {
		sp := w.reg.MustGet(sym)
		prod := newParticle(cx, cy, sp)
		prod.Mass = each
		prod.VX = vx
		prod.VY = vy
		if len(rule.Products) == 2 {
			if n == 0 {
				prod.X -= productOffset
			} else {
				prod.X += productOffset
			}
		}
		w.products = append(w.products, prod)
	}
}

// applyMutations removes consumed particles (descending index order, so
// earlier removals never shift later indices) and appends queued products.
func (w *World) applyMutations() {
	w.removals = w.removals[:0]
	for i, c := range w.consumed {
		if c {
			w.removals = append(w.removals, i)
		}
	}
	for k := len(w.removals) - 1; k >= 0; k-- {
		idx := w.removals[k]
		w.particles = append(w.particles[:idx], w.particles[idx+1:]...)
	}
	w.particles = append(w.particles, w.products...)
	w.products = w.products[:0]
}
