package chem

import (
	"sort"
	"strings"
)

// Rule maps a reactant multiset (arity 2, 3 or 4) onto one or two product
// species. Matching is order-independent and exact: the colliding group must
// contain precisely the listed reactants, no more, no fewer.
type Rule struct {
	Reactants []string
	Products  []string
}

// Arity returns the number of reactant particles the rule consumes.
func (r Rule) Arity() int { return len(r.Reactants) }

// reactionTable is the full set of supported reactions.
var reactionTable = []Rule{
	// Diatomic formation.
	{Reactants: []string{"H", "H"}, Products: []string{"H₂"}},
	{Reactants: []string{"N", "N"}, Products: []string{"N₂"}},
	{Reactants: []string{"O", "O"}, Products: []string{"O₂"}},
	{Reactants: []string{"He", "He"}, Products: []string{"He₂"}},
	{Reactants: []string{"Li", "Li"}, Products: []string{"Li₂"}},
	{Reactants: []string{"Be", "Be"}, Products: []string{"Be₂"}},
	{Reactants: []string{"B", "B"}, Products: []string{"B₂"}},
	{Reactants: []string{"F", "F"}, Products: []string{"F₂"}},

	// Heteronuclear pair synthesis.
	{Reactants: []string{"C", "O₂"}, Products: []string{"CO₂"}},
	{Reactants: []string{"CO", "O"}, Products: []string{"CO₂"}},
	{Reactants: []string{"N", "O"}, Products: []string{"NO"}},
	{Reactants: []string{"He", "H"}, Products: []string{"HeH"}},
	{Reactants: []string{"Li", "H"}, Products: []string{"LiH"}},
	{Reactants: []string{"Be", "O"}, Products: []string{"BeO"}},
	{Reactants: []string{"B", "F"}, Products: []string{"BF"}},
	{Reactants: []string{"Ne", "F"}, Products: []string{"NeF"}},
	{Reactants: []string{"N₂", "O₂"}, Products: []string{"NO", "NO"}},

	// Triple collisions.
	{Reactants: []string{"H₂", "H₂", "O₂"}, Products: []string{"H₂O", "H₂O"}},
	{Reactants: []string{"N₂", "N₂", "O₂"}, Products: []string{"N₂O", "N₂O"}},

	// Quadruple collision: N₂ + 3H₂ -> 2NH₃.
	{Reactants: []string{"N₂", "H₂", "H₂", "H₂"}, Products: []string{"NH₃", "NH₃"}},
}

// RuleSet indexes reaction rules by their canonical reactant multiset.
// Immutable after construction.
type RuleSet struct {
	byKey    map[string]Rule
	maxArity int
}

// NewRuleSet builds the rule set from the built-in reaction table.
func NewRuleSet() *RuleSet {
	rs := &RuleSet{byKey: make(map[string]Rule, len(reactionTable))}
	for _, rule := range reactionTable {
		rs.byKey[multisetKey(rule.Reactants)] = rule
		if rule.Arity() > rs.maxArity {
			rs.maxArity = rule.Arity()
		}
	}
	return rs
}

// Match looks up the rule whose reactant multiset exactly matches the given
// symbols. The input slice is not modified.
func (rs *RuleSet) Match(symbols []string) (Rule, bool) {
	rule, ok := rs.byKey[multisetKey(symbols)]
	return rule, ok
}

// MaxArity returns the largest reactant count across all rules.
func (rs *RuleSet) MaxArity() int { return rs.maxArity }

// Len returns the number of rules.
func (rs *RuleSet) Len() int { return len(rs.byKey) }

// Rules returns a copy of the rule list, useful for table-driven checks.
func (rs *RuleSet) Rules() []Rule {
	rules := make([]Rule, 0, len(rs.byKey))
	for _, rule := range rs.byKey {
		rules = append(rules, rule)
	}
	return rules
}

// multisetKey builds an order-independent key for a symbol multiset.
// The symbols are copied before sorting so callers keep their ordering.
func multisetKey(symbols []string) string {
	sorted := make([]string, len(symbols))
	copy(sorted, symbols)
	sort.Strings(sorted)
	return strings.Join(sorted, "+")
}
