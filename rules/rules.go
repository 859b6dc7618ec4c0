package rules

import (
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/HaloV36/project-folder-Association-Mining/types/itemset"
	"github.com/HaloV36/project-folder-Association-Mining/types/tx"
)

// Rule is an implication antecedent -> consequent derived from one
// frequent itemset. Antecedent and consequent are non-empty and
// disjoint and their union is exactly the originating itemset;
// Support is the support of that union.
type Rule struct {
	Antecedent *set.SortedSet
	Consequent *set.SortedSet
	Support    float64
	Confidence float64
	Lift       float64
}

func (r *Rule) String() string {
	return fmt.Sprintf("{%v} -> {%v} (sup %.4f, conf %.4f, lift %.4f)",
		strings.Join(itemset.ItemStrings(r.Antecedent), ", "),
		strings.Join(itemset.ItemStrings(r.Consequent), ", "),
		r.Support, r.Confidence, r.Lift)
}

// Generate derives every rule meeting minConfidence from the frequent
// itemsets in result. For each itemset of size >= 2 every non-empty
// proper subset is tried once as the antecedent, with the remainder
// as the consequent, so no deduplication is needed. An antecedent or
// consequent missing from result means the supplied result violates
// downward closure; that split is logged and skipped, never fatal.
func Generate(result *itemset.Result, minConfidence float64) ([]*Rule, error) {
	if minConfidence < 0 || minConfidence > 1 {
		return nil, errors.Errorf("minimum confidence %v outside [0, 1]", minConfidence)
	}
	rules := make([]*Rule, 0, 10)
	err := result.Do(func(p *itemset.Pattern) error {
		if p.Level() < 2 {
			return nil
		}
		items := itemset.ItemStrings(p.Items)
		for k := 1; k < len(items); k++ {
			err := splits(items, k, func(ante, cons []string) error {
				r, err := makeRule(result, p, ante, cons, minConfidence)
				if err != nil {
					return err
				}
				if r != nil {
					rules = append(rules, r)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func makeRule(result *itemset.Result, p *itemset.Pattern, ante, cons []string, minConfidence float64) (*Rule, error) {
	antecedent := itemset.FromItems(ante...)
	consequent := itemset.FromItems(cons...)
	supX, hasX := result.Support(antecedent)
	supY, hasY := result.Support(consequent)
	if !hasX || !hasY || supX == 0 || supY == 0 {
		errors.Logf("WARN", "result violates downward closure, skipping split %v -> %v of %v", ante, cons, p)
		return nil, nil
	}
	confidence := p.Support / supX
	if confidence < minConfidence {
		return nil, nil
	}
	return &Rule{
		Antecedent: antecedent,
		Consequent: consequent,
		Support:    p.Support,
		Confidence: confidence,
		Lift:       confidence / supY,
	}, nil
}

// splits enumerates every k-subset of items as the antecedent along
// with its complement as the consequent.
func splits(items []string, k int, do func(ante, cons []string) error) error {
	chosen := make([]bool, len(items))
	var rec func(start, picked int) error
	rec = func(start, picked int) error {
		if picked == k {
			ante := make([]string, 0, k)
			cons := make([]string, 0, len(items)-k)
			for i, item := range items {
				if chosen[i] {
					ante = append(ante, item)
				} else {
					cons = append(cons, item)
				}
			}
			return do(ante, cons)
		}
		for i := start; i <= len(items)-(k-picked); i++ {
			chosen[i] = true
			if err := rec(i+1, picked+1); err != nil {
				return err
			}
			chosen[i] = false
		}
		return nil
	}
	return rec(0, 0)
}

// Sort orders rules by confidence then support, descending, in place.
func Sort(rules []*Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Confidence != rules[j].Confidence {
			return rules[i].Confidence > rules[j].Confidence
		}
		return rules[i].Support > rules[j].Support
	})
}

// ForItem filters rules whose antecedent contains the item (folded by
// the same standardization the cleaning step applies), best first.
// This is the recommendation query a presentation layer runs when a
// shopper has the item in their basket.
func ForItem(rules []*Rule, item string) []*Rule {
	token := types.String(tx.StandardizeItem(item))
	matched := make([]*Rule, 0, len(rules))
	for _, r := range rules {
		if r.Antecedent.Has(token) {
			matched = append(matched, r)
		}
	}
	Sort(matched)
	return matched
}
