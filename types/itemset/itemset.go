package itemset

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// Pattern is a frequent itemset together with its relative support
// (fraction of transactions containing every item in the set). The
// item set is treated as immutable once the pattern is constructed.
type Pattern struct {
	Items   *set.SortedSet
	Support float64
}

func NewPattern(items *set.SortedSet, support float64) *Pattern {
	return &Pattern{Items: items, Support: support}
}

// FromItems builds a sorted item set from string tokens. Duplicate
// tokens collapse.
func FromItems(items ...string) *set.SortedSet {
	s := set.NewSortedSet(len(items))
	for _, item := range items {
		s.Add(types.String(item))
	}
	return s
}

// ItemStrings returns the items of s in sorted order.
func ItemStrings(s *set.SortedSet) []string {
	items := make([]string, 0, s.Size())
	for item, next := s.Items()(); next != nil; item, next = next() {
		items = append(items, string(item.(types.String)))
	}
	sort.Strings(items)
	return items
}

func (p *Pattern) Level() int {
	return p.Items.Size()
}

// Label is a canonical byte representation of the item set. Two
// patterns over equal item sets produce equal labels irrespective of
// how the sets were assembled.
func (p *Pattern) Label() []byte {
	items := ItemStrings(p.Items)
	size := 4
	for _, item := range items {
		size += 4 + len(item)
	}
	label := make([]byte, 4, size)
	binary.BigEndian.PutUint32(label[0:4], uint32(len(items)))
	for _, item := range items {
		var l [4]byte
		binary.BigEndian.PutUint32(l[:], uint32(len(item)))
		label = append(label, l[:]...)
		label = append(label, []byte(item)...)
	}
	return label
}

func (p *Pattern) String() string {
	return fmt.Sprintf("<Pattern {%v} %g>", strings.Join(ItemStrings(p.Items), ", "), p.Support)
}
