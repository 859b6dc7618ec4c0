package itemset

import (
	"bytes"
	"testing"
)

import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/data-structures/types"
)

func TestFromItems(x *testing.T) {
	t := assert.New(x)
	s := FromItems("milk", "bread", "milk", "eggs")
	t.Equal(3, s.Size())
	t.True(s.Has(types.String("milk")))
	t.True(s.Has(types.String("bread")))
	t.False(s.Has(types.String("beer")))
	t.Equal([]string{"bread", "eggs", "milk"}, ItemStrings(s))
}

func TestLabelCanonical(x *testing.T) {
	t := assert.New(x)
	a := NewPattern(FromItems("milk", "bread"), .5)
	b := NewPattern(FromItems("bread", "milk"), .25)
	t.True(bytes.Equal(a.Label(), b.Label()))
	c := NewPattern(FromItems("milk"), .5)
	t.False(bytes.Equal(a.Label(), c.Label()))
	// length prefixing keeps adjacent tokens from colliding
	d := NewPattern(FromItems("ab", "c"), .5)
	e := NewPattern(FromItems("a", "bc"), .5)
	t.False(bytes.Equal(d.Label(), e.Label()))
}

func TestPatternString(x *testing.T) {
	t := assert.New(x)
	p := NewPattern(FromItems("b", "a"), .5)
	t.Equal("<Pattern {a, b} 0.5>", p.String())
	t.Equal(2, p.Level())
}

func TestResult(x *testing.T) {
	t := assert.New(x)
	r := NewResult(4)
	t.Equal(4, r.Total())
	t.Equal(0, r.Size())
	t.Nil(r.Add(FromItems("a"), .75))
	t.Nil(r.Add(FromItems("a", "b"), .5))
	t.Equal(2, r.Size())

	// lookups hit on set content, not set identity
	sup, has := r.Support(FromItems("b", "a"))
	t.True(has)
	t.InDelta(.5, sup, 1e-9)
	t.True(r.Has(FromItems("a")))
	_, has = r.Support(FromItems("c"))
	t.False(has)

	seen := 0
	t.Nil(r.Do(func(p *Pattern) error {
		seen++
		return nil
	}))
	t.Equal(2, seen)
	t.Equal(2, len(r.Patterns()))
}

func TestResultEquiv(x *testing.T) {
	t := assert.New(x)
	a := NewResult(4)
	t.Nil(a.Add(FromItems("a"), .75))
	t.Nil(a.Add(FromItems("a", "b"), .5))

	b := NewResult(4)
	t.Nil(b.Add(FromItems("a", "b"), .5))
	t.Nil(b.Add(FromItems("a"), .75))
	t.True(a.Equiv(b, 0))

	c := NewResult(4)
	t.Nil(c.Add(FromItems("a"), .75))
	t.False(a.Equiv(c, 0))

	d := NewResult(4)
	t.Nil(d.Add(FromItems("a"), .7500001))
	t.Nil(d.Add(FromItems("a", "b"), .5))
	t.False(a.Equiv(d, 1e-9))
	t.True(a.Equiv(d, 1e-3))
}

func TestFormatter(x *testing.T) {
	t := assert.New(x)
	var f Formatter
	t.Equal(".patterns", f.FileExt())
	p := NewPattern(FromItems("b", "a"), .5)
	t.Equal("a, b", f.PatternName(p))
	t.Equal("a, b\t0.5", f.FormatPattern(p))
}
