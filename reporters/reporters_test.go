package reporters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

import "github.com/stretchr/testify/assert"

import (
	"github.com/fatih/color"
)

import (
	"github.com/HaloV36/project-folder-Association-Mining/config"
	"github.com/HaloV36/project-folder-Association-Mining/rules"
	"github.com/HaloV36/project-folder-Association-Mining/types/itemset"
)

type collector struct {
	patterns []*itemset.Pattern
	closed   bool
}

func (c *collector) Report(p *itemset.Pattern) error {
	c.patterns = append(c.patterns, p)
	return nil
}

func (c *collector) Close() error {
	c.closed = true
	return nil
}

func TestChain(x *testing.T) {
	t := assert.New(x)
	a := &collector{}
	b := &collector{}
	chain := &Chain{Reporters: []Reporter{a, b}}
	p := itemset.NewPattern(itemset.FromItems("milk"), .5)
	t.Nil(chain.Report(p))
	t.Nil(chain.Close())
	t.Equal(1, len(a.patterns))
	t.Equal(1, len(b.patterns))
	t.True(a.closed)
	t.True(b.closed)
}

func TestUnique(x *testing.T) {
	t := assert.New(x)
	c := &collector{}
	u := NewUnique(c)
	t.Nil(u.Report(itemset.NewPattern(itemset.FromItems("milk", "bread"), .5)))
	t.Nil(u.Report(itemset.NewPattern(itemset.FromItems("bread", "milk"), .5)))
	t.Nil(u.Report(itemset.NewPattern(itemset.FromItems("milk"), .75)))
	t.Nil(u.Close())
	t.Equal(2, len(c.patterns))
	t.True(c.closed)
}

func TestFile(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Output: x.TempDir()}
	fr, err := NewFile(conf, itemset.Formatter{}, "patterns")
	t.Nil(err)
	t.Nil(fr.Report(itemset.NewPattern(itemset.FromItems("b", "a"), .5)))
	t.Nil(fr.Close())
	data, err := os.ReadFile(filepath.Join(conf.Output, "patterns.patterns"))
	t.Nil(err)
	t.Equal("a, b\t0.5\n", string(data))
}

func TestCount(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Output: x.TempDir()}
	cr, err := NewCount(conf, "count")
	t.Nil(err)
	t.Nil(cr.Report(itemset.NewPattern(itemset.FromItems("a"), .75)))
	t.Nil(cr.Report(itemset.NewPattern(itemset.FromItems("b"), .5)))
	t.Nil(cr.Close())
	data, err := os.ReadFile(filepath.Join(conf.Output, "count"))
	t.Nil(err)
	t.Equal("2\n", string(data))
}

func TestWriteRules(x *testing.T) {
	t := assert.New(x)
	defer func(old bool) { color.NoColor = old }(color.NoColor)
	color.NoColor = true
	rs := []*rules.Rule{
		{
			Antecedent: itemset.FromItems("milk"),
			Consequent: itemset.FromItems("bread"),
			Support:    .5,
			Confidence: 2.0 / 3.0,
			Lift:       8.0 / 9.0,
		},
	}
	var buf strings.Builder
	t.Nil(WriteRules(&buf, rs))
	out := buf.String()
	t.Contains(out, "antecedent")
	t.Contains(out, "milk")
	t.Contains(out, "bread")
	t.Contains(out, "0.6667")
	t.Contains(out, "0.8889")
	t.Contains(out, "1 rules")
}

func TestWriteRulesEmpty(x *testing.T) {
	t := assert.New(x)
	var buf strings.Builder
	t.Nil(WriteRules(&buf, nil))
	t.Contains(buf.String(), "0 rules")
}
