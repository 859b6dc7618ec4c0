package itemset

import (
	"fmt"
	"strings"
)

type Formatter struct{}

func (f Formatter) FileExt() string {
	return ".patterns"
}

func (f Formatter) PatternName(p *Pattern) string {
	return strings.Join(ItemStrings(p.Items), ", ")
}

func (f Formatter) FormatPattern(p *Pattern) string {
	return fmt.Sprintf("%v\t%g", f.PatternName(p), p.Support)
}
