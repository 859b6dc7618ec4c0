package reporters

import (
	"fmt"
	"io"
	"strings"
)

import (
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

import (
	"github.com/HaloV36/project-folder-Association-Mining/rules"
	"github.com/HaloV36/project-folder-Association-Mining/types/itemset"
)

// WriteRules renders rules as a table. The lift column is colored by
// direction of association: green above 1, yellow at 1, red below.
func WriteRules(w io.Writer, rs []*rules.Rule) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"antecedent", "consequent", "support", "confidence", "lift"})
	for _, r := range rs {
		table.Append([]string{
			strings.Join(itemset.ItemStrings(r.Antecedent), ", "),
			strings.Join(itemset.ItemStrings(r.Consequent), ", "),
			fmt.Sprintf("%.4f", r.Support),
			fmt.Sprintf("%.4f", r.Confidence),
			liftString(r.Lift),
		})
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d rules\n", len(rs))
	return err
}

func liftString(lift float64) string {
	switch {
	case lift > 1:
		return color.GreenString("%.4f", lift)
	case lift < 1:
		return color.RedString("%.4f", lift)
	default:
		return color.YellowString("%.4f", lift)
	}
}
