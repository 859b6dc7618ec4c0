package tx

import (
	"fmt"
	"regexp"
	"strings"
)

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

var spaces = regexp.MustCompile(`\s+`)

// StandardizeItem folds an item token to its canonical identity:
// surrounding whitespace stripped, inner runs of whitespace collapsed
// to a single space, lowercased.
func StandardizeItem(name string) string {
	return strings.ToLower(spaces.ReplaceAllString(strings.TrimSpace(name), " "))
}

type CleanReport struct {
	Before       int
	After        int
	Empty        int
	SingleItem   int
	InvalidItems int
	Removed      int
	TotalItems   int
	UniqueItems  int
}

func (r *CleanReport) String() string {
	lines := []string{
		"Preprocessing Report:",
		"---------------------",
		"Before Cleaning:",
		fmt.Sprintf("- Total transactions: %d", r.Before),
		fmt.Sprintf("- Empty transactions (or became empty): %d", r.Empty),
		fmt.Sprintf("- Single-item transactions: %d", r.SingleItem),
		fmt.Sprintf("- Invalid items removed: %d", r.InvalidItems),
		"",
		"After Cleaning:",
		fmt.Sprintf("- Valid transactions: %d", r.After),
		fmt.Sprintf("- Total items (after cleaning): %d", r.TotalItems),
		fmt.Sprintf("- Unique products: %d", r.UniqueItems),
		fmt.Sprintf("- Transactions removed: %d", r.Removed),
	}
	return strings.Join(lines, "\n")
}

// Clean produces the standardized database the mining engines expect:
// item names folded by StandardizeItem, items outside valid dropped
// (when valid is non-nil and non-empty), and empty or single-item
// transactions removed. The receiver is left untouched.
func (db *Database) Clean(valid *set.SortedSet) (*Database, *CleanReport) {
	report := &CleanReport{Before: db.Size()}
	cleaned := NewDatabase()
	filter := valid != nil && valid.Size() > 0
	for tid, items := range db.Txs {
		std := set.NewSortedSet(items.Size())
		for item, next := items.Items()(); next != nil; item, next = next() {
			token := types.String(StandardizeItem(string(item.(types.String))))
			if filter && !valid.Has(token) {
				report.InvalidItems++
				continue
			}
			std.Add(token)
		}
		if std.Size() == 0 {
			report.Empty++
			report.Removed++
			continue
		}
		if std.Size() == 1 {
			report.SingleItem++
			report.Removed++
			continue
		}
		cleaned.Txs[tid] = std
		report.TotalItems += std.Size()
	}
	report.After = cleaned.Size()
	report.UniqueItems = cleaned.Items().Size()
	return cleaned, report
}
