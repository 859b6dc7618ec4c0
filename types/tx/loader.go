package tx

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// LoadLines reads the line oriented transaction format: one
// transaction per line, items separated by spaces, the line number
// (starting at 1) becomes the tid. For example:
//
//	milk bread eggs
//	bread butter
func LoadLines(input io.Reader) (*Database, error) {
	db := NewDatabase()
	scanner := bufio.NewScanner(input)
	line := 0
	for scanner.Scan() {
		line++
		tid := fmt.Sprintf("%d", line)
		cols := strings.Fields(scanner.Text())
		if len(cols) == 0 {
			errors.Logf("WARN", "input line %d was empty", line)
			continue
		}
		db.Add(tid, cols...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return db, nil
}

// LoadCSV reads csv transaction data with a header row. The tid
// column is the one named transaction_id, tid, or id (falling back to
// the first column). When a column named item, items, product, or
// products exists the file is treated as long format, one row per
// (tid, item) pair; item cells may carry comma separated lists. Any
// other layout is treated as wide format with every non-tid column an
// item cell.
func LoadCSV(input io.Reader) (*Database, error) {
	r := csv.NewReader(input)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err == io.EOF {
		return NewDatabase(), nil
	} else if err != nil {
		return nil, err
	}
	tidIdx := 0
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "transaction_id", "tid", "id":
			tidIdx = i
		}
	}
	itemIdx := -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "item", "items", "product", "products":
			itemIdx = i
		}
	}
	db := NewDatabase()
	row := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		row++
		if tidIdx >= len(record) {
			errors.Logf("WARN", "csv row %d had no tid column", row)
			continue
		}
		tid := strings.TrimSpace(record[tidIdx])
		if tid == "" {
			errors.Logf("WARN", "csv row %d had an empty tid", row)
			continue
		}
		if itemIdx >= 0 {
			if itemIdx >= len(record) {
				continue
			}
			addCell(db, tid, record[itemIdx])
		} else {
			for i, cell := range record {
				if i == tidIdx {
					continue
				}
				addCell(db, tid, cell)
			}
		}
	}
	return db, nil
}

// LoadProducts reads a product list csv (product_id, name, ...) and
// returns the set of valid item tokens, standardized the same way
// Clean folds item names. Both ids and names are accepted as valid
// tokens since transaction data may reference either.
func LoadProducts(input io.Reader) (*set.SortedSet, error) {
	r := csv.NewReader(input)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err == io.EOF {
		return set.NewSortedSet(0), nil
	} else if err != nil {
		return nil, err
	}
	nameIdx := 1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "name", "product_name", "item_name":
			nameIdx = i
		}
	}
	valid := set.NewSortedSet(10)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if len(record) == 0 {
			continue
		}
		valid.Add(types.String(StandardizeItem(record[0])))
		if nameIdx < len(record) {
			valid.Add(types.String(StandardizeItem(record[nameIdx])))
		}
	}
	return valid, nil
}

func addCell(db *Database, tid, cell string) {
	for _, token := range strings.Split(cell, ",") {
		item := strings.TrimSpace(token)
		if item != "" {
			db.Add(tid, item)
		}
	}
}
