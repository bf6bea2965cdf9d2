package wordtables

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportResult holds the outcome of a spreadsheet import
type ImportResult struct {
	Processed int
	Imported  int
	Skipped   int
	Errors    []string
}

// Expected column layout: id, word, category, difficulty, pronunciation,
// example. The first row is treated as a header and skipped.
const importColumns = 6

// ImportXLSX reads a word table from a spreadsheet. Rows with a missing or
// non-numeric id, or an empty word, are skipped and reported in the result so
// content authors can fix them; the import itself keeps going.
func ImportXLSX(path, sheet string) (Table, *ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	table := make(Table)
	result := &ImportResult{}

	for i, row := range rows {
		// Header row
		if i == 0 {
			continue
		}
		result.Processed++

		if len(row) < 2 || strings.TrimSpace(row[0]) == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing id or word", i+1))
			continue
		}

		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid id %q", i+1, row[0]))
			continue
		}

		word := strings.TrimSpace(row[1])
		if word == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: empty word", i+1))
			continue
		}

		entry := Entry{Word: word}
		if len(row) > 2 {
			entry.Category = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			entry.Difficulty = strings.TrimSpace(row[3])
		}
		if len(row) > 4 {
			entry.Pronunciation = strings.TrimSpace(row[4])
		}
		if len(row) > 5 {
			entry.Example = strings.TrimSpace(row[5])
		}

		table[id] = entry
		result.Imported++
	}

	return table, result, nil
}
