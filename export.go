package bookpesa

import (
	"fmt"
	"strings"
)

// ExportCSV serializes one collection of the current account as CSV: a fixed
// header row per kind, every value double-quoted with internal quotes
// doubled, rows newline-joined.
func (s *Store) ExportCSV(kind RecordKind) (string, error) {
	acct, err := s.CurrentAccount()
	if err != nil {
		return "", err
	}
	var rows [][]string
	switch kind {
	case KindLedger:
		rows = append(rows, []string{"id", "date", "desc", "tag", "amount"})
		for _, e := range acct.Ledger {
			rows = append(rows, []string{e.ID, e.Date.String(), e.Description, e.Tag, e.Amount.String()})
		}
	case KindInventory:
		rows = append(rows, []string{"id", "name", "qty", "price"})
		for _, it := range acct.Inventory {
			rows = append(rows, []string{it.ID, it.Name, it.Quantity.String(), it.UnitPrice.String()})
		}
	case KindLoans:
		rows = append(rows, []string{"id", "date", "name", "amount"})
		for _, e := range acct.Loans {
			rows = append(rows, []string{e.ID, e.Date.String(), e.Name, e.Amount.String()})
		}
	default:
		return "", fmt.Errorf("export %q: %w", kind, ErrUnknownKind)
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, quoteCSV(cell))
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n"), nil
}

// quoteCSV double-quotes a value, doubling internal quotes. Every cell is
// quoted, even when it would not strictly need to be.
func quoteCSV(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// ExportFilename is the conventional download name for an exported
// collection: {username}_{kind}.csv.
func ExportFilename(username string, kind RecordKind) string {
	return fmt.Sprintf("%s_%s.csv", username, kind)
}
