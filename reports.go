package bookpesa

import (
	"github.com/shopspring/decimal"
)

// pnlWindowDays is the size of the default profit-and-loss window: the
// trailing 30 days ending today.
const pnlWindowDays = 30

// Summary provides an at-a-glance overview of the current account: cash
// balance, stock valuation, and profit-and-loss over a date window.
type Summary struct {
	Username   string
	Balance    decimal.Decimal
	StockValue decimal.Decimal
	PNL        decimal.Decimal
	Window     Range
}

// Balance computes the cash balance of the current account: the sum of all
// ledger amounts plus the sum of all loan amounts. Inventory value is
// excluded; it is a separate valuation, not cash.
func (s *Store) Balance() (decimal.Decimal, error) {
	acct, err := s.CurrentAccount()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range acct.Ledger {
		total = total.Add(e.Amount)
	}
	for _, e := range acct.Loans {
		total = total.Add(e.Amount)
	}
	return total, nil
}

// StockValue computes the inventory valuation of the current account: the
// sum over items of quantity times unit price.
func (s *Store) StockValue() (decimal.Decimal, error) {
	acct, err := s.CurrentAccount()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, it := range acct.Inventory {
		total = total.Add(it.Value())
	}
	return total, nil
}

// pnlWindow resolves the profit-and-loss window. Each zero bound defaults
// independently: 'to' to today and 'from' to today minus 30 days.
func (s *Store) pnlWindow(from, to Date) Range {
	if to.IsZero() {
		to = s.today()
	}
	if from.IsZero() {
		from = s.today().Add(-pnlWindowDays)
	}
	return NewRange(from, to)
}

// ProfitAndLoss sums the ledger amounts of the current account whose date
// falls within [from, to] inclusive, at day granularity. A zero bound
// defaults as described in pnlWindow. An empty ledger, or a window with no
// entries, yields zero.
func (s *Store) ProfitAndLoss(from, to Date) (decimal.Decimal, error) {
	acct, err := s.CurrentAccount()
	if err != nil {
		return decimal.Zero, err
	}
	window := s.pnlWindow(from, to)
	total := decimal.Zero
	for _, e := range acct.Ledger {
		if window.Contains(e.Date) {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

// Summarize bundles the dashboard figures for the current account. The
// from/to bounds only affect the profit-and-loss window and default like
// ProfitAndLoss's.
func (s *Store) Summarize(from, to Date) (Summary, error) {
	acct, err := s.CurrentAccount()
	if err != nil {
		return Summary{}, err
	}
	balance, err := s.Balance()
	if err != nil {
		return Summary{}, err
	}
	stock, err := s.StockValue()
	if err != nil {
		return Summary{}, err
	}
	pnl, err := s.ProfitAndLoss(from, to)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Username:   acct.Username,
		Balance:    balance,
		StockValue: stock,
		PNL:        pnl,
		Window:     s.pnlWindow(from, to),
	}, nil
}
