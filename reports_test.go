package bookpesa

import (
	"testing"
)

func TestStore_Balance(t *testing.T) {
	s := newTestStore(t, "2025-06-30")
	s.AddLedgerEntry("sold maize", amt("500"), Date{}, "")
	s.AddLedgerEntry("bought flour", amt("-200"), Date{}, "")
	s.AddLoanEntry("Otieno", amt("100"), Date{})
	// Inventory is a separate valuation and must not move the balance.
	s.AddInventoryItem("Rice", amt("50"), amt("1000"))

	balance, err := s.Balance()
	if err != nil {
		t.Fatalf("Balance() failed: %v", err)
	}
	if !balance.Equal(amt("400")) {
		t.Errorf("Balance() = %s, want 400", balance)
	}
}

func TestStore_StockValue(t *testing.T) {
	s := newTestStore(t, "2025-06-30")

	empty, err := s.StockValue()
	if err != nil {
		t.Fatalf("StockValue() failed: %v", err)
	}
	if !empty.IsZero() {
		t.Errorf("StockValue() on empty inventory = %s, want 0", empty)
	}

	s.AddInventoryItem("Rice", amt("10"), amt("50"))
	s.AddInventoryItem("Sugar", amt("2.5"), amt("4"))

	stock, err := s.StockValue()
	if err != nil {
		t.Fatalf("StockValue() failed: %v", err)
	}
	if !stock.Equal(amt("510")) {
		t.Errorf("StockValue() = %s, want 510", stock)
	}
}

func TestStore_ProfitAndLoss_DefaultWindow(t *testing.T) {
	// Today is frozen at 2025-06-30, so the default window is
	// [2025-05-31, 2025-06-30].
	s := newTestStore(t, "2025-06-30")

	testCases := []struct {
		name   string
		date   string
		amount string
		want   string
	}{
		{name: "on the 30-days-ago boundary", date: "2025-05-31", amount: "100", want: "100"},
		{name: "31 days ago is out", date: "2025-05-30", amount: "100", want: "0"},
		{name: "today is in", date: "2025-06-30", amount: "100", want: "100"},
		{name: "tomorrow is out", date: "2025-07-01", amount: "100", want: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s.ClearRecords(KindLedger)
			if _, err := s.AddLedgerEntry("entry", amt(tc.amount), MustParse(tc.date), ""); err != nil {
				t.Fatalf("AddLedgerEntry() failed: %v", err)
			}
			pnl, err := s.ProfitAndLoss(Date{}, Date{})
			if err != nil {
				t.Fatalf("ProfitAndLoss() failed: %v", err)
			}
			if !pnl.Equal(amt(tc.want)) {
				t.Errorf("ProfitAndLoss() = %s, want %s", pnl, tc.want)
			}
		})
	}
}

func TestStore_ProfitAndLoss(t *testing.T) {
	s := newTestStore(t, "2025-06-30")
	s.AddLedgerEntry("january sale", amt("1000"), MustParse("2025-01-15"), "")
	s.AddLedgerEntry("june sale", amt("500"), MustParse("2025-06-10"), "")
	s.AddLedgerEntry("june purchase", amt("-200"), MustParse("2025-06-20"), "")
	// Loans never count towards P&L.
	s.AddLoanEntry("Otieno", amt("9999"), MustParse("2025-06-15"))

	testCases := []struct {
		name string
		from string
		to   string
		want string
	}{
		{name: "explicit june window", from: "2025-06-01", to: "2025-06-30", want: "300"},
		{name: "explicit january window", from: "2025-01-01", to: "2025-01-31", want: "1000"},
		{name: "whole year", from: "2025-01-01", to: "2025-12-31", want: "1300"},
		{name: "window with no entries", from: "2025-03-01", to: "2025-03-31", want: "0"},
		{name: "from defaults to 30 days back", from: "", to: "2025-06-30", want: "300"},
		{name: "to defaults to today", from: "2025-06-15", to: "", want: "-200"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var from, to Date
			if tc.from != "" {
				from = MustParse(tc.from)
			}
			if tc.to != "" {
				to = MustParse(tc.to)
			}
			pnl, err := s.ProfitAndLoss(from, to)
			if err != nil {
				t.Fatalf("ProfitAndLoss() failed: %v", err)
			}
			if !pnl.Equal(amt(tc.want)) {
				t.Errorf("ProfitAndLoss(%q, %q) = %s, want %s", tc.from, tc.to, pnl, tc.want)
			}
		})
	}
}

func TestStore_ProfitAndLoss_EmptyLedger(t *testing.T) {
	s := newTestStore(t, "2025-06-30")
	pnl, err := s.ProfitAndLoss(Date{}, Date{})
	if err != nil {
		t.Fatalf("ProfitAndLoss() failed: %v", err)
	}
	if !pnl.IsZero() {
		t.Errorf("ProfitAndLoss() on empty ledger = %s, want 0", pnl)
	}
}

func TestStore_Summarize(t *testing.T) {
	s := newTestStore(t, "2025-06-30")
	s.AddLedgerEntry("sold maize", amt("500"), Date{}, "")
	s.AddLoanEntry("Otieno", amt("100"), Date{})
	s.AddInventoryItem("Rice", amt("10"), amt("50"))

	summary, err := s.Summarize(Date{}, Date{})
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if summary.Username != "amina" {
		t.Errorf("username = %q, want %q", summary.Username, "amina")
	}
	if !summary.Balance.Equal(amt("600")) {
		t.Errorf("balance = %s, want 600", summary.Balance)
	}
	if !summary.StockValue.Equal(amt("500")) {
		t.Errorf("stock value = %s, want 500", summary.StockValue)
	}
	if !summary.PNL.Equal(amt("500")) {
		t.Errorf("pnl = %s, want 500", summary.PNL)
	}
	want := Range{From: MustParse("2025-05-31"), To: MustParse("2025-06-30")}
	if summary.Window != want {
		t.Errorf("window = %v, want %v", summary.Window, want)
	}
}
