package bookpesa

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// fixedClock returns a clock frozen at midnight UTC of the given day.
func fixedClock(day string) func() time.Time {
	on := MustParse(day)
	return func() time.Time { return on.time() }
}

// newTestStore returns an in-memory store with a deterministic clock and a
// signed-in account "amina".
func newTestStore(t *testing.T, day string) *Store {
	t.Helper()
	s := NewStore()
	s.SetClock(fixedClock(day))
	if _, err := s.CreateAccount("amina", "12345"); err != nil {
		t.Fatalf("CreateAccount() failed: %v", err)
	}
	return s
}

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestStore_CreateAccount(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		pin      string
		wantErr  error
	}{
		{name: "valid", username: "wanjiku_99", pin: "12345"},
		{name: "normalizes case and spaces", username: "  Wanjiku  ", pin: "12345"},
		{name: "too short", username: "a", pin: "12345", wantErr: ErrInvalidUsername},
		{name: "too long", username: "abcdefghijklmnopqrstu", pin: "12345", wantErr: ErrInvalidUsername},
		{name: "bad charset", username: "wanjiku!", pin: "12345", wantErr: ErrInvalidUsername},
		{name: "empty username", username: "", pin: "12345", wantErr: ErrInvalidUsername},
		{name: "pin too short", username: "wanjiku", pin: "1234", wantErr: ErrInvalidPin},
		{name: "pin too long", username: "wanjiku", pin: "123456", wantErr: ErrInvalidPin},
		{name: "pin not digits", username: "wanjiku", pin: "12a45", wantErr: ErrInvalidPin},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore()
			acct, err := s.CreateAccount(tc.username, tc.pin)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("CreateAccount(%q, %q) error = %v, want %v", tc.username, tc.pin, err, tc.wantErr)
				}
				if len(s.Usernames()) != 0 {
					t.Errorf("failed CreateAccount mutated the store: %v", s.Usernames())
				}
				if _, ok := s.CurrentUsername(); ok {
					t.Error("failed CreateAccount signed a user in")
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateAccount(%q, %q) failed: %v", tc.username, tc.pin, err)
			}
			current, ok := s.CurrentUsername()
			if !ok || current != acct.Username {
				t.Errorf("current = %q, want new account %q signed in", current, acct.Username)
			}
		})
	}
}

func TestStore_CreateAccount_TakenCaseInsensitive(t *testing.T) {
	s := newTestStore(t, "2025-06-30")
	if _, err := s.CreateAccount("AMINA", "99999"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("CreateAccount(AMINA) error = %v, want %v", err, ErrUsernameTaken)
	}
	if got := len(s.Usernames()); got != 1 {
		t.Errorf("store has %d accounts, want 1", got)
	}
	// The stored PIN must not have been overwritten.
	if _, err := s.Authenticate("amina", "12345"); err != nil {
		t.Errorf("original credentials stopped working: %v", err)
	}
}

func TestStore_Authenticate(t *testing.T) {
	s := newTestStore(t, "2025-06-30")
	if err := s.SignOut(); err != nil {
		t.Fatalf("SignOut() failed: %v", err)
	}

	if _, err := s.Authenticate("nobody", "12345"); !errors.Is(err, ErrUnknownUser) {
		t.Errorf("Authenticate(nobody) error = %v, want %v", err, ErrUnknownUser)
	}
	if _, err := s.Authenticate("amina", "00000"); !errors.Is(err, ErrWrongPin) {
		t.Errorf("Authenticate(wrong pin) error = %v, want %v", err, ErrWrongPin)
	}
	if _, ok := s.CurrentUsername(); ok {
		t.Error("failed Authenticate mutated the current user")
	}

	acct, err := s.Authenticate(" AMINA ", "12345")
	if err != nil {
		t.Fatalf("Authenticate() failed: %v", err)
	}
	if acct.Username != "amina" {
		t.Errorf("Authenticate() account = %q, want %q", acct.Username, "amina")
	}
	if current, _ := s.CurrentUsername(); current != "amina" {
		t.Errorf("current = %q, want %q", current, "amina")
	}
}

func TestStore_SignOut_Idempotent(t *testing.T) {
	s := newTestStore(t, "2025-06-30")
	for i := 0; i < 2; i++ {
		if err := s.SignOut(); err != nil {
			t.Fatalf("SignOut() #%d failed: %v", i+1, err)
		}
		if _, ok := s.CurrentUsername(); ok {
			t.Fatalf("still signed in after SignOut() #%d", i+1)
		}
	}
}

func TestStore_SignedOutGuards(t *testing.T) {
	s := NewStore()
	ops := map[string]func() error{
		"CurrentAccount":   func() error { _, err := s.CurrentAccount(); return err },
		"AddLedgerEntry":   func() error { _, err := s.AddLedgerEntry("x", amt("1"), Date{}, ""); return err },
		"AddInventoryItem": func() error { _, err := s.AddInventoryItem("x", amt("1"), amt("1")); return err },
		"AddLoanEntry":     func() error { _, err := s.AddLoanEntry("x", amt("1"), Date{}); return err },
		"DeleteRecord":     func() error { return s.DeleteRecord("some-id") },
		"ClearRecords":     func() error { return s.ClearRecords(KindLedger) },
		"Balance":          func() error { _, err := s.Balance(); return err },
		"StockValue":       func() error { _, err := s.StockValue(); return err },
		"ProfitAndLoss":    func() error { _, err := s.ProfitAndLoss(Date{}, Date{}); return err },
		"ExportCSV":        func() error { _, err := s.ExportCSV(KindLedger); return err },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			if err := op(); !errors.Is(err, ErrNoUserSignedIn) {
				t.Errorf("%s error = %v, want %v", name, err, ErrNoUserSignedIn)
			}
		})
	}
}

func TestStore_AddLedgerEntry(t *testing.T) {
	s := newTestStore(t, "2025-06-30")

	if _, err := s.AddLedgerEntry("   ", amt("100"), Date{}, ""); !errors.Is(err, ErrEmptyDescription) {
		t.Fatalf("blank description error = %v, want %v", err, ErrEmptyDescription)
	}

	first, err := s.AddLedgerEntry("sold maize", amt("500"), Date{}, "")
	if err != nil {
		t.Fatalf("AddLedgerEntry() failed: %v", err)
	}
	if first.Date != MustParse("2025-06-30") {
		t.Errorf("date = %s, want today 2025-06-30", first.Date)
	}
	if first.Tag != "other" {
		t.Errorf("tag = %q, want default %q", first.Tag, "other")
	}
	if first.ID == "" {
		t.Error("entry has no id")
	}

	second, err := s.AddLedgerEntry("bought flour", amt("-200"), MustParse("2025-06-01"), "supplies")
	if err != nil {
		t.Fatalf("AddLedgerEntry() failed: %v", err)
	}
	if second.ID == first.ID {
		t.Error("two entries share an id")
	}

	entries, err := s.LedgerEntries()
	if err != nil {
		t.Fatalf("LedgerEntries() failed: %v", err)
	}
	// Insertion order, not date order: the newest insertion is in front even
	// though it carries the older date.
	if len(entries) != 2 || entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Errorf("ledger order = %v, want newest insertion first", entries)
	}
}

func TestStore_AddInventoryItem_MergesCaseInsensitive(t *testing.T) {
	s := newTestStore(t, "2025-06-30")

	if _, err := s.AddInventoryItem("  ", amt("1"), amt("1")); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("blank name error = %v, want %v", err, ErrEmptyName)
	}

	first, err := s.AddInventoryItem("Rice", amt("5"), amt("100"))
	if err != nil {
		t.Fatalf("AddInventoryItem() failed: %v", err)
	}
	merged, err := s.AddInventoryItem("rice", amt("3"), amt("120"))
	if err != nil {
		t.Fatalf("AddInventoryItem() failed: %v", err)
	}

	items, err := s.InventoryItems()
	if err != nil {
		t.Fatalf("InventoryItems() failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("inventory has %d items, want 1 merged item", len(items))
	}
	it := items[0]
	if it.Name != "Rice" {
		t.Errorf("name = %q, want first-inserted casing %q", it.Name, "Rice")
	}
	if !it.Quantity.Equal(amt("8")) {
		t.Errorf("quantity = %s, want 8 (added)", it.Quantity)
	}
	if !it.UnitPrice.Equal(amt("120")) {
		t.Errorf("unit price = %s, want 120 (replaced)", it.UnitPrice)
	}
	if it.ID != first.ID || merged.ID != first.ID {
		t.Errorf("merge changed the item id: first %s, merged %s", first.ID, merged.ID)
	}
}

func TestStore_AddLoanEntry(t *testing.T) {
	s := newTestStore(t, "2025-06-30")

	if _, err := s.AddLoanEntry("", amt("100"), Date{}); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("blank name error = %v, want %v", err, ErrEmptyName)
	}

	loan, err := s.AddLoanEntry("Otieno", amt("-300"), Date{})
	if err != nil {
		t.Fatalf("AddLoanEntry() failed: %v", err)
	}
	if loan.Date != MustParse("2025-06-30") {
		t.Errorf("date = %s, want today 2025-06-30", loan.Date)
	}
	loans, err := s.LoanEntries()
	if err != nil {
		t.Fatalf("LoanEntries() failed: %v", err)
	}
	if len(loans) != 1 || loans[0].Name != "Otieno" {
		t.Errorf("loans = %v, want the single recorded loan", loans)
	}
}

func TestStore_DeleteRecord(t *testing.T) {
	s := newTestStore(t, "2025-06-30")
	e1, _ := s.AddLedgerEntry("sold maize", amt("500"), Date{}, "")
	e2, _ := s.AddLedgerEntry("bought flour", amt("-200"), Date{}, "")
	it, _ := s.AddInventoryItem("Rice", amt("5"), amt("100"))
	ln, _ := s.AddLoanEntry("Otieno", amt("100"), Date{})

	// Deleting by id alone finds the record in whichever collection holds it.
	if err := s.DeleteRecord(it.ID); err != nil {
		t.Fatalf("DeleteRecord() failed: %v", err)
	}
	items, _ := s.InventoryItems()
	if len(items) != 0 {
		t.Errorf("inventory has %d items after delete, want 0", len(items))
	}

	if err := s.DeleteRecord(e1.ID); err != nil {
		t.Fatalf("DeleteRecord() failed: %v", err)
	}
	entries, _ := s.LedgerEntries()
	if len(entries) != 1 || entries[0].ID != e2.ID {
		t.Errorf("ledger = %v, want only %s left", entries, e2.ID)
	}

	// An absent id is a no-op, not an error.
	if err := s.DeleteRecord("no-such-id"); err != nil {
		t.Fatalf("DeleteRecord(absent) failed: %v", err)
	}
	entries, _ = s.LedgerEntries()
	loans, _ := s.LoanEntries()
	if len(entries) != 1 || len(loans) != 1 || loans[0].ID != ln.ID {
		t.Error("DeleteRecord(absent) mutated a collection")
	}
}

func TestStore_ClearRecords(t *testing.T) {
	s := newTestStore(t, "2025-06-30")
	s.AddLedgerEntry("sold maize", amt("500"), Date{}, "")
	s.AddInventoryItem("Rice", amt("5"), amt("100"))
	s.AddLoanEntry("Otieno", amt("100"), Date{})

	if err := s.ClearRecords(KindLedger); err != nil {
		t.Fatalf("ClearRecords(ledger) failed: %v", err)
	}
	entries, _ := s.LedgerEntries()
	items, _ := s.InventoryItems()
	loans, _ := s.LoanEntries()
	if len(entries) != 0 {
		t.Errorf("ledger has %d entries after clear, want 0", len(entries))
	}
	if len(items) != 1 || len(loans) != 1 {
		t.Error("ClearRecords(ledger) touched another collection")
	}
	// Clearing never deletes the account itself.
	if _, err := s.CurrentAccount(); err != nil {
		t.Errorf("account gone after clear: %v", err)
	}

	if err := s.ClearRecords(RecordKind("savings")); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ClearRecords(savings) error = %v, want %v", err, ErrUnknownKind)
	}
}

func TestParseRecordKind(t *testing.T) {
	for _, valid := range []string{"ledger", "inventory", "loans"} {
		if _, err := ParseRecordKind(valid); err != nil {
			t.Errorf("ParseRecordKind(%q) failed: %v", valid, err)
		}
	}
	if _, err := ParseRecordKind("savings"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseRecordKind(savings) error = %v, want %v", err, ErrUnknownKind)
	}
}
