package bookpesa

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one cash-flow record. Positive amounts are income, negative
// amounts are expenses, by convention of the caller.
type LedgerEntry struct {
	ID          string          `json:"id"`
	Description string          `json:"desc"`
	Amount      decimal.Decimal `json:"amt"`
	Date        Date            `json:"date"`
	Tag         string          `json:"tag"`
	CreatedAt   time.Time       `json:"created"`
}

// InventoryItem is one stocked good with quantity on hand and unit price.
// Quantity may be fractional or negative; no validation is enforced on it.
type InventoryItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"qty"`
	UnitPrice decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created"`
}

// Value returns the line valuation of the item (quantity times unit price).
func (it InventoryItem) Value() decimal.Decimal { return it.Quantity.Mul(it.UnitPrice) }

// LoanEntry records money owed to (positive) or by (negative) the account
// holder; the sign convention is the same as the ledger's.
type LoanEntry struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amt"`
	Date      Date            `json:"date"`
	CreatedAt time.Time       `json:"created"`
}

// Account is one bookkeeping account: a PIN and three record collections.
// The ledger and loans are ordered newest-insertion-first; inventory items
// are unique by case-insensitive name.
//
// Accounts are created once by Store.CreateAccount and never deleted;
// clearing a collection empties it without touching the account.
type Account struct {
	Username  string          `json:"-"`
	PIN       string          `json:"pin"`
	Ledger    []LedgerEntry   `json:"ledger"`
	Inventory []InventoryItem `json:"inventory"`
	Loans     []LoanEntry     `json:"loans"`
}

func newAccount(username, pin string) *Account {
	return &Account{
		Username:  username,
		PIN:       pin,
		Ledger:    make([]LedgerEntry, 0),
		Inventory: make([]InventoryItem, 0),
		Loans:     make([]LoanEntry, 0),
	}
}

// RecordKind names one of the three record collections of an account.
type RecordKind string

const (
	KindLedger    RecordKind = "ledger"
	KindInventory RecordKind = "inventory"
	KindLoans     RecordKind = "loans"
)

// ParseRecordKind parses a string into a RecordKind.
func ParseRecordKind(s string) (RecordKind, error) {
	switch RecordKind(s) {
	case KindLedger:
		return KindLedger, nil
	case KindInventory:
		return KindInventory, nil
	case KindLoans:
		return KindLoans, nil
	default:
		return "", ErrUnknownKind
	}
}
