package bookpesa

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	usernameRE = regexp.MustCompile(`^[a-z0-9_-]{2,20}$`)
	pinRE      = regexp.MustCompile(`^\d{5}$`)
)

// Store owns the set of named accounts and which one is current.
//
// The store is a single-actor, in-memory structure: every operation is a
// synchronous computation followed by a wholesale persist of the snapshot
// before returning. Validation always precedes mutation, so a failed
// operation leaves the store untouched.
type Store struct {
	accounts map[string]*Account // keyed by normalized (lowercase) username
	current  string              // "" when signed out; otherwise a key in accounts
	path     string              // "" keeps the store purely in memory
	now      func() time.Time
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*Account),
		now:      time.Now,
	}
}

// SetClock replaces the store's clock. It is meant for tests needing a
// deterministic "today".
func (s *Store) SetClock(now func() time.Time) { s.now = now }

func (s *Store) today() Date { return DateOf(s.now()) }

// persist rewrites the whole snapshot to the store's file, if it has one.
func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}
	return SaveStore(s.path, s)
}

// normalizeUsername applies the normalization every operation taking a
// username performs: trim whitespace, lowercase.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// CreateAccount creates a new account with empty collections, signs it in and
// persists. The username is normalized to lowercase before validation.
func (s *Store) CreateAccount(username, pin string) (*Account, error) {
	username = normalizeUsername(username)
	if !usernameRE.MatchString(username) {
		return nil, fmt.Errorf("create account %q: %w", username, ErrInvalidUsername)
	}
	if !pinRE.MatchString(pin) {
		return nil, fmt.Errorf("create account %q: %w", username, ErrInvalidPin)
	}
	if _, exists := s.accounts[username]; exists {
		return nil, fmt.Errorf("create account %q: %w", username, ErrUsernameTaken)
	}
	acct := newAccount(username, pin)
	s.accounts[username] = acct
	s.current = username
	if err := s.persist(); err != nil {
		return nil, err
	}
	return acct, nil
}

// Authenticate signs an existing account in. The stored PIN is compared
// verbatim. A failed attempt never changes which account is current.
func (s *Store) Authenticate(username, pin string) (*Account, error) {
	username = normalizeUsername(username)
	acct, ok := s.accounts[username]
	if !ok {
		return nil, fmt.Errorf("sign in %q: %w", username, ErrUnknownUser)
	}
	if acct.PIN != pin {
		return nil, fmt.Errorf("sign in %q: %w", username, ErrWrongPin)
	}
	s.current = username
	if err := s.persist(); err != nil {
		return nil, err
	}
	return acct, nil
}

// SignOut clears the current account and persists. It is idempotent.
func (s *Store) SignOut() error {
	s.current = ""
	return s.persist()
}

// CurrentUsername returns the signed-in username, or false when signed out.
func (s *Store) CurrentUsername() (string, bool) {
	return s.current, s.current != ""
}

// CurrentAccount returns the signed-in account. It is the precondition guard
// of every record operation: when no account is current it fails with
// ErrNoUserSignedIn.
func (s *Store) CurrentAccount() (*Account, error) {
	if s.current == "" {
		return nil, ErrNoUserSignedIn
	}
	acct, ok := s.accounts[s.current]
	if !ok {
		// The invariant says current always references an existing account;
		// treat a violation like being signed out.
		return nil, ErrNoUserSignedIn
	}
	return acct, nil
}

// Usernames returns all known usernames, sorted.
func (s *Store) Usernames() []string {
	return slices.Sorted(maps.Keys(s.accounts))
}

// AddLedgerEntry inserts a cash-flow record at the front of the ledger.
// A zero date defaults to today; a blank tag defaults to "other".
func (s *Store) AddLedgerEntry(description string, amount decimal.Decimal, on Date, tag string) (LedgerEntry, error) {
	acct, err := s.CurrentAccount()
	if err != nil {
		return LedgerEntry{}, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return LedgerEntry{}, ErrEmptyDescription
	}
	if on.IsZero() {
		on = s.today()
	}
	if tag == "" {
		tag = "other"
	}
	entry := LedgerEntry{
		ID:          newID(s.now()),
		Description: description,
		Amount:      amount,
		Date:        on,
		Tag:         tag,
		CreatedAt:   s.now().UTC(),
	}
	acct.Ledger = slices.Insert(acct.Ledger, 0, entry)
	if err := s.persist(); err != nil {
		return LedgerEntry{}, err
	}
	return entry, nil
}

// AddInventoryItem inserts a stocked good at the front of the inventory, or
// merges into an existing item whose name matches case-insensitively: the
// quantity is added to the existing quantity, the unit price replaces the
// existing price, and the first-inserted casing is kept.
func (s *Store) AddInventoryItem(name string, quantity, unitPrice decimal.Decimal) (InventoryItem, error) {
	acct, err := s.CurrentAccount()
	if err != nil {
		return InventoryItem{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return InventoryItem{}, ErrEmptyName
	}
	for i := range acct.Inventory {
		if strings.EqualFold(acct.Inventory[i].Name, name) {
			acct.Inventory[i].Quantity = acct.Inventory[i].Quantity.Add(quantity)
			acct.Inventory[i].UnitPrice = unitPrice
			if err := s.persist(); err != nil {
				return InventoryItem{}, err
			}
			return acct.Inventory[i], nil
		}
	}
	item := InventoryItem{
		ID:        newID(s.now()),
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		CreatedAt: s.now().UTC(),
	}
	acct.Inventory = slices.Insert(acct.Inventory, 0, item)
	if err := s.persist(); err != nil {
		return InventoryItem{}, err
	}
	return item, nil
}

// AddLoanEntry inserts a loan record at the front of the loans collection.
// A zero date defaults to today.
func (s *Store) AddLoanEntry(name string, amount decimal.Decimal, on Date) (LoanEntry, error) {
	acct, err := s.CurrentAccount()
	if err != nil {
		return LoanEntry{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return LoanEntry{}, ErrEmptyName
	}
	if on.IsZero() {
		on = s.today()
	}
	entry := LoanEntry{
		ID:        newID(s.now()),
		Name:      name,
		Amount:    amount,
		Date:      on,
		CreatedAt: s.now().UTC(),
	}
	acct.Loans = slices.Insert(acct.Loans, 0, entry)
	if err := s.persist(); err != nil {
		return LoanEntry{}, err
	}
	return entry, nil
}

// DeleteRecord removes the record with the given id from whichever of the
// current account's collections holds it. Ids are globally unique, so at most
// one record matches; an absent id is a no-op, not an error.
func (s *Store) DeleteRecord(id string) error {
	acct, err := s.CurrentAccount()
	if err != nil {
		return err
	}
	acct.Ledger = slices.DeleteFunc(acct.Ledger, func(e LedgerEntry) bool { return e.ID == id })
	acct.Inventory = slices.DeleteFunc(acct.Inventory, func(it InventoryItem) bool { return it.ID == id })
	acct.Loans = slices.DeleteFunc(acct.Loans, func(e LoanEntry) bool { return e.ID == id })
	return s.persist()
}

// ClearRecords empties the named collection of the current account. Any
// confirmation prompt is the caller's responsibility.
func (s *Store) ClearRecords(kind RecordKind) error {
	acct, err := s.CurrentAccount()
	if err != nil {
		return err
	}
	switch kind {
	case KindLedger:
		acct.Ledger = make([]LedgerEntry, 0)
	case KindInventory:
		acct.Inventory = make([]InventoryItem, 0)
	case KindLoans:
		acct.Loans = make([]LoanEntry, 0)
	default:
		return fmt.Errorf("clear %q: %w", kind, ErrUnknownKind)
	}
	return s.persist()
}

// LedgerEntries returns the current account's ledger in stored order (front =
// most recent insertion). The returned slice is a copy.
func (s *Store) LedgerEntries() ([]LedgerEntry, error) {
	acct, err := s.CurrentAccount()
	if err != nil {
		return nil, err
	}
	return slices.Clone(acct.Ledger), nil
}

// InventoryItems returns the current account's inventory in stored order.
// The returned slice is a copy.
func (s *Store) InventoryItems() ([]InventoryItem, error) {
	acct, err := s.CurrentAccount()
	if err != nil {
		return nil, err
	}
	return slices.Clone(acct.Inventory), nil
}

// LoanEntries returns the current account's loans in stored order. The
// returned slice is a copy.
func (s *Store) LoanEntries() ([]LoanEntry, error) {
	acct, err := s.CurrentAccount()
	if err != nil {
		return nil, err
	}
	return slices.Clone(acct.Loans), nil
}
