package bookpesa

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// storeState is the persisted layout of the whole store: one serialized
// object holding every account keyed by username, plus the current session.
type storeState struct {
	Users       map[string]*Account `json:"users"`
	CurrentUser *string             `json:"currentUser"`
}

// EncodeStore writes the whole store as a single JSON snapshot.
func EncodeStore(w io.Writer, s *Store) error {
	state := storeState{Users: s.accounts}
	if s.current != "" {
		state.CurrentUser = &s.current
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("could not encode store: %w", err)
	}
	return nil
}

// DecodeStore reads a whole-store JSON snapshot. The decoded state is
// repaired where its invariants allow: missing collections become empty
// ones, and a current user that references no account is treated as a
// signed-out session.
func DecodeStore(r io.Reader) (*Store, error) {
	var state storeState
	if err := json.NewDecoder(r).Decode(&state); err != nil {
		return nil, fmt.Errorf("could not decode store: %w", err)
	}
	s := NewStore()
	for username, acct := range state.Users {
		if acct == nil {
			continue
		}
		acct.Username = username
		if acct.Ledger == nil {
			acct.Ledger = make([]LedgerEntry, 0)
		}
		if acct.Inventory == nil {
			acct.Inventory = make([]InventoryItem, 0)
		}
		if acct.Loans == nil {
			acct.Loans = make([]LoanEntry, 0)
		}
		s.accounts[username] = acct
	}
	if state.CurrentUser != nil {
		if _, ok := s.accounts[*state.CurrentUser]; ok {
			s.current = *state.CurrentUser
		}
	}
	return s, nil
}
