package bookpesa

import "errors"

// Errors reported by Store operations. Callers discriminate with errors.Is;
// the messages are safe to surface verbatim.
var (
	// ErrInvalidUsername reports a username outside the [a-z0-9_-]{2,20} rule.
	ErrInvalidUsername = errors.New("username must be 2-20 letters, numbers, '_' or '-'")
	// ErrInvalidPin reports a PIN that is not exactly 5 digits.
	ErrInvalidPin = errors.New("pin must be 5 digits")
	// ErrUsernameTaken reports an attempt to create an account that already exists.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUnknownUser reports a sign-in attempt for a username with no account.
	ErrUnknownUser = errors.New("no such user")
	// ErrWrongPin reports a sign-in attempt with a PIN that does not match.
	ErrWrongPin = errors.New("wrong pin")
	// ErrNoUserSignedIn guards every record operation: no account is current.
	ErrNoUserSignedIn = errors.New("no user signed in")
	// ErrEmptyDescription reports a ledger entry with a blank description.
	ErrEmptyDescription = errors.New("description must not be empty")
	// ErrEmptyName reports an inventory item or loan with a blank name.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrUnknownKind reports a record kind outside ledger|inventory|loans.
	ErrUnknownKind = errors.New("unknown record kind")
)
