// Package bookpesa implements the core of BookPesa, a single-device
// bookkeeping app for small-business owners: a multi-account store gated by
// a PIN, three record collections per account (cash ledger, inventory stock,
// informal loans), derived financial figures (balance, stock valuation,
// profit and loss over a date window), CSV export, and a whole-snapshot JSON
// persistence boundary.
//
// The [Store] is the only stateful component. It is single-actor by design:
// operations are synchronous, validate before mutating, and persist the
// whole snapshot before returning.
package bookpesa
