// Package renderer turns store query results into markdown reports. The
// layout of each report lives in an embedded template file, one per report.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/bookpesa/bookpesa"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"ksh": bookpesa.Ksh,
}

// Ledger renders the cash ledger of an account as a markdown table, most
// recent insertion first.
func Ledger(username string, entries []bookpesa.LedgerEntry) string {
	data := struct {
		Username string
		Entries  []bookpesa.LedgerEntry
	}{username, entries}
	return renderTemplate("ledger", "templates/ledger.md", data)
}

// Inventory renders the stock of an account as a markdown table with a
// per-item line value (quantity times unit price).
func Inventory(username string, items []bookpesa.InventoryItem) string {
	data := struct {
		Username string
		Items    []bookpesa.InventoryItem
	}{username, items}
	return renderTemplate("inventory", "templates/inventory.md", data)
}

// Loans renders the loans of an account as a markdown table.
func Loans(username string, loans []bookpesa.LoanEntry) string {
	data := struct {
		Username string
		Loans    []bookpesa.LoanEntry
	}{username, loans}
	return renderTemplate("loans", "templates/loans.md", data)
}

// Dashboard renders the summary figures of an account.
func Dashboard(summary bookpesa.Summary) string {
	return renderTemplate("dashboard", "templates/dashboard.md", summary)
}

// renderTemplate is a generic utility to render one embedded template file.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
