package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Field normalization: converts the loosely formatted string fields of an
// export row into typed values. Parsing is best-effort so that one malformed
// row can never block the rest of the batch — an unparseable date falls back
// to today and an unparseable amount to zero, each with a row warning.

// TransactionType routes a row to the cost or revenue ledger.
type TransactionType string

const (
	TransactionTypeBill    TransactionType = "bill"
	TransactionTypeCheck   TransactionType = "check"
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeInvoice TransactionType = "invoice"
)

// RawTransactionRow is one row of an export file, untyped.
type RawTransactionRow struct {
	Date            string
	Amount          string
	Name            string
	TransactionType string
	AccountPath     string
	AccountName     string
	InvoiceNumber   string
	ExternalID      string
	ProjectNumber   string
}

// NormalizedTransaction is the typed projection of a raw row. Amount is
// always an absolute value; cost vs revenue is derived from TransactionType,
// never from the sign.
type NormalizedTransaction struct {
	Date             time.Time
	Amount           decimal.Decimal
	CounterpartyName string
	TransactionType  TransactionType
	AccountPath      string
	AccountName      string
	InvoiceNumber    string
	ExternalID       string
	ProjectNumber    string
}

var importDateFormats = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"2006/01/02",
}

// parseImportDate tries each supported date format and returns a calendar
// date with no time component.
func parseImportDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	for _, format := range importDateFormats {
		if parsed, err := time.Parse(format, trimmed); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// parseImportAmount strips currency symbols, thousands separators, and
// accounting parentheses before converting. The result is always absolute.
func parseImportAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.NewReplacer("$", "", ",", "", "(", "", ")", "", " ", "").Replace(cleaned)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unrecognized amount %q", raw)
	}
	return amount.Abs(), nil
}

// parseTransactionType maps export type labels onto the internal enum.
// Anything unrecognized is treated as a generic expense so the amount still
// lands on the cost ledger.
func parseTransactionType(raw string) TransactionType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "bill":
		return TransactionTypeBill
	case "check", "cheque":
		return TransactionTypeCheck
	case "invoice":
		return TransactionTypeInvoice
	default:
		return TransactionTypeExpense
	}
}

// normalizeRow converts a raw row into a NormalizedTransaction. Warnings are
// returned for defaulted fields; the row itself is always usable.
func normalizeRow(row RawTransactionRow) (NormalizedTransaction, []string) {
	var warnings []string

	date, err := parseImportDate(row.Date)
	if err != nil {
		warnings = append(warnings, err.Error()+", defaulted to today")
		now := time.Now().UTC()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	amount, err := parseImportAmount(row.Amount)
	if err != nil {
		warnings = append(warnings, err.Error()+", defaulted to zero")
		amount = decimal.Zero
	}

	// Empty names stay empty strings so downstream matching treats them as
	// unmatched instead of failing.
	return NormalizedTransaction{
		Date:             date,
		Amount:           amount,
		CounterpartyName: strings.TrimSpace(row.Name),
		TransactionType:  parseTransactionType(row.TransactionType),
		AccountPath:      strings.TrimSpace(row.AccountPath),
		AccountName:      strings.TrimSpace(row.AccountName),
		InvoiceNumber:    strings.TrimSpace(row.InvoiceNumber),
		ExternalID:       strings.TrimSpace(row.ExternalID),
		ProjectNumber:    strings.TrimSpace(row.ProjectNumber),
	}, warnings
}
