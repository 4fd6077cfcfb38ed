package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Duplicate detection. Both detectors derive the same composite keys; they
// differ only in the universe they compare against — the current batch for
// batchDeduper, persisted history for historyIndex.
//
// Keys deliberately use the raw trimmed name rather than the suffix-stripped
// form entity resolution uses. Two rows the resolver would call the same
// vendor can therefore still import as separate transactions when their raw
// names differ; suppressing those would risk dropping real transactions.

// normalizedKeyName lowercases a trimmed counterparty name for key use.
func normalizedKeyName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// costDuplicateKey identifies a cost transaction: date|amount|name.
func costDuplicateKey(date time.Time, amount decimal.Decimal, name string) string {
	return fmt.Sprintf("%s|%s|%s",
		date.Format("2006-01-02"),
		amount.Abs().StringFixed(2),
		normalizedKeyName(name))
}

// revenueDuplicateKey identifies a revenue transaction:
// amount|date|invoice|name.
func revenueDuplicateKey(date time.Time, amount decimal.Decimal, invoiceNumber, name string) string {
	return fmt.Sprintf("%s|%s|%s|%s",
		amount.Abs().StringFixed(2),
		date.Format("2006-01-02"),
		strings.ToLower(strings.TrimSpace(invoiceNumber)),
		normalizedKeyName(name))
}

// duplicateKeyFor builds the ledger-appropriate key for a transaction.
func duplicateKeyFor(tx NormalizedTransaction) string {
	if tx.TransactionType == TransactionTypeInvoice {
		return revenueDuplicateKey(tx.Date, tx.Amount, tx.InvoiceNumber, tx.CounterpartyName)
	}
	return costDuplicateKey(tx.Date, tx.Amount, tx.CounterpartyName)
}

// batchDeduper tracks composite keys within one import run. The first
// occurrence of a key wins; later occurrences are duplicates. It is
// order-dependent and owned exclusively by a single run, so no locking.
type batchDeduper struct {
	seen map[string]NormalizedTransaction
}

func newBatchDeduper() *batchDeduper {
	return &batchDeduper{seen: make(map[string]NormalizedTransaction)}
}

// Check records tx under key and reports whether an earlier row in this
// batch already claimed it. The reason names the first occurrence.
func (d *batchDeduper) Check(key string, tx NormalizedTransaction) (string, bool) {
	if first, ok := d.seen[key]; ok {
		reason := fmt.Sprintf("duplicate of: %s on %s",
			first.CounterpartyName, first.Date.Format("2006-01-02"))
		return reason, true
	}
	d.seen[key] = tx
	return "", false
}

// StoredTransaction is the slice of a persisted ledger record needed to
// rebuild its composite key.
type StoredTransaction struct {
	Date          time.Time
	Amount        decimal.Decimal
	Name          string
	InvoiceNumber string
}

// historyIndex holds the persisted-history indexes for one ledger: external
// IDs previously imported, and composite keys of records inside the batch's
// padded date window.
type historyIndex struct {
	externalIDs map[string]bool
	keys        map[string]bool
}

func newHistoryIndex(externalIDs map[string]bool, keys map[string]bool) *historyIndex {
	if externalIDs == nil {
		externalIDs = make(map[string]bool)
	}
	if keys == nil {
		keys = make(map[string]bool)
	}
	return &historyIndex{externalIDs: externalIDs, keys: keys}
}

// IsDuplicate applies the two-pass policy. For rows carrying an external ID
// the ID index is authoritative in both directions: a hit is an
// unconditional duplicate and a miss is an unconditional import, since the
// source system assigns those IDs collision-free. Only rows without an
// external ID fall back to the composite key, which covers manual CSV
// re-imports.
func (h *historyIndex) IsDuplicate(externalID, key string) bool {
	if externalID != "" {
		return h.externalIDs[externalID]
	}
	return h.keys[key]
}

// historyWindow pads the batch's min/max dates by one day on each side to
// bound the persisted-key index.
func historyWindow(txs []NormalizedTransaction) (time.Time, time.Time, bool) {
	var min, max time.Time
	found := false
	for _, tx := range txs {
		if !found || tx.Date.Before(min) {
			min = tx.Date
		}
		if !found || tx.Date.After(max) {
			max = tx.Date
		}
		found = true
	}
	if !found {
		return time.Time{}, time.Time{}, false
	}
	return min.AddDate(0, 0, -1), max.AddDate(0, 0, 1), true
}

// costKeysFromStored and revenueKeysFromStored rebuild composite keys from
// persisted records using the same key functions as the batch detector.
func costKeysFromStored(records []StoredTransaction) map[string]bool {
	keys := make(map[string]bool, len(records))
	for _, rec := range records {
		keys[costDuplicateKey(rec.Date, rec.Amount, rec.Name)] = true
	}
	return keys
}

func revenueKeysFromStored(records []StoredTransaction) map[string]bool {
	keys := make(map[string]bool, len(records))
	for _, rec := range records {
		keys[revenueDuplicateKey(rec.Date, rec.Amount, rec.InvoiceNumber, rec.Name)] = true
	}
	return keys
}
