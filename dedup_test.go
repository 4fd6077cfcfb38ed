package main

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate(day int) time.Time {
	return time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestDuplicateKeys(t *testing.T) {
	t.Run("cost key is date, amount, and lowercased name", func(t *testing.T) {
		key := costDuplicateKey(testDate(15), decimal.NewFromFloat(125.5), "  Acme Corp ")
		assert.Equal(t, "2025-03-15|125.50|acme corp", key)
	})

	t.Run("cost key ignores amount sign", func(t *testing.T) {
		positive := costDuplicateKey(testDate(15), decimal.NewFromFloat(125.5), "Acme Corp")
		negative := costDuplicateKey(testDate(15), decimal.NewFromFloat(-125.5), "Acme Corp")
		assert.Equal(t, positive, negative)
	})

	t.Run("revenue key includes the invoice number", func(t *testing.T) {
		key := revenueDuplicateKey(testDate(15), decimal.NewFromInt(5000), "INV-001", "Main Street Partners")
		assert.Equal(t, "5000.00|2025-03-15|inv-001|main street partners", key)
	})

	t.Run("same fields with different invoice numbers are distinct", func(t *testing.T) {
		a := revenueDuplicateKey(testDate(15), decimal.NewFromInt(5000), "INV-001", "Main Street Partners")
		b := revenueDuplicateKey(testDate(15), decimal.NewFromInt(5000), "INV-002", "Main Street Partners")
		assert.NotEqual(t, a, b)
	})

	t.Run("duplicateKeyFor routes by transaction type", func(t *testing.T) {
		cost := NormalizedTransaction{
			Date: testDate(15), Amount: decimal.NewFromInt(100),
			CounterpartyName: "Acme", TransactionType: TransactionTypeBill,
		}
		revenue := cost
		revenue.TransactionType = TransactionTypeInvoice
		revenue.InvoiceNumber = "INV-1"

		assert.Equal(t, costDuplicateKey(cost.Date, cost.Amount, cost.CounterpartyName), duplicateKeyFor(cost))
		assert.Equal(t, revenueDuplicateKey(revenue.Date, revenue.Amount, revenue.InvoiceNumber, revenue.CounterpartyName), duplicateKeyFor(revenue))
	})
}

func TestBatchDeduper(t *testing.T) {
	tx := NormalizedTransaction{
		Date: testDate(15), Amount: decimal.NewFromInt(100),
		CounterpartyName: "Acme Corp", TransactionType: TransactionTypeBill,
	}
	key := duplicateKeyFor(tx)

	t.Run("first occurrence wins", func(t *testing.T) {
		dedup := newBatchDeduper()

		reason, dup := dedup.Check(key, tx)
		assert.False(t, dup)
		assert.Empty(t, reason)

		reason, dup = dedup.Check(key, tx)
		assert.True(t, dup)
		assert.Equal(t, "duplicate of: Acme Corp on 2025-03-15", reason)
	})

	t.Run("different keys never collide", func(t *testing.T) {
		dedup := newBatchDeduper()
		other := tx
		other.Date = testDate(16)

		_, dup := dedup.Check(key, tx)
		assert.False(t, dup)
		_, dup = dedup.Check(duplicateKeyFor(other), other)
		assert.False(t, dup)
	})
}

func TestHistoryIndex(t *testing.T) {
	stored := StoredTransaction{Date: testDate(15), Amount: decimal.NewFromInt(100), Name: "Acme Corp"}
	keys := costKeysFromStored([]StoredTransaction{stored})
	index := newHistoryIndex(map[string]bool{"TXN-100": true}, keys)

	t.Run("known external ID is a duplicate", func(t *testing.T) {
		assert.True(t, index.IsDuplicate("TXN-100", "some|other|key"))
	})

	t.Run("unknown external ID imports even when the composite key matches", func(t *testing.T) {
		key := costDuplicateKey(stored.Date, stored.Amount, stored.Name)
		assert.False(t, index.IsDuplicate("TXN-999", key))
	})

	t.Run("rows without an external ID fall back to the composite key", func(t *testing.T) {
		key := costDuplicateKey(stored.Date, stored.Amount, stored.Name)
		assert.True(t, index.IsDuplicate("", key))
		assert.False(t, index.IsDuplicate("", "no|such|key"))
	})

	t.Run("nil maps are tolerated", func(t *testing.T) {
		empty := newHistoryIndex(nil, nil)
		assert.False(t, empty.IsDuplicate("TXN-100", "any"))
		assert.False(t, empty.IsDuplicate("", "any"))
	})
}

func TestHistoryWindow(t *testing.T) {
	t.Run("pads the batch date range by one day each side", func(t *testing.T) {
		txs := []NormalizedTransaction{
			{Date: testDate(10)},
			{Date: testDate(20)},
			{Date: testDate(15)},
		}

		start, end, ok := historyWindow(txs)
		require.True(t, ok)
		assert.Equal(t, testDate(9), start)
		assert.Equal(t, testDate(21), end)
	})

	t.Run("empty batch has no window", func(t *testing.T) {
		_, _, ok := historyWindow(nil)
		assert.False(t, ok)
	})
}

func TestKeysFromStored(t *testing.T) {
	t.Run("revenue keys round-trip through the key builder", func(t *testing.T) {
		stored := StoredTransaction{
			Date: testDate(15), Amount: decimal.NewFromInt(5000),
			Name: "Main Street Partners", InvoiceNumber: "INV-001",
		}
		keys := revenueKeysFromStored([]StoredTransaction{stored})

		assert.True(t, keys[revenueDuplicateKey(stored.Date, stored.Amount, stored.InvoiceNumber, stored.Name)])
		assert.Len(t, keys, 1)
	})
}
