package main

import (
	"context"
	"strings"
	"time"

	"profitbuild/db/generated"
)

// Database-backed collaborators for the import engine. Both are thin
// adapters over the generated queries so the engine itself stays free of
// pgtype and testable with in-memory fakes.

// dbLedgerHistory implements LedgerHistory with bulk queries bounded by the
// batch's external IDs and date window.
type dbLedgerHistory struct {
	queries *generated.Queries
}

func (h *dbLedgerHistory) ExpenseExternalIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	index := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return index, nil
	}
	rows, err := h.queries.GetExpenseExternalIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Valid {
			index[row.String] = true
		}
	}
	return index, nil
}

func (h *dbLedgerHistory) RevenueExternalIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	index := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return index, nil
	}
	rows, err := h.queries.GetRevenueExternalIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Valid {
			index[row.String] = true
		}
	}
	return index, nil
}

func (h *dbLedgerHistory) ExpensesInWindow(ctx context.Context, start, end time.Time) ([]StoredTransaction, error) {
	rows, err := h.queries.GetExpensesByDateRange(ctx, generated.GetExpensesByDateRangeParams{
		ExpenseDate:   pgDateFromTime(start),
		ExpenseDate_2: pgDateFromTime(end),
	})
	if err != nil {
		return nil, err
	}
	stored := make([]StoredTransaction, 0, len(rows))
	for _, row := range rows {
		stored = append(stored, StoredTransaction{
			Date:   row.ExpenseDate.Time,
			Amount: decimalFromNumeric(row.Amount),
			Name:   row.Description,
		})
	}
	return stored, nil
}

func (h *dbLedgerHistory) RevenuesInWindow(ctx context.Context, start, end time.Time) ([]StoredTransaction, error) {
	rows, err := h.queries.GetRevenuesByDateRange(ctx, generated.GetRevenuesByDateRangeParams{
		RevenueDate:   pgDateFromTime(start),
		RevenueDate_2: pgDateFromTime(end),
	})
	if err != nil {
		return nil, err
	}
	stored := make([]StoredTransaction, 0, len(rows))
	for _, row := range rows {
		var invoice string
		if row.InvoiceNumber.Valid {
			invoice = row.InvoiceNumber.String
		}
		stored = append(stored, StoredTransaction{
			Date:          row.RevenueDate.Time,
			Amount:        decimalFromNumeric(row.Amount),
			Name:          row.Description,
			InvoiceNumber: invoice,
		})
	}
	return stored, nil
}

// dbPayeeRegistry implements PayeeRegistry. Creation tolerates a concurrent
// or repeated import having already inserted the same payee: on a name
// collision it returns the existing record instead of failing the row.
type dbPayeeRegistry struct {
	queries *generated.Queries
}

func (r *dbPayeeRegistry) CreatePayee(ctx context.Context, draft PayeeDraft) (RegistryEntity, error) {
	created, err := r.queries.CreatePayee(ctx, generated.CreatePayeeParams{
		Name:        draft.Name,
		PayeeType:   draft.PayeeType,
		AutoCreated: true,
	})
	if err == nil {
		return payeeToRegistryEntity(created), nil
	}

	if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
		existing, lookupErr := r.queries.GetPayeeByName(ctx, draft.Name)
		if lookupErr == nil {
			return payeeToRegistryEntity(existing), nil
		}
	}
	return RegistryEntity{}, err
}
