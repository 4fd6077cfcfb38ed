package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Import orchestrator. One sequential pass per run:
// normalize → dedupe in-batch → dedupe cross-run → resolve entity →
// resolve project → classify → route to a ledger. Rows are processed in
// order because the in-batch detector is stateful and first-occurrence-wins.
// A failed row produces an error entry and is skipped; it never aborts the
// batch.

// Reserved project numbers and the client placeholder the engine routes
// unmatched records to. These rows are seeded by migration.
const (
	UnassignedProjectNumber = "UNASSIGNED"
	FuelProjectNumber       = "FUEL-001"
	GAProjectNumber         = "GA-001"
	UnassignedClientName    = "Unassigned Client"
)

// ProjectRef is the project slice the importer needs for work-order lookup.
type ProjectRef struct {
	ID            string `json:"id"`
	ProjectNumber string `json:"project_number"`
}

// PayeeDraft is a request to create a payee discovered during an import.
type PayeeDraft struct {
	Name      string `json:"name"`
	PayeeType string `json:"payee_type"`
}

// PayeeRegistry is the write side of the payee registry. Creation must be
// safe to re-run: a second import of the same file finds the now-existing
// payee via exact-name match and never calls this again.
type PayeeRegistry interface {
	CreatePayee(ctx context.Context, draft PayeeDraft) (RegistryEntity, error)
}

// LedgerHistory supplies the persisted-history indexes for cross-run
// duplicate detection. Implementations are expected to bulk-fetch; the
// engine calls each method at most once per run.
type LedgerHistory interface {
	ExpenseExternalIDs(ctx context.Context, ids []string) (map[string]bool, error)
	RevenueExternalIDs(ctx context.Context, ids []string) (map[string]bool, error)
	ExpensesInWindow(ctx context.Context, start, end time.Time) ([]StoredTransaction, error)
	RevenuesInWindow(ctx context.Context, start, end time.Time) ([]StoredTransaction, error)
}

// CostRecord is a fully resolved cost transaction ready for insertion.
type CostRecord struct {
	ProjectID       string          `json:"project_id"`
	PayeeID         string          `json:"payee_id,omitempty"`
	Date            time.Time       `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	AccountPath     string          `json:"account_path,omitempty"`
	AccountName     string          `json:"account_name,omitempty"`
	TransactionType TransactionType `json:"transaction_type"`
	ExternalID      string          `json:"external_id,omitempty"`
}

// RevenueRecord is a fully resolved revenue transaction ready for insertion.
type RevenueRecord struct {
	ProjectID     string          `json:"project_id"`
	ClientID      string          `json:"client_id,omitempty"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	ExternalID    string          `json:"external_id,omitempty"`
}

// CreatedPayee records a payee auto-created during the run.
type CreatedPayee struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PayeeType string `json:"payee_type"`
}

// DuplicateStats splits skipped duplicates by detector and ledger.
type DuplicateStats struct {
	BatchExpenses int `json:"batch_expenses"`
	BatchRevenues int `json:"batch_revenues"`
	DBExpenses    int `json:"db_expenses"`
	DBRevenues    int `json:"db_revenues"`
}

// ImportResult accumulates everything one run produced. It is mutated only
// by the orchestrator and returned to the caller at the end of the run.
type ImportResult struct {
	CostRecords    []CostRecord    `json:"cost_records"`
	RevenueRecords []RevenueRecord `json:"revenue_records"`

	UnassignedProjectExpenses int `json:"unassigned_project_expenses"`
	UnassignedProjectRevenues int `json:"unassigned_project_revenues"`
	UnassignedClients         int `json:"unassigned_clients"`

	Duplicates       DuplicateStats `json:"duplicates"`
	DuplicateDetails []string       `json:"duplicate_details,omitempty"`
	CreatedPayees    []CreatedPayee `json:"created_payees"`
	CategorySources  map[string]int `json:"category_sources"`
	UnmappedAccounts []string       `json:"unmapped_accounts"`
	Errors           []string       `json:"errors"`
	RowsProcessed    int            `json:"rows_processed"`
}

func newImportResult() *ImportResult {
	return &ImportResult{
		CostRecords:      make([]CostRecord, 0),
		RevenueRecords:   make([]RevenueRecord, 0),
		CreatedPayees:    make([]CreatedPayee, 0),
		CategorySources:  make(map[string]int),
		UnmappedAccounts: make([]string, 0),
		Errors:           make([]string, 0),
	}
}

// TransactionImporter holds the prefetched reference data and collaborator
// interfaces for one import run. All state is run-scoped; a run owns its
// indexes exclusively for its lifetime.
type TransactionImporter struct {
	Payees   []RegistryEntity
	Clients  []RegistryEntity
	Projects []ProjectRef
	Mappings []AccountMappingRule

	History  LedgerHistory
	Registry PayeeRegistry

	UnassignedProjectID string
	UnassignedClientID  string
}

// resolveProjectNumber normalizes a work-order number for lookup, applying
// the two special-case remaps: any "fuel..." prefix goes to the fuel
// tracking project, a bare "ga" token to general & administrative.
func resolveProjectNumber(number string) string {
	norm := strings.ToLower(strings.TrimSpace(number))
	switch {
	case norm == "":
		return ""
	case strings.HasPrefix(norm, "fuel"):
		return strings.ToLower(FuelProjectNumber)
	case norm == "ga":
		return strings.ToLower(GAProjectNumber)
	default:
		return norm
	}
}

// Run executes the import over the full batch and returns the accumulated
// result. It fails outright only when the persisted-history prefetch fails:
// without its lookup indexes the engine cannot dedupe safely, and no row
// has been processed at that point.
func (imp *TransactionImporter) Run(ctx context.Context, rows []RawTransactionRow) (*ImportResult, error) {
	result := newImportResult()
	result.RowsProcessed = len(rows)

	txs := make([]NormalizedTransaction, 0, len(rows))
	for i, row := range rows {
		tx, warnings := normalizeRow(row)
		for _, warning := range warnings {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %s", i+1, warning))
		}
		txs = append(txs, tx)
	}

	expenseHistory, revenueHistory, err := imp.loadHistory(ctx, txs)
	if err != nil {
		return nil, fmt.Errorf("loading transaction history: %w", err)
	}

	classifier := newCategoryClassifier(imp.Mappings)
	costDedup := newBatchDeduper()
	revenueDedup := newBatchDeduper()

	projectIDs := make(map[string]string, len(imp.Projects))
	for _, project := range imp.Projects {
		projectIDs[strings.ToLower(strings.TrimSpace(project.ProjectNumber))] = project.ID
	}

	// Copy so auto-created payees become visible to later rows of this run
	// without mutating the caller's slice.
	payees := make([]RegistryEntity, len(imp.Payees))
	copy(payees, imp.Payees)

	for i, tx := range txs {
		rowNum := i + 1
		if tx.TransactionType == TransactionTypeInvoice {
			imp.processRevenueRow(rowNum, tx, result, revenueDedup, revenueHistory, projectIDs)
		} else {
			imp.processCostRow(ctx, rowNum, tx, result, costDedup, expenseHistory, projectIDs, &payees, classifier)
		}
	}

	result.CategorySources = classifier.SourceCounts()
	result.UnmappedAccounts = append(result.UnmappedAccounts, classifier.UnmappedAccounts()...)
	return result, nil
}

// loadHistory bulk-fetches the cross-run duplicate indexes, bounded by the
// batch's padded date window.
func (imp *TransactionImporter) loadHistory(ctx context.Context, txs []NormalizedTransaction) (*historyIndex, *historyIndex, error) {
	var expenseIDs, revenueIDs []string
	for _, tx := range txs {
		if tx.ExternalID == "" {
			continue
		}
		if tx.TransactionType == TransactionTypeInvoice {
			revenueIDs = append(revenueIDs, tx.ExternalID)
		} else {
			expenseIDs = append(expenseIDs, tx.ExternalID)
		}
	}

	expenseIDIndex, err := imp.History.ExpenseExternalIDs(ctx, expenseIDs)
	if err != nil {
		return nil, nil, err
	}
	revenueIDIndex, err := imp.History.RevenueExternalIDs(ctx, revenueIDs)
	if err != nil {
		return nil, nil, err
	}

	var expenseKeys, revenueKeys map[string]bool
	if start, end, ok := historyWindow(txs); ok {
		storedExpenses, err := imp.History.ExpensesInWindow(ctx, start, end)
		if err != nil {
			return nil, nil, err
		}
		storedRevenues, err := imp.History.RevenuesInWindow(ctx, start, end)
		if err != nil {
			return nil, nil, err
		}
		expenseKeys = costKeysFromStored(storedExpenses)
		revenueKeys = revenueKeysFromStored(storedRevenues)
	}

	return newHistoryIndex(expenseIDIndex, expenseKeys), newHistoryIndex(revenueIDIndex, revenueKeys), nil
}

// resolveProjectID maps a work-order number to a project id, falling back
// to the unassigned placeholder. The record is still imported either way;
// dropping it would lose financial data.
func (imp *TransactionImporter) resolveProjectID(projectIDs map[string]string, number string) (string, bool) {
	norm := resolveProjectNumber(number)
	if norm != "" {
		if id, ok := projectIDs[norm]; ok {
			return id, true
		}
	}
	return imp.UnassignedProjectID, false
}

func (imp *TransactionImporter) processRevenueRow(
	rowNum int,
	tx NormalizedTransaction,
	result *ImportResult,
	dedup *batchDeduper,
	history *historyIndex,
	projectIDs map[string]string,
) {
	key := revenueDuplicateKey(tx.Date, tx.Amount, tx.InvoiceNumber, tx.CounterpartyName)
	if reason, dup := dedup.Check(key, tx); dup {
		result.Duplicates.BatchRevenues++
		result.DuplicateDetails = append(result.DuplicateDetails, fmt.Sprintf("row %d: %s", rowNum, reason))
		return
	}
	if history.IsDuplicate(tx.ExternalID, key) {
		result.Duplicates.DBRevenues++
		return
	}

	// Clients are pre-provisioned by contract, so unmatched revenue rows go
	// to the reserved placeholder instead of auto-creating a client.
	clientID := imp.UnassignedClientID
	match := resolveEntity(tx.CounterpartyName, imp.Clients)
	if match.Best != nil && match.Best.Confidence >= matchIdentityThreshold {
		clientID = match.Best.Entity.ID
	} else {
		result.UnassignedClients++
	}

	projectID, matched := imp.resolveProjectID(projectIDs, tx.ProjectNumber)
	if !matched {
		result.UnassignedProjectRevenues++
	}

	result.RevenueRecords = append(result.RevenueRecords, RevenueRecord{
		ProjectID:     projectID,
		ClientID:      clientID,
		Date:          tx.Date,
		Amount:        tx.Amount,
		Description:   tx.CounterpartyName,
		InvoiceNumber: tx.InvoiceNumber,
		ExternalID:    tx.ExternalID,
	})
}

func (imp *TransactionImporter) processCostRow(
	ctx context.Context,
	rowNum int,
	tx NormalizedTransaction,
	result *ImportResult,
	dedup *batchDeduper,
	history *historyIndex,
	projectIDs map[string]string,
	payees *[]RegistryEntity,
	classifier *categoryClassifier,
) {
	key := costDuplicateKey(tx.Date, tx.Amount, tx.CounterpartyName)
	if reason, dup := dedup.Check(key, tx); dup {
		result.Duplicates.BatchExpenses++
		result.DuplicateDetails = append(result.DuplicateDetails, fmt.Sprintf("row %d: %s", rowNum, reason))
		return
	}
	if history.IsDuplicate(tx.ExternalID, key) {
		result.Duplicates.DBExpenses++
		return
	}

	payeeID := ""
	match := resolveEntity(tx.CounterpartyName, *payees)
	if match.Best != nil && match.Best.Confidence >= matchIdentityThreshold {
		payeeID = match.Best.Entity.ID
	} else if tx.CounterpartyName != "" {
		draft := PayeeDraft{
			Name:      tx.CounterpartyName,
			PayeeType: inferPayeeType(tx.AccountPath),
		}
		created, err := imp.Registry.CreatePayee(ctx, draft)
		if err != nil {
			// The amount must still be recorded; the row proceeds without a
			// payee rather than being dropped.
			result.Errors = append(result.Errors,
				fmt.Sprintf("row %d: creating payee %q: %v", rowNum, tx.CounterpartyName, err))
		} else {
			payeeID = created.ID
			*payees = append(*payees, created)
			result.CreatedPayees = append(result.CreatedPayees, CreatedPayee{
				ID:        created.ID,
				Name:      created.DisplayName,
				PayeeType: draft.PayeeType,
			})
		}
	}

	projectID, matched := imp.resolveProjectID(projectIDs, tx.ProjectNumber)
	if !matched {
		result.UnassignedProjectExpenses++
	}

	description := tx.AccountName
	if description == "" {
		description = tx.CounterpartyName
	}
	category, _ := classifier.Classify(description, tx.AccountPath)

	result.CostRecords = append(result.CostRecords, CostRecord{
		ProjectID:       projectID,
		PayeeID:         payeeID,
		Date:            tx.Date,
		Amount:          tx.Amount,
		Description:     tx.CounterpartyName,
		Category:        category,
		AccountPath:     tx.AccountPath,
		AccountName:     tx.AccountName,
		TransactionType: tx.TransactionType,
		ExternalID:      tx.ExternalID,
	})
}
