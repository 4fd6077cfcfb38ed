package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"sync"

	"profitbuild/db/generated"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Import endpoint: ingests a ledger export CSV, runs the reconciliation
// engine over it, and persists the two resulting ledgers.

// Export column headers, exact-match and case-sensitive as produced by the
// upstream export format.
const (
	columnDate            = "Date"
	columnTransactionType = "Transaction Type"
	columnName            = "Name"
	columnAmount          = "Amount"
	columnAccountFullName = "Account Full Name"
	columnAccountName     = "Account Name"
	columnInvoiceNumber   = "Invoice Number"
	columnTransactionID   = "Transaction ID"
	columnProjectNumber   = "Project Number"
)

// parseImportCSV reads the export file into raw rows using the header row
// to locate columns. Only the four core columns are required.
func parseImportCSV(reader *csv.Reader) ([]RawTransactionRow, error) {
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[name] = i
	}
	for _, required := range []string{columnDate, columnAmount, columnName, columnTransactionType} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	field := func(record []string, column string) string {
		idx, ok := columns[column]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	rows := make([]RawTransactionRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		rows = append(rows, RawTransactionRow{
			Date:            field(record, columnDate),
			Amount:          field(record, columnAmount),
			Name:            field(record, columnName),
			TransactionType: field(record, columnTransactionType),
			AccountPath:     field(record, columnAccountFullName),
			AccountName:     field(record, columnAccountName),
			InvoiceNumber:   field(record, columnInvoiceNumber),
			ExternalID:      field(record, columnTransactionID),
			ProjectNumber:   field(record, columnProjectNumber),
		})
	}
	return rows, nil
}

// referenceData is everything the engine needs prefetched before the first
// row is processed.
type referenceData struct {
	payees   []generated.Payee
	clients  []generated.Client
	projects []generated.Project
	mappings []generated.AccountMapping
}

// loadReferenceData fetches the four reference tables concurrently. The
// fetches are independent, and per-row round trips are avoided entirely.
func loadReferenceData(ctx context.Context) (*referenceData, error) {
	data := &referenceData{}
	var payeeErr, clientErr, projectErr, mappingErr error

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		data.payees, payeeErr = queries.ListPayees(ctx)
	}()
	go func() {
		defer wg.Done()
		data.clients, clientErr = queries.ListClients(ctx)
	}()
	go func() {
		defer wg.Done()
		data.projects, projectErr = queries.ListProjects(ctx)
	}()
	go func() {
		defer wg.Done()
		data.mappings, mappingErr = queries.ListAccountMappings(ctx)
	}()
	wg.Wait()

	for _, err := range []error{payeeErr, clientErr, projectErr, mappingErr} {
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// buildImporter assembles a run-scoped importer from prefetched reference
// data. The reserved placeholder rows are seeded by migration; a missing
// one means the database is not usable for imports.
func buildImporter(data *referenceData) (*TransactionImporter, error) {
	importer := &TransactionImporter{
		History:  &dbLedgerHistory{queries: queries},
		Registry: &dbPayeeRegistry{queries: queries},
	}

	for _, p := range data.payees {
		importer.Payees = append(importer.Payees, payeeToRegistryEntity(p))
	}
	for _, c := range data.clients {
		importer.Clients = append(importer.Clients, clientToRegistryEntity(c))
		if c.Name == UnassignedClientName {
			importer.UnassignedClientID = uuidToString(c.ID)
		}
	}
	for _, p := range data.projects {
		importer.Projects = append(importer.Projects, ProjectRef{
			ID:            uuidToString(p.ID),
			ProjectNumber: p.ProjectNumber,
		})
		if p.ProjectNumber == UnassignedProjectNumber {
			importer.UnassignedProjectID = uuidToString(p.ID)
		}
	}
	for _, m := range data.mappings {
		importer.Mappings = append(importer.Mappings, AccountMappingRule{
			AccountPath: m.AccountPath,
			Category:    m.Category,
		})
	}

	if importer.UnassignedProjectID == "" {
		return nil, fmt.Errorf("reserved project %q not found", UnassignedProjectNumber)
	}
	if importer.UnassignedClientID == "" {
		return nil, fmt.Errorf("reserved client %q not found", UnassignedClientName)
	}
	return importer, nil
}

// persistImportResult writes both ledgers. A failed insert becomes a row
// error on the result; the rest of the batch still lands.
func persistImportResult(ctx context.Context, result *ImportResult, batchID string) {
	batch := pgTextFromString(batchID)

	for _, rec := range result.CostRecords {
		amount, err := pgNumericFromDecimal(rec.Amount)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("expense %q: %v", rec.Description, err))
			continue
		}
		params := generated.CreateExpenseParams{
			ExpenseDate:     pgDateFromTime(rec.Date),
			Amount:          amount,
			Description:     rec.Description,
			Category:        rec.Category,
			AccountPath:     pgTextFromString(rec.AccountPath),
			AccountName:     pgTextFromString(rec.AccountName),
			TransactionType: string(rec.TransactionType),
			ExternalID:      pgTextFromString(rec.ExternalID),
			ImportBatch:     batch,
		}
		if params.ProjectID, err = pgUUIDFromString(rec.ProjectID); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("expense %q: %v", rec.Description, err))
			continue
		}
		if rec.PayeeID != "" {
			if params.PayeeID, err = pgUUIDFromString(rec.PayeeID); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("expense %q: %v", rec.Description, err))
				continue
			}
		}
		if _, err := queries.CreateExpense(ctx, params); err != nil {
			log.Printf("Error inserting expense: %v", err)
			result.Errors = append(result.Errors, fmt.Sprintf("inserting expense %q: %v", rec.Description, err))
		}
	}

	for _, rec := range result.RevenueRecords {
		amount, err := pgNumericFromDecimal(rec.Amount)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("revenue %q: %v", rec.Description, err))
			continue
		}
		params := generated.CreateRevenueParams{
			RevenueDate:   pgDateFromTime(rec.Date),
			Amount:        amount,
			Description:   rec.Description,
			InvoiceNumber: pgTextFromString(rec.InvoiceNumber),
			ExternalID:    pgTextFromString(rec.ExternalID),
			ImportBatch:   batch,
		}
		if params.ProjectID, err = pgUUIDFromString(rec.ProjectID); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("revenue %q: %v", rec.Description, err))
			continue
		}
		if rec.ClientID != "" {
			if params.ClientID, err = pgUUIDFromString(rec.ClientID); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("revenue %q: %v", rec.Description, err))
				continue
			}
		}
		if _, err := queries.CreateRevenue(ctx, params); err != nil {
			log.Printf("Error inserting revenue: %v", err)
			result.Errors = append(result.Errors, fmt.Sprintf("inserting revenue %q: %v", rec.Description, err))
		}
	}
}

// @Summary Import transactions
// @Description Upload a ledger export CSV. Rows are deduplicated against the batch and prior imports, payee/client names are resolved to registry records, cost categories are classified, and the batch is split into expense and revenue ledgers.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Ledger export CSV"
// @Success 200 {object} ImportResult "Import statistics and imported records"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/import-transactions [post]
func importTransactions(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	rows, err := parseImportCSV(csv.NewReader(file))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	// Reference data is fatal when unavailable: the engine cannot dedupe or
	// resolve entities without its lookup tables, and no row has been
	// touched yet.
	data, err := loadReferenceData(ctx)
	if err != nil {
		log.Printf("Error loading reference data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading reference data"})
		return
	}
	importer, err := buildImporter(data)
	if err != nil {
		log.Printf("Error building importer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := importer.Run(ctx, rows)
	if err != nil {
		log.Printf("Error running import: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error running import"})
		return
	}

	batchID := uuid.NewString()
	persistImportResult(ctx, result, batchID)

	c.JSON(http.StatusOK, gin.H{
		"message":      "Import completed",
		"import_batch": batchID,
		"result":       result,
	})
}
