package main

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImportCSV(t *testing.T) {
	t.Run("maps columns by header name", func(t *testing.T) {
		input := `Date,Transaction Type,Name,Amount,Account Full Name,Account Name,Invoice Number,Transaction ID,Project Number
2025-03-10,Bill,Apex Concrete,1500.00,Cost of Goods Sold:Supplies & Materials,Supplies & Materials,,TXN-100,24-001
2025-03-11,Invoice,Main Street Partners,5000.00,,,INV-7,TXN-200,24-001`

		rows, err := parseImportCSV(csv.NewReader(strings.NewReader(input)))
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "Apex Concrete", rows[0].Name)
		assert.Equal(t, "1500.00", rows[0].Amount)
		assert.Equal(t, "Cost of Goods Sold:Supplies & Materials", rows[0].AccountPath)
		assert.Equal(t, "TXN-100", rows[0].ExternalID)
		assert.Equal(t, "INV-7", rows[1].InvoiceNumber)
		assert.Equal(t, "Invoice", rows[1].TransactionType)
	})

	t.Run("optional columns may be absent entirely", func(t *testing.T) {
		input := `Date,Transaction Type,Name,Amount
2025-03-10,Bill,Apex Concrete,1500.00`

		rows, err := parseImportCSV(csv.NewReader(strings.NewReader(input)))
		require.NoError(t, err)
		require.Len(t, rows, 1)

		assert.Empty(t, rows[0].InvoiceNumber)
		assert.Empty(t, rows[0].ExternalID)
		assert.Empty(t, rows[0].ProjectNumber)
	})

	t.Run("short rows read missing cells as empty", func(t *testing.T) {
		input := `Date,Transaction Type,Name,Amount,Invoice Number
2025-03-10,Bill,Apex Concrete,1500.00`

		rows, err := parseImportCSV(csv.NewReader(strings.NewReader(input)))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Empty(t, rows[0].InvoiceNumber)
	})

	t.Run("missing required column fails", func(t *testing.T) {
		input := `Date,Name,Amount
2025-03-10,Apex Concrete,1500.00`

		_, err := parseImportCSV(csv.NewReader(strings.NewReader(input)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Transaction Type")
	})

	t.Run("empty file fails", func(t *testing.T) {
		_, err := parseImportCSV(csv.NewReader(strings.NewReader("")))
		require.Error(t, err)
	})
}

// TestImportTransactions tests the POST /api/import-transactions endpoint
func TestImportTransactions(t *testing.T) {
	// Clean data before test
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	projectID, err := createTestProject("24-001", "Maple Street Remodel")
	require.NoError(t, err)

	csvContent := `Date,Transaction Type,Name,Amount,Account Full Name,Account Name,Invoice Number,Transaction ID,Project Number
2025-01-15,Bill,Apex Concrete,"1,500.00",Cost of Goods Sold:Supplies & Materials,Supplies & Materials,,TXN-100,24-001
2025-01-15,Bill,Apex Concrete,"1,500.00",Cost of Goods Sold:Supplies & Materials,Supplies & Materials,,TXN-100,24-001
2025-01-16,Invoice,Main Street Partners,5000.00,,,INV-7,TXN-200,24-001
2025-01-17,Check,Roadway Fuel Stop,250.00,Expenses:Vehicle Fuel,Vehicle Fuel,,TXN-300,99-999`

	type importResponse struct {
		Message     string       `json:"message"`
		ImportBatch string       `json:"import_batch"`
		Result      ImportResult `json:"result"`
	}

	t.Run("first import lands both ledgers", func(t *testing.T) {
		resp := makeMultipartRequest("/api/import-transactions", "file", "ledger_export.csv", []byte(csvContent))
		assertStatusCode(t, http.StatusOK, resp.Code)

		var response importResponse
		assertNoError(t, parseJSONResponse(resp, &response))

		assert.NotEmpty(t, response.ImportBatch)
		assert.Equal(t, 4, response.Result.RowsProcessed)
		assert.Len(t, response.Result.CostRecords, 2)
		assert.Len(t, response.Result.RevenueRecords, 1)
		assert.Equal(t, 1, response.Result.Duplicates.BatchExpenses)
		assert.Equal(t, 1, response.Result.UnassignedProjectExpenses)
		assert.Equal(t, 1, response.Result.UnassignedClients)

		// Both payees were unknown and auto-created
		assert.Len(t, response.Result.CreatedPayees, 2)

		// Verify persisted records through the API
		listResp := makeRequest("GET", "/api/expenses", nil)
		assertStatusCode(t, http.StatusOK, listResp.Code)

		var expenses []Expense
		assertNoError(t, parseJSONResponse(listResp, &expenses))
		require.Len(t, expenses, 2)

		byExternalID := make(map[string]Expense)
		for _, e := range expenses {
			require.NotNil(t, e.ExternalID)
			byExternalID[*e.ExternalID] = e
		}

		apex := byExternalID["TXN-100"]
		assert.Equal(t, projectID, apex.ProjectID)
		assert.Equal(t, CategoryMaterials, apex.Category)
		assert.Equal(t, 1500.0, apex.Amount)
		assert.Equal(t, "2025-01-15", apex.ExpenseDate)
		assert.NotNil(t, apex.PayeeID)

		listResp = makeRequest("GET", "/api/revenues", nil)
		assertStatusCode(t, http.StatusOK, listResp.Code)

		var revenues []Revenue
		assertNoError(t, parseJSONResponse(listResp, &revenues))
		require.Len(t, revenues, 1)
		require.NotNil(t, revenues[0].InvoiceNumber)
		assert.Equal(t, "INV-7", *revenues[0].InvoiceNumber)
	})

	t.Run("re-importing the same file is a no-op", func(t *testing.T) {
		resp := makeMultipartRequest("/api/import-transactions", "file", "ledger_export.csv", []byte(csvContent))
		assertStatusCode(t, http.StatusOK, resp.Code)

		var response importResponse
		assertNoError(t, parseJSONResponse(resp, &response))

		assert.Empty(t, response.Result.CostRecords)
		assert.Empty(t, response.Result.RevenueRecords)
		assert.Equal(t, 2, response.Result.Duplicates.DBExpenses)
		assert.Equal(t, 1, response.Result.Duplicates.DBRevenues)
		assert.Equal(t, 1, response.Result.Duplicates.BatchExpenses)
		assert.Empty(t, response.Result.CreatedPayees)

		// Ledger counts are unchanged
		listResp := makeRequest("GET", "/api/expenses", nil)
		var expenses []Expense
		assertNoError(t, parseJSONResponse(listResp, &expenses))
		assert.Len(t, expenses, 2)
	})

	t.Run("missing required column returns 400", func(t *testing.T) {
		badCSV := "Date,Name,Amount\n2025-01-15,Apex Concrete,100.00"
		resp := makeMultipartRequest("/api/import-transactions", "file", "bad.csv", []byte(badCSV))
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("missing file returns 400", func(t *testing.T) {
		resp := makeRequest("POST", "/api/import-transactions", nil)
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

// TestImportPayeeMatching verifies fuzzy payee resolution against existing
// registry records during an import
func TestImportPayeeMatching(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	payeeID, err := createTestPayee("ABC Electric", PayeeTypeSubcontractor)
	require.NoError(t, err)

	csvContent := `Date,Transaction Type,Name,Amount
2025-02-10,Bill,ABC Electric LLC,750.00`

	resp := makeMultipartRequest("/api/import-transactions", "file", "export.csv", []byte(csvContent))
	assertStatusCode(t, http.StatusOK, resp.Code)

	var response struct {
		Result ImportResult `json:"result"`
	}
	assertNoError(t, parseJSONResponse(resp, &response))

	// The suffixed name resolved to the existing payee instead of creating one
	assert.Empty(t, response.Result.CreatedPayees)
	require.Len(t, response.Result.CostRecords, 1)
	assert.Equal(t, payeeID, response.Result.CostRecords[0].PayeeID)
}
