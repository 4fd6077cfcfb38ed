package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"profitbuild/db/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Validation functions

// validateName validates that a name is not empty or just whitespace
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// validCategories is the closed set of cost categories accepted by the API
var validCategories = map[string]bool{
	CategorySubcontractors: true,
	CategoryMaterials:      true,
	CategoryLabor:          true,
	CategoryEquipment:      true,
	CategoryPermits:        true,
	CategoryManagement:     true,
	CategoryOther:          true,
}

// validateCategory validates that a category is one of the known cost
// categories
func validateCategory(category string) error {
	if !validCategories[category] {
		return fmt.Errorf("unknown category %q", category)
	}
	return nil
}

// handleDatabaseError converts database errors to appropriate HTTP responses
func handleDatabaseError(err error) (statusCode int, message string) {
	errorStr := err.Error()

	// Check for unique constraint violations
	if strings.Contains(errorStr, "duplicate key value violates unique constraint") {
		if strings.Contains(errorStr, "payees_name_key") {
			return http.StatusConflict, "Payee with this name already exists"
		}
		if strings.Contains(errorStr, "clients_name_key") {
			return http.StatusConflict, "Client with this name already exists"
		}
		if strings.Contains(errorStr, "projects_project_number_key") {
			return http.StatusConflict, "Project with this number already exists"
		}
		if strings.Contains(errorStr, "account_mappings_account_path_key") {
			return http.StatusConflict, "Mapping for this account path already exists"
		}
		return http.StatusConflict, "Resource already exists"
	}

	// Check for not found errors
	if strings.Contains(errorStr, "no rows in result set") {
		return http.StatusNotFound, "Resource not found"
	}

	// Default to internal server error
	return http.StatusInternalServerError, "Internal server error"
}

// UUID and pgtype conversion utility functions

// uuidToString converts a pgtype.UUID to its canonical string form
func uuidToString(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}
	return uuid.UUID(id.Bytes).String()
}

// pgUUIDFromString parses a UUID string into a pgtype.UUID
func pgUUIDFromString(id string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("invalid UUID format: %s", id)
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

// pgTextFromString wraps a string in pgtype.Text, treating "" as NULL
func pgTextFromString(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

// textToPtr converts a nullable pgtype.Text to a *string for API structs
func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}

// uuidToPtr converts a nullable pgtype.UUID to a *string for API structs
func uuidToPtr(id pgtype.UUID) *string {
	if !id.Valid {
		return nil
	}
	s := uuid.UUID(id.Bytes).String()
	return &s
}

// pgDateFromTime wraps a calendar date in pgtype.Date
func pgDateFromTime(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

// pgNumericFromDecimal converts a decimal amount to pgtype.Numeric at two
// decimal places
func pgNumericFromDecimal(d decimal.Decimal) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(d.StringFixed(2)); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("converting amount to numeric: %w", err)
	}
	return n, nil
}

// decimalFromNumeric converts a pgtype.Numeric back to a decimal amount
func decimalFromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

// numericToFloat converts a pgtype.Numeric to float64 for API responses
func numericToFloat(n pgtype.Numeric) float64 {
	value, err := n.Float64Value()
	if err != nil {
		return 0
	}
	return value.Float64
}

// Row conversion utility functions

// convertPayee converts a generated.Payee to our Payee struct
func convertPayee(p generated.Payee) Payee {
	return Payee{
		ID:          uuidToString(p.ID),
		Name:        p.Name,
		FullName:    textToPtr(p.FullName),
		PayeeType:   p.PayeeType,
		AutoCreated: p.AutoCreated,
		CreatedAt:   p.CreatedAt.Time,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

// convertClient converts a generated.Client to our Client struct
func convertClient(c generated.Client) Client {
	return Client{
		ID:          uuidToString(c.ID),
		Name:        c.Name,
		CompanyName: textToPtr(c.CompanyName),
		CreatedAt:   c.CreatedAt.Time,
		UpdatedAt:   c.UpdatedAt.Time,
	}
}

// convertProject converts a generated.Project to our Project struct
func convertProject(p generated.Project) Project {
	return Project{
		ID:            uuidToString(p.ID),
		ProjectNumber: p.ProjectNumber,
		Name:          p.Name,
		ClientID:      uuidToPtr(p.ClientID),
		CreatedAt:     p.CreatedAt.Time,
		UpdatedAt:     p.UpdatedAt.Time,
	}
}

// convertAccountMapping converts a generated.AccountMapping to our
// AccountMapping struct
func convertAccountMapping(m generated.AccountMapping) AccountMapping {
	return AccountMapping{
		ID:          uuidToString(m.ID),
		AccountPath: m.AccountPath,
		Category:    m.Category,
		CreatedAt:   m.CreatedAt.Time,
		UpdatedAt:   m.UpdatedAt.Time,
	}
}

// convertExpense converts a generated.Expense to our Expense struct
func convertExpense(e generated.Expense) Expense {
	return Expense{
		ID:              uuidToString(e.ID),
		ProjectID:       uuidToString(e.ProjectID),
		PayeeID:         uuidToPtr(e.PayeeID),
		ExpenseDate:     e.ExpenseDate.Time.Format("2006-01-02"),
		Amount:          numericToFloat(e.Amount),
		Description:     e.Description,
		Category:        e.Category,
		AccountPath:     textToPtr(e.AccountPath),
		AccountName:     textToPtr(e.AccountName),
		TransactionType: e.TransactionType,
		ExternalID:      textToPtr(e.ExternalID),
		ImportBatch:     textToPtr(e.ImportBatch),
		CreatedAt:       e.CreatedAt.Time,
		UpdatedAt:       e.UpdatedAt.Time,
	}
}

// convertRevenue converts a generated.Revenue to our Revenue struct
func convertRevenue(r generated.Revenue) Revenue {
	return Revenue{
		ID:            uuidToString(r.ID),
		ProjectID:     uuidToString(r.ProjectID),
		ClientID:      uuidToPtr(r.ClientID),
		RevenueDate:   r.RevenueDate.Time.Format("2006-01-02"),
		Amount:        numericToFloat(r.Amount),
		Description:   r.Description,
		InvoiceNumber: textToPtr(r.InvoiceNumber),
		ExternalID:    textToPtr(r.ExternalID),
		ImportBatch:   textToPtr(r.ImportBatch),
		CreatedAt:     r.CreatedAt.Time,
		UpdatedAt:     r.UpdatedAt.Time,
	}
}

// Registry conversion functions used by the import engine

// payeeToRegistryEntity exposes a payee's name variants to the resolver
func payeeToRegistryEntity(p generated.Payee) RegistryEntity {
	entity := RegistryEntity{
		ID:          uuidToString(p.ID),
		DisplayName: p.Name,
	}
	if p.FullName.Valid && p.FullName.String != "" {
		entity.Aliases = append(entity.Aliases, p.FullName.String)
	}
	return entity
}

// clientToRegistryEntity exposes a client's name variants to the resolver
func clientToRegistryEntity(c generated.Client) RegistryEntity {
	entity := RegistryEntity{
		ID:          uuidToString(c.ID),
		DisplayName: c.Name,
	}
	if c.CompanyName.Valid && c.CompanyName.String != "" {
		entity.Aliases = append(entity.Aliases, c.CompanyName.String)
	}
	return entity
}
