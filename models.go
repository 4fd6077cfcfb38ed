package main

import "time"

// Payee represents a canonical vendor that cost transactions are paid to
type Payee struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	FullName    *string   `json:"full_name"`
	PayeeType   string    `json:"payee_type"`
	AutoCreated bool      `json:"auto_created"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Client represents a customer that revenue transactions are billed to
type Client struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CompanyName *string   `json:"company_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Project represents a construction project or work order
type Project struct {
	ID            string    `json:"id"`
	ProjectNumber string    `json:"project_number"`
	Name          string    `json:"name"`
	ClientID      *string   `json:"client_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AccountMapping represents an administrator-curated account-path to
// category mapping
type AccountMapping struct {
	ID          string    `json:"id"`
	AccountPath string    `json:"account_path"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Expense represents a persisted cost-ledger transaction
type Expense struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"project_id"`
	PayeeID         *string   `json:"payee_id"`
	ExpenseDate     string    `json:"expense_date"`
	Amount          float64   `json:"amount"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	AccountPath     *string   `json:"account_path"`
	AccountName     *string   `json:"account_name"`
	TransactionType string    `json:"transaction_type"`
	ExternalID      *string   `json:"external_id"`
	ImportBatch     *string   `json:"import_batch"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Revenue represents a persisted revenue-ledger transaction
type Revenue struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id"`
	ClientID      *string   `json:"client_id"`
	RevenueDate   string    `json:"revenue_date"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	InvoiceNumber *string   `json:"invoice_number"`
	ExternalID    *string   `json:"external_id"`
	ImportBatch   *string   `json:"import_batch"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CategoryTotal represents the expense total for one cost category
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// ProjectSummary represents the financial summary for a project
type ProjectSummary struct {
	ProjectID     string          `json:"project_id"`
	ExpenseTotals []CategoryTotal `json:"expense_totals"`
	ExpenseTotal  float64         `json:"expense_total"`
	RevenueTotal  float64         `json:"revenue_total"`
	GrossProfit   float64         `json:"gross_profit"`
}
