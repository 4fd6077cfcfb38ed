package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Expense handler functions

// @Summary Get expenses
// @Description Retrieve cost-ledger transactions, optionally filtered by project
// @Tags expenses
// @Produce json
// @Param project_id query string false "Filter by project ID"
// @Success 200 {array} Expense "List of expenses"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/expenses [get]
func getExpenses(c *gin.Context) {
	projectID := c.Query("project_id")

	expenses := make([]Expense, 0)
	if projectID != "" {
		projectUUID, err := pgUUIDFromString(projectID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
			return
		}
		dbExpenses, err := queries.ListExpensesByProject(context.Background(), projectUUID)
		if err != nil {
			log.Printf("Error fetching expenses: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching expenses"})
			return
		}
		for _, e := range dbExpenses {
			expenses = append(expenses, convertExpense(e))
		}
	} else {
		dbExpenses, err := queries.ListExpenses(context.Background())
		if err != nil {
			log.Printf("Error fetching expenses: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching expenses"})
			return
		}
		for _, e := range dbExpenses {
			expenses = append(expenses, convertExpense(e))
		}
	}

	c.JSON(http.StatusOK, expenses)
}

// @Summary Delete expense
// @Description Delete a cost-ledger transaction by ID
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} map[string]interface{} "Expense deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/expenses/{id} [delete]
func deleteExpense(c *gin.Context) {
	expenseUUID, err := pgUUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID"})
		return
	}

	if err := queries.DeleteExpense(context.Background(), expenseUUID); err != nil {
		log.Printf("Error deleting expense: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting expense"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
