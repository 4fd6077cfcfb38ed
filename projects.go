package main

import (
	"context"
	"log"
	"net/http"

	"profitbuild/db/generated"

	"github.com/gin-gonic/gin"
)

// Project handler functions

// @Summary Get all projects
// @Description Retrieve all projects ordered by project number
// @Tags projects
// @Produce json
// @Success 200 {array} Project "List of projects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/projects [get]
func getProjects(c *gin.Context) {
	dbProjects, err := queries.ListProjects(context.Background())
	if err != nil {
		log.Printf("Error fetching projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching projects"})
		return
	}

	projects := make([]Project, 0, len(dbProjects))
	for _, p := range dbProjects {
		projects = append(projects, convertProject(p))
	}

	c.JSON(http.StatusOK, projects)
}

// @Summary Create project
// @Description Create a new project with a unique work-order number
// @Tags projects
// @Accept json
// @Produce json
// @Param project body object{project_number=string,name=string,client_id=string} true "Project data"
// @Success 201 {object} Project "Created project"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Project number already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/projects [post]
func createProject(c *gin.Context) {
	var request struct {
		ProjectNumber string  `json:"project_number"`
		Name          string  `json:"name"`
		ClientID      *string `json:"client_id"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateName(request.ProjectNumber); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project_number cannot be empty"})
		return
	}
	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := generated.CreateProjectParams{
		ProjectNumber: request.ProjectNumber,
		Name:          request.Name,
	}
	if request.ClientID != nil && *request.ClientID != "" {
		clientUUID, err := pgUUIDFromString(*request.ClientID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
			return
		}
		params.ClientID = clientUUID
	}

	dbProject, err := queries.CreateProject(context.Background(), params)
	if err != nil {
		log.Printf("Error creating project: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertProject(dbProject))
}

// @Summary Get project financial summary
// @Description Retrieve expense totals by category plus revenue total and gross profit for a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} ProjectSummary "Project financial summary"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/projects/{id}/summary [get]
func getProjectSummary(c *gin.Context) {
	projectUUID, err := pgUUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	categoryRows, err := queries.GetExpenseCategoryTotalsByProject(context.Background(), projectUUID)
	if err != nil {
		log.Printf("Error fetching expense totals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error calculating expense totals"})
		return
	}

	revenueTotal, err := queries.GetRevenueTotalByProject(context.Background(), projectUUID)
	if err != nil {
		log.Printf("Error fetching revenue total: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error calculating revenue total"})
		return
	}

	summary := ProjectSummary{
		ProjectID:     c.Param("id"),
		ExpenseTotals: make([]CategoryTotal, 0, len(categoryRows)),
	}
	for _, row := range categoryRows {
		total := numericToFloat(row.Total)
		summary.ExpenseTotals = append(summary.ExpenseTotals, CategoryTotal{
			Category: row.Category,
			Total:    total,
		})
		summary.ExpenseTotal += total
	}
	summary.RevenueTotal = numericToFloat(revenueTotal)
	summary.GrossProfit = summary.RevenueTotal - summary.ExpenseTotal

	c.JSON(http.StatusOK, summary)
}
