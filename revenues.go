package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Revenue handler functions

// @Summary Get revenues
// @Description Retrieve revenue-ledger transactions, optionally filtered by project
// @Tags revenues
// @Produce json
// @Param project_id query string false "Filter by project ID"
// @Success 200 {array} Revenue "List of revenues"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/revenues [get]
func getRevenues(c *gin.Context) {
	projectID := c.Query("project_id")

	revenues := make([]Revenue, 0)
	if projectID != "" {
		projectUUID, err := pgUUIDFromString(projectID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
			return
		}
		dbRevenues, err := queries.ListRevenuesByProject(context.Background(), projectUUID)
		if err != nil {
			log.Printf("Error fetching revenues: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching revenues"})
			return
		}
		for _, r := range dbRevenues {
			revenues = append(revenues, convertRevenue(r))
		}
	} else {
		dbRevenues, err := queries.ListRevenues(context.Background())
		if err != nil {
			log.Printf("Error fetching revenues: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching revenues"})
			return
		}
		for _, r := range dbRevenues {
			revenues = append(revenues, convertRevenue(r))
		}
	}

	c.JSON(http.StatusOK, revenues)
}
