package main

import (
	"context"
	"log"
	"net/http"

	"profitbuild/db/generated"

	"github.com/gin-gonic/gin"
)

// Account mapping handler functions. These rows are the top tier of the
// category classification cascade.

// @Summary Get all account mappings
// @Description Retrieve all administrator-curated account-path mappings
// @Tags account-mappings
// @Produce json
// @Success 200 {array} AccountMapping "List of account mappings"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/account-mappings [get]
func getAccountMappings(c *gin.Context) {
	dbMappings, err := queries.ListAccountMappings(context.Background())
	if err != nil {
		log.Printf("Error fetching account mappings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching account mappings"})
		return
	}

	mappings := make([]AccountMapping, 0, len(dbMappings))
	for _, m := range dbMappings {
		mappings = append(mappings, convertAccountMapping(m))
	}

	c.JSON(http.StatusOK, mappings)
}

// @Summary Create account mapping
// @Description Map an account path to a cost category. User-defined mappings take precedence over every other classification source.
// @Tags account-mappings
// @Accept json
// @Produce json
// @Param mapping body object{account_path=string,category=string} true "Mapping data"
// @Success 201 {object} AccountMapping "Created mapping"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Mapping already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/account-mappings [post]
func createAccountMapping(c *gin.Context) {
	var request struct {
		AccountPath string `json:"account_path"`
		Category    string `json:"category"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateName(request.AccountPath); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account_path cannot be empty"})
		return
	}
	if err := validateCategory(request.Category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dbMapping, err := queries.CreateAccountMapping(context.Background(), generated.CreateAccountMappingParams{
		AccountPath: request.AccountPath,
		Category:    request.Category,
	})
	if err != nil {
		log.Printf("Error creating account mapping: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertAccountMapping(dbMapping))
}

// @Summary Delete account mapping
// @Description Delete an account-path mapping by ID
// @Tags account-mappings
// @Produce json
// @Param id path string true "Mapping ID"
// @Success 200 {object} map[string]interface{} "Mapping deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/account-mappings/{id} [delete]
func deleteAccountMapping(c *gin.Context) {
	mappingUUID, err := pgUUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mapping ID"})
		return
	}

	if err := queries.DeleteAccountMapping(context.Background(), mappingUUID); err != nil {
		log.Printf("Error deleting account mapping: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting account mapping"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account mapping deleted successfully"})
}
