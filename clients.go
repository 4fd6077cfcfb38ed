package main

import (
	"context"
	"log"
	"net/http"

	"profitbuild/db/generated"

	"github.com/gin-gonic/gin"
)

// Client handler functions

// @Summary Get all clients
// @Description Retrieve all clients ordered by name
// @Tags clients
// @Produce json
// @Success 200 {array} Client "List of clients"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/clients [get]
func getClients(c *gin.Context) {
	dbClients, err := queries.ListClients(context.Background())
	if err != nil {
		log.Printf("Error fetching clients: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching clients"})
		return
	}

	clients := make([]Client, 0, len(dbClients))
	for _, cl := range dbClients {
		clients = append(clients, convertClient(cl))
	}

	c.JSON(http.StatusOK, clients)
}

// @Summary Create client
// @Description Create a new client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body object{name=string,company_name=string} true "Client data"
// @Success 201 {object} Client "Created client"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Client already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/clients [post]
func createClient(c *gin.Context) {
	var request struct {
		Name        string  `json:"name"`
		CompanyName *string `json:"company_name"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := generated.CreateClientParams{Name: request.Name}
	if request.CompanyName != nil {
		params.CompanyName = pgTextFromString(*request.CompanyName)
	}

	dbClient, err := queries.CreateClient(context.Background(), params)
	if err != nil {
		log.Printf("Error creating client: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertClient(dbClient))
}
