package main

import (
	"context"
	"log"
	"net/http"

	"profitbuild/db/generated"

	"github.com/gin-gonic/gin"
)

// Payee handler functions

// @Summary Get all payees
// @Description Retrieve all payees ordered by name
// @Tags payees
// @Produce json
// @Success 200 {array} Payee "List of payees"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/payees [get]
func getPayees(c *gin.Context) {
	dbPayees, err := queries.ListPayees(context.Background())
	if err != nil {
		log.Printf("Error fetching payees: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching payees"})
		return
	}

	payees := make([]Payee, 0, len(dbPayees))
	for _, p := range dbPayees {
		payees = append(payees, convertPayee(p))
	}

	c.JSON(http.StatusOK, payees)
}

// @Summary Create payee
// @Description Create a new payee
// @Tags payees
// @Accept json
// @Produce json
// @Param payee body object{name=string,full_name=string,payee_type=string} true "Payee data"
// @Success 201 {object} Payee "Created payee"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Payee already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/payees [post]
func createPayee(c *gin.Context) {
	var request struct {
		Name      string  `json:"name"`
		FullName  *string `json:"full_name"`
		PayeeType string  `json:"payee_type"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payeeType := request.PayeeType
	if payeeType == "" {
		payeeType = PayeeTypeOther
	}

	params := generated.CreatePayeeParams{
		Name:      request.Name,
		PayeeType: payeeType,
	}
	if request.FullName != nil {
		params.FullName = pgTextFromString(*request.FullName)
	}

	dbPayee, err := queries.CreatePayee(context.Background(), params)
	if err != nil {
		log.Printf("Error creating payee: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertPayee(dbPayee))
}
