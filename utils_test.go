package main

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgUUIDFromString(t *testing.T) {
	t.Run("valid UUID string round-trips", func(t *testing.T) {
		testUUID := uuid.New()

		result, err := pgUUIDFromString(testUUID.String())

		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, testUUID, uuid.UUID(result.Bytes))
		assert.Equal(t, testUUID.String(), uuidToString(result))
	})

	t.Run("uppercase UUID strings are handled correctly", func(t *testing.T) {
		testUUID := uuid.New()

		result, err := pgUUIDFromString(strings.ToUpper(testUUID.String()))

		require.NoError(t, err)
		assert.Equal(t, testUUID, uuid.UUID(result.Bytes))
	})

	t.Run("invalid UUID string returns error", func(t *testing.T) {
		invalidUUIDString := "not-a-valid-uuid"

		_, err := pgUUIDFromString(invalidUUIDString)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
		assert.Contains(t, err.Error(), invalidUUIDString)
	})

	t.Run("empty string returns error", func(t *testing.T) {
		_, err := pgUUIDFromString("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})
}

func TestUUIDToString(t *testing.T) {
	t.Run("invalid UUID renders as empty string", func(t *testing.T) {
		assert.Equal(t, "", uuidToString(pgtype.UUID{}))
	})
}

func TestTextConversions(t *testing.T) {
	t.Run("empty string becomes NULL", func(t *testing.T) {
		result := pgTextFromString("")
		assert.False(t, result.Valid)
		assert.Nil(t, textToPtr(result))
	})

	t.Run("non-empty string round-trips", func(t *testing.T) {
		result := pgTextFromString("INV-001")
		require.True(t, result.Valid)

		ptr := textToPtr(result)
		require.NotNil(t, ptr)
		assert.Equal(t, "INV-001", *ptr)
	})
}

func TestNumericConversions(t *testing.T) {
	t.Run("decimal round-trips through numeric", func(t *testing.T) {
		amount := decimal.NewFromFloat(1234.56)

		n, err := pgNumericFromDecimal(amount)
		require.NoError(t, err)

		back := decimalFromNumeric(n)
		assert.True(t, amount.Equal(back), "expected %s, got %s", amount, back)
	})

	t.Run("whole amounts keep two decimal places", func(t *testing.T) {
		n, err := pgNumericFromDecimal(decimal.NewFromInt(1500))
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(1500).Equal(decimalFromNumeric(n)))
	})

	t.Run("invalid numeric converts to zero", func(t *testing.T) {
		assert.True(t, decimalFromNumeric(pgtype.Numeric{}).IsZero())
	})
}

func TestValidateCategory(t *testing.T) {
	t.Run("accepts every known category", func(t *testing.T) {
		for _, category := range []string{
			CategorySubcontractors, CategoryMaterials, CategoryLabor,
			CategoryEquipment, CategoryPermits, CategoryManagement, CategoryOther,
		} {
			assert.NoError(t, validateCategory(category), "category %q", category)
		}
	})

	t.Run("rejects unknown categories", func(t *testing.T) {
		err := validateCategory("snacks")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "snacks")
	})

	t.Run("rejects empty category", func(t *testing.T) {
		assert.Error(t, validateCategory(""))
	})
}

func TestHandleDatabaseError(t *testing.T) {
	t.Run("maps unique violations to 409 with a specific message", func(t *testing.T) {
		tests := []struct {
			constraint string
			message    string
		}{
			{"payees_name_key", "Payee with this name already exists"},
			{"clients_name_key", "Client with this name already exists"},
			{"projects_project_number_key", "Project with this number already exists"},
			{"account_mappings_account_path_key", "Mapping for this account path already exists"},
		}

		for _, tt := range tests {
			err := fmt.Errorf("ERROR: duplicate key value violates unique constraint %q (SQLSTATE 23505)", tt.constraint)
			status, message := handleDatabaseError(err)

			assert.Equal(t, http.StatusConflict, status)
			assert.Equal(t, tt.message, message)
		}
	})

	t.Run("maps unknown constraint violations to a generic 409", func(t *testing.T) {
		err := fmt.Errorf("duplicate key value violates unique constraint \"something_else\"")
		status, message := handleDatabaseError(err)

		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "Resource already exists", message)
	})

	t.Run("maps missing rows to 404", func(t *testing.T) {
		status, _ := handleDatabaseError(fmt.Errorf("no rows in result set"))
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("everything else is a 500", func(t *testing.T) {
		status, _ := handleDatabaseError(fmt.Errorf("connection refused"))
		assert.Equal(t, http.StatusInternalServerError, status)
	})
}
