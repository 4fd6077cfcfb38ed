package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEntity(t *testing.T) {
	registry := []RegistryEntity{
		{ID: "p1", DisplayName: "ABC Electric"},
		{ID: "p2", DisplayName: "Smith Electrical"},
		{ID: "p3", DisplayName: "Zeta Consulting"},
	}

	t.Run("case-insensitive exact match scores 100", func(t *testing.T) {
		result := resolveEntity("abc electric", registry)

		require.NotNil(t, result.Best)
		assert.Equal(t, "p1", result.Best.Entity.ID)
		assert.Equal(t, 100.0, result.Best.Confidence)
		assert.Equal(t, MatchExact, result.Best.Kind)
	})

	t.Run("corporate suffix still matches exactly", func(t *testing.T) {
		result := resolveEntity("ABC Electric LLC", registry)

		require.NotNil(t, result.Best)
		assert.Equal(t, "p1", result.Best.Entity.ID)
		assert.Equal(t, 100.0, result.Best.Confidence)
		assert.Equal(t, MatchExact, result.Best.Kind)
	})

	t.Run("punctuation variant matches exactly", func(t *testing.T) {
		entities := []RegistryEntity{{ID: "p1", DisplayName: "Jons Plumbing Co"}}
		result := resolveEntity("Jon's Plumbing", entities)

		require.NotNil(t, result.Best)
		assert.Equal(t, 100.0, result.Best.Confidence)
		assert.Equal(t, MatchExact, result.Best.Kind)
	})

	t.Run("close variant clears the identity threshold", func(t *testing.T) {
		result := resolveEntity("Smith Electric", registry)

		require.NotNil(t, result.Best)
		assert.Equal(t, "p2", result.Best.Entity.ID)
		assert.Equal(t, MatchFuzzy, result.Best.Kind)
		assert.GreaterOrEqual(t, result.Best.Confidence, matchIdentityThreshold)
		assert.Less(t, result.Best.Confidence, 100.0)
	})

	t.Run("alias matches count like display names", func(t *testing.T) {
		entities := []RegistryEntity{
			{ID: "p1", DisplayName: "JS Holdings", Aliases: []string{"Johnson Supply"}},
		}
		result := resolveEntity("Johnson Supply", entities)

		require.NotNil(t, result.Best)
		assert.Equal(t, "p1", result.Best.Entity.ID)
		assert.Equal(t, 100.0, result.Best.Confidence)
	})

	t.Run("unrelated single-word names stay below the candidate floor", func(t *testing.T) {
		result := resolveEntity("Ace", []RegistryEntity{{ID: "p1", DisplayName: "Zeta"}})

		assert.Nil(t, result.Best)
		assert.Empty(t, result.Candidates)
	})

	t.Run("unrelated names produce no candidates", func(t *testing.T) {
		result := resolveEntity("Quickstop Fuel Depot", []RegistryEntity{
			{ID: "p3", DisplayName: "Zeta Consulting"},
		})

		assert.Nil(t, result.Best)
		assert.Empty(t, result.Candidates)
	})

	t.Run("empty query returns empty result", func(t *testing.T) {
		result := resolveEntity("   ", registry)

		assert.Nil(t, result.Best)
		assert.Empty(t, result.Candidates)
	})

	t.Run("candidates are sorted by descending confidence", func(t *testing.T) {
		result := resolveEntity("Smith Electric", []RegistryEntity{
			{ID: "p1", DisplayName: "Smith Plumbing"},
			{ID: "p2", DisplayName: "Smith Electrical"},
		})

		require.NotEmpty(t, result.Candidates)
		for i := 1; i < len(result.Candidates); i++ {
			assert.GreaterOrEqual(t, result.Candidates[i-1].Confidence, result.Candidates[i].Confidence)
		}
		assert.Equal(t, "p2", result.Candidates[0].Entity.ID)
	})

	t.Run("entities with blank names are skipped", func(t *testing.T) {
		result := resolveEntity("Acme", []RegistryEntity{{ID: "p1", DisplayName: "  "}})

		assert.Nil(t, result.Best)
		assert.Empty(t, result.Candidates)
	})
}

func TestInferPayeeType(t *testing.T) {
	tests := []struct {
		accountPath string
		expected    string
	}{
		{"Cost of Goods Sold:Contract Labor", PayeeTypeSubcontractor},
		{"Cost of Goods Sold:Subcontractors", PayeeTypeSubcontractor},
		{"Cost of Goods Sold:Supplies & Materials", PayeeTypeMaterialSupplier},
		{"Expenses:Equipment Rental", PayeeTypeEquipmentRental},
		{"Expenses:Permits & Licenses", PayeeTypePermitAuthority},
		{"Expenses:Office Expenses", PayeeTypeOther},
		{"", PayeeTypeOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, inferPayeeType(tt.accountPath), "account path %q", tt.accountPath)
	}
}
