package main

import "strings"

// Cost category classification: a priority cascade of mapping sources where
// the first match wins. Administrator mappings beat the static table because
// they represent explicit human intent; keyword heuristics and the catch-all
// default come last.

// Cost categories.
const (
	CategorySubcontractors = "subcontractors"
	CategoryMaterials      = "materials"
	CategoryLabor          = "labor"
	CategoryEquipment      = "equipment"
	CategoryPermits        = "permits"
	CategoryManagement     = "management"
	CategoryOther          = "other"
)

// Classification sources, reported per record so an administrator can see
// which tier is doing the work and decide where new mappings are needed.
const (
	categorySourceUserMapping = "user_mapping"
	categorySourceStatic      = "static_mapping"
	categorySourceKeyword     = "keyword"
	categorySourceDefault     = "default"
)

// AccountMappingRule is one administrator-curated account-path mapping.
type AccountMappingRule struct {
	AccountPath string `json:"account_path"`
	Category    string `json:"category"`
}

// staticAccountCategories covers well-known default chart-of-accounts paths.
var staticAccountCategories = map[string]string{
	"cost of goods sold:contract labor":       CategorySubcontractors,
	"cost of goods sold:subcontractors":       CategorySubcontractors,
	"cost of goods sold:supplies & materials": CategoryMaterials,
	"cost of goods sold:job materials":        CategoryMaterials,
	"cost of goods sold:materials":            CategoryMaterials,
	"cost of goods sold:direct labor":         CategoryLabor,
	"cost of goods sold:equipment rental":     CategoryEquipment,
	"expenses:payroll expenses":               CategoryLabor,
	"expenses:equipment rental":               CategoryEquipment,
	"expenses:permits & licenses":             CategoryPermits,
	"expenses:office expenses":                CategoryManagement,
	"expenses:insurance":                      CategoryManagement,
}

// categoryKeywords are checked in order against the free-text description.
var categoryKeywords = []struct {
	category string
	words    []string
}{
	{CategoryLabor, []string{"labor", "wage", "payroll"}},
	{CategorySubcontractors, []string{"contractor"}},
	{CategoryMaterials, []string{"material", "supply", "supplies"}},
	{CategoryEquipment, []string{"equipment", "rental", "tool"}},
	{CategoryPermits, []string{"permit", "fee", "license"}},
	{CategoryManagement, []string{"management", "admin", "office"}},
}

// categoryClassifier resolves categories for one import run and accumulates
// tier statistics plus the account paths that fell through to the default.
type categoryClassifier struct {
	userMappings     map[string]string
	sourceCounts     map[string]int
	unmappedSeen     map[string]bool
	unmappedAccounts []string
}

func newCategoryClassifier(rules []AccountMappingRule) *categoryClassifier {
	userMappings := make(map[string]string, len(rules))
	for _, rule := range rules {
		path := strings.ToLower(strings.TrimSpace(rule.AccountPath))
		if path != "" && rule.Category != "" {
			userMappings[path] = rule.Category
		}
	}
	return &categoryClassifier{
		userMappings: userMappings,
		sourceCounts: make(map[string]int),
		unmappedSeen: make(map[string]bool),
	}
}

// Classify runs the cascade and returns the category plus the tier that
// resolved it.
func (c *categoryClassifier) Classify(description, accountPath string) (string, string) {
	path := strings.ToLower(strings.TrimSpace(accountPath))

	if path != "" {
		if category, ok := c.userMappings[path]; ok {
			c.sourceCounts[categorySourceUserMapping]++
			return category, categorySourceUserMapping
		}
		if category, ok := staticAccountCategories[path]; ok {
			c.sourceCounts[categorySourceStatic]++
			return category, categorySourceStatic
		}
	}

	desc := strings.ToLower(description)
	for _, entry := range categoryKeywords {
		for _, word := range entry.words {
			if strings.Contains(desc, word) {
				c.sourceCounts[categorySourceKeyword]++
				return entry.category, categorySourceKeyword
			}
		}
	}

	c.sourceCounts[categorySourceDefault]++
	if accountPath != "" && !c.unmappedSeen[accountPath] {
		c.unmappedSeen[accountPath] = true
		c.unmappedAccounts = append(c.unmappedAccounts, accountPath)
	}
	return CategoryOther, categorySourceDefault
}

// SourceCounts reports how many records each tier resolved.
func (c *categoryClassifier) SourceCounts() map[string]int {
	return c.sourceCounts
}

// UnmappedAccounts lists account paths that fell through to the default
// category, in first-seen order.
func (c *categoryClassifier) UnmappedAccounts() []string {
	return c.unmappedAccounts
}
