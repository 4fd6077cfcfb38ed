package main

import (
	"sort"
	"strings"
)

// Entity resolution: maps a free-text counterparty name from an import file
// to a canonical payee or client record using the similarity kernel.

// MatchKind distinguishes exact name hits from fuzzy scoring.
type MatchKind string

const (
	MatchExact MatchKind = "exact"
	MatchFuzzy MatchKind = "fuzzy"
)

// Confidence thresholds. Candidates below the floor are discarded entirely,
// Best is only populated above the auto threshold, and the importer requires
// the stricter identity threshold before it trusts a fuzzy match as
// authoritative. Scores between the two tiers are surfaced as suggestions
// for manual review. A false positive here merges two real-world vendors,
// which is costlier than creating a duplicate entity a human later merges.
const (
	matchCandidateFloor    = 30.0
	matchAutoThreshold     = 60.0
	matchIdentityThreshold = 75.0
)

// RegistryEntity is a canonical payee or client as seen by the resolver:
// a stable id plus every known name variant.
type RegistryEntity struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Aliases     []string `json:"aliases,omitempty"`
}

// MatchCandidate is one scored registry entity for a resolution call.
type MatchCandidate struct {
	Entity     RegistryEntity `json:"entity"`
	Confidence float64        `json:"confidence"`
	Kind       MatchKind      `json:"kind"`
}

// MatchResult holds all surviving candidates sorted by descending
// confidence. Best is nil when nothing clears the auto-match threshold.
type MatchResult struct {
	Candidates []MatchCandidate `json:"candidates"`
	Best       *MatchCandidate  `json:"best,omitempty"`
}

// nameVariants returns the entity's display name plus aliases, skipping
// blanks.
func nameVariants(entity RegistryEntity) []string {
	variants := make([]string, 0, len(entity.Aliases)+1)
	if strings.TrimSpace(entity.DisplayName) != "" {
		variants = append(variants, entity.DisplayName)
	}
	for _, alias := range entity.Aliases {
		if strings.TrimSpace(alias) != "" {
			variants = append(variants, alias)
		}
	}
	return variants
}

// scoreNamePair blends the three similarity measures into a 0-100 score.
// Two alternative weightings are computed and the higher one wins: the
// second rewards business names where token overlap dominates.
func scoreNamePair(query, variant string) float64 {
	jw := jaroWinklerSimilarity(query, variant)
	lev := levenshteinSimilarity(query, variant)
	ts := tokenSetSimilarity(query, variant)

	blended := 0.4*jw + 0.3*lev + 0.3*ts
	tokenHeavy := 0.6*ts + 0.4*jw
	if tokenHeavy > blended {
		blended = tokenHeavy
	}
	return blended * 100
}

// resolveEntity ranks every registry entity against the query name. An exact
// case-insensitive match on any name variant (before or after business-name
// normalization) short-circuits to confidence 100 for that entity.
func resolveEntity(query string, registry []RegistryEntity) MatchResult {
	result := MatchResult{}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return result
	}
	normalized := normalizeBusinessName(trimmed)

	for _, entity := range registry {
		var best *MatchCandidate
		for _, variant := range nameVariants(entity) {
			if strings.EqualFold(trimmed, strings.TrimSpace(variant)) ||
				(normalized != "" && normalized == normalizeBusinessName(variant)) {
				best = &MatchCandidate{Entity: entity, Confidence: 100, Kind: MatchExact}
				break
			}

			score := scoreNamePair(trimmed, variant)
			if best == nil || score > best.Confidence {
				best = &MatchCandidate{Entity: entity, Confidence: score, Kind: MatchFuzzy}
			}
		}
		if best != nil && best.Confidence >= matchCandidateFloor {
			result.Candidates = append(result.Candidates, *best)
		}
	}

	sort.SliceStable(result.Candidates, func(i, j int) bool {
		if result.Candidates[i].Confidence != result.Candidates[j].Confidence {
			return result.Candidates[i].Confidence > result.Candidates[j].Confidence
		}
		return result.Candidates[i].Entity.DisplayName < result.Candidates[j].Entity.DisplayName
	})

	if len(result.Candidates) > 0 && result.Candidates[0].Confidence >= matchAutoThreshold {
		result.Best = &result.Candidates[0]
	}
	return result
}

// Payee types inferred from account path keywords when the importer has to
// auto-create a payee for an unmatched cost transaction.
const (
	PayeeTypeSubcontractor    = "subcontractor"
	PayeeTypeMaterialSupplier = "material_supplier"
	PayeeTypeEquipmentRental  = "equipment_rental"
	PayeeTypePermitAuthority  = "permit_authority"
	PayeeTypeOther            = "other"
)

// inferPayeeType guesses a payee classification from the transaction's
// account path.
func inferPayeeType(accountPath string) string {
	path := strings.ToLower(accountPath)
	switch {
	case strings.Contains(path, "contract labor") || strings.Contains(path, "subcontractor"):
		return PayeeTypeSubcontractor
	case strings.Contains(path, "material") || strings.Contains(path, "supplies"):
		return PayeeTypeMaterialSupplier
	case strings.Contains(path, "equipment") || strings.Contains(path, "rental"):
		return PayeeTypeEquipmentRental
	case strings.Contains(path, "permit") || strings.Contains(path, "license"):
		return PayeeTypePermitAuthority
	default:
		return PayeeTypeOther
	}
}
