// Package travel holds the travel fee rules: address normalization, distance
// rounding, pricing rule selection and fee calculation. Everything here is
// pure so it can be tested without a database or a maps provider.
package travel

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"fundacoes_backoffice/internal/domain/entities"
)

const (
	roundTripSuffix = " × 2 (ida e volta)"
	defaultSuffix   = " (padrão)"
	noRuleSuffix    = "km (sem regra de preço configurada)"
)

var repeatedCommas = regexp.MustCompile(`,(\s*,)+`)

// NormalizeAddress turns an address assembled with " | " separators into
// something a maps provider understands.
//
//	"Rua X | Bairro Y | Cidade Z" -> "Rua X, Bairro Y, Cidade Z"
func NormalizeAddress(address string) string {
	s := strings.ReplaceAll(address, " | ", ", ")
	s = repeatedCommas.ReplaceAllString(s, ",")
	return strings.TrimFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// RoundKm converts meters to whole kilometers using math.Round
// (half away from zero).
func RoundKm(meters int) float64 {
	return math.Round(float64(meters) / 1000)
}

// SortRules orders rules by ascending Order. The sort is stable so rules with
// the same Order keep their stored sequence.
func SortRules(rules []entities.TravelPricingRule) []entities.TravelPricingRule {
	sorted := make([]entities.TravelPricingRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
	return sorted
}

// MatchRule selects the rule that prices distanceKm, or nil.
//
// Single pass in ascending Order:
//   - the first default rule seen is remembered as fallback
//   - a non-default rule without ceiling wins immediately
//   - a rule with a ceiling wins when distanceKm <= UpToKm
//
// The remembered default is used only when nothing else matched. When several
// rules are marked default only the first one is a fallback.
func MatchRule(rules []entities.TravelPricingRule, distanceKm float64) *entities.TravelPricingRule {
	var defaultRule *entities.TravelPricingRule
	for _, r := range SortRules(rules) {
		rule := r
		if rule.IsDefault && defaultRule == nil {
			defaultRule = &rule
		}
		if rule.UpToKm == nil && !rule.IsDefault {
			return &rule
		}
		if rule.UpToKm != nil && distanceKm <= *rule.UpToKm {
			return &rule
		}
	}
	return defaultRule
}

// Calculate returns the travel fee and its human readable description.
func Calculate(rule *entities.TravelPricingRule, distanceKm float64) (float64, string) {
	km := strconv.FormatFloat(distanceKm, 'f', -1, 64)
	if rule == nil {
		return 0, km + noRuleSuffix
	}

	var base float64
	var desc string
	switch rule.Type {
	case entities.TravelPricingFixed:
		base = rule.FixedPrice
		desc = strings.TrimSpace(rule.Description)
		if desc == "" {
			desc = fmt.Sprintf("Taxa fixa R$ %.2f", rule.FixedPrice)
		}
	default:
		base = distanceKm * rule.PricePerKm
		desc = fmt.Sprintf("%skm × R$ %.2f/km", km, rule.PricePerKm)
	}

	price := base
	if rule.RoundTrip {
		price = base * 2
		desc += roundTripSuffix
	}
	if rule.IsDefault {
		desc += defaultSuffix
	}
	return price, desc
}

// Quote matches and prices in one step.
func Quote(rules []entities.TravelPricingRule, distanceKm float64) (float64, string, *entities.TravelPricingRule) {
	rule := MatchRule(rules, distanceKm)
	price, desc := Calculate(rule, distanceKm)
	return price, desc, rule
}
