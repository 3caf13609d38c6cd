// Package matching finds historical records comparable to a requested item.
package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/pricestats"
)

const (
	qualifyingOverlap = 0.5

	nameExactScore    = 40
	nameContainsScore = 25
	nameOverlapWeight = 20
	unitScore         = 20
	quantityWeight    = 20
	specsExactScore   = 20
	specKeywordScore  = 4

	maxSimilarity = 100
)

type matcher struct {
	item     domain.RequestedItem
	name     string
	keywords []string
	specs    string
	specKeys []string
}

func newMatcher(item domain.RequestedItem) *matcher {
	specs := serializeSpecs(item.Specifications)
	return &matcher{
		item:     item,
		name:     normalize(item.ProductName),
		keywords: ExtractKeywords(item.ProductName + " " + item.Description),
		specs:    specs,
		specKeys: ExtractKeywords(specs),
	}
}

// FindSimilar scores every record of pool that qualifies against item and returns
// them ordered by similarity, highest first. A record qualifies when its name equals
// the item name or when at least half of the item keywords occur in its name or description.
func FindSimilar(item domain.RequestedItem, pool []domain.HistoricalRecord) []domain.SimilarityResult {
	m := newMatcher(item)
	results := make([]domain.SimilarityResult, 0)
	for _, record := range pool {
		overlap, ok := m.qualifies(record)
		if !ok {
			continue
		}
		results = append(results, domain.SimilarityResult{
			Record:     record,
			Similarity: m.score(record, overlap),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	return results
}

// Score returns the similarity of a single record regardless of whether it qualifies.
func Score(item domain.RequestedItem, record domain.HistoricalRecord) float64 {
	m := newMatcher(item)
	return m.score(record, m.overlap(record))
}

func (m *matcher) qualifies(record domain.HistoricalRecord) (float64, bool) {
	overlap := m.overlap(record)
	if m.name != "" && m.name == normalize(record.ProductName) {
		return overlap, true
	}
	if len(m.keywords) == 0 {
		return overlap, false
	}
	return overlap, overlap >= qualifyingOverlap
}

// overlap is the share of item keywords found in the record name or description.
func (m *matcher) overlap(record domain.HistoricalRecord) float64 {
	if len(m.keywords) == 0 {
		return 0
	}
	haystack := strings.ToLower(record.ProductName + " " + record.Description)
	var found int
	for _, kw := range m.keywords {
		if strings.Contains(haystack, kw) {
			found++
		}
	}
	return float64(found) / float64(len(m.keywords))
}

func (m *matcher) score(record domain.HistoricalRecord, overlap float64) float64 {
	var score float64

	recordName := normalize(record.ProductName)
	switch {
	case m.name != "" && m.name == recordName:
		score += nameExactScore
	case m.name != "" && recordName != "" &&
		(strings.Contains(recordName, m.name) || strings.Contains(m.name, recordName)):
		score += nameContainsScore
	default:
		score += overlap * nameOverlapWeight
	}

	if unit := normalize(m.item.Unit); unit != "" && unit == normalize(record.Unit) {
		score += unitScore
	}

	if m.item.Quantity > 0 && record.Quantity > 0 {
		lo, hi := m.item.Quantity, record.Quantity
		if lo > hi {
			lo, hi = hi, lo
		}
		score += lo / hi * quantityWeight
	}

	if m.specs != "" && len(record.Specifications) > 0 {
		recordSpecs := serializeSpecs(record.Specifications)
		if recordSpecs == m.specs {
			score += specsExactScore
		} else {
			recordKeys := ExtractKeywords(recordSpecs)
			for _, kw := range m.specKeys {
				for _, other := range recordKeys {
					if kw == other {
						score += specKeywordScore
						break
					}
				}
			}
		}
	}

	return pricestats.Clamp(score, 0, maxSimilarity)
}

// FindComparable is the looser matcher used for forecasting: product names must
// contain one another and records need a date and a positive price. The result
// is ordered by date, oldest first.
func FindComparable(item domain.RequestedItem, pool []domain.HistoricalRecord) []domain.HistoricalRecord {
	name := normalize(item.ProductName)
	records := make([]domain.HistoricalRecord, 0)
	if name == "" {
		return records
	}
	for _, record := range pool {
		recordName := normalize(record.ProductName)
		if recordName == "" || !record.HasDate() || record.EffectivePrice() <= 0 {
			continue
		}
		if strings.Contains(recordName, name) || strings.Contains(name, recordName) {
			records = append(records, record)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records
}

func serializeSpecs(specs map[string]string) string {
	if len(specs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", strings.ToLower(strings.TrimSpace(k)), strings.ToLower(strings.TrimSpace(specs[k])))
	}
	return strings.Join(parts, "; ")
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
