// Package reports holds the catalog of pre-written hackathon reports.
package reports

import (
	"context"
	"errors"
	"sort"
	"strings"

	"whattohack-api/internal/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrNotFound is returned by Lookup when no entry matches the name.
var ErrNotFound = errors.New("report not found")

// Store is the report catalog. Lookups match on models.NormalizeName only;
// there is no partial matching.
type Store interface {
	Lookup(ctx context.Context, name string) (models.Report, error)
	Has(ctx context.Context, name string) (bool, error)
	Upsert(ctx context.Context, report models.Report) error
	Names(ctx context.Context) ([]string, error)
	Suggest(ctx context.Context, query string) ([]string, error)
}

// suggest ranks names against a free-text query for the featured picker.
func suggest(names []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return names
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, r.Target)
	}
	return out
}
