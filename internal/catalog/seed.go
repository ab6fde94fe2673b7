package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/safar/go-pos-register/internal/models"
)

// Source supplies the initial product records. It stands in for a database
// load; swap it out to seed the catalog from somewhere else.
type Source interface {
	Load() ([]models.Product, error)
}

// DefaultSource is the built-in seed: ten sequential issues of one title at
// a fixed cover price with varying stock.
func DefaultSource() Source { return defaultSource{} }

type defaultSource struct{}

func (defaultSource) Load() ([]models.Product, error) {
	price := decimal.NewFromFloat(3.99)
	copies := []int{12, 7, 4, 9, 0, 3, 15, 8, 2, 6}

	out := make([]models.Product, 0, len(copies))
	for i, n := range copies {
		out = append(out, models.Product{
			Title:           "The Atomic Owl",
			Author:          "M. Reyes",
			ReleaseDate:     models.NewDate(2025, time.Month(i+1), 1),
			IssueNumber:     i + 1,
			UnitPrice:       price,
			CopiesAvailable: n,
		})
	}
	return out, nil
}

// FileSource loads seed records from a JSON file holding an array of
// products. Records without an ID get one assigned when added.
type FileSource string

func (f FileSource) Load() ([]models.Product, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var out []models.Product
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", f, err)
	}
	return out, nil
}
