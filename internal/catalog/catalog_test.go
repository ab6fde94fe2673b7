package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/safar/go-pos-register/internal/identity"
	"github.com/safar/go-pos-register/internal/models"
)

func testIssue(n, copies int) models.Product {
	return models.Product{
		Title:           "Test Title",
		Author:          "A. Writer",
		ReleaseDate:     models.NewDate(2025, time.January, 1),
		IssueNumber:     n,
		UnitPrice:       decimal.NewFromFloat(2.50),
		CopiesAvailable: copies,
	}
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	c := New(identity.NewAllocator())

	first := c.Add(testIssue(1, 5))
	second := c.Add(testIssue(2, 5))

	if first.ID != 1 {
		t.Errorf("first product ID = %d, want 1", first.ID)
	}
	if second.ID != 2 {
		t.Errorf("second product ID = %d, want 2", second.ID)
	}
	if c.Len() != 2 {
		t.Errorf("catalog size = %d, want 2", c.Len())
	}
}

func TestAddKeepsSuppliedID(t *testing.T) {
	c := New(identity.NewAllocator())

	p := testIssue(7, 3)
	p.ID = 7
	stored := c.Add(p)
	if stored.ID != 7 {
		t.Fatalf("stored ID = %d, want 7", stored.ID)
	}

	// The sequence must advance past a supplied ID so it is never reused.
	next := c.Add(testIssue(8, 3))
	if next.ID != 8 {
		t.Errorf("next assigned ID = %d, want 8", next.ID)
	}
}

func TestUpdateReplacesByID(t *testing.T) {
	c := New(identity.NewAllocator())
	p := c.Add(testIssue(1, 5))

	p.Title = "Renamed Title"
	p.UnitPrice = decimal.NewFromFloat(4.25)
	p.CopiesAvailable = 9
	if err := c.Update(p); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, ok := c.FindByID(p.ID)
	if !ok {
		t.Fatalf("FindByID after update: not found")
	}
	if got.Title != "Renamed Title" {
		t.Errorf("title = %q, want %q", got.Title, "Renamed Title")
	}
	if !got.UnitPrice.Equal(decimal.NewFromFloat(4.25)) {
		t.Errorf("unit price = %s, want 4.25", got.UnitPrice)
	}
	if got.CopiesAvailable != 9 {
		t.Errorf("copies = %d, want 9", got.CopiesAvailable)
	}
}

func TestUpdateMissingID(t *testing.T) {
	c := New(identity.NewAllocator())
	original := c.Add(testIssue(1, 5))

	ghost := testIssue(2, 1)
	ghost.ID = 99
	if err := c.Update(ghost); err != models.ErrProductNotFound {
		t.Fatalf("Update missing ID: err = %v, want ErrProductNotFound", err)
	}

	// The catalog must be untouched by a failed update.
	if c.Len() != 1 {
		t.Errorf("catalog size = %d, want 1", c.Len())
	}
	got, _ := c.FindByID(original.ID)
	if got.IssueNumber != 1 {
		t.Errorf("issue number = %d, want 1", got.IssueNumber)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := New(identity.NewAllocator())
	p := c.Add(testIssue(1, 5))
	c.Add(testIssue(2, 5))

	if !c.Remove(p.ID) {
		t.Fatalf("first Remove returned false")
	}
	if c.Remove(p.ID) {
		t.Errorf("second Remove returned true, want no-op")
	}
	if c.Len() != 1 {
		t.Errorf("catalog size = %d, want 1", c.Len())
	}
	if _, ok := c.FindByID(p.ID); ok {
		t.Errorf("removed product still found")
	}
}

func TestProductsReturnsCopies(t *testing.T) {
	c := New(identity.NewAllocator())
	c.Add(testIssue(1, 5))

	list := c.Products()
	list[0].CopiesAvailable = 0

	got, _ := c.FindByID(1)
	if got.CopiesAvailable != 5 {
		t.Errorf("catalog mutated through Products() copy: copies = %d, want 5", got.CopiesAvailable)
	}
}

func TestDefaultSeed(t *testing.T) {
	c := New(identity.NewAllocator())
	if err := c.LoadFrom(DefaultSource()); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if c.Len() != 10 {
		t.Fatalf("seeded catalog size = %d, want 10", c.Len())
	}

	products := c.Products()
	for i, p := range products {
		if p.ID != int64(i+1) {
			t.Errorf("product %d: ID = %d, want %d", i, p.ID, i+1)
		}
		if p.IssueNumber != i+1 {
			t.Errorf("product %d: issue = %d, want %d", i, p.IssueNumber, i+1)
		}
		if p.Title != products[0].Title || p.Author != products[0].Author {
			t.Errorf("product %d: title/author differ from issue 1", i)
		}
		if !p.UnitPrice.Equal(products[0].UnitPrice) {
			t.Errorf("product %d: price %s differs from issue 1", i, p.UnitPrice)
		}
	}

	// Stock varies across the run; at least one issue is sold out.
	soldOut := false
	for _, p := range products {
		if p.CopiesAvailable == 0 {
			soldOut = true
		}
	}
	if !soldOut {
		t.Errorf("expected at least one sold-out issue in the default seed")
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	data := `[
		{"title": "Back Issue", "author": "B. Writer", "release_date": 20240601, "issue_number": 12, "unit_price": "1.99", "copies_available": 4},
		{"id": 30, "title": "Back Issue", "author": "B. Writer", "release_date": 20240701, "issue_number": 13, "unit_price": "1.99", "copies_available": 2}
	]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	c := New(identity.NewAllocator())
	if err := c.LoadFrom(FileSource(path)); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("catalog size = %d, want 2", c.Len())
	}

	first, _ := c.FindByID(1)
	if first.IssueNumber != 12 {
		t.Errorf("first record issue = %d, want 12", first.IssueNumber)
	}
	if !first.UnitPrice.Equal(decimal.NewFromFloat(1.99)) {
		t.Errorf("first record price = %s, want 1.99", first.UnitPrice)
	}

	// The record that brought its own ID keeps it.
	if _, ok := c.FindByID(30); !ok {
		t.Errorf("record with supplied ID 30 not found")
	}

	// A later add must not collide with the claimed ID.
	added := c.Add(testIssue(14, 1))
	if added.ID != 31 {
		t.Errorf("ID after claimed 30 = %d, want 31", added.ID)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	c := New(identity.NewAllocator())
	if err := c.LoadFrom(FileSource(filepath.Join(t.TempDir(), "absent.json"))); err == nil {
		t.Fatalf("LoadFrom with missing file: expected error")
	}
}
