package catalog

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"librarycatalog/internal/book"
)

var (
	genText = rapid.StringMatching(`[A-Za-z ]{0,12}`)
	genID   = rapid.SampledFrom([]string{"001", "002", "003", "004", "005", "006"})
)

func modelSearch(model []book.Book, query string, field func(book.Book) string) []book.Book {
	out := []book.Book{}
	for _, b := range model {
		if strings.Contains(strings.ToLower(field(b)), strings.ToLower(query)) {
			out = append(out, b)
		}
	}
	return out
}

// TestCatalog_MatchesModel drives a catalog and a plain slice through the
// same random sequence of operations and checks they never diverge.
func TestCatalog_MatchesModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New(nil)
		var model []book.Book

		indexOf := func(id string) int {
			return slices.IndexFunc(model, func(b book.Book) bool { return b.ID() == id })
		}

		t.Repeat(map[string]func(*rapid.T){
			"add": func(t *rapid.T) {
				b := book.New(genText.Draw(t, "title"), genText.Draw(t, "author"), genID.Draw(t, "id"))
				err := c.Add(b)
				if indexOf(b.ID()) >= 0 {
					if !errors.Is(err, ErrDuplicateIdentifier) {
						t.Fatalf("expected duplicate error for %q, got %v", b.ID(), err)
					}
					return
				}
				if err != nil {
					t.Fatalf("add %q: %v", b.ID(), err)
				}
				model = append(model, b)
			},
			"remove": func(t *rapid.T) {
				id := genID.Draw(t, "id")
				err := c.Remove(id)
				i := indexOf(id)
				if i < 0 {
					if !errors.Is(err, ErrNotFound) {
						t.Fatalf("expected not found for %q, got %v", id, err)
					}
					return
				}
				if err != nil {
					t.Fatalf("remove %q: %v", id, err)
				}
				model = slices.Delete(model, i, i+1)
			},
			"search": func(t *rapid.T) {
				query := rapid.StringMatching(`[A-Za-z ]{0,3}`).Draw(t, "query")
				require.Equal(t, modelSearch(model, query, book.Book.Title), c.SearchByTitle(query))
				require.Equal(t, modelSearch(model, query, book.Book.Author), c.SearchByAuthor(query))
			},
			"get": func(t *rapid.T) {
				id := genID.Draw(t, "id")
				got, err := c.Get(id)
				if i := indexOf(id); i >= 0 {
					require.NoError(t, err)
					require.Equal(t, model[i], got)
					return
				}
				require.True(t, errors.Is(err, ErrNotFound))
			},
			"": func(t *rapid.T) {
				want := model
				if want == nil {
					want = []book.Book{}
				}
				require.Equal(t, want, c.List())
				require.Equal(t, len(model), c.Len())
			},
		})
	})
}

// TestCatalog_SearchIsPure checks that searching never changes the catalog.
func TestCatalog_SearchIsPure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New(nil)
		n := rapid.IntRange(0, 6).Draw(t, "n")
		for i := 0; i < n; i++ {
			_ = c.Add(book.New(genText.Draw(t, "title"), genText.Draw(t, "author"), genID.Draw(t, "id")))
		}
		before := c.List()

		c.SearchByTitle(genText.Draw(t, "title query"))
		c.SearchByAuthor(genText.Draw(t, "author query"))

		require.Equal(t, before, c.List())
	})
}
