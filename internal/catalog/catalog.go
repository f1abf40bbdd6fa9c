package catalog

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"librarycatalog/internal/book"
)

var (
	// ErrDuplicateIdentifier is returned by Add when the identifier is already stored.
	ErrDuplicateIdentifier = errors.New("a book with this identifier already exists")
	// ErrNotFound is returned when no book has the requested identifier.
	ErrNotFound = errors.New("book not found in catalog")
)

// Catalog is an insertion-ordered collection of books keyed by identifier.
// It is not safe for concurrent use.
type Catalog struct {
	books map[string]book.Book
	order []string
	out   io.Writer
}

// New creates an empty catalog. Confirmation messages are written to out;
// a nil writer discards them.
func New(out io.Writer) *Catalog {
	if out == nil {
		out = io.Discard
	}
	return &Catalog{
		books: make(map[string]book.Book),
		out:   out,
	}
}

// SetOutput sets the destination for confirmation messages.
func (c *Catalog) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.out = w
}

// Add stores b. The catalog is left unchanged when the identifier exists.
func (c *Catalog) Add(b book.Book) error {
	if _, ok := c.books[b.ID()]; ok {
		return fmt.Errorf("add %q: %w", b.ID(), ErrDuplicateIdentifier)
	}
	c.books[b.ID()] = b
	c.order = append(c.order, b.ID())
	fmt.Fprintf(c.out, "Book '%s' by %s added successfully.\n", b.Title(), b.Author())
	return nil
}

// Get returns the book stored under id.
func (c *Catalog) Get(id string) (book.Book, error) {
	b, ok := c.books[id]
	if !ok {
		return book.Book{}, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	return b, nil
}

// SearchByTitle returns books whose title contains query, ignoring case.
// An empty query matches every book.
func (c *Catalog) SearchByTitle(query string) []book.Book {
	return c.filter(query, book.Book.Title)
}

// SearchByAuthor returns books whose author contains query, ignoring case.
// An empty query matches every book.
func (c *Catalog) SearchByAuthor(query string) []book.Book {
	return c.filter(query, book.Book.Author)
}

func (c *Catalog) filter(query string, field func(book.Book) string) []book.Book {
	m := newMatcher(query)
	out := []book.Book{}
	for _, id := range c.order {
		b := c.books[id]
		if m.match(field(b)) {
			out = append(out, b)
		}
	}
	return out
}

// Remove deletes the book stored under id. The catalog is left unchanged
// when id is absent.
func (c *Catalog) Remove(id string) error {
	if _, ok := c.books[id]; !ok {
		return fmt.Errorf("remove %q: %w", id, ErrNotFound)
	}
	delete(c.books, id)
	c.order = slices.DeleteFunc(c.order, func(v string) bool { return v == id })
	fmt.Fprintf(c.out, "Book with ID '%s' has been removed from the catalog.\n", id)
	return nil
}

// List returns a snapshot of every book in insertion order.
func (c *Catalog) List() []book.Book {
	if len(c.order) == 0 {
		fmt.Fprintln(c.out, "The catalog is empty.")
		return []book.Book{}
	}
	out := make([]book.Book, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.books[id])
	}
	return out
}

// Len returns the number of stored books.
func (c *Catalog) Len() int {
	return len(c.order)
}
