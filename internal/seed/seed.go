// Package seed reads and writes YAML files used to pre-populate a catalog.
package seed

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"librarycatalog/internal/book"
	"librarycatalog/internal/validation"
)

// ErrInvalid is returned when a seed file entry fails validation.
var ErrInvalid = errors.New("invalid seed entry")

type File struct {
	Books []Entry `yaml:"books"`
}

type Entry struct {
	ID     string `yaml:"id" json:"id" validate:"identifier"`
	Title  string `yaml:"title" json:"title" validate:"notblank"`
	Author string `yaml:"author" json:"author" validate:"notblank"`
}

// Adder is the part of the catalog seeding needs.
type Adder interface {
	Add(b book.Book) error
}

// Decode parses a seed document. An empty document yields no books; a stream
// with more than one document is rejected.
func Decode(r io.Reader) ([]book.Book, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []book.Book{}, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("decode seed: %w", err)
		}
		return nil, errors.New("decode seed: unexpected second document")
	}

	books := make([]book.Book, 0, len(f.Books))
	for i, e := range f.Books {
		if errs := validation.ValidateStruct(e); errs != nil {
			return nil, fmt.Errorf("%w: books[%d]: %s", ErrInvalid, i, validation.Join(errs))
		}
		books = append(books, book.New(e.Title, e.Author, e.ID))
	}
	return books, nil
}

// Encode writes books as a seed document.
func Encode(w io.Writer, books []book.Book) error {
	f := File{Books: make([]Entry, 0, len(books))}
	for _, b := range books {
		f.Books = append(f.Books, Entry{ID: b.ID(), Title: b.Title(), Author: b.Author()})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode seed: %w", err)
	}
	return enc.Close()
}

// Apply adds books to c in order and stops at the first failure. It returns
// the number of books added.
func Apply(c Adder, books []book.Book) (int, error) {
	for i, b := range books {
		if err := c.Add(b); err != nil {
			return i, fmt.Errorf("seed book %d: %w", i, err)
		}
	}
	return len(books), nil
}

// LoadFile decodes the seed file at path and applies it to c.
func LoadFile(c Adder, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	books, err := Decode(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return Apply(c, books)
}

var (
	words = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	firstNames = []string{"John", "Jane", "Sam", "Ada", "Alan", "Grace", "Linus", "Margaret", "Ken", "Barbara"}
	lastNames  = []string{"Doe", "Smith", "Brown", "Lovelace", "Turing", "Hopper", "Torvalds", "Hamilton", "Thompson", "Liskov"}
)

// Generate returns n synthetic books with identifiers BK-00000001 upward.
func Generate(n int, rnd *rand.Rand) []book.Book {
	books := make([]book.Book, 0, n)
	for i := 0; i < n; i++ {
		title := fmt.Sprintf("%s of %s", pick(rnd, words), pick(rnd, words))
		author := pick(rnd, firstNames) + " " + pick(rnd, lastNames)
		books = append(books, book.New(title, author, fmt.Sprintf("BK-%08d", i+1)))
	}
	return books
}

func pick(rnd *rand.Rand, from []string) string {
	return from[rnd.Intn(len(from))]
}
