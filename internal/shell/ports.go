package shell

import (
	"librarycatalog/internal/book"
)

//go:generate mockgen -source=ports.go -destination=mock_store_test.go -package=shell

// Store defines the catalog operations the shell drives.
type Store interface {
	Add(b book.Book) error
	Get(id string) (book.Book, error)
	SearchByTitle(query string) []book.Book
	SearchByAuthor(query string) []book.Book
	Remove(id string) error
	List() []book.Book
	Len() int
}
