package book

import (
	"encoding/json"
	"fmt"
)

// Book represents a single catalog entry. Fields are read through accessors
// so the identifier cannot change once the value is constructed.
type Book struct {
	id     string
	title  string
	author string
}

// New creates a book with the given title, author and identifier.
func New(title, author, id string) Book {
	return Book{id: id, title: title, author: author}
}

// ID returns the unique identifier of the book.
func (b Book) ID() string { return b.id }

// Title returns the book title.
func (b Book) Title() string { return b.title }

// Author returns the book author.
func (b Book) Author() string { return b.author }

// String formats the book the way the shell prints a single row.
func (b Book) String() string {
	return fmt.Sprintf("ID: %s, Title: '%s', Author: %s", b.id, b.title, b.author)
}

type bookJSON struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// MarshalJSON encodes the book as {"id","title","author"}.
func (b Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookJSON{ID: b.id, Title: b.title, Author: b.author})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (b *Book) UnmarshalJSON(data []byte) error {
	var v bookJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = New(v.Title, v.Author, v.ID)
	return nil
}
