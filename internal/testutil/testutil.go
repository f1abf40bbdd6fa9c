package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"librarycatalog/internal/book"
)

// PythonProgramming and DataScience are the two books most tests start from.
var (
	PythonProgramming = book.New("Python Programming", "John Doe", "001")
	DataScience       = book.New("Data Science with Python", "Jane Smith", "002")
	MLBasics          = book.New("Machine Learning Basics", "Sam Brown", "003")
)

// SeedDocument is a seed file holding PythonProgramming and DataScience.
const SeedDocument = `books:
  - id: "001"
    title: Python Programming
    author: John Doe
  - id: "002"
    title: Data Science with Python
    author: Jane Smith
`

// WriteSeedFile writes SeedDocument to a temp dir and returns its path.
func WriteSeedFile(t testing.TB) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "books.yaml")
	if err := os.WriteFile(p, []byte(SeedDocument), 0644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return p
}
