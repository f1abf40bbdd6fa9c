package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"librarycatalog/internal/book"
	"librarycatalog/internal/catalog"
	"librarycatalog/internal/validation"
)

type command struct {
	Name  string `json:"name"`
	Usage string `json:"usage"`
	Help  string `json:"help"`
}

var commands = []command{
	{"add", "add <title> <author> [id]", "add a book; a UUID is assigned when id is omitted"},
	{"get", "get <id>", "show the book with the given identifier"},
	{"title", "title [query]", "find books whose title contains query (case-insensitive; quote to keep spacing)"},
	{"author", "author [query]", "find books whose author contains query (case-insensitive; quote to keep spacing)"},
	{"remove", "remove <id>", "remove the book with the given identifier (also: rm)"},
	{"list", "list [page] [page_size]", "list books in insertion order (also: ls)"},
	{"count", "count", "show how many books are stored"},
	{"help", "help", "show this help (also: ?)"},
	{"quit", "quit", "end the session (also: exit)"},
}

type addInput struct {
	Title  string `json:"title" validate:"notblank"`
	Author string `json:"author" validate:"notblank"`
	ID     string `json:"id" validate:"omitempty,identifier"`
}

type addedResult struct {
	ID string `json:"id"`
}

func (r addedResult) Text() string { return "Identifier: " + r.ID }

// removedResult has no text form; the catalog already confirms removals.
type removedResult struct {
	ID string `json:"id"`
}

func (r removedResult) Text() string { return "" }

type countResult struct {
	Count int `json:"count"`
}

func (r countResult) Text() string {
	if r.Count == 1 {
		return "1 book in catalog"
	}
	return fmt.Sprintf("%d books in catalog", r.Count)
}

type helpResult []command

func (r helpResult) Text() string {
	var sb strings.Builder
	sb.WriteString("Commands:")
	for _, c := range r {
		fmt.Fprintf(&sb, "\n  %-26s %s", c.Usage, c.Help)
	}
	return sb.String()
}

// searchQuery rebuilds a query from its words. Unquoted words are joined by
// a single space, so runs of whitespace only survive inside quotes.
func searchQuery(args []string) string {
	return strings.Join(args, " ")
}

func (s *Shell) route(res *Response, req *Request) {
	switch req.Name {
	case "add":
		s.add(res, req)
	case "get":
		s.get(res, req)
	case "title":
		res.Success(s.store.SearchByTitle(searchQuery(req.Args)), nil)
	case "author":
		res.Success(s.store.SearchByAuthor(searchQuery(req.Args)), nil)
	case "remove", "rm":
		s.remove(res, req)
	case "list", "ls":
		s.list(res, req)
	case "count":
		res.Success(countResult{Count: s.store.Len()}, nil)
	case "help", "?":
		res.Success(helpResult(commands), nil)
	case "quit", "exit":
		res.Success(nil, nil)
		res.EndSession()
	default:
		res.Error(CodeUnknownCommand, fmt.Sprintf("unknown command %q, try help", req.Name), nil)
	}
}

func (s *Shell) add(res *Response, req *Request) {
	if len(req.Args) < 2 || len(req.Args) > 3 {
		res.Error(CodeBadRequest, "usage: add <title> <author> [id]", nil)
		return
	}
	in := addInput{Title: req.Args[0], Author: req.Args[1]}
	if len(req.Args) == 3 {
		in.ID = req.Args[2]
	}
	if errs := validation.ValidateStruct(in); errs != nil {
		res.Error(CodeValidation, "invalid book", errs)
		return
	}
	if in.ID == "" {
		in.ID = s.newID()
	}

	if err := s.store.Add(book.New(in.Title, in.Author, in.ID)); err != nil {
		writeStoreError(res, err)
		return
	}
	res.Success(addedResult{ID: in.ID}, nil)
}

func (s *Shell) get(res *Response, req *Request) {
	if len(req.Args) != 1 {
		res.Error(CodeBadRequest, "usage: get <id>", nil)
		return
	}
	b, err := s.store.Get(req.Args[0])
	if err != nil {
		writeStoreError(res, err)
		return
	}
	res.Success(b, nil)
}

func (s *Shell) remove(res *Response, req *Request) {
	if len(req.Args) != 1 {
		res.Error(CodeBadRequest, "usage: remove <id>", nil)
		return
	}
	if err := s.store.Remove(req.Args[0]); err != nil {
		writeStoreError(res, err)
		return
	}
	res.Success(removedResult{ID: req.Args[0]}, nil)
}

func (s *Shell) list(res *Response, req *Request) {
	var pageArg, pageSizeArg string
	if len(req.Args) > 0 {
		pageArg = req.Args[0]
	}
	if len(req.Args) > 1 {
		pageSizeArg = req.Args[1]
	}

	page, _ := strconv.Atoi(pageArg)
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(pageSizeArg)
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = s.pageSize
	}

	books := s.store.List()
	total := len(books)
	// page can be large enough for (page-1)*pageSize to overflow.
	start := total
	if page-1 <= total/pageSize {
		start = min((page-1)*pageSize, total)
	}
	end := min(start+pageSize, total)

	res.Success(books[start:end], map[string]interface{}{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

func writeStoreError(res *Response, err error) {
	switch {
	case errors.Is(err, catalog.ErrDuplicateIdentifier):
		res.Error(CodeDuplicateIdentifier, err.Error(), nil)
	case errors.Is(err, catalog.ErrNotFound):
		res.Error(CodeNotFound, err.Error(), nil)
	default:
		res.Error(CodeInternal, "Internal error", nil)
	}
}
