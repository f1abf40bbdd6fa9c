// Package shell implements a line-oriented command interpreter over a
// book catalog.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/shlex"
	"github.com/google/uuid"
)

const (
	DefaultPrompt   = "catalog> "
	DefaultPageSize = 20
	maxPageSize     = 100
)

type Options struct {
	// Out receives command results. Defaults to io.Discard.
	Out io.Writer
	// Logger receives diagnostics such as the per-command access log.
	Logger   *log.Logger
	Prompt   string
	Format   Format
	PageSize int
	// NewID generates identifiers for books added without one and for
	// command ids. Defaults to random UUIDs.
	NewID func() string
}

type Shell struct {
	store    Store
	out      io.Writer
	logger   *log.Logger
	prompt   string
	format   Format
	pageSize int
	newID    func() string
	handler  Handler
}

func New(store Store, opts Options) *Shell {
	s := &Shell{
		store:    store,
		out:      opts.Out,
		logger:   opts.Logger,
		prompt:   opts.Prompt,
		format:   opts.Format,
		pageSize: opts.PageSize,
		newID:    opts.NewID,
	}
	if s.out == nil {
		s.out = io.Discard
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	if s.format != FormatJSON {
		s.format = FormatText
	}
	if s.pageSize <= 0 || s.pageSize > maxPageSize {
		s.pageSize = DefaultPageSize
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.New().String() }
	}

	s.handler = Chain(HandlerFunc(s.route),
		CommandIDMiddleware(s.newID),
		AccessLogMiddleware(s.logger),
		RecoveryMiddleware(s.logger),
	)
	return s
}

// Run reads commands from in until quit, end of input or ctx is done.
// A cancelled context is returned as its error; quit and EOF return nil.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read command: %w", err)
					}
				default:
				}
				return ctx.Err()
			}
			if s.Exec(line) {
				return nil
			}
		}
	}
}

// Exec runs a single command line and reports whether the session should end.
func (s *Shell) Exec(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}

	res := newResponse(s.out, s.format)
	fields, err := shlex.Split(line)
	if err != nil {
		res.Error(CodeBadRequest, fmt.Sprintf("cannot parse command: %v", err), nil)
		return false
	}
	if len(fields) == 0 {
		return false
	}

	req := &Request{Name: strings.ToLower(fields[0]), Args: fields[1:]}
	s.handler.Serve(res, req)
	return res.quit
}
