package shell

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"librarycatalog/internal/book"
	"librarycatalog/internal/validation"
)

// Format selects how command results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Error codes reported for failed commands.
const (
	CodeDuplicateIdentifier = "DUPLICATE_IDENTIFIER"
	CodeNotFound            = "NOT_FOUND"
	CodeValidation          = "VALIDATION_ERROR"
	CodeUnknownCommand      = "UNKNOWN_COMMAND"
	CodeBadRequest          = "BAD_REQUEST"
	CodeInternal            = "INTERNAL_ERROR"
)

const statusOK = "OK"

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
	Meta    interface{}       `json:"meta,omitempty"`
}

type ErrorResponseBody struct {
	Code    string                       `json:"code"`
	Message string                       `json:"message"`
	Details []validation.ValidationError `json:"details,omitempty"`
}

// texter is implemented by results that render themselves in text mode.
type texter interface {
	Text() string
}

// Response writes the outcome of a single command.
type Response struct {
	w         io.Writer
	format    Format
	commandID string
	status    string
	written   bool
	quit      bool
}

func newResponse(w io.Writer, format Format) *Response {
	return &Response{w: w, format: format}
}

func (r *Response) buildMeta(customMeta map[string]interface{}) interface{} {
	if r.commandID == "" && customMeta == nil {
		return nil
	}
	meta := make(map[string]interface{})
	if r.commandID != "" {
		meta["command_id"] = r.commandID
	}
	for k, v := range customMeta {
		meta[k] = v
	}
	return meta
}

// Success reports a successful command. meta may be nil.
func (r *Response) Success(data interface{}, meta map[string]interface{}) {
	r.status = statusOK
	r.written = true
	if r.format == FormatJSON {
		json.NewEncoder(r.w).Encode(SuccessResponse{
			Success: true,
			Data:    data,
			Meta:    r.buildMeta(meta),
		})
		return
	}
	if text := renderText(data, meta); text != "" {
		fmt.Fprintln(r.w, text)
	}
}

// Error reports a failed command.
func (r *Response) Error(code string, message string, details []validation.ValidationError) {
	r.status = code
	r.written = true
	if r.format == FormatJSON {
		json.NewEncoder(r.w).Encode(ErrorResponse{
			Success: false,
			Error: ErrorResponseBody{
				Code:    code,
				Message: message,
				Details: details,
			},
			Meta: r.buildMeta(nil),
		})
		return
	}
	if len(details) > 0 {
		message += " (" + validation.Join(details) + ")"
	}
	fmt.Fprintf(r.w, "Error [%s]: %s\n", code, message)
}

// EndSession asks the shell to stop after this command.
func (r *Response) EndSession() {
	r.quit = true
}

func renderText(data interface{}, meta map[string]interface{}) string {
	switch v := data.(type) {
	case nil:
		return ""
	case texter:
		return v.Text()
	case book.Book:
		return v.String()
	case []book.Book:
		lines := make([]string, 0, len(v)+1)
		for _, b := range v {
			lines = append(lines, b.String())
		}
		if page, ok := meta["page"]; ok {
			if meta["total"] != 0 {
				lines = append(lines, fmt.Sprintf("-- page %v of %v (%v books)", page, meta["total_pages"], meta["total"]))
			}
		} else if len(v) == 0 {
			return "No books found."
		}
		return strings.Join(lines, "\n")
	default:
		return fmt.Sprint(v)
	}
}
