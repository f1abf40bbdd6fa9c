package shell

import (
	"log"
	"runtime/debug"
	"time"
)

// Request is a single parsed command line.
type Request struct {
	ID   string
	Name string
	Args []string
}

type Handler interface {
	Serve(res *Response, req *Request)
}

type HandlerFunc func(res *Response, req *Request)

func (f HandlerFunc) Serve(res *Response, req *Request) {
	f(res, req)
}

type Middleware func(Handler) Handler

// Chain wraps h so the first middleware runs outermost.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// CommandIDMiddleware tags each command with an id reported in JSON meta
// and in the access log.
func CommandIDMiddleware(newID func() string) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(res *Response, req *Request) {
			if req.ID == "" {
				req.ID = newID()
			}
			res.commandID = req.ID
			next.Serve(res, req)
		})
	}
}

func AccessLogMiddleware(logger *log.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(res *Response, req *Request) {
			start := time.Now()

			next.Serve(res, req)

			logger.Printf("command name=%s args=%d status=%s duration_ms=%d command_id=%s",
				req.Name,
				len(req.Args),
				res.status,
				time.Since(start).Milliseconds(),
				req.ID,
			)
		})
	}
}

func RecoveryMiddleware(logger *log.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(res *Response, req *Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Printf("panic recovered: command_id=%s error=%v stack=%s", req.ID, err, string(debug.Stack()))

					if !res.written {
						res.Error(CodeInternal, "An internal error occurred", nil)
					}
				}
			}()
			next.Serve(res, req)
		})
	}
}
