// Package apitest provides an in-process stand-in for the Riot and Data Dragon APIs.
package apitest

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/valyala/fasthttp"
)

// Handler answers one request with a status and a body. A []byte or string body is sent
// verbatim; anything else is JSON encoded.
type Handler func(req *fasthttp.Request) (int, any)

type Upstream struct {
	mu     sync.Mutex
	routes map[string]Handler
	calls  []string
}

func New() *Upstream {
	return &Upstream{routes: make(map[string]Handler)}
}

// Handle registers h for an exact (still percent-encoded) request path.
func (u *Upstream) Handle(path string, h Handler) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.routes[path] = h
}

func (u *Upstream) JSON(path string, status int, body any) {
	u.Handle(path, func(*fasthttp.Request) (int, any) { return status, body })
}

func (u *Upstream) DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, _ time.Time) error {
	path := string(req.URI().PathOriginal())

	u.mu.Lock()
	u.calls = append(u.calls, path)
	h, ok := u.routes[path]
	u.mu.Unlock()

	if !ok {
		resp.SetStatusCode(fasthttp.StatusNotFound)
		resp.SetBodyString(`{"status":{"message":"Data not found","status_code":404}}`)
		return nil
	}

	status, body := h(req)
	resp.SetStatusCode(status)
	switch b := body.(type) {
	case nil:
	case []byte:
		resp.SetBody(b)
	case string:
		resp.SetBodyString(b)
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("apitest: failed to encode body for %s: %w", path, err)
		}
		resp.SetBody(encoded)
	}
	return nil
}

func (u *Upstream) Calls() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.calls...)
}

func (u *Upstream) CallCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.calls)
}

// CountOf returns how often path was requested.
func (u *Upstream) CountOf(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	n := 0
	for _, c := range u.calls {
		if c == path {
			n++
		}
	}
	return n
}
