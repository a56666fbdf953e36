package markup

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader io.Reader
	Writer io.Writer
	Width  int
	Theme  Theme
	// Rules defaults to DefaultRules when nil.
	Rules   []Rule
	Options []RenderOption
}

// Render reads Markdown from Reader, segments it with Rules and writes the
// styled result to Writer.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	text, err := ReadDocument(req.Reader, req.Options...)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	rules := req.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	out := NewANSIRenderer(req.Writer, req.Width, req.Theme, req.Options...)
	if err := out.WriteGroups(Parse(text, rules)); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("render: flush: %w", err)
	}
	return nil
}

// HTTPRenderRequest configures HTTPRender.
type HTTPRenderRequest struct {
	URL     string
	Client  *http.Client
	Writer  io.Writer
	Width   int
	Theme   Theme
	Rules   []Rule
	Options []RenderOption
}

// HTTPRender fetches Markdown over HTTP(S) and renders it like Render.
func HTTPRender(ctx context.Context, req HTTPRenderRequest) error {
	if req.URL == "" {
		return fmt.Errorf("render http: URL is required")
	}
	if req.Writer == nil {
		return fmt.Errorf("render http: Writer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return fmt.Errorf("render http: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return fmt.Errorf("render http: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("render http: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("render http: status %s", resp.Status)
	}
	return Render(RenderRequest{
		Reader:  resp.Body,
		Writer:  req.Writer,
		Width:   req.Width,
		Theme:   req.Theme,
		Rules:   req.Rules,
		Options: req.Options,
	})
}
