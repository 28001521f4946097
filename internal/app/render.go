package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/bft-labs/apiq/internal/domain"
)

const outFilePermissions = 0o644

// RenderOptions select the output mode.
type RenderOptions struct {
	OnlyStatus  bool
	ShowHeaders bool
	OutFile     string
	// Highlight colours structured bodies for a terminal.
	Highlight bool
}

// BodyKind tells how a response body will be printed.
type BodyKind int

const (
	// Raw bodies are printed byte for byte.
	Raw BodyKind = iota
	// Structured bodies are valid JSON and printed re-indented.
	Structured
)

// RenderedBody is the outcome of classifying a response body.
type RenderedBody struct {
	Kind  BodyKind
	Bytes []byte
}

// ClassifyBody returns the body re-indented with two spaces when it is valid
// JSON (member order is kept), and the untouched bytes otherwise.
func ClassifyBody(body []byte) RenderedBody {
	if !json.Valid(body) {
		return RenderedBody{Kind: Raw, Bytes: body}
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return RenderedBody{Kind: Raw, Bytes: body}
	}
	return RenderedBody{Kind: Structured, Bytes: buf.Bytes()}
}

// Renderer prints a ResolvedResponse.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render prints resp. Modes are applied in priority order: only-status stops
// after the code; show-headers prints the status line and headers; the body
// then goes to OutFile if set, otherwise to the output.
func (r *Renderer) Render(resp domain.ResolvedResponse, opts RenderOptions) error {
	if opts.OnlyStatus {
		_, err := fmt.Fprintln(r.out, resp.StatusCode)
		return err
	}

	if opts.ShowHeaders {
		if err := r.writeHead(resp); err != nil {
			return err
		}
	}

	if opts.OutFile != "" {
		if err := os.WriteFile(opts.OutFile, resp.Body, outFilePermissions); err != nil {
			return fmt.Errorf("%w: write response to %s: %w", domain.ErrIO, opts.OutFile, err)
		}
		_, err := fmt.Fprintf(r.out, "Response saved to %s\n", opts.OutFile)
		return err
	}

	body := ClassifyBody(resp.Body)
	if body.Kind == Structured && opts.Highlight {
		if err := quick.Highlight(r.out, string(body.Bytes), "json", "terminal256", "monokai"); err == nil {
			_, err = io.WriteString(r.out, "\n")
			return err
		}
	}
	return writeLine(r.out, body.Bytes)
}

func (r *Renderer) writeHead(resp domain.ResolvedResponse) error {
	if _, err := fmt.Fprintf(r.out, "%s %d %s\n", resp.Proto, resp.StatusCode, resp.StatusMessage); err != nil {
		return err
	}
	for _, h := range resp.Headers {
		if _, err := fmt.Fprintf(r.out, "%s: %s\n", h.Name, h.Value); err != nil {
			return err
		}
	}
	_, err := io.WriteString(r.out, "\n")
	return err
}
