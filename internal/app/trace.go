package app

import (
	"fmt"
	"io"

	"github.com/bft-labs/apiq/internal/domain"
)

// WriteTrace prints the request exactly as it will be sent: method and URL,
// every header in send order, then the body if there is one. Tokens are
// printed in plaintext.
func WriteTrace(w io.Writer, req domain.ResolvedRequest) error {
	if _, err := fmt.Fprintf(w, "> %s %s\n> Headers:\n", req.Method, req.URL); err != nil {
		return err
	}
	for _, h := range req.Headers {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", h.Name, h.Value); err != nil {
			return err
		}
	}
	if !req.HasBody {
		return nil
	}
	if _, err := fmt.Fprintln(w, "> Body:"); err != nil {
		return err
	}
	return writeLine(w, req.Body)
}

// writeLine writes b followed by a newline unless b already ends with one.
func writeLine(w io.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return err
	}
	if len(b) > 0 && b[len(b)-1] == '\n' {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}
