package ports

import (
	"context"

	"github.com/bft-labs/apiq/internal/domain"
)

// RequestDispatcher performs exactly one outbound call for a resolved request.
type RequestDispatcher interface {
	// Dispatch sends req and returns the complete response.
	// Connection, TLS and timeout failures wrap domain.ErrTransport.
	Dispatch(ctx context.Context, req domain.ResolvedRequest) (domain.ResolvedResponse, error)
}
