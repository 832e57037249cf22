package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/stretchr/testify/require"

	"github.com/wikilens/wiki/internal/core"
)

func TestWrapUsesRequestIDAsCorrelationID(t *testing.T) {
	ctx := core.WithRequestID(context.Background(), "req-123")

	envelope := WrapExternalService(ctx, stderrors.New("dial tcp: refused"), "wikipedia api unreachable")
	require.Equal(t, CodeExternalService, envelope.Code)
	require.Equal(t, "wikipedia api unreachable", envelope.Message)
	require.Equal(t, "req-123", envelope.CorrelationID)
	require.Equal(t, "dial tcp: refused", envelope.Context["wrapped_error"])
}

func TestWrapGeneratesCorrelationID(t *testing.T) {
	envelope := WrapInvalidInput(context.Background(), stderrors.New("bad"), "invalid page id")
	require.Len(t, envelope.CorrelationID, 36)
}

func TestEnsureEnvelope(t *testing.T) {
	original := WrapNotFound(context.Background(), stderrors.New("missing"), "page not found")
	require.Same(t, original, EnsureEnvelope(original))

	wrapped := fmt.Errorf("search: %w", original)
	require.Same(t, original, EnsureEnvelope(wrapped))

	plain := EnsureEnvelope(stderrors.New("boom"))
	require.Equal(t, CodeInternal, plain.Code)

	empty := EnsureEnvelope(nil)
	require.Equal(t, CodeInternal, empty.Code)
}

func TestExitCodeFor(t *testing.T) {
	ctx := context.Background()
	cause := stderrors.New("cause")

	require.Equal(t, foundry.ExitFailure, ExitCodeFor(WrapInvalidInput(ctx, cause, "bad")))
	require.Equal(t, foundry.ExitFailure, ExitCodeFor(WrapValidationError(ctx, cause, "shape")))
	require.Equal(t, foundry.ExitFailure, ExitCodeFor(WrapDataProcessing(ctx, cause, "decode")))
	require.Equal(t, foundry.ExitFailure, ExitCodeFor(WrapNotFound(ctx, cause, "missing")))
	require.Equal(t, foundry.ExitConfigInvalid, ExitCodeFor(WrapConfigInvalid(ctx, cause, "config")))
	require.Equal(t, foundry.ExitExternalServiceUnavailable, ExitCodeFor(WrapExternalService(ctx, cause, "net")))
	require.Equal(t, foundry.ExitFailure, ExitCodeFor(cause))
}
