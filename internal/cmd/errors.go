package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/wikilens/wiki/internal/core"
	"github.com/wikilens/wiki/internal/core/wikiapi"
	errwrap "github.com/wikilens/wiki/internal/errors"
)

var (
	errMissingCommand  = errors.New("missing command")
	errUnknownCommand  = errors.New("unknown command")
	errConfigNotLoaded = errors.New("config not loaded")
)

// apiFailure converts a wikiapi error into the envelope for its failure kind.
func apiFailure(ctx context.Context, op core.Operation, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, wikiapi.ErrInvalidEndpoint):
		return errwrap.WrapConfigInvalid(ctx, err, "invalid api endpoint")
	case errors.Is(err, wikiapi.ErrPageNotFound):
		return errwrap.WrapNotFound(ctx, err, "page not found")
	case errors.Is(err, wikiapi.ErrSchema):
		return errwrap.WrapValidationError(ctx, err, fmt.Sprintf("unexpected %s response from wikipedia", op))
	case errors.Is(err, wikiapi.ErrDecode):
		return errwrap.WrapDataProcessing(ctx, err, fmt.Sprintf("could not decode %s response", op))
	case errors.Is(err, wikiapi.ErrRequest),
		errors.Is(err, wikiapi.ErrHTTPStatus),
		errors.Is(err, wikiapi.ErrAPI):
		return errwrap.WrapExternalService(ctx, err, fmt.Sprintf("%s request to wikipedia failed", op))
	default:
		return errwrap.WrapInternal(ctx, err, fmt.Sprintf("%s failed", op))
	}
}
