package detection

import (
	"context"

	"github.com/gabapcia/etiwatch/internal/pkg/logger"
)

// ListingChecker queries an external registry for paid promotion orders of a
// token.
type ListingChecker interface {
	// HasActiveListing reports whether mint has at least one active order.
	//
	// Implementations must bound the call in time. Any transport failure,
	// timeout or non-success status is returned as an error; the caller
	// decides how to degrade.
	HasActiveListing(ctx context.Context, mint string) (bool, error)
}

// nopListingChecker never confirms anything. Used when no registry is wired.
type nopListingChecker struct{}

var _ ListingChecker = nopListingChecker{}

func (nopListingChecker) HasActiveListing(context.Context, string) (bool, error) {
	return false, nil
}

// confirmListing asks the registry about mint and degrades every failure to
// "not confirmed". Exactly one registry call is made per invocation.
func (s *service) confirmListing(ctx context.Context, mint string) bool {
	active, err := s.listingChecker.HasActiveListing(ctx, mint)
	if err != nil {
		s.metrics.recordLookup(ctx, outcomeError)
		logger.Warn(ctx, "listing lookup failed, treating token as unconfirmed",
			"token.mint", mint,
			"error", err,
		)
		return false
	}

	if active {
		s.metrics.recordLookup(ctx, outcomeConfirmed)
	} else {
		s.metrics.recordLookup(ctx, outcomeUnconfirmed)
	}

	return active
}
