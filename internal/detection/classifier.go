package detection

import (
	"context"
	"fmt"

	"github.com/gabapcia/etiwatch/internal/pkg/logger"
)

// Classify scores events against the indicator rules.
//
// Rules are evaluated independently for every event and their weights are
// summed without normalization, so confidence may exceed 1. The only I/O is
// one listing lookup per TOKEN_MINT event carrying a mint. A panic raised
// while scoring is recovered into a zero-confidence negative result.
func (s *service) Classify(ctx context.Context, events []Event) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "classification aborted, discarding partial result",
				"batch.events", len(events),
				"error", fmt.Sprint(r),
			)
			result = newResult()
		}
	}()

	result = newResult()
	for i := range events {
		s.applyRules(ctx, &events[i], &result)
	}

	result.Positive = result.Confidence > s.scoring.Threshold
	return result
}

// applyRules evaluates every rule against a single event.
func (s *service) applyRules(ctx context.Context, ev *Event, result *Result) {
	switch ev.Type {
	case TypeTransfer:
		// R1
		if ev.Transfer != nil && ev.Transfer.Amount != nil && s.indicators.paymentAmounts.Contains(*ev.Transfer.Amount) {
			amount := *ev.Transfer.Amount
			result.add(EvidencePaymentAmount, s.scoring.PaymentAmountWeight)
			result.PaymentAmount = &amount
		}

	case TypeTokenMint:
		// R2
		result.add(EvidenceMintActivity, s.scoring.MintActivityWeight)

		// R2b
		if ev.TokenTransfer != nil && ev.TokenTransfer.Mint != "" {
			mint := ev.TokenTransfer.Mint
			result.TokenIdentifier = &mint

			if s.confirmListing(ctx, mint) {
				result.add(EvidenceConfirmedListing, s.scoring.ConfirmedListingWeight)
			}
		}
	}

	// R3
	if ev.ProgramInfo != nil && s.indicators.programIDs.Contains(ev.ProgramInfo.ProgramID) {
		result.add(EvidenceMetadataProgram, s.scoring.MetadataProgramWeight)
	}

	// R4
	for _, acc := range ev.AccountData {
		if s.indicators.knownAddresses.Contains(acc.Account) {
			result.add(EvidenceKnownAddress, s.scoring.KnownAddressWeight)
		}
	}
}
