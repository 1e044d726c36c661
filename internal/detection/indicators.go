package detection

import "github.com/gabapcia/etiwatch/internal/pkg/types"

// Indicators is the immutable set of known ETI signals.
//
// It is built once at startup and shared read-only by every classification,
// so it needs no locking.
type Indicators struct {
	paymentAmounts types.Set[int64]  // canonical ETI payment sizes, in lamports
	programIDs     types.Set[string] // programs whose invocation counts as evidence
	knownAddresses types.Set[string] // accounts whose presence counts as evidence
}

// NewIndicators builds an Indicators value from the given lists. Any list may
// be empty, which disables the corresponding rule.
func NewIndicators(paymentAmounts []int64, programIDs, knownAddresses []string) Indicators {
	return Indicators{
		paymentAmounts: types.NewSet(paymentAmounts...),
		programIDs:     types.NewSet(programIDs...),
		knownAddresses: types.NewSet(knownAddresses...),
	}
}

// PaymentAmounts returns the known payment amounts in ascending order.
func (i Indicators) PaymentAmounts() []int64 {
	return types.Sorted(i.paymentAmounts)
}

// ProgramIDs returns the known program ids in ascending order.
func (i Indicators) ProgramIDs() []string {
	return types.Sorted(i.programIDs)
}

// KnownAddresses returns the known addresses in ascending order.
func (i Indicators) KnownAddresses() []string {
	return types.Sorted(i.knownAddresses)
}

// Scoring holds the rule weights and the decision thresholds.
//
// The values have no probabilistic meaning; they are tuning constants.
type Scoring struct {
	PaymentAmountWeight    float64 // R1: TRANSFER of a known payment amount
	MintActivityWeight     float64 // R2: any TOKEN_MINT event
	ConfirmedListingWeight float64 // R2b: the minted token has active DexScreener orders
	MetadataProgramWeight  float64 // R3: a known program was invoked
	KnownAddressWeight     float64 // R4: a known account was touched, per matching account

	Threshold      float64 // a batch is positive iff confidence > Threshold
	HighConfidence float64 // notifications get the high emphasis marker iff confidence > HighConfidence
}

// DefaultScoring returns the production weights and thresholds.
func DefaultScoring() Scoring {
	return Scoring{
		PaymentAmountWeight:    0.4,
		MintActivityWeight:     0.2,
		ConfirmedListingWeight: 0.6,
		MetadataProgramWeight:  0.3,
		KnownAddressWeight:     0.5,
		Threshold:              0.5,
		HighConfidence:         0.8,
	}
}
