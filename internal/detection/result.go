package detection

import "time"

// Evidence tags, one appended per triggered rule instance.
const (
	EvidencePaymentAmount    = "eti_payment_amount"
	EvidenceMintActivity     = "token_mint_activity"
	EvidenceConfirmedListing = "confirmed_eti"
	EvidenceMetadataProgram  = "metadata_program"
	EvidenceKnownAddress     = "dexscreener_address"

	evidenceTestMode = "test_mode"
)

// Result is the outcome of classifying one batch.
type Result struct {
	Confidence      float64  `json:"confidence"`
	Positive        bool     `json:"positive"`
	Evidence        []string `json:"evidence"`
	TokenIdentifier *string  `json:"tokenIdentifier,omitempty"` // last mint seen on a TOKEN_MINT event
	PaymentAmount   *int64   `json:"paymentAmount,omitempty"`   // last matching payment amount, in lamports
}

func newResult() Result {
	return Result{Evidence: make([]string, 0)}
}

// add records one triggered rule instance.
func (r *Result) add(tag string, weight float64) {
	r.Evidence = append(r.Evidence, tag)
	r.Confidence += weight
}

// Report is what Process returns for one batch.
type Report struct {
	Result    Result `json:"result"`
	Message   string `json:"message,omitempty"` // rendered notification, empty when negative
	Delivered bool   `json:"delivered"`         // the messaging channel acknowledged the notification
}

// Detection is the record emitted to the DetectionPublisher for every
// positive batch.
type Detection struct {
	ID         string    `json:"id"`
	DetectedAt time.Time `json:"detectedAt"`
	EventCount int       `json:"eventCount"`
	Delivered  bool      `json:"delivered"`
	Result
}
