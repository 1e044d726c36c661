package detection

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	highConfidenceMarker = "🔥"
	standardMarker       = "⭐"

	sourceLabel = "Helius Webhook"

	// lamportsDecimals is the number of decimal places between lamports and SOL.
	lamportsDecimals = 9

	// DefaultLinkURL is the base of the public token page on DexScreener.
	DefaultLinkURL = "https://dexscreener.com/solana"
)

// Formatter renders a Result as a Telegram HTML message.
//
// Values coming from the chain are HTML-escaped before interpolation so a
// crafted mint can not inject markup into the message.
type Formatter struct {
	linkURL        string
	highConfidence float64
	now            func() time.Time
}

// NewFormatter returns a Formatter linking tokens under linkURL and using
// highConfidence as the emphasis threshold.
func NewFormatter(linkURL string, highConfidence float64) Formatter {
	return Formatter{
		linkURL:        strings.TrimRight(linkURL, "/"),
		highConfidence: highConfidence,
		now:            time.Now,
	}
}

// TokenLink returns the public page of mint.
func (f Formatter) TokenLink(mint string) string {
	return f.linkURL + "/" + url.PathEscape(mint)
}

// Format renders r. It has no side effects besides reading the clock.
func (f Formatter) Format(r Result) string {
	marker := standardMarker
	if r.Confidence > f.highConfidence {
		marker = highConfidenceMarker
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s <b>ETI Activity Detected</b>\n\n", marker)
	fmt.Fprintf(&b, "🎯 <b>Confidence:</b> %.1f%%\n", r.Confidence*100)
	fmt.Fprintf(&b, "📊 <b>Indicators:</b> %s\n", html.EscapeString(strings.Join(r.Evidence, ", ")))

	if r.TokenIdentifier != nil && *r.TokenIdentifier != "" {
		mint := *r.TokenIdentifier
		fmt.Fprintf(&b, "🪙 <b>Token:</b> <code>%s</code>\n", html.EscapeString(mint))
		fmt.Fprintf(&b, "🔗 <b>DexScreener:</b> <a href=\"%s\">View</a>\n", html.EscapeString(f.TokenLink(mint)))
	}

	if r.PaymentAmount != nil && *r.PaymentAmount != 0 {
		fmt.Fprintf(&b, "💰 <b>Payment:</b> %s SOL\n", formatSOL(*r.PaymentAmount))
	}

	fmt.Fprintf(&b, "\n🕐 <b>Time:</b> %s", f.now().Format(time.TimeOnly))
	fmt.Fprintf(&b, "\n⚡ <b>Source:</b> %s", sourceLabel)

	return b.String()
}

// formatSOL converts lamports to SOL, keeping one decimal for whole amounts
// (2000000000 -> "2.0") and full precision otherwise (2500000001 -> "2.500000001").
func formatSOL(lamports int64) string {
	sol := decimal.New(lamports, -lamportsDecimals)
	if sol.IsInteger() {
		return sol.StringFixed(1)
	}
	return sol.String()
}
