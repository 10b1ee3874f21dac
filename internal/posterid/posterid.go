// Package posterid derives the per-day pseudonymous label shown next to
// anonymous posts. The label lets readers correlate posts from one submitter
// within a single UTC day without revealing the address behind them.
package posterid

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Length of the rendered label in hex characters.
const Length = 9

// Derive returns the poster label for a submitter address and post timestamp.
// Same address + same UTC calendar day yields the same label; the label
// rolls over at UTC midnight. There is deliberately no pepper: labels must
// be reproducible across processes and restarts.
//
// Derive is total - an empty or malformed address is hashed as opaque text.
// The label is a courtesy pseudonym, not a security boundary.
func Derive(submitterAddress string, createdAt time.Time) string {
	day := createdAt.UTC().Format("2006-01-02")
	sum := sha256.Sum256([]byte(submitterAddress + "-" + day))
	return strings.ToUpper(hex.EncodeToString(sum[:])[:Length])
}
