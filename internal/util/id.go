package util

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID returns a prefixed random identifier, e.g. "act_2f1c...".
// The prefix makes IDs self-describing in logs and API payloads.
func NewID(prefix string) string {
	u := uuid.New()
	return prefix + "_" + hex.EncodeToString(u[:])
}
