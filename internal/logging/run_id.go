package logging

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// GenerateRunID creates an identifier for one process run, attached to every
// log line so runs sharing the log file can be told apart.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 random hex chars)
// Example: 20251217_205106_a7b3
func GenerateRunID() string {
	now := time.Now()
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return now.Format("20060102_150405") + "_" + hex.EncodeToString(random)
}
