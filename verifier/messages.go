package verifier

import "strings"

// Fixed user-facing messages for the fault classes we recognize in the
// backend's diagnostic text.
const (
	msgInvalidCurvePoint = "The proof contains an invalid curve point (subgroup check failed). " +
		"This usually means the proof is malformed or corrupted."
	msgVerificationFailed = "The proof verification failed. " +
		"The proof may be invalid or not match the verification key."
	msgUnknownError = "Unknown verification error occurred"
)

// ExtractErrorMessage classifies the raw diagnostic text of a verification
// fault into a user-facing message. The backend's error vocabulary is not
// contractually stable, so this is a best-effort substring match with a
// generic fallback; unrecognized formats land in the fallback branch.
func ExtractErrorMessage(raw string) string {
	switch {
	case strings.Contains(raw, "invalid point: subgroup check failed"):
		return msgInvalidCurvePoint
	case strings.Contains(raw, "failed to verify proof"):
		return msgVerificationFailed
	}
	if raw == "" {
		return msgUnknownError
	}
	line, _, _ := strings.Cut(raw, "\n")
	return "Verification error: " + line
}
