// Package verifier wraps the gnark Groth16 backend behind a small client that
// mirrors the SP1 prover client: built from the environment, invoked once per
// process, with every abnormal termination of the backend contained and turned
// into an ordinary result value.
package verifier

// Status is the tri-state result of a verification attempt.
type Status int

const (
	// StatusVerified means the proof satisfies the verification key.
	StatusVerified Status = iota
	// StatusRejected means the backend returned an ordinary verification error.
	StatusRejected
	// StatusFault means the backend terminated abnormally and the fault was
	// contained by the boundary.
	StatusFault
)

// Outcome carries the result of a single verification attempt. Exactly one
// Outcome is produced per attempt regardless of how the backend finished.
type Outcome struct {
	Status Status
	// Err is the verification error for StatusRejected.
	Err error
	// Message is the user-facing classification of the fault text for
	// StatusFault.
	Message string
	// Raw is the unmodified diagnostic text for StatusFault.
	Raw string
}

// Verified reports whether the outcome is a successful verification.
func (o Outcome) Verified() bool {
	return o.Status == StatusVerified
}
