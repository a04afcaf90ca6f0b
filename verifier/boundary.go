package verifier

import (
	"github.com/twinelabs/solana-proof-verifier/parser"
)

// panicPlaceholder is reported when a fault carries no textual payload.
const panicPlaceholder = "Unknown panic occurred during verification"

// SafeVerify runs Verify inside a fault boundary: a panic raised anywhere in
// the backend is intercepted and converted into a StatusFault outcome instead
// of terminating the process. Exactly one Outcome is returned per call.
func (c *Client) SafeVerify(proof *parser.Groth16Proof, vk *parser.Groth16VerifyingKey) Outcome {
	return c.safeCall(func() error {
		return c.Verify(proof, vk)
	})
}

func (c *Client) safeCall(fn func() error) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			raw := panicMessage(r)
			outcome = Outcome{
				Status:  StatusFault,
				Message: ExtractErrorMessage(raw),
				Raw:     raw,
			}
		}
	}()

	if err := fn(); err != nil {
		return Outcome{Status: StatusRejected, Err: err}
	}
	return Outcome{Status: StatusVerified}
}

// panicMessage extracts the textual payload of a recovered panic value.
// Payloads that carry no text map to a fixed placeholder.
func panicMessage(r any) string {
	switch v := r.(type) {
	case string:
		return v
	case error:
		return v.Error()
	default:
		return panicPlaceholder
	}
}
