package verifier

import (
	"fmt"

	"github.com/vocdoni/go-snark/parsers"
	snarkverifier "github.com/vocdoni/go-snark/verifier"
)

// VerifyCircom checks a circom/snarkjs Groth16 proof using go-snark, which
// implements the circom proof system natively. The arguments are the raw JSON
// contents of the proof, verification key and public signals files.
func (c *Client) VerifyCircom(proofJSON, vkJSON, publicJSON []byte) error {
	proof, err := parsers.ParseProof(proofJSON)
	if err != nil {
		return fmt.Errorf("failed to parse proof JSON: %w", err)
	}
	vk, err := parsers.ParseVk(vkJSON)
	if err != nil {
		return fmt.Errorf("failed to parse verification key JSON: %w", err)
	}
	public, err := parsers.ParsePublicSignals(publicJSON)
	if err != nil {
		return fmt.Errorf("failed to parse public signals JSON: %w", err)
	}

	if c.mode == ModeMock {
		c.log.Warn().Msg("mock prover selected, skipping pairing check")
		return nil
	}

	c.log.Info().Int("public_inputs", len(public)).Msg("performing verification")
	if !snarkverifier.Verify(vk, proof, public) {
		return fmt.Errorf("failed to verify proof: circom proof does not satisfy the verification key")
	}
	return nil
}

// SafeVerifyCircom is the fault-boundary form of VerifyCircom.
func (c *Client) SafeVerifyCircom(proofJSON, vkJSON, publicJSON []byte) Outcome {
	return c.safeCall(func() error {
		return c.VerifyCircom(proofJSON, vkJSON, publicJSON)
	})
}
