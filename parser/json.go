// Package parser provides functions to parse SP1-exported Groth16 proofs and
// verification keys and convert them into the gnark structures required for
// verification.
package parser

import (
	"encoding/json"
	"fmt"
)

// UnmarshalGroth16ProofJSON parses the JSON-encoded proof data into a Groth16Proof struct.
func UnmarshalGroth16ProofJSON(data []byte) (*Groth16Proof, error) {
	var proof Groth16Proof
	if err := json.Unmarshal(data, &proof); err != nil {
		return nil, fmt.Errorf("failed to parse proof JSON: %w", err)
	}
	return &proof, nil
}

// UnmarshalGroth16VerifyingKeyJSON parses the JSON-encoded verification key data
// into a Groth16VerifyingKey struct.
func UnmarshalGroth16VerifyingKeyJSON(data []byte) (*Groth16VerifyingKey, error) {
	var vk Groth16VerifyingKey
	if err := json.Unmarshal(data, &vk); err != nil {
		return nil, fmt.Errorf("failed to parse verification key JSON: %w", err)
	}
	return &vk, nil
}
