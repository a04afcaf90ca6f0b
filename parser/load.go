package parser

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// LoadGroth16Proof reads and parses a proof JSON file. Read failures and
// parse failures are reported separately so the caller can tell a missing
// file from a malformed one.
func LoadGroth16Proof(path string) (*Groth16Proof, error) {
	log.Info().Str("path", path).Msg("loading proof")
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read proof file: %w", err)
	}
	return UnmarshalGroth16ProofJSON(data)
}

// LoadGroth16VerifyingKey reads and parses a verification key JSON file.
func LoadGroth16VerifyingKey(path string) (*Groth16VerifyingKey, error) {
	log.Info().Str("path", path).Msg("loading verification key")
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read verification key file: %w", err)
	}
	return UnmarshalGroth16VerifyingKeyJSON(data)
}
