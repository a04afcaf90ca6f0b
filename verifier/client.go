package verifier

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"

	"github.com/twinelabs/solana-proof-verifier/parser"
)

// Mode selects how the client performs verification. It follows the SP1
// prover modes: cpu, cuda and network all verify locally with the full
// pairing check, mock performs only the structural and consistency checks.
type Mode string

const (
	ModeCPU     Mode = "cpu"
	ModeCUDA    Mode = "cuda"
	ModeNetwork Mode = "network"
	ModeMock    Mode = "mock"
)

// proverEnvVar is the environment variable the SP1 stack uses to select the
// prover backend.
const proverEnvVar = "SP1_PROVER"

// Client is a handle to the proving-system backend, built once from the
// process environment and used for a single verification call.
type Client struct {
	mode Mode
	log  zerolog.Logger
}

// NewClientFromEnv constructs a Client from the SP1_PROVER environment
// variable. An unset variable selects cpu; an unrecognized value is an error.
func NewClientFromEnv() (*Client, error) {
	mode := Mode(os.Getenv(proverEnvVar))
	switch mode {
	case "":
		mode = ModeCPU
	case ModeCPU, ModeCUDA, ModeNetwork, ModeMock:
	default:
		return nil, fmt.Errorf("unrecognized %s value %q", proverEnvVar, string(mode))
	}
	return &Client{
		mode: mode,
		log:  log.With().Str("prover", string(mode)).Logger(),
	}, nil
}

// Mode returns the prover mode the client was built with.
func (c *Client) Mode() Mode {
	return c.mode
}

// Verify checks a Groth16 proof against a verification key. The artifacts are
// deserialized into gnark structures, the proof's committed vkey hash is
// checked against the key file, and the pairing equation is verified. In mock
// mode the pairing check is skipped.
func (c *Client) Verify(proof *parser.Groth16Proof, vk *parser.Groth16VerifyingKey) error {
	gnarkVk, err := parser.ConvertVerifyingKey(vk)
	if err != nil {
		return err
	}
	gnarkProof, err := parser.ConvertProof(proof)
	if err != nil {
		return err
	}
	publicInputs, err := parser.ParsePublicInputs(proof.PublicInputs)
	if err != nil {
		return err
	}

	if err := checkVkeyHash(proof, vk); err != nil {
		return err
	}

	if c.mode == ModeMock {
		c.log.Warn().Msg("mock prover selected, skipping pairing check")
		return nil
	}

	c.log.Info().Int("public_inputs", len(publicInputs)).Msg("performing verification")
	if err := groth16_bn254.Verify(gnarkProof, gnarkVk, publicInputs); err != nil {
		return fmt.Errorf("failed to verify proof: %w", err)
	}
	return nil
}

// checkVkeyHash enforces that the program vkey hash in the key file matches
// the hash the proof commits to as its first public input. Either side may be
// absent, in which case the check is skipped.
func checkVkeyHash(proof *parser.Groth16Proof, vk *parser.Groth16VerifyingKey) error {
	if vk.VkeyHash == "" || len(proof.PublicInputs) == 0 {
		return nil
	}
	committed, err := parser.ParsePublicInputs([]string{proof.PublicInputs[0]})
	if err != nil {
		return err
	}
	expected, err := parser.ParsePublicInputs([]string{vk.VkeyHash})
	if err != nil {
		return fmt.Errorf("failed to parse vkey hash: %w", err)
	}
	if !committed[0].Equal(&expected[0]) {
		return fmt.Errorf("failed to verify proof: proof commits to vkey hash %s, key file declares %s",
			committed[0].String(), expected[0].String())
	}
	return nil
}
