package parser

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"

	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
)

// decodeHexBlob decodes a hex-encoded artifact blob, accepting an optional
// 0x prefix.
func decodeHexBlob(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if s == "" {
		return nil, fmt.Errorf("empty hex blob")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex blob: %w", err)
	}
	return b, nil
}

// ConvertProof converts a Groth16Proof document into a gnark-compatible Proof
// structure. Deserialization performs the curve and subgroup membership checks
// on every point, so a malformed or adversarial proof fails here.
func ConvertProof(proof *Groth16Proof) (*groth16_bn254.Proof, error) {
	raw, err := decodeHexBlob(proof.EncodedProof)
	if err != nil {
		return nil, fmt.Errorf("failed to decode proof: %w", err)
	}
	gnarkProof := &groth16_bn254.Proof{}
	if _, err := gnarkProof.ReadFrom(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to deserialize proof: %w", err)
	}
	return gnarkProof, nil
}

// ConvertVerifyingKey converts a Groth16VerifyingKey document into a
// gnark-compatible VerifyingKey structure, including the pairing
// precomputation gnark performs on read.
func ConvertVerifyingKey(vk *Groth16VerifyingKey) (*groth16_bn254.VerifyingKey, error) {
	raw, err := decodeHexBlob(vk.EncodedVkey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode verification key: %w", err)
	}
	gnarkVk := &groth16_bn254.VerifyingKey{}
	if _, err := gnarkVk.ReadFrom(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to deserialize verification key: %w", err)
	}
	return gnarkVk, nil
}

// ParsePublicInputs parses an array of strings representing public inputs into
// a slice of bn254fr.Element.
func ParsePublicInputs(publicSignals []string) ([]bn254fr.Element, error) {
	publicInputs := make([]bn254fr.Element, len(publicSignals))
	for i, s := range publicSignals {
		bi, err := stringToBigInt(s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse public input %d: %w", i, err)
		}
		publicInputs[i].SetBigInt(bi)
	}
	return publicInputs, nil
}
