package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestUnmarshalGroth16ProofJSON(t *testing.T) {
	data := []byte(`{
		"public_inputs": ["123", "0xabc"],
		"encoded_proof": "0xdeadbeef",
		"raw_proof": "deadbeef"
	}`)
	proof, err := UnmarshalGroth16ProofJSON(data)
	if err != nil {
		t.Fatalf("failed to unmarshal proof: %v", err)
	}
	if len(proof.PublicInputs) != 2 || proof.PublicInputs[0] != "123" {
		t.Fatalf("unexpected public inputs: %v", proof.PublicInputs)
	}
	if proof.EncodedProof != "0xdeadbeef" {
		t.Fatalf("unexpected encoded proof: %q", proof.EncodedProof)
	}
}

func TestUnmarshalMalformedJSON(t *testing.T) {
	if _, err := UnmarshalGroth16ProofJSON([]byte(`{not json`)); err == nil {
		t.Fatal("malformed proof JSON accepted")
	}
	if _, err := UnmarshalGroth16VerifyingKeyJSON([]byte(`[`)); err == nil {
		t.Fatal("malformed verification key JSON accepted")
	}
}

func TestLoadGroth16ProofMissingFile(t *testing.T) {
	_, err := LoadGroth16Proof(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("missing proof file accepted")
	}
	if !strings.Contains(err.Error(), "failed to read proof file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadGroth16ProofMalformedFile(t *testing.T) {
	path := writeFile(t, "proof.json", []byte(".."))
	_, err := LoadGroth16Proof(path)
	if err == nil {
		t.Fatal("malformed proof file accepted")
	}
	if !strings.Contains(err.Error(), "failed to parse proof JSON") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadGroth16VerifyingKey(t *testing.T) {
	path := writeFile(t, "vkey.json", []byte(`{"vkey_hash": "0x1", "encoded_vkey": "00"}`))
	vk, err := LoadGroth16VerifyingKey(path)
	if err != nil {
		t.Fatalf("failed to load verification key: %v", err)
	}
	if vk.VkeyHash != "0x1" || vk.EncodedVkey != "00" {
		t.Fatalf("unexpected verification key: %+v", vk)
	}

	if _, err := LoadGroth16VerifyingKey(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("missing verification key file accepted")
	}
}

func TestConvertProofRejectsBadBlobs(t *testing.T) {
	for name, encoded := range map[string]string{
		"empty":      "",
		"non-hex":    "0xzz",
		"odd-length": "abc",
		"truncated":  "0xdeadbeef",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ConvertProof(&Groth16Proof{EncodedProof: encoded}); err == nil {
				t.Fatalf("blob %q accepted", encoded)
			}
		})
	}
}

func TestConvertVerifyingKeyRejectsBadBlobs(t *testing.T) {
	if _, err := ConvertVerifyingKey(&Groth16VerifyingKey{EncodedVkey: "beef"}); err == nil {
		t.Fatal("truncated verification key blob accepted")
	}
}

func TestParsePublicInputs(t *testing.T) {
	inputs, err := ParsePublicInputs([]string{"10", "0x0a"})
	if err != nil {
		t.Fatalf("failed to parse public inputs: %v", err)
	}
	var ten bn254fr.Element
	ten.SetUint64(10)
	for i := range inputs {
		if !inputs[i].Equal(&ten) {
			t.Fatalf("input %d: expected 10, got %s", i, inputs[i].String())
		}
	}

	if _, err := ParsePublicInputs([]string{"not-a-number"}); err == nil {
		t.Fatal("invalid public input accepted")
	}
}
