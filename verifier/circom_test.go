package verifier

import (
	"testing"
)

func TestVerifyCircomMalformedArtifacts(t *testing.T) {
	c := newTestClient(ModeCPU)
	valid := []byte(`{}`)
	garbage := []byte(`{not json`)

	if err := c.VerifyCircom(garbage, valid, valid); err == nil {
		t.Fatal("malformed proof JSON accepted")
	}
	if err := c.VerifyCircom(valid, garbage, valid); err == nil {
		t.Fatal("malformed verification key JSON accepted")
	}
}

// A structurally plausible but cryptographically meaningless proof must never
// report success, whether it dies in parsing or in the pairing check.
func TestVerifyCircomBogusProofNeverVerifies(t *testing.T) {
	proofJSON := []byte(`{
		"pi_a": ["1", "2", "1"],
		"pi_b": [["1", "0"], ["2", "0"], ["1", "0"]],
		"pi_c": ["1", "2", "1"],
		"protocol": "groth16"
	}`)
	vkJSON := []byte(`{
		"protocol": "groth16",
		"curve": "bn128",
		"nPublic": 1,
		"vk_alpha_1": ["1", "2", "1"],
		"vk_beta_2": [["1", "0"], ["2", "0"], ["1", "0"]],
		"vk_gamma_2": [["1", "0"], ["2", "0"], ["1", "0"]],
		"vk_delta_2": [["1", "0"], ["2", "0"], ["1", "0"]],
		"IC": [["1", "2", "1"], ["1", "2", "1"]]
	}`)
	publicJSON := []byte(`["7"]`)

	c := newTestClient(ModeCPU)
	outcome := c.SafeVerifyCircom(proofJSON, vkJSON, publicJSON)
	if outcome.Verified() {
		t.Fatal("bogus circom proof reported as verified")
	}
}
