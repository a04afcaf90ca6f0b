package parser

// Groth16Proof represents the Groth16 proof document exported by the SP1
// prover stack: the public inputs of the wrapped circuit plus the hex-encoded
// gnark proof blob.
type Groth16Proof struct {
	PublicInputs []string `json:"public_inputs"`
	EncodedProof string   `json:"encoded_proof"`
	RawProof     string   `json:"raw_proof,omitempty"`
}

// Groth16VerifyingKey represents the verification key document: the program
// vkey hash committed to by the proof and the hex-encoded gnark verifying key.
type Groth16VerifyingKey struct {
	VkeyHash    string `json:"vkey_hash"`
	EncodedVkey string `json:"encoded_vkey"`
}
