package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/twinelabs/solana-proof-verifier/parser"
	"github.com/twinelabs/solana-proof-verifier/verifier"
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	logger.Set(log.Logger.Level(zerolog.WarnLevel))
}

var flags struct {
	proofPath  string
	vkeyPath   string
	publicPath string
	format     string
}

var rootCmd = &cobra.Command{
	Use:          "solana-proof-verifier",
	Short:        "Twine Solana Consensus Proof Verifier",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flags.proofPath, "proof-path", "data/groth16_proof.json",
		"path to the proof JSON file")
	rootCmd.Flags().StringVar(&flags.vkeyPath, "vkey-path", "data/vkey.json",
		"path to the verification key JSON file")
	rootCmd.Flags().StringVar(&flags.format, "format", "groth16",
		"proof format: groth16 or circom")
	rootCmd.Flags().StringVar(&flags.publicPath, "public-path", "data/public_signals.json",
		"path to the public signals JSON file (circom format only)")
}

func run(cmd *cobra.Command, args []string) error {
	fmt.Println("Twine Solana Consensus Proof Verifier")
	fmt.Println("=====================================")

	client, err := verifier.NewClientFromEnv()
	if err != nil {
		return err
	}

	var outcome verifier.Outcome
	switch flags.format {
	case "groth16":
		proof, err := parser.LoadGroth16Proof(flags.proofPath)
		if err != nil {
			return err
		}
		vk, err := parser.LoadGroth16VerifyingKey(flags.vkeyPath)
		if err != nil {
			return err
		}
		outcome = client.SafeVerify(proof, vk)
	case "circom":
		proofJSON, vkJSON, publicJSON, err := readCircomArtifacts()
		if err != nil {
			return err
		}
		outcome = client.SafeVerifyCircom(proofJSON, vkJSON, publicJSON)
	default:
		return fmt.Errorf("unrecognized format %q", flags.format)
	}

	return report(outcome)
}

// report prints the outcome banner and translates it into the process error
// value; this is the only place exit status is decided.
func report(outcome verifier.Outcome) error {
	switch outcome.Status {
	case verifier.StatusVerified:
		fmt.Println("✅ VERIFICATION SUCCESSFUL: The Solana consensus proof is valid!")
		fmt.Println("Verification completed successfully!")
		return nil
	case verifier.StatusRejected:
		fmt.Println("❌ VERIFICATION FAILED: The Solana consensus proof is invalid.")
		fmt.Printf("Error: %v\n", outcome.Err)
	case verifier.StatusFault:
		fmt.Println("❌ VERIFICATION FAILED: The Solana consensus proof is invalid.")
		fmt.Printf("Error: %s\n", outcome.Message)
		fmt.Println()
		fmt.Println("Detailed error information (for debugging):")
		fmt.Println(outcome.Raw)
	}
	return errors.New("proof verification failed")
}

func readCircomArtifacts() ([]byte, []byte, []byte, error) {
	log.Info().Str("path", flags.proofPath).Msg("loading proof")
	proofJSON, err := os.ReadFile(flags.proofPath) //nolint:gosec
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read proof file: %w", err)
	}
	log.Info().Str("path", flags.vkeyPath).Msg("loading verification key")
	vkJSON, err := os.ReadFile(flags.vkeyPath) //nolint:gosec
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read verification key file: %w", err)
	}
	log.Info().Str("path", flags.publicPath).Msg("loading public signals")
	publicJSON, err := os.ReadFile(flags.publicPath) //nolint:gosec
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read public signals file: %w", err)
	}
	return proofJSON, vkJSON, publicJSON, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
