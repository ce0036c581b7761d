// Command simdex is a developer utility for inspecting the signature
// distance engine: backend capability info, one-off Hamming distances,
// and thresholded all-pairs scans over hex signature files.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/simdex"
	"github.com/hupe1980/simdex/distance"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "simdex",
		Short:         "Near-duplicate signature distance and LSH engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newInfoCmd(), newDistCmd(), newScanCmd())
	return rootCmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the active distance backend and thread count",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "backend: %s\n", distance.BackendName())
			fmt.Fprintf(cmd.OutOrStdout(), "accelerated: %v\n", simdex.Accelerated())
			if err := simdex.AccelError(); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "reason: %v\n", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "threads: %d\n", simdex.ThreadCount())
			return nil
		},
	}
}

func newDistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dist <hexA> <hexB>",
		Short: "Compute the Hamming distance between two hex signatures",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decode first signature: %w", err)
			}
			b, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("decode second signature: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), simdex.Hamming(a, b))
			return nil
		},
	}
}

func newScanCmd() *cobra.Command {
	var (
		threshold int
		maxPairs  int
	)

	scanCmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Scan a file of newline-delimited hex signatures for similar pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sigs, err := readSignatures(args[0])
			if err != nil {
				return err
			}

			for _, p := range simdex.FindSimilarPairs(sigs, threshold, maxPairs) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\t%d\n", p.I, p.J, p.Dist)
			}
			return nil
		},
	}

	scanCmd.Flags().IntVarP(&threshold, "threshold", "t", 3, "maximum Hamming distance for a pair to match")
	scanCmd.Flags().IntVarP(&maxPairs, "max-pairs", "m", 0, "stop after this many pairs (0 = unlimited)")

	return scanCmd
}

func readSignatures(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sigs [][]byte

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		sig, err := hex.DecodeString(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", len(sigs)+1, err)
		}
		sigs = append(sigs, sig)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sigs, nil
}
