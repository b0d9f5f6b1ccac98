package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Load a catalog and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, uc, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			summary := uc.ListIntents(cmd.Context())
			fmt.Fprintf(out, "OK: %d intents, vocabulary size %d\n", len(summary.Intents), summary.VocabularySize)
			for _, s := range summary.Intents {
				fmt.Fprintf(out, "  %-20s patterns=%d responses=%d\n", s.Tag, s.Patterns, s.Responses)
			}
			return nil
		},
	}
}

func newAskCmd(opts *rootOptions) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "ask FILE MESSAGE...",
		Short: "Print the chatbot reply for a message",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, uc, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			message := strings.Join(args[1:], " ")
			out := cmd.OutOrStdout()
			if !explain {
				fmt.Fprintln(out, uc.GetResponse(cmd.Context(), message))
				return nil
			}

			res := uc.Respond(cmd.Context(), respondInput(message))
			fmt.Fprintln(out, res.Response)
			if res.Fallback {
				fmt.Fprintf(out, "(fallback: %s, tag=%q, confidence=%.4f)\n", res.Reason, res.Tag, res.Confidence)
			} else {
				fmt.Fprintf(out, "(tag=%q, confidence=%.4f)\n", res.Tag, res.Confidence)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "also print the predicted tag and confidence")
	return cmd
}

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify FILE TEXT...",
		Short: "Print the probability of every intent for a text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, uc, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			pred, err := uc.Classify(cmd.Context(), strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "predicted: %s (%.4f), known tokens: %d\n", pred.Tag, pred.Confidence, pred.KnownTokens)
			for _, tp := range pred.Distribution {
				fmt.Fprintf(out, "  %-20s %.4f\n", tp.Tag, tp.Probability)
			}
			return nil
		},
	}
}

func newEvalCmd(opts *rootOptions) *cobra.Command {
	var showMisses bool

	cmd := &cobra.Command{
		Use:   "eval FILE",
		Short: "Report accuracy of the model on its own training patterns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, uc, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			report := evaluate(cmd.Context(), uc, catalog)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "accuracy: %d/%d (%.2f%%)\n", report.Correct, report.Total, report.Accuracy()*100)
			if showMisses {
				for _, m := range report.Misses {
					fmt.Fprintf(out, "  %q: want %s, got %s\n", m.Pattern, m.Want, m.Got)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showMisses, "misses", false, "list misclassified patterns")
	return cmd
}
