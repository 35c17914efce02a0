package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tokens <text...>",
		Short: "Print the analysed document as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runTokens,
	}
	cmd.Flags().Bool("modes", false, "Compare the normal, search and extended segmentations")
	RootCmd.AddCommand(cmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	modes, _ := cmd.Flags().GetBool("modes")
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return errors.New("empty input")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	var v any
	if modes {
		v, err = a.analyzer.TokenizeModes(cmd.Context(), text)
	} else {
		v, err = a.analyzer.Analyze(cmd.Context(), text)
	}
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
