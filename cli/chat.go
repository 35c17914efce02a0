package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oumugaeshi/ingest"
	"oumugaeshi/tokenize"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "chat",
		Short: "Reply to every line read from stdin",
		RunE:  runChat,
	})
}

func runChat(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	ctx := cmd.Context()
	utterances, ingestErrs := ingest.Stream(ctx, cmd.InOrStdin())
	out := cmd.OutOrStdout()
	for r := range tokenize.Start(ctx, a.analyzer, utterances) {
		if r.Err != nil {
			fmt.Fprintln(out, a.cfg.Reflection.Fallback.Default)
			continue
		}
		res := a.reflector.SafeBuild(r.Doc)
		a.log.Debug("reply", zap.String("id", r.Utterance.ID), zap.String("text", res.Text))
		a.dump(r.Utterance.ID, dumpRecord{Utterance: r.Utterance, Document: r.Doc, Result: res})
		fmt.Fprintln(out, res.Text)
	}
	for err := range ingestErrs {
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
	return nil
}
