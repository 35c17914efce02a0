package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"oumugaeshi/ingest"
	"oumugaeshi/model"
	"oumugaeshi/reflect"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reflect [text...]",
		Short: "Reply to one utterance (reads stdin when no text is given)",
		RunE:  runReflect,
	}
	cmd.Flags().Bool("json", false, "Print the full result as JSON")
	cmd.Flags().Bool("lines", false, "Treat every input line as its own utterance")
	RootCmd.AddCommand(cmd)
}

type dumpRecord struct {
	Utterance ingest.Utterance `json:"utterance"`
	Document  model.Document   `json:"document"`
	Result    reflect.Result   `json:"result"`
}

func runReflect(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	perLine, _ := cmd.Flags().GetBool("lines")

	text := strings.Join(args, " ")
	if len(args) == 0 {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(b)
	}

	var utterances []ingest.Utterance
	inputs := []string{text}
	if perLine {
		inputs = strings.Split(text, "\n")
	}
	for _, in := range inputs {
		u, err := ingest.New(in)
		if errors.Is(err, ingest.ErrEmpty) {
			continue
		}
		utterances = append(utterances, u)
	}
	if len(utterances) == 0 {
		return errors.New("nothing to reflect: empty input")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	texts := make([]string, len(utterances))
	for i, u := range utterances {
		texts[i] = u.Text
	}
	docs, err := a.analyzer.AnalyzeAll(cmd.Context(), texts, runtime.NumCPU())
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	out := cmd.OutOrStdout()
	for i, doc := range docs {
		res := a.reflector.SafeBuild(doc)
		a.dump(utterances[i].ID, dumpRecord{Utterance: utterances[i], Document: doc, Result: res})
		if asJSON {
			b, _ := json.MarshalIndent(res, "", "  ")
			fmt.Fprintln(out, string(b))
			continue
		}
		fmt.Fprintln(out, res.Text)
	}
	return nil
}
