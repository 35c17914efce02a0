// Package tokenize wraps kagome and turns its morphemes into analysed
// documents: tokens in the UniDic tag vocabulary, split into sentences, with
// a dependency guess per sentence.
package tokenize

import (
	"context"
	"fmt"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"oumugaeshi/ingest"
	"oumugaeshi/model"
)

// Dictionary names accepted by New.
const (
	DictUni = "uni"
	DictIPA = "ipa"
)

var modes = map[string]tokenizer.TokenizeMode{
	"normal":   tokenizer.Normal,
	"search":   tokenizer.Search,
	"extended": tokenizer.Extended,
}

// Analyzer is safe for concurrent use.
type Analyzer struct {
	kg   *tokenizer.Tokenizer
	dict string
	mode tokenizer.TokenizeMode
	log  *zap.Logger
}

// New loads the named dictionary. Loading a dictionary is slow; build one
// Analyzer per process.
func New(dictName, mode string, log *zap.Logger) (*Analyzer, error) {
	var d *dict.Dict
	switch dictName {
	case DictUni, "":
		dictName = DictUni
		d = uni.Dict()
	case DictIPA:
		d = ipa.Dict()
	default:
		return nil, fmt.Errorf("tokenize: unknown dictionary %q", dictName)
	}
	m, ok := modes[mode]
	if mode == "" {
		m, ok = tokenizer.Normal, true
	}
	if !ok {
		return nil, fmt.Errorf("tokenize: unknown mode %q", mode)
	}
	kg, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{kg: kg, dict: dictName, mode: m, log: log}, nil
}

// Dict returns the dictionary name in use.
func (a *Analyzer) Dict() string { return a.dict }

// Tokenize returns the tokens of text in the analyzer's mode, without
// sentence splitting. Token.Index is the position in the returned slice and
// Start/End are rune offsets into text.
func (a *Analyzer) Tokenize(ctx context.Context, text string) ([]model.Token, error) {
	return a.tokenize(ctx, text, a.mode)
}

func (a *Analyzer) tokenize(ctx context.Context, text string, mode tokenizer.TokenizeMode) ([]model.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	toks, _ := a.convert(a.kg.Analyze(text, mode))
	return toks, nil
}

func (a *Analyzer) convert(ktoks []tokenizer.Token) ([]model.Token, [][]string) {
	out := make([]model.Token, 0, len(ktoks))
	raw := make([][]string, 0, len(ktoks))
	for _, kt := range ktoks {
		f := kt.Features()
		var t model.Token
		if a.dict == DictIPA {
			t = fromIPA(kt.Surface, f)
		} else {
			t = fromUni(kt.Surface, f)
		}
		if t.Reading == "" {
			if r, ok := kt.Reading(); ok && r != "*" {
				t.Reading = r
			}
		}
		t.Index = len(out)
		t.Head = t.Index
		t.Start = kt.Start
		t.End = kt.End
		out = append(out, t)
		raw = append(raw, f)
	}
	if a.dict == DictIPA {
		resolveSou(out, raw)
	}
	markHelperVerbs(out)
	return out, raw
}

// TokenizeModes runs every segmentation mode and returns tokens per mode
// name. Useful to compare segmentations.
func (a *Analyzer) TokenizeModes(ctx context.Context, text string) (map[string][]model.Token, error) {
	res := make(map[string][]model.Token, len(modes))
	for name, m := range modes {
		toks, err := a.tokenize(ctx, text, m)
		if err != nil {
			return nil, err
		}
		res[name] = toks
	}
	return res, nil
}

// Analyze tokenizes text, splits it into sentences and assigns heads.
func (a *Analyzer) Analyze(ctx context.Context, text string) (model.Document, error) {
	doc := model.Document{Text: text}
	if err := ctx.Err(); err != nil {
		return doc, err
	}
	if text == "" {
		return doc, nil
	}
	toks, raw := a.convert(a.kg.Analyze(text, a.mode))
	doc.Sentences = splitSentences(text, toks, func(start, end int) {
		if a.dict == DictIPA {
			promoteFinalParticles(toks[start:end], raw[start:end])
		}
	})
	a.log.Debug("analyzed",
		zap.Int("tokens", len(toks)),
		zap.Int("sentences", len(doc.Sentences)),
		zap.String("dict", a.dict))
	return doc, nil
}

// AnalyzeAll analyzes texts concurrently, at most limit at a time (no limit
// when limit <= 0). Results keep the order of texts.
func (a *Analyzer) AnalyzeAll(ctx context.Context, texts []string, limit int) ([]model.Document, error) {
	docs := make([]model.Document, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			doc, err := a.Analyze(gctx, text)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// TokenizeStream streams tokens to a channel for a concurrent pipeline.
func (a *Analyzer) TokenizeStream(ctx context.Context, text string) (<-chan model.Token, <-chan error) {
	out := make(chan model.Token, 8)
	errs := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errs)
		toks, err := a.Tokenize(ctx, text)
		if err != nil {
			errs <- err
			return
		}
		for _, tk := range toks {
			select {
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			case out <- tk:
			}
		}
	}()
	return out, errs
}

// Analyzed pairs an utterance with its document, or the error that
// prevented analysis.
type Analyzed struct {
	Utterance ingest.Utterance
	Doc       model.Document
	Err       error
}

// Start consumes utterances from in, analyzes them and publishes the results
// in order. The returned channel is closed when in is closed or ctx is done.
func Start(ctx context.Context, a *Analyzer, in <-chan ingest.Utterance) <-chan Analyzed {
	out := make(chan Analyzed, 16)
	go func() {
		defer close(out)
		a.log.Debug("tokenizer started")
		for {
			select {
			case <-ctx.Done():
				a.log.Debug("tokenizer stopped", zap.Error(ctx.Err()))
				return
			case u, ok := <-in:
				if !ok {
					return
				}
				doc, err := a.Analyze(ctx, u.Text)
				if err != nil {
					a.log.Warn("analyze failed", zap.String("id", u.ID), zap.Error(err))
				}
				select {
				case <-ctx.Done():
					return
				case out <- Analyzed{Utterance: u, Doc: doc, Err: err}:
				}
			}
		}
	}()
	return out
}
