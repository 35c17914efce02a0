// Package reflect builds the reflective-listening reply for an analysed
// utterance.
package reflect

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"oumugaeshi/analyze"
	"oumugaeshi/config"
	"oumugaeshi/detect"
	"oumugaeshi/jodoushi"
	"oumugaeshi/katsuyo"
	"oumugaeshi/model"
	"oumugaeshi/trim"
)

// Fallback reasons carried in Result.Reason.
const (
	ReasonNoValidSentence = "no_valid_sentence"
	ReasonNoValidToken    = "no_valid_token"
	ReasonCancelled       = "cancelled"
	ReasonDialect         = "dialect"
	ReasonFailure         = "failure"
)

// Result is one reply.
type Result struct {
	Text        string             `json:"text"`
	Ambiguous   bool               `json:"ambiguous"`
	Fallback    bool               `json:"fallback,omitempty"`
	Reason      string             `json:"reason,omitempty"`
	Diagnostics []model.Diagnostic `json:"diagnostics,omitempty"`
	Sentence    string             `json:"sentence,omitempty"`
	Span        string             `json:"span,omitempty"`
	Connective  string             `json:"connective,omitempty"`
}

// Reflector is immutable once built and safe for concurrent use.
type Reflector struct {
	refl      config.ReflectionConfig
	detector  *detect.Detector
	trimmer   *trim.Trimmer
	rootPOS   map[string]bool
	forbidden map[string]bool
	log       *zap.Logger
}

// New builds a Reflector from cfg. A nil logger discards output.
func New(cfg *config.Config, log *zap.Logger) *Reflector {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Reflector{
		refl:      cfg.Reflection,
		detector:  detect.New(cfg.DetectOptions()),
		trimmer:   trim.New(cfg.TrimRules()),
		rootPOS:   make(map[string]bool),
		forbidden: make(map[string]bool),
		log:       log,
	}
	for _, p := range cfg.Detection.RootPOS {
		r.rootPOS[p] = true
	}
	for _, n := range cfg.Detection.ForbiddenNorms {
		r.forbidden[n] = true
	}
	return r
}

// Build returns the reflection for doc, or one of *NoValidSentenceError,
// *NoValidTokenError, *trim.CancelledByTokenError and
// *trim.DialectNotSupportedError.
func (r *Reflector) Build(doc model.Document) (Result, error) {
	s, ok := r.selectSentence(doc)
	if !ok {
		return Result{}, &NoValidSentenceError{Document: doc}
	}
	res := Result{Sentence: s.Text}

	c, ok := analyze.SelectClause(s)
	if !ok {
		return res, &NoValidTokenError{Span: s.Tokens, Reason: "no clause around the root"}
	}
	res.Connective = analyze.Connective(s, c)

	span := s.Span(c.Start, c.End)
	trimmed, err := r.trimmer.Trim(span)
	if err != nil {
		return res, err
	}
	if len(trimmed) == 0 {
		return res, &NoValidTokenError{Span: span, Reason: "nothing left after trimming"}
	}
	res.Span = model.Surface(trimmed)

	at := c.Root - c.Start
	if at >= len(trimmed) {
		return res, &NoValidTokenError{Span: trimmed, Reason: "root was trimmed away"}
	}
	rootTok := trimmed[at]
	root, err := r.detector.Root(rootTok)
	if err != nil {
		var miss *detect.MissError
		if errors.As(err, &miss) && miss.Warn {
			r.log.Warn("root not detected", zap.String("token", rootTok.Text), zap.String("reason", miss.Reason))
		}
		return res, &NoValidTokenError{Span: trimmed, Token: &rootTok, Reason: "root not detected", Err: err}
	}

	appendants, diags := r.detector.Appendants(trimmed[at+1:])
	ending, errs := jodoushi.Chain(root, appendants...)
	for _, e := range errs {
		diags = append(diags, model.Diagnostic{Stage: "compose", Message: e.Error()})
	}

	suffix := katsuyo.NonKatsuyoText{Text: r.refl.Suffix, Attach: katsuyo.Rentai}
	if len(diags) > 0 {
		res.Ambiguous = true
		suffix = katsuyo.NonKatsuyoText{Text: r.refl.AmbiguousSuffix, Attach: katsuyo.Shushi}
	}
	out, err := katsuyo.Add(ending, suffix)
	if err != nil {
		diags = append(diags, model.Diagnostic{Stage: "compose", Message: err.Error()})
		res.Ambiguous = true
		out = katsuyo.Concat(ending, suffix)
	}

	for _, d := range diags {
		r.log.Debug("diagnostic", zap.String("stage", d.Stage), zap.String("message", d.Message))
	}
	res.Diagnostics = diags
	res.Text = model.Surface(trimmed[:at]) + out.Surface()
	return res, nil
}

// selectSentence walks the sentences last to first and returns the first one
// whose root may anchor a reflection and which asks no question word.
func (r *Reflector) selectSentence(doc model.Document) (model.Sentence, bool) {
	for i := len(doc.Sentences) - 1; i >= 0; i-- {
		s := doc.Sentences[i]
		root, ok := s.RootToken()
		if !ok || !r.rootPOS[root.POS] {
			continue
		}
		if r.interrogative(s) {
			continue
		}
		return s, true
	}
	return model.Sentence{}, false
}

func (r *Reflector) interrogative(s model.Sentence) bool {
	for _, t := range s.Tokens {
		if r.forbidden[t.Norm] || r.forbidden[t.Lemma] || r.forbidden[t.Text] {
			return true
		}
	}
	return false
}

// SafeBuild never fails: every condition Build reports, and any panic,
// becomes the configured fallback reply.
func (r *Reflector) SafeBuild(doc model.Document) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			r.log.Error("reflection panicked",
				zap.String("text", doc.Text),
				zap.String("panic", fmt.Sprint(p)),
				zap.Stack("stack"))
			res = r.fallback(r.refl.Fallback.Default, ReasonFailure)
		}
	}()

	res, err := r.Build(doc)
	if err == nil {
		return res
	}
	fb := r.refl.Fallback
	var (
		ns *NoValidSentenceError
		nt *NoValidTokenError
		ct *trim.CancelledByTokenError
		dn *trim.DialectNotSupportedError
	)
	switch {
	case errors.As(err, &dn):
		r.log.Info("dialect not supported", zap.String("token", dn.Token.Text))
		return r.fallback(fb.Dialect, ReasonDialect)
	case errors.As(err, &ct):
		r.log.Info("cancelled by token", zap.String("token", ct.Token.Text))
		return r.fallback(fb.Cancelled, ReasonCancelled)
	case errors.As(err, &nt):
		r.log.Info("no valid token", zap.Error(err))
		return r.fallback(fb.NoValidToken, ReasonNoValidToken)
	case errors.As(err, &ns):
		r.log.Info("no valid sentence", zap.String("text", doc.Text))
		return r.fallback(fb.NoValidSentence, ReasonNoValidSentence)
	}
	r.log.Error("reflection failed", zap.Error(err))
	return r.fallback(fb.Default, ReasonFailure)
}

func (r *Reflector) fallback(text, reason string) Result {
	return Result{Text: text, Fallback: true, Reason: reason}
}
