// Package config holds the single configuration record for oumugaeshi.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"oumugaeshi/detect"
	"oumugaeshi/trim"
)

// Config holds all oumugaeshi configuration.
type Config struct {
	Reflection ReflectionConfig `yaml:"reflection"`
	Detection  DetectionConfig  `yaml:"detection"`
	Trimming   TrimmingConfig   `yaml:"trimming"`
	Tokenizer  TokenizerConfig  `yaml:"tokenizer"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ReflectionConfig configures the assembled reply.
type ReflectionConfig struct {
	// Suffix follows the attributive form of the rebuilt ending.
	Suffix string `yaml:"suffix"`
	// AmbiguousSuffix follows the conclusive form when a soft error was recorded.
	AmbiguousSuffix string         `yaml:"ambiguous_suffix"`
	Fallback        FallbackConfig `yaml:"fallback"`
}

// FallbackConfig holds the replies used when no reflection can be built.
type FallbackConfig struct {
	NoValidSentence string `yaml:"no_valid_sentence"`
	NoValidToken    string `yaml:"no_valid_token"`
	Cancelled       string `yaml:"cancelled"`
	Dialect         string `yaml:"dialect"`
	Default         string `yaml:"default"`
}

// DetectionConfig configures sentence selection.
type DetectionConfig struct {
	// RootPOS lists the coarse tags a sentence root may carry.
	RootPOS []string `yaml:"root_pos"`
	// ForbiddenNorms disqualify a sentence (interrogatives).
	ForbiddenNorms []string `yaml:"forbidden_norms"`
}

// TrimmingConfig partitions auxiliaries and particles for the trimmer.
type TrimmingConfig struct {
	AuxiliaryTrimmable     []string `yaml:"auxiliary_trimmable"`
	AuxiliaryCancel        []string `yaml:"auxiliary_cancel"`
	AuxiliaryDialect       []string `yaml:"auxiliary_dialect"`
	SentenceFinalTrimmable []string `yaml:"sentence_final_trimmable"`
	SentenceFinalCancel    []string `yaml:"sentence_final_cancel"`
	SentenceFinalDialect   []string `yaml:"sentence_final_dialect"`
	ConnectiveDialect      []string `yaml:"connective_dialect"`
	QuestionMarks          []string `yaml:"question_marks"`
	VolitionalForms        []string `yaml:"volitional_forms"`
}

// TokenizerConfig selects the kagome dictionary and mode.
type TokenizerConfig struct {
	Dict string `yaml:"dict"` // uni, ipa
	Mode string `yaml:"mode"` // normal, search, extended
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	DumpDir     string `yaml:"dump_dir"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		Reflection: ReflectionConfig{
			Suffix:          "んですね。",
			AmbiguousSuffix: "ということですね。",
			Fallback: FallbackConfig{
				NoValidSentence: "なるほど。",
				NoValidToken:    "なるほど。",
				Cancelled:       "そうなんですね。",
				Dialect:         "すみません、方言はまだよく分からないんです。",
				Default:         "なるほど。",
			},
		},
		Detection: DetectionConfig{
			RootPOS: []string{"VERB", "ADJ", "NOUN", "PROPN"},
			ForbiddenNorms: []string{
				"何", "なに", "なん", "なぜ", "何故", "どう", "どうして", "いつ", "何時",
				"どこ", "何処", "誰", "だれ", "どれ", "どの", "どちら", "どなた", "いくら", "いくつ",
			},
		},
		Trimming: TrimmingConfig{
			AuxiliaryTrimmable: []string{"助動詞-ダ", "助動詞-デス", "助動詞-マス"},
			AuxiliaryCancel:    []string{"助動詞-ヌ", "助動詞-マイ", "助動詞-ウ", "助動詞-ヨウ", "文語助動詞-ム", "文語助動詞-ヌ", "文語助動詞-ズ"},
			AuxiliaryDialect: []string{
				"助動詞-ジャ", "助動詞-ヤ", "助動詞-ヘン", "助動詞-ヒン", "助動詞-ナンダ",
				"助動詞-ドス", "助動詞-ヤス", "助動詞-ンス", "助動詞-ヤンス", "助動詞-ヨル", "助動詞-トル",
			},
			SentenceFinalTrimmable: []string{
				"ね", "ねえ", "ねぇ", "よ", "よね", "な", "なあ", "なぁ", "ぞ", "ぜ", "さ",
				"わ", "わね", "わよ", "もん", "もの", "って", "ってば",
			},
			SentenceFinalCancel: []string{"か", "の", "かしら", "っけ"},
			SentenceFinalDialect: []string{
				"べ", "べさ", "ちゃ", "けえ", "ばい", "たい", "ど", "じゃん", "やん", "やで",
				"がな", "ぞな", "ぜよ", "のう", "わい", "ちゅう",
			},
			ConnectiveDialect: []string{"さかい", "けん", "けえ", "きに", "よって", "すけ", "はんで"},
			QuestionMarks:     []string{"?", "？"},
			VolitionalForms:   []string{"意志推量形"},
		},
		Tokenizer: TokenizerConfig{
			Dict: "uni",
			Mode: "normal",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	if cfg.Reflection.AmbiguousSuffix == "" {
		cfg.Reflection.AmbiguousSuffix = cfg.Reflection.Suffix
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("OUMUGAESHI_SUFFIX"); v != "" {
		c.Reflection.Suffix = v
	}
	if v := os.Getenv("OUMUGAESHI_DICT"); v != "" {
		c.Tokenizer.Dict = v
	}
	if v := os.Getenv("OUMUGAESHI_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate rejects values the rest of the program cannot run with. It does
// not modify c.
func (c *Config) Validate() error {
	if c.Reflection.Suffix == "" {
		return fmt.Errorf("config: reflection.suffix must not be empty")
	}
	switch c.Tokenizer.Dict {
	case "uni", "ipa":
	default:
		return fmt.Errorf("config: unknown tokenizer.dict %q (want uni or ipa)", c.Tokenizer.Dict)
	}
	switch c.Tokenizer.Mode {
	case "normal", "search", "extended":
	default:
		return fmt.Errorf("config: unknown tokenizer.mode %q", c.Tokenizer.Mode)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown logging.level %q", c.Logging.Level)
	}
	if len(c.Detection.RootPOS) == 0 {
		return fmt.Errorf("config: detection.root_pos must not be empty")
	}
	return nil
}

// TrimRules converts the trimming section into trimmer rules.
func (c *Config) TrimRules() trim.Rules {
	t := c.Trimming
	return trim.Rules{
		AuxiliaryTrimmable:     t.AuxiliaryTrimmable,
		AuxiliaryCancel:        t.AuxiliaryCancel,
		AuxiliaryDialect:       t.AuxiliaryDialect,
		SentenceFinalTrimmable: t.SentenceFinalTrimmable,
		SentenceFinalCancel:    t.SentenceFinalCancel,
		SentenceFinalDialect:   t.SentenceFinalDialect,
		ConnectiveDialect:      t.ConnectiveDialect,
		QuestionMarks:          t.QuestionMarks,
		VolitionalForms:        t.VolitionalForms,
	}
}

// DetectOptions converts the configuration into detector options. The
// trimmable auxiliaries are the ones a rebuilt ending ignores.
func (c *Config) DetectOptions() detect.Options {
	return detect.Options{IgnoredAuxiliaries: c.Trimming.AuxiliaryTrimmable}
}
