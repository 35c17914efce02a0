package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oumugaeshi.yaml")
	yaml := `
reflection:
  suffix: "のですね。"
tokenizer:
  dict: ipa
trimming:
  sentence_final_cancel: ["か"]
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "のですね。", cfg.Reflection.Suffix)
	assert.Equal(t, "ということですね。", cfg.Reflection.AmbiguousSuffix)
	assert.Equal(t, "ipa", cfg.Tokenizer.Dict)
	assert.Equal(t, []string{"か"}, cfg.TrimRules().SentenceFinalCancel)
	assert.Equal(t, DefaultConfig().Trimming.AuxiliaryCancel, cfg.TrimRules().AuxiliaryCancel)
}

func TestLoadDefaultsAmbiguousSuffix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oumugaeshi.yaml")
	yaml := `
reflection:
  suffix: "のですね。"
  ambiguous_suffix: ""
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "のですね。", cfg.Reflection.AmbiguousSuffix)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reflection: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OUMUGAESHI_SUFFIX", "んだね。")
	t.Setenv("OUMUGAESHI_DICT", "ipa")
	t.Setenv("OUMUGAESHI_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "んだね。", cfg.Reflection.Suffix)
	assert.Equal(t, "ipa", cfg.Tokenizer.Dict)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	t.Run("unknown dictionary", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tokenizer.Dict = "neologd"
		assert.Error(t, cfg.Validate())
	})
	t.Run("empty suffix", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Reflection.Suffix = ""
		assert.Error(t, cfg.Validate())
	})
	t.Run("leaves config untouched", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Reflection.AmbiguousSuffix = ""
		require.NoError(t, cfg.Validate())
		assert.Empty(t, cfg.Reflection.AmbiguousSuffix)
	})
	t.Run("no root pos", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Detection.RootPOS = nil
		assert.Error(t, cfg.Validate())
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "oumugaeshi.yaml")
	cfg := DefaultConfig()
	cfg.Logging.Level = "warn"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDetectOptions(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, cfg.Trimming.AuxiliaryTrimmable, cfg.DetectOptions().IgnoredAuxiliaries)
}
