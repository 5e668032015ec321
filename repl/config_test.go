package repl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfigDefault(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "      ", cfg.continuationPrompt())
}

func TestLoadConfigFormats(t *testing.T) {
	t.Setenv("MALREAD_TEST_HOME", "/home/mal")
	expect := &Config{
		Prompt:             "mal> ",
		ContinuationPrompt: "...> ",
		HistoryFile:        "/home/mal/.mal_history",
		HistoryLimit:       500,
		Multiline:          true,
		Color:              true,
	}

	tomlPath := writeConfig(t, "malread.toml", `
prompt = "mal> "
continuation_prompt = "...> "
history_file = "$MALREAD_TEST_HOME/.mal_history"
multiline = true
color = true
`)
	cfg, err := LoadConfig(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, expect, cfg)

	yamlPath := writeConfig(t, "malread.yaml", `
prompt: "mal> "
continuation_prompt: "...> "
history_file: $MALREAD_TEST_HOME/.mal_history
multiline: true
color: true
`)
	cfg, err = LoadConfig(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, expect, cfg)
	assert.Equal(t, "...> ", cfg.continuationPrompt())
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "partial.yml", "multiline: true\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.Equal(t, 500, cfg.HistoryLimit)
	assert.True(t, cfg.Multiline)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := writeConfig(t, "bad.toml", "prompt = \n")
	_, err = LoadConfig(path)
	assert.Error(t, err)

	path = writeConfig(t, "bad.yaml", "prompt: [\n")
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
