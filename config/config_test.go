package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/diffmend"
	"github.com/fwojciec/diffmend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.NewLoader(config.WithEnvPrefix("DIFFMEND_TEST_DEFAULTS_")).Load("")

	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, diffmend.DefaultHeadingMarker, cfg.HeadingMarker())
	assert.Equal(t, diffmend.DefaultOverflow, cfg.OverflowBlock())
}

func TestLoader_Load_File(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
heading:
  open: "## "
  close: " "
overflow:
  marker: "[restored]"
output:
  extension: .md
input:
  extensions: [.md]
log:
  level: debug
  json: true
ui:
  theme: light
`)

	cfg, err := config.NewLoader(config.WithEnvPrefix("DIFFMEND_TEST_FILE_")).Load(path)

	require.NoError(t, err)
	assert.Equal(t, diffmend.HeadingMarker{Open: "## ", Close: " "}, cfg.HeadingMarker())
	assert.Equal(t, diffmend.Overflow{Separator: "---", Marker: "[restored]"}, cfg.OverflowBlock())
	assert.Equal(t, ".md", cfg.Output.Extension)
	assert.Equal(t, []string{".md"}, cfg.Input.Extensions)
	assert.Equal(t, "merged", cfg.Output.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{
			name:    "malformed yaml",
			content: "heading: [",
		},
		{
			name:    "empty heading marker",
			content: "heading:\n  open: \"\"\n",
			invalid: true,
		},
		{
			name:    "unknown log level",
			content: "log:\n  level: loud\n",
			invalid: true,
		},
		{
			name:    "extension without dot",
			content: "input:\n  extensions: [txt]\n",
			invalid: true,
		},
		{
			name:    "output extension outside allowed set",
			content: "output:\n  extension: .html\n",
			invalid: true,
		},
		{
			name:    "unknown theme",
			content: "ui:\n  theme: neon\n",
			invalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, tt.content)
			_, err := config.NewLoader(config.WithEnvPrefix("DIFFMEND_TEST_ERRORS_")).Load(path)

			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, config.ErrInvalid)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoader_Load_Environment(t *testing.T) {
	t.Setenv("DIFFMEND_ENV_HEADING_OPEN", "<<")
	t.Setenv("DIFFMEND_ENV_HEADING_CLOSE", ">>")
	t.Setenv("DIFFMEND_ENV_OUTPUT_EXTENSIONS", ".txt,.md,.markdown")
	t.Setenv("DIFFMEND_ENV_OUTPUT_EXTENSION", ".markdown")
	t.Setenv("DIFFMEND_ENV_HISTORY_ENABLED", "false")
	t.Setenv("DIFFMEND_ENV_LOG_LEVEL", "error")

	path := writeFile(t, "heading:\n  open: \"[\"\n  close: \"]\"\nlog:\n  level: debug\n")

	cfg, err := config.NewLoader(config.WithEnvPrefix("DIFFMEND_ENV_")).Load(path)

	require.NoError(t, err)
	assert.Equal(t, diffmend.HeadingMarker{Open: "<<", Close: ">>"}, cfg.HeadingMarker())
	assert.Equal(t, []string{".txt", ".md", ".markdown"}, cfg.Output.Extensions)
	assert.Equal(t, ".markdown", cfg.Output.Extension)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestConfig_HistoryPath(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.NotEmpty(t, cfg.HistoryPath())

	cfg.History.Path = "/tmp/custom.jsonl"
	assert.Equal(t, "/tmp/custom.jsonl", cfg.HistoryPath())
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/etc/diffmend.yaml", config.ResolvePath("/etc/diffmend.yaml"))
}
