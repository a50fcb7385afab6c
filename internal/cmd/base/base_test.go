package base

import (
	"flag"
	"testing"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kest-labs/kest-admin/internal/config"
)

type item struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		format string
		value  any
		want   string
	}{
		{
			name:   "json",
			format: "json",
			value:  item{ID: 1, Name: "Users"},
			want:   "{\n  \"id\": 1,\n  \"name\": \"Users\"\n}",
		},
		{
			name:   "default is json",
			format: "",
			value:  []int{1},
			want:   "[\n  1\n]",
		},
		{
			name:   "no html escaping",
			format: "json",
			value:  map[string]string{"q": "a<b"},
			want:   "{\n  \"q\": \"a<b\"\n}",
		},
		{
			name:   "yaml keeps field order",
			format: "yaml",
			value:  item{ID: 2, Name: "Auth"},
			want:   "id: 2\nname: Auth",
		},
		{
			name:   "yaml keeps json numbers",
			format: "yaml",
			value:  map[string]any{"minimum": json.Number("5")},
			want:   "minimum: 5",
		},
		{
			name:   "yaml quotes numeric strings",
			format: "YAML",
			value:  map[string]any{"id": "123"},
			want:   `id: "123"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.format, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_YAMLMultiline(t *testing.T) {
	got, err := Format("yaml", item{ID: 1, Name: "x", Notes: "{\n  \"a\": 1\n}"})
	require.NoError(t, err)
	assert.Contains(t, got, "notes: |-")

	var back item
	require.NoError(t, yaml.Unmarshal([]byte(got), &back))
	assert.Equal(t, "{\n  \"a\": 1\n}", back.Notes)
}

func TestFormat_Unsupported(t *testing.T) {
	_, err := Format("xml", item{})
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestFlagSet_Help(t *testing.T) {
	var project int64
	var name string
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	f.Int64Var(&project, "project", 0, "(Required) Project ID.")
	f.StringVar(&name, "name", "draft", "Example name.")

	help := f.Help()
	assert.Contains(t, help, "Options:")
	assert.Contains(t, help, "-project\n      (Required) Project ID.")
	assert.Contains(t, help, "-name=draft\n      Example name.")

	err := f.Parse([]string{"-unknown"})
	assert.Error(t, err)
}

func TestCommand_Render(t *testing.T) {
	ui := cli.NewMockUi()
	c := &Command{Log: hclog.NewNullLogger(), UI: ui, Fs: afero.NewMemMapFs()}

	require.NoError(t, c.Render(&config.Config{Output: "yaml"}, item{ID: 3, Name: "Orders"}))
	assert.Equal(t, "id: 3\nname: Orders\n", ui.OutputWriter.String())
}

func TestCommand_Files(t *testing.T) {
	c := &Command{Log: hclog.NewNullLogger(), UI: cli.NewMockUi(), Fs: afero.NewMemMapFs()}

	require.NoError(t, c.WriteFile("/tmp/draft.json", []byte(`{}`)))
	data, err := c.ReadFile("/tmp/draft.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	_, err = c.ReadFile("/missing.json")
	assert.ErrorContains(t, err, "/missing.json")
}

func TestCommand_ClientRequiresToken(t *testing.T) {
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvAPIToken, "")
	t.Setenv(config.EnvConfig, "")

	ui := cli.NewMockUi()
	c := &Command{Log: hclog.NewNullLogger(), UI: ui, Fs: afero.NewMemMapFs()}

	cfg, client := c.Setup()
	assert.Nil(t, cfg)
	assert.Nil(t, client)
	assert.Contains(t, ui.ErrorWriter.String(), config.EnvAPIToken)
}
