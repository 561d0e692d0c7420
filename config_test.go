package display_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    display.ConfigFormat
		wantErr require.ErrorAssertionFunc
	}{
		"yaml":    {input: "yaml", want: display.ConfigYAML, wantErr: require.NoError},
		"toml":    {input: "toml", want: display.ConfigTOML, wantErr: require.NoError},
		"json":    {input: "json", want: display.ConfigJSON, wantErr: require.NoError},
		"unknown": {input: "ini", want: "", wantErr: require.Error},
		"case":    {input: "YAML", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := display.ParseConfigFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFormatString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "toml", display.ConfigTOML.String())
}

func TestDecodeOptions(t *testing.T) {
	t.Parallel()
	items := seq(7)
	tests := map[string]struct {
		format display.ConfigFormat
		input  string
		want   string
	}{
		"yaml": {
			format: display.ConfigYAML,
			input:  "limit: 2\nseparator: \" | \"\n",
			want:   "[1 | .. | 7]",
		},
		"yaml brackets": {
			format: display.ConfigYAML,
			input:  "left_bracket: \"(\"\nright_bracket: \")\"\n",
			want:   "(1,2,3,4,..,7)",
		},
		"toml": {
			format: display.ConfigTOML,
			input:  "limit = 3\nleft_bracket = \"{\"\nright_bracket = \"}\"\n",
			want:   "{1,2,..,7}",
		},
		"json": {
			format: display.ConfigJSON,
			input:  `{"limit": 2, "separator": ""}`,
			want:   "[1..7]",
		},
		"json limit zero": {
			format: display.ConfigJSON,
			input:  `{"limit": 0, "separator": " "}`,
			want:   "[..]",
		},
		"empty yaml": {
			format: display.ConfigYAML,
			input:  "",
			want:   "[1,2,3,4,..,7]",
		},
		"empty toml": {
			format: display.ConfigTOML,
			input:  "",
			want:   "[1,2,3,4,..,7]",
		},
		"empty json": {
			format: display.ConfigJSON,
			input:  "",
			want:   "[1,2,3,4,..,7]",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			o, err := display.DecodeOptions(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, display.NewSlice(items).With(o).String())
		})
	}
}

func TestDecodeOptionsWidth(t *testing.T) {
	t.Parallel()
	o, err := display.DecodeOptions(strings.NewReader("width: 4\n"), display.ConfigYAML)
	require.NoError(t, err)
	assert.Equal(t, 4, o.Width)
	assert.Equal(t, "[a...,b]", display.NewSlice([]string{"alpha", "b"}).With(o).String())
}

func TestDecodeOptionsErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format display.ConfigFormat
		input  string
		want   error
	}{
		"yaml unknown key": {format: display.ConfigYAML, input: "limits: 2\n", want: display.ErrInvalidOptions},
		"yaml wrong type":  {format: display.ConfigYAML, input: "limit: many\n", want: display.ErrInvalidOptions},
		"toml unknown key": {format: display.ConfigTOML, input: "limits = 2\n", want: display.ErrInvalidOptions},
		"toml syntax":      {format: display.ConfigTOML, input: "limit = \n", want: display.ErrInvalidOptions},
		"json unknown key": {format: display.ConfigJSON, input: `{"limits": 2}`, want: display.ErrInvalidOptions},
		"json syntax":      {format: display.ConfigJSON, input: `{"limit": `, want: display.ErrInvalidOptions},
		"negative limit":   {format: display.ConfigYAML, input: "limit: -1\n", want: display.ErrInvalidOptions},
		"negative width":   {format: display.ConfigJSON, input: `{"width": -3}`, want: display.ErrInvalidOptions},
		"unsupported":      {format: "xml", input: "<limit>2</limit>", want: display.ErrUnsupportedConfig},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := display.DecodeOptions(strings.NewReader(tt.input), tt.format)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()
	limit := 3
	require.NoError(t, display.Options{}.Validate())
	require.NoError(t, display.Options{Limit: &limit, Width: 2}.Validate())

	negative := -2
	err := display.Options{Limit: &negative}.Validate()
	require.ErrorIs(t, err, display.ErrInvalidOptions)
	assert.Contains(t, err.Error(), "-2")
}

func TestOptionsApplyKeepsUnsetFields(t *testing.T) {
	t.Parallel()
	sep := " "
	s := display.SliceN(seq(7), 2).Brackets("<", ">").With(display.Options{Separator: &sep})
	assert.Equal(t, "<1 .. 7>", s.String())
}

func TestOptionsApplyToSeq(t *testing.T) {
	t.Parallel()
	limit := 1
	got := display.Chan(closedChan(seq(4))).With(display.Options{Limit: &limit}).String()
	assert.Equal(t, "[..,4]", got)
}

func TestLoadOptions(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	files := map[string]string{
		"display.yaml": "limit: 2\n",
		"display.yml":  "limit: 2\n",
		"display.toml": "limit = 2\n",
		"display.json": `{"limit": 2}`,
		"DISPLAY.YAML": "limit: 2\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		o, err := display.LoadOptions(path)
		require.NoError(t, err, name)
		assert.Equal(t, "[1,..,7]", display.NewSlice(seq(7)).With(o).String(), name)
	}
}

func TestLoadOptionsErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := display.LoadOptions(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	ini := filepath.Join(dir, "display.ini")
	require.NoError(t, os.WriteFile(ini, []byte("limit=2"), 0o600))
	_, err = display.LoadOptions(ini)
	require.ErrorIs(t, err, display.ErrUnsupportedConfig)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("width = -1\n"), 0o600))
	_, err = display.LoadOptions(bad)
	require.ErrorIs(t, err, display.ErrInvalidOptions)
}

func closedChan[T any](items []T) <-chan T {
	ch := make(chan T, len(items))
	for _, v := range items {
		ch <- v
	}
	close(ch)
	return ch
}
