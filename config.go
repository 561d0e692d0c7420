package display

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ConfigFormat names an encoding that [Options] can be decoded from.
type ConfigFormat string

const (
	ConfigYAML ConfigFormat = "yaml"
	ConfigTOML ConfigFormat = "toml"
	ConfigJSON ConfigFormat = "json"
)

var configFormats = []ConfigFormat{ConfigYAML, ConfigTOML, ConfigJSON}

var configExtensions = map[string]ConfigFormat{
	".yaml": ConfigYAML,
	".yml":  ConfigYAML,
	".toml": ConfigTOML,
	".json": ConfigJSON,
}

// String returns the format name.
func (f ConfigFormat) String() string { return string(f) }

// ParseConfigFormat parses a config format name.
func ParseConfigFormat(s string) (ConfigFormat, error) {
	for _, f := range configFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedConfig, s)
}

// Options is a configuration record for sequence displays, typically read
// from a service's config file:
//
//	limit: 10
//	separator: ", "
//	left_bracket: "{"
//	right_bracket: "}"
//	width: 24
//
// Nil fields leave the corresponding setting of a display untouched.
type Options struct {
	Limit        *int    `yaml:"limit" toml:"limit" json:"limit"`
	Separator    *string `yaml:"separator" toml:"separator" json:"separator"`
	LeftBracket  *string `yaml:"left_bracket" toml:"left_bracket" json:"left_bracket"`
	RightBracket *string `yaml:"right_bracket" toml:"right_bracket" json:"right_bracket"`
	Width        int     `yaml:"width" toml:"width" json:"width"`
}

// Validate reports negative limits and widths.
func (o Options) Validate() error {
	if o.Limit != nil && *o.Limit < 0 {
		return fmt.Errorf("%w: limit %d is negative", ErrInvalidOptions, *o.Limit)
	}
	if o.Width < 0 {
		return fmt.Errorf("%w: width %d is negative", ErrInvalidOptions, o.Width)
	}
	return nil
}

func (o Options) apply(l layout) layout {
	if o.Limit != nil {
		l = l.atMost(*o.Limit)
	}
	if o.Separator != nil {
		l.sep = *o.Separator
	}
	if o.LeftBracket != nil {
		l.left = *o.LeftBracket
	}
	if o.RightBracket != nil {
		l.right = *o.RightBracket
	}
	if o.Width > 0 {
		l.width = o.Width
	}
	return l
}

// With applies the non-nil fields of o.
func (s Slice[T]) With(o Options) Slice[T] {
	s.opts = o.apply(s.opts)
	return s
}

// With applies the non-nil fields of o.
func (s SeqDisplay[T]) With(o Options) SeqDisplay[T] {
	s.opts = o.apply(s.opts)
	return s
}

// DecodeOptions reads Options encoded as f from r. Unknown keys are
// rejected. Empty input yields zero Options.
func DecodeOptions(r io.Reader, f ConfigFormat) (Options, error) {
	var o Options
	var err error
	switch f {
	case ConfigYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&o)
	case ConfigTOML:
		var md toml.MetaData
		md, err = toml.NewDecoder(r).Decode(&o)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown key %q", undecoded[0].String())
			}
		}
	case ConfigJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&o)
	default:
		return Options{}, fmt.Errorf("%w: %q", ErrUnsupportedConfig, f)
	}
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return Options{}, fmt.Errorf("%w: %s: %s", ErrInvalidOptions, f, err)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// LoadOptions reads Options from the file at path, choosing the decoder by
// extension: .yaml, .yml, .toml or .json.
func LoadOptions(path string) (Options, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := configExtensions[ext]
	if !ok {
		return Options{}, fmt.Errorf("%w: extension %q", ErrUnsupportedConfig, ext)
	}
	file, err := os.Open(path)
	if err != nil {
		return Options{}, err
	}
	defer file.Close()
	return DecodeOptions(file, f)
}
