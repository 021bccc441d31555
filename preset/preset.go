// Package preset loads named text field configurations from TOML.
package preset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/iw2rmb/textfield/textinput"
)

// Field is the file form of a textinput.Config.
type Field struct {
	Label            string `mapstructure:"label"`
	Default          string `mapstructure:"default"`
	Placeholder      string `mapstructure:"placeholder"`
	PlaceholderColor string `mapstructure:"placeholder_color"`
	Keyboard         string `mapstructure:"keyboard"`
	Secure           bool   `mapstructure:"secure"`
	Multiline        bool   `mapstructure:"multiline"`
	NumberOfLines    int    `mapstructure:"number_of_lines"`
	Rows             int    `mapstructure:"rows"`
	MaxLength        int    `mapstructure:"max_length"`
	ReadOnly         bool   `mapstructure:"read_only"`
	AutoCapitalize   string `mapstructure:"auto_capitalize"`
	AutoCorrect      *bool  `mapstructure:"auto_correct"`
	ClearOnFocus     bool   `mapstructure:"clear_on_focus"`
	SelectOnFocus    bool   `mapstructure:"select_on_focus"`
	BlurOnSubmit     *bool  `mapstructure:"blur_on_submit"`
}

// Config converts f into a textinput.Config without callbacks.
func (f Field) Config() textinput.Config {
	return textinput.Config{
		DefaultValue:         f.Default,
		Multiline:            f.Multiline,
		NumberOfLines:        f.NumberOfLines,
		Rows:                 f.Rows,
		KeyboardType:         textinput.KeyboardType(f.Keyboard),
		SecureTextEntry:      f.Secure,
		Editable:             textinput.Bool(!f.ReadOnly),
		MaxLength:            f.MaxLength,
		AutoCorrect:          f.AutoCorrect,
		AutoCapitalize:       textinput.AutoCapitalize(f.AutoCapitalize),
		ClearTextOnFocus:     f.ClearOnFocus,
		SelectTextOnFocus:    f.SelectOnFocus,
		BlurOnSubmit:         f.BlurOnSubmit,
		Placeholder:          f.Placeholder,
		PlaceholderTextColor: f.PlaceholderColor,
	}
}

// Set is a form of named fields.
type Set struct {
	Width  int              `mapstructure:"width"`
	Prompt string           `mapstructure:"prompt"`
	Order  []string         `mapstructure:"order"`
	Fields map[string]Field `mapstructure:"fields"`
}

// Names returns field names in display order: Order first, then any field
// Order does not mention.
func (s Set) Names() []string {
	seen := make(map[string]bool, len(s.Fields))
	out := make([]string, 0, len(s.Fields))
	for _, name := range s.Order {
		if _, ok := s.Fields[name]; ok && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	var rest []string
	for name := range s.Fields {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	return append(out, rest...)
}

// Validate checks every field config.
func (s Set) Validate() error {
	for _, name := range s.Names() {
		if err := s.Fields[name].Config().Validate(); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	return nil
}

// Builtin is the set used when no file is found.
func Builtin() Set {
	return Set{
		Width:  40,
		Prompt: "> ",
		Order:  []string{"name", "email", "phone", "notes"},
		Fields: map[string]Field{
			"name": {
				Label:          "Name",
				Placeholder:    "Jane Doe",
				AutoCapitalize: string(textinput.CapitalizeWords),
			},
			"email": {
				Label:          "Email",
				Placeholder:    "jane@example.com",
				Keyboard:       string(textinput.KeyboardEmailAddress),
				AutoCapitalize: string(textinput.CapitalizeNone),
			},
			"phone": {
				Label:       "Phone",
				Placeholder: "+1 555 0100",
				Keyboard:    string(textinput.KeyboardPhonePad),
				MaxLength:   20,
			},
			"notes": {
				Label:         "Notes",
				Placeholder:   "Anything else?",
				Multiline:     true,
				Rows:          3,
				SelectOnFocus: true,
			},
		},
	}
}

// Load reads a preset set from path. An empty path falls back to
// TEXTFIELD_CONFIG, then to presets.toml under ~/.config/textfield. Env vars
// with prefix TEXTFIELD_ override top-level keys. Only a missing file at the
// default location yields the built-in set; a named file must exist.
func Load(path string) (Set, error) {
	v := viper.New()

	builtin := Builtin()
	v.SetDefault("width", builtin.Width)
	v.SetDefault("prompt", builtin.Prompt)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("TEXTFIELD_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "textfield"))
		v.SetConfigName("presets")
	}

	v.SetEnvPrefix("TEXTFIELD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if explicit || !missing {
			return Set{}, fmt.Errorf("read presets: %w", err)
		}
	}

	var s Set
	if err := v.Unmarshal(&s); err != nil {
		return Set{}, fmt.Errorf("unmarshal presets: %w", err)
	}
	if len(s.Fields) == 0 {
		s.Fields = builtin.Fields
		if len(s.Order) == 0 {
			s.Order = builtin.Order
		}
	}
	if err := s.Validate(); err != nil {
		return Set{}, fmt.Errorf("presets: %w", err)
	}
	return s, nil
}
