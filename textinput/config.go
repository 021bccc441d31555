package textinput

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/textfield/mirror"
	"github.com/iw2rmb/textfield/selection"
)

// ErrInvalidConfig is wrapped by every Config validation error.
var ErrInvalidConfig = errors.New("textinput: invalid config")

// KeyboardType hints at the virtual keyboard and selects the widget's input kind.
type KeyboardType string

const (
	KeyboardDefault      KeyboardType = "default"
	KeyboardEmailAddress KeyboardType = "email-address"
	KeyboardNumberPad    KeyboardType = "number-pad"
	KeyboardNumeric      KeyboardType = "numeric"
	KeyboardPhonePad     KeyboardType = "phone-pad"
	KeyboardSearch       KeyboardType = "search"
	KeyboardURL          KeyboardType = "url"
	KeyboardWebSearch    KeyboardType = "web-search"
)

// AutoCapitalize is passed through to the widget.
type AutoCapitalize string

const (
	CapitalizeCharacters AutoCapitalize = "characters"
	CapitalizeNone       AutoCapitalize = "none"
	CapitalizeSentences  AutoCapitalize = "sentences"
	CapitalizeWords      AutoCapitalize = "words"
)

// Config is the declarative configuration of one text input.
//
// Fields that default to true are pointers; use Bool to set them. A Config is
// treated as immutable once handed to a Controller.
type Config struct {
	// Value makes the input controlled: drift is restored on every Update.
	Value        *string
	DefaultValue string

	Multiline bool
	// NumberOfLines fixes the visible rows of a multi-line input. 0 grows with content.
	NumberOfLines int
	// Rows is the minimum number of mirrored rows. 0 disables padding.
	Rows int

	KeyboardType    KeyboardType
	SecureTextEntry bool
	Editable        *bool
	MaxLength       int

	AutoCorrect    *bool
	AutoCapitalize AutoCapitalize
	AutoComplete   string
	AutoFocus      bool

	Selection *selection.Range

	ClearTextOnFocus  bool
	SelectTextOnFocus bool
	// BlurOnSubmit nil means: blur single-line inputs, keep multi-line focused.
	BlurOnSubmit *bool

	Placeholder          string
	PlaceholderTextColor string

	OnChange          func(*Event)
	OnChangeText      func(text string)
	OnFocus           func(*Event)
	OnBlur            func(*Event)
	OnKeyPress        func(*Event)
	OnSelectionChange func(*Event)
	OnSubmitEditing   func(*Event)
}

// Bool returns a pointer to v, for optional Config fields.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v, for Config.Value.
func String(v string) *string { return &v }

// WithDefaults fills unset fields with their documented defaults.
func (c Config) WithDefaults() Config {
	if c.KeyboardType == "" {
		c.KeyboardType = KeyboardDefault
	}
	if c.AutoCapitalize == "" {
		c.AutoCapitalize = CapitalizeSentences
	}
	if c.AutoComplete == "" {
		c.AutoComplete = "on"
	}
	if c.AutoCorrect == nil {
		c.AutoCorrect = Bool(true)
	}
	if c.Editable == nil {
		c.Editable = Bool(true)
	}
	return c
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch c.KeyboardType {
	case "", KeyboardDefault, KeyboardEmailAddress, KeyboardNumberPad, KeyboardNumeric,
		KeyboardPhonePad, KeyboardSearch, KeyboardURL, KeyboardWebSearch:
	default:
		return fmt.Errorf("%w: unknown keyboard type %q", ErrInvalidConfig, c.KeyboardType)
	}
	switch c.AutoCapitalize {
	case "", CapitalizeCharacters, CapitalizeNone, CapitalizeSentences, CapitalizeWords:
	default:
		return fmt.Errorf("%w: unknown auto-capitalize mode %q", ErrInvalidConfig, c.AutoCapitalize)
	}
	if c.NumberOfLines < 0 {
		return fmt.Errorf("%w: number of lines %d < 0", ErrInvalidConfig, c.NumberOfLines)
	}
	if c.Rows < 0 {
		return fmt.Errorf("%w: rows %d < 0", ErrInvalidConfig, c.Rows)
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("%w: max length %d < 0", ErrInvalidConfig, c.MaxLength)
	}
	if c.Selection != nil && c.Selection.Start < 0 {
		return fmt.Errorf("%w: selection start %d < 0", ErrInvalidConfig, c.Selection.Start)
	}
	return nil
}

// ShouldBlurOnSubmit resolves BlurOnSubmit against the current Multiline.
func (c Config) ShouldBlurOnSubmit() bool {
	if c.BlurOnSubmit != nil {
		return *c.BlurOnSubmit
	}
	return !c.Multiline
}

func (c Config) mirrorOptions() mirror.Options {
	return mirror.Options{
		Multiline:     c.Multiline,
		NumberOfLines: c.NumberOfLines,
		Rows:          c.Rows,
	}
}

func (c Config) initialValue() string {
	if c.Value != nil {
		return *c.Value
	}
	return c.DefaultValue
}
