package textinput

import "github.com/iw2rmb/textfield/native"

// KindFor maps a keyboard type to the widget input kind.
// Secure entry always wins.
func KindFor(kt KeyboardType, secure bool) native.InputKind {
	if secure {
		return native.KindPassword
	}
	switch kt {
	case KeyboardEmailAddress:
		return native.KindEmail
	case KeyboardNumberPad, KeyboardNumeric:
		return native.KindNumber
	case KeyboardPhonePad:
		return native.KindTel
	case KeyboardSearch, KeyboardWebSearch:
		return native.KindSearch
	case KeyboardURL:
		return native.KindURL
	default:
		return native.KindText
	}
}

// renderProps is the full attribute set for cfg.
func renderProps(cfg Config) native.Props {
	cfg = cfg.WithDefaults()
	kind := KindFor(cfg.KeyboardType, cfg.SecureTextEntry)
	readOnly := !*cfg.Editable
	maxLength := cfg.MaxLength
	placeholder := cfg.Placeholder
	color := cfg.PlaceholderTextColor
	autoCap := string(cfg.AutoCapitalize)
	autoComplete := cfg.AutoComplete
	return native.Props{
		Kind:             &kind,
		ReadOnly:         &readOnly,
		MaxLength:        &maxLength,
		Placeholder:      &placeholder,
		PlaceholderColor: &color,
		AutoCorrect:      cfg.AutoCorrect,
		AutoCapitalize:   &autoCap,
		AutoComplete:     &autoComplete,
	}
}
