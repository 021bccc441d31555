package native

// InputKind is the widget's input type.
type InputKind uint8

const (
	KindText InputKind = iota
	KindEmail
	KindNumber
	KindTel
	KindSearch
	KindURL
	KindPassword
)

func (k InputKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindEmail:
		return "email"
	case KindNumber:
		return "number"
	case KindTel:
		return "tel"
	case KindSearch:
		return "search"
	case KindURL:
		return "url"
	case KindPassword:
		return "password"
	default:
		return "unknown"
	}
}

// Props is a partial set of widget attributes. nil fields are left untouched.
type Props struct {
	Kind             *InputKind
	ReadOnly         *bool
	MaxLength        *int
	Placeholder      *string
	PlaceholderColor *string
	AutoCorrect      *bool
	AutoCapitalize   *string
	AutoComplete     *string
}

// Merge returns p with every non-nil field of o applied on top.
func (p Props) Merge(o Props) Props {
	if o.Kind != nil {
		p.Kind = o.Kind
	}
	if o.ReadOnly != nil {
		p.ReadOnly = o.ReadOnly
	}
	if o.MaxLength != nil {
		p.MaxLength = o.MaxLength
	}
	if o.Placeholder != nil {
		p.Placeholder = o.Placeholder
	}
	if o.PlaceholderColor != nil {
		p.PlaceholderColor = o.PlaceholderColor
	}
	if o.AutoCorrect != nil {
		p.AutoCorrect = o.AutoCorrect
	}
	if o.AutoCapitalize != nil {
		p.AutoCapitalize = o.AutoCapitalize
	}
	if o.AutoComplete != nil {
		p.AutoComplete = o.AutoComplete
	}
	return p
}

// Updater applies attributes to a widget. It stands in for the host's
// generic set-native-property dispatch.
type Updater interface {
	UpdateView(h Handle, p Props) error
}
