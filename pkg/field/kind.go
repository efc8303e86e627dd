package field

// Kind identifies which rule set applies to a tracked field.
// The zero value is not a valid kind and is never returned by a Classifier.
type Kind uint8

const (
	KindEmail Kind = iota + 1
	KindPhone
	KindNationalID
	KindPlate
)

// Kinds lists every valid kind in a stable order.
var Kinds = []Kind{KindEmail, KindPhone, KindNationalID, KindPlate}

func (k Kind) String() string {
	switch k {
	case KindEmail:
		return "email"
	case KindPhone:
		return "phone"
	case KindNationalID:
		return "national_id"
	case KindPlate:
		return "plate"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindEmail && k <= KindPlate
}

// Message is the fixed user-facing text shown when a value of this kind is invalid.
// Clients match on it, so it is not localised.
func (k Kind) Message() string {
	if !k.Valid() {
		return ""
	}
	return Rule(k, k.String(), "").Error.Message
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}
