package numeric

type tokenKind uint8

const (
	noToken tokenKind = iota
	integerToken
	textToken
)

// Token is a single value as presented by a host decoder: either a native
// unsigned integer, possibly wider than 32 bits, or a string.
type Token struct {
	kind tokenKind
	n    uint64
	s    string
}

func Integer(n uint64) Token {
	return Token{kind: integerToken, n: n}
}

func Text(s string) Token {
	return Token{kind: textToken, s: s}
}

// Decode converts t into a Numeric. It is the single entry point used by
// every format hook in this package.
func Decode(t Token) (Numeric, error) {
	switch t.kind {
	case integerToken:
		return FromUint64(t.n)
	case textToken:
		return Parse(t.s)
	default:
		return Numeric{}, &TypeError{Kind: "empty"}
	}
}
