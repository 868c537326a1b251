package numeric

import (
	"encoding/json"
	"strconv"
)

func (n *Numeric) UnmarshalJSON(b []byte) error {
	t, err := jsonToken(b)
	if err != nil {
		return err
	}

	v, err := Decode(t)
	if err != nil {
		return err
	}

	*n = v

	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	return n.appendDigits(nil), nil
}

func jsonToken(b []byte) (Token, error) {
	if len(b) == 0 {
		return Token{}, &TypeError{Kind: "empty"}
	}

	switch c := b[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return Token{}, err
		}

		return Text(s), nil
	case c >= '0' && c <= '9':
		i, err := strconv.ParseUint(string(b), 10, 64)
		if err != nil {
			return Token{}, &TypeError{Kind: "number"}
		}

		return Integer(i), nil
	default:
		return Token{}, &TypeError{Kind: jsonKind(c)}
	}
}

func jsonKind(c byte) string {
	switch c {
	case '-':
		return "number"
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	case '[':
		return "array"
	case '{':
		return "object"
	default:
		return "invalid JSON"
	}
}
