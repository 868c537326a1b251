package numeric

import (
	"time"
)

// UnmarshalTOML implements toml.Unmarshaler. The decoder presents integers as
// int64 and strings as string.
func (n *Numeric) UnmarshalTOML(data interface{}) error {
	t, err := tomlToken(data)
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

// MarshalTOML implements toml.Marshaler. The output is written verbatim, so
// the key holds a bare integer.
func (n Numeric) MarshalTOML() ([]byte, error) {
	return n.appendDigits(nil), nil
}

func tomlToken(data interface{}) (Token, error) {
	switch v := data.(type) {
	case int64:
		if v < 0 {
			return Token{}, &TypeError{Kind: "number"}
		}
		return Integer(uint64(v)), nil
	case string:
		return Text(v), nil
	case bool:
		return Token{}, &TypeError{Kind: "boolean"}
	case float64:
		return Token{}, &TypeError{Kind: "float"}
	case time.Time:
		return Token{}, &TypeError{Kind: "datetime"}
	case []interface{}, []map[string]interface{}:
		return Token{}, &TypeError{Kind: "array"}
	case map[string]interface{}:
		return Token{}, &TypeError{Kind: "table"}
	default:
		return Token{}, &TypeError{Kind: "unknown"}
	}
}
