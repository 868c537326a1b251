package numeric

// UnmarshalText only has the string form to work with, so it is Parse.
// Environment variables and flags arrive this way.
func (n *Numeric) UnmarshalText(b []byte) error {
	v, err := Decode(Text(string(b)))
	if err != nil {
		return err
	}

	*n = v

	return nil
}

func (n Numeric) MarshalText() ([]byte, error) {
	return n.appendDigits(nil), nil
}
