package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"gitlab.com/gitlab-org/derp-numeric/numeric"
)

const (
	JSON = "json"
	YAML = "yaml"
	TOML = "toml"
	Text = "text"
)

var (
	ErrUnknownFormat = errors.New("unknown format")
	ErrTrailingData  = errors.New("trailing data after value")
)

type decodeFunc func([]byte) (numeric.Numeric, error)

var decoders = map[string]decodeFunc{
	JSON: decodeJSON,
	YAML: decodeYAML,
	TOML: decodeTOML,
	Text: decodeText,
}

// Decode reads exactly one value encoded in the given format.
func Decode(format string, data []byte) (numeric.Numeric, error) {
	decode, ok := decoders[format]
	if !ok {
		return numeric.Numeric{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return decode(data)
}

func Supported(format string) bool {
	_, ok := decoders[format]
	return ok
}

func Formats() []string {
	formats := make([]string, 0, len(decoders))
	for f := range decoders {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	return formats
}

func decodeJSON(data []byte) (numeric.Numeric, error) {
	var n numeric.Numeric
	err := json.Unmarshal(data, &n)
	return n, err
}

func decodeYAML(data []byte) (numeric.Numeric, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var n numeric.Numeric
	if err := dec.Decode(&n); err != nil && err != io.EOF {
		return numeric.Numeric{}, err
	}

	// yaml.v3 skips the hook for empty and null documents
	if n.IsZero() {
		return numeric.Numeric{}, &numeric.TypeError{Kind: "null"}
	}

	var next yaml.Node
	if err := dec.Decode(&next); err != io.EOF {
		if err != nil {
			return numeric.Numeric{}, err
		}
		return numeric.Numeric{}, fmt.Errorf("%w: more than one YAML document", ErrTrailingData)
	}

	return n, nil
}

type tomlValue struct {
	Value interface{} `toml:"value"`
}

// decodeTOML reads a bare TOML value as the right-hand side of a key. The
// hook is called directly so that its typed errors reach the caller.
func decodeTOML(data []byte) (numeric.Numeric, error) {
	var doc tomlValue
	md, err := toml.Decode("value = "+string(bytes.TrimSpace(data)), &doc)
	if err != nil {
		return numeric.Numeric{}, err
	}

	var n numeric.Numeric
	if err := n.UnmarshalTOML(doc.Value); err != nil {
		return numeric.Numeric{}, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return numeric.Numeric{}, fmt.Errorf("%w: unexpected TOML key %q", ErrTrailingData, undecoded[0].String())
	}

	return n, nil
}

// decodeText drops one line terminator; any other whitespace is left for
// Parse to reject.
func decodeText(data []byte) (numeric.Numeric, error) {
	if bytes.HasSuffix(data, []byte("\n")) {
		data = bytes.TrimSuffix(data[:len(data)-1], []byte("\r"))
	}

	return numeric.Parse(string(data))
}
