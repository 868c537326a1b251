package numeric

import (
	"strings"

	"gopkg.in/yaml.v3"
)

func (n *Numeric) UnmarshalYAML(node *yaml.Node) error {
	t, err := yamlToken(node)
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

func (n Numeric) MarshalYAML() (interface{}, error) {
	return n.v, nil
}

func yamlToken(node *yaml.Node) (Token, error) {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.ScalarNode:
	case yaml.SequenceNode:
		return Token{}, &TypeError{Kind: "sequence"}
	case yaml.MappingNode:
		return Token{}, &TypeError{Kind: "mapping"}
	default:
		return Token{}, &TypeError{Kind: "empty"}
	}

	switch tag := node.ShortTag(); tag {
	case "!!int":
		var i uint64
		if err := node.Decode(&i); err != nil {
			return Token{}, &TypeError{Kind: "number"}
		}

		return Integer(i), nil
	case "!!str":
		return Text(node.Value), nil
	case "!!bool":
		return Token{}, &TypeError{Kind: "boolean"}
	case "!!float":
		return Token{}, &TypeError{Kind: "float"}
	case "!!null":
		return Token{}, &TypeError{Kind: "null"}
	default:
		return Token{}, &TypeError{Kind: strings.TrimPrefix(tag, "!!")}
	}
}
