package content

import (
	"encoding/json"
	"fmt"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// FromYAML converts a parsed YAML node into a tree. Mapping order is kept.
func FromYAML(n *yaml.Node) (Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return FromYAML(n.Content[0])
	case yaml.AliasNode:
		return FromYAML(n.Alias)
	case yaml.MappingNode:
		raw := orderedmap.New[string, yaml.Node]()
		if err := raw.UnmarshalYAML(n); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		m := NewMap()
		for p := raw.Oldest(); p != nil; p = p.Next() {
			child, err := FromYAML(&p.Value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", p.Key, err)
			}
			m.Set(p.Key, child)
		}
		return m, nil
	case yaml.SequenceNode:
		l := make(List, 0, len(n.Content))
		for i, item := range n.Content {
			child, err := FromYAML(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			l = append(l, child)
		}
		return l, nil
	case yaml.ScalarNode:
		return yamlScalar(n)
	}
	return nil, fmt.Errorf("unsupported yaml node kind %d at line %d", n.Kind, n.Line)
}

func yamlScalar(n *yaml.Node) (Node, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		if json.Valid([]byte(n.Value)) {
			return Scalar{Value: json.Number(n.Value)}, nil
		}
		// 0x1F, 1_000, .inf and friends.
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		if num := fmt.Sprint(v); json.Valid([]byte(num)) {
			return Scalar{Value: json.Number(num)}, nil
		}
		return String(n.Value), nil
	default:
		return String(n.Value), nil
	}
}
