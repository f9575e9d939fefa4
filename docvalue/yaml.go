package docvalue

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// EncodeYAML renders v as a YAML document. Object field order follows
// insertion order (mapping nodes are built explicitly, not via Go maps).
func EncodeYAML(v Value) ([]byte, error) {
	if v == nil {
		v = Null{}
	}
	return yaml.Marshal(v)
}

func (Null) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
}

func (b Bool) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(b))}, nil
}

func (n Number) MarshalYAML() (any, error) {
	lit := string(n)
	if lit == "" {
		lit = "0"
	}
	tag := "!!float"
	if _, err := strconv.ParseInt(lit, 10, 64); err == nil {
		tag = "!!int"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: lit}, nil
}

func (s Str) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(s)}, nil
}

func (a Array) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, e := range a {
		c, err := yamlNode(e)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, c)
	}
	return node, nil
}

func (o *Object) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range o.fields {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name}
		val, err := yamlNode(f.Value)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

func yamlNode(v Value) (*yaml.Node, error) {
	if v == nil {
		v = Null{}
	}
	m, err := v.(yaml.Marshaler).MarshalYAML()
	if err != nil {
		return nil, err
	}
	return m.(*yaml.Node), nil
}
