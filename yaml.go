package schemavalidator

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/devtin/schema-validator/schema"
)

// FromYAML builds a schema tree from a YAML document. Mappings without a type
// key become branches whose properties keep the document's declaration order;
// mappings with a type key become leaf specs; sequences become union type
// lists.
func FromYAML(data []byte, opts ...BuildOption) (*Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding schema definition: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("decoding schema definition: empty document")
	}

	def, err := definitionFromNode(doc.Content[0])
	if err != nil {
		return nil, fmt.Errorf("decoding schema definition: %w", err)
	}
	return schema.New(def, opts...)
}

func definitionFromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		if mappingHasKey(n, "type") {
			// Leaf spec: settings carry no ordering semantics, a plain
			// map decode suffices.
			var spec map[string]any
			if err := n.Decode(&spec); err != nil {
				return nil, err
			}
			return spec, nil
		}

		props := make(schema.Props, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			def, err := definitionFromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			props = append(props, schema.Prop{Name: n.Content[i].Value, Def: def})
		}
		return props, nil

	case yaml.SequenceNode:
		var list []any
		if err := n.Decode(&list); err != nil {
			return nil, err
		}
		return list, nil

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil

	case yaml.AliasNode:
		return definitionFromNode(n.Alias)

	default:
		return nil, fmt.Errorf("unsupported node kind %d at line %d", n.Kind, n.Line)
	}
}

func mappingHasKey(n *yaml.Node, key string) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}
