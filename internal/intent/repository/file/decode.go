package file

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"intent-chatbot/internal/intent"
)

const (
	fieldIntents   = "intents"
	fieldTag       = "tag"
	fieldPatterns  = "patterns"
	fieldResponses = "responses"

	strTag = "!!str"
)

// Decode parses a catalog document, detecting JSON by its leading brace or
// bracket and treating anything else as YAML.
func Decode(data []byte) (intent.Catalog, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return DecodeJSON(data)
	}
	return DecodeYAML(data)
}

// DecodeJSON parses a JSON catalog and validates it.
func DecodeJSON(data []byte) (intent.Catalog, error) {
	root, err := jsonNode(data)
	if err != nil {
		return intent.Catalog{}, &intent.ValidationError{Index: -1, Reason: fmt.Sprintf("malformed document: %v", err)}
	}
	return decodeRoot(root)
}

// DecodeYAML parses a YAML catalog and validates it.
func DecodeYAML(data []byte) (intent.Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return intent.Catalog{}, &intent.ValidationError{Index: -1, Reason: fmt.Sprintf("malformed document: %v", err)}
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return intent.Catalog{}, &intent.ValidationError{Index: -1, Field: fieldIntents, Reason: "document is empty"}
		}
		root = root.Content[0]
	}
	return decodeRoot(root)
}

// decodeRoot validates a parsed document tree. Both formats end up here so
// they share one set of rules and diagnostics.
func decodeRoot(root *yaml.Node) (intent.Catalog, error) {
	root = resolve(root)
	if root == nil || root.Kind != yaml.MappingNode {
		return intent.Catalog{}, &intent.ValidationError{Index: -1, Field: fieldIntents, Reason: "top-level document must be a mapping", Line: line(root)}
	}
	if key, dup := duplicateKey(root); dup {
		return intent.Catalog{}, &intent.ValidationError{Index: -1, Field: key.Value, Reason: "duplicate key", Line: key.Line}
	}

	intentsNode, ok := lookup(root, fieldIntents)
	if !ok {
		return intent.Catalog{}, &intent.ValidationError{Index: -1, Field: fieldIntents, Reason: "missing", Line: root.Line}
	}
	if intentsNode.Kind != yaml.SequenceNode {
		return intent.Catalog{}, &intent.ValidationError{Index: -1, Field: fieldIntents, Reason: "must be a sequence", Line: intentsNode.Line}
	}
	if len(intentsNode.Content) == 0 {
		return intent.Catalog{}, &intent.ValidationError{Index: -1, Field: fieldIntents, Reason: "must contain at least one intent", Line: intentsNode.Line}
	}

	catalog := intent.Catalog{Intents: make([]intent.Intent, 0, len(intentsNode.Content))}
	seen := make(map[string]int, len(intentsNode.Content))

	for i, entry := range intentsNode.Content {
		in, err := decodeIntent(i, resolve(entry))
		if err != nil {
			return intent.Catalog{}, err
		}
		if first, dup := seen[in.Tag]; dup {
			return intent.Catalog{}, &intent.ValidationError{
				Index:  i,
				Field:  fieldTag,
				Reason: fmt.Sprintf("duplicate tag %q (first defined at intents[%d])", in.Tag, first),
				Line:   entry.Line,
			}
		}
		seen[in.Tag] = i
		catalog.Intents = append(catalog.Intents, in)
	}

	return catalog, nil
}

func decodeIntent(i int, node *yaml.Node) (intent.Intent, error) {
	if node == nil || node.Kind != yaml.MappingNode {
		return intent.Intent{}, &intent.ValidationError{Index: i, Reason: "must be a record", Line: line(node)}
	}

	if key, dup := duplicateKey(node); dup {
		return intent.Intent{}, &intent.ValidationError{Index: i, Field: key.Value, Reason: "duplicate key", Line: key.Line}
	}

	tagNode, ok := lookup(node, fieldTag)
	if !ok {
		return intent.Intent{}, &intent.ValidationError{Index: i, Field: fieldTag, Reason: "missing", Line: node.Line}
	}
	tag, ok := scalar(tagNode)
	if !ok {
		return intent.Intent{}, &intent.ValidationError{Index: i, Field: fieldTag, Reason: "must be a string", Line: tagNode.Line}
	}
	if tag == "" {
		return intent.Intent{}, &intent.ValidationError{Index: i, Field: fieldTag, Reason: "must not be empty", Line: tagNode.Line}
	}

	patterns, err := stringSequence(i, node, fieldPatterns)
	if err != nil {
		return intent.Intent{}, err
	}
	responses, err := stringSequence(i, node, fieldResponses)
	if err != nil {
		return intent.Intent{}, err
	}

	return intent.Intent{Tag: tag, Patterns: patterns, Responses: responses}, nil
}

// stringSequence reads a required, non-empty sequence of scalars.
func stringSequence(i int, record *yaml.Node, field string) ([]string, error) {
	seq, ok := lookup(record, field)
	if !ok {
		return nil, &intent.ValidationError{Index: i, Field: field, Reason: "missing", Line: record.Line}
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, &intent.ValidationError{Index: i, Field: field, Reason: "must be a sequence", Line: seq.Line}
	}
	if len(seq.Content) == 0 {
		return nil, &intent.ValidationError{Index: i, Field: field, Reason: "must not be empty", Line: seq.Line}
	}

	out := make([]string, 0, len(seq.Content))
	for j, item := range seq.Content {
		s, ok := scalar(item)
		if !ok {
			return nil, &intent.ValidationError{
				Index:  i,
				Field:  fmt.Sprintf("%s[%d]", field, j),
				Reason: "must be a string",
				Line:   item.Line,
			}
		}
		out = append(out, s)
	}
	return out, nil
}

func lookup(mapping *yaml.Node, key string) (*yaml.Node, bool) {
	for k := 0; k+1 < len(mapping.Content); k += 2 {
		if mapping.Content[k].Value == key {
			return resolve(mapping.Content[k+1]), true
		}
	}
	return nil, false
}

// duplicateKey reports the second occurrence of any repeated mapping key.
func duplicateKey(mapping *yaml.Node) (*yaml.Node, bool) {
	seen := make(map[string]struct{}, len(mapping.Content)/2)
	for k := 0; k+1 < len(mapping.Content); k += 2 {
		key := mapping.Content[k]
		if _, ok := seen[key.Value]; ok {
			return key, true
		}
		seen[key.Value] = struct{}{}
	}
	return nil, false
}

// scalar accepts string scalars only. Unquoted YAML numbers and booleans
// (tag: 123) are rejected; quote them to use them as text.
func scalar(n *yaml.Node) (string, bool) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode || n.ShortTag() != strTag {
		return "", false
	}
	return n.Value, true
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func line(n *yaml.Node) int {
	if n == nil {
		return 0
	}
	return n.Line
}
