package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// jsonNode parses a JSON document into a yaml.Node tree so JSON and YAML
// catalogs go through the same validation. Key order and repeated keys are
// preserved, and each node carries the line it ends on.
func jsonNode(data []byte) (*yaml.Node, error) {
	p := &jsonParser{data: data, dec: json.NewDecoder(bytes.NewReader(data))}
	p.dec.UseNumber()

	root, err := p.value()
	if err != nil {
		return nil, err
	}
	if _, err := p.dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, err
	}
	return root, nil
}

type jsonParser struct {
	data []byte
	dec  *json.Decoder
}

// line returns the line of the most recently read token. JSON tokens never
// span lines, so the end offset is on the token's own line.
func (p *jsonParser) line() int {
	end := int(p.dec.InputOffset())
	if end > len(p.data) {
		end = len(p.data)
	}
	return bytes.Count(p.data[:end], []byte{'\n'}) + 1
}

// next reads a token that must exist; running out of input is an error.
func (p *jsonParser) next() (json.Token, error) {
	tok, err := p.dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}

// close consumes the delimiter ending the current object or array.
func (p *jsonParser) close() error {
	_, err := p.next()
	return err
}

func (p *jsonParser) value() (*yaml.Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	line := p.line()

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return p.object(line)
		case '[':
			return p.array(line)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: t, Style: yaml.DoubleQuotedStyle, Line: line}, nil
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(t.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: t.String(), Line: line}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(t), Line: line}, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null", Line: line}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func (p *jsonParser) object(line int) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Line: line}
	for p.dec.More() {
		key, err := p.value()
		if err != nil {
			return nil, err
		}
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, val)
	}
	if err := p.close(); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *jsonParser) array(line int) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Line: line}
	for p.dec.More() {
		item, err := p.value()
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, item)
	}
	if err := p.close(); err != nil {
		return nil, err
	}
	return node, nil
}
