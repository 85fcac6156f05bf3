// Package argfile decodes template arguments from YAML or JSON documents.
//
// The document must be a sequence; each item is one argument. Mappings keep
// their key order and become associative arrays, sequences become lists, and
// a scalar tagged !omit becomes the omit sentinel:
//
//	- 42
//	- "O'Brien"
//	- {name: Bob, age: 30}
//	- !omit
package argfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Guadalsistema/go-sqltemplate"
)

// OmitTag marks a scalar as the omit sentinel.
const OmitTag = "!omit"

// Decode reads a single document from r. An empty document yields no
// arguments.
func Decode(r io.Reader) ([]any, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("argfile: %w", err)
	}
	return fromDocument(&doc)
}

// ReadFile decodes the arguments stored in path. A path of "-" reads from
// standard input.
func ReadFile(path string) ([]any, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("argfile: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func fromDocument(doc *yaml.Node) ([]any, error) {
	root := doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("argfile: line %d: arguments must be a sequence", root.Line)
	}

	args := make([]any, len(root.Content))
	for i, n := range root.Content {
		v, err := fromNode(n)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func fromNode(n *yaml.Node) (sqltemplate.Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.SequenceNode:
		elems := make([]sqltemplate.Value, len(n.Content))
		for i, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return sqltemplate.Value{}, err
			}
			elems[i] = v
		}
		return sqltemplate.List(elems...), nil
	case yaml.MappingNode:
		pairs := make([]sqltemplate.Pair, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return sqltemplate.Value{}, fmt.Errorf("argfile: line %d: mapping keys must be scalars", key.Line)
			}
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return sqltemplate.Value{}, err
			}
			pairs = append(pairs, sqltemplate.Pair{Key: key.Value, Value: v})
		}
		return sqltemplate.Assoc(pairs...), nil
	case yaml.ScalarNode:
		return fromScalar(n)
	}
	return sqltemplate.Value{}, fmt.Errorf("argfile: line %d: unsupported node", n.Line)
}

func fromScalar(n *yaml.Node) (sqltemplate.Value, error) {
	switch n.ShortTag() {
	case OmitTag:
		return sqltemplate.Omit(), nil
	case "!!null":
		return sqltemplate.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return sqltemplate.Value{}, fmt.Errorf("argfile: line %d: %w", n.Line, err)
		}
		return sqltemplate.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return sqltemplate.Value{}, fmt.Errorf("argfile: line %d: %w", n.Line, err)
		}
		return sqltemplate.Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return sqltemplate.Value{}, fmt.Errorf("argfile: line %d: %w", n.Line, err)
		}
		return sqltemplate.Float(f), nil
	}
	return sqltemplate.String(n.Value), nil
}
