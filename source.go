package vfsh

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viktoryBurm/vfsh/internal/util"
)

// The declarative VFS document is a single mapping whose "/" entry is the
// root directory. Every node carries a "type" discriminator and a
// "content" payload: a child mapping for directories, literal or
// base64-marked text for files.
//
// Documents are parsed through the yaml.v3 node API rather than plain
// unmarshaling because child order is significant and Go maps would lose
// it. JSON documents parse the same way (YAML is a superset), so both
// formats keep their declared order.

// Load parses a VFS document and returns its root directory.
func Load(data []byte) (*Dir, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse VFS document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty VFS document")
	}

	top := resolveAlias(doc.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("VFS document must be a mapping, got %s at line %d", yamlKindName(top.Kind), top.Line)
	}
	for i := 0; i < len(top.Content)-1; i += 2 {
		if top.Content[i].Value != Separator {
			continue
		}
		root, err := decodeNode(top.Content[i+1])
		if err != nil {
			return nil, err
		}
		dir, ok := root.(*Dir)
		if !ok {
			return nil, fmt.Errorf("root node %q must be a directory", Separator)
		}
		return dir, nil
	}
	return nil, fmt.Errorf("VFS document has no %q entry", Separator)
}

// LoadFile reads and parses a VFS document from disk.
func LoadFile(path string) (*Dir, error) {
	logger := util.GetLogger("source")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read VFS document: %w", err)
	}
	root, err := Load(data)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", path).Msg("VFS document loaded successfully")
	return root, nil
}

// decodeNode converts one document node into a Dir or File based on its
// "type" discriminator.
func decodeNode(n *yaml.Node) (Node, error) {
	n = resolveAlias(n)
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("node must be a mapping, got %s at line %d", yamlKindName(n.Kind), n.Line)
	}

	var nodeType string
	var content *yaml.Node
	for i := 0; i < len(n.Content)-1; i += 2 {
		key, value := n.Content[i], resolveAlias(n.Content[i+1])
		switch key.Value {
		case "type":
			nodeType = value.Value
		case "content":
			content = value
		}
	}

	switch NodeType(nodeType) {
	case FileNodeType:
		return decodeFile(content)
	case DirNodeType:
		return decodeDir(content)
	default:
		return nil, fmt.Errorf("unknown node type %q at line %d", nodeType, n.Line)
	}
}

func decodeFile(content *yaml.Node) (*File, error) {
	if content == nil || content.Kind == 0 {
		return NewFile(""), nil
	}
	if content.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("file content must be a string, got %s at line %d", yamlKindName(content.Kind), content.Line)
	}
	return NewFile(content.Value), nil
}

func decodeDir(content *yaml.Node) (*Dir, error) {
	dir := NewDir()
	if content == nil || content.Kind == 0 {
		return dir, nil
	}
	if content.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("directory content must be a mapping, got %s at line %d", yamlKindName(content.Kind), content.Line)
	}
	for i := 0; i < len(content.Content)-1; i += 2 {
		key := content.Content[i]
		child, err := decodeNode(content.Content[i+1])
		if err != nil {
			return nil, err
		}
		if err := dir.addChild(key.Value, child); err != nil {
			return nil, fmt.Errorf("%w at line %d", err, key.Line)
		}
	}
	return dir, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// DefaultTree builds the built-in fallback VFS used when no document is
// supplied or loading fails.
func DefaultTree() *Dir {
	readme := NewFile("Welcome to the virtual filesystem!\n")
	file1 := NewFile("Contents of file1.txt\n")

	documents := NewDir()
	documents.addChild("readme.txt", readme) // nolint:errcheck

	user := NewDir()
	user.addChild("documents", documents) // nolint:errcheck
	user.addChild("file1.txt", file1)     // nolint:errcheck

	home := NewDir()
	home.addChild("user", user) // nolint:errcheck

	root := NewDir()
	root.addChild("home", home) // nolint:errcheck
	return root
}
