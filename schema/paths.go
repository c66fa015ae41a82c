package schema

import "strings"

// FullPath returns the dot-joined path from the root to this node, skipping
// empty names. Part of contracts.Field.
func (s *Schema) FullPath() string {
	if s.parent == nil {
		return s.name
	}
	parentPath := s.parent.FullPath()
	if parentPath == "" {
		return s.name
	}
	if s.name == "" {
		return parentPath
	}
	return parentPath + "." + s.name
}

// OwnPaths returns the immediate child names of a branch, in declaration
// order; nil for a leaf.
func (s *Schema) OwnPaths() []string {
	if s.children == nil {
		return nil
	}
	out := make([]string, len(s.children))
	for i, child := range s.children {
		out[i] = child.name
	}
	return out
}

// Paths returns every leaf-reachable dotted path under the node, relative to
// it, in declaration order. A leaf queried directly reports the singleton of
// its own name.
func (s *Schema) Paths() []string {
	if !s.isBranch() {
		return []string{s.name}
	}

	var out []string
	for _, child := range s.children {
		if !child.isBranch() {
			out = append(out, child.name)
			continue
		}
		for _, p := range child.Paths() {
			out = append(out, child.name+"."+p)
		}
	}
	return out
}

// SchemaAtPath resolves the first segment of a path against the node's
// children by exact name match. Deeper resolution is the caller's loop, not
// this method's.
func (s *Schema) SchemaAtPath(path string) *Schema {
	segment := path
	if i := strings.IndexByte(path, '.'); i >= 0 {
		segment = path[:i]
	}
	for _, child := range s.children {
		if child.name == segment {
			return child
		}
	}
	return nil
}

// HasField reports whether a dotted path is present in the node's Paths set.
func (s *Schema) HasField(name string) bool {
	for _, p := range s.Paths() {
		if p == name {
			return true
		}
	}
	return false
}

func splitPath(path string) []string {
	return strings.Split(path, ".")
}
