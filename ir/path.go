package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// GetPath returns the node at path below y.  path uses the syntax returned
// by Path, eg "$.cfg.items[2]" or "$.'a.b'"; the leading "$" and "." may
// be omitted.  With duplicate keys the last entry is followed.
func (y *Node) GetPath(path string) (*Node, error) {
	p := strings.TrimPrefix(path, "$")
	cur := y
	for p != "" {
		switch p[0] {
		case '.':
			p = p[1:]
		case '[':
			j := strings.IndexByte(p, ']')
			if j == -1 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrPath, path)
			}
			i, err := strconv.Atoi(p[1:j])
			if err != nil {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrPath, p[1:j], path)
			}
			if cur.typ != ListType {
				return nil, fmt.Errorf("%w: %s is %s, not List", ErrPath, cur.Path(), cur.typ)
			}
			if i < 0 || i >= len(cur.values) {
				return nil, fmt.Errorf("%w: index %d out of range at %s", ErrPath, i, cur.Path())
			}
			cur = cur.values[i]
			p = p[j+1:]
		case '\'':
			var b strings.Builder
			j := 1
			for ; j < len(p) && p[j] != '\''; j++ {
				if p[j] == '\\' && j+1 < len(p) && p[j+1] == '\'' {
					j++
				}
				b.WriteByte(p[j])
			}
			if j >= len(p) {
				return nil, fmt.Errorf("%w: unterminated quote in %q", ErrPath, path)
			}
			next, err := cur.field(b.String())
			if err != nil {
				return nil, err
			}
			cur = next
			p = p[j+1:]
		default:
			j := strings.IndexAny(p, ".[")
			if j == -1 {
				j = len(p)
			}
			next, err := cur.field(p[:j])
			if err != nil {
				return nil, err
			}
			cur = next
			p = p[j:]
		}
	}
	return cur, nil
}

func (y *Node) field(key string) (*Node, error) {
	if y.typ != ClassType {
		return nil, fmt.Errorf("%w: %s is %s, not Class", ErrPath, y.Path(), y.typ)
	}
	res := y.Get(key)
	if res == nil {
		return nil, fmt.Errorf("%w: no entry %q at %s", ErrPath, key, y.Path())
	}
	return res, nil
}
