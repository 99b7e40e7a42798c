// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package path implements the tree-address datatype used as the universal
// key throughout the scene-layout engine: an immutable, ordered sequence of
// part strings with prefix/ancestor/descendant algebra, a total order, and a
// stable hash.
package path

import (
	"fmt"
	"hash/maphash"
	"regexp"
	"strings"

	"github.com/cogentcore-labs/scenelayout/errs"
)

// ErrInvalidPath is returned when a path string cannot be parsed.
var ErrInvalidPath = fmt.Errorf("path: %w", errs.ErrInvalidPath)

var partRe = regexp.MustCompile(`^[A-Za-z0-9:_-]+$`)

// Path is an immutable tree address: an ordered sequence of non-empty part
// strings. The empty Path is the root.
type Path struct {
	parts []string
}

// Root is the empty path, denoting the tree root.
var Root = Path{}

// New constructs a Path from already-validated parts. It panics if any part
// fails the part grammar; callers with untrusted input should use Parse.
func New(parts ...string) Path {
	for _, p := range parts {
		if !partRe.MatchString(p) {
			panic(fmt.Sprintf("path: invalid part %q", p))
		}
	}
	cp := make([]string, len(parts))
	copy(cp, parts)
	return Path{parts: cp}
}

// Parse parses the dotted string form ".a.b.c" (root = ".") into a Path.
// It rejects adjacent separators and parts that fail the part grammar.
func Parse(s string) (Path, error) {
	if s == "." || s == "" {
		return Root, nil
	}
	if !strings.HasPrefix(s, ".") {
		return Path{}, fmt.Errorf("%w: %q must start with \".\"", ErrInvalidPath, s)
	}
	raw := strings.Split(s[1:], ".")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p == "" {
			return Path{}, fmt.Errorf("%w: %q has an empty part (adjacent separators)", ErrInvalidPath, s)
		}
		if !partRe.MatchString(p) {
			return Path{}, fmt.Errorf("%w: %q is not a valid path part in %q", ErrInvalidPath, p, s)
		}
		parts = append(parts, p)
	}
	return Path{parts: parts}, nil
}

// Size returns the number of parts.
func (p Path) Size() int { return len(p.parts) }

// Empty reports whether this is the root path.
func (p Path) Empty() bool { return len(p.parts) == 0 }

// Parts returns a copy of the underlying parts slice; callers must not rely
// on it aliasing the Path's storage.
func (p Path) Parts() []string {
	cp := make([]string, len(p.parts))
	copy(cp, p.parts)
	return cp
}

// First returns the first part and whether the path is non-empty.
func (p Path) First() (string, bool) {
	if len(p.parts) == 0 {
		return "", false
	}
	return p.parts[0], true
}

// Last returns the last part and whether the path is non-empty.
func (p Path) Last() (string, bool) {
	if len(p.parts) == 0 {
		return "", false
	}
	return p.parts[len(p.parts)-1], true
}

// WithoutFirst returns the path with its first part dropped. On an empty
// path it returns the empty path.
func (p Path) WithoutFirst() Path {
	if len(p.parts) == 0 {
		return Root
	}
	return Path{parts: p.parts[1:]}
}

// WithoutLast returns the path with its last part dropped. On an empty path
// it returns the empty path.
func (p Path) WithoutLast() Path {
	if len(p.parts) == 0 {
		return Root
	}
	return Path{parts: p.parts[:len(p.parts)-1]}
}

// DropFirst drops the first n parts (alias of repeated WithoutFirst, but
// O(1)). n is clamped to [0, Size()].
func (p Path) DropFirst(n int) Path {
	if n <= 0 {
		return p
	}
	if n >= len(p.parts) {
		return Root
	}
	return Path{parts: p.parts[n:]}
}

// DropLast drops the last n parts. n is clamped to [0, Size()].
func (p Path) DropLast(n int) Path {
	if n <= 0 {
		return p
	}
	if n >= len(p.parts) {
		return Root
	}
	return Path{parts: p.parts[:len(p.parts)-n]}
}

// IsChildOf reports whether p is a direct child of other: p.Size() ==
// other.Size()+1 and p shares other's prefix.
func (p Path) IsChildOf(other Path) bool {
	if len(p.parts) != len(other.parts)+1 {
		return false
	}
	return hasPrefix(p.parts, other.parts)
}

// IsDescendantOf reports whether other is a (strict, unless orEqual) prefix
// of p.
func (p Path) IsDescendantOf(other Path, orEqual bool) bool {
	if len(other.parts) > len(p.parts) {
		return false
	}
	if len(other.parts) == len(p.parts) {
		return orEqual && p.Equal(other)
	}
	return hasPrefix(p.parts, other.parts)
}

func hasPrefix(parts, prefix []string) bool {
	if len(prefix) > len(parts) {
		return false
	}
	for i, pp := range prefix {
		if parts[i] != pp {
			return false
		}
	}
	return true
}

// AncestorPaths returns the strictly shorter prefixes of p, nearest
// ancestor first, optionally including p itself as the first entry.
func (p Path) AncestorPaths(includingSelf bool) []Path {
	out := make([]Path, 0, len(p.parts)+1)
	if includingSelf {
		out = append(out, p)
	}
	for n := len(p.parts) - 1; n >= 0; n-- {
		out = append(out, Path{parts: p.parts[:n]})
	}
	return out
}

// PathsBetween walks from p up towards the root, yielding successive
// WithoutLast() results, while p is not yet an ancestor of other
// (or-equal). If includingSelf is true, p itself is yielded first.
func (p Path) PathsBetween(other Path, includingSelf bool) []Path {
	var out []Path
	cur := p
	if includingSelf {
		out = append(out, cur)
	}
	for !other.IsDescendantOf(cur, true) {
		cur = cur.WithoutLast()
		out = append(out, cur)
	}
	return out
}

// commonLen returns the length of the shared prefix between p and other.
func (p Path) commonLen(other Path) int {
	n := len(p.parts)
	if len(other.parts) < n {
		n = len(other.parts)
	}
	i := 0
	for i < n && p.parts[i] == other.parts[i] {
		i++
	}
	return i
}

// CommonAncestorWith returns the longest common-prefix ancestor path shared
// with other. It is commutative and CommonAncestorWith(p) == p.
func (p Path) CommonAncestorWith(other Path) Path {
	n := p.commonLen(other)
	return Path{parts: p.parts[:n]}
}

// ChildOfCommonAncestorWith returns the part of p that descends directly
// from the common ancestor with other (i.e. the first part of p past the
// shared prefix), or "" if p is itself the common ancestor or shorter.
func (p Path) ChildOfCommonAncestorWith(other Path) (string, bool) {
	n := p.commonLen(other)
	if n >= len(p.parts) {
		return "", false
	}
	return p.parts[n], true
}

// WithoutCommonAncestor strips the shared prefix with other from p,
// returning the remainder (this is also what Sub computes).
func (p Path) WithoutCommonAncestor(other Path) Path {
	n := p.commonLen(other)
	return Path{parts: p.parts[n:]}
}

// JoinAfterCommonDescendant concatenates the portion of other past the
// shared prefix with p onto p itself: p + (other - commonAncestor).
func (p Path) JoinAfterCommonDescendant(other Path) Path {
	return p.Concat(other.WithoutCommonAncestor(p))
}

// Concat returns a new path with other's parts appended after p's.
func (p Path) Concat(other Path) Path {
	out := make([]string, 0, len(p.parts)+len(other.parts))
	out = append(out, p.parts...)
	out = append(out, other.parts...)
	return Path{parts: out}
}

// AppendPart returns a new path with a single part appended.
func (p Path) AppendPart(part string) Path {
	if !partRe.MatchString(part) {
		panic(fmt.Sprintf("path: invalid part %q", part))
	}
	out := make([]string, len(p.parts)+1)
	copy(out, p.parts)
	out[len(p.parts)] = part
	return Path{parts: out}
}

// Sub strips the common prefix other shares with p, i.e. p - other: it
// returns what must be appended to other to reach p. For a+b == p,
// p.Sub(a) == b.
func (p Path) Sub(other Path) Path {
	return p.WithoutCommonAncestor(other)
}

// Equal reports value equality.
func (p Path) Equal(other Path) bool {
	return p.Compare(other) == 0
}

// Compare implements the total order: size ascending, then elementwise
// string comparison. Returns <0, 0, or >0.
func (p Path) Compare(other Path) int {
	if len(p.parts) != len(other.parts) {
		if len(p.parts) < len(other.parts) {
			return -1
		}
		return 1
	}
	for i := range p.parts {
		if c := strings.Compare(p.parts[i], other.parts[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether p sorts before other under Compare.
func (p Path) Less(other Path) bool {
	return p.Compare(other) < 0
}

// String returns the dotted form: ".a.b.c"; the root is ".".
func (p Path) String() string {
	if len(p.parts) == 0 {
		return "."
	}
	var b strings.Builder
	for _, part := range p.parts {
		b.WriteByte('.')
		b.WriteString(part)
	}
	return b.String()
}

var hashSeed = maphash.MakeSeed()

// Hash returns a stable hash of the path suitable for use as a map key
// component or a cheap equality pre-check.
func (p Path) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	for _, part := range p.parts {
		h.WriteString(part)
		h.WriteByte(0)
	}
	return h.Sum64()
}
