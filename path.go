package sift

import (
	"fmt"
	"strconv"
	"strings"
)

// Step is a single typed navigation step through a Value tree.
type Step struct {
	// Key selects an object member when Index is nil.
	Key string

	// Index selects an array element. Negative indexes count from the end,
	// so -1 is the last element.
	Index *int
}

// Key returns a step expecting an object with member k.
func Key(k string) Step {
	return Step{Key: k}
}

// Index returns a step expecting an array with element i.
func Index(i int) Step {
	return Step{Index: &i}
}

// Last returns a step expecting a non-empty array and selecting its last element.
func Last() Step {
	return Index(-1)
}

// String returns the step in dotted-path notation.
func (s Step) String() string {
	if s.Index != nil {
		return "[" + strconv.Itoa(*s.Index) + "]"
	}
	return s.Key
}

// Path is an ordered sequence of navigation steps.
type Path []Step

// Keys returns a Path made only of object member steps.
func Keys(keys ...string) Path {
	p := make(Path, len(keys))
	for i, k := range keys {
		p[i] = Key(k)
	}
	return p
}

// String returns the path in dotted notation, e.g. "a.b[0].c".
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 && s.Index == nil {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// Resolve walks v along the path. The first step whose expectation does
// not hold stops the walk with a *PathError naming the failing prefix.
func (p Path) Resolve(v Value) (Value, error) {
	cur := v
	for i, s := range p {
		next, err := s.apply(cur)
		if err != nil {
			err.Path = p[:i+1].String()
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func (s Step) apply(v Value) (Value, *PathError) {
	if s.Index != nil {
		arr, ok := v.(Array)
		if !ok {
			return nil, &PathError{Want: KindArray, Got: kindOf(v)}
		}
		i := *s.Index
		if i < 0 {
			i += len(arr)
		}
		if i < 0 || i >= len(arr) {
			return nil, &PathError{Want: KindArray, Got: KindArray, Reason: fmt.Sprintf("index %d out of range for length %d", *s.Index, len(arr))}
		}
		return arr[i], nil
	}

	obj, ok := v.(*Object)
	if !ok {
		return nil, &PathError{Want: KindObject, Got: kindOf(v)}
	}
	child, ok := obj.Get(s.Key)
	if !ok {
		return nil, &PathError{Want: KindObject, Got: KindObject, Reason: fmt.Sprintf("missing key %q", s.Key)}
	}
	return child, nil
}

// PathError reports a broken expectation while navigating a Value tree.
type PathError struct {
	// Path is the prefix up to and including the failing step.
	Path string

	Want   Kind
	Got    Kind
	Reason string
}

// Error implements the error interface.
func (e *PathError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("%s: expected %s, got %s", e.Path, e.Want, e.Got)
}

// AsObject returns v as an object or a *PathError labelled with path.
func AsObject(v Value, path string) (*Object, error) {
	obj, ok := v.(*Object)
	if !ok || obj == nil {
		return nil, &PathError{Path: path, Want: KindObject, Got: kindOf(v)}
	}
	return obj, nil
}

// AsArray returns v as an array or a *PathError labelled with path.
func AsArray(v Value, path string) (Array, error) {
	arr, ok := v.(Array)
	if !ok {
		return nil, &PathError{Path: path, Want: KindArray, Got: kindOf(v)}
	}
	return arr, nil
}

// AsString returns v as a string or a *PathError labelled with path.
func AsString(v Value, path string) (string, error) {
	s, ok := v.(String)
	if !ok {
		return "", &PathError{Path: path, Want: KindString, Got: kindOf(v)}
	}
	return string(s), nil
}

// ResolveString resolves p against v and expects a string at the end.
func ResolveString(v Value, p Path) (string, error) {
	got, err := p.Resolve(v)
	if err != nil {
		return "", err
	}
	return AsString(got, p.String())
}

// ResolveArray resolves p against v and expects an array at the end.
func ResolveArray(v Value, p Path) (Array, error) {
	got, err := p.Resolve(v)
	if err != nil {
		return nil, err
	}
	return AsArray(got, p.String())
}

func kindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}
