// Package platform models the platform predicate attached to package
// dependency requests: the condition under which a dependency, its
// default feature, or one of its named features is pulled in.
//
// A Status is one of three shapes: never satisfied, always satisfied, or
// satisfied on a specific set of named platforms (think cfg(...) target
// triples). Statuses are combined with Extend, which unions the
// conditions in place; "never" is the identity element and "always" is
// absorbing under that union.
package platform

import "sort"

// Kind distinguishes the three shapes a Status can take.
type Kind uint8

const (
	// Never means the predicate is unsatisfiable on any platform.
	Never Kind = iota
	// Always means the predicate holds unconditionally.
	Always
	// Platforms means the predicate holds on exactly the named platforms.
	Platforms
)

// Status is a platform predicate. The zero value is Never.
type Status struct {
	kind      Kind
	platforms map[string]struct{}
}

// NeverStatus returns the predicate that is never satisfied.
func NeverStatus() Status {
	return Status{kind: Never}
}

// AlwaysStatus returns the predicate that always holds.
func AlwaysStatus() Status {
	return Status{kind: Always}
}

// PlatformsStatus returns a predicate satisfied on exactly the given
// platform names.
func PlatformsStatus(names ...string) Status {
	if len(names) == 0 {
		return NeverStatus()
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return Status{kind: Platforms, platforms: set}
}

// IsNever reports whether this predicate can never be satisfied.
func (s Status) IsNever() bool {
	return s.kind == Never
}

// IsAlways reports whether this predicate always holds.
func (s Status) IsAlways() bool {
	return s.kind == Always
}

// Platforms returns the sorted platform names this predicate holds on,
// or nil if the predicate isn't platform-restricted (Never or Always).
func (s Status) Platforms() []string {
	if s.kind != Platforms {
		return nil
	}
	out := make([]string, 0, len(s.platforms))
	for p := range s.platforms {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Extend unions other's condition into s in place. Never is the identity
// of this union and Always is absorbing: once either side is Always, the
// result stays Always regardless of further calls.
func (s *Status) Extend(other Status) {
	if other.kind == Never {
		return
	}
	if s.kind == Always {
		return
	}
	if other.kind == Always {
		*s = Status{kind: Always}
		return
	}
	// Both s and other are Platforms (or s is Never).
	if s.kind == Never {
		s.kind = Platforms
		s.platforms = make(map[string]struct{}, len(other.platforms))
	}
	for p := range other.platforms {
		s.platforms[p] = struct{}{}
	}
}
