// Package vars expands ${a.b.c} references inside nested configuration
// values before they are decoded into theme types.
package vars

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

var ErrUnresolved = errors.New("unresolved variable")

type Provider interface {
	Resolve(path string) (any, bool)
	Label() string
}

type Resolver struct {
	providers []Provider
}

func NewResolver(providers ...Provider) *Resolver {
	return &Resolver{providers: providers}
}

// Resolve tries every provider with the full path first. When that fails
// and the path is dotted, a provider whose label matches the first segment
// is asked for the remainder, so "env.HOME" reaches the env provider.
func (r *Resolver) Resolve(path string) (any, bool) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, false
	}
	for _, provider := range r.providers {
		if value, ok := provider.Resolve(trimmed); ok {
			return value, true
		}
	}
	head, rest, dotted := strings.Cut(trimmed, ".")
	if !dotted || strings.TrimSpace(rest) == "" {
		return nil, false
	}
	for _, provider := range r.providers {
		label := strings.TrimSpace(provider.Label())
		if label == "" || !strings.EqualFold(label, head) {
			continue
		}
		if value, ok := provider.Resolve(strings.TrimSpace(rest)); ok {
			return value, true
		}
	}
	return nil, false
}

var tokenPattern = regexp.MustCompile(`\$\{([^}]*)\}`)

// ExpandString replaces every ${path} in input. References that cannot be
// resolved are left exactly as written and reported through the returned
// error, which wraps ErrUnresolved.
func (r *Resolver) ExpandString(input string) (string, error) {
	missing := map[string]struct{}{}
	out := tokenPattern.ReplaceAllStringFunc(input, func(match string) string {
		name := strings.TrimSpace(match[2 : len(match)-1])
		value, ok := r.Resolve(name)
		if !ok || !isScalar(value) {
			missing[name] = struct{}{}
			return match
		}
		return fmt.Sprint(value)
	})
	return out, unresolvedError(missing)
}

// Substitute walks maps and slices and expands every string it finds. A
// string that consists of a single reference takes the referenced value
// with its original type, so "${sizes.title}" can become an int.
func (r *Resolver) Substitute(value any) (any, error) {
	missing := map[string]struct{}{}
	out := r.walk(value, missing)
	return out, unresolvedError(missing)
}

func (r *Resolver) walk(value any, missing map[string]struct{}) any {
	switch v := value.(type) {
	case string:
		return r.expandValue(v, missing)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = r.walk(item, missing)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = r.walk(item, missing)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = r.walk(item, missing)
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = r.walk(item, missing)
		}
		return out
	default:
		return value
	}
}

func (r *Resolver) expandValue(input string, missing map[string]struct{}) any {
	if loc := tokenPattern.FindStringSubmatchIndex(input); loc != nil &&
		loc[0] == 0 && loc[1] == len(input) {
		name := strings.TrimSpace(input[loc[2]:loc[3]])
		if value, ok := r.Resolve(name); ok && isScalar(value) {
			return value
		}
		missing[name] = struct{}{}
		return input
	}
	out, err := r.ExpandString(input)
	if err != nil {
		var unresolved *UnresolvedError
		if errors.As(err, &unresolved) {
			for _, name := range unresolved.Names {
				missing[name] = struct{}{}
			}
		}
	}
	return out
}

type UnresolvedError struct {
	Names []string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved variables: %s", strings.Join(e.Names, ", "))
}

func (e *UnresolvedError) Unwrap() error {
	return ErrUnresolved
}

func unresolvedError(missing map[string]struct{}) error {
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return &UnresolvedError{Names: names}
}

func isScalar(value any) bool {
	switch value.(type) {
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

// TreeProvider resolves dotted paths against a nested map such as the
// variables section of a theme pack.
type TreeProvider struct {
	tree  map[string]any
	label string
}

func NewTreeProvider(label string, tree map[string]any) Provider {
	return &TreeProvider{tree: tree, label: label}
}

func (p *TreeProvider) Resolve(path string) (any, bool) {
	var current any = p.tree
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case map[any]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		default:
			return nil, false
		}
	}
	return current, true
}

func (p *TreeProvider) Label() string {
	return p.label
}

type MapProvider struct {
	values map[string]string
	label  string
}

// Keys get lowercased so lookups are case-insensitive.
func NewMapProvider(label string, values map[string]string) Provider {
	normalized := make(map[string]string, len(values))
	for k, v := range values {
		normalized[strings.ToLower(k)] = v
	}
	return &MapProvider{values: normalized, label: label}
}

func (p *MapProvider) Resolve(name string) (any, bool) {
	value, ok := p.values[strings.ToLower(name)]
	return value, ok
}

func (p *MapProvider) Label() string {
	return p.label
}

type EnvProvider struct{}

// Names are tried as given, then upper-cased.
func (EnvProvider) Resolve(name string) (any, bool) {
	if value, ok := os.LookupEnv(name); ok {
		return value, true
	}
	return os.LookupEnv(strings.ToUpper(name))
}

func (EnvProvider) Label() string {
	return "env"
}
