// Package router maps request paths to page views and decides how the
// client moves between them.
package router

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

const Root = "/"

var (
	ErrNotFound      = errors.New("no route matches path")
	ErrEmptyTable    = errors.New("route table is empty")
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrInvalidPath   = errors.New("invalid route path")
)

// Route binds a path pattern to a view. Segments starting with ':' are
// named parameters. View is an opaque handle the caller knows how to render.
type Route struct {
	Path  string
	Name  string
	View  string
	Props bool
}

type segment struct {
	value string
	param bool
}

type compiled struct {
	route    Route
	segments []segment
}

// Table is built once and never mutated afterwards.
type Table struct {
	routes []compiled
}

func New(routes ...Route) (*Table, error) {
	if len(routes) == 0 {
		return nil, ErrEmptyTable
	}
	seen := mapset.NewThreadUnsafeSet[string]()
	t := Table{routes: make([]compiled, 0, len(routes))}
	for _, r := range routes {
		segments, err := parse(r.Path)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", r.Name, err)
		}
		key := shape(segments)
		if !seen.Add(key) {
			return nil, fmt.Errorf("route %q: %w: %s", r.Name, ErrDuplicatePath, r.Path)
		}
		t.routes = append(t.routes, compiled{route: r, segments: segments})
	}
	return &t, nil
}

func parse(path string) ([]segment, error) {
	if !strings.HasPrefix(path, Root) {
		return nil, fmt.Errorf("%w: %q must start with %q", ErrInvalidPath, path, Root)
	}
	if path == Root {
		return nil, nil
	}
	parts := strings.Split(strings.TrimPrefix(path, Root), "/")
	segments := make([]segment, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPath, path)
		}
		if strings.HasPrefix(p, ":") {
			name := strings.TrimPrefix(p, ":")
			if name == "" {
				return nil, fmt.Errorf("%w: %q has an unnamed parameter", ErrInvalidPath, path)
			}
			segments = append(segments, segment{value: name, param: true})
			continue
		}
		segments = append(segments, segment{value: p})
	}
	return segments, nil
}

// shape ignores parameter names, so "/player/:id" and "/player/:name"
// collide.
func shape(segments []segment) string {
	var b strings.Builder
	b.WriteString(Root)
	for i, s := range segments {
		if i > 0 {
			b.WriteString("/")
		}
		if s.param {
			b.WriteString(":")
			continue
		}
		b.WriteString(s.value)
	}
	return b.String()
}

// Match is a resolved route together with the parameters taken from the path.
type Match struct {
	Route  Route
	Params map[string]string
}

// Props returns the inputs forwarded to the view. Routes without the
// forwarding flag get none.
func (m Match) Props() map[string]string {
	props := make(map[string]string)
	if !m.Route.Props {
		return props
	}
	for k, v := range m.Params {
		props[k] = v
	}
	return props
}

// Resolve only accepts absolute paths, the same form New requires of patterns.
func (t *Table) Resolve(path string) (Match, error) {
	if !strings.HasPrefix(path, Root) {
		return Match{}, ErrNotFound
	}
	if path == Root {
		for _, c := range t.routes {
			if len(c.segments) == 0 {
				return Match{Route: c.route, Params: map[string]string{}}, nil
			}
		}
		return Match{}, ErrNotFound
	}
	trimmed := strings.TrimPrefix(path, Root)
	trimmed = strings.TrimSuffix(trimmed, "/")
	if trimmed == "" {
		return Match{}, ErrNotFound
	}
	parts := strings.Split(trimmed, "/")
	for _, c := range t.routes {
		params, ok := c.match(parts)
		if ok {
			return Match{Route: c.route, Params: params}, nil
		}
	}
	return Match{}, ErrNotFound
}

func (c compiled) match(parts []string) (map[string]string, bool) {
	if len(parts) != len(c.segments) {
		return nil, false
	}
	params := make(map[string]string)
	for i, s := range c.segments {
		if !s.param {
			if parts[i] != s.value {
				return nil, false
			}
			continue
		}
		if parts[i] == "" {
			return nil, false
		}
		v, err := url.PathUnescape(parts[i])
		if err != nil {
			return nil, false
		}
		params[s.value] = v
	}
	return params, true
}

func (t *Table) Routes() []Route {
	routes := make([]Route, 0, len(t.routes))
	for _, c := range t.routes {
		routes = append(routes, c.route)
	}
	return routes
}

func (t *Table) Len() int {
	return len(t.routes)
}
