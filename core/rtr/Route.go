package rtr

import (
	"maps"
	"regexp"
	"strings"

	"github.com/rohanthewiz/rdispatch/consts"
	"github.com/rohanthewiz/serr"
)

// RouteOptions configure a route when it is compiled.
type RouteOptions struct {
	// Name makes the route reachable by URLFor.
	Name string

	// Conditions replace the default pattern of a named segment.
	// Keys may be written with or without the leading colon (":id" or "id").
	// Values are regular expressions that must match the whole segment value.
	Conditions map[string]string

	// Params are static params merged into every match of this route.
	Params map[string]string
}

// Route is a compiled route pattern such as ":controller/:action/:id".
// A Route is immutable once compiled.
type Route struct {
	pattern    string
	name       string
	segments   []segment
	names      []string
	nameSet    map[string]struct{}
	conditions map[string]string
	params     map[string]string
}

// segment is one slash separated part of a pattern.
// Literal segments have a nil re and are compared as plain strings.
type segment struct {
	literal string
	pieces  []piece
	re      *regexp.Regexp
}

// piece is either literal text or a named parameter within a segment.
type piece struct {
	text  string
	param string
}

// Compile turns a pattern into a Route.
// Leading and trailing slashes of the pattern are ignored.
func Compile(pattern string, opts RouteOptions) (*Route, error) {
	rt := &Route{
		pattern:    pattern,
		name:       opts.Name,
		nameSet:    make(map[string]struct{}),
		conditions: make(map[string]string, len(opts.Conditions)),
		params:     make(map[string]string, len(opts.Params)),
	}

	for key, cond := range opts.Conditions {
		key = strings.TrimPrefix(key, string(consts.RuneColon))
		if key == "" {
			return nil, serr.New("condition has an empty segment name", "pattern", pattern)
		}
		if _, dup := rt.conditions[key]; dup {
			return nil, serr.New("segment has more than one condition", "pattern", pattern, "segment", key)
		}
		rt.conditions[key] = cond
	}
	maps.Copy(rt.params, opts.Params)

	for _, part := range splitPath(pattern) {
		seg, err := rt.compileSegment(part)
		if err != nil {
			return nil, err
		}
		rt.segments = append(rt.segments, seg)
	}

	for key := range rt.conditions {
		if _, ok := rt.nameSet[key]; !ok {
			return nil, serr.New("condition names a segment that is not in the pattern",
				"pattern", pattern, "segment", key)
		}
	}

	return rt, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string, opts RouteOptions) *Route {
	rt, err := Compile(pattern, opts)
	if err != nil {
		panic(err.Error())
	}
	return rt
}

// compileSegment builds the matcher for a single segment.
// A segment holding params becomes an anchored regexp with one named group per param.
func (rt *Route) compileSegment(part string) (segment, error) {
	if strings.IndexByte(part, consts.RuneColon) < 0 {
		return segment{literal: part}, nil
	}

	var seg segment
	var expr strings.Builder
	expr.WriteByte('^')

	for i := 0; i < len(part); {
		if part[i] != consts.RuneColon {
			end := strings.IndexByte(part[i:], consts.RuneColon)
			if end < 0 {
				end = len(part) - i
			}
			text := part[i : i+end]
			seg.pieces = append(seg.pieces, piece{text: text})
			expr.WriteString(regexp.QuoteMeta(text))
			i += end
			continue
		}

		j := i + 1
		for j < len(part) && isNameChar(part[j]) {
			j++
		}
		name := part[i+1 : j]
		if name == "" {
			return segment{}, serr.New("empty parameter name", "pattern", rt.pattern, "segment", part)
		}
		if _, dup := rt.nameSet[name]; dup {
			return segment{}, serr.New("duplicate parameter name", "pattern", rt.pattern, "name", name)
		}

		valuePattern := consts.DefaultSegmentPattern
		if cond, ok := rt.conditions[name]; ok {
			if _, err := regexp.Compile(cond); err != nil {
				return segment{}, serr.Wrap(err, "invalid condition", "pattern", rt.pattern, "segment", name)
			}
			valuePattern = cond
		}

		rt.nameSet[name] = struct{}{}
		rt.names = append(rt.names, name)
		seg.pieces = append(seg.pieces, piece{param: name})
		expr.WriteString("(?P<" + name + ">(?:" + valuePattern + "))")
		i = j
	}

	expr.WriteByte('$')
	re, err := regexp.Compile(expr.String())
	if err != nil {
		return segment{}, serr.Wrap(err, "cannot compile segment", "pattern", rt.pattern, "segment", part)
	}
	seg.re = re
	return seg, nil
}

// Match reports whether path has the shape of the route and satisfies its conditions.
// The extracted params are returned in pattern order.
func (rt *Route) Match(path string) ([]Parameter, bool) {
	parts := splitPath(path)
	if len(parts) != len(rt.segments) {
		return nil, false
	}

	var params []Parameter
	if len(rt.names) > 0 {
		params = make([]Parameter, 0, len(rt.names))
	}

	for i, seg := range rt.segments {
		if seg.re == nil {
			if parts[i] != seg.literal {
				return nil, false
			}
			continue
		}

		m := seg.re.FindStringSubmatch(parts[i])
		if m == nil {
			return nil, false
		}
		for _, p := range seg.pieces {
			if p.param != "" {
				params = append(params, Parameter{Key: p.param, Value: m[seg.re.SubexpIndex(p.param)]})
			}
		}
	}

	return params, true
}

// Config matches path and merges the route's static params into the result.
// An extracted value wins over a static param of the same name.
func (rt *Route) Config(path string) (DispatchConfig, bool) {
	extracted, ok := rt.Match(path)
	if !ok {
		return nil, false
	}

	cfg := make(DispatchConfig, len(rt.params)+len(extracted))
	maps.Copy(cfg, rt.params)
	for _, p := range extracted {
		cfg[p.Key] = p.Value
	}
	return cfg, true
}

// Generate builds a path from params, the reverse of Config.
// It succeeds only if every named segment is supplied and passes its condition,
// and every other key agrees with the route's static params in both directions.
func (rt *Route) Generate(params map[string]string) (string, bool) {
	for key, val := range params {
		if _, isSeg := rt.nameSet[key]; isSeg {
			continue
		}
		if static, ok := rt.params[key]; !ok || static != val {
			return "", false
		}
	}
	for key, static := range rt.params {
		if _, isSeg := rt.nameSet[key]; isSeg {
			continue
		}
		if val, ok := params[key]; !ok || val != static {
			return "", false
		}
	}

	parts := make([]string, len(rt.segments))
	for i, seg := range rt.segments {
		if seg.re == nil {
			parts[i] = seg.literal
			continue
		}

		var sb strings.Builder
		for _, p := range seg.pieces {
			if p.param == "" {
				sb.WriteString(p.text)
				continue
			}
			val := params[p.param]
			if val == "" || strings.Contains(val, consts.SegmentSeparator) {
				return "", false
			}
			sb.WriteString(val)
		}
		if i == 0 && strings.HasPrefix(sb.String(), string(consts.RuneHash)) {
			return "", false
		}

		// The built segment has to read back as the same values
		m := seg.re.FindStringSubmatch(sb.String())
		if m == nil {
			return "", false
		}
		for _, p := range seg.pieces {
			if p.param != "" && m[seg.re.SubexpIndex(p.param)] != params[p.param] {
				return "", false
			}
		}
		parts[i] = sb.String()
	}

	return strings.Join(parts, consts.SegmentSeparator), true
}

// Pattern returns the pattern the route was compiled from.
func (rt *Route) Pattern() string {
	return rt.pattern
}

// Name returns the route name, empty for anonymous routes.
func (rt *Route) Name() string {
	return rt.name
}

// Segments returns the names of the route's params in pattern order.
func (rt *Route) Segments() []string {
	out := make([]string, len(rt.names))
	copy(out, rt.names)
	return out
}

// Conditions returns a copy of the segment conditions keyed by bare segment name.
func (rt *Route) Conditions() map[string]string {
	return maps.Clone(rt.conditions)
}

// Params returns a copy of the route's static params.
func (rt *Route) Params() map[string]string {
	return maps.Clone(rt.params)
}

// IsStatic reports whether the route has no named segments.
func (rt *Route) IsStatic() bool {
	return len(rt.names) == 0
}

func (rt *Route) String() string {
	return rt.pattern
}

// splitPath normalizes a path and splits it into segments.
// A leading hash (history token), and leading or trailing slashes are dropped.
func splitPath(path string) []string {
	return strings.Split(normalizePath(path), consts.SegmentSeparator)
}

func normalizePath(path string) string {
	path = strings.TrimPrefix(path, string(consts.RuneHash))
	return strings.Trim(path, consts.SegmentSeparator)
}

func isNameChar(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
