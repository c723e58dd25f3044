package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// reader walks a decoded document and collects warnings for values it has
// to replace.
type reader struct {
	warnings []Warning
}

func (r *reader) warn(path, format string, args ...any) {
	r.warnings = append(r.warnings, Warning{Path: path, Message: fmt.Sprintf(format, args...)})
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// lookup returns the first key of keys present in m.
func lookup(m map[string]any, keys ...string) (any, string, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, k, true
		}
	}
	return nil, "", false
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float64:
		return x, !math.IsNaN(x) && !math.IsInf(x, 0)
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(x, ",", "."))
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// float reads the first present key as a number. Missing keys yield def
// silently; present but unusable values yield def with a warning.
func (r *reader) float(m map[string]any, path string, def float64, keys ...string) float64 {
	v, k, ok := lookup(m, keys...)
	if !ok {
		return def
	}
	f, ok := toFloat(v)
	if !ok {
		r.warn(join(path, k), "not a number (%v), using %g", v, def)
		return def
	}
	return f
}

// nonNegative is float with negative values replaced by def.
func (r *reader) nonNegative(m map[string]any, path string, def float64, keys ...string) float64 {
	f := r.float(m, path, def, keys...)
	if f < 0 {
		r.warn(join(path, keys[0]), "negative value %g, using %g", f, def)
		return def
	}
	return f
}

// positive is float with non-positive values replaced by def.
func (r *reader) positive(m map[string]any, path string, def float64, keys ...string) float64 {
	f := r.float(m, path, def, keys...)
	if f <= 0 {
		if _, _, present := lookup(m, keys...); present {
			r.warn(join(path, keys[0]), "must be positive, using %g", def)
		}
		return def
	}
	return f
}

// maxCount bounds any bar or tie count read from a document.
const maxCount = 1000

// count reads a whole number. Magnitudes above maxCount are clamped so the
// conversion to int stays defined.
func (r *reader) count(m map[string]any, path string, def int, keys ...string) int {
	f := r.float(m, path, float64(def), keys...)
	if math.Abs(f) > maxCount {
		r.warn(join(path, keys[0]), "count %g out of range, clamping to %d", f, maxCount)
		return int(math.Copysign(maxCount, f))
	}
	if f != math.Trunc(f) {
		r.warn(join(path, keys[0]), "not a whole number (%g), rounding", f)
	}
	return int(math.Round(f))
}

func toBool(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case int:
		return x != 0, true
	case float64:
		return x != 0, true
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "y", "1", "on", "si", "sí":
			return true, true
		case "false", "no", "n", "0", "off", "":
			return false, true
		}
	}
	return false, false
}

func (r *reader) flag(m map[string]any, path string, keys ...string) bool {
	v, k, ok := lookup(m, keys...)
	if !ok {
		return false
	}
	b, ok := toBool(v)
	if !ok {
		r.warn(join(path, k), "not a boolean (%v), using false", v)
	}
	return b
}

func (r *reader) text(m map[string]any, keys ...string) string {
	v, _, ok := lookup(m, keys...)
	if !ok {
		return ""
	}
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func (r *reader) object(m map[string]any, path string, keys ...string) map[string]any {
	v, k, ok := lookup(m, keys...)
	if !ok {
		return map[string]any{}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		r.warn(join(path, k), "expected a mapping, ignoring")
		return map[string]any{}
	}
	return obj
}

func (r *reader) list(m map[string]any, path, key string) []map[string]any {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		r.warn(join(path, key), "expected a list, ignoring")
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for i, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			r.warn(fmt.Sprintf("%s[%d]", join(path, key), i), "expected a mapping, using an empty entry")
			obj = map[string]any{}
		}
		out = append(out, obj)
	}
	return out
}
