package engine

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Prop helpers read level-file values. YAML decodes numbers as int or
// float64, and sequences as []any.

func PropFloat(props map[string]any, key string, def float32) (float32, error) {
	v, ok := props[key]
	if !ok || v == nil {
		return def, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return def, fmt.Errorf("prop %s: expected number, got %T", key, v)
	}
	return f, nil
}

func PropBool(props map[string]any, key string, def bool) (bool, error) {
	v, ok := props[key]
	if !ok || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return def, fmt.Errorf("prop %s: expected bool, got %T", key, v)
	}
	return b, nil
}

func PropString(props map[string]any, key string, def string) (string, error) {
	v, ok := props[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return def, fmt.Errorf("prop %s: expected string, got %T", key, v)
	}
	return s, nil
}

func PropVec3(props map[string]any, key string, def rl.Vector3) (rl.Vector3, error) {
	v, ok := props[key]
	if !ok || v == nil {
		return def, nil
	}
	list, ok := v.([]any)
	if !ok || len(list) != 3 {
		return def, fmt.Errorf("prop %s: expected [x, y, z]", key)
	}
	var out [3]float32
	for i, item := range list {
		f, ok := toFloat(item)
		if !ok {
			return def, fmt.Errorf("prop %s[%d]: expected number, got %T", key, i, item)
		}
		out[i] = f
	}
	return rl.Vector3{X: out[0], Y: out[1], Z: out[2]}, nil
}

func toFloat(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	}
	return 0, false
}
