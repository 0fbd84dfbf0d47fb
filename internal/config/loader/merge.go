package loader

// DeepMerge recursively merges src into dst.
// Values in src override values in dst.
// Maps are merged recursively; other types are replaced.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}

	for key, srcVal := range src {
		srcMap, srcIsMap := srcVal.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = DeepMerge(dstMap, srcMap)
		} else {
			dst[key] = srcVal
		}
	}

	return dst
}

// Flatten returns the leaves of a nested map keyed by dotted path.
func Flatten(src map[string]any) map[string]any {
	out := make(map[string]any)
	flatten(out, "", src)
	return out
}

func flatten(out map[string]any, prefix string, src map[string]any) {
	for key, val := range src {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if m, ok := val.(map[string]any); ok {
			flatten(out, path, m)
			continue
		}
		out[path] = val
	}
}
