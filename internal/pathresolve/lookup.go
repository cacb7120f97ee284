package pathresolve

import "os"

// MapLookup serves variables from a fixed map.
func MapLookup(vars map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// ChainLookup tries each lookup in order and returns the first hit.
func ChainLookup(lookups ...LookupFunc) LookupFunc {
	return func(name string) (string, bool) {
		for _, fn := range lookups {
			if fn == nil {
				continue
			}
			if v, ok := fn(name); ok {
				return v, true
			}
		}
		return "", false
	}
}

// EnvLookup reads the process environment.
func EnvLookup() LookupFunc {
	return os.LookupEnv
}
