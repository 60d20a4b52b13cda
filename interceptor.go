package dyngen

// ConvertFunc converts one sample. It is the next step passed to an
// Interceptor, and it satisfies Converter.
type ConvertFunc func(sample any) (Value, error)

// Convert implements Converter.
func (f ConvertFunc) Convert(sample any) (Value, error) { return f(sample) }

// Interceptor wraps every conversion run through Registry.Convert.
//
//	func timing(name string, sample any, next dyngen.ConvertFunc) (dyngen.Value, error) {
//	    start := time.Now()
//	    v, err := next(sample)
//	    log.Printf("%s took %v", name, time.Since(start))
//	    return v, err
//	}
//
// name is the IDL qualified name the converter was registered under.
// Interceptors may inspect or replace the sample, post-process the
// value, or short-circuit by returning an error without calling next.
type Interceptor func(name string, sample any, next ConvertFunc) (Value, error)

// chainInterceptors combines multiple interceptors into a single one.
// The first interceptor in the slice is the outer-most one (runs first).
func chainInterceptors(interceptors []Interceptor) Interceptor {
	if len(interceptors) == 0 {
		return nil
	}
	if len(interceptors) == 1 {
		return interceptors[0]
	}
	return func(name string, sample any, next ConvertFunc) (Value, error) {
		chain := next
		for i := len(interceptors) - 1; i >= 0; i-- {
			current := interceptors[i]
			inner := chain
			chain = func(sample any) (Value, error) {
				return current(name, sample, inner)
			}
		}
		return chain(sample)
	}
}
