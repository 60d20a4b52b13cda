package dyngen

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"
)

// Converter turns a sample of one registered type into a Value.
type Converter interface {
	Convert(sample any) (Value, error)
}

// ConverterFor adapts a generated conversion function to a Converter.
// The returned converter accepts either *T or T; any other sample type
// is rejected with CodeInvalidArgument.
//
//	r.Register("Messenger::Message", dyngen.ConverterFor(ConvertMessenger_Message))
func ConverterFor[T any, V Value](fn func(*T) V) Converter {
	return ConvertFunc(func(sample any) (Value, error) {
		switch s := sample.(type) {
		case *T:
			if s == nil {
				return nil, Errorf(CodeInvalidArgument, "nil %T sample", s)
			}
			return fn(s), nil
		case T:
			return fn(&s), nil
		default:
			return nil, Errorf(CodeInvalidArgument, "cannot convert %T, want %T", sample, (*T)(nil))
		}
	})
}

// Registry maps IDL qualified type names to converters. It is safe for
// concurrent use.
type Registry struct {
	mu           sync.RWMutex
	converters   map[string]Converter
	interceptors []Interceptor
	logger       *slog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		converters: make(map[string]Converter),
	}
}

// WithLogger sets a custom logger for the registry.
// If not set, slog.Default() will be used.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.logger = logger
	return r
}

// WithInterceptor adds an interceptor around Convert. Interceptors run
// in the order they were added, the first one outermost.
func (r *Registry) WithInterceptor(i Interceptor) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interceptors = append(r.interceptors, i)
	return r
}

func (r *Registry) log() *slog.Logger {
	if r.logger == nil {
		return slog.Default()
	}
	return r.logger
}

// Register adds a converter under name. Registering a name twice fails
// with CodeAlreadyExists and keeps the first converter.
func (r *Registry) Register(name string, c Converter) error {
	if name == "" {
		return NewError(CodeInvalidArgument, "converter name is empty")
	}
	if c == nil {
		return Errorf(CodeInvalidArgument, "nil converter for %s", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.converters[name]; exists {
		r.log().Warn("duplicate converter registration",
			slog.String("type", name))
		return Errorf(CodeAlreadyExists, "converter for %s already registered", name).
			WithDetail("type", name)
	}
	r.converters[name] = c
	r.log().Debug("registered converter", slog.String("type", name))
	return nil
}

// Lookup returns the converter registered under name.
func (r *Registry) Lookup(name string) (Converter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.converters[name]
	return c, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.converters))
	for name := range r.converters {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Convert converts sample with the converter registered under name,
// running the registry's interceptors around it. A panic inside the
// conversion is recovered and reported as CodeInternal.
func (r *Registry) Convert(name string, sample any) (v Value, err error) {
	r.mu.RLock()
	c, ok := r.converters[name]
	chain := chainInterceptors(r.interceptors)
	r.mu.RUnlock()

	if !ok {
		return nil, Errorf(CodeNotFound, "no converter registered for %s", name)
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.log().Error("PANIC recovered",
				slog.String("type", name),
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())))
			v, err = nil, NewError(CodeInternal, fmt.Sprintf("conversion of %s panicked: %v", name, rec))
		}
	}()

	if chain == nil {
		return c.Convert(sample)
	}
	return chain(name, sample, c.Convert)
}
