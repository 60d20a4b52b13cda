// Package dyngentest provides testing helpers for generated converters
// and the dynamic values they produce.
package dyngentest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/dyngen"
)

// NewRegistry returns a registry that logs through t and has been filled
// by register, typically a generated RegisterConverters function.
func NewRegistry(t testing.TB, register func(*dyngen.Registry) error) *dyngen.Registry {
	t.Helper()
	r := dyngen.NewRegistry().WithLogger(Logger(t))
	if register != nil {
		require.NoError(t, register(r), "register converters")
	}
	return r
}

// Logger returns a debug-level logger that writes to t.Log.
func Logger(t testing.TB) *slog.Logger {
	return slog.New(slog.NewTextHandler(logWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type logWriter struct{ t testing.TB }

func (w logWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// Convert converts sample through r and fails the test on error.
func Convert(t testing.TB, r *dyngen.Registry, name string, sample any) dyngen.Value {
	t.Helper()
	v, err := r.Convert(name, sample)
	require.NoError(t, err, "convert %s", name)
	require.NotNil(t, v, "convert %s returned no value", name)
	return v
}

// AssertJSON checks that v encodes to JSON equivalent to expected.
// Object key order is not compared.
func AssertJSON(t testing.TB, v dyngen.Value, expected string) bool {
	t.Helper()
	data, err := json.Marshal(v)
	if !assert.NoError(t, err, "marshal value") {
		return false
	}
	return assert.JSONEq(t, expected, string(data))
}

// AssertKeys checks that v is an object whose keys are exactly keys, in
// that order.
func AssertKeys(t testing.TB, v dyngen.Value, keys ...string) bool {
	t.Helper()
	obj, ok := v.(*dyngen.Object)
	if !assert.Truef(t, ok, "expected *dyngen.Object, got %T", v) {
		return false
	}
	return assert.Equal(t, keys, obj.Keys())
}

// Field walks v along path and fails the test if a step is missing.
// Object steps are keys; array steps are decimal indexes.
func Field(t testing.TB, v dyngen.Value, path ...string) dyngen.Value {
	t.Helper()
	for i, step := range path {
		at := strings.Join(path[:i+1], ".")
		switch node := v.(type) {
		case *dyngen.Object:
			next, ok := node.Get(step)
			require.Truef(t, ok, "no key %s", at)
			v = next
		case *dyngen.Array:
			n, err := strconv.Atoi(step)
			require.NoErrorf(t, err, "array index %s", at)
			require.Truef(t, n >= 0 && n < node.Len(), "index %s out of range [0,%d)", at, node.Len())
			v = node.At(n)
		default:
			require.FailNowf(t, "not a container", "%s: cannot descend into %T", at, v)
		}
	}
	return v
}

// AssertErrorCode checks that err is a *dyngen.Error with the given code
// and returns it.
func AssertErrorCode(t testing.TB, err error, code dyngen.ErrorCode) *dyngen.Error {
	t.Helper()
	var dErr *dyngen.Error
	require.Truef(t, errors.As(err, &dErr), "expected *dyngen.Error, got %v", err)
	assert.Equal(t, code, dErr.Code, "message: %s", dErr.Message)
	return dErr
}
