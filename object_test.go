package dyngen

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_SetPreservesOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("zeta", Number(1))
	obj.Set("alpha", String("a"))
	obj.Set("mid", Bool(true))

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())
	assert.Equal(t, 3, obj.Len())

	obj.Set("zeta", Number(2))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys(), "replacing a key must not move it")
	v, ok := obj.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, Number(2), v)

	_, ok = obj.Get("missing")
	assert.False(t, ok)
}

func TestObject_KeysIsACopy(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Number(1))
	keys := obj.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a"}, obj.Keys())
}

func TestObject_MarshalJSON(t *testing.T) {
	inner := NewArray(2)
	inner.Append(Number(1.5))
	inner.Append(String("x"))

	obj := NewObject()
	obj.Set("b", Bool(false))
	obj.Set("a", inner)
	obj.Set("q", String(`"quoted"`))
	obj.Set("nan", Number(math.NaN()))

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"b":false,"a":[1.5,"x"],"q":"\"quoted\"","nan":null}`, string(data))
}

func TestMarshalJSON_NoHTMLEscape(t *testing.T) {
	obj := NewObject()
	obj.Set("_d", String(InvalidEnumerator))
	obj.Set("a<b&c>", String("x"))

	data, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"_d":"<<invalid>>","a<b&c>":"x"}`, string(data))

	data, err = String("<&>").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"<&>"`, string(data))

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(obj))
	assert.Equal(t, `{"_d":"<<invalid>>","a<b&c>":"x"}`+"\n", buf.String())

	// json.Marshal escapes the output of Marshalers.
	data, err = json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"_d":"\u003c\u003cinvalid\u003e\u003e","a\u003cb\u0026c\u003e":"x"}`, string(data))
}

func TestValue_Interface(t *testing.T) {
	arr := NewArray(0)
	arr.Append(Number(3))

	obj := NewObject()
	obj.Set("n", Number(42))
	obj.Set("s", String("hi"))
	obj.Set("ok", Bool(true))
	obj.Set("list", arr)

	want := map[string]any{
		"n":    float64(42),
		"s":    "hi",
		"ok":   true,
		"list": []any{float64(3)},
	}
	assert.Equal(t, want, obj.Interface())
}

func TestArray(t *testing.T) {
	arr := NewArray(3)
	assert.Equal(t, 0, arr.Len(), "NewArray reserves capacity only")

	for i := range 3 {
		arr.Append(Integer(int32(i * 10)))
	}
	require.Equal(t, 3, arr.Len())
	assert.Equal(t, Number(20), arr.At(2))
	assert.Panics(t, func() { arr.At(3) })

	data, err := json.Marshal(arr)
	require.NoError(t, err)
	assert.JSONEq(t, `[0,10,20]`, string(data))
}
