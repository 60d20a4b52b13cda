package dyngentest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/broady/dyngen"
	"github.com/broady/dyngen/dyngentest"
)

// What the generator emits for
//
//	module Shop {
//	  struct Item { string sku; sequence<short> counts; };
//	};
type Shop_Item struct {
	Sku    string
	Counts []int16
}

func ConvertShop_Item(src *Shop_Item) *dyngen.Object {
	obj := dyngen.NewObject()
	obj.Set("sku", dyngen.String(src.Sku))
	{
		arr0 := dyngen.NewArray(len(src.Counts))
		for i1 := range src.Counts {
			arr0.Append(dyngen.Integer(src.Counts[i1]))
		}
		obj.Set("counts", arr0)
	}
	return obj
}

func RegisterConverters(r *dyngen.Registry) error {
	if err := r.Register("Shop::Item", dyngen.ConverterFor(ConvertShop_Item)); err != nil {
		return err
	}
	return nil
}

func TestConvert(t *testing.T) {
	r := dyngentest.NewRegistry(t, RegisterConverters)

	v := dyngentest.Convert(t, r, "Shop::Item", &Shop_Item{Sku: "A-1", Counts: []int16{3, -4}})

	dyngentest.AssertKeys(t, v, "sku", "counts")
	dyngentest.AssertJSON(t, v, `{"counts":[3,-4],"sku":"A-1"}`)
	assert.Equal(t, dyngen.Number(-4), dyngentest.Field(t, v, "counts", "1"))
	assert.Equal(t, dyngen.String("A-1"), dyngentest.Field(t, v, "sku"))
}

func TestAssertErrorCode(t *testing.T) {
	r := dyngentest.NewRegistry(t, RegisterConverters)

	_, err := r.Convert("Shop::Missing", &Shop_Item{})
	dyngentest.AssertErrorCode(t, err, dyngen.CodeNotFound)

	_, err = r.Convert("Shop::Item", 42)
	dErr := dyngentest.AssertErrorCode(t, err, dyngen.CodeInvalidArgument)
	assert.Contains(t, dErr.Message, "cannot convert int")

	err = RegisterConverters(r)
	dyngentest.AssertErrorCode(t, err, dyngen.CodeAlreadyExists)
}
