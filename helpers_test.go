package dyngen

// Hand-written equivalents of what the generator emits for
//
//	module Demo {
//	  enum Color { RED, GREEN };
//	  struct Point { long x; Color c; };
//	};
type Demo_Color uint32

const (
	Demo_Color_RED Demo_Color = iota
	Demo_Color_GREEN
)

var Demo_ColorNames = [...]string{"RED", "GREEN"}

type Demo_Point struct {
	X int32
	C Demo_Color
}

func ConvertDemo_Point(src *Demo_Point) *Object {
	obj := NewObject()
	obj.Set("x", Integer(src.X))
	obj.Set("c", EnumName(Demo_ColorNames[:], uint32(src.C)))
	return obj
}
