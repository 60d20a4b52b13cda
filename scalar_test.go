package dyngen

import (
	"math"
	"testing"
)

func TestEnumName(t *testing.T) {
	names := []string{"RED", "GREEN", "BLUE"}
	tests := []struct {
		v    uint32
		want String
	}{
		{0, "RED"},
		{1, "GREEN"},
		{2, "BLUE"},
		{3, InvalidEnumerator},
		{math.MaxUint32, InvalidEnumerator},
	}
	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			if got := EnumName(names, tt.v); got != tt.want {
				t.Errorf("EnumName(%d) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestInteger(t *testing.T) {
	if got := Integer(int32(42)); got != 42.0 {
		t.Errorf("Integer(int32(42)) = %v, want 42.0", got)
	}
	if got := Integer(int16(-7)); got != -7.0 {
		t.Errorf("Integer(int16(-7)) = %v, want -7.0", got)
	}
	if got := Integer(uint32(math.MaxUint32)); got != Number(math.MaxUint32) {
		t.Errorf("Integer(MaxUint32) = %v", got)
	}

	type Ordinal uint16
	if got := Integer(Ordinal(9)); got != 9 {
		t.Errorf("Integer(Ordinal(9)) = %v", got)
	}
}

func TestChar(t *testing.T) {
	tests := []struct {
		name string
		in   byte
		want String
	}{
		{"letter", 'A', "A"},
		{"nul", 0, ""},
		{"high byte", 0xE9, "\ufffd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Char(tt.in); got != tt.want {
				t.Errorf("Char(%#x) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWChar(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want String
	}{
		{"ascii", 'z', "z"},
		{"bmp", 'é', "é"},
		{"nul", 0, ""},
		{"truncated", 0x1F600, "\uf600"},
		{"lone surrogate", 0xD800, "\ufffd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WChar(tt.in); got != tt.want {
				t.Errorf("WChar(%U) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUTF16Buffer(t *testing.T) {
	text := []rune("héllo")
	buf := AcquireUTF16(len(text) + 1)
	if len(buf) != len(text)+1 {
		t.Fatalf("len(buf) = %d, want %d", len(buf), len(text)+1)
	}
	for i, r := range text {
		buf[i] = uint16(r)
	}
	got := StringFromUTF16(buf)
	ReleaseUTF16(buf)
	if got != "héllo" {
		t.Errorf("StringFromUTF16() = %q, want %q", got, "héllo")
	}

	// A reused buffer must come back zeroed.
	again := AcquireUTF16(3)
	for i, u := range again {
		if u != 0 {
			t.Errorf("again[%d] = %d, want 0", i, u)
		}
	}
	ReleaseUTF16(again)
}

func TestStringFromUTF16_StopsAtNUL(t *testing.T) {
	if got := StringFromUTF16([]uint16{'a', 0, 'b'}); got != "a" {
		t.Errorf("StringFromUTF16() = %q, want %q", got, "a")
	}
	if got := StringFromUTF16(nil); got != "" {
		t.Errorf("StringFromUTF16(nil) = %q", got)
	}
}
