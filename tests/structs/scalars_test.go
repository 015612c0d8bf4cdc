package structs

import (
	"testing"

	cbor "github.com/fenwick-io/cbor-go/runtime"
)

func TestScalarsRoundTrip(t *testing.T) {
	orig := &Scalars{
		S:      "hello",
		B:      true,
		I:      -1,
		I8:     -8,
		I16:    -16,
		I32:    -32,
		I64:    -64,
		U:      1,
		U8:     8,
		U16:    16,
		U32:    32,
		U64:    64,
		Data:   []byte{1, 2, 3, 4},
		Ints:   []int{1, 2, 3},
		Names:  []string{"a", "b"},
		Scores: map[string]int{"alice": 10, "bob": 20},
	}

	bb := cbor.GetByteBuffer()
	defer cbor.PutByteBuffer(bb)
	if _, err := cbor.SerializeExtending(orig, bb); err != nil {
		t.Fatalf("SerializeExtending error: %v", err)
	}

	dst, err := cbor.Deserialize[Scalars](bb.Bytes())
	if err != nil {
		t.Fatalf("Deserialize error: %v", err)
	}

	if dst.S != orig.S || dst.B != orig.B || dst.I != orig.I || dst.I8 != orig.I8 ||
		dst.I16 != orig.I16 || dst.I32 != orig.I32 || dst.I64 != orig.I64 ||
		dst.U != orig.U || dst.U8 != orig.U8 || dst.U16 != orig.U16 ||
		dst.U32 != orig.U32 || dst.U64 != orig.U64 ||
		string(dst.Data) != string(orig.Data) ||
		!equalInts(dst.Ints, orig.Ints) || !equalStrings(dst.Names, orig.Names) ||
		!equalIntMap(dst.Scores, orig.Scores) {
		t.Fatalf("mismatch: got %+v, want %+v", dst, orig)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalIntMap(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

func TestNestedRoundTrip(t *testing.T) {
	orig := &Nested{
		ID: "nested-1",
		Base: Scalars{
			S: "base", B: true, I: 10, I8: -8, I16: -16, I32: -32, I64: -64,
			U: 11, U8: 12, U16: 13, U32: 14, U64: 15, Data: []byte{9, 8, 7},
		},
		Ptr: &Scalars{
			S: "ptr", B: false, I: -10, I8: 1, I16: 2, I32: 3, I64: 4,
			U: 21, U8: 22, U16: 23, U32: 24, U64: 25, Data: []byte{5, 6, 7},
		},
	}

	b, err := cbor.Serialize(orig, make([]byte, 512))
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}

	dst, err := cbor.Deserialize[Nested](b)
	if err != nil {
		t.Fatalf("Deserialize error: %v", err)
	}
	if dst.ID != orig.ID {
		t.Fatalf("ID mismatch: got %q, want %q", dst.ID, orig.ID)
	}
	if dst.Base.S != orig.Base.S || dst.Ptr == nil || dst.Ptr.S != orig.Ptr.S {
		t.Fatalf("nested field mismatch: got %+v, want %+v", dst, orig)
	}
}

func TestNestedAbsentOptional(t *testing.T) {
	orig := &Nested{ID: "no-ptr", Base: Scalars{S: "base"}, Ptr: nil}

	b, err := cbor.Serialize(orig, make([]byte, 256))
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}

	dst, err := cbor.Deserialize[Nested](b)
	if err != nil {
		t.Fatalf("Deserialize error: %v", err)
	}
	if dst.Ptr != nil {
		t.Fatalf("expected nil Ptr, got %+v", dst.Ptr)
	}
}
