package structs

import (
	"testing"

	cbor "github.com/fenwick-io/cbor-go/runtime"
)

func TestContainersRoundTrip(t *testing.T) {
	base := Scalars{S: "base", B: true, I: 1, I8: -8, I16: -16, I32: -32, I64: -64,
		U: 10, U8: 11, U16: 12, U32: 13, U64: 14, Data: []byte{1, 2, 3}}
	ptr := Scalars{S: "ptr", B: false, I: 2, I8: 8, I16: 16, I32: 32, I64: 64,
		U: 20, U8: 21, U16: 22, U32: 23, U64: 24, Data: []byte{4, 5, 6}}

	orig := &Containers{
		Items:  []Scalars{base, ptr},
		Ptrs:   []*Scalars{&base, nil, &ptr},
		Map:    map[string]Scalars{"a": base, "b": ptr},
		PtrMap: map[string]*Scalars{"x": &base, "y": nil},
	}

	b, err := cbor.Serialize(orig, make([]byte, 2048))
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}

	dst, err := cbor.Deserialize[Containers](b)
	if err != nil {
		t.Fatalf("Deserialize error: %v", err)
	}

	if len(dst.Items) != len(orig.Items) || len(dst.Ptrs) != len(orig.Ptrs) ||
		len(dst.Map) != len(orig.Map) || len(dst.PtrMap) != len(orig.PtrMap) {
		t.Fatalf("container lengths mismatch: got %+v want %+v", dst, orig)
	}
	if dst.Items[0].S != orig.Items[0].S || dst.Items[1].I != orig.Items[1].I {
		t.Fatalf("Items mismatch: got %+v want %+v", dst.Items, orig.Items)
	}
	if dst.Ptrs[0] == nil || dst.Ptrs[1] != nil || dst.Ptrs[2] == nil ||
		dst.Ptrs[0].S != orig.Ptrs[0].S || dst.Ptrs[2].I != orig.Ptrs[2].I {
		t.Fatalf("Ptrs mismatch: got %+v want %+v", dst.Ptrs, orig.Ptrs)
	}
	if dst.Map["a"].S != orig.Map["a"].S || dst.Map["b"].I != orig.Map["b"].I {
		t.Fatalf("Map mismatch: got %+v want %+v", dst.Map, orig.Map)
	}
	if dst.PtrMap["x"] == nil || dst.PtrMap["y"] != nil || dst.PtrMap["x"].S != orig.PtrMap["x"].S {
		t.Fatalf("PtrMap mismatch: got %+v want %+v", dst.PtrMap, orig.PtrMap)
	}
}
