package structs

import (
	"testing"

	cbor "github.com/fenwick-io/cbor-go/runtime"
)

// FuzzDecodeStructs exercises the UnmarshalCBOR implementations for
// a few representative structs to ensure arbitrary input is rejected with
// an error rather than a panic or unbounded allocation.
func FuzzDecodeStructs(f *testing.F) {
	seedPerson := &Person{Name: "Alice", Age: 30, Data: []byte{1, 2, 3}}
	if b, err := cbor.Serialize(seedPerson, make([]byte, 256)); err == nil {
		f.Add(b)
	}
	seedScalars := &Scalars{S: "s", B: true, I: 1}
	if b, err := cbor.Serialize(seedScalars, make([]byte, 256)); err == nil {
		f.Add(b)
	}
	seedContainers := &Containers{}
	if b, err := cbor.Serialize(seedContainers, make([]byte, 256)); err == nil {
		f.Add(b)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic decoding struct: %v", r)
			}
		}()

		var p Person
		_ = p.UnmarshalCBOR(cbor.NewDecoder(data))

		var s Scalars
		_ = s.UnmarshalCBOR(cbor.NewDecoder(data))

		var c Containers
		_ = c.UnmarshalCBOR(cbor.NewDecoder(data))
	})
}
