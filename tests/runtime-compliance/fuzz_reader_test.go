package tests

import (
	"testing"

	cbor "github.com/fenwick-io/cbor-go/runtime"
)

// FuzzDecoderBasic fuzzes the Decoder's core entrypoints to ensure they
// report an error rather than panicking on arbitrary input.
func FuzzDecoderBasic(f *testing.F) {
	f.Add([]byte{0xa1, 0x61, 0x61, 0x01})       // map {"a":1}
	f.Add([]byte{0x83, 0x01, 0x02, 0x03})       // array [1,2,3]
	f.Add([]byte{0x9f, 0x01, 0x02, 0xff})       // indefinite array, unsupported
	f.Add([]byte{0xff, 0x00, 0x01, 0x02, 0x03}) // invalid start

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic in Decoder fuzz: %v", r)
			}
		}()

		newDec := func() *cbor.Decoder { return cbor.NewDecoder(data) }

		_, _ = newDec().ReadArrayHeader()
		_, _ = newDec().ReadMapHeader()
		_, _ = newDec().ReadText()
		_, _ = newDec().ReadBytes()
		_, _ = newDec().ReadInt64()
		_, _ = newDec().ReadUint64()
		_ = newDec().Skip()
	})
}
