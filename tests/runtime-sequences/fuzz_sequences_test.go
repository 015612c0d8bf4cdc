package tests

import (
	"testing"

	cbor "github.com/fenwick-io/cbor-go/runtime"
)

// FuzzCBORSequences walks arbitrary input as a sequence of concatenated
// top-level items, verifying that a malformed or truncated stream is
// rejected with an error rather than a panic.
func FuzzCBORSequences(f *testing.F) {
	bb := cbor.GetByteBuffer()
	defer cbor.PutByteBuffer(bb)
	_, _ = cbor.SerializeExtending(textItem("hi"), bb)
	_, _ = cbor.SerializeExtending(intItem(42), bb)
	f.Add(append([]byte(nil), bb.Bytes()...))

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic walking sequence: %v", r)
			}
		}()
		_ = walkSequence(data, func(item []byte) error { return nil })
	})
}
