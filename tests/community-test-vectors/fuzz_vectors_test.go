package tests

import (
	"encoding/hex"
	"testing"

	cbor "github.com/fenwick-io/cbor-go/runtime"
)

// FuzzCommunityVectors seeds the fuzzer with the known-good Appendix A
// vectors and checks that Skip never panics on a mutated input.
func FuzzCommunityVectors(f *testing.F) {
	for _, v := range appendixAVectors {
		if msg, err := hex.DecodeString(v.hex); err == nil {
			f.Add(msg)
		}
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic walking community vector: %v", r)
			}
		}()
		_ = cbor.NewDecoder(data).Skip()
	})
}
