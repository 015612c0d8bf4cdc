package tests

import (
	"encoding/hex"
	"fmt"
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"

	cbor "github.com/fenwick-io/cbor-go/runtime"
)

// These are a subset of the RFC 8949 Appendix A test vectors restricted
// to the value kinds this codec supports (unsigned/negative integers,
// booleans, null, text strings, byte strings, arrays, maps): floats,
// bignums, and tags are excluded since they are not supported value
// kinds. Each vector is decoded by fxamacker/cbor's generic Unmarshal
// into interface{} and skipped as one whole item by this module's
// Decoder, and both are asserted to accept it; the decoded values are
// not compared. fxamacker/cbor never feeds back into
// this module's own codec; it is only ever a second, independent
// implementation the compliance suite checks agreement against.
var appendixAVectors = []struct {
	name string
	hex  string
}{
	{"uint_0", "00"},
	{"uint_1", "01"},
	{"uint_10", "0a"},
	{"uint_23", "17"},
	{"uint_24", "1818"},
	{"uint_25", "1819"},
	{"uint_100", "1864"},
	{"uint_1000", "1903e8"},
	{"uint_1000000", "1a000f4240"},
	{"negint_-1", "20"},
	{"negint_-10", "29"},
	{"negint_-100", "3863"},
	{"negint_-1000", "3903e7"},
	{"bool_false", "f4"},
	{"bool_true", "f5"},
	{"null", "f6"},
	{"bytes_empty", "40"},
	{"bytes_4", "4401020304"},
	{"text_empty", "60"},
	{"text_a", "6161"},
	{"text_IETF", "6449455446"},
	{"text_quote_backslash", "62225c"},
	{"text_ue4", "62c3bc"},
	{"array_empty", "80"},
	{"array_123", "83010203"},
	{"array_nested", "8301820203820405"},
	{"array_25", "98190102030405060708090a0b0c0d0e0f101112131415161718181819"},
	{"map_empty", "a0"},
	{"map_1_2", "a201020304"},
	{"map_strings", "a56161614161626142616361436164614461656145"},
	{"array_mixed", "826161a161626163"},
}

func TestCommunityVectorsAgreeWithFxamacker(t *testing.T) {
	for _, v := range appendixAVectors {
		v := v
		t.Run(v.name, func(t *testing.T) {
			data, err := hex.DecodeString(v.hex)
			if err != nil {
				t.Fatalf("bad hex %q: %v", v.hex, err)
			}

			var refVal any
			if err := fxcbor.Unmarshal(data, &refVal); err != nil {
				t.Fatalf("fxamacker/cbor rejected well-formed vector: %v", err)
			}

			if err := skipEntireItem(data); err != nil {
				t.Fatalf("this module's decoder rejected a vector fxamacker/cbor accepted: %v", err)
			}
		})
	}
}

// skipEntireItem decodes exactly one top-level item via Skip and
// confirms the whole input was consumed.
func skipEntireItem(data []byte) error {
	dec := cbor.NewDecoder(data)
	if err := dec.Skip(); err != nil {
		return err
	}
	if n := len(dec.Remaining()); n != 0 {
		return fmt.Errorf("%d leftover bytes after decode", n)
	}
	return nil
}
