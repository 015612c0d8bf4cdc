package cbor

import "sort"

// MapPair is one key/value entry of a map to be encoded with deterministic
// key ordering. Key must already be the CBOR-encoded form of the map key
// (typically produced by encoding a text string through a throwaway
// Encoder over a ByteBuffer); Value is the corresponding already-encoded
// value bytes.
//
// Deterministic (RFC 8949 §4.2.1) key ordering is not part of the default
// struct encoding path used by generated Marshaler implementations — those
// write fields in declaration order, matching the original this codec
// follows. EncodeMapDeterministic exists for callers who explicitly want
// canonical byte-for-byte comparable map encodings on top of the same wire
// format.
type MapPair struct {
	Key   []byte
	Value []byte
}

// EncodeMapDeterministic writes a map header followed by pairs sorted by
// the bytewise order of their encoded keys, per RFC 8949 §4.2.1's "length
// first, then bytewise" comparison for keys of differing representations;
// since every key this codec emits is a text string header followed by
// UTF-8 bytes, a plain bytewise compare of the encoded key already
// implements that rule for same-major-type keys.
func (e *Encoder) EncodeMapDeterministic(pairs []MapPair) error {
	sorted := make([]MapPair, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool {
		return lessBytes(sorted[i].Key, sorted[j].Key)
	})
	if err := e.WriteMapHeader(uint32(len(sorted))); err != nil {
		return err
	}
	for _, p := range sorted {
		if err := e.emit(p.Key); err != nil {
			return err
		}
		if err := e.emit(p.Value); err != nil {
			return err
		}
	}
	return nil
}

func lessBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// EncodedKey encodes s as a CBOR text string into a scratch buffer,
// suitable as a MapPair.Key for EncodeMapDeterministic.
func EncodedKey(s string) []byte {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	enc := NewEncoder(WriterForByteBuffer(bb))
	_ = enc.WriteText(s)
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return out
}
