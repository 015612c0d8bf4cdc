package tests

import (
	"testing"

	cbor "github.com/fenwick-io/cbor-go/runtime"
)

// A CBOR sequence here is simply the concatenation of independently
// encoded top-level items, one after another, with no surrounding
// array or map header. Decoder.Skip walks exactly one item and leaves
// the cursor positioned at the start of the next, which is the
// building block both helpers below rely on.

func appendSequence(t *testing.T, items ...cbor.Marshaler) []byte {
	t.Helper()
	bb := cbor.GetByteBuffer()
	defer cbor.PutByteBuffer(bb)
	for _, it := range items {
		if _, err := cbor.SerializeExtending(it, bb); err != nil {
			t.Fatalf("SerializeExtending: %v", err)
		}
	}
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return out
}

// walkSequence splits data into the byte ranges of its successive
// top-level items without decoding their values, using Skip to find
// each item's boundary.
func walkSequence(data []byte, fn func(item []byte) error) error {
	for len(data) > 0 {
		before := len(data)
		dec := cbor.NewDecoder(data)
		if err := dec.Skip(); err != nil {
			return err
		}
		item := data[:before-len(dec.Remaining())]
		if err := fn(item); err != nil {
			return err
		}
		data = dec.Remaining()
	}
	return nil
}

type textItem string

func (s textItem) MarshalCBOR(enc *cbor.Encoder) error { return enc.WriteText(string(s)) }

type intItem int64

func (v intItem) MarshalCBOR(enc *cbor.Encoder) error { return enc.WriteInt64(int64(v)) }

func TestCBORSequenceDecode(t *testing.T) {
	seq := appendSequence(t, textItem("hi"), intItem(42))

	dec := cbor.NewDecoder(seq)
	s, err := dec.ReadText()
	if err != nil || s != "hi" {
		t.Fatalf("first item mismatch: s=%q err=%v", s, err)
	}
	v, err := dec.ReadInt64()
	if err != nil || v != 42 {
		t.Fatalf("second item mismatch: v=%d err=%v", v, err)
	}
	if len(dec.Remaining()) != 0 {
		t.Fatalf("expected no trailing bytes, got %d", len(dec.Remaining()))
	}
}

func TestCBORSequenceWalk(t *testing.T) {
	seq := appendSequence(t, textItem("hi"), intItem(42))

	var items [][]byte
	if err := walkSequence(seq, func(item []byte) error {
		items = append(items, item)
		return nil
	}); err != nil {
		t.Fatalf("walkSequence error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	s, err := cbor.NewDecoder(items[0]).ReadText()
	if err != nil || s != "hi" {
		t.Fatalf("walked first item mismatch: s=%q err=%v", s, err)
	}
	v, err := cbor.NewDecoder(items[1]).ReadInt64()
	if err != nil || v != 42 {
		t.Fatalf("walked second item mismatch: v=%d err=%v", v, err)
	}
}
