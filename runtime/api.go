package cbor

// SerializeTo encodes v by calling its MarshalCBOR method against a fresh
// Encoder wrapping w, generic over the Writer implementation. It returns
// the number of bytes written even on error, matching a partially-filled
// writer's state.
func SerializeTo(v Marshaler, w Writer) (int, error) {
	enc := NewEncoder(w)
	if err := v.MarshalCBOR(enc); err != nil {
		return enc.Written(), err
	}
	return enc.Written(), nil
}

// Serialize encodes v into the caller-provided buffer via a SliceWriter and
// returns the filled prefix of buffer. buffer is not grown; an encoding
// that does not fit returns SerializeBufferFull.
func Serialize(v Marshaler, buffer []byte) ([]byte, error) {
	sw := NewSliceWriter(buffer)
	n, err := SerializeTo(v, sw)
	if err != nil {
		return nil, err
	}
	return buffer[:n], nil
}

// SerializeExtending encodes v by appending to bb, preserving its
// pre-existing contents, and returns the number of bytes written by this
// call (not bb's total length).
func SerializeExtending(v Marshaler, bb *ByteBuffer) (int, error) {
	return SerializeTo(v, WriterForByteBuffer(bb))
}

// pointerUnmarshaler is the constraint Deserialize and DeserializeRemaining
// use to construct a zero value of T and obtain an Unmarshaler over it: T
// is the value type, PT is a pointer-to-T that implements Unmarshaler.
// This is the standard Go idiom for "give me a T back from a method that
// must live on *T."
type pointerUnmarshaler[T any] interface {
	*T
	Unmarshaler
}

// Deserialize decodes the leading CBOR item in b into a freshly
// constructed T. Trailing bytes, if any, are silently discarded; use
// DeserializeRemaining to recover them.
func Deserialize[T any, PT pointerUnmarshaler[T]](b []byte) (T, error) {
	var v T
	dec := NewDecoder(b)
	if err := PT(&v).UnmarshalCBOR(dec); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// DeserializeRemaining is Deserialize but also returns the unconsumed
// suffix of b, the Go analog of the original's take_from_bytes.
func DeserializeRemaining[T any, PT pointerUnmarshaler[T]](b []byte) (T, []byte, error) {
	var v T
	dec := NewDecoder(b)
	if err := PT(&v).UnmarshalCBOR(dec); err != nil {
		var zero T
		return zero, nil, err
	}
	return v, dec.Remaining(), nil
}
