package cbor

import "encoding/binary"

// Marshaler is implemented by any value that knows how to write its own
// CBOR encoding through an Encoder. It is the Go-shaped analog of the
// host structural-serialization framework's per-type Serialize
// implementation; this package does not provide that framework, only the
// operations it would call.
type Marshaler interface {
	MarshalCBOR(enc *Encoder) error
}

// Encoder is a stateful serializer holding a Writer and a running count of
// bytes emitted. It exposes one operation per supported data kind and
// translates each into minimal-width CBOR argument bytes followed by
// payload.
type Encoder struct {
	w       Writer
	written int
	scratch [9]byte
}

// NewEncoder wraps w for writing. w is never read from or truncated.
func NewEncoder(w Writer) *Encoder {
	return &Encoder{w: w}
}

// Written returns the number of bytes successfully committed so far.
func (e *Encoder) Written() int { return e.written }

func (e *Encoder) emit(p []byte) error {
	if err := e.w.WriteAll(p); err != nil {
		if sbf, ok := err.(SerializeBufferFull); ok {
			sbf.Written = e.written
			return sbf
		}
		return err
	}
	e.written += len(p)
	return nil
}

// writeUintArg composes an initial byte for major plus the minimal-width
// argument encoding of v, in a single write. This is the one place the
// minimal-encoding invariant is produced: every width above the smallest
// that fits v is unreachable by construction.
func (e *Encoder) writeUintArg(major byte, v uint64) error {
	switch {
	case v <= AddInfoDirect:
		e.scratch[0] = makeByte(major, byte(v))
		return e.emit(e.scratch[:1])
	case v <= 0xFF:
		e.scratch[0] = makeByte(major, AddInfoUint8)
		e.scratch[1] = byte(v)
		return e.emit(e.scratch[:2])
	case v <= 0xFFFF:
		e.scratch[0] = makeByte(major, AddInfoUint16)
		binary.BigEndian.PutUint16(e.scratch[1:3], uint16(v))
		return e.emit(e.scratch[:3])
	case v <= 0xFFFFFFFF:
		e.scratch[0] = makeByte(major, AddInfoUint32)
		binary.BigEndian.PutUint32(e.scratch[1:5], uint32(v))
		return e.emit(e.scratch[:5])
	default:
		e.scratch[0] = makeByte(major, AddInfoUint64)
		binary.BigEndian.PutUint64(e.scratch[1:9], v)
		return e.emit(e.scratch[:9])
	}
}

// WriteBool emits true or false as a single simple-value byte.
func (e *Encoder) WriteBool(v bool) error {
	if v {
		return e.emit([]byte{ValueTrue})
	}
	return e.emit([]byte{ValueFalse})
}

// WriteUint8/16/32/64 emit an unsigned integer on major type 0.
func (e *Encoder) WriteUint8(v uint8) error   { return e.writeUintArg(MajorUint, uint64(v)) }
func (e *Encoder) WriteUint16(v uint16) error { return e.writeUintArg(MajorUint, uint64(v)) }
func (e *Encoder) WriteUint32(v uint32) error { return e.writeUintArg(MajorUint, uint64(v)) }
func (e *Encoder) WriteUint64(v uint64) error { return e.writeUintArg(MajorUint, v) }

// WriteInt8/16/32/64 implement the branch-free sign-xor encoding: sign is the
// arithmetic-shifted sign bit (0 or all-ones), major is its low bit (0 for
// non-negative, 1 for negative), and the argument is sign XOR the unsigned
// bit pattern of value — value itself for non-negative inputs, -1-value
// for negative ones.
func (e *Encoder) WriteInt8(value int8) error {
	sign := byte(value >> 7)
	major := sign & 1
	bits := sign ^ byte(value)
	return e.writeUintArg(major, uint64(bits))
}

func (e *Encoder) WriteInt16(value int16) error {
	sign := uint16(value >> 15)
	major := byte(sign & 1)
	bits := sign ^ uint16(value)
	return e.writeUintArg(major, uint64(bits))
}

func (e *Encoder) WriteInt32(value int32) error {
	sign := uint32(value >> 31)
	major := byte(sign & 1)
	bits := sign ^ uint32(value)
	return e.writeUintArg(major, uint64(bits))
}

func (e *Encoder) WriteInt64(value int64) error {
	sign := uint64(value >> 63)
	major := byte(sign & 1)
	bits := sign ^ uint64(value)
	return e.writeUintArg(major, bits)
}

// WriteFloat32/64 are value kinds this codec deliberately does not
// implement; matching the original, the encode attempt fails
// rather than silently degrading precision or picking an encoding.
func (e *Encoder) WriteFloat32(float32) error { return NotYetImplemented{What: "float32"} }
func (e *Encoder) WriteFloat64(float64) error { return NotYetImplemented{What: "float64"} }

// WriteChar serializes a rune as its UTF-8 encoding in a text string, the
// structural framework's default behavior for a scalar character type.
func (e *Encoder) WriteChar(r rune) error { return e.WriteText(string(r)) }

// WriteText emits a UTF-8 text string (major type 3).
func (e *Encoder) WriteText(s string) error {
	if err := e.writeUintArg(MajorText, uint64(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	return e.emit([]byte(s))
}

// WriteBytes emits a byte string (major type 2).
func (e *Encoder) WriteBytes(b []byte) error {
	if err := e.writeUintArg(MajorBytes, uint64(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return e.emit(b)
}

// WriteNone emits the single byte used for an absent optional, a unit
// value, and a unit struct.
func (e *Encoder) WriteNone() error { return e.emit([]byte{ValueNull}) }

// WriteUnit is an alias for WriteNone: in this wire format, unit, a unit
// struct, and an absent optional are indistinguishable.
func (e *Encoder) WriteUnit() error { return e.WriteNone() }

// Some(x) needs no dedicated method: the caller simply encodes x directly.
// The wrapper is transparent by construction (spec.md §9's documented
// Option<Option<T>> limitation follows from this).

// WriteArrayHeader emits a definite-length array header (major type 4).
func (e *Encoder) WriteArrayHeader(length uint32) error {
	return e.writeUintArg(MajorArray, uint64(length))
}

// WriteMapHeader emits a definite-length map header (major type 5); length
// is the number of key/value pairs, not the doubled item count.
func (e *Encoder) WriteMapHeader(length uint32) error {
	return e.writeUintArg(MajorMap, uint64(length))
}

// WriteArrayHeaderIndefinite and WriteMapHeaderIndefinite are used only
// when the caller cannot supply a length upfront; the collection must be
// closed with WriteBreak.
func (e *Encoder) WriteArrayHeaderIndefinite() error {
	return e.emit([]byte{makeByte(MajorArray, AddInfoIndefinite)})
}

func (e *Encoder) WriteMapHeaderIndefinite() error {
	return e.emit([]byte{makeByte(MajorMap, AddInfoIndefinite)})
}

// WriteBreak closes an indefinite-length array or map.
func (e *Encoder) WriteBreak() error { return e.emit([]byte{ValueBreak}) }

// WriteUnitVariant emits a sum-type variant carrying no payload: just the
// discriminant, as an unsigned major-0 integer. The variant name is
// intentionally dropped; variants are identified positionally.
func (e *Encoder) WriteUnitVariant(discriminant uint32) error {
	return e.WriteUint32(discriminant)
}

// WriteNewtypeVariantHeader emits the two-element array header for a
// single-payload ("newtype") variant: the caller writes the payload value
// immediately after this call returns.
func (e *Encoder) WriteNewtypeVariantHeader(discriminant uint32) error {
	if err := e.WriteArrayHeader(2); err != nil {
		return err
	}
	return e.WriteUnitVariant(discriminant)
}

// WriteTupleVariantHeader emits the array header for a k-tuple variant
// (length k+1: discriminant plus k payload elements). The caller writes
// the k payload elements immediately after.
func (e *Encoder) WriteTupleVariantHeader(discriminant uint32, arity int) error {
	if err := e.WriteArrayHeader(uint32(arity + 1)); err != nil {
		return err
	}
	return e.WriteUnitVariant(discriminant)
}

// WriteStructVariantHeader emits the two-element array wrapping a
// named-field variant: discriminant, then a map header with fieldCount
// pairs. The caller writes the fieldCount (name, value) pairs after this
// call returns.
func (e *Encoder) WriteStructVariantHeader(discriminant uint32, fieldCount uint32) error {
	if err := e.WriteArrayHeader(2); err != nil {
		return err
	}
	if err := e.WriteUnitVariant(discriminant); err != nil {
		return err
	}
	return e.WriteMapHeader(fieldCount)
}
