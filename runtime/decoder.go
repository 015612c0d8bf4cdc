package cbor

import "encoding/binary"

// Unmarshaler is implemented by any value that knows how to read its own
// CBOR encoding from a Decoder.
type Unmarshaler interface {
	UnmarshalCBOR(dec *Decoder) error
}

// BytesFromArrayEnabled gates a compile-time-style option: when true,
// ReadBytes also accepts a major-4 array of small (0..=255) unsigned
// integers where a byte string was expected, decoding each element as a
// u8. This exists for interop with encoders that represent fixed byte
// buffers as CBOR arrays rather than CBOR byte strings; it is off by
// default because it changes what counts as well-formed input for a byte
// string field.
var BytesFromArrayEnabled = false

// Decoder is a cursor over a remaining input slice. All reads advance the
// cursor; on failure the cursor's position is left unspecified and the
// caller is expected to discard it rather than continue reading.
type Decoder struct {
	buf []byte
}

// NewDecoder wraps b for reading. b is never mutated.
func NewDecoder(b []byte) *Decoder { return &Decoder{buf: b} }

// Remaining returns the bytes not yet consumed.
func (d *Decoder) Remaining() []byte { return d.buf }

func (d *Decoder) peekMajor() (byte, error) {
	if len(d.buf) == 0 {
		return 0, DeserializeUnexpectedEnd{}
	}
	return getMajorType(d.buf[0]), nil
}

func (d *Decoder) peek() (byte, error) {
	if len(d.buf) == 0 {
		return 0, DeserializeUnexpectedEnd{}
	}
	return d.buf[0], nil
}

func (d *Decoder) consume() (byte, error) {
	if len(d.buf) == 0 {
		return 0, DeserializeUnexpectedEnd{}
	}
	b := d.buf[0]
	d.buf = d.buf[1:]
	return b, nil
}

func (d *Decoder) takeN(n int) ([]byte, error) {
	if len(d.buf) < n {
		return nil, DeserializeUnexpectedEnd{}
	}
	out := d.buf[:n]
	d.buf = d.buf[n:]
	return out, nil
}

func (d *Decoder) expectMajor(major byte) (byte, error) {
	b, err := d.consume()
	if err != nil {
		return 0, err
	}
	if getMajorType(b) != major {
		return 0, DeserializeBadMajor{Want: major, Got: getMajorType(b)}
	}
	return getAddInfo(b), nil
}

// readArgU8 reads a header of the given major type whose argument must fit
// in a single byte on the wire, enforcing minimal encoding: an
// AddInfoUint8-coded value that could have been carried inline is
// rejected.
func (d *Decoder) readArgU8(major byte) (uint8, error) {
	add, err := d.expectMajor(major)
	if err != nil {
		return 0, err
	}
	if add <= AddInfoDirect {
		return add, nil
	}
	if add == AddInfoUint8 {
		b, err := d.consume()
		if err != nil {
			return 0, err
		}
		if b <= AddInfoDirect {
			return 0, DeserializeNonMinimal{}
		}
		return b, nil
	}
	return 0, DeserializeBadU8{}
}

// readArgU32 reads a header whose argument may occupy up to 4 bytes,
// enforcing minimal encoding at each width boundary.
func (d *Decoder) readArgU32(major byte) (uint32, error) {
	add, err := d.expectMajor(major)
	if err != nil {
		return 0, err
	}
	switch {
	case add <= AddInfoDirect:
		return uint32(add), nil
	case add == AddInfoUint8:
		b, err := d.consume()
		if err != nil {
			return 0, err
		}
		if b <= AddInfoDirect {
			return 0, DeserializeNonMinimal{}
		}
		return uint32(b), nil
	case add == AddInfoUint16:
		raw, err := d.takeN(2)
		if err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint16(raw)
		if v <= 0xFF {
			return 0, DeserializeNonMinimal{}
		}
		return uint32(v), nil
	case add == AddInfoUint32:
		raw, err := d.takeN(4)
		if err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint32(raw)
		if v <= 0xFFFF {
			return 0, DeserializeNonMinimal{}
		}
		return v, nil
	default:
		return 0, DeserializeBadU32{}
	}
}

// readArgU16 narrows readArgU32's result, reporting DeserializeBadU16 on
// overflow rather than the width-mismatch errors readArgU32 itself can
// produce for genuinely malformed input.
func (d *Decoder) readArgU16(major byte) (uint16, error) {
	v, err := d.readArgU32(major)
	if err != nil {
		return 0, err
	}
	if v > 0xFFFF {
		return 0, DeserializeBadU16{}
	}
	return uint16(v), nil
}

// readArgU64 reads a header whose argument may occupy up to 8 bytes.
func (d *Decoder) readArgU64(major byte) (uint64, error) {
	add, err := d.expectMajor(major)
	if err != nil {
		return 0, err
	}
	switch {
	case add <= AddInfoDirect:
		return uint64(add), nil
	case add == AddInfoUint8:
		b, err := d.consume()
		if err != nil {
			return 0, err
		}
		if b <= AddInfoDirect {
			return 0, DeserializeNonMinimal{}
		}
		return uint64(b), nil
	case add == AddInfoUint16:
		raw, err := d.takeN(2)
		if err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint16(raw)
		if v <= 0xFF {
			return 0, DeserializeNonMinimal{}
		}
		return uint64(v), nil
	case add == AddInfoUint32:
		raw, err := d.takeN(4)
		if err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint32(raw)
		if v <= 0xFFFF {
			return 0, DeserializeNonMinimal{}
		}
		return uint64(v), nil
	case add == AddInfoUint64:
		raw, err := d.takeN(8)
		if err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint64(raw)
		if v <= 0xFFFFFFFF {
			return 0, DeserializeNonMinimal{}
		}
		return v, nil
	default:
		return 0, DeserializeBadU64{}
	}
}

// ReadBool requires the next byte to be the false or true simple value.
func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.consume()
	if err != nil {
		return false, err
	}
	switch b {
	case ValueFalse:
		return false, nil
	case ValueTrue:
		return true, nil
	default:
		return false, DeserializeBadBool{Got: b}
	}
}

// ReadUint8/16/32/64 decode an unsigned integer on major type 0.
func (d *Decoder) ReadUint8() (uint8, error)   { return d.readArgU8(MajorUint) }
func (d *Decoder) ReadUint16() (uint16, error) { return d.readArgU16(MajorUint) }
func (d *Decoder) ReadUint32() (uint32, error) { return d.readArgU32(MajorUint) }
func (d *Decoder) ReadUint64() (uint64, error) { return d.readArgU64(MajorUint) }

// ReadInt8 decodes a signed 8-bit integer: major 0 is non-negative, major 1
// is negative with argument -1-value.
func (d *Decoder) ReadInt8() (int8, error) {
	major, err := d.peekMajor()
	if err != nil {
		return 0, err
	}
	switch major {
	case MajorUint:
		u, err := d.readArgU8(MajorUint)
		if err != nil {
			return 0, err
		}
		if u > 127 {
			return 0, DeserializeBadI8{}
		}
		return int8(u), nil
	case MajorNegInt:
		u, err := d.readArgU8(MajorNegInt)
		if err != nil {
			return 0, err
		}
		if u > 127 {
			return 0, DeserializeBadI8{}
		}
		return int8(-1 - int16(u)), nil
	default:
		return 0, DeserializeBadI8{}
	}
}

func (d *Decoder) ReadInt16() (int16, error) {
	major, err := d.peekMajor()
	if err != nil {
		return 0, err
	}
	switch major {
	case MajorUint:
		u, err := d.readArgU16(MajorUint)
		if err != nil {
			return 0, err
		}
		if u > 32767 {
			return 0, DeserializeBadI16{}
		}
		return int16(u), nil
	case MajorNegInt:
		u, err := d.readArgU16(MajorNegInt)
		if err != nil {
			return 0, err
		}
		if u > 32767 {
			return 0, DeserializeBadI16{}
		}
		return int16(-1 - int32(u)), nil
	default:
		return 0, DeserializeBadI16{}
	}
}

// ReadInt32 reports DeserializeBadI32 on a major-type mismatch. The
// original this codec follows returns BadI16 here, a copy-paste artifact
// (see DESIGN.md); this implementation reports the type-correct kind.
func (d *Decoder) ReadInt32() (int32, error) {
	major, err := d.peekMajor()
	if err != nil {
		return 0, err
	}
	if major != MajorUint && major != MajorNegInt {
		return 0, DeserializeBadI32{}
	}
	u, err := d.readArgU32(major)
	if err != nil {
		return 0, err
	}
	if u > 0x7FFFFFFF {
		return 0, DeserializeBadI32{}
	}
	if major == MajorUint {
		return int32(u), nil
	}
	return int32(-1 - int64(u)), nil
}

// ReadInt64 reports DeserializeBadI64 on a major-type mismatch, for the
// same reason ReadInt32 reports DeserializeBadI32.
func (d *Decoder) ReadInt64() (int64, error) {
	major, err := d.peekMajor()
	if err != nil {
		return 0, err
	}
	if major != MajorUint && major != MajorNegInt {
		return 0, DeserializeBadI64{}
	}
	u, err := d.readArgU64(major)
	if err != nil {
		return 0, err
	}
	if u > 0x7FFFFFFFFFFFFFFF {
		return 0, DeserializeBadI64{}
	}
	if major == MajorUint {
		return int64(u), nil
	}
	return int64(-1 - int64(u)), nil
}

// ReadFloat32/64 and ReadChar are not implemented: floats and char are not
// supported value kinds for this codec.
func (d *Decoder) ReadFloat32() (float32, error) { return 0, NotYetImplemented{What: "float32"} }
func (d *Decoder) ReadFloat64() (float64, error) { return 0, NotYetImplemented{What: "float64"} }
func (d *Decoder) ReadChar() (rune, error)        { return 0, NotYetImplemented{What: "char"} }

// ReadText decodes a UTF-8 text string (major type 3), validating UTF-8.
func (d *Decoder) ReadText() (string, error) {
	length, err := d.readArgU32(MajorText)
	if err != nil {
		return "", err
	}
	raw, err := d.takeN(int(length))
	if err != nil {
		return "", err
	}
	if !isUTF8Valid(raw) {
		return "", DeserializeBadUtf8{}
	}
	if UnsafeStringDecode {
		return UnsafeString(raw), nil
	}
	return string(raw), nil
}

// ReadBytes decodes a byte string (major type 2). When BytesFromArrayEnabled
// is set, a major-4 array of u8 values is also accepted.
func (d *Decoder) ReadBytes() ([]byte, error) {
	major, err := d.peekMajor()
	if err != nil {
		return nil, err
	}
	if major == MajorArray {
		if !BytesFromArrayEnabled {
			return nil, DeserializeBadMajor{Want: MajorBytes, Got: MajorArray}
		}
		length, err := d.readArgU32(MajorArray)
		if err != nil {
			return nil, err
		}
		out := make([]byte, 0, d.BoundedLen(length))
		for i := uint32(0); i < length; i++ {
			v, err := d.ReadUint8()
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	length, err := d.readArgU32(MajorBytes)
	if err != nil {
		return nil, err
	}
	raw, err := d.takeN(int(length))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// ReadOptionPresent peeks the next byte: if it is the null sentinel, it is
// consumed and false is returned (the optional is absent); otherwise the
// cursor is left untouched and true is returned so the caller can decode
// the wrapped value directly.
func (d *Decoder) ReadOptionPresent() (bool, error) {
	b, err := d.peek()
	if err != nil {
		return false, err
	}
	if b == ValueNull {
		_, _ = d.consume()
		return false, nil
	}
	return true, nil
}

// ReadUnit requires the next byte to be the null sentinel; it is used for
// both Rust-style unit values and unit structs.
func (d *Decoder) ReadUnit() error {
	b, err := d.consume()
	if err != nil {
		return err
	}
	if b != ValueNull {
		return DeserializeExpectedNull{}
	}
	return nil
}

// ReadArrayHeader decodes a definite-length array header and returns its
// element count.
func (d *Decoder) ReadArrayHeader() (uint32, error) { return d.readArgU32(MajorArray) }

// ReadMapHeader decodes a definite-length map header and returns its pair
// count (not the doubled item count).
func (d *Decoder) ReadMapHeader() (uint32, error) { return d.readArgU32(MajorMap) }

// BoundedLen clamps a count taken from a just-decoded array or map header
// to what the remaining input could possibly contain, given that every
// element occupies at least one byte on the wire. Callers preallocating a
// slice or map from a decoded length should route it through here first:
// an untrusted length prefix claiming billions of elements must not drive
// a multi-gigabyte allocation before the short input underneath it is
// even read.
func (d *Decoder) BoundedLen(n uint32) int {
	if int(n) < 0 || uint64(n) > uint64(len(d.buf)) {
		return len(d.buf)
	}
	return int(n)
}

// ReadIdentifier decodes a struct-field or variant identifier: major 2 and
// major 3 are both treated as UTF-8 text (isText=true); major 0 yields a
// numeric identifier (isText=false).
func (d *Decoder) ReadIdentifier() (text string, numeric uint64, isText bool, err error) {
	major, err := d.peekMajor()
	if err != nil {
		return "", 0, false, err
	}
	switch major {
	case MajorBytes:
		length, err := d.readArgU32(MajorBytes)
		if err != nil {
			return "", 0, false, err
		}
		raw, err := d.takeN(int(length))
		if err != nil {
			return "", 0, false, err
		}
		if !isUTF8Valid(raw) {
			return "", 0, false, DeserializeBadUtf8{}
		}
		return string(raw), 0, true, nil
	case MajorText:
		s, err := d.ReadText()
		return s, 0, true, err
	case MajorUint:
		n, err := d.readArgU64(MajorUint)
		return "", n, false, err
	default:
		return "", 0, false, DeserializeBadMajor{Got: major}
	}
}

// VariantHeader describes a decoded sum-type item: Len is 0 for a unit
// variant, or the total array length (discriminant plus payload) for a
// data variant.
type VariantHeader struct {
	Discriminant uint32
	Len          int
}

// ReadVariantHeader reads either a unit variant (a bare major-0 integer)
// or a data variant (a major-4 array whose first element is the
// discriminant).
func (d *Decoder) ReadVariantHeader() (VariantHeader, error) {
	major, err := d.peekMajor()
	if err != nil {
		return VariantHeader{}, err
	}
	switch major {
	case MajorArray:
		length, err := d.readArgU32(MajorArray)
		if err != nil {
			return VariantHeader{}, err
		}
		if length == 0 {
			return VariantHeader{}, DeserializeBadEnum{}
		}
		disc, err := d.readArgU32(MajorUint)
		if err != nil {
			return VariantHeader{}, err
		}
		return VariantHeader{Discriminant: disc, Len: int(length)}, nil
	case MajorUint:
		disc, err := d.readArgU32(MajorUint)
		if err != nil {
			return VariantHeader{}, err
		}
		return VariantHeader{Discriminant: disc, Len: 0}, nil
	default:
		return VariantHeader{}, DeserializeBadMajor{Got: major}
	}
}

// ExpectUnit validates a unit-variant shape (no payload).
func (h VariantHeader) ExpectUnit() error {
	if h.Len != 0 {
		return DeserializeBadEnum{}
	}
	return nil
}

// ExpectNewtype validates a single-payload variant shape.
func (h VariantHeader) ExpectNewtype() error {
	if h.Len != 2 {
		return DeserializeBadEnum{}
	}
	return nil
}

// ExpectTuple validates a k-tuple variant shape.
func (h VariantHeader) ExpectTuple(arity int) error {
	if h.Len != arity+1 {
		return DeserializeBadEnum{}
	}
	return nil
}

// ExpectStruct validates a named-field variant shape: two elements,
// discriminant then payload. Only the element count is checked; whether
// the second element is a map is left to the caller's ReadMapHeader.
func (h VariantHeader) ExpectStruct() error {
	if h.Len != 2 {
		return DeserializeBadEnum{}
	}
	return nil
}

// DeserializeIgnoredAny implements the framework's "ignore extra
// fields/options" hook: it skips exactly one item without materializing
// it.
func (d *Decoder) DeserializeIgnoredAny() error { return d.Skip() }
