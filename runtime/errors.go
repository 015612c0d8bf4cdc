package cbor

import "strconv"

// Error is the interface every error this package returns satisfies. It
// mirrors the teacher runtime's Error contract: a plain error plus a
// Resumable flag distinguishing "bad data" from "ran out of input," which
// callers streaming from a partial buffer can use to decide whether to wait
// for more bytes.
type Error interface {
	error
	Resumable() bool
}

// SerializeBufferFull is returned when a Writer refuses a write. Written
// carries the number of bytes successfully committed before the failure.
type SerializeBufferFull struct {
	Written int
}

func (e SerializeBufferFull) Error() string {
	return "cbor: buffer full after " + strconv.Itoa(e.Written) + " bytes written"
}
func (SerializeBufferFull) Resumable() bool { return false }

// DeserializeUnexpectedEnd is returned when the input is exhausted mid-item.
type DeserializeUnexpectedEnd struct{}

func (DeserializeUnexpectedEnd) Error() string  { return "cbor: unexpected end of input" }
func (DeserializeUnexpectedEnd) Resumable() bool { return true }

// DeserializeBadMajor is returned when a major type is not valid in the
// context it was encountered.
type DeserializeBadMajor struct {
	Want byte // left at 0 by callers that had no single expected major
	Got  byte
}

func (e DeserializeBadMajor) Error() string {
	return "cbor: unexpected major type " + strconv.Itoa(int(e.Got))
}
func (DeserializeBadMajor) Resumable() bool { return false }

// DeserializeNonMinimal is returned when an integer argument is carried in
// a width wider than necessary.
type DeserializeNonMinimal struct{}

func (DeserializeNonMinimal) Error() string  { return "cbor: non-minimal integer encoding" }
func (DeserializeNonMinimal) Resumable() bool { return false }

// DeserializeBadU8/16/32/64 and the signed equivalents are returned when a
// decoded value does not fit in the requested destination width.
type (
	DeserializeBadU8  struct{}
	DeserializeBadU16 struct{}
	DeserializeBadU32 struct{}
	DeserializeBadU64 struct{}
	DeserializeBadI8  struct{}
	DeserializeBadI16 struct{}
	DeserializeBadI32 struct{}
	DeserializeBadI64 struct{}
)

func (DeserializeBadU8) Error() string   { return "cbor: value does not fit in u8" }
func (DeserializeBadU8) Resumable() bool { return false }

func (DeserializeBadU16) Error() string   { return "cbor: value does not fit in u16" }
func (DeserializeBadU16) Resumable() bool { return false }

func (DeserializeBadU32) Error() string   { return "cbor: value does not fit in u32" }
func (DeserializeBadU32) Resumable() bool { return false }

func (DeserializeBadU64) Error() string   { return "cbor: value does not fit in u64" }
func (DeserializeBadU64) Resumable() bool { return false }

func (DeserializeBadI8) Error() string   { return "cbor: value does not fit in i8" }
func (DeserializeBadI8) Resumable() bool { return false }

func (DeserializeBadI16) Error() string   { return "cbor: value does not fit in i16" }
func (DeserializeBadI16) Resumable() bool { return false }

func (DeserializeBadI32) Error() string   { return "cbor: value does not fit in i32" }
func (DeserializeBadI32) Resumable() bool { return false }

func (DeserializeBadI64) Error() string   { return "cbor: value does not fit in i64" }
func (DeserializeBadI64) Resumable() bool { return false }

// DeserializeBadBool is returned when a simple value was neither 0xF4 nor
// 0xF5 where a bool was expected.
type DeserializeBadBool struct{ Got byte }

func (DeserializeBadBool) Error() string   { return "cbor: invalid bool byte" }
func (DeserializeBadBool) Resumable() bool { return false }

// DeserializeBadUtf8 is returned when a text-string payload is not valid
// UTF-8.
type DeserializeBadUtf8 struct{}

func (DeserializeBadUtf8) Error() string   { return "cbor: invalid utf-8 in text string" }
func (DeserializeBadUtf8) Resumable() bool { return false }

// DeserializeExpectedNull is returned when a unit or unit-struct context did
// not see 0xF6.
type DeserializeExpectedNull struct{}

func (DeserializeExpectedNull) Error() string   { return "cbor: expected null" }
func (DeserializeExpectedNull) Resumable() bool { return false }

// DeserializeBadEnum is returned on a variant-length mismatch or an
// unexpected variant shape.
type DeserializeBadEnum struct{}

func (DeserializeBadEnum) Error() string   { return "cbor: bad enum variant shape" }
func (DeserializeBadEnum) Resumable() bool { return false }

// WontImplement is returned when dynamic "any" deserialization is
// requested; this codec is not self-describing and never will be.
type WontImplement struct{ What string }

func (e WontImplement) Error() string   { return "cbor: won't implement: " + e.What }
func (WontImplement) Resumable() bool { return false }

// NotYetImplemented is returned for value kinds this codec deliberately
// does not support yet (floats, char).
type NotYetImplemented struct{ What string }

func (e NotYetImplemented) Error() string   { return "cbor: not yet implemented: " + e.What }
func (NotYetImplemented) Resumable() bool { return false }

// InexistentSliceToArrayError signals an internal invariant violation: a
// fixed-width byte-slice-to-array conversion failed where the preceding
// length check should have made that impossible.
type InexistentSliceToArrayError struct{}

func (InexistentSliceToArrayError) Error() string {
	return "cbor: internal error converting slice to array"
}
func (InexistentSliceToArrayError) Resumable() bool { return false }

// ErrContainerTooLarge is returned by the Skip path when a length times its
// per-item multiplier would overflow, e.g. a map claiming 2^63 pairs.
type ErrContainerTooLarge struct{}

func (ErrContainerTooLarge) Error() string   { return "cbor: container length overflow" }
func (ErrContainerTooLarge) Resumable() bool { return false }

// ErrMaxDepthExceeded is returned by Skip when nested containers/tags
// exceed recursionLimit.
type ErrMaxDepthExceeded struct{}

func (ErrMaxDepthExceeded) Error() string   { return "cbor: max nesting depth exceeded" }
func (ErrMaxDepthExceeded) Resumable() bool { return false }

// ErrIndefiniteNotSupported is returned by Skip when it meets the
// major-7 break byte (additional-information 31); this codec does not
// accept indefinite-length input. An additional-information 31 header on
// any other major type is rejected by the argument readers with their
// width error (DeserializeBadU8, DeserializeBadU32 or DeserializeBadU64).
type ErrIndefiniteNotSupported struct{}

func (ErrIndefiniteNotSupported) Error() string   { return "cbor: indefinite-length input not supported" }
func (ErrIndefiniteNotSupported) Resumable() bool { return false }
