// Package cbor implements a compact, embedded-friendly encoder and decoder
// for a subset of RFC 8949 Concise Binary Object Representation. It targets
// resource-constrained hosts: buffers are caller-supplied, and the codec
// produces and consumes canonical minimal-width CBOR for the value kinds it
// supports. The decode path is not allocation-free: ReadBytes returns a
// copy of the byte-string payload, and ReadText copies the text unless
// UnsafeStringDecode is set.
//
// Floating-point values, arbitrary-precision integers, and CBOR tags (major
// type 6) are not supported as encodable/decodable value kinds. The skip
// path used to discard unrecognized struct fields understands tags anyway,
// since a third-party producer may emit them even though this package never
// does.
package cbor

// MajorOffset is the bit width of the additional-information field; the
// major type occupies the remaining high bits of an initial byte.
const MajorOffset = 5

// Major type numbers, per RFC 8949 §3.
const (
	MajorUint    = 0
	MajorNegInt  = 1
	MajorBytes   = 2
	MajorText    = 3
	MajorArray   = 4
	MajorMap     = 5
	MajorTag     = 6
	MajorSimple  = 7
)

// Additional-information values that select a wider argument encoding.
const (
	AddInfoDirect     = 23 // values 0..=23 are carried inline
	AddInfoUint8      = 24
	AddInfoUint16     = 25
	AddInfoUint32     = 26
	AddInfoUint64     = 27
	AddInfoIndefinite = 31
)

// Simple values within major type 7.
const (
	SimpleFalse     = 20
	SimpleTrue      = 21
	SimpleNull      = 22
	SimpleUndefined = 23
	SimpleFloat16   = 25
	SimpleFloat32   = 26
	SimpleFloat64   = 27
	SimpleBreak     = 31
)

// Pre-composed one-byte wire values for the three simple values this codec
// emits and accepts, plus the break byte that closes an indefinite-length
// collection on output.
const (
	ValueFalse byte = (MajorSimple << MajorOffset) | SimpleFalse
	ValueTrue  byte = (MajorSimple << MajorOffset) | SimpleTrue
	ValueNull  byte = (MajorSimple << MajorOffset) | SimpleNull
	ValueBreak byte = (MajorSimple << MajorOffset) | SimpleBreak
)

func makeByte(major, addInfo byte) byte {
	return (major << MajorOffset) | addInfo
}

func getMajorType(lead byte) byte {
	return lead >> MajorOffset
}

func getAddInfo(lead byte) byte {
	return lead & 0x1F
}

// recursionLimit bounds container/tag nesting during Skip, mirroring the
// depth guard the generic framework's visitor recursion would otherwise
// impose.
const recursionLimit = 10000
