package cbor

import "unsafe"

// UnsafeStringDecode, when true, lets ReadText return a string that aliases
// the input slice's backing array instead of copying. Off by default:
// enabling it means the returned string is only valid as long as the input
// buffer is not mutated or freed, which is the decoder's version of the
// zero-allocation promise spec.md §5 makes for the decode path.
var UnsafeStringDecode = false

// UnsafeString reinterprets b as a string without copying. The caller must
// not mutate b for as long as the returned string is alive.
func UnsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
