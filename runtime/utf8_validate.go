package cbor

import "unicode/utf8"

// isUTF8Valid is a package var rather than a direct utf8.Valid call so a
// SIMD-accelerated validator can be swapped in for hot paths without
// touching call sites.
var isUTF8Valid = utf8.Valid
