package structs

// Containers exercises slices and string-keyed maps of both struct
// values and pointer-to-struct (transparent Optional) elements, to
// validate hand-written encode/decode for nested container element
// types; cborgen does not generate slices or maps of pointers.
type Containers struct {
	Items  []Scalars           `cbor:"items"`
	Ptrs   []*Scalars          `cbor:"ptrs"`
	Map    map[string]Scalars  `cbor:"map"`
	PtrMap map[string]*Scalars `cbor:"ptr_map"`
}
