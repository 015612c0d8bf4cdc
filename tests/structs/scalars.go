package structs

// Scalars exercises the full range of integer widths this codec
// supports, plus a byte string, two slices, and a string-keyed map, to
// validate MarshalCBOR/UnmarshalCBOR implementations written in the
// generator's output shape.
type Scalars struct {
	S      string         `cbor:"s"`
	B      bool           `cbor:"b"`
	I      int            `cbor:"i"`
	I8     int8           `cbor:"i8"`
	I16    int16          `cbor:"i16"`
	I32    int32          `cbor:"i32"`
	I64    int64          `cbor:"i64"`
	U      uint           `cbor:"u"`
	U8     uint8          `cbor:"u8"`
	U16    uint16         `cbor:"u16"`
	U32    uint32         `cbor:"u32"`
	U64    uint64         `cbor:"u64"`
	Data   []byte         `cbor:"data"`
	Ints   []int          `cbor:"ints"`
	Names  []string       `cbor:"names"`
	Scores map[string]int `cbor:"scores"`
}

// Nested exercises a required nested struct field (Base) and a
// transparent Optional nested struct field (Ptr): a nil Ptr encodes as
// the same single byte as an absent value of any other kind.
type Nested struct {
	ID   string   `cbor:"id"`
	Base Scalars  `cbor:"base"`
	Ptr  *Scalars `cbor:"ptr"`
}
