package structs

import (
	cbor "github.com/fenwick-io/cbor-go/runtime"
)

// MarshalCBOR and UnmarshalCBOR below are hand-written in the shape
// cborgen's code generator (cborgen/core) would produce for Scalars and
// Nested: a CBOR map keyed by field name, one key/value pair per
// exported field, unknown keys skipped on decode.

func (x *Scalars) MarshalCBOR(enc *cbor.Encoder) error {
	if err := enc.WriteMapHeader(16); err != nil {
		return err
	}
	if err := enc.WriteText("s"); err != nil {
		return err
	}
	if err := enc.WriteText(x.S); err != nil {
		return err
	}
	if err := enc.WriteText("b"); err != nil {
		return err
	}
	if err := enc.WriteBool(x.B); err != nil {
		return err
	}
	if err := enc.WriteText("i"); err != nil {
		return err
	}
	if err := enc.WriteInt64(int64(x.I)); err != nil {
		return err
	}
	if err := enc.WriteText("i8"); err != nil {
		return err
	}
	if err := enc.WriteInt8(x.I8); err != nil {
		return err
	}
	if err := enc.WriteText("i16"); err != nil {
		return err
	}
	if err := enc.WriteInt16(x.I16); err != nil {
		return err
	}
	if err := enc.WriteText("i32"); err != nil {
		return err
	}
	if err := enc.WriteInt32(x.I32); err != nil {
		return err
	}
	if err := enc.WriteText("i64"); err != nil {
		return err
	}
	if err := enc.WriteInt64(x.I64); err != nil {
		return err
	}
	if err := enc.WriteText("u"); err != nil {
		return err
	}
	if err := enc.WriteUint64(uint64(x.U)); err != nil {
		return err
	}
	if err := enc.WriteText("u8"); err != nil {
		return err
	}
	if err := enc.WriteUint8(x.U8); err != nil {
		return err
	}
	if err := enc.WriteText("u16"); err != nil {
		return err
	}
	if err := enc.WriteUint16(x.U16); err != nil {
		return err
	}
	if err := enc.WriteText("u32"); err != nil {
		return err
	}
	if err := enc.WriteUint32(x.U32); err != nil {
		return err
	}
	if err := enc.WriteText("u64"); err != nil {
		return err
	}
	if err := enc.WriteUint64(x.U64); err != nil {
		return err
	}
	if err := enc.WriteText("data"); err != nil {
		return err
	}
	if err := enc.WriteBytes(x.Data); err != nil {
		return err
	}
	if err := enc.WriteText("ints"); err != nil {
		return err
	}
	if err := enc.WriteArrayHeader(uint32(len(x.Ints))); err != nil {
		return err
	}
	for _, elem := range x.Ints {
		if err := enc.WriteInt64(int64(elem)); err != nil {
			return err
		}
	}
	if err := enc.WriteText("names"); err != nil {
		return err
	}
	if err := enc.WriteArrayHeader(uint32(len(x.Names))); err != nil {
		return err
	}
	for _, elem := range x.Names {
		if err := enc.WriteText(elem); err != nil {
			return err
		}
	}
	if err := enc.WriteText("scores"); err != nil {
		return err
	}
	if err := enc.WriteMapHeader(uint32(len(x.Scores))); err != nil {
		return err
	}
	for k, v := range x.Scores {
		if err := enc.WriteText(k); err != nil {
			return err
		}
		if err := enc.WriteInt64(int64(v)); err != nil {
			return err
		}
	}
	return nil
}

func (x *Scalars) UnmarshalCBOR(dec *cbor.Decoder) error {
	n, err := dec.ReadMapHeader()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		key, err := dec.ReadText()
		if err != nil {
			return err
		}
		switch key {
		case "s":
			if v, err := dec.ReadText(); err != nil {
				return err
			} else {
				x.S = v
			}
		case "b":
			if v, err := dec.ReadBool(); err != nil {
				return err
			} else {
				x.B = v
			}
		case "i":
			if v, err := dec.ReadInt64(); err != nil {
				return err
			} else {
				x.I = int(v)
			}
		case "i8":
			if v, err := dec.ReadInt8(); err != nil {
				return err
			} else {
				x.I8 = v
			}
		case "i16":
			if v, err := dec.ReadInt16(); err != nil {
				return err
			} else {
				x.I16 = v
			}
		case "i32":
			if v, err := dec.ReadInt32(); err != nil {
				return err
			} else {
				x.I32 = v
			}
		case "i64":
			if v, err := dec.ReadInt64(); err != nil {
				return err
			} else {
				x.I64 = v
			}
		case "u":
			if v, err := dec.ReadUint64(); err != nil {
				return err
			} else {
				x.U = uint(v)
			}
		case "u8":
			if v, err := dec.ReadUint8(); err != nil {
				return err
			} else {
				x.U8 = v
			}
		case "u16":
			if v, err := dec.ReadUint16(); err != nil {
				return err
			} else {
				x.U16 = v
			}
		case "u32":
			if v, err := dec.ReadUint32(); err != nil {
				return err
			} else {
				x.U32 = v
			}
		case "u64":
			if v, err := dec.ReadUint64(); err != nil {
				return err
			} else {
				x.U64 = v
			}
		case "data":
			if v, err := dec.ReadBytes(); err != nil {
				return err
			} else {
				x.Data = v
			}
		case "ints":
			if m, err := dec.ReadArrayHeader(); err != nil {
				return err
			} else {
				x.Ints = make([]int, 0, dec.BoundedLen(m))
				for j := uint32(0); j < m; j++ {
					v, err := dec.ReadInt64()
					if err != nil {
						return err
					}
					x.Ints = append(x.Ints, int(v))
				}
			}
		case "names":
			if m, err := dec.ReadArrayHeader(); err != nil {
				return err
			} else {
				x.Names = make([]string, 0, dec.BoundedLen(m))
				for j := uint32(0); j < m; j++ {
					v, err := dec.ReadText()
					if err != nil {
						return err
					}
					x.Names = append(x.Names, v)
				}
			}
		case "scores":
			if m, err := dec.ReadMapHeader(); err != nil {
				return err
			} else {
				x.Scores = make(map[string]int, dec.BoundedLen(m))
				for j := uint32(0); j < m; j++ {
					k, err := dec.ReadText()
					if err != nil {
						return err
					}
					v, err := dec.ReadInt64()
					if err != nil {
						return err
					}
					x.Scores[k] = int(v)
				}
			}
		default:
			if err := dec.Skip(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (x *Nested) MarshalCBOR(enc *cbor.Encoder) error {
	if err := enc.WriteMapHeader(3); err != nil {
		return err
	}
	if err := enc.WriteText("id"); err != nil {
		return err
	}
	if err := enc.WriteText(x.ID); err != nil {
		return err
	}
	if err := enc.WriteText("base"); err != nil {
		return err
	}
	if err := x.Base.MarshalCBOR(enc); err != nil {
		return err
	}
	if err := enc.WriteText("ptr"); err != nil {
		return err
	}
	if x.Ptr == nil {
		if err := enc.WriteNone(); err != nil {
			return err
		}
	} else {
		if err := x.Ptr.MarshalCBOR(enc); err != nil {
			return err
		}
	}
	return nil
}

func (x *Nested) UnmarshalCBOR(dec *cbor.Decoder) error {
	n, err := dec.ReadMapHeader()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		key, err := dec.ReadText()
		if err != nil {
			return err
		}
		switch key {
		case "id":
			if v, err := dec.ReadText(); err != nil {
				return err
			} else {
				x.ID = v
			}
		case "base":
			if err := x.Base.UnmarshalCBOR(dec); err != nil {
				return err
			}
		case "ptr":
			if present, err := dec.ReadOptionPresent(); err != nil {
				return err
			} else if !present {
				x.Ptr = nil
			} else {
				x.Ptr = new(Scalars)
				if err := x.Ptr.UnmarshalCBOR(dec); err != nil {
					return err
				}
			}
		default:
			if err := dec.Skip(); err != nil {
				return err
			}
		}
	}
	return nil
}
