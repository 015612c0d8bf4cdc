package structs

import (
	cbor "github.com/fenwick-io/cbor-go/runtime"
)

func (x *Containers) MarshalCBOR(enc *cbor.Encoder) error {
	if err := enc.WriteMapHeader(4); err != nil {
		return err
	}

	if err := enc.WriteText("items"); err != nil {
		return err
	}
	if err := enc.WriteArrayHeader(uint32(len(x.Items))); err != nil {
		return err
	}
	for i := range x.Items {
		if err := x.Items[i].MarshalCBOR(enc); err != nil {
			return err
		}
	}

	if err := enc.WriteText("ptrs"); err != nil {
		return err
	}
	if err := enc.WriteArrayHeader(uint32(len(x.Ptrs))); err != nil {
		return err
	}
	for _, p := range x.Ptrs {
		if p == nil {
			if err := enc.WriteNone(); err != nil {
				return err
			}
			continue
		}
		if err := p.MarshalCBOR(enc); err != nil {
			return err
		}
	}

	if err := enc.WriteText("map"); err != nil {
		return err
	}
	if err := enc.WriteMapHeader(uint32(len(x.Map))); err != nil {
		return err
	}
	for k, v := range x.Map {
		if err := enc.WriteText(k); err != nil {
			return err
		}
		if err := v.MarshalCBOR(enc); err != nil {
			return err
		}
	}

	if err := enc.WriteText("ptr_map"); err != nil {
		return err
	}
	if err := enc.WriteMapHeader(uint32(len(x.PtrMap))); err != nil {
		return err
	}
	for k, p := range x.PtrMap {
		if err := enc.WriteText(k); err != nil {
			return err
		}
		if p == nil {
			if err := enc.WriteNone(); err != nil {
				return err
			}
			continue
		}
		if err := p.MarshalCBOR(enc); err != nil {
			return err
		}
	}

	return nil
}

func (x *Containers) UnmarshalCBOR(dec *cbor.Decoder) error {
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
		case "items":
			m, err := dec.ReadArrayHeader()
			if err != nil {
				return err
			}
			x.Items = make([]Scalars, 0, dec.BoundedLen(m))
			for j := uint32(0); j < m; j++ {
				var elem Scalars
				if err := elem.UnmarshalCBOR(dec); err != nil {
					return err
				}
				x.Items = append(x.Items, elem)
			}
		case "ptrs":
			m, err := dec.ReadArrayHeader()
			if err != nil {
				return err
			}
			x.Ptrs = make([]*Scalars, 0, dec.BoundedLen(m))
			for j := uint32(0); j < m; j++ {
				present, err := dec.ReadOptionPresent()
				if err != nil {
					return err
				}
				if !present {
					x.Ptrs = append(x.Ptrs, nil)
					continue
				}
				elem := new(Scalars)
				if err := elem.UnmarshalCBOR(dec); err != nil {
					return err
				}
				x.Ptrs = append(x.Ptrs, elem)
			}
		case "map":
			m, err := dec.ReadMapHeader()
			if err != nil {
				return err
			}
			x.Map = make(map[string]Scalars, dec.BoundedLen(m))
			for j := uint32(0); j < m; j++ {
				k, err := dec.ReadText()
				if err != nil {
					return err
				}
				var v Scalars
				if err := v.UnmarshalCBOR(dec); err != nil {
					return err
				}
				x.Map[k] = v
			}
		case "ptr_map":
			m, err := dec.ReadMapHeader()
			if err != nil {
				return err
			}
			x.PtrMap = make(map[string]*Scalars, dec.BoundedLen(m))
			for j := uint32(0); j < m; j++ {
				k, err := dec.ReadText()
				if err != nil {
					return err
				}
				present, err := dec.ReadOptionPresent()
				if err != nil {
					return err
				}
				if !present {
					x.PtrMap[k] = nil
					continue
				}
				elem := new(Scalars)
				if err := elem.UnmarshalCBOR(dec); err != nil {
					return err
				}
				x.PtrMap[k] = elem
			}
		default:
			if err := dec.Skip(); err != nil {
				return err
			}
		}
	}
	return nil
}
