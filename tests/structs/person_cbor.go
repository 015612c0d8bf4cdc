package structs

import (
	cbor "github.com/fenwick-io/cbor-go/runtime"
)

func (x *Person) MarshalCBOR(enc *cbor.Encoder) error {
	if err := enc.WriteMapHeader(3); err != nil {
		return err
	}
	if err := enc.WriteText("name"); err != nil {
		return err
	}
	if err := enc.WriteText(x.Name); err != nil {
		return err
	}
	if err := enc.WriteText("age"); err != nil {
		return err
	}
	if err := enc.WriteInt64(int64(x.Age)); err != nil {
		return err
	}
	if err := enc.WriteText("data"); err != nil {
		return err
	}
	if err := enc.WriteBytes(x.Data); err != nil {
		return err
	}
	return nil
}

func (x *Person) UnmarshalCBOR(dec *cbor.Decoder) error {
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
		case "name":
			if v, err := dec.ReadText(); err != nil {
				return err
			} else {
				x.Name = v
			}
		case "age":
			if v, err := dec.ReadInt64(); err != nil {
				return err
			} else {
				x.Age = int(v)
			}
		case "data":
			if v, err := dec.ReadBytes(); err != nil {
				return err
			} else {
				x.Data = v
			}
		default:
			if err := dec.Skip(); err != nil {
				return err
			}
		}
	}
	return nil
}
