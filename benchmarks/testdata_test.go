package benchmarks

import (
	"testing"

	msgp "github.com/tinylib/msgp/msgp"

	cbor "github.com/fenwick-io/cbor-go/runtime"
)

// TestData exercises a small record with scalar, array, and map fields
// side by side through this module's runtime and tinylib/msgp, so the
// two can be compared on equivalent shapes.
type TestData struct {
	Name   string
	Age    int64
	Email  string
	Active bool
	Tags   []string
	Scores map[string]int64
}

func encodeMsgpTestData(data TestData) []byte {
	var buf []byte
	buf = msgp.AppendString(buf, data.Name)
	buf = msgp.AppendInt64(buf, data.Age)
	buf = msgp.AppendString(buf, data.Email)
	buf = msgp.AppendBool(buf, data.Active)

	buf = msgp.AppendArrayHeader(buf, uint32(len(data.Tags)))
	for _, tag := range data.Tags {
		buf = msgp.AppendString(buf, tag)
	}

	buf = msgp.AppendMapHeader(buf, uint32(len(data.Scores)))
	for k, v := range data.Scores {
		buf = msgp.AppendString(buf, k)
		buf = msgp.AppendInt64(buf, v)
	}

	return buf
}

func encodeCBORTestData(data TestData) []byte {
	bb := cbor.GetByteBuffer()
	defer cbor.PutByteBuffer(bb)
	enc := cbor.NewEncoder(cbor.WriterForByteBuffer(bb))

	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(enc.WriteText(data.Name))
	must(enc.WriteInt64(data.Age))
	must(enc.WriteText(data.Email))
	must(enc.WriteBool(data.Active))

	must(enc.WriteArrayHeader(uint32(len(data.Tags))))
	for _, tag := range data.Tags {
		must(enc.WriteText(tag))
	}

	must(enc.WriteMapHeader(uint32(len(data.Scores))))
	for k, v := range data.Scores {
		must(enc.WriteText(k))
		must(enc.WriteInt64(v))
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return out
}

func decodeMsgpTestData(b []byte) error {
	buf := b
	var err error

	_, buf, err = msgp.ReadStringBytes(buf)
	if err != nil {
		return err
	}
	_, buf, err = msgp.ReadInt64Bytes(buf)
	if err != nil {
		return err
	}
	_, buf, err = msgp.ReadStringBytes(buf)
	if err != nil {
		return err
	}
	_, buf, err = msgp.ReadBoolBytes(buf)
	if err != nil {
		return err
	}

	var arrSize uint32
	arrSize, buf, err = msgp.ReadArrayHeaderBytes(buf)
	if err != nil {
		return err
	}
	for j := uint32(0); j < arrSize; j++ {
		_, buf, err = msgp.ReadStringBytes(buf)
		if err != nil {
			return err
		}
	}

	var mapSize uint32
	mapSize, buf, err = msgp.ReadMapHeaderBytes(buf)
	if err != nil {
		return err
	}
	for j := uint32(0); j < mapSize; j++ {
		_, buf, err = msgp.ReadStringBytes(buf)
		if err != nil {
			return err
		}
		_, buf, err = msgp.ReadInt64Bytes(buf)
		if err != nil {
			return err
		}
	}

	return nil
}

func decodeCBORTestData(b []byte) error {
	dec := cbor.NewDecoder(b)

	if _, err := dec.ReadText(); err != nil {
		return err
	}
	if _, err := dec.ReadInt64(); err != nil {
		return err
	}
	if _, err := dec.ReadText(); err != nil {
		return err
	}
	if _, err := dec.ReadBool(); err != nil {
		return err
	}

	arrSize, err := dec.ReadArrayHeader()
	if err != nil {
		return err
	}
	for j := uint32(0); j < dec.BoundedLen(arrSize); j++ {
		if _, err := dec.ReadText(); err != nil {
			return err
		}
	}

	mapSize, err := dec.ReadMapHeader()
	if err != nil {
		return err
	}
	for j := uint32(0); j < dec.BoundedLen(mapSize); j++ {
		if _, err := dec.ReadText(); err != nil {
			return err
		}
		if _, err := dec.ReadInt64(); err != nil {
			return err
		}
	}

	return nil
}

func TestTestDataPrimitivePathsParity(t *testing.T) {
	data := TestData{
		Name:   "Alice Johnson",
		Age:    30,
		Email:  "alice@example.com",
		Active: true,
		Tags:   []string{"premium", "verified", "active"},
		Scores: map[string]int64{"math": 95, "science": 88, "history": 92},
	}

	cases := []struct {
		name string
		enc  func(TestData) []byte
		dec  func([]byte) error
	}{
		{"msgp", encodeMsgpTestData, decodeMsgpTestData},
		{"cbor", encodeCBORTestData, decodeCBORTestData},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.enc(data)
			if len(b) == 0 {
				t.Fatalf("%s: empty encoding", tc.name)
			}
			if err := tc.dec(b); err != nil {
				t.Fatalf("%s: decode err: %v", tc.name, err)
			}
		})
	}
}

func BenchmarkCBOR_TestData_Encode(b *testing.B) {
	data := TestData{
		Name:   "Alice Johnson",
		Age:    30,
		Email:  "alice@example.com",
		Active: true,
		Tags:   []string{"premium", "verified", "active"},
		Scores: map[string]int64{"math": 95, "science": 88, "history": 92},
	}
	b.ReportAllocs()
	b.ResetTimer()
	var out []byte
	for i := 0; i < b.N; i++ {
		out = encodeCBORTestData(data)
	}
	_ = out
}

func BenchmarkMsgp_TestData_Encode(b *testing.B) {
	data := TestData{
		Name:   "Alice Johnson",
		Age:    30,
		Email:  "alice@example.com",
		Active: true,
		Tags:   []string{"premium", "verified", "active"},
		Scores: map[string]int64{"math": 95, "science": 88, "history": 92},
	}
	b.ReportAllocs()
	b.ResetTimer()
	var out []byte
	for i := 0; i < b.N; i++ {
		out = encodeMsgpTestData(data)
	}
	_ = out
}
