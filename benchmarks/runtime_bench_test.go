package benchmarks

import (
	"testing"

	msgp "github.com/tinylib/msgp/msgp"

	cbor "github.com/fenwick-io/cbor-go/runtime"
)

// Primitive encode microbenchmarks comparing this CBOR runtime against
// tinylib/msgp's MessagePack runtime for similar operations.

func BenchmarkCBOR_WriteInt64(b *testing.B) {
	bb := cbor.GetByteBuffer()
	defer cbor.PutByteBuffer(bb)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bb.Reset()
		enc := cbor.NewEncoder(cbor.WriterForByteBuffer(bb))
		if err := enc.WriteInt64(int64(i)); err != nil {
			b.Fatalf("WriteInt64: %v", err)
		}
	}
}

func BenchmarkMsgp_AppendInt64(b *testing.B) {
	var out []byte
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = msgp.AppendInt64(out[:0], int64(i))
	}
	_ = out
}

func BenchmarkCBOR_WriteText(b *testing.B) {
	bb := cbor.GetByteBuffer()
	defer cbor.PutByteBuffer(bb)
	s := "hello world"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bb.Reset()
		enc := cbor.NewEncoder(cbor.WriterForByteBuffer(bb))
		if err := enc.WriteText(s); err != nil {
			b.Fatalf("WriteText: %v", err)
		}
	}
}

func BenchmarkMsgp_AppendString(b *testing.B) {
	var out []byte
	s := "hello world"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = msgp.AppendString(out[:0], s)
	}
	_ = out
}

func BenchmarkCBOR_WriteBytes(b *testing.B) {
	bb := cbor.GetByteBuffer()
	defer cbor.PutByteBuffer(bb)
	data := []byte("payload bytes")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bb.Reset()
		enc := cbor.NewEncoder(cbor.WriterForByteBuffer(bb))
		if err := enc.WriteBytes(data); err != nil {
			b.Fatalf("WriteBytes: %v", err)
		}
	}
}

func BenchmarkMsgp_AppendBytes(b *testing.B) {
	var out []byte
	data := []byte("payload bytes")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = msgp.AppendBytes(out[:0], data)
	}
	_ = out
}
