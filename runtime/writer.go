package cbor

// Writer is the minimal sink the Encoder writes through: append this byte
// slice, in order, or fail. Implementations are strictly append-only; the
// codec never seeks or truncates.
type Writer interface {
	// WriteAll appends buf in its entirety or returns an error. A partial
	// write followed by an error is not a valid implementation: either all
	// of buf is committed, or none of it is (beyond whatever a prior call
	// already committed).
	WriteAll(buf []byte) error
}

// SliceWriter is a Writer over a caller-supplied fixed-size byte slice. It
// advances by splitting the head off on each write and fails once the
// remaining tail is shorter than the requested write — the direct Go
// analog of the Rust original's `impl Writer for &mut [u8]`.
type SliceWriter struct {
	buf     []byte
	written int
}

// NewSliceWriter wraps buf for writing. The returned writer never grows buf;
// writes beyond its length fail with SerializeBufferFull.
func NewSliceWriter(buf []byte) *SliceWriter {
	return &SliceWriter{buf: buf}
}

func (w *SliceWriter) WriteAll(p []byte) error {
	if len(w.buf) < len(p) {
		return SerializeBufferFull{Written: w.written}
	}
	n := copy(w.buf, p)
	w.buf = w.buf[n:]
	w.written += n
	return nil
}

// Written returns the length of the filled prefix of the slice passed to
// NewSliceWriter.
func (w *SliceWriter) Written() int { return w.written }

// byteBufferWriter adapts a *ByteBuffer (a growable bounded byte container)
// to the Writer contract. It never reports buffer-full: Ensure grows the
// backing array as needed.
type byteBufferWriter struct{ bb *ByteBuffer }

func (w byteBufferWriter) WriteAll(p []byte) error {
	w.bb.Ensure(len(p))
	_, _ = w.bb.Write(p)
	return nil
}

// WriterForByteBuffer adapts bb to Writer, for use with SerializeExtending
// and with Encoder directly.
func WriterForByteBuffer(bb *ByteBuffer) Writer { return byteBufferWriter{bb: bb} }

// passthroughWriter lets a caller reuse an owned Writer across calls without
// giving up ownership — the Go analog of the Rust original's
// `impl<'a, T: Writer> Writer for &'a mut T`. In Go this is just the
// identity: any Writer value (usually already held behind a pointer) can be
// passed directly to NewEncoder, so no wrapper type is required. Kept as a
// named function for discoverability and parity with the original's
// pass-through impl.
func PassThrough(w Writer) Writer { return w }
