package proto

import (
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/go-faster/errors"
)

// Reader implements tfs wire format decoding over a byte slice.
//
// Decoding is a single forward pass: the caller reads tags until
// io.EOF and dispatches on field number and wire type, skipping
// records it does not recognize.
type Reader struct {
	buf []byte
	pos int
}

// NewReader initializes new Reader over provided bytes.
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

func (r *Reader) remaining() int {
	return len(r.buf) - r.pos
}

// Uvarint reads a single varint value.
func (r *Reader) Uvarint() (uint64, error) {
	var (
		x uint64
		s uint
	)
	for i := 0; ; i++ {
		if r.pos == len(r.buf) {
			return 0, &MalformedInputError{Reason: "truncated varint"}
		}
		if i == binary.MaxVarintLen64 {
			return 0, &MalformedInputError{Reason: "varint overflows uint64"}
		}
		c := r.buf[r.pos]
		r.pos++
		if c < 0x80 {
			if i == binary.MaxVarintLen64-1 && c > 1 {
				return 0, &MalformedInputError{Reason: "varint overflows uint64"}
			}
			return x | uint64(c)<<s, nil
		}
		x |= uint64(c&0x7f) << s
		s += 7
	}
}

// Tag reads the next record tag, returning io.EOF when input ends on
// a record boundary. Ending anywhere else is malformed input.
func (r *Reader) Tag() (field int, w WireType, err error) {
	if r.pos == len(r.buf) {
		return 0, 0, io.EOF
	}
	v, err := r.Uvarint()
	if err != nil {
		return 0, 0, errors.Wrap(err, "tag")
	}
	return int(v >> 3), WireType(v & 7), nil
}

// StrBytes reads a length-delimited payload.
func (r *Reader) StrBytes() ([]byte, error) {
	n, err := r.Uvarint()
	if err != nil {
		return nil, errors.Wrap(err, "length")
	}
	if n > uint64(r.remaining()) {
		return nil, &MalformedInputError{Reason: "length exceeds remaining input"}
	}
	v := r.buf[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return v, nil
}

// Str reads a length-delimited UTF-8 string.
func (r *Reader) Str() (string, error) {
	v, err := r.StrBytes()
	if err != nil {
		return "", errors.Wrap(err, "bytes")
	}
	if !utf8.Valid(v) {
		return "", &MalformedInputError{Reason: "invalid utf8"}
	}
	return string(v), nil
}

// Msg reads a length-delimited nested message payload and returns a
// Reader over it.
func (r *Reader) Msg() (*Reader, error) {
	v, err := r.StrBytes()
	if err != nil {
		return nil, errors.Wrap(err, "bytes")
	}
	return NewReader(v), nil
}

// Skip discards one record payload of wire type w. Unknown fields are
// skipped this way to stay compatible with producers that add fields.
func (r *Reader) Skip(w WireType) error {
	switch w {
	case WireVarint:
		_, err := r.Uvarint()
		return err
	case WireBytes:
		_, err := r.StrBytes()
		return err
	default:
		return &MalformedInputError{Reason: "unsupported wire type"}
	}
}
