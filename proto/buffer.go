package proto

import "encoding/binary"

// WireType is the low three bits of a record tag.
type WireType byte

// Wire types used by the schema. No fixed-width types occur.
const (
	WireVarint WireType = 0
	WireBytes  WireType = 2
)

// Buffer implements tfs wire format encoding.
type Buffer struct {
	Buf []byte
}

// Encoder implements encoding to Buffer that depends on schema version.
type Encoder interface {
	EncodeAware(b *Buffer, v Version)
}

// Reset buffer to zero length.
func (b *Buffer) Reset() {
	b.Buf = b.Buf[:0]
}

// Reader returns new *Reader over buffered bytes.
func (b *Buffer) Reader() *Reader {
	return NewReader(b.Buf)
}

// PutRaw writes v as raw bytes to buffer.
func (b *Buffer) PutRaw(v []byte) {
	b.Buf = append(b.Buf, v...)
}

// PutUVarInt encodes x as uvarint.
func (b *Buffer) PutUVarInt(x uint64) {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buf, x)
	b.Buf = append(b.Buf, buf[:n]...)
}

// PutTag encodes record tag for field number and wire type.
func (b *Buffer) PutTag(field int, w WireType) {
	b.PutUVarInt(uint64(field)<<3 | uint64(w))
}

// PutLen encodes length to buffer as uvarint.
func (b *Buffer) PutLen(x int) {
	b.PutUVarInt(uint64(x))
}

// PutString encodes a length-delimited string record for field.
func (b *Buffer) PutString(field int, s string) {
	b.PutTag(field, WireBytes)
	b.PutLen(len(s))
	b.Buf = append(b.Buf, s...)
}

// PutBytes encodes a length-delimited record for field.
func (b *Buffer) PutBytes(field int, v []byte) {
	b.PutTag(field, WireBytes)
	b.PutLen(len(v))
	b.PutRaw(v)
}

// PutVarint encodes a varint record for field.
func (b *Buffer) PutVarint(field int, v uint64) {
	b.PutTag(field, WireVarint)
	b.PutUVarInt(v)
}

// PutMessage encodes e as a length-delimited nested record for field.
func (b *Buffer) PutMessage(field int, e Encoder, v Version) {
	var sub Buffer
	e.EncodeAware(&sub, v)
	b.PutBytes(field, sub.Buf)
}
