package payload

import (
	"bytes"
	"encoding/binary"

	"github.com/klauspost/compress/zlib"
)

// Wire format of a compressed block:
//
//	length[4] = uncompressed payload size, uint32 big-endian
//	stream    = zlib stream (RFC 1950) at best compression
//
// This is the framing produced by Qt's qCompress, so any decoder built around
// qUncompress can recover the payload. The length prefix is the original size,
// not the compressed size.
const lengthPrefixSize = 4

// MaxPayloadSize is the largest payload the compressed-block framing can
// describe; the length prefix is a 4-byte unsigned integer.
const MaxPayloadSize = 1<<32 - 1

// Compress frames data as a compressed block. It never fails: writes go to an
// in-memory buffer and the compression level is fixed, so there is no error
// path. The empty payload yields a zero length prefix followed by the zlib
// stream encoding zero bytes.
//
// The caller must ensure len(data) <= MaxPayloadSize; see Build.
func Compress(data []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(lengthPrefixSize + len(data)/2 + 16)

	var length [lengthPrefixSize]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(data)))
	buf.Write(length[:])

	// BestCompression is a valid level and bytes.Buffer writes cannot fail,
	// so the writer errors carry no information here.
	zw, _ := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	_, _ = zw.Write(data)
	_ = zw.Close()

	return buf.Bytes()
}
