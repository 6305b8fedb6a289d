package xlog

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	kzlib "github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// zstdDecoder is shared across decode calls the way qwick shares its
// package-level zstd.Reader; zstd's decoder is safe for concurrent use once
// constructed and constructing one per frame would be wasteful.
var zstdDecoder, _ = zstd.NewReader(nil)

// decompress applies the codec spec §4.3 assigns to magic's class. Plain
// class frames pass through untouched; deflate class tries raw deflate and
// falls back to zlib-framed deflate; zstd class decodes a standalone zstd
// frame. Any codec error is reported to the caller, which rejects the frame.
func decompress(magic byte, payload []byte) ([]byte, error) {
	switch codecFor(magic) {
	case codecZstd:
		return zstdDecoder.DecodeAll(payload, nil)
	case codecDeflate:
		if out, err := inflateRaw(payload); err == nil {
			return out, nil
		}
		return inflateZlib(payload)
	default:
		return payload, nil
	}
}

func inflateRaw(payload []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(payload))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func inflateZlib(payload []byte) ([]byte, error) {
	r, err := kzlib.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
