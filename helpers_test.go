package xlog

import (
	"bytes"
	"encoding/binary"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
)

// buildFrame assembles one on-disk frame: header + payload + sentinel, per
// spec §3. Crypt-key material is zero-filled; the decoder never interprets
// it.
func buildFrame(magic byte, seq uint16, beginAttr, levelAttr byte, payload []byte) []byte {
	k := keyMaterialLen(magic)
	buf := make([]byte, 0, fixedHeaderSize+k+len(payload)+1)

	var hdr [9]byte
	hdr[0] = magic
	binary.LittleEndian.PutUint16(hdr[1:3], seq)
	hdr[3] = beginAttr
	hdr[4] = levelAttr
	binary.LittleEndian.PutUint32(hdr[5:9], uint32(len(payload)))

	buf = append(buf, hdr[:]...)
	buf = append(buf, make([]byte, k)...)
	buf = append(buf, payload...)
	buf = append(buf, sentinelByte)
	return buf
}

func deflateRawBytes(plaintext []byte) []byte {
	var b bytes.Buffer
	w, err := flate.NewWriter(&b, flate.DefaultCompression)
	if err != nil {
		panic(err)
	}
	if _, err := w.Write(plaintext); err != nil {
		panic(err)
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
	return b.Bytes()
}

func zstdBytes(plaintext []byte) []byte {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		panic(err)
	}
	defer enc.Close()
	return enc.EncodeAll(plaintext, nil)
}

// teaEncryptECB is the inverse of teaDecryptECB: it builds the ciphertext a
// real Xlog writer would have produced, for use in test fixtures only. The
// decoder itself never encrypts anything.
func teaEncryptECB(data []byte, key [16]byte) {
	var k [4]uint32
	for i := range k {
		k[i] = binary.LittleEndian.Uint32(key[i*4 : i*4+4])
	}
	n := len(data) - len(data)%8
	for off := 0; off < n; off += 8 {
		v0 := binary.LittleEndian.Uint32(data[off : off+4])
		v1 := binary.LittleEndian.Uint32(data[off+4 : off+8])

		sum := uint32(0xC6EF3720) - 15*teaDelta
		for round := 0; round < 16; round++ {
			v0 += ((v1 << 4) + k[0]) ^ (v1 + sum) ^ ((v1 >> 5) + k[1])
			v1 += ((v0 << 4) + k[2]) ^ (v0 + sum) ^ ((v0 >> 5) + k[3])
			sum += teaDelta
		}

		binary.LittleEndian.PutUint32(data[off:off+4], v0)
		binary.LittleEndian.PutUint32(data[off+4:off+8], v1)
	}
}
