package xlog

import (
	"encoding/binary"
	"encoding/hex"
)

// teaDelta and the 16-round decryption schedule follow the TEA algorithm as
// Mars/Xlog uses it: ECB mode, 16 rounds (not the 32 of "full" TEA), keyed
// by four little-endian uint32 subkeys. See spec §4.2.
const teaDelta = 0x9E3779B9

// decodeKey parses key as hex and returns the 16-byte TEA key iff it is
// exactly that length. Any other input (empty, non-hex, wrong length) is
// treated as "no key" per spec §4.2 and testable property P4.
func decodeKey(key string) ([16]byte, bool) {
	var out [16]byte
	raw, err := hex.DecodeString(key)
	if err != nil || len(raw) != 16 {
		return out, false
	}
	copy(out[:], raw)
	return out, true
}

// teaDecryptECB decrypts data in place, 8 bytes at a time, using TEA-ECB
// with the given 128-bit key. A trailing partial block (len(data)%8 != 0)
// is left untouched.
func teaDecryptECB(data []byte, key [16]byte) {
	var k [4]uint32
	for i := range k {
		k[i] = binary.LittleEndian.Uint32(key[i*4 : i*4+4])
	}
	n := len(data) - len(data)%8
	for off := 0; off < n; off += 8 {
		v0 := binary.LittleEndian.Uint32(data[off : off+4])
		v1 := binary.LittleEndian.Uint32(data[off+4 : off+8])

		sum := uint32(0xC6EF3720)
		for round := 0; round < 16; round++ {
			v1 -= ((v0 << 4) + k[2]) ^ (v0 + sum) ^ ((v0 >> 5) + k[3])
			v0 -= ((v1 << 4) + k[0]) ^ (v1 + sum) ^ ((v1 >> 5) + k[1])
			sum -= teaDelta
		}

		binary.LittleEndian.PutUint32(data[off:off+4], v0)
		binary.LittleEndian.PutUint32(data[off+4:off+8], v1)
	}
}

// maybeDecrypt decrypts payload in place when magic's class is encrypted and
// key decodes to a valid 16-byte TEA key; otherwise payload is returned
// untouched (spec §4.2 — a missing/invalid key leaves the frame to be
// rejected downstream by the codec or sniffer).
func maybeDecrypt(magic byte, payload []byte, key string) []byte {
	if !isEncrypted(magic) {
		return payload
	}
	k, ok := decodeKey(key)
	if !ok {
		return payload
	}
	teaDecryptECB(payload, k)
	return payload
}
