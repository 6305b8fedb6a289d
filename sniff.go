package xlog

import "bytes"

// looksLikeLogText is the deliberately weak heuristic of spec §4.4: a
// decoded payload is accepted iff it is non-empty and contains at least one
// '[' and one ']'. It exists to reject random-looking decompression output,
// not to validate structure.
func looksLikeLogText(plaintext []byte) bool {
	if len(plaintext) == 0 {
		return false
	}
	return bytes.IndexByte(plaintext, '[') >= 0 && bytes.IndexByte(plaintext, ']') >= 0
}
