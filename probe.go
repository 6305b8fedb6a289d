package xlog

import (
	"os"
	"path/filepath"
	"strings"
)

// xlogExtensions are the file extensions (case-insensitive) a candidate
// file must carry before IsXlogFile bothers reading it (spec §4.7).
var xlogExtensions = map[string]bool{
	".xlog":  true,
	".mmap":  true,
	".mmap2": true,
	".mmap3": true,
}

// probeMagicMin is the lower bound on magic bytes IsXlogFile accepts as a
// frame start, per spec §4.7 ("restricted to magics {0x03...0x0D}"). This is
// stricter than nextFrame's general 0x01-0x0D range used elsewhere.
const probeMagicMin = 0x03

// IsXlogFile reports whether path plausibly holds Xlog-framed data: its
// extension matches one of the known Xlog suffixes and at least one offset
// in its first 1024 bytes starts a single frame that passes nextFrame's
// validation, restricted to magics {0x03..0x0D} (spec §4.7). This is the
// detector the directory scan (Scan) uses.
func IsXlogFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if !xlogExtensions[ext] {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, 1024)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return false
	}
	if n < 10 {
		return false
	}
	buf = buf[:n]

	for cursor, b := range buf {
		if b < probeMagicMin || b > magicMax {
			continue
		}
		if isGoodLogBuf(buf, cursor, 1, false) {
			return true
		}
	}
	return false
}
