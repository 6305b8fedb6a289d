package xlog

// DecodeStats carries the original MarsLens core's debug counters (spec
// SPEC_FULL §3) as an explicit opt-in out-parameter instead of unconditional
// logging, consistent with this module's no-logging ambient stance.
type DecodeStats struct {
	FramesSeen     int
	FramesAccepted int
	PlaintextBytes int
	RecordsEmitted int
}

// DecodeOptions configures a decode call. The zero value matches spec.md's
// default behavior exactly: no key, lenient sentinel checking.
type DecodeOptions struct {
	// Key is the symmetric TEA key, hex-encoded. Empty means "no key
	// supplied"; anything that isn't exactly 16 bytes of decoded hex is
	// treated identically to no key at all (spec §4.2, property P4).
	Key string
	// StrictSentinel rejects frames whose trailing byte isn't 0x00 instead
	// of tolerating any value there (spec §9's "stricter mode" open
	// question).
	StrictSentinel bool
	// Stats, if non-nil, is populated with counters from this decode.
	Stats *DecodeStats
}

// assemble drives C1-C4 across buf and returns the concatenated plaintext
// of every accepted frame, in file order (spec §4.5). This is the pure,
// allocation-owning core that the rest of the package's public API wraps
// with file I/O.
func assemble(buf []byte, opts DecodeOptions) []byte {
	var out []byte
	o := 0
	for o < len(buf) {
		f, ok := nextFrame(buf, o, opts.StrictSentinel)
		if !ok {
			o++
			continue
		}
		if opts.Stats != nil {
			opts.Stats.FramesSeen++
		}

		payload := append([]byte(nil), f.payload(buf)...)
		payload = maybeDecrypt(f.magic, payload, opts.Key)

		plaintext, err := decompress(f.magic, payload)
		if err != nil || !looksLikeLogText(plaintext) {
			o++
			continue
		}

		out = append(out, plaintext...)
		if opts.Stats != nil {
			opts.Stats.FramesAccepted++
			opts.Stats.PlaintextBytes += len(plaintext)
		}
		o = f.end()
	}
	return out
}
