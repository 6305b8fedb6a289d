package xlog

import (
	"strconv"
	"strings"
	"time"
)

// parseLines splits plaintext on newlines and turns each well-formed line
// into a Record, per spec §4.6. Malformed lines are silently dropped; the
// overall decode never fails because of them.
func parseLines(plaintext []byte) []Record {
	var records []Record
	for _, line := range strings.Split(string(plaintext), "\n") {
		if rec, ok := parseLine(line); ok {
			records = append(records, rec)
		}
	}
	return records
}

// parseLine extracts up to five bracket-delimited tokens from line and
// builds a Record from them. Nested brackets aren't supported; text outside
// brackets between tokens is ignored.
func parseLine(line string) (Record, bool) {
	if !strings.HasPrefix(line, "[") {
		return Record{}, false
	}

	var tokens []string
	var current strings.Builder
	inBracket := false
	closePos := -1

tokenLoop:
	for i, c := range line {
		switch {
		case c == '[':
			inBracket = true
			current.Reset()
		case c == ']':
			inBracket = false
			tokens = append(tokens, current.String())
			closePos = i
			if len(tokens) == 5 {
				break tokenLoop
			}
		case inBracket:
			current.WriteRune(c)
		}
	}
	if len(tokens) < 5 {
		return Record{}, false
	}

	message := strings.TrimSpace(line[closePos+1:])

	return Record{
		Level:       parseLevel(tokens[0]),
		TimestampMs: parseTimestamp(tokens[1]),
		Pid:         parsePid(tokens[2]),
		Tid:         parseTid(tokens[2]),
		Tag:         tokens[3],
		Message:     message,
	}, true
}

func parseLevel(tok string) Level {
	switch strings.ToUpper(tok) {
	case "V":
		return LevelVerbose
	case "D":
		return LevelDebug
	case "I":
		return LevelInfo
	case "W":
		return LevelWarn
	case "E":
		return LevelError
	case "F":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// canonicalTimestampLayout is the form parseTimestamp leaves after dropping
// every whitespace-separated sub-token starting with '+' or '-' (the
// timezone offset marker) from the raw "YYYY-MM-DD [+|-]H.h HH:MM:SS.mmm"
// token.
const canonicalTimestampLayout = "2006-01-02 15:04:05.000"

// parseTimestamp implements spec §4.6 step 6. On any parse failure it
// returns 0, matching the "unparseable timestamp" contract in the data
// model (§3).
func parseTimestamp(tok string) int64 {
	fields := strings.Fields(tok)
	kept := fields[:0]
	for _, f := range fields {
		// The offset sub-token carries an explicit sign either way
		// ("+8.0" east of UTC, "-3.0" west); both are discarded, not just
		// the '+' case spec prose calls out, since the timestamp is always
		// interpreted as UTC regardless of the device's local offset.
		if strings.HasPrefix(f, "+") || strings.HasPrefix(f, "-") {
			continue
		}
		kept = append(kept, f)
	}
	joined := strings.Join(kept, " ")

	t, err := time.Parse(canonicalTimestampLayout, joined)
	if err != nil {
		return 0
	}
	return t.UTC().UnixMilli()
}

// parsePid implements spec §4.6 step 7's first comma-separated piece.
func parsePid(tok string) int64 {
	parts := strings.SplitN(tok, ",", 2)
	v, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseTid implements spec §4.6 step 7's second comma-separated piece,
// trimming whitespace and a trailing '*' before parsing.
func parseTid(tok string) int64 {
	parts := strings.SplitN(tok, ",", 2)
	if len(parts) < 2 {
		return 0
	}
	s := strings.TrimSpace(parts[1])
	s = strings.TrimSuffix(s, "*")
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
