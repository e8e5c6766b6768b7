package sanitize

import (
	"os"
	"strings"
)

const (
	esc = 0x1b

	paramLo        = 0x30
	paramHi        = 0x3f
	intermediateLo = 0x20
	intermediateHi = 0x2f
)

// FindFirstANSICSISeq looks at the first ESC byte in s and checks whether
// a sequence matching the CSI grammar ESC '[' params* intermediates*
// (K|m) starts there, where params are bytes in [0x30,0x3f] and
// intermediates are bytes in [0x20,0x2f]. It returns the [start,end)
// byte range of that sequence within s, or ok=false if s has no ESC or
// the first ESC does not begin a complete sequence. ESC bytes after the
// first one are not examined.
func FindFirstANSICSISeq(s string) (start, end int, ok bool) {
	pos := 0
	for pos < len(s) && s[pos] != esc {
		pos++
	}
	if pos+1 >= len(s) || s[pos+1] != '[' {
		return 0, 0, false
	}

	start = pos
	pos += 2
	for pos < len(s) && s[pos] >= paramLo && s[pos] <= paramHi {
		pos++
	}
	for pos < len(s) && s[pos] >= intermediateLo && s[pos] <= intermediateHi {
		pos++
	}
	if pos < len(s) && (s[pos] == 'K' || s[pos] == 'm') {
		return start, pos + 1, true
	}
	return 0, 0, false
}

// StripANSICSISeqs removes CSI sequences from s by repeated calls to
// FindFirstANSICSISeq. All other bytes, including incomplete or
// malformed escape sequences, are preserved verbatim. Scanning stops at
// the first ESC that does not begin a complete sequence: everything from
// that ESC on, including any later complete sequences, is kept as is.
func StripANSICSISeqs(s string) string {
	var result strings.Builder
	pos := 0
	for {
		start, end, ok := FindFirstANSICSISeq(s[pos:])
		if !ok {
			result.WriteString(s[pos:])
			break
		}
		result.WriteString(s[pos : pos+start])
		pos += end
	}
	return result.String()
}

// SendToStderr writes text to stderr, stripping ANSI CSI sequences
// first when stripColors is set.
func SendToStderr(text string, stripColors bool) error {
	out := text
	if stripColors {
		out = StripANSICSISeqs(text)
	}
	_, err := os.Stderr.WriteString(out)
	return err
}
