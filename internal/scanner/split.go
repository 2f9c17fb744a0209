// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scanner

import (
	"bytes"
)

var (
	envelopeBegin = []byte("BEGIN:")
	envelopeEnd   = []byte("END:")
)

// splitRecords is a [bufio.SplitFunc] that cuts a scanner feed into whole
// codes.
//
// A NUL byte always ends a record, so a source may frame any payload,
// newlines included, as "payload\x00". Without NUL framing a newline ends a
// record, except inside an envelope: a record whose first line starts with
// BEGIN: (a vCard) runs up to and including its END: line, or up to the next
// blank line when the END: line is missing.
func splitRecords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	nl := bytes.IndexByte(data, '\n')
	nul := bytes.IndexByte(data, 0)
	if nul >= 0 && (nl < 0 || nul < nl) {
		return nul + 1, data[:nul], nil
	}
	if nl < 0 {
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}

	if !hasPrefixFold(bytes.TrimSpace(data[:nl]), envelopeBegin) {
		return nl + 1, data[:nl], nil
	}

	pos := nl + 1
	for {
		next := bytes.IndexByte(data[pos:], '\n')
		if nul >= 0 && (next < 0 || nul < pos+next) {
			return nul + 1, data[:nul], nil
		}
		if next < 0 {
			if atEOF {
				return len(data), data, nil
			}
			return 0, nil, nil
		}

		end := pos + next
		line := bytes.TrimSpace(data[pos:end])
		switch {
		case len(line) == 0:
			return end + 1, data[:pos], nil
		case hasPrefixFold(line, envelopeEnd):
			return end + 1, data[:end], nil
		}
		pos = end + 1
	}
}

func hasPrefixFold(s, prefix []byte) bool {
	return len(s) >= len(prefix) && bytes.EqualFold(s[:len(prefix)], prefix)
}
