package discover

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
)

const prescanChunk = 256 * 1024

// prescanMarkers are lower-case marker words. Any block the grammar accepts
// contains one of them, so a file without them cannot hold documentation.
var prescanMarkers = [][]byte{[]byte("luagmp"), []byte("luadoc")}

// MightContainDocs reports whether the file at path contains a marker word,
// ignoring case. It reads in chunks and stops at the first hit.
func MightContainDocs(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Wrap(err, "opening for pre-scan")
	}
	defer f.Close()
	return containsMarker(f)
}

func containsMarker(r io.Reader) (bool, error) {
	overlap := 0
	for _, m := range prescanMarkers {
		overlap = max(overlap, len(m)-1)
	}

	buf := make([]byte, overlap+prescanChunk)
	carry := 0
	for {
		n, err := io.ReadFull(r, buf[carry:])
		lowerASCII(buf[carry : carry+n])
		window := buf[:carry+n]
		for _, m := range prescanMarkers {
			if bytes.Contains(window, m) {
				return true, nil
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		if err != nil {
			return false, errors.Wrap(err, "pre-scan read")
		}
		carry = min(overlap, len(window))
		copy(buf, window[len(window)-carry:])
	}
}

// lowerASCII lower-cases ASCII letters in place. Other bytes are left alone
// so the buffer length never changes, whatever the encoding.
func lowerASCII(b []byte) {
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
}
