package netx

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// newline framing: one protocol line per "\n"-terminated frame

// MaxLineLen bounds a single frame.
const MaxLineLen = 64 * 1024

// EncodeLine frames line for the wire.
func EncodeLine(line string) ([]byte, error) {
	if strings.ContainsAny(line, "\r\n") {
		return nil, errors.Errorf("line contains a line break: %q", line)
	}
	if len(line) >= MaxLineLen {
		return nil, errors.Wrapf(ErrLineTooLong, "%d bytes", len(line))
	}
	b := make([]byte, 0, len(line)+1)
	b = append(b, line...)
	return append(b, '\n'), nil
}

// DecodeLine reads the next frame without its terminator. A final frame
// cut off by EOF is dropped and io.ErrUnexpectedEOF returned.
func DecodeLine(r *bufio.Reader) (string, error) {
	var buf []byte
	for {
		chunk, err := r.ReadSlice('\n')
		buf = append(buf, chunk...)
		if len(buf) > MaxLineLen {
			return "", errors.Wrapf(ErrLineTooLong, "over %d bytes", MaxLineLen)
		}
		switch {
		case err == nil:
			return strings.TrimRight(string(buf), "\r\n"), nil
		case err == bufio.ErrBufferFull:
			continue
		case err == io.EOF && len(buf) > 0:
			return "", io.ErrUnexpectedEOF
		default:
			return "", err
		}
	}
}
