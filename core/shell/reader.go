package shell

import "io"

// inputBufferSize is the initial capacity of the line buffer. The buffer
// doubles whenever it fills so no line length ever truncates.
const inputBufferSize = 1024

// LineReader accumulates bytes from the input stream one at a time until a
// newline or the end of the stream. Buffering happens here, not in the
// terminal line discipline.
type LineReader struct {
	r io.Reader
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: r}
}

// ReadLine returns the next line with the terminator excluded. A final
// unterminated line is returned with a nil error; once the stream is
// exhausted the error is io.EOF, distinguishing a closed stream from an
// empty line.
func (lr *LineReader) ReadLine() (string, error) {
	buf := make([]byte, 0, inputBufferSize)
	var one [1]byte
	for {
		n, err := lr.r.Read(one[:])
		if n > 0 {
			if one[0] == '\n' {
				return string(buf), nil
			}
			if len(buf) == cap(buf) {
				grown := make([]byte, len(buf), 2*cap(buf))
				copy(grown, buf)
				buf = grown
			}
			buf = append(buf, one[0])
		}
		if err != nil {
			if err == io.EOF {
				if len(buf) == 0 {
					return "", io.EOF
				}
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}
