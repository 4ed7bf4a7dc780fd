package shell

// backgroundMarker is the trailing character requesting background
// execution.
const backgroundMarker = '&'

// TrimBackground reports whether line requests background execution and
// returns it with the marker removed. It must run before tokenization so
// the marker never appears as a token or in the child's argument vector.
// A zero-length line is never probed.
func TrimBackground(line string) (string, bool) {
	if len(line) == 0 {
		return line, false
	}
	if line[len(line)-1] != backgroundMarker {
		return line, false
	}
	return line[:len(line)-1], true
}
