package header

import "bytes"

// Parse splits one raw header line into its name and value. The engine
// delivers lines verbatim, including the trailing CRLF and non-header lines
// such as the status line and the blank separator; those yield ok == false.
func Parse(line []byte) (name, value string, ok bool) {
	i := bytes.IndexByte(line, ':')
	if i <= 0 {
		return "", "", false
	}

	n := bytes.TrimSpace(line[:i])
	if len(n) == 0 {
		return "", "", false
	}

	return string(n), string(bytes.TrimSpace(line[i+1:])), true
}
