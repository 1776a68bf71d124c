// Package configio reads the small file-list configuration the
// segyls batch mode accepts: one SEG-Y file path per line. Grounded in
// the teacher's lib/catio/reader.go text-reading helpers, scaled down to
// the one format segyls needs (a batch file has none of catio's column
// or block structure).
package configio

import (
	"bufio"
	"io"
	"strings"

	"github.com/mansfield-segy/segy/internal/segyerr"
)

// ReadFileList reads newline-delimited file paths from r, skipping blank
// lines and lines starting with '#'.
func ReadFileList(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, segyerr.New(segyerr.FReadError, err, "reading batch file list")
	}
	return paths, nil
}
