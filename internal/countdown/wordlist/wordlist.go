// Package wordlist loads the dictionary file used by the letters
// command: one word per line, UTF-8.
package wordlist

import (
	"bufio"
	"os"

	"github.com/conwaylabs/countdown/internal/countdown"
)

// Load reads every line of path as a word. I/O failures are reported
// as a countdown.Error so the caller can print them as a diagnostic
// rather than a stack trace.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, countdown.Errorf("countdown: can't open word list: %s", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, countdown.Errorf("countdown: error reading word list %q: %s", path, err)
	}
	return words, nil
}
