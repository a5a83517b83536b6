package IO

import (
	"bufio"
	"os"
	"strings"
)

// WriteTranslations writes one translated sentence per line, space-separated,
// in input order. filename is created or overwritten.
func WriteTranslations(filename string, translations [][]string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, words := range translations {
		if _, err := w.WriteString(strings.Join(words, " ") + "\n"); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
