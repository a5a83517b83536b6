package IO

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ND-CSE-40657/hw2/model2"
)

// Pair is one parallel sentence: source words and target words, each already
// terminated by <EOS>. Pairs are not modified after loading.
type Pair struct {
	FWords []string
	EWords []string
}

// ReadParallel reads a parallel corpus in the format:
//
//	我 不 喜 欢 沙 子 \t i do n't like sand
//
// where \t is a tab character and words are space-separated. An <EOS> token
// is appended to both sides of every pair. Any line without exactly one tab
// fails the whole load; there is no per-line recovery.
func ReadParallel(filename string) ([]Pair, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var data []Pair
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		parts := strings.Split(sc.Text(), "\t")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%s:%d: expected one tab separator, got %d", filename, lineNum, len(parts)-1)
		}
		data = append(data, Pair{
			FWords: append(strings.Fields(parts[0]), model2.EOS),
			EWords: append(strings.Fields(parts[1]), model2.EOS),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}
