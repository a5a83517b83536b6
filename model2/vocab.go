package model2

import "fmt"

// Reserved tokens, present in every vocabulary from construction.
const (
	BOS = "<BOS>"
	EOS = "<EOS>"
	UNK = "<UNK>"
)

// Vocab is a set-like structure that can change words into numbers and back.
// Ids are assigned in insertion order, starting from the reserved tokens,
// and are never reused.
type Vocab struct {
	numToWord []string
	wordToNum map[string]int
}

func NewVocab() *Vocab {
	v := &Vocab{wordToNum: make(map[string]int)}
	for _, w := range []string{BOS, EOS, UNK} {
		v.Add(w)
	}
	return v
}

// vocabFromWords rebuilds a vocabulary whose id order is exactly 'words'.
// Used when loading a saved model; 'words' already contains the reserved
// tokens at their original positions.
func vocabFromWords(words []string) *Vocab {
	v := &Vocab{
		numToWord: append([]string(nil), words...),
		wordToNum: make(map[string]int, len(words)),
	}
	for num, word := range v.numToWord {
		v.wordToNum[word] = num
	}
	return v
}

// Add assigns the next id to word. Adding a word twice is a no-op.
func (v *Vocab) Add(word string) {
	if _, ok := v.wordToNum[word]; ok {
		return
	}
	v.wordToNum[word] = len(v.numToWord)
	v.numToWord = append(v.numToWord, word)
}

// AddAll adds every word of a sentence (set union).
func (v *Vocab) AddAll(words []string) {
	for _, w := range words {
		v.Add(w)
	}
}

// Remove always panics: ids are append-only and never freed.
func (v *Vocab) Remove(word string) {
	panic("model2: Vocab.Remove is not supported")
}

func (v *Vocab) Contains(word string) bool {
	_, ok := v.wordToNum[word]
	return ok
}

func (v *Vocab) Len() int {
	return len(v.numToWord)
}

// Words returns the vocabulary in id order.
func (v *Vocab) Words() []string {
	return append([]string(nil), v.numToWord...)
}

// Numberize converts a word into a number. Unseen words map to the <UNK> id,
// so Numberize never fails.
func (v *Vocab) Numberize(word string) int {
	if num, ok := v.wordToNum[word]; ok {
		return num
	}
	return v.wordToNum[UNK]
}

// Denumberize converts a number back into a word. An id this vocabulary never
// assigned is a programmer error and panics.
func (v *Vocab) Denumberize(num int) string {
	if num < 0 || num >= len(v.numToWord) {
		panic(fmt.Sprintf("model2: Denumberize(%d) out of range (vocab size %d)", num, len(v.numToWord)))
	}
	return v.numToWord[num]
}

func (v *Vocab) Clone() *Vocab {
	return vocabFromWords(v.numToWord)
}
