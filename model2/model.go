package model2

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ND-CSE-40657/hw2/utils"
)

// Model is IBM Model 2: a bag-of-embeddings encoder plus a position-attention
// decoder. It owns its vocabularies so that they save and load with the
// parameters.
type Model struct {
	FVocab *Vocab
	EVocab *Vocab
	Enc    *Encoder
	Dec    *Decoder

	adamT int // optimizer step count, shared by all tables
}

func NewModel(fvocab *Vocab, dims int, evocab *Vocab) *Model {
	return &Model{
		FVocab: fvocab,
		EVocab: evocab,
		Enc:    NewEncoder(fvocab.Len(), dims),
		Dec:    NewDecoder(dims, evocab.Len()),
	}
}

func numberize(v *Vocab, words []string) []int {
	nums := make([]int, len(words))
	for i, w := range words {
		nums[i] = v.Numberize(w)
	}
	return nums
}

// Logprob returns the log-probability of ewords given fwords, teacher-forced:
// each step is fed the true previous target word, and the log-probability the
// model assigns to the actual next word is accumulated.
func (m *Model) Logprob(fwords, ewords []string) float64 {
	if len(ewords) > m.Dec.MaxLen {
		panic(fmt.Sprintf("model2: target length %d exceeds decoder maxlen %d", len(ewords), m.Dec.MaxLen))
	}
	fencs := m.Enc.Sequence(numberize(m.FVocab, fwords))
	state := m.Dec.Start()
	enum := m.EVocab.Numberize(BOS)
	logprob := 0.0
	var o *mat.Dense
	for _, w := range ewords {
		o, state = m.Dec.Step(fencs, state, enum)
		enum = m.EVocab.Numberize(w)
		logprob += o.At(enum, 0)
	}
	return logprob
}

// Translate translates a sentence using greedy search: at each step the
// single most probable target word is emitted and fed back as the previous
// word. Decoding stops at <EOS> or after MaxLen steps, whichever comes first;
// <EOS> itself is never part of the output.
func (m *Model) Translate(fwords []string) []string {
	fencs := m.Enc.Sequence(numberize(m.FVocab, fwords))
	state := m.Dec.Start()
	enum := m.EVocab.Numberize(BOS)
	eos := m.EVocab.Numberize(EOS)
	var ewords []string
	for i := 0; i < m.Dec.MaxLen; i++ {
		var o *mat.Dense
		o, state = m.Dec.Step(fencs, state, enum)
		enum = utils.Argmax(o)
		if enum == eos {
			break
		}
		ewords = append(ewords, m.EVocab.Denumberize(enum))
	}
	return ewords
}

// Clone returns an independent deep copy of the model: parameters, optimizer
// state and vocabularies share nothing with the original. Used for
// best-checkpoint snapshots.
func (m *Model) Clone() *Model {
	return &Model{
		FVocab: m.FVocab.Clone(),
		EVocab: m.EVocab.Clone(),
		Enc:    m.Enc.clone(),
		Dec:    m.Dec.clone(),
		adamT:  m.adamT,
	}
}
