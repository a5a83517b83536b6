package model2

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ND-CSE-40657/hw2/utils"
)

// MaxLen caps decoder positions (and therefore output length) at 100.
const MaxLen = 100

// init std for all learned tables
const initStd = 0.01

// Decoder scores target words position by position. The original Model 2
// alignment table a(j|i) is factored into two position-embedding tables:
// Fpos[j] is a vector for source position j, Epos[i] for target position i.
// Out is the target-scoring transform U applied to each source encoding.
type Decoder struct {
	MaxLen int
	Dims   int
	Fpos   *mat.Dense // (maxlen x d)
	Epos   *mat.Dense // (maxlen x d)
	Out    *mat.Dense // (d x vocab)

	// Adam state
	MFpos, VFpos *mat.Dense
	MEpos, VEpos *mat.Dense
	MOut, VOut   *mat.Dense
}

func NewDecoder(dims, vocabSize int) *Decoder {
	return &Decoder{
		MaxLen: MaxLen,
		Dims:   dims,
		Fpos:   mat.NewDense(MaxLen, dims, utils.NormalArray(MaxLen*dims, initStd)),
		Epos:   mat.NewDense(MaxLen, dims, utils.NormalArray(MaxLen*dims, initStd)),
		Out:    mat.NewDense(dims, vocabSize, utils.NormalArray(dims*vocabSize, initStd)),
		MFpos:  mat.NewDense(MaxLen, dims, nil),
		VFpos:  mat.NewDense(MaxLen, dims, nil),
		MEpos:  mat.NewDense(MaxLen, dims, nil),
		VEpos:  mat.NewDense(MaxLen, dims, nil),
		MOut:   mat.NewDense(dims, vocabSize, nil),
		VOut:   mat.NewDense(dims, vocabSize, nil),
	}
}

// Start returns the initial decoder state. For Model 2 the state is just the
// target position. A recurrent decoder would return its RNN start state here.
func (dec *Decoder) Start() int {
	return 0
}

// Step runs one step of the decoder: it computes a log-probability
// distribution over the next target word given the source encodings and the
// current position, and advances the position.
//
// enum, the previous target word, is accepted but does not enter the
// computation: Model 2 attention is over positions only. Content conditioning
// (e.g. an RNN over enum) would hook in here.
//
// The caller must keep state below MaxLen; past that the position lookup
// panics.
func (dec *Decoder) Step(fencs *mat.Dense, state int, enum int) (*mat.Dense, int) {
	// t(e | f_j) for every source position j
	probs := dec.translationProbs(fencs) // (n x vocab)

	// attention over source positions, from positions alone
	weights := dec.attentionWeights(fencs, state) // (n x 1)

	// log of the attention-weighted mixture of the per-position distributions
	_, vocab := probs.Dims()
	mix := mat.NewDense(vocab, 1, nil)
	mix.Mul(probs.T(), weights)
	return utils.ColLog(mix), state + 1
}

// translationProbs applies the scoring transform to every encoding row and
// normalizes each row into a distribution over the target vocabulary.
func (dec *Decoder) translationProbs(fencs *mat.Dense) *mat.Dense {
	return utils.RowSoftmax(utils.Dot(fencs, dec.Out))
}

// attentionWeights computes softmax(Fpos[:n] . Epos[state] / sqrt(d)) as a
// (n x 1) column: how compatible each source position is with the current
// target position.
func (dec *Decoder) attentionWeights(fencs *mat.Dense, state int) *mat.Dense {
	n, _ := fencs.Dims()
	keys := dec.Fpos.Slice(0, n, 0, dec.Dims)  // (n x d)
	query := dec.Epos.RowView(state)           // (d x 1), panics if state >= MaxLen
	scores := mat.NewDense(n, 1, nil)
	scores.Mul(keys, query)
	scores.Scale(1.0/math.Sqrt(float64(dec.Dims)), scores)
	return utils.ColVectorSoftmax(scores)
}

func (dec *Decoder) clone() *Decoder {
	return &Decoder{
		MaxLen: dec.MaxLen,
		Dims:   dec.Dims,
		Fpos:   mat.DenseCopyOf(dec.Fpos),
		Epos:   mat.DenseCopyOf(dec.Epos),
		Out:    mat.DenseCopyOf(dec.Out),
		MFpos:  mat.DenseCopyOf(dec.MFpos),
		VFpos:  mat.DenseCopyOf(dec.VFpos),
		MEpos:  mat.DenseCopyOf(dec.MEpos),
		VEpos:  mat.DenseCopyOf(dec.VEpos),
		MOut:   mat.DenseCopyOf(dec.MOut),
		VOut:   mat.DenseCopyOf(dec.VOut),
	}
}
