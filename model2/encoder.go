package model2

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ND-CSE-40657/hw2/utils"
)

// Encoder maps source word ids to vector encodings by embedding lookup.
// There is no positional or contextual mixing; encoding j depends only on
// word id j and the table.
type Encoder struct {
	Dims int
	Emb  *mat.Dense // (vocab x d); row i is the embedding of word id i

	// Adam state
	MEmb, VEmb *mat.Dense
}

func NewEncoder(vocabSize, dims int) *Encoder {
	return &Encoder{
		Dims: dims,
		Emb:  mat.NewDense(vocabSize, dims, utils.NormalArray(vocabSize*dims, initStd)),
		MEmb: mat.NewDense(vocabSize, dims, nil),
		VEmb: mat.NewDense(vocabSize, dims, nil),
	}
}

// Sequence gathers the embedding rows for fnums into a fresh (n x d) matrix.
func (enc *Encoder) Sequence(fnums []int) *mat.Dense {
	out := mat.NewDense(len(fnums), enc.Dims, nil)
	for j, f := range fnums {
		out.SetRow(j, enc.Emb.RawRowView(f))
	}
	return out
}

func (enc *Encoder) clone() *Encoder {
	return &Encoder{
		Dims: enc.Dims,
		Emb:  mat.DenseCopyOf(enc.Emb),
		MEmb: mat.DenseCopyOf(enc.MEmb),
		VEmb: mat.DenseCopyOf(enc.VEmb),
	}
}
