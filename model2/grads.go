package model2

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ND-CSE-40657/hw2/optimizations"
	"github.com/ND-CSE-40657/hw2/utils"
)

// Adam hyperparameters (the usual defaults).
const (
	adamBeta1 = 0.9
	adamBeta2 = 0.999
	adamEps   = 1e-8
)

// Grads holds, for one sentence pair, the gradients of the training loss
// (negative log-probability) with respect to every parameter table.
type Grads struct {
	Emb  *mat.Dense // (|fvocab| x d)
	Fpos *mat.Dense // (maxlen x d)
	Epos *mat.Dense // (maxlen x d)
	Out  *mat.Dense // (d x |evocab|)
}

// LogprobGrads runs the same teacher-forced forward pass as Logprob, keeping
// the intermediates, then backpropagates by hand through the mixture, the two
// softmaxes and the embedding lookup. It returns the loss -logprob(ewords |
// fwords) and its gradients.
//
// The per-position distributions (rowsoftmax of fencs.Out) are identical at
// every step, so they are computed once and their gradient is accumulated
// across steps before the single softmax backward pass.
func (m *Model) LogprobGrads(fwords, ewords []string) (float64, *Grads) {
	if len(ewords) > m.Dec.MaxLen {
		panic(fmt.Sprintf("model2: target length %d exceeds decoder maxlen %d", len(ewords), m.Dec.MaxLen))
	}
	fnums := numberize(m.FVocab, fwords)
	enums := numberize(m.EVocab, ewords)

	d := m.Dec.Dims
	n := len(fnums)
	fvocabLen, _ := m.Enc.Emb.Dims()
	_, evocabLen := m.Dec.Out.Dims()

	fencs := m.Enc.Sequence(fnums)                      // (n x d)
	probs := m.Dec.translationProbs(fencs)              // (n x evocab)
	keys := utils.ToDense(m.Dec.Fpos.Slice(0, n, 0, d)) // (n x d)
	rescale := 1.0 / math.Sqrt(float64(d))

	g := &Grads{
		Emb:  mat.NewDense(fvocabLen, d, nil),
		Fpos: mat.NewDense(m.Dec.MaxLen, d, nil),
		Epos: mat.NewDense(m.Dec.MaxLen, d, nil),
		Out:  mat.NewDense(d, evocabLen, nil),
	}
	dProbs := mat.NewDense(n, evocabLen, nil)

	loss := 0.0
	state := m.Dec.Start()
	for _, y := range enums {
		i := state
		weights := m.Dec.attentionWeights(fencs, i) // (n x 1)
		state++

		// o[y] = log(sum_j weights_j * probs[j,y])
		mixy := 0.0
		for j := 0; j < n; j++ {
			mixy += weights.At(j, 0) * probs.At(j, y)
		}
		loss -= math.Log(mixy)
		gy := -1.0 / mixy // dloss/dmix[y]

		// attention weights: dloss/dweights_j = gy * probs[j,y],
		// back through the position softmax
		dw := mat.NewDense(1, n, nil)
		for j := 0; j < n; j++ {
			dw.Set(0, j, gy*probs.At(j, y))
		}
		ds := utils.SoftmaxBackward(dw, utils.ToDense(weights.T())) // (1 x n)

		// scores = keys . Epos[i] / sqrt(d):
		// query grad goes to Epos row i, key grads to Fpos rows 0..n-1
		q := m.Dec.Epos.RawRowView(i)
		for j := 0; j < n; j++ {
			dsj := ds.At(0, j) * rescale
			for r := 0; r < d; r++ {
				g.Epos.Set(i, r, g.Epos.At(i, r)+dsj*keys.At(j, r))
				g.Fpos.Set(j, r, g.Fpos.At(j, r)+dsj*q[r])
			}
		}

		// mixture values: dloss/dprobs[j,y] += gy * weights_j
		for j := 0; j < n; j++ {
			dProbs.Set(j, y, dProbs.At(j, y)+gy*weights.At(j, 0))
		}
	}

	// probs = rowsoftmax(fencs . Out)
	dScores := utils.SoftmaxBackward(dProbs, probs) // (n x evocabLen)
	g.Out.Mul(fencs.T(), dScores)

	// encodings are gathered embedding rows: scatter-add back into the table
	dEncs := mat.NewDense(n, d, nil)
	dEncs.Mul(dScores, m.Dec.Out.T())
	for j, f := range fnums {
		for r := 0; r < d; r++ {
			g.Emb.Set(f, r, g.Emb.At(f, r)+dEncs.At(j, r))
		}
	}

	return loss, g
}

// Update applies one in-place Adam step to every parameter table.
func (m *Model) Update(g *Grads, lr float64) {
	m.adamT++
	optimizations.AdamUpdateInPlace(m.Enc.Emb, g.Emb, m.Enc.MEmb, m.Enc.VEmb,
		m.adamT, lr, adamBeta1, adamBeta2, adamEps)
	optimizations.AdamUpdateInPlace(m.Dec.Fpos, g.Fpos, m.Dec.MFpos, m.Dec.VFpos,
		m.adamT, lr, adamBeta1, adamBeta2, adamEps)
	optimizations.AdamUpdateInPlace(m.Dec.Epos, g.Epos, m.Dec.MEpos, m.Dec.VEpos,
		m.adamT, lr, adamBeta1, adamBeta2, adamEps)
	optimizations.AdamUpdateInPlace(m.Dec.Out, g.Out, m.Dec.MOut, m.Dec.VOut,
		m.adamT, lr, adamBeta1, adamBeta2, adamEps)
}
