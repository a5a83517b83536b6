package utils

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRowSoftmaxRowsSumToOne(t *testing.T) {
	m := mat.NewDense(3, 4, []float64{
		0.1, -2, 3, 0,
		100, 101, 99, 100, // large values: stability check
		0, 0, 0, 0,
	})
	s := RowSoftmax(m)
	for i := 0; i < 3; i++ {
		sum := 0.0
		for j := 0; j < 4; j++ {
			v := s.At(i, j)
			if v <= 0 || v >= 1 {
				t.Fatalf("softmax[%d,%d] = %g out of (0,1)", i, j, v)
			}
			sum += v
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Fatalf("row %d sums to %g", i, sum)
		}
	}
}

func TestColVectorSoftmaxMatchesRowSoftmax(t *testing.T) {
	col := mat.NewDense(4, 1, []float64{0.5, -1, 2, 0})
	a := ColVectorSoftmax(col)
	b := RowSoftmax(col.T())
	for i := 0; i < 4; i++ {
		if math.Abs(a.At(i, 0)-b.At(0, i)) > 1e-15 {
			t.Fatalf("mismatch at %d: %g vs %g", i, a.At(i, 0), b.At(0, i))
		}
	}
}

// Finite-difference check of SoftmaxBackward: f(s) = sum_j w_j softmax(s)_j.
func TestSoftmaxBackwardFiniteDiff(t *testing.T) {
	s := mat.NewDense(1, 4, []float64{0.3, -0.7, 1.1, 0.0})
	w := []float64{0.9, -0.2, 0.4, 0.1}

	f := func() float64 {
		a := RowSoftmax(s)
		out := 0.0
		for j := 0; j < 4; j++ {
			out += w[j] * a.At(0, j)
		}
		return out
	}

	a := RowSoftmax(s)
	dA := mat.NewDense(1, 4, append([]float64(nil), w...))
	dS := SoftmaxBackward(dA, a)

	eps := 1e-6
	for j := 0; j < 4; j++ {
		v0 := s.At(0, j)
		s.Set(0, j, v0+eps)
		fp := f()
		s.Set(0, j, v0-eps)
		fm := f()
		s.Set(0, j, v0)
		num := (fp - fm) / (2 * eps)
		if math.Abs(num-dS.At(0, j)) > 1e-8 {
			t.Fatalf("dS[0,%d]: num=%.9g ana=%.9g", j, num, dS.At(0, j))
		}
	}
}

func TestColLog(t *testing.T) {
	v := mat.NewDense(2, 1, []float64{1.0, math.E})
	l := ColLog(v)
	if l.At(0, 0) != 0 || math.Abs(l.At(1, 0)-1) > 1e-15 {
		t.Fatalf("ColLog wrong: %g %g", l.At(0, 0), l.At(1, 0))
	}
}

func TestArgmax(t *testing.T) {
	v := mat.NewDense(4, 1, []float64{-1, 3, 2, 3})
	if got := Argmax(v); got != 1 { // first max wins
		t.Fatalf("Argmax = %d, want 1", got)
	}
}

func TestNormalArray(t *testing.T) {
	a := NormalArray(1000, 0.01)
	if len(a) != 1000 {
		t.Fatalf("len = %d", len(a))
	}
	allZero := true
	for _, v := range a {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatal("NormalArray returned all zeros")
	}
}
