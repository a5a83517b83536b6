package main

import (
	"math"
	"testing"

	"github.com/ND-CSE-40657/hw2/IO"
	"github.com/ND-CSE-40657/hw2/model2"
	"github.com/ND-CSE-40657/hw2/params"
)

func toyPair() IO.Pair {
	return IO.Pair{
		FWords: []string{"我", "不", "喜", "欢", "沙", "子", model2.EOS},
		EWords: []string{"i", "do", "n't", "like", "sand", model2.EOS},
	}
}

func TestTrainModelOnToyPair(t *testing.T) {
	pair := toyPair()
	cfg := params.TrainingConfig{
		Dims:         16,
		LearningRate: 0.01,
		Epochs:       30,
		DevPreview:   0,
	}

	var stats []EpochStats
	var progressCalls int
	best := TrainModel(cfg,
		[]IO.Pair{pair}, []IO.Pair{pair},
		func(done, total int) { progressCalls++ },
		func(s EpochStats) { stats = append(stats, s) })

	if len(stats) != cfg.Epochs {
		t.Fatalf("got %d epoch stats, want %d", len(stats), cfg.Epochs)
	}
	if progressCalls != cfg.Epochs {
		t.Fatalf("progress called %d times, want %d", progressCalls, cfg.Epochs)
	}

	// held-out perplexity must strictly decrease from epoch 1 to the end
	if last := stats[len(stats)-1].DevPPL; !(last < stats[0].DevPPL) {
		t.Fatalf("dev ppl did not decrease: %.4f -> %.4f", stats[0].DevPPL, last)
	}

	// best snapshot's held-out loss equals the minimum observed dev loss
	minDev := stats[0].DevLoss
	for _, s := range stats {
		if s.DevLoss < minDev {
			minDev = s.DevLoss
		}
	}
	bestLoss := -best.Logprob(pair.FWords, pair.EWords)
	if math.Abs(bestLoss-minDev) > 1e-9 {
		t.Fatalf("best snapshot dev loss %.9g != min observed %.9g", bestLoss, minDev)
	}

	// greedy translation draws only from the target vocabulary and terminates
	out := best.Translate(pair.FWords)
	if len(out) > model2.MaxLen {
		t.Fatalf("translation has %d words", len(out))
	}
	for _, w := range out {
		if !best.EVocab.Contains(w) {
			t.Fatalf("translation emitted %q, not in target vocab", w)
		}
		if w == model2.EOS {
			t.Fatal("translation contains <EOS>")
		}
	}
}

func TestTrainModelBestTracksRunningMinimum(t *testing.T) {
	pair := toyPair()
	cfg := params.TrainingConfig{Dims: 8, LearningRate: 0.005, Epochs: 10, DevPreview: 0}

	var devLosses []float64
	TrainModel(cfg, []IO.Pair{pair}, []IO.Pair{pair}, nil,
		func(s EpochStats) { devLosses = append(devLosses, s.DevLoss) })

	// the running best is non-increasing by construction; spot-check the
	// recorded dev losses are finite so the comparison is meaningful
	for i, l := range devLosses {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			t.Fatalf("epoch %d dev loss = %g", i+1, l)
		}
	}
}
