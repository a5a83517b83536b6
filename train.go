package main

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/ND-CSE-40657/hw2/IO"
	"github.com/ND-CSE-40657/hw2/model2"
	"github.com/ND-CSE-40657/hw2/params"
)

// EpochStats is one row of the training log.
type EpochStats struct {
	Epoch     int
	TrainLoss float64
	TrainPPL  float64
	DevLoss   float64
	DevPPL    float64
	Took      time.Duration
}

// Progress is called after each training pair; nil disables reporting.
type Progress func(done, total int)

// TrainModel builds the vocabularies from traindata, trains a fresh Model 2
// on it pair by pair (one update in flight at a time, no batching), and
// returns the snapshot with the best held-out loss.
//
// Each epoch: shuffle, update on every training pair, then score the dev set
// without updates, printing greedy translations for the first few dev
// sentences. The model is deep-copied whenever dev loss strictly improves.
func TrainModel(cfg params.TrainingConfig, traindata, devdata []IO.Pair,
	progress Progress, onEpoch func(EpochStats)) *model2.Model {

	// Vocabularies are built once, before training, and frozen afterwards.
	fvocab := model2.NewVocab()
	evocab := model2.NewVocab()
	for _, p := range traindata {
		fvocab.AddAll(p.FWords)
		evocab.AddAll(p.EWords)
	}

	m := model2.NewModel(fvocab, cfg.Dims, evocab)

	var best *model2.Model
	bestDevLoss := 0.0

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		epochTime := time.Now()
		rand.Shuffle(len(traindata), func(i, j int) {
			traindata[i], traindata[j] = traindata[j], traindata[i]
		})

		trainLoss := 0.0
		trainEwords := 0
		for k, p := range traindata {
			loss, g := m.LogprobGrads(p.FWords, p.EWords)
			m.Update(g, cfg.LearningRate)
			trainLoss += loss
			trainEwords += len(p.EWords)
			if progress != nil {
				progress(k+1, len(traindata))
			}
		}

		devLoss := 0.0
		devEwords := 0
		for lineNum, p := range devdata {
			devLoss -= m.Logprob(p.FWords, p.EWords)
			devEwords += len(p.EWords)
			if lineNum < cfg.DevPreview {
				fmt.Println(strings.Join(m.Translate(p.FWords), " "))
			}
		}

		if best == nil || devLoss < bestDevLoss {
			best = m.Clone()
			bestDevLoss = devLoss
		}

		stats := EpochStats{
			Epoch:     epoch + 1,
			TrainLoss: trainLoss,
			DevLoss:   devLoss,
			Took:      time.Since(epochTime),
		}
		if trainEwords > 0 {
			stats.TrainPPL = math.Exp(trainLoss / float64(trainEwords))
		}
		if devEwords > 0 {
			stats.DevPPL = math.Exp(devLoss / float64(devEwords))
		}
		fmt.Printf("[%d] train_loss=%.4f train_ppl=%.4f dev_ppl=%.4f time=%v\n",
			stats.Epoch, stats.TrainLoss, stats.TrainPPL, stats.DevPPL, stats.Took)
		if onEpoch != nil {
			onEpoch(stats)
		}
	}

	if best == nil {
		return m
	}
	return best
}
