package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/ND-CSE-40657/hw2/IO"
	"github.com/ND-CSE-40657/hw2/model2"
	"github.com/ND-CSE-40657/hw2/params"
)

const modelPath = "models/model2.gob"

func main() {
	args := os.Args[1:]

	// `hw2 translate [model.gob]` starts a REPL over a previously saved model.
	if len(args) >= 1 && args[0] == "translate" {
		path := modelPath
		if len(args) >= 2 {
			path = args[1]
		}
		m, err := model2.LoadModel(path)
		if err != nil {
			fmt.Println("Error loading model:", err)
			os.Exit(1)
		}
		TranslateCLI(m)
		return
	}

	trainPath, devPath, testPath := "data/train.zh-en", "data/dev.zh-en", "data/test.zh-en"
	if len(args) >= 3 {
		trainPath, devPath, testPath = args[0], args[1], args[2]
	}

	traindata, err := IO.ReadParallel(trainPath)
	if err != nil {
		fmt.Println("Error reading training data:", err)
		os.Exit(1)
	}
	devdata, err := IO.ReadParallel(devPath)
	if err != nil {
		fmt.Println("Error reading dev data:", err)
		os.Exit(1)
	}
	testdata, err := IO.ReadParallel(testPath)
	if err != nil {
		fmt.Println("Error reading test data:", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d train / %d dev / %d test pairs.\n",
		len(traindata), len(devdata), len(testdata))

	// Create or truncate the log file
	logFile, err := os.Create("training_log.csv")
	if err != nil {
		fmt.Println("Error creating log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logWriter := csv.NewWriter(logFile)
	logWriter.Write([]string{"epoch", "train_loss", "train_ppl", "dev_ppl"})
	defer logWriter.Flush()

	best := TrainModel(params.Config, traindata, devdata, nil, func(s EpochStats) {
		logWriter.Write([]string{
			strconv.Itoa(s.Epoch),
			strconv.FormatFloat(s.TrainLoss, 'g', -1, 64),
			strconv.FormatFloat(s.TrainPPL, 'g', -1, 64),
			strconv.FormatFloat(s.DevPPL, 'g', -1, 64),
		})
		logWriter.Flush()
	})

	if err := os.MkdirAll("models", 0o755); err != nil {
		fmt.Println("Error creating models dir:", err)
	} else if err := model2.SaveModel(best, modelPath); err != nil {
		fmt.Println("Error saving model:", err)
	}

	// Translate the test set with the best snapshot.
	translations := make([][]string, len(testdata))
	for i, p := range testdata {
		translations[i] = best.Translate(p.FWords)
	}
	if err := IO.WriteTranslations("test.out", translations); err != nil {
		fmt.Println("Error writing test.out:", err)
		os.Exit(1)
	}
	fmt.Println("Wrote test.out")
}
