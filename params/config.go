package params

// TrainingConfig collects the knobs for one training run. The defaults below
// match the reference Model 2 setup; try raising Dims to 128 or 256.
type TrainingConfig struct {
	Dims         int     // embedding / position vector width
	LearningRate float64 // Adam step size
	Epochs       int     // full passes over the training pairs

	DevPreview int // how many dev sentences to translate and print each epoch
}

// Reasonable defaults for small experiments
var Config = TrainingConfig{
	Dims:         64,
	LearningRate: 0.0003,
	Epochs:       10,

	DevPreview: 10,
}
