package model2

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

// modelData is the gob container: raw weight data plus the vocabularies, and
// the optimizer state so that training can resume where it left off.
type modelData struct {
	Dims   int
	MaxLen int

	FWords []string
	EWords []string

	EmbData  []float64
	FposData []float64
	EposData []float64
	OutData  []float64

	MEmb, VEmb   []float64
	MFpos, VFpos []float64
	MEpos, VEpos []float64
	MOut, VOut   []float64
	AdamT        int
}

func denseData(m *mat.Dense) []float64 {
	raw := mat.DenseCopyOf(m).RawMatrix()
	return append([]float64(nil), raw.Data...)
}

// SaveModel persists a Model (parameters, vocabularies, optimizer state) to
// disk using gob. filename is created or overwritten.
func SaveModel(m *Model, filename string) error {
	data := modelData{
		Dims:   m.Dec.Dims,
		MaxLen: m.Dec.MaxLen,
		FWords: m.FVocab.Words(),
		EWords: m.EVocab.Words(),

		EmbData:  denseData(m.Enc.Emb),
		FposData: denseData(m.Dec.Fpos),
		EposData: denseData(m.Dec.Epos),
		OutData:  denseData(m.Dec.Out),

		MEmb: denseData(m.Enc.MEmb), VEmb: denseData(m.Enc.VEmb),
		MFpos: denseData(m.Dec.MFpos), VFpos: denseData(m.Dec.VFpos),
		MEpos: denseData(m.Dec.MEpos), VEpos: denseData(m.Dec.VEpos),
		MOut: denseData(m.Dec.MOut), VOut: denseData(m.Dec.VOut),
		AdamT: m.adamT,
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&data); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	return os.WriteFile(filename, buf.Bytes(), 0o644)
}

// LoadModel reads a Model previously written by SaveModel.
func LoadModel(filename string) (*Model, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var data modelData
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}

	fvocab := vocabFromWords(data.FWords)
	evocab := vocabFromWords(data.EWords)
	d := data.Dims

	m := &Model{
		FVocab: fvocab,
		EVocab: evocab,
		Enc: &Encoder{
			Dims: d,
			Emb:  mat.NewDense(fvocab.Len(), d, data.EmbData),
			MEmb: mat.NewDense(fvocab.Len(), d, data.MEmb),
			VEmb: mat.NewDense(fvocab.Len(), d, data.VEmb),
		},
		Dec: &Decoder{
			MaxLen: data.MaxLen,
			Dims:   d,
			Fpos:   mat.NewDense(data.MaxLen, d, data.FposData),
			Epos:   mat.NewDense(data.MaxLen, d, data.EposData),
			Out:    mat.NewDense(d, evocab.Len(), data.OutData),
			MFpos:  mat.NewDense(data.MaxLen, d, data.MFpos),
			VFpos:  mat.NewDense(data.MaxLen, d, data.VFpos),
			MEpos:  mat.NewDense(data.MaxLen, d, data.MEpos),
			VEpos:  mat.NewDense(data.MaxLen, d, data.VEpos),
			MOut:   mat.NewDense(d, evocab.Len(), data.MOut),
			VOut:   mat.NewDense(d, evocab.Len(), data.VOut),
		},
		adamT: data.AdamT,
	}
	return m, nil
}
