package model

// BobotNilai maps a letter grade to its numeric weight, e.g. "A" -> 4.0.
type BobotNilai struct {
	Nilai string  `json:"nilai"`
	Bobot float64 `json:"bobot"`
}
