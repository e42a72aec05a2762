package model

// MataKuliah represents a course and its credit weight (SKS).
type MataKuliah struct {
	KodeMK string `json:"kode_mk"`
	NamaMK string `json:"nama_mk"`
	SKS    int    `json:"sks"`
}

// CreateMataKuliahRequest is the payload for creating a course.
type CreateMataKuliahRequest struct {
	KodeMK string `json:"kode_mk" binding:"required,max=20,identifier"`
	NamaMK string `json:"nama_mk" binding:"required,max=100"`
	SKS    int    `json:"sks" binding:"required,min=1"`
}
