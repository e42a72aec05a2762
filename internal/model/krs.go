package model

// KRS is an enrollment: one student taking one course in one semester, with the grade achieved.
type KRS struct {
	NIM      string `json:"nim"`
	KodeMK   string `json:"kode_mk"`
	Semester int    `json:"semester"`
	Nilai    string `json:"nilai"`
}

// CreateKRSRequest is the payload for recording an enrollment.
type CreateKRSRequest struct {
	NIM      string `json:"nim" binding:"required,max=20,identifier"`
	KodeMK   string `json:"kode_mk" binding:"required,max=20,identifier"`
	Semester int    `json:"semester" binding:"required,min=1"`
	Nilai    string `json:"nilai" binding:"required,max=5"`
}

// KRSDetail is a KRS row joined with its course and grade weight.
type KRSDetail struct {
	KodeMK   string  `json:"kode_mk"`
	NamaMK   string  `json:"nama_mk"`
	SKS      int     `json:"sks"`
	Nilai    string  `json:"nilai"`
	Bobot    float64 `json:"bobot"`
	Semester int     `json:"semester"`
}
