package model

// Transcript is the computed academic summary for one student.
type Transcript struct {
	NIM        string            `json:"nim"`
	Nama       string            `json:"nama"`
	Jurusan    string            `json:"jurusan"`
	Angkatan   int               `json:"angkatan"`
	TotalSKS   int               `json:"total_sks"`
	TotalBobot float64           `json:"total_bobot"`
	IPK        float64           `json:"ipk"`
	Semesters  []SemesterSummary `json:"semesters"`
	Items      []KRSDetail       `json:"krs"`
}

// SemesterSummary holds the IPS for a single semester.
type SemesterSummary struct {
	Semester   int     `json:"semester"`
	TotalSKS   int     `json:"total_sks"`
	TotalBobot float64 `json:"total_bobot"`
	IPS        float64 `json:"ips"`
}
