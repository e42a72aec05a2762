package model

// Mahasiswa represents a student record.
type Mahasiswa struct {
	NIM      string `json:"nim"`
	Nama     string `json:"nama"`
	Jurusan  string `json:"jurusan"`
	Angkatan int    `json:"angkatan"`
}

// CreateMahasiswaRequest is the payload for creating a student.
type CreateMahasiswaRequest struct {
	NIM      string `json:"nim" binding:"required,max=20,identifier"`
	Nama     string `json:"nama" binding:"required,max=100"`
	Jurusan  string `json:"jurusan" binding:"required,max=100"`
	Angkatan int    `json:"angkatan" binding:"required,min=1900,max=2999"`
}
