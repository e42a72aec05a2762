package service

import (
	"errors"
)

// Domain errors surfaced to handlers.
var (
	ErrEmptyNIM            = errors.New("nim must not be empty")
	ErrMahasiswaNotFound   = errors.New("mahasiswa not found")
	ErrUnknownGrade        = errors.New("grade is not in bobot_nilai")
	ErrReferenceNotFound   = errors.New("referenced record does not exist")
	ErrDuplicateMahasiswa  = errors.New("mahasiswa with this nim already exists")
	ErrDuplicateMataKuliah = errors.New("mata kuliah with this kode_mk already exists")
)

// ReferenceError names the request field whose referenced row is missing.
type ReferenceError struct {
	Field string
	Value string
}

func (e *ReferenceError) Error() string {
	return e.Field + " " + e.Value + " does not exist"
}

func (e *ReferenceError) Unwrap() error {
	return ErrReferenceNotFound
}
