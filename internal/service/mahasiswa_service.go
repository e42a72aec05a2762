package service

import (
	"context"
	"errors"
	"strings"

	"github.com/stemsi/acad-service/internal/model"
	"github.com/stemsi/acad-service/internal/repository"
)

// MahasiswaService handles student records.
type MahasiswaService struct {
	uow repository.UnitOfWork
}

// NewMahasiswaService creates a new MahasiswaService.
func NewMahasiswaService(uow repository.UnitOfWork) *MahasiswaService {
	return &MahasiswaService{uow: uow}
}

// List returns every student ordered by NIM.
func (s *MahasiswaService) List(ctx context.Context) ([]model.Mahasiswa, error) {
	var list []model.Mahasiswa
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		list, err = repos.Mahasiswa.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Mahasiswa{}
	}
	return list, nil
}

// Create inserts a student. Returns ErrDuplicateMahasiswa if the NIM is taken.
func (s *MahasiswaService) Create(ctx context.Context, m *model.Mahasiswa) error {
	m.NIM = strings.TrimSpace(m.NIM)
	m.Nama = strings.TrimSpace(m.Nama)
	m.Jurusan = strings.TrimSpace(m.Jurusan)

	return s.uow.Do(ctx, func(repos *repository.Repositories) error {
		if err := repos.Mahasiswa.Create(ctx, m); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return ErrDuplicateMahasiswa
			}
			return err
		}
		return nil
	})
}
