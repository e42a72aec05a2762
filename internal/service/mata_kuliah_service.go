package service

import (
	"context"
	"errors"
	"strings"

	"github.com/stemsi/acad-service/internal/model"
	"github.com/stemsi/acad-service/internal/repository"
)

// MataKuliahService handles the course catalog.
type MataKuliahService struct {
	uow repository.UnitOfWork
}

func NewMataKuliahService(uow repository.UnitOfWork) *MataKuliahService {
	return &MataKuliahService{uow: uow}
}

// List returns every course ordered by kode_mk.
func (s *MataKuliahService) List(ctx context.Context) ([]model.MataKuliah, error) {
	var list []model.MataKuliah
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		list, err = repos.MataKuliah.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.MataKuliah{}
	}
	return list, nil
}

func (s *MataKuliahService) Create(ctx context.Context, mk *model.MataKuliah) error {
	mk.KodeMK = strings.TrimSpace(mk.KodeMK)
	mk.NamaMK = strings.TrimSpace(mk.NamaMK)

	return s.uow.Do(ctx, func(repos *repository.Repositories) error {
		if err := repos.MataKuliah.Create(ctx, mk); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return ErrDuplicateMataKuliah
			}
			return err
		}
		return nil
	})
}
