package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/acad-service/internal/metrics"
	"github.com/stemsi/acad-service/internal/model"
	"github.com/stemsi/acad-service/internal/repository"
)

// BobotNilaiCache is the read-through cache in front of the grade-weight table.
type BobotNilaiCache interface {
	Get(ctx context.Context) ([]model.BobotNilai, bool, error)
	Set(ctx context.Context, list []model.BobotNilai) error
}

// BobotNilaiService lists grade weights. Enrollment validation does not go
// through here; it reads bobot_nilai inside its own transaction.
type BobotNilaiService struct {
	uow   repository.UnitOfWork
	cache BobotNilaiCache
	log   zerolog.Logger
}

// NewBobotNilaiService creates a new BobotNilaiService. cache may be nil.
func NewBobotNilaiService(uow repository.UnitOfWork, cache BobotNilaiCache, log zerolog.Logger) *BobotNilaiService {
	return &BobotNilaiService{
		uow:   uow,
		cache: cache,
		log:   log.With().Str("component", "bobot_nilai_service").Logger(),
	}
}

// List returns the grade-weight table ordered by weight descending.
// Cache failures fall back to the database.
func (s *BobotNilaiService) List(ctx context.Context) ([]model.BobotNilai, error) {
	if s.cache != nil {
		list, ok, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			metrics.IncGradeCache("error")
			s.log.Warn().Err(err).Msg("Grade cache read failed, falling back to database")
		case ok:
			metrics.IncGradeCache("hit")
			return list, nil
		default:
			metrics.IncGradeCache("miss")
		}
	}

	var list []model.BobotNilai
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		list, err = repos.BobotNilai.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.BobotNilai{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, list); err != nil {
			s.log.Warn().Err(err).Msg("Grade cache write failed")
		}
	}
	return list, nil
}
