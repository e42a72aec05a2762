package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/acad-service/internal/metrics"
	"github.com/stemsi/acad-service/internal/model"
	"github.com/stemsi/acad-service/internal/repository"
)

// KRSService records enrollments.
type KRSService struct {
	uow repository.UnitOfWork
	log zerolog.Logger
}

func NewKRSService(uow repository.UnitOfWork, log zerolog.Logger) *KRSService {
	return &KRSService{
		uow: uow,
		log: log.With().Str("component", "krs_service").Logger(),
	}
}

// Record validates the grade against bobot_nilai and inserts the enrollment,
// both inside one transaction. Grades are matched exactly as stored after
// trimming, so "b" is not "B". An unknown grade returns ErrUnknownGrade without
// writing. A missing student or course returns a *ReferenceError.
func (s *KRSService) Record(ctx context.Context, k *model.KRS) error {
	k.NIM = strings.TrimSpace(k.NIM)
	k.KodeMK = strings.TrimSpace(k.KodeMK)
	k.Nilai = strings.TrimSpace(k.Nilai)

	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		if _, err := repos.BobotNilai.Get(ctx, k.Nilai); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: %q", ErrUnknownGrade, k.Nilai)
			}
			return fmt.Errorf("lookup bobot_nilai: %w", err)
		}

		if err := repos.KRS.Create(ctx, k); err != nil {
			return s.classifyCreateError(k, err)
		}
		return nil
	})

	switch {
	case err == nil:
		metrics.IncKRSWrite(metrics.ResultSuccess)
		s.log.Info().
			Str("nim", k.NIM).
			Str("kode_mk", k.KodeMK).
			Int("semester", k.Semester).
			Str("nilai", k.Nilai).
			Msg("KRS recorded")
	case errors.Is(err, ErrUnknownGrade), errors.Is(err, ErrReferenceNotFound):
		metrics.IncKRSWrite(metrics.ResultInvalid)
	default:
		metrics.IncKRSWrite(metrics.ResultError)
		s.log.Error().Err(err).Str("nim", k.NIM).Str("kode_mk", k.KodeMK).Msg("KRS insert failed")
	}
	return err
}

func (s *KRSService) classifyCreateError(k *model.KRS, err error) error {
	var fkErr *repository.ForeignKeyError
	if !errors.As(err, &fkErr) {
		return fmt.Errorf("insert krs: %w", err)
	}

	switch fkErr.Constraint {
	case repository.ConstraintKRSMahasiswa:
		return &ReferenceError{Field: "nim", Value: k.NIM}
	case repository.ConstraintKRSMataKuliah:
		return &ReferenceError{Field: "kode_mk", Value: k.KodeMK}
	case repository.ConstraintKRSNilai:
		return fmt.Errorf("%w: %q", ErrUnknownGrade, k.Nilai)
	}
	return fmt.Errorf("insert krs: %w", err)
}
