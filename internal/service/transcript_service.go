package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/acad-service/internal/metrics"
	"github.com/stemsi/acad-service/internal/model"
	"github.com/stemsi/acad-service/internal/repository"
)

// TranscriptService computes IPS/IPK for a student.
type TranscriptService struct {
	uow repository.UnitOfWork
	log zerolog.Logger
}

func NewTranscriptService(uow repository.UnitOfWork, log zerolog.Logger) *TranscriptService {
	return &TranscriptService{
		uow: uow,
		log: log.With().Str("component", "transcript_service").Logger(),
	}
}

// Build loads the student and their enrollments and aggregates them.
// Returns ErrMahasiswaNotFound when the NIM is unknown; a student with no KRS
// rows yields a zero-credit transcript.
func (s *TranscriptService) Build(ctx context.Context, nim string) (*model.Transcript, error) {
	nim = strings.TrimSpace(nim)
	if nim == "" {
		return nil, ErrEmptyNIM
	}

	start := time.Now()
	var transcript model.Transcript

	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		m, err := repos.Mahasiswa.GetByNIM(ctx, nim)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrMahasiswaNotFound
			}
			return fmt.Errorf("get mahasiswa: %w", err)
		}

		items, err := repos.KRS.ListDetailByNIM(ctx, nim)
		if err != nil {
			return fmt.Errorf("list krs: %w", err)
		}

		transcript = BuildTranscript(*m, items)
		return nil
	})

	switch {
	case err == nil:
		metrics.ObserveTranscript(metrics.ResultSuccess, time.Since(start))
	case errors.Is(err, ErrMahasiswaNotFound):
		metrics.ObserveTranscript(metrics.ResultNotFound, time.Since(start))
		return nil, err
	default:
		metrics.ObserveTranscript(metrics.ResultError, time.Since(start))
		s.log.Error().Err(err).Str("nim", nim).Msg("Transcript build failed")
		return nil, err
	}

	s.log.Debug().
		Str("nim", nim).
		Int("total_sks", transcript.TotalSKS).
		Float64("ipk", transcript.IPK).
		Msg("Transcript built")

	return &transcript, nil
}
