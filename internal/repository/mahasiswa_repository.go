package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/stemsi/acad-service/internal/database"
	"github.com/stemsi/acad-service/internal/model"
)

type MahasiswaRepository interface {
	List(ctx context.Context) ([]model.Mahasiswa, error)
	GetByNIM(ctx context.Context, nim string) (*model.Mahasiswa, error)
	Create(ctx context.Context, m *model.Mahasiswa) error
}

type mahasiswaRepository struct {
	db database.Querier
}

func NewMahasiswaRepository(db database.Querier) MahasiswaRepository {
	return &mahasiswaRepository{db: db}
}

func (r *mahasiswaRepository) List(ctx context.Context) ([]model.Mahasiswa, error) {
	rows, err := r.db.Query(ctx, `SELECT nim, nama, jurusan, angkatan FROM mahasiswa ORDER BY nim ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Mahasiswa{}
	for rows.Next() {
		var m model.Mahasiswa
		if err := rows.Scan(&m.NIM, &m.Nama, &m.Jurusan, &m.Angkatan); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// GetByNIM returns ErrNotFound when no student has the given NIM.
func (r *mahasiswaRepository) GetByNIM(ctx context.Context, nim string) (*model.Mahasiswa, error) {
	m := &model.Mahasiswa{}
	err := r.db.QueryRow(ctx,
		`SELECT nim, nama, jurusan, angkatan FROM mahasiswa WHERE nim = $1`, nim,
	).Scan(&m.NIM, &m.Nama, &m.Jurusan, &m.Angkatan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *mahasiswaRepository) Create(ctx context.Context, m *model.Mahasiswa) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO mahasiswa (nim, nama, jurusan, angkatan) VALUES ($1, $2, $3, $4)`,
		m.NIM, m.Nama, m.Jurusan, m.Angkatan,
	)
	if err != nil {
		return translatePgError(err)
	}
	return nil
}
