package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/stemsi/acad-service/internal/database"
	"github.com/stemsi/acad-service/internal/model"
)

// BobotNilaiRepository reads the grade-weight reference table. It has no write path.
type BobotNilaiRepository interface {
	List(ctx context.Context) ([]model.BobotNilai, error)
	Get(ctx context.Context, nilai string) (*model.BobotNilai, error)
}

type bobotNilaiRepository struct {
	db database.Querier
}

func NewBobotNilaiRepository(db database.Querier) BobotNilaiRepository {
	return &bobotNilaiRepository{db: db}
}

func (r *bobotNilaiRepository) List(ctx context.Context) ([]model.BobotNilai, error) {
	rows, err := r.db.Query(ctx, `SELECT nilai, bobot FROM bobot_nilai ORDER BY bobot DESC, nilai ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.BobotNilai{}
	for rows.Next() {
		var b model.BobotNilai
		if err := rows.Scan(&b.Nilai, &b.Bobot); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Get returns ErrNotFound when the grade is not in the table.
func (r *bobotNilaiRepository) Get(ctx context.Context, nilai string) (*model.BobotNilai, error) {
	b := &model.BobotNilai{}
	err := r.db.QueryRow(ctx, `SELECT nilai, bobot FROM bobot_nilai WHERE nilai = $1`, nilai).Scan(&b.Nilai, &b.Bobot)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
