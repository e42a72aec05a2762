package repository

import (
	"context"

	"github.com/stemsi/acad-service/internal/database"
	"github.com/stemsi/acad-service/internal/model"
)

type MataKuliahRepository interface {
	List(ctx context.Context) ([]model.MataKuliah, error)
	Create(ctx context.Context, mk *model.MataKuliah) error
}

type mataKuliahRepository struct {
	db database.Querier
}

func NewMataKuliahRepository(db database.Querier) MataKuliahRepository {
	return &mataKuliahRepository{db: db}
}

func (r *mataKuliahRepository) List(ctx context.Context) ([]model.MataKuliah, error) {
	rows, err := r.db.Query(ctx, `SELECT kode_mk, nama_mk, sks FROM mata_kuliah ORDER BY kode_mk ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.MataKuliah{}
	for rows.Next() {
		var mk model.MataKuliah
		if err := rows.Scan(&mk.KodeMK, &mk.NamaMK, &mk.SKS); err != nil {
			return nil, err
		}
		list = append(list, mk)
	}
	return list, rows.Err()
}

func (r *mataKuliahRepository) Create(ctx context.Context, mk *model.MataKuliah) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO mata_kuliah (kode_mk, nama_mk, sks) VALUES ($1, $2, $3)`,
		mk.KodeMK, mk.NamaMK, mk.SKS,
	)
	if err != nil {
		return translatePgError(err)
	}
	return nil
}
