package repository

import (
	"context"

	"github.com/stemsi/acad-service/internal/database"
	"github.com/stemsi/acad-service/internal/model"
)

// Constraint names from migrations/000001_init_akademik.up.sql.
const (
	ConstraintKRSMahasiswa  = "krs_nim_fkey"
	ConstraintKRSMataKuliah = "krs_kode_mk_fkey"
	ConstraintKRSNilai      = "krs_nilai_fkey"
)

type KRSRepository interface {
	Create(ctx context.Context, k *model.KRS) error
	ListDetailByNIM(ctx context.Context, nim string) ([]model.KRSDetail, error)
}

type krsRepository struct {
	db database.Querier
}

func NewKRSRepository(db database.Querier) KRSRepository {
	return &krsRepository{db: db}
}

func (r *krsRepository) Create(ctx context.Context, k *model.KRS) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO krs (nim, kode_mk, semester, nilai) VALUES ($1, $2, $3, $4)`,
		k.NIM, k.KodeMK, k.Semester, k.Nilai,
	)
	if err != nil {
		return translatePgError(err)
	}
	return nil
}

// ListDetailByNIM joins each enrollment with its course and grade weight,
// ordered by semester, then course name.
func (r *krsRepository) ListDetailByNIM(ctx context.Context, nim string) ([]model.KRSDetail, error) {
	query := `
		SELECT k.kode_mk, mk.nama_mk, mk.sks, k.nilai, bn.bobot, k.semester
		FROM krs k
		JOIN mata_kuliah mk ON k.kode_mk = mk.kode_mk
		JOIN bobot_nilai bn ON k.nilai = bn.nilai
		WHERE k.nim = $1
		ORDER BY k.semester ASC, mk.nama_mk ASC, k.kode_mk ASC
	`
	rows, err := r.db.Query(ctx, query, nim)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.KRSDetail{}
	for rows.Next() {
		var d model.KRSDetail
		if err := rows.Scan(&d.KodeMK, &d.NamaMK, &d.SKS, &d.Nilai, &d.Bobot, &d.Semester); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
