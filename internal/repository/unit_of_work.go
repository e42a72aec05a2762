package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stemsi/acad-service/internal/database"
)

// Repositories groups every repository bound to the same connection or transaction.
type Repositories struct {
	Mahasiswa  MahasiswaRepository
	MataKuliah MataKuliahRepository
	KRS        KRSRepository
	BobotNilai BobotNilaiRepository
}

// NewRepositories binds all repositories to db.
func NewRepositories(db database.Querier) *Repositories {
	return &Repositories{
		Mahasiswa:  NewMahasiswaRepository(db),
		MataKuliah: NewMataKuliahRepository(db),
		KRS:        NewKRSRepository(db),
		BobotNilai: NewBobotNilaiRepository(db),
	}
}

// UnitOfWork scopes a request's data access to a single transaction.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos *Repositories) error) error
}

type pgUnitOfWork struct {
	db database.TxBeginner
}

// NewUnitOfWork returns a UnitOfWork backed by a pgx pool.
func NewUnitOfWork(db database.TxBeginner) UnitOfWork {
	return &pgUnitOfWork{db: db}
}

func (u *pgUnitOfWork) Do(ctx context.Context, fn func(repos *Repositories) error) error {
	return database.WithTx(ctx, u.db, func(tx pgx.Tx) error {
		return fn(NewRepositories(tx))
	})
}
