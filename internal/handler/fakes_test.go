package handler

import (
	"context"
	"sort"

	"github.com/stemsi/acad-service/internal/model"
	"github.com/stemsi/acad-service/internal/repository"
)

// fakeDB is a minimal in-memory UnitOfWork for handler tests.
type fakeDB struct {
	mahasiswa  map[string]model.Mahasiswa
	mataKuliah map[string]model.MataKuliah
	bobot      map[string]float64
	krs        []model.KRS
	failWith   error
	calls      int
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		mahasiswa:  map[string]model.Mahasiswa{},
		mataKuliah: map[string]model.MataKuliah{},
		bobot:      map[string]float64{"A": 4, "B": 3, "C": 2, "D": 1, "E": 0},
	}
}

func (f *fakeDB) Do(_ context.Context, fn func(repos *repository.Repositories) error) error {
	f.calls++
	if f.failWith != nil {
		return f.failWith
	}
	return fn(&repository.Repositories{
		Mahasiswa:  fakeMahasiswa{f},
		MataKuliah: fakeMataKuliah{f},
		KRS:        fakeKRS{f},
		BobotNilai: fakeBobot{f},
	})
}

type fakeMahasiswa struct{ f *fakeDB }

func (r fakeMahasiswa) List(context.Context) ([]model.Mahasiswa, error) {
	var out []model.Mahasiswa
	for _, m := range r.f.mahasiswa {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NIM < out[j].NIM })
	return out, nil
}

func (r fakeMahasiswa) GetByNIM(_ context.Context, nim string) (*model.Mahasiswa, error) {
	m, ok := r.f.mahasiswa[nim]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

func (r fakeMahasiswa) Create(_ context.Context, m *model.Mahasiswa) error {
	if _, ok := r.f.mahasiswa[m.NIM]; ok {
		return repository.ErrDuplicateKey
	}
	r.f.mahasiswa[m.NIM] = *m
	return nil
}

type fakeMataKuliah struct{ f *fakeDB }

func (r fakeMataKuliah) List(context.Context) ([]model.MataKuliah, error) {
	var out []model.MataKuliah
	for _, mk := range r.f.mataKuliah {
		out = append(out, mk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].KodeMK < out[j].KodeMK })
	return out, nil
}

func (r fakeMataKuliah) Create(_ context.Context, mk *model.MataKuliah) error {
	if _, ok := r.f.mataKuliah[mk.KodeMK]; ok {
		return repository.ErrDuplicateKey
	}
	r.f.mataKuliah[mk.KodeMK] = *mk
	return nil
}

type fakeKRS struct{ f *fakeDB }

func (r fakeKRS) Create(_ context.Context, k *model.KRS) error {
	if _, ok := r.f.mahasiswa[k.NIM]; !ok {
		return repository.NewForeignKeyError(repository.ConstraintKRSMahasiswa, nil)
	}
	if _, ok := r.f.mataKuliah[k.KodeMK]; !ok {
		return repository.NewForeignKeyError(repository.ConstraintKRSMataKuliah, nil)
	}
	r.f.krs = append(r.f.krs, *k)
	return nil
}

func (r fakeKRS) ListDetailByNIM(_ context.Context, nim string) ([]model.KRSDetail, error) {
	var out []model.KRSDetail
	for _, k := range r.f.krs {
		if k.NIM != nim {
			continue
		}
		mk := r.f.mataKuliah[k.KodeMK]
		out = append(out, model.KRSDetail{
			KodeMK: k.KodeMK, NamaMK: mk.NamaMK, SKS: mk.SKS,
			Nilai: k.Nilai, Bobot: r.f.bobot[k.Nilai], Semester: k.Semester,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Semester < out[j].Semester })
	return out, nil
}

type fakeBobot struct{ f *fakeDB }

func (r fakeBobot) List(context.Context) ([]model.BobotNilai, error) {
	var out []model.BobotNilai
	for n, b := range r.f.bobot {
		out = append(out, model.BobotNilai{Nilai: n, Bobot: b})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Bobot > out[j].Bobot })
	return out, nil
}

func (r fakeBobot) Get(_ context.Context, nilai string) (*model.BobotNilai, error) {
	b, ok := r.f.bobot[nilai]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &model.BobotNilai{Nilai: nilai, Bobot: b}, nil
}
