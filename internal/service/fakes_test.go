package service

import (
	"context"
	"slices"
	"strings"

	"github.com/stemsi/acad-service/internal/model"
	"github.com/stemsi/acad-service/internal/repository"
)

// memStore is an in-memory stand-in for the four academic tables.
type memStore struct {
	mahasiswa  map[string]model.Mahasiswa
	mataKuliah map[string]model.MataKuliah
	bobot      map[string]float64
	krs        []model.KRS

	// failWith makes every repository call return this error.
	failWith error

	commits   int
	rollbacks int
}

func newMemStore() *memStore {
	return &memStore{
		mahasiswa:  map[string]model.Mahasiswa{},
		mataKuliah: map[string]model.MataKuliah{},
		bobot: map[string]float64{
			"A": 4.0, "AB": 3.5, "B": 3.0, "BC": 2.5, "C": 2.0, "D": 1.0, "E": 0.0,
		},
	}
}

// Do mimics a transaction: KRS rows written by a failed fn are discarded.
func (s *memStore) Do(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	krsBefore := len(s.krs)
	mhsBefore := maps2keys(s.mahasiswa)
	mkBefore := maps2keys(s.mataKuliah)

	err := fn(&repository.Repositories{
		Mahasiswa:  memMahasiswa{s},
		MataKuliah: memMataKuliah{s},
		KRS:        memKRS{s},
		BobotNilai: memBobot{s},
	})
	if err != nil {
		s.krs = s.krs[:krsBefore]
		for k := range s.mahasiswa {
			if !slices.Contains(mhsBefore, k) {
				delete(s.mahasiswa, k)
			}
		}
		for k := range s.mataKuliah {
			if !slices.Contains(mkBefore, k) {
				delete(s.mataKuliah, k)
			}
		}
		s.rollbacks++
		return err
	}
	s.commits++
	return nil
}

func maps2keys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

type memMahasiswa struct{ s *memStore }

func (r memMahasiswa) List(context.Context) ([]model.Mahasiswa, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	list := []model.Mahasiswa{}
	for _, m := range r.s.mahasiswa {
		list = append(list, m)
	}
	slices.SortFunc(list, func(a, b model.Mahasiswa) int { return strings.Compare(a.NIM, b.NIM) })
	return list, nil
}

func (r memMahasiswa) GetByNIM(_ context.Context, nim string) (*model.Mahasiswa, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	m, ok := r.s.mahasiswa[nim]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

func (r memMahasiswa) Create(_ context.Context, m *model.Mahasiswa) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if _, ok := r.s.mahasiswa[m.NIM]; ok {
		return repository.ErrDuplicateKey
	}
	r.s.mahasiswa[m.NIM] = *m
	return nil
}

type memMataKuliah struct{ s *memStore }

func (r memMataKuliah) List(context.Context) ([]model.MataKuliah, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	list := []model.MataKuliah{}
	for _, mk := range r.s.mataKuliah {
		list = append(list, mk)
	}
	slices.SortFunc(list, func(a, b model.MataKuliah) int { return strings.Compare(a.KodeMK, b.KodeMK) })
	return list, nil
}

func (r memMataKuliah) Create(_ context.Context, mk *model.MataKuliah) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if _, ok := r.s.mataKuliah[mk.KodeMK]; ok {
		return repository.ErrDuplicateKey
	}
	r.s.mataKuliah[mk.KodeMK] = *mk
	return nil
}

type memKRS struct{ s *memStore }

func (r memKRS) Create(_ context.Context, k *model.KRS) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if _, ok := r.s.mahasiswa[k.NIM]; !ok {
		return repository.NewForeignKeyError(repository.ConstraintKRSMahasiswa, nil)
	}
	if _, ok := r.s.mataKuliah[k.KodeMK]; !ok {
		return repository.NewForeignKeyError(repository.ConstraintKRSMataKuliah, nil)
	}
	if _, ok := r.s.bobot[k.Nilai]; !ok {
		return repository.NewForeignKeyError(repository.ConstraintKRSNilai, nil)
	}
	r.s.krs = append(r.s.krs, *k)
	return nil
}

func (r memKRS) ListDetailByNIM(_ context.Context, nim string) ([]model.KRSDetail, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	items := []model.KRSDetail{}
	for _, k := range r.s.krs {
		if k.NIM != nim {
			continue
		}
		mk := r.s.mataKuliah[k.KodeMK]
		items = append(items, model.KRSDetail{
			KodeMK:   k.KodeMK,
			NamaMK:   mk.NamaMK,
			SKS:      mk.SKS,
			Nilai:    k.Nilai,
			Bobot:    r.s.bobot[k.Nilai],
			Semester: k.Semester,
		})
	}
	slices.SortStableFunc(items, func(a, b model.KRSDetail) int {
		if a.Semester != b.Semester {
			return a.Semester - b.Semester
		}
		return strings.Compare(a.NamaMK, b.NamaMK)
	})
	return items, nil
}

type memBobot struct{ s *memStore }

func (r memBobot) List(context.Context) ([]model.BobotNilai, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	list := []model.BobotNilai{}
	for n, b := range r.s.bobot {
		list = append(list, model.BobotNilai{Nilai: n, Bobot: b})
	}
	slices.SortFunc(list, func(a, b model.BobotNilai) int {
		if a.Bobot != b.Bobot {
			if a.Bobot > b.Bobot {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Nilai, b.Nilai)
	})
	return list, nil
}

func (r memBobot) Get(_ context.Context, nilai string) (*model.BobotNilai, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	b, ok := r.s.bobot[nilai]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &model.BobotNilai{Nilai: nilai, Bobot: b}, nil
}
