package service

import (
	"math"
	"slices"

	"github.com/stemsi/acad-service/internal/model"
)

// BuildTranscript aggregates a student's enrollment rows into per-semester IPS
// and a cumulative IPK. Items are kept in the order given.
func BuildTranscript(m model.Mahasiswa, items []model.KRSDetail) model.Transcript {
	if items == nil {
		items = []model.KRSDetail{}
	}

	t := model.Transcript{
		NIM:       m.NIM,
		Nama:      m.Nama,
		Jurusan:   m.Jurusan,
		Angkatan:  m.Angkatan,
		Semesters: []model.SemesterSummary{},
		Items:     items,
	}

	type acc struct {
		sks    int
		points float64
	}
	perSemester := make(map[int]*acc)

	var totalSKS int
	var totalPoints float64
	for _, it := range items {
		points := float64(it.SKS) * it.Bobot
		totalSKS += it.SKS
		totalPoints += points

		a, ok := perSemester[it.Semester]
		if !ok {
			a = &acc{}
			perSemester[it.Semester] = a
		}
		a.sks += it.SKS
		a.points += points
	}

	for sem, a := range perSemester {
		t.Semesters = append(t.Semesters, model.SemesterSummary{
			Semester:   sem,
			TotalSKS:   a.sks,
			TotalBobot: roundHalfUp(a.points, 2),
			IPS:        GPA(a.points, a.sks),
		})
	}
	slices.SortFunc(t.Semesters, func(a, b model.SemesterSummary) int {
		return a.Semester - b.Semester
	})

	t.TotalSKS = totalSKS
	t.TotalBobot = roundHalfUp(totalPoints, 2)
	t.IPK = GPA(totalPoints, totalSKS)
	return t
}

// GPA returns points/credits rounded half-up to two decimals, or 0 when credits is 0.
func GPA(points float64, credits int) float64 {
	if credits <= 0 {
		return 0
	}
	return roundHalfUp(points/float64(credits), 2)
}

// roundHalfUp rounds a non-negative v to the given decimal places, ties away from zero.
// The 1e-9 nudge absorbs binary representation error at exact midpoints such as 3.605.
func roundHalfUp(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Floor(v*p+0.5+1e-9) / p
}
