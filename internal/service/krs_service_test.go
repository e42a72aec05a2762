package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stemsi/acad-service/internal/model"
)

func TestRecordUnknownGradeWritesNothing(t *testing.T) {
	store, krsSvc, _ := seedScenario(t)
	rollbacksBefore := store.rollbacks

	err := krsSvc.Record(context.Background(), &model.KRS{NIM: "S1", KodeMK: "C1", Semester: 1, Nilai: "Z"})
	if !errors.Is(err, ErrUnknownGrade) {
		t.Fatalf("expected ErrUnknownGrade, got %v", err)
	}
	if len(store.krs) != 0 {
		t.Fatalf("expected no KRS rows, got %d", len(store.krs))
	}
	if store.rollbacks != rollbacksBefore+1 {
		t.Fatalf("expected the transaction to roll back")
	}
}

func TestRecordTrimsWhitespace(t *testing.T) {
	store, krsSvc, _ := seedScenario(t)

	err := krsSvc.Record(context.Background(), &model.KRS{NIM: " S1 ", KodeMK: "C1", Semester: 2, Nilai: " AB "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.krs) != 1 {
		t.Fatalf("expected one row, got %d", len(store.krs))
	}
	got := store.krs[0]
	if got.Nilai != "AB" || got.NIM != "S1" {
		t.Fatalf("expected trimmed row, got %#v", got)
	}
}

func TestRecordGradeIsCaseSensitive(t *testing.T) {
	for _, nilai := range []string{"b", " ab", "Bc"} {
		store, krsSvc, _ := seedScenario(t)

		err := krsSvc.Record(context.Background(), &model.KRS{NIM: "S1", KodeMK: "C1", Semester: 1, Nilai: nilai})
		if !errors.Is(err, ErrUnknownGrade) {
			t.Fatalf("%q: expected ErrUnknownGrade, got %v", nilai, err)
		}
		if len(store.krs) != 0 {
			t.Fatalf("%q: expected no KRS rows, got %d", nilai, len(store.krs))
		}
	}
}

func TestRecordMissingReferences(t *testing.T) {
	cases := []struct {
		name  string
		krs   model.KRS
		field string
	}{
		{"unknown student", model.KRS{NIM: "S404", KodeMK: "C1", Semester: 1, Nilai: "A"}, "nim"},
		{"unknown course", model.KRS{NIM: "S1", KodeMK: "C404", Semester: 1, Nilai: "A"}, "kode_mk"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, krsSvc, _ := seedScenario(t)

			err := krsSvc.Record(context.Background(), &tc.krs)
			if !errors.Is(err, ErrReferenceNotFound) {
				t.Fatalf("expected ErrReferenceNotFound, got %v", err)
			}
			var refErr *ReferenceError
			if !errors.As(err, &refErr) || refErr.Field != tc.field {
				t.Fatalf("expected ReferenceError on %s, got %v", tc.field, err)
			}
			if len(store.krs) != 0 {
				t.Fatalf("expected no KRS rows, got %d", len(store.krs))
			}
		})
	}
}

func TestRecordStorageFailure(t *testing.T) {
	store, krsSvc, _ := seedScenario(t)
	boom := errors.New("disk full")
	store.failWith = boom

	err := krsSvc.Record(context.Background(), &model.KRS{NIM: "S1", KodeMK: "C1", Semester: 1, Nilai: "A"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if errors.Is(err, ErrUnknownGrade) || errors.Is(err, ErrReferenceNotFound) {
		t.Fatal("storage failure must not be classified as a validation error")
	}
}

func TestRecordAllowsRepeatedCourse(t *testing.T) {
	store, krsSvc, _ := seedScenario(t)
	ctx := context.Background()

	for sem, nilai := range map[int]string{1: "D", 3: "A"} {
		if err := krsSvc.Record(ctx, &model.KRS{NIM: "S1", KodeMK: "C1", Semester: sem, Nilai: nilai}); err != nil {
			t.Fatalf("semester %d: %v", sem, err)
		}
	}
	if len(store.krs) != 2 {
		t.Fatalf("expected both attempts stored, got %d", len(store.krs))
	}
}
