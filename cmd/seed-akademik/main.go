package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stemsi/acad-service/internal/config"
	"github.com/stemsi/acad-service/internal/database"
	"github.com/stemsi/acad-service/internal/logger"
	"github.com/stemsi/acad-service/internal/model"
	"github.com/stemsi/acad-service/internal/repository"
	"github.com/stemsi/acad-service/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	uow := repository.NewUnitOfWork(pool)
	mahasiswaService := service.NewMahasiswaService(uow)
	mataKuliahService := service.NewMataKuliahService(uow)
	krsService := service.NewKRSService(uow, log)

	courses := []model.MataKuliah{
		{KodeMK: "IF101", NamaMK: "Algoritma dan Pemrograman", SKS: 4},
		{KodeMK: "IF102", NamaMK: "Matematika Diskrit", SKS: 3},
		{KodeMK: "IF103", NamaMK: "Pengantar Teknologi Informasi", SKS: 2},
		{KodeMK: "IF201", NamaMK: "Struktur Data", SKS: 4},
		{KodeMK: "IF202", NamaMK: "Basis Data", SKS: 3},
		{KodeMK: "IF203", NamaMK: "Sistem Operasi", SKS: 3},
	}

	names := []string{
		"Budi Santoso", "Siti Aminah", "Andi Pratama", "Rina Wati", "Joko Susilo",
		"Ayu Lestari", "Dodi Kusuma", "Eka Putri", "Fahri Hamzah", "Gita Savitri",
	}
	grades := []string{"A", "AB", "B", "BC", "C", "A", "B", "AB", "D", "E"}

	fmt.Println("=== Seeding Mata Kuliah ===")
	for i := range courses {
		mk := courses[i]
		if err := mataKuliahService.Create(ctx, &mk); err != nil && !errors.Is(err, service.ErrDuplicateMataKuliah) {
			log.Fatal().Err(err).Str("kode_mk", mk.KodeMK).Msg("Failed to create mata kuliah")
		}
	}

	fmt.Printf("=== Seeding %d Mahasiswa with KRS ===\n", len(names))
	krsCount := 0
	for i, name := range names {
		m := &model.Mahasiswa{
			NIM:      fmt.Sprintf("2023%04d", i+1),
			Nama:     name,
			Jurusan:  "Teknik Informatika",
			Angkatan: 2023,
		}
		// KRS has no natural key, so an existing student is left untouched.
		if err := mahasiswaService.Create(ctx, m); err != nil {
			if errors.Is(err, service.ErrDuplicateMahasiswa) {
				fmt.Printf("Mahasiswa %s already seeded, skipping\n", m.NIM)
			} else {
				fmt.Printf("Error creating mahasiswa %s (%s): %v\n", m.Nama, m.NIM, err)
			}
			continue
		}

		for j, mk := range courses {
			k := &model.KRS{
				NIM:      m.NIM,
				KodeMK:   mk.KodeMK,
				Semester: j/3 + 1,
				Nilai:    grades[(i+j)%len(grades)],
			}
			if err := krsService.Record(ctx, k); err != nil {
				fmt.Printf("Error recording KRS %s/%s: %v\n", k.NIM, k.KodeMK, err)
				continue
			}
			krsCount++
		}
	}

	fmt.Printf("\nSeed completed! %d mahasiswa, %d mata kuliah, %d KRS rows.\n", len(names), len(courses), krsCount)
}
