package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kerem/schoolhub/internal/app/models"
	appRepos "github.com/kerem/schoolhub/internal/app/repositories"
	"github.com/kerem/schoolhub/internal/config"
)

var firstNames = []string{
	"Aarav", "Aditi", "Arjun", "Deepa", "Farhan", "Gita", "Imran", "Kavya",
	"Liam", "Maya", "Noah", "Priya", "Rahul", "Sara", "Tanvi", "Vikram",
	"Zara", "Omar", "Elif", "Kerem",
}

var lastNames = []string{
	"Sharma", "Khan", "Patel", "Gupta", "Reddy", "Demir", "Yilmaz", "Aydin",
	"Smith", "Jones", "Brown", "Garcia", "Martin", "Lee", "Chen", "Kim",
}

var subjects = []string{
	"Mathematics", "Physics", "Chemistry", "Biology", "English",
	"History", "Geography", "Computer Science", "Art", "Music",
}

// CreateDefaultData populates the database with sample students and
// teachers when the tables are empty. Counts come from configuration.
// Fee payments are distributed roughly 25% unpaid, 50% partial, 25% paid
// so every fee-status query has data to return.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger, seedCfg config.SeedConfig) error {
	studentRepo := appRepos.NewStudentRepository(dbPool)
	teacherRepo := appRepos.NewTeacherRepository(dbPool)

	// Fixed source so reseeding an empty database yields the same data.
	rng := rand.New(rand.NewSource(42))

	studentCount, err := studentRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting students before seed: %w", err)
	}
	if studentCount == 0 && seedCfg.Students > 0 {
		lgr.Info().Int("count", seedCfg.Students).Msg("Seeding students...")
		if err := seedStudents(ctx, studentRepo, rng, seedCfg.Students); err != nil {
			return err
		}
	} else {
		lgr.Info().Int64("existing", studentCount).Msg("Students already present, skipping seed")
	}

	teacherCount, err := teacherRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting teachers before seed: %w", err)
	}
	if teacherCount == 0 && seedCfg.Teachers > 0 {
		lgr.Info().Int("count", seedCfg.Teachers).Msg("Seeding teachers...")
		if err := seedTeachers(ctx, teacherRepo, rng, seedCfg.Teachers); err != nil {
			return err
		}
	} else {
		lgr.Info().Int64("existing", teacherCount).Msg("Teachers already present, skipping seed")
	}

	lgr.Info().Msg("Seed data check/creation finished")
	return nil
}

func seedStudents(ctx context.Context, repo *appRepos.StudentRepository, rng *rand.Rand, count int) error {
	for i := 0; i < count; i++ {
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		grade := appModels.MinGrade + rng.Intn(appModels.MaxGrade-appModels.MinGrade+1)
		feeTotal := float64(20000 + rng.Intn(8)*5000)

		var feePaid float64
		switch bucket := rng.Intn(4); bucket {
		case 0:
			feePaid = 0
		case 3:
			feePaid = feeTotal
		default:
			// Partial payment strictly between zero and the total.
			fraction := 0.1 + rng.Float64()*0.8
			feePaid = float64(int(feeTotal * fraction))
			if feePaid == 0 {
				feePaid = 1
			}
		}

		dob := time.Date(2014-grade, time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
		address := fmt.Sprintf("%d Sample Street", 1+rng.Intn(999))
		parent := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]

		student := &appModels.Student{
			Name:       name,
			Email:      fmt.Sprintf("student%d@school.example", i+1),
			Phone:      fmt.Sprintf("555%07d", rng.Intn(10000000)),
			Grade:      grade,
			DOB:        &dob,
			Address:    &address,
			ParentName: &parent,
			FeeTotal:   feeTotal,
			FeePaid:    feePaid,
			Active:     true,
		}
		if _, err := repo.Create(ctx, student); err != nil {
			return fmt.Errorf("seeding student %d: %w", i+1, err)
		}
	}
	return nil
}

func seedTeachers(ctx context.Context, repo *appRepos.TeacherRepository, rng *rand.Rand, count int) error {
	for i := 0; i < count; i++ {
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		subject := subjects[rng.Intn(len(subjects))]
		salary := float64(40000 + rng.Intn(13)*5000)

		grades := pickGrades(rng)

		teacher := &appModels.Teacher{
			Name:    name,
			Email:   fmt.Sprintf("teacher%d@school.example", i+1),
			Phone:   fmt.Sprintf("556%07d", rng.Intn(10000000)),
			Subject: &subject,
			Salary:  salary,
			Grades:  grades,
		}
		if _, err := repo.Create(ctx, teacher); err != nil {
			return fmt.Errorf("seeding teacher %d: %w", i+1, err)
		}
	}
	return nil
}

// pickGrades draws a target count of one to three once, then fills the set
// with distinct grades until it is met.
func pickGrades(rng *rand.Rand) []int {
	target := 1 + rng.Intn(3)
	gradeSet := map[int]struct{}{}
	for len(gradeSet) < target {
		gradeSet[appModels.MinGrade+rng.Intn(appModels.MaxGrade-appModels.MinGrade+1)] = struct{}{}
	}
	grades := make([]int, 0, len(gradeSet))
	for g := range gradeSet {
		grades = append(grades, g)
	}
	return grades
}
