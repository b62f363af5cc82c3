// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"jobtrail/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much demo data is generated.
type Options struct {
	Users               int
	ApplicationsPerUser int
	Password            string
}

// DefaultOptions is a small, demo-friendly data set.
func DefaultOptions() Options {
	return Options{
		Users:               2,
		ApplicationsPerUser: 25,
		Password:            "password123",
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Run populates the database with demo users and their applications.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for i := 0; i < opts.Users; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Password: string(hash),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("seeding user: %w", err)
		}
		for j := 0; j < opts.ApplicationsPerUser; j++ {
			if err := db.Create(f.BuildApplication(user.ID)).Error; err != nil {
				return fmt.Errorf("seeding application: %w", err)
			}
		}
	}
	return nil
}

// BuildApplication constructs a realistic application owned by userID
// without persisting it.
func (f *Factory) BuildApplication(userID uint) *models.JobApplication {
	applied := models.NewDate(time.Now().UTC().AddDate(0, 0, -f.rng.Intn(90)))

	app := &models.JobApplication{
		UserID:        userID,
		Company:       gofakeit.Company(),
		JobTitle:      gofakeit.JobTitle(),
		Location:      fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		DateApplied:   applied,
		Source:        pick(f.rng, models.SourceOptions),
		JobLink:       gofakeit.URL(),
		ResumeVersion: fmt.Sprintf("v%d", 1+f.rng.Intn(4)),
		CurrentStatus: pick(f.rng, models.StatusOptions),
		SalaryRange:   fmt.Sprintf("$%dk-$%dk", 90+f.rng.Intn(60), 160+f.rng.Intn(80)),
		Priority:      1 + f.rng.Intn(10),
		Timezone:      models.DefaultTimezone,
	}

	// Roughly half the records carry follow-up details.
	if f.rng.Intn(2) == 0 {
		contacted := models.NewDate(applied.AddDate(0, 0, f.rng.Intn(14)))
		followUp := models.NewDate(contacted.AddDate(0, 0, 7))
		app.LastContactedDate = &contacted
		app.NextFollowUpDate = &followUp
		app.RecruiterInfo = gofakeit.Name() + " <" + gofakeit.Email() + ">"
		app.Notes = gofakeit.Sentence(12)
	}

	return app
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}
