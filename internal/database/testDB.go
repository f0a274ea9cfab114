package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/Sanjay120304/find-fit-careers-5c518438/internal/model"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test users, profiles, companies and jobs
var (
	TestUserSeeker1    m.User
	TestUserSeeker2    m.User
	TestUserRecruiter1 m.User
	TestUserRecruiter2 m.User

	TestSeeker1    m.Profile
	TestSeeker2    m.Profile
	TestRecruiter1 m.Profile
	TestRecruiter2 m.Profile

	TestCompany1 m.Company
	TestCompany2 m.Company

	// Plain password shared by all seeded users
	TestSeedPassword = "SeedPass123!"

	// Seeded job posts: 1 and 2 active, 3 deactivated
	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	// Seed sample job seekers, recruiters, companies and jobs
	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample users, profiles, companies and jobs if empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount > 0 {
		return loadTestData(db)
	}

	userSpecs := []struct {
		email string
		role  string
	}{
		{"seeker1@example.com", m.RoleJobSeeker},
		{"seeker2@example.com", m.RoleJobSeeker},
		{"recruiter1@example.com", m.RoleRecruiter},
		{"recruiter2@example.com", m.RoleRecruiter},
	}

	// Pre-hash shared password for all seeded users
	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	users := make([]m.User, 0, len(userSpecs))
	for _, s := range userSpecs {
		users = append(users, m.User{
			ID:       uuid.New(),
			Email:    s.email,
			Role:     s.role,
			Password: hashedPwd,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	// Map created users to exported variables
	for _, u := range users {
		switch u.Email {
		case "seeker1@example.com":
			TestUserSeeker1 = u
		case "seeker2@example.com":
			TestUserSeeker2 = u
		case "recruiter1@example.com":
			TestUserRecruiter1 = u
		case "recruiter2@example.com":
			TestUserRecruiter2 = u
		}
	}

	companies := []m.Company{
		{ID: uuid.New(), Name: "TechNova", VerifiedStatus: m.StatusVerified},
		{ID: uuid.New(), Name: "DataForge", VerifiedStatus: m.StatusPending},
	}
	if err := db.Create(&companies).Error; err != nil {
		return err
	}
	TestCompany1 = companies[0]
	TestCompany2 = companies[1]

	profiles := []m.Profile{
		{
			UserID: TestUserSeeker1.ID,
			EditableProfileInfo: m.EditableProfileInfo{
				FullName: "Alice Nguyen",
				Phone:    ptr("0100000001"),
				Location: ptr("Bangkok"),
			},
		},
		{
			UserID: TestUserSeeker2.ID,
			EditableProfileInfo: m.EditableProfileInfo{
				FullName: "Bob Somsak",
				Phone:    ptr("0100000002"),
			},
		},
		{
			UserID: TestUserRecruiter1.ID,
			EditableProfileInfo: m.EditableProfileInfo{
				FullName: "Carol Hiring",
			},
			CompanyID: &TestCompany1.ID,
		},
		{
			UserID: TestUserRecruiter2.ID,
			EditableProfileInfo: m.EditableProfileInfo{
				FullName: "Dan Talent",
			},
			CompanyID: &TestCompany2.ID,
		},
	}
	if err := db.Create(&profiles).Error; err != nil {
		return err
	}
	TestSeeker1 = profiles[0]
	TestSeeker2 = profiles[1]
	TestRecruiter1 = profiles[2]
	TestRecruiter2 = profiles[3]

	salaryMin, salaryMax := 100000, 130000
	jobs := []m.Job{
		{
			PostedBy:  TestUserRecruiter1.ID,
			CompanyID: &TestCompany1.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:          "Backend Engineer",
				Description:    "Build and operate our job board APIs",
				Requirements:   pq.StringArray{"Go", "PostgreSQL"},
				Benefits:       pq.StringArray{"Health insurance", "Remote budget"},
				Location:       "Bangkok",
				SalaryMin:      &salaryMin,
				SalaryMax:      &salaryMax,
				EmploymentType: "full_time",
			},
			IsActive: true,
		},
		{
			PostedBy:  TestUserRecruiter2.ID,
			CompanyID: &TestCompany2.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:          "Frontend Developer",
				Description:    "Own the applicant-facing UI",
				Requirements:   pq.StringArray{"TypeScript", "React"},
				Location:       "Remote",
				EmploymentType: "full_time",
			},
			IsActive: true,
		},
		{
			PostedBy:  TestUserRecruiter1.ID,
			CompanyID: &TestCompany1.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:          "Data Analyst",
				Description:    "Closed position kept for history",
				Location:       "Bangkok",
				EmploymentType: "contract",
			},
			IsActive: false,
		},
	}
	if err := db.Create(&jobs).Error; err != nil {
		return err
	}
	// Deactivated job: IsActive has a true default on create, flip explicitly
	if err := db.Model(&jobs[2]).Update("is_active", false).Error; err != nil {
		return err
	}
	jobs[2].IsActive = false
	TestJob1 = jobs[0]
	TestJob2 = jobs[1]
	TestJob3 = jobs[2]

	return nil
}

// loadTestData reloads the exported fixtures from an already seeded database.
func loadTestData(db *DBinstanceStruct) error {
	load := func(dst *m.User, email string) error {
		return db.Where("email = ?", email).First(dst).Error
	}
	if err := load(&TestUserSeeker1, "seeker1@example.com"); err != nil {
		return err
	}
	if err := load(&TestUserSeeker2, "seeker2@example.com"); err != nil {
		return err
	}
	if err := load(&TestUserRecruiter1, "recruiter1@example.com"); err != nil {
		return err
	}
	if err := load(&TestUserRecruiter2, "recruiter2@example.com"); err != nil {
		return err
	}

	if err := db.Where("name = ?", "TechNova").First(&TestCompany1).Error; err != nil {
		return err
	}
	if err := db.Where("name = ?", "DataForge").First(&TestCompany2).Error; err != nil {
		return err
	}

	loadProfile := func(dst *m.Profile, userID interface{}) error {
		return db.Where("user_id = ?", userID).First(dst).Error
	}
	if err := loadProfile(&TestSeeker1, TestUserSeeker1.ID); err != nil {
		return err
	}
	if err := loadProfile(&TestSeeker2, TestUserSeeker2.ID); err != nil {
		return err
	}
	if err := loadProfile(&TestRecruiter1, TestUserRecruiter1.ID); err != nil {
		return err
	}
	if err := loadProfile(&TestRecruiter2, TestUserRecruiter2.ID); err != nil {
		return err
	}

	if err := db.Where("title = ?", "Backend Engineer").First(&TestJob1).Error; err != nil {
		return err
	}
	if err := db.Where("title = ?", "Frontend Developer").First(&TestJob2).Error; err != nil {
		return err
	}
	return db.Where("title = ?", "Data Analyst").First(&TestJob3).Error
}

func ptr(s string) *string {
	return &s
}
