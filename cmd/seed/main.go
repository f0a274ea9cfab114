package main

import (
	"fmt"
	"log"
	"os"

	"github.com/lib/pq"

	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/database"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/model"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/utilities"
)

const seedPassword = "ChangeMe123!"

// createAccount inserts a user with a linked profile unless the email is
// already taken, and returns the profile either way.
func createAccount(db *database.DBinstanceStruct, email, fullName, role string) model.Profile {
	hashed, err := utilities.HashPassword(seedPassword)
	if err != nil {
		log.Fatal("failed to hash password: ", err)
	}

	user := model.User{Email: email, Password: hashed, Role: role}
	if err := db.Where("email = ?", email).FirstOrCreate(&user).Error; err != nil {
		log.Fatal("failed to create user: ", err)
	}

	profile := model.Profile{UserID: user.ID}
	profile.FullName = fullName
	if err := db.Where("user_id = ?", user.ID).FirstOrCreate(&profile).Error; err != nil {
		log.Fatal("failed to create profile: ", err)
	}
	return profile
}

func main() {
	db, err := database.GetMainDB()
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	company := model.Company{Name: "Acme Robotics", VerifiedStatus: model.StatusVerified}
	if err := db.Where("name = ?", company.Name).FirstOrCreate(&company).Error; err != nil {
		log.Fatal("failed to create company: ", err)
	}

	recruiter := createAccount(db, "recruiter@acme.example", "Rita Recruiter", model.RoleRecruiter)
	recruiter.CompanyID = &company.ID
	if err := db.Save(&recruiter).Error; err != nil {
		log.Fatal("failed to link recruiter to company: ", err)
	}

	createAccount(db, "seeker@mail.example", "Sam Seeker", model.RoleJobSeeker)

	job := model.Job{
		PostedBy:  recruiter.UserID,
		CompanyID: &company.ID,
		IsActive:  true,
	}
	job.Title = "Robotics Software Engineer"
	job.Description = "Build control software for warehouse robots."
	job.Requirements = pq.StringArray{"Go", "ROS", "3+ years experience"}
	job.Benefits = pq.StringArray{"Health insurance", "Remote fridays"}
	job.Location = "Austin, TX"
	job.EmploymentType = "full_time"
	if err := db.Where("title = ? AND posted_by = ?", job.Title, job.PostedBy).
		FirstOrCreate(&job).Error; err != nil {
		log.Fatal("failed to create job post: ", err)
	}

	fmt.Println("Demo data seeded successfully!")
	fmt.Println("======================================")
	fmt.Println("Recruiter: recruiter@acme.example")
	fmt.Println("Job seeker: seeker@mail.example")
	fmt.Printf("Password: %s\n", seedPassword)
	fmt.Println("======================================")

	os.Exit(0)
}
