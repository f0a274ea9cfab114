package server

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/auth"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/controller/application"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/controller/company"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/controller/file"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/controller/job"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/controller/profile"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/middleware"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/model"

	// Init swagger doc
	_ "github.com/Sanjay120304/find-fit-careers-5c518438/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	lAuth := auth.NewLocalAuthHandler(s.DB)
	logout := auth.NewLogoutController(s.Blacklist)
	jobCtrl := job.NewJobController(s.DB)
	appCtrl := application.NewApplicationController(s.DB)
	profileCtrl := profile.NewProfileController(s.DB)
	companyCtrl := company.NewCompanyController(s.DB)
	fileCtrl := file.NewFileController(s.DB, newStorageClient())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			// Keep credential endpoints behind the rate limiter
			authRoute.Use(middleware.EnvRateLimitMiddleware())
			authRoute.POST("login", lAuth.LoginHandler)
			authRoute.POST("register", lAuth.RegisterHandler)
		}

		needAuth := v1.Group("")
		{
			needAuth.Use(middleware.RequireAuth(s.DB), middleware.JwtBlacklistCheck(s.Blacklist))

			sessionRoute := needAuth.Group("/auth")
			{
				sessionRoute.POST("logout", logout.LogoutHandler)
				sessionRoute.GET("me", lAuth.MeHandler)
			}

			fileRoute := needAuth.Group("/file")
			{
				fileRoute.GET(":id", fileCtrl.GetFile)
			}

			companyRoute := needAuth.Group("/company")
			{
				companyRoute.GET("", companyCtrl.GetCompanies)
				companyRoute.GET(":company_id", companyCtrl.GetCompanyByID)
				companyRoute.POST("logo",
					middleware.CheckRole(model.RoleRecruiter),
					middleware.SizeLimit(10<<20),
					fileCtrl.UploadLogo)
			}

			jobRoute := needAuth.Group("/job")
			{
				jobRoute.GET("", jobCtrl.GetJobs)
				jobRoute.GET(":id", jobCtrl.GetJobByID)
				jobRoute.Use(middleware.CheckRole(model.RoleRecruiter))
				jobRoute.POST("", jobCtrl.CreateJobHandler)
				jobRoute.PATCH(":id", jobCtrl.EditJob)
				jobRoute.DELETE(":id", jobCtrl.DeactivateJob)
			}

			applicationRoute := needAuth.Group("/application")
			{
				applicationRoute.GET("", appCtrl.ListHandler)
				applicationRoute.POST("", middleware.CheckRole(model.RoleJobSeeker), appCtrl.SubmitHandler)
				applicationRoute.PATCH(":id", middleware.CheckRole(model.RoleRecruiter), appCtrl.UpdateStatusHandler)
			}

			profileRoute := needAuth.Group("/profile")
			{
				profileRoute.GET("myprofile", profileCtrl.GetMyProfile)
				profileRoute.PATCH("", profileCtrl.EditProfile)
				profileRoute.POST("resume",
					middleware.CheckRole(model.RoleJobSeeker),
					middleware.SizeLimit(10<<20),
					fileCtrl.UploadResume)
			}
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// newStorageClient builds the optional cloud storage mirror from env config.
func newStorageClient() file.StorageUploader {
	bucket := os.Getenv("CLOUD_STORAGE_BUCKET")
	if bucket == "" {
		return nil
	}
	client, err := file.NewCloudStorageClient(bucket)
	if err != nil {
		log.Printf("Cloud storage unavailable, uploads stay database-only: %s", err)
		return nil
	}
	return client
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
