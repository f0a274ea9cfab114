package job

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/auth"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/database"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/middleware"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/model"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if auth.SECRET_KEY == "" {
		auth.SECRET_KEY = "test-signing-secret"
	}

	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func jobEngine() *gin.Engine {
	r := gin.Default()
	jc := NewJobController(testDB)
	r.GET("/job", middleware.RequireAuth(testDB), jc.GetJobs)
	r.GET("/job/:id", middleware.RequireAuth(testDB), jc.GetJobByID)
	r.POST("/job", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleRecruiter), jc.CreateJobHandler)
	r.PATCH("/job/:id", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleRecruiter), jc.EditJob)
	r.DELETE("/job/:id", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleRecruiter), jc.DeactivateJob)
	return r
}

func recruiterToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, database.TestUserRecruiter1.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	return token
}

func seekerToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, database.TestUserSeeker1.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	return token
}

func TestCreateJob_Success(t *testing.T) {
	r := jobEngine()

	body := gin.H{
		"title":           "Platform Engineer",
		"description":     "Keep the deploy pipeline green",
		"requirements":    []string{"Go", "Kubernetes"},
		"benefits":        []string{"Stock options"},
		"location":        "Chiang Mai",
		"salary_min":      90000,
		"salary_max":      120000,
		"employment_type": "full_time",
	}

	rec, resp := testutil.MakeJSONRequest(body, recruiterToken(t), r, "/job", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Stored fields survive the round trip
	assert.Equal(t, "Platform Engineer", resp["title"])
	assert.Equal(t, "Keep the deploy pipeline green", resp["description"])
	assert.Equal(t, true, resp["is_active"])

	// Ownership and company come from the caller's profile, not the body
	assert.Equal(t, database.TestUserRecruiter1.ID.String(), resp["posted_by"])
	assert.Equal(t, database.TestCompany1.ID.String(), resp["company_id"])
}

func TestCreateJob_ForbiddenForJobSeeker(t *testing.T) {
	r := jobEngine()

	body := gin.H{
		"title":       "Should Not Exist",
		"description": "Job seekers cannot post jobs",
	}

	rec, _ := testutil.MakeJSONRequest(body, seekerToken(t), r, "/job", http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var count int64
	testDB.Model(&model.Job{}).Where("title = ?", "Should Not Exist").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateJob_MissingTitle(t *testing.T) {
	r := jobEngine()

	body := gin.H{"description": "No title supplied"}

	rec, resp := testutil.MakeJSONRequest(body, recruiterToken(t), r, "/job", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "title")
}

func TestCreateJob_InvalidSalaryBounds(t *testing.T) {
	r := jobEngine()

	body := gin.H{
		"title":       "Inverted Salary",
		"description": "Max below min",
		"salary_min":  120000,
		"salary_max":  90000,
	}

	rec, resp := testutil.MakeJSONRequest(body, recruiterToken(t), r, "/job", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "salary")
}

func TestCreateJob_UnknownField(t *testing.T) {
	r := jobEngine()

	body := gin.H{
		"title":       "Sneaky Post",
		"description": "Tries to claim someone else's identity",
		"posted_by":   database.TestUserRecruiter2.ID.String(),
	}

	rec, _ := testutil.MakeJSONRequest(body, recruiterToken(t), r, "/job", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetJobs_OnlyActive(t *testing.T) {
	r := jobEngine()

	rec, resp := testutil.MakeJSONListRequest(nil, seekerToken(t), r, "/job", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	titles := make([]string, 0, len(resp))
	for _, j := range resp {
		title, _ := j["title"].(string)
		titles = append(titles, title)
	}
	assert.Contains(t, titles, database.TestJob1.Title)
	assert.Contains(t, titles, database.TestJob2.Title)
	// TestJob3 is deactivated and must stay hidden
	assert.NotContains(t, titles, database.TestJob3.Title)
}

func TestGetJobs_SearchFilter(t *testing.T) {
	r := jobEngine()

	rec, resp := testutil.MakeJSONListRequest(nil, seekerToken(t), r, "/job?search=backend", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.NotEmpty(t, resp)
	for _, j := range resp {
		assert.Contains(t, j["title"], "Backend")
	}
}

func TestGetJobs_LocationAndTypeFilter(t *testing.T) {
	r := jobEngine()

	rec, resp := testutil.MakeJSONListRequest(nil, seekerToken(t), r, "/job?location=bangkok&type=full_time", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	for _, j := range resp {
		assert.Equal(t, "full_time", j["employment_type"])
	}
}

func TestGetJobs_CompanyFilter(t *testing.T) {
	r := jobEngine()

	rec, resp := testutil.MakeJSONListRequest(nil, seekerToken(t), r, "/job?company=technova", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.NotEmpty(t, resp)
	titles := make([]string, 0, len(resp))
	for _, j := range resp {
		assert.Equal(t, database.TestCompany1.ID.String(), j["company_id"])
		title, _ := j["title"].(string)
		titles = append(titles, title)
	}
	assert.Contains(t, titles, database.TestJob1.Title)
	// TestJob2 belongs to the other company and must be filtered out
	assert.NotContains(t, titles, database.TestJob2.Title)
}

func TestGetJobByID_Success(t *testing.T) {
	r := jobEngine()

	rec, resp := testutil.MakeJSONRequest(nil, seekerToken(t), r,
		"/job/"+itoa(database.TestJob1.ID), http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, database.TestJob1.Title, resp["title"])
}

func TestGetJobByID_RoundTrip(t *testing.T) {
	r := jobEngine()
	token := recruiterToken(t)

	body := gin.H{
		"title":           "Site Reliability Engineer",
		"description":     "Own the on-call rotation",
		"requirements":    []string{"Go", "Terraform", "Incident response"},
		"benefits":        []string{"Stock options", "Gym membership"},
		"location":        "Khon Kaen",
		"salary_min":      80000,
		"salary_max":      110000,
		"employment_type": "full_time",
	}
	recCreate, created := testutil.MakeJSONRequest(body, token, r, "/job", http.MethodPost)
	assert.Equal(t, http.StatusCreated, recCreate.Code, recCreate.Body.String())
	id, ok := created["id"].(float64)
	assert.True(t, ok, "created job has no id")

	// Everything submitted comes back intact on a later fetch
	rec, resp := testutil.MakeJSONRequest(nil, seekerToken(t), r,
		"/job/"+itoa(uint(id)), http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Site Reliability Engineer", resp["title"])
	assert.Equal(t, "Own the on-call rotation", resp["description"])
	assert.Equal(t, []interface{}{"Go", "Terraform", "Incident response"}, resp["requirements"])
	assert.Equal(t, []interface{}{"Stock options", "Gym membership"}, resp["benefits"])
	assert.Equal(t, "Khon Kaen", resp["location"])
	assert.Equal(t, float64(80000), resp["salary_min"])
	assert.Equal(t, float64(110000), resp["salary_max"])
	assert.Equal(t, "full_time", resp["employment_type"])
}

func TestGetJobByID_NotFound(t *testing.T) {
	r := jobEngine()

	rec, resp := testutil.MakeJSONRequest(nil, seekerToken(t), r, "/job/999999", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job post not found", resp["error"])
}

func TestGetJobByID_NotAnInteger(t *testing.T) {
	r := jobEngine()

	rec, _ := testutil.MakeJSONRequest(nil, seekerToken(t), r, "/job/abc", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditJob_Owner(t *testing.T) {
	r := jobEngine()
	token := recruiterToken(t)

	created := createJobForTest(t, r, token, "Editable Role", "Before edit")

	body := gin.H{
		"title":       "Editable Role",
		"description": "After edit",
		"location":    "Phuket",
	}
	rec, resp := testutil.MakeJSONRequest(body, token, r, "/job/"+itoa(created), http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "After edit", resp["description"])
	assert.Equal(t, "Phuket", resp["location"])
}

func TestEditJob_NotOwner(t *testing.T) {
	r := jobEngine()

	created := createJobForTest(t, r, recruiterToken(t), "Locked Role", "Owned by recruiter one")

	otherToken, err := auth.GetAccessToken(t, testDB, database.TestUserRecruiter2.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	body := gin.H{
		"title":       "Hijacked",
		"description": "Should not happen",
	}
	rec, resp := testutil.MakeJSONRequest(body, otherToken, r, "/job/"+itoa(created), http.MethodPatch)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, resp["error"], "not allowed")
}

func TestDeactivateJob(t *testing.T) {
	r := jobEngine()
	token := recruiterToken(t)

	created := createJobForTest(t, r, token, "Short Lived Role", "Deactivated right after posting")

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/job/"+itoa(created), http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Job post deactivated", resp["message"])

	// Gone from the active listing but the row survives
	var job model.Job
	assert.NoError(t, testDB.Where("id = ?", created).First(&job).Error)
	assert.False(t, job.IsActive)

	recList, list := testutil.MakeJSONListRequest(nil, token, r, "/job?search=Short+Lived", http.MethodGet)
	assert.Equal(t, http.StatusOK, recList.Code)
	assert.Empty(t, list)
}

func TestDeactivateJob_NotOwner(t *testing.T) {
	r := jobEngine()

	otherToken, err := auth.GetAccessToken(t, testDB, database.TestUserRecruiter2.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, _ := testutil.MakeJSONRequest(nil, otherToken, r, "/job/"+itoa(database.TestJob1.ID), http.MethodDelete)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// createJobForTest posts a job as the given recruiter and returns its id.
func createJobForTest(t *testing.T, r *gin.Engine, token, title, description string) uint {
	t.Helper()
	body := gin.H{"title": title, "description": description}
	rec, resp := testutil.MakeJSONRequest(body, token, r, "/job", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id, ok := resp["id"].(float64)
	assert.True(t, ok, "created job has no id")
	return uint(id)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
