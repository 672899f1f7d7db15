package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/wdpl/corporate-site-api/internal/constants"
	"github.com/wdpl/corporate-site-api/internal/database"
	"github.com/wdpl/corporate-site-api/internal/mailer"
	"github.com/wdpl/corporate-site-api/internal/middleware"
	"github.com/wdpl/corporate-site-api/internal/models"
	"github.com/wdpl/corporate-site-api/internal/repository"
	"github.com/wdpl/corporate-site-api/internal/services"
	"github.com/wdpl/corporate-site-api/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	store  *storage.MemoryStore
	mailer *mailer.LogMailer

	authService    *services.AuthService
	teamService    *services.TeamService
	galleryService *services.GalleryService
}

// setupTestEnv builds the full router over an in-memory database, the way
// the server wires it, with a cookie session store and a log-only mailer.
func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.AdminAccount{},
		&models.Department{},
		&models.TeamMember{},
		&models.Skill{},
		&models.JobPosting{},
		&models.Application{},
		&models.ContactSubmission{},
		&models.Testimonial{},
		&models.GalleryCategory{},
		&models.GalleryEvent{},
		&models.GalleryImage{},
		&models.AboutMilestone{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	objectStore := storage.NewMemoryStore()
	logMailer := mailer.NewLogMailer(zap.NewNop())

	accountRepo := repository.NewAccountRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	jobRepo := repository.NewJobRepository(db)
	contactRepo := repository.NewContactRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	siteRepo := repository.NewSiteRepository(db)

	authService := services.NewAuthService(accountRepo, logMailer, "test-reset-secret", "http://localhost:8080")
	teamService := services.NewTeamService(teamRepo)
	galleryService := services.NewGalleryService(galleryRepo, objectStore, zap.NewNop())

	authHandler := NewAuthHandler(authService)
	teamHandler := NewTeamHandler(teamService, objectStore)
	jobHandler := NewJobHandler(jobRepo, objectStore)
	contactHandler := NewContactHandler(contactRepo)
	testimonialHandler := NewTestimonialHandler(testimonialRepo, objectStore)
	galleryHandler := NewGalleryHandler(galleryService)
	siteHandler := NewSiteHandler(siteRepo)

	r := gin.New()
	sessionStore := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	api := r.Group("/api")
	{
		api.GET("/team", teamHandler.ListPublicTeam)
		api.GET("/careers", jobHandler.ListOpen)
		api.GET("/careers/:id", jobHandler.GetJob)
		api.POST("/careers/:id/apply", jobHandler.Apply)
		api.POST("/contact", contactHandler.Submit)
		api.GET("/testimonials", testimonialHandler.List)
		api.GET("/about/timeline", siteHandler.AboutTimeline)
		api.GET("/gallery/categories", galleryHandler.ListCategories)
		api.GET("/gallery/categories/:id/events", galleryHandler.ListCategoryEvents)
		api.GET("/gallery/events/:id/images", galleryHandler.ListEventImages)

		viewer := api.Group("/gallery/viewer")
		{
			viewer.POST("/event", galleryHandler.OpenViewer)
			viewer.DELETE("/event", galleryHandler.CloseViewer)
			viewer.POST("/open", galleryHandler.ViewerOpenImage)
			viewer.POST("/close", galleryHandler.ViewerCloseImage)
			viewer.POST("/next", galleryHandler.ViewerNext)
			viewer.POST("/prev", galleryHandler.ViewerPrev)
			viewer.POST("/zoom-in", galleryHandler.ViewerZoomIn)
			viewer.POST("/zoom-out", galleryHandler.ViewerZoomOut)
			viewer.POST("/zoom-reset", galleryHandler.ViewerZoomReset)
		}

		api.POST("/admin/auth/login", authHandler.Login)
		api.POST("/admin/auth/logout", authHandler.Logout)
		api.POST("/admin/auth/forgot", authHandler.ForgotPassword)
		api.POST("/admin/auth/reset", authHandler.ResetPassword)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(), middleware.RequireAdmin(authService))
		{
			admin.GET("/auth/me", authHandler.Me)

			admin.GET("/team/members", teamHandler.ListMembers)
			admin.POST("/team/members", teamHandler.CreateMember)
			admin.PUT("/team/members/:id", teamHandler.UpdateMember)
			admin.PATCH("/team/members/:id/active", teamHandler.ToggleMemberActive)
			admin.DELETE("/team/members/:id", teamHandler.DeleteMember)
			admin.GET("/team/departments", teamHandler.ListDepartments)
			admin.POST("/team/departments", teamHandler.CreateDepartment)
			admin.PATCH("/team/departments/:id/active", teamHandler.SetDepartmentActive)

			admin.GET("/jobs", jobHandler.ListAll)
			admin.POST("/jobs", jobHandler.Create)
			admin.PUT("/jobs/:id", jobHandler.Update)
			admin.PATCH("/jobs/:id/status", jobHandler.ToggleStatus)
			admin.DELETE("/jobs/:id", jobHandler.Delete)

			admin.GET("/contacts", contactHandler.List)
			admin.DELETE("/contacts/:id", contactHandler.Delete)

			admin.GET("/testimonials", testimonialHandler.List)
			admin.POST("/testimonials", testimonialHandler.Create)
			admin.PUT("/testimonials/:id", testimonialHandler.Update)
			admin.DELETE("/testimonials/:id", testimonialHandler.Delete)

			admin.GET("/gallery/categories", galleryHandler.ListCategories)
			admin.POST("/gallery/categories", galleryHandler.CreateCategory)
			admin.DELETE("/gallery/categories/:id", galleryHandler.DeleteCategory)
			admin.GET("/gallery/events", galleryHandler.ListEvents)
			admin.POST("/gallery/events", galleryHandler.CreateEvent)
			admin.DELETE("/gallery/events/:id", galleryHandler.DeleteEvent)
			admin.GET("/gallery/images", galleryHandler.ListImages)
			admin.POST("/gallery/images", galleryHandler.UploadImages)
			admin.DELETE("/gallery/images/:id", galleryHandler.DeleteImage)
		}
	}

	return testEnv{
		db:             db,
		router:         r,
		store:          objectStore,
		mailer:         logMailer,
		authService:    authService,
		teamService:    teamService,
		galleryService: galleryService,
	}
}

// seedUser creates a credential record with a bcrypt hash.
func seedUser(t *testing.T, db *gorm.DB, email, password string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Email: email, PasswordHash: string(hash)}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// seedAdmin creates a credential record together with its admins row.
func seedAdmin(t *testing.T, db *gorm.DB, email, password string) models.User {
	t.Helper()

	user := seedUser(t, db, email, password)
	require.NoError(t, db.Create(&models.AdminAccount{Email: email, Role: "admin"}).Error)
	return user
}

// doJSON performs one request, carrying any session cookies given.
func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// login signs the admin in and returns the session cookies.
func login(t *testing.T, r *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/admin/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
	return cookies
}

// multipartBody builds a multipart form with text fields and named files.
type filePart struct {
	field    string
	filename string
	content  string
}

func multipartBody(t *testing.T, fields map[string]string, files []filePart) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

// doMultipart performs one multipart request with session cookies.
func doMultipart(t *testing.T, r *gin.Engine, method, path string, fields map[string]string, files []filePart, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, fields, files)
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
