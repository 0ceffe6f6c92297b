package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/markoco14/ennytime-sub000/internal/constants"
	"github.com/markoco14/ennytime-sub000/internal/database"
	"github.com/markoco14/ennytime-sub000/internal/middleware"
	"github.com/markoco14/ennytime-sub000/internal/models"
	"github.com/markoco14/ennytime-sub000/internal/repository"
	"github.com/markoco14/ennytime-sub000/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.ShiftType{},
		&models.ShiftAssignment{},
		&models.Share{},
		&models.Session{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	shiftTypeRepo := repository.NewShiftTypeRepository(db)
	assignmentRepo := repository.NewShiftAssignmentRepository(db)
	shareRepo := repository.NewShareRepository(db)

	authService := services.NewAuthService(userRepo, sessionRepo)
	shiftService := services.NewShiftService(shiftTypeRepo, assignmentRepo)
	shareService := services.NewShareService(shareRepo, userRepo)
	calendarService := services.NewCalendarService(assignmentRepo, shareService)

	authHandler := NewAuthHandler(authService)
	shiftTypeHandler := NewShiftTypeHandler(shiftService)
	assignmentHandler := NewShiftAssignmentHandler(shiftService)
	shareHandler := NewShareHandler(shareService)
	calendarHandler := NewCalendarHandler(calendarService, time.Sunday)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	requireAuth := middleware.RequireAuth(authService)

	api := r.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
	auth.PATCH("/me", requireAuth, authHandler.UpdateProfile)

	shiftTypes := api.Group("/shift-types")
	shiftTypes.Use(requireAuth)
	shiftTypes.POST("", shiftTypeHandler.CreateShiftType)
	shiftTypes.GET("", shiftTypeHandler.ListShiftTypes)
	shiftTypes.PUT("/:id", shiftTypeHandler.RenameShiftType)
	shiftTypes.DELETE("/:id", shiftTypeHandler.DeleteShiftType)

	assignments := api.Group("/shift-assignments")
	assignments.Use(requireAuth)
	assignments.POST("", assignmentHandler.CreateAssignment)
	assignments.POST("/toggle", assignmentHandler.ToggleAssignment)
	assignments.GET("", assignmentHandler.ListAssignments)
	assignments.DELETE("/:id", assignmentHandler.DeleteAssignment)

	shares := api.Group("/shares")
	shares.Use(requireAuth)
	shares.POST("", shareHandler.CreateShare)
	shares.GET("", shareHandler.GetOutgoingShare)
	shares.GET("/partner", shareHandler.GetPartner)
	shares.DELETE("/:id", shareHandler.DeleteShare)

	api.GET("/calendar/:year/:month", requireAuth, calendarHandler.GetMonthView)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{
		db:          db,
		router:      r,
		authService: authService,
	}
}

// doJSON issues a request against the test router. cookies carries the
// session across requests, the way a browser would.
func (env testEnv) doJSON(t *testing.T, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// signupUser registers a user over HTTP and returns the session cookies.
func (env testEnv) signupUser(t *testing.T, email, username string) []*http.Cookie {
	t.Helper()

	w := env.doJSON(t, http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    email,
		"password": "supersecret",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")

	if username != "" {
		w = env.doJSON(t, http.MethodPatch, "/api/auth/me", map[string]string{
			"username": username,
		}, cookies)
		require.Equal(t, http.StatusOK, w.Code)
	}

	return cookies
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
