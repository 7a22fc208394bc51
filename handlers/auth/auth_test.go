package auth_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Codedeepakyadav/RentalXpert/handlers/auth"
	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Owner{}, &models.Property{}))

	utils.DB = db
	utils.JwtSecret = []byte("test-secret")

	r := gin.New()
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)

	protected := r.Group("/")
	protected.Use(auth.AuthMiddleware())
	protected.GET("/logout", auth.Logout)

	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterThenLogin(t *testing.T) {
	r := setupRouter(t)

	w := postForm(r, "/register", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"s3cretpw"},
		"phone":    {"+15550001111"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var owner models.Owner
	require.NoError(t, utils.DB.Where("email = ?", "alice@example.com").First(&owner).Error)
	assert.Equal(t, "alice", owner.Username)
	assert.NotEqual(t, "s3cretpw", owner.PasswordHash)

	w = postForm(r, "/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"s3cretpw"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupRouter(t)

	form := url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"s3cretpw"},
	}
	w := postForm(r, "/register", form)
	require.Equal(t, http.StatusCreated, w.Code)

	form.Set("username", "alice2")
	w = postForm(r, "/register", form)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	utils.DB.Model(&models.Owner{}).Where("email = ?", "alice@example.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterMissingFields(t *testing.T) {
	r := setupRouter(t)

	w := postForm(r, "/register", url.Values{
		"username": {"alice"},
		"password": {"s3cretpw"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	utils.DB.Model(&models.Owner{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupRouter(t)

	w := postForm(r, "/register", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"s3cretpw"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postForm(r, "/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"wrongpass"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postForm(r, "/login", url.Values{
		"email":    {"nobody@example.com"},
		"password": {"s3cretpw"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteWithValidToken(t *testing.T) {
	r := setupRouter(t)

	w := postForm(r, "/register", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"s3cretpw"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var owner models.Owner
	require.NoError(t, utils.DB.Where("email = ?", "alice@example.com").First(&owner).Error)
	token, err := utils.GenerateAccessToken(owner.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
