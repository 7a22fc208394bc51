package maintenance_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/Codedeepakyadav/RentalXpert/handlers/auth"
	"github.com/Codedeepakyadav/RentalXpert/handlers/maintenance"
	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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
	require.NoError(t, db.AutoMigrate(&models.Owner{}, &models.Property{}, &models.Tenant{}, &models.MaintenanceRequest{}))

	utils.DB = db
	utils.JwtSecret = []byte("test-secret")

	r := gin.New()
	protected := r.Group("/")
	protected.Use(auth.AuthMiddleware())
	protected.GET("/maintenance", maintenance.GetMaintenanceRequests)
	protected.POST("/add_maintenance", maintenance.AddMaintenanceRequest)

	return r
}

func createOwner(t *testing.T, username, email string) (models.Owner, string) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	owner := models.Owner{Username: username, Email: email, PasswordHash: string(hash)}
	require.NoError(t, utils.DB.Create(&owner).Error)

	token, err := utils.GenerateAccessToken(owner.ID)
	require.NoError(t, err)

	return owner, token
}

func createProperty(t *testing.T, ownerID uint) models.Property {
	property := models.Property{Name: "Test Property", MonthlyRent: 1000, OwnerID: ownerID}
	require.NoError(t, utils.DB.Create(&property).Error)
	return property
}

func doForm(r *gin.Engine, path, token string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddMaintenanceRequestOpensByDefault(t *testing.T) {
	r := setupRouter(t)
	owner, token := createOwner(t, "alice", "alice@example.com")
	property := createProperty(t, owner.ID)

	w := doForm(r, "/add_maintenance", token, url.Values{
		"property_id": {strconv.FormatUint(uint64(property.ID), 10)},
		"issue_type":  {"plumbing"},
		"description": {"Leaking kitchen tap"},
		"priority":    {"high"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var request models.MaintenanceRequest
	require.NoError(t, utils.DB.First(&request).Error)
	assert.Equal(t, "open", request.Status)
	assert.Nil(t, request.ResolvedAt)
}

func TestMaintenanceScopedToOwner(t *testing.T) {
	r := setupRouter(t)
	ownerA, tokenA := createOwner(t, "alice", "alice@example.com")
	_, tokenB := createOwner(t, "bob", "bob@example.com")
	property := createProperty(t, ownerA.ID)

	request := models.MaintenanceRequest{PropertyID: property.ID, IssueType: "hvac", Status: "open"}
	require.NoError(t, utils.DB.Create(&request).Error)

	list := func(token string) []models.MaintenanceRequest {
		req := httptest.NewRequest(http.MethodGet, "/maintenance", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Requests []models.MaintenanceRequest `json:"maintenance_requests"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Requests
	}

	assert.Len(t, list(tokenA), 1)
	assert.Empty(t, list(tokenB))
}

func TestAddMaintenanceForeignProperty(t *testing.T) {
	r := setupRouter(t)
	_, tokenA := createOwner(t, "alice", "alice@example.com")
	ownerB, _ := createOwner(t, "bob", "bob@example.com")
	propertyB := createProperty(t, ownerB.ID)

	w := doForm(r, "/add_maintenance", tokenA, url.Values{
		"property_id": {strconv.FormatUint(uint64(propertyB.ID), 10)},
		"issue_type":  {"plumbing"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	utils.DB.Model(&models.MaintenanceRequest{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
