package space

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	spaceUseCase "github.com/modeemi/spacestatus/application/usecases/space"
	"github.com/modeemi/spacestatus/domain/model"
	"github.com/modeemi/spacestatus/infrastructure/logger"
	"github.com/modeemi/spacestatus/infrastructure/persistence/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Space{}, &model.SpaceEvent{}))

	log := logger.NewNopLogger()
	spaces := repository.NewSpaceRepository(db, log)
	events := repository.NewSpaceEventRepository(db, log)
	usecase := spaceUseCase.NewSpaceUseCase(spaces, events, log)
	controller := NewSpaceController(usecase)

	router := gin.New()
	group := router.Group("/space")
	{
		group.GET("/by_id/:id", controller.GetByID)
		group.GET("/by_name/:name", controller.GetByName)
		group.GET("/:name/space.json", controller.SpaceJSON)
	}
	return router, db
}

func seedSpace(t *testing.T, db *gorm.DB) model.Space {
	t.Helper()
	space := model.Space{
		Name:             "TestSpace",
		PasswordHash:     "x",
		Logo:             "https://example.org/logo.png",
		URL:              "https://example.org",
		Address:          "Korkeakoulunkatu 1, Tampere",
		Lat:              61.45,
		Lon:              23.85,
		ContactEmail:     "board@example.org",
		TelegramBotToken: "secret-token",
	}
	require.NoError(t, db.Create(&space).Error)
	return space
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestGetByID(t *testing.T) {
	router, db := newTestRouter(t)
	space := seedSpace(t, db)

	resp := get(t, router, fmt.Sprintf("/space/by_id/%d", space.ID))
	require.Equal(t, http.StatusOK, resp.Code)

	var body SpaceResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "TestSpace", body.Name)
	assert.Equal(t, 61.45, body.Lat)

	assert.NotContains(t, resp.Body.String(), "secret-token")
	assert.NotContains(t, resp.Body.String(), "password")
}

func TestGetByIDNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := get(t, router, "/space/by_id/999")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetByIDNonInteger(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := get(t, router, "/space/by_id/abc")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestGetByName(t *testing.T) {
	router, db := newTestRouter(t)
	seedSpace(t, db)

	resp := get(t, router, "/space/by_name/TestSpace")
	require.Equal(t, http.StatusOK, resp.Code)

	var body SpaceResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "TestSpace", body.Name)

	resp = get(t, router, "/space/by_name/Unknown")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSpaceJSONWithoutEvents(t *testing.T) {
	router, db := newTestRouter(t)
	seedSpace(t, db)

	resp := get(t, router, "/space/TestSpace/space.json")
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	state := body["state"].(map[string]any)
	assert.Equal(t, false, state["open"])
	assert.Nil(t, state["lastchange"])
	assert.Equal(t, []any{"15"}, body["api_compatibility"])
}

func TestSpaceJSONReflectsLatestEvent(t *testing.T) {
	router, db := newTestRouter(t)
	space := seedSpace(t, db)

	opened := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	event := model.SpaceEvent{SpaceID: space.ID, Timestamp: opened, State: model.StateOpen}
	require.NoError(t, db.Create(&event).Error)

	resp := get(t, router, "/space/TestSpace/space.json")
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	state := body["state"].(map[string]any)
	assert.Equal(t, true, state["open"])
	assert.Equal(t, float64(opened.Unix()), state["lastchange"])

	// Reads are idempotent, a second fetch sees the same state.
	again := get(t, router, "/space/TestSpace/space.json")
	assert.JSONEq(t, resp.Body.String(), again.Body.String())
}
