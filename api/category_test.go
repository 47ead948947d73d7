package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gastos/database"
	"gastos/models"
	"gastos/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockStore 创建基于 sqlmock 的测试 Store
func setupMockStore(t *testing.T) (*database.Store, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		TranslateError:       true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return database.NewWithDB(db), mock
}

// setupCategoryRouter 构建分类路由
func setupCategoryRouter(store *database.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCategoryHandler(service.NewReference(store))
	r := gin.New()
	r.GET("/categorias", h.List)
	r.POST("/categorias", h.Create)
	r.DELETE("/categorias/:id", h.Delete)
	return r
}

func TestCategoryListEndpoint(t *testing.T) {
	store, mock := setupMockStore(t)
	r := setupCategoryRouter(store)

	mock.ExpectQuery("SELECT \\* FROM `categorias` ORDER BY nome ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "cor"}).
			AddRow(1, "Alimentação", "#e74c3c").
			AddRow(2, "Transporte", "#3498db"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/categorias", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// 响应是裸数组，不是包装对象
	var list []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Alimentação", list[0].Name)
}

func TestCategoryCreateValidation(t *testing.T) {
	store, _ := setupMockStore(t)
	r := setupCategoryRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/categorias", strings.NewReader(`{"cor":"#fff"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), KindValidation)
}

func TestCategoryCreateDuplicate(t *testing.T) {
	store, mock := setupMockStore(t)
	r := setupCategoryRouter(store)

	mock.ExpectQuery("SELECT \\* FROM `categorias` WHERE nome = \\?").
		WithArgs("Lazer", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "cor"}).
			AddRow(3, "Lazer", "#9b59b6"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/categorias", strings.NewReader(`{"nome":"Lazer"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), KindDuplicate)
}

func TestCategoryDeleteInUse(t *testing.T) {
	store, mock := setupMockStore(t)
	r := setupCategoryRouter(store)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `gastos` WHERE categoria_id = \\?").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/categorias/5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), KindInUse)
	assert.Contains(t, w.Body.String(), "3")
}

func TestCategoryDeleteNotFound(t *testing.T) {
	store, mock := setupMockStore(t)
	r := setupCategoryRouter(store)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `gastos` WHERE categoria_id = \\?").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `categorias`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/categorias/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), KindNotFound)
}

func TestCategoryDelete(t *testing.T) {
	store, mock := setupMockStore(t)
	r := setupCategoryRouter(store)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `gastos` WHERE categoria_id = \\?").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `categorias`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/categorias/5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted": 1}`, w.Body.String())
}
