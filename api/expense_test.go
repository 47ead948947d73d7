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
)

var expenseColumns = []string{
	"id", "descricao", "valor", "data_gasto",
	"categoria_id", "categoria_nome", "categoria_cor",
	"tipo_pagamento_id", "tipo_pagamento_nome", "tipo_pagamento_icone", "tipo_pagamento_cor",
	"criado_em", "atualizado_em",
}

func setupExpenseRouter(store *database.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewExpenseHandler(service.NewExpenses(store))
	r := gin.New()
	r.GET("/gastos", h.List)
	r.POST("/gastos", h.Create)
	r.PUT("/gastos/:id", h.Update)
	r.DELETE("/gastos/:id", h.Delete)
	return r
}

func TestExpenseListEndpoint(t *testing.T) {
	store, mock := setupMockStore(t)
	r := setupExpenseRouter(store)

	mock.ExpectQuery("SELECT \\* FROM `gastos` WHERE data_gasto >= \\? AND data_gasto < \\? ORDER BY data_gasto DESC").
		WithArgs("2024-03-01", "2024-04-01").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(1, "Almoço", "12.50", "2024-03-15", 1, "Alimentação", "#e74c3c", 1, "Pix", "📱", "#1abc9c", nil, nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/gastos?mes=3&ano=2024", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var list []models.Expense
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Almoço", list[0].Description)
	assert.Equal(t, "Alimentação", list[0].Category.Name)
	// valor 输出为 JSON 数字
	assert.Contains(t, w.Body.String(), `"valor":12.5`)
}

func TestExpenseListInvalidMonth(t *testing.T) {
	store, _ := setupMockStore(t)
	r := setupExpenseRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/gastos?mes=13&ano=2024", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), KindValidation)
}

func TestExpenseCreateEndpoint(t *testing.T) {
	store, mock := setupMockStore(t)
	r := setupExpenseRouter(store)

	mock.ExpectQuery("SELECT \\* FROM `categorias` WHERE `categorias`.`id` = \\?").
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "cor"}).
			AddRow(1, "Alimentação", "#e74c3c"))
	mock.ExpectQuery("SELECT \\* FROM `tipos_pagamento` WHERE `tipos_pagamento`.`id` = \\?").
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "icone", "cor"}).
			AddRow(1, "Pix", "📱", "#1abc9c"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `gastos`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectCommit()

	body := `{"descricao":"Almoço","valor":12.50,"categoria_id":1,"tipo_pagamento_id":1,"data_gasto":"2024-03-15"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/gastos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var exp models.Expense
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exp))
	assert.Equal(t, uint(10), exp.ID)
	assert.Equal(t, "Alimentação", exp.Category.Name)
	assert.Equal(t, "📱", exp.PaymentType.Icon)
}

func TestExpenseCreateUnknownCategory(t *testing.T) {
	store, mock := setupMockStore(t)
	r := setupExpenseRouter(store)

	mock.ExpectQuery("SELECT \\* FROM `categorias` WHERE `categorias`.`id` = \\?").
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "cor"}))

	body := `{"descricao":"Almoço","valor":12.50,"categoria_id":99,"tipo_pagamento_id":1,"data_gasto":"2024-03-15"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/gastos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), KindNotFound)
}

func TestExpenseCreateInvalidDate(t *testing.T) {
	store, _ := setupMockStore(t)
	r := setupExpenseRouter(store)

	body := `{"descricao":"Almoço","valor":12.50,"categoria_id":1,"tipo_pagamento_id":1,"data_gasto":"15/03/2024"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/gastos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), KindValidation)
}

func TestExpenseDeleteNotFound(t *testing.T) {
	store, mock := setupMockStore(t)
	r := setupExpenseRouter(store)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `gastos`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/gastos/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
