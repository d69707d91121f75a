package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"fintrack/internal/config"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewServer(&config.Config{AllowOrigins: "*", JWTSecret: "test"}, log, nil, nil)
}

func TestHealth(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/v1/expenses", nil))

	assert.Equal(t, 204, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/budgets", nil))

	assert.Equal(t, 401, w.Code)
}

func TestExpenseSchema(t *testing.T) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(expenseSchemaJSON))
	require.NoError(t, err)

	cases := []struct {
		name    string
		payload string
		valid   bool
	}{
		{"complete", `{"title":"Lunch","amount":12.5,"date":"2025-08-01","category_id":2}`, true},
		{"no category", `{"title":"Lunch","amount":12.5,"date":"2025-08-01"}`, true},
		{"null category", `{"title":"Lunch","amount":12.5,"date":"2025-08-01","category_id":null}`, true},
		{"zero amount", `{"title":"Lunch","amount":0,"date":"2025-08-01"}`, false},
		{"negative amount", `{"title":"Lunch","amount":-3,"date":"2025-08-01"}`, false},
		{"missing title", `{"amount":12.5,"date":"2025-08-01"}`, false},
		{"empty title", `{"title":"","amount":12.5,"date":"2025-08-01"}`, false},
		{"bad date", `{"title":"Lunch","amount":12.5,"date":"01/08/2025"}`, false},
		{"unknown field", `{"title":"Lunch","amount":12.5,"date":"2025-08-01","mode":"card"}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := schema.Validate(gojsonschema.NewStringLoader(tc.payload))
			require.NoError(t, err)
			assert.Equal(t, tc.valid, res.Valid())
		})
	}
}
