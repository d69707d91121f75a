package http

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fintrack/internal/config"
	"fintrack/internal/database"
)

// mockDB swaps the package-level connection for a sqlmock-backed one so
// handler error paths can be driven deterministically.
func mockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn, PreferSimpleProtocol: true}),
		&gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	prev := database.DB
	database.DB = gdb
	t.Cleanup(func() {
		database.DB = prev
		conn.Close()
	})
	return mock
}

func testServer(t *testing.T) *Server {
	t.Helper()

	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(expenseSchemaJSON))
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Server{cfg: &config.Config{JWTSecret: "test"}, log: log, expenseSchema: schema}
}

func authedCtx(w *httptest.ResponseRecorder, uid uint) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", uid)
	return c
}
