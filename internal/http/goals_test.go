package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGoalProgressUnknownGoalIs404(t *testing.T) {
	mock := mockDB(t)
	s := testServer(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "goals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	w := httptest.NewRecorder()
	c := authedCtx(w, 1)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/goals/7/progress",
		strings.NewReader(`{"amount":50}`))
	c.Request.Header.Set("Content-Type", "application/json")

	s.addGoalProgress(c)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddGoalProgressSaveFailureIs500(t *testing.T) {
	mock := mockDB(t)
	s := testServer(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "goals"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "name", "target_amount", "current_amount", "status"}).
			AddRow(7, 1, "New Car", 1000.0, 100.0, "active"))
	mock.ExpectExec(`UPDATE "goals"`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	w := httptest.NewRecorder()
	c := authedCtx(w, 1)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/goals/7/progress",
		strings.NewReader(`{"amount":50}`))
	c.Request.Header.Set("Content-Type", "application/json")

	s.addGoalProgress(c)

	assert.Equal(t, 500, w.Code, "a lost write must not be reported as goal not found")
	require.NoError(t, mock.ExpectationsWereMet())
}
