package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestISOTimestamp(t *testing.T) {
	ts := time.Date(2025, 3, 4, 5, 6, 7, 89_000_000, time.FixedZone("MSK", 3*3600))
	assert.Equal(t, "2025-03-04T02:06:07.089Z", ISOTimestamp(ts))
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]int{"n": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"n":1}`, rec.Body.String())
}

func TestWriteJSON_NoBodyStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusNoContent, map[string]int{"n": 1})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestWriteInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteInternalError(rec, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error","message":"boom"}`, rec.Body.String())
}

func TestElapsed(t *testing.T) {
	assert.GreaterOrEqual(t, Elapsed(time.Now().Add(-20*time.Millisecond)), int64(20))
	assert.Equal(t, int64(0), Elapsed(time.Now().Add(time.Hour)))
}
