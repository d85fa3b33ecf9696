package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_WriteHeader_FirstWins(t *testing.T) {
	tests := []struct {
		name        string
		statusCodes []int
		want        int
	}{
		{name: "single", statusCodes: []int{http.StatusCreated}, want: http.StatusCreated},
		{name: "double call", statusCodes: []int{http.StatusAccepted, http.StatusBadRequest}, want: http.StatusAccepted},
		{name: "triple call", statusCodes: []int{http.StatusOK, http.StatusCreated, http.StatusNotFound}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.want, w.Status())
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n1, err := w.Write([]byte("first"))
	assert.NoError(t, err)
	n2, err := w.Write([]byte("second"))
	assert.NoError(t, err)

	assert.Equal(t, 5, n1)
	assert.Equal(t, 6, n2)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, http.StatusOK, w.Status())
	assert.Equal(t, "firstsecond", rr.Body.String())
}

func TestResponseWriter_InitialState(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.False(t, w.wroteHeader)
	assert.Zero(t, w.size)
	assert.Equal(t, http.StatusOK, w.Status())
}

func TestResponseWriter_FlushAndUnwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Flush()

	assert.True(t, rr.Flushed)
	assert.True(t, w.wroteHeader)
	assert.Same(t, rr, w.Unwrap())
}
