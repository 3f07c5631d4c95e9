package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// MockStatusHandler is a mock implementation of StatusHandler.
type MockStatusHandler struct{}

func (h *MockStatusHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

func (h *MockStatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"upcoming":{}}`))
}

func (h *MockStatusHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"rules":{}}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	muxRouter := mux.NewRouter()
	appRouter := NewRouter(&MockStatusHandler{}, muxRouter)
	appRouter.RegisterRoutes()

	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   "pong",
		},
		{
			name:       "Status Route",
			method:     "GET",
			path:       "/v1/status",
			statusCode: http.StatusOK,
			response:   `{"upcoming":{}}`,
		},
		{
			name:       "Schedule Route",
			method:     "GET",
			path:       "/v1/schedule",
			statusCode: http.StatusOK,
			response:   `{"rules":{}}`,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Wrong Method",
			method:     "POST",
			path:       "/ping",
			statusCode: http.StatusMethodNotAllowed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			muxRouter.ServeHTTP(rr, req)

			assert.Equal(t, test.statusCode, rr.Code)
			if test.response != "" {
				assert.Equal(t, test.response, rr.Body.String())
			}
		})
	}
}
