package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetJSON(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-endpoint", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"message": "success"})
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, zap.NewNop())
	var response map[string]string

	err := client.GetJSON(context.Background(), "/test-endpoint", &response)
	require.NoError(t, err)
	assert.Equal(t, "success", response["message"])
}

func TestGetJSON_ErrorStatus(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, zap.NewNop())
	err := client.GetJSON(context.Background(), "/bad", nil)
	assert.Error(t, err)
}

func TestGetJSON_MalformedBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, zap.NewNop())
	var response map[string]string
	err := client.GetJSON(context.Background(), "/", &response)
	assert.Error(t, err)
}

func TestPostForm(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "49", r.PostForm.Get("unit"))
		w.Write([]byte("<response/>"))
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, zap.NewNop())

	form := url.Values{}
	form.Set("unit", "49")
	body, err := client.PostForm(context.Background(), "", form)
	require.NoError(t, err)
	assert.Equal(t, "<response/>", string(body))
}

func TestPostJSON_ReturnsStatus(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "hi", payload["text"])
		w.WriteHeader(http.StatusAccepted)
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, zap.NewNop())

	_, status, err := client.PostJSON(context.Background(), "/post", map[string]string{"text": "hi"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
}
