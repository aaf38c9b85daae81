package greenapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"idMessage": "wamid.99"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	id, err := c.SendMessage(context.Background(), "7103", "secret-token", "+972521234567", "Hi Dana")
	assert.NoError(t, err)
	assert.Equal(t, "wamid.99", id)

	assert.Equal(t, "/waInstance7103/sendMessage/secret-token", gotPath)
	assert.Equal(t, "972521234567@c.us", gotBody.ChatID)
	assert.Equal(t, "Hi Dana", gotBody.Message)
}

func TestSendMessage_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	_, err := c.SendMessage(context.Background(), "7103", "secret-token", "+972521234567", "Hi")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "green API error")
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, DefaultBaseURL, c.baseURL)

	c = NewClient("http://localhost:8080/")
	assert.Equal(t, "http://localhost:8080", c.baseURL)
}
