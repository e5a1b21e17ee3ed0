package app

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/DIMO-Network/ecobot/internal/config"
	"github.com/DIMO-Network/ecobot/internal/controllers/webhook"
	"github.com/DIMO-Network/ecobot/internal/messenger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// graphAPI is a fake Send API that records every request.
type graphAPI struct {
	server   *httptest.Server
	mu       sync.Mutex
	received []receivedMessage
	status   int
}

type receivedMessage struct {
	AccessToken string
	Request     messenger.SendRequest
}

func newGraphAPI(t *testing.T, status int) *graphAPI {
	t.Helper()
	g := &graphAPI{status: status}
	g.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req messenger.SendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		g.mu.Lock()
		g.received = append(g.received, receivedMessage{AccessToken: r.URL.Query().Get("access_token"), Request: req})
		g.mu.Unlock()
		w.WriteHeader(g.status)
	}))
	t.Cleanup(g.server.Close)
	return g
}

func (g *graphAPI) messages() []receivedMessage {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]receivedMessage(nil), g.received...)
}

func newTestSettings(graphURL string) *config.Settings {
	return &config.Settings{
		VerificationToken:         "verify-me",
		PageAccessToken:           "page-token",
		GraphAPIURL:               graphURL,
		SendTimeout:               time.Second,
		IntentConfidenceThreshold: 0.8,
	}
}

func TestCreateServers_EndToEnd(t *testing.T) {
	graph := newGraphAPI(t, http.StatusOK)
	servers, err := CreateServers(newTestSettings(graph.server.URL), zerolog.Nop())
	require.NoError(t, err)

	body := `{
		"object": "page",
		"entry": [{
			"id": "page-1",
			"time": 1458692752478,
			"messaging": [{
				"sender": {"id": "psid-1"},
				"recipient": {"id": "page-1"},
				"timestamp": 1458692752478,
				"message": {
					"mid": "mid.1",
					"text": "hola",
					"nlp": {"entities": {"greetings": [{"confidence": 0.95, "value": "true"}]}}
				}
			}]
		}, {
			"id": "page-1",
			"messaging": [{
				"sender": {"id": "psid-2"},
				"postback": {"title": "Open position-2", "payload": "trabajo.2"}
			}]
		}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := servers.App.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	servers.Dispatcher.Wait()

	received := graph.messages()
	require.Len(t, received, 2)
	byRecipient := map[string]messenger.SendRequest{}
	for _, msg := range received {
		assert.Equal(t, "page-token", msg.AccessToken)
		byRecipient[msg.Request.Recipient.ID] = msg.Request
	}

	greeting := byRecipient["psid-1"]
	require.NotNil(t, greeting.Message)
	require.NotNil(t, greeting.Message.Attachment)
	assert.Len(t, greeting.Message.Attachment.Payload.Elements[0].Buttons, 3)

	position := byRecipient["psid-2"]
	require.NotNil(t, position.Message)
	assert.Contains(t, position.Message.Text, "Open Position:2")
}

func TestCreateServers_DeliveryFailureStillAcknowledged(t *testing.T) {
	graph := newGraphAPI(t, http.StatusInternalServerError)
	servers, err := CreateServers(newTestSettings(graph.server.URL), zerolog.Nop())
	require.NoError(t, err)

	body := `{"object":"page","entry":[{"messaging":[{"sender":{"id":"psid-1"},"message":{"text":"hi"}}]}]}`
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := servers.App.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	servers.Dispatcher.Wait()
	assert.Len(t, graph.messages(), 1)
}

func TestCreateServers_NonPageObject(t *testing.T) {
	graph := newGraphAPI(t, http.StatusOK)
	servers, err := CreateServers(newTestSettings(graph.server.URL), zerolog.Nop())
	require.NoError(t, err)

	body := `{"object":"user","entry":[{"messaging":[{"sender":{"id":"psid-1"},"message":{"text":"hi"}}]}]}`
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := servers.App.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	servers.Dispatcher.Wait()
	assert.Empty(t, graph.messages())
}

func TestCreateServers_Routes(t *testing.T) {
	servers, err := CreateServers(newTestSettings("http://unused.localhost"), zerolog.Nop())
	require.NoError(t, err)

	t.Run("index", func(t *testing.T) {
		resp, err := servers.App.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, IndexMessage, string(body))
	})

	t.Run("health", func(t *testing.T) {
		resp, err := servers.App.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("verify", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/webhook?hub.mode=subscribe&hub.verify_token=verify-me&hub.challenge=42", nil)
		resp, err := servers.App.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "42", string(body))
	})
}

func TestCreateServers_SignedEvents(t *testing.T) {
	graph := newGraphAPI(t, http.StatusOK)
	settings := newTestSettings(graph.server.URL)
	settings.AppSecret = "app-secret"
	servers, err := CreateServers(settings, zerolog.Nop())
	require.NoError(t, err)

	body := []byte(`{"object":"page","entry":[{"messaging":[{"sender":{"id":"psid-1"},"postback":{"payload":"servicios"}}]}]}`)

	unsigned := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	unsigned.Header.Set("Content-Type", "application/json")
	resp, err := servers.App.Test(unsigned)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	signed := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	signed.Header.Set("Content-Type", "application/json")
	signed.Header.Set(webhook.SignatureHeader, "sha256="+hex.EncodeToString(webhook.Sign("app-secret", body)))
	resp, err = servers.App.Test(signed)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	servers.Dispatcher.Wait()
	received := graph.messages()
	require.Len(t, received, 1)
	assert.Equal(t, "*Team Enhacement:* Some inspiring text", received[0].Request.Message.Text)
}

func TestCreateServers_RedeliveryGuard(t *testing.T) {
	graph := newGraphAPI(t, http.StatusOK)
	settings := newTestSettings(graph.server.URL)
	settings.RedeliveryTTL = time.Minute
	servers, err := CreateServers(settings, zerolog.Nop())
	require.NoError(t, err)

	body := []byte(`{"object":"page","entry":[{"messaging":[{"sender":{"id":"psid-1"},"message":{"mid":"mid.1","text":"hi"}}]}]}`)
	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := servers.App.Test(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	servers.Dispatcher.Wait()
	assert.Len(t, graph.messages(), 1)
}
