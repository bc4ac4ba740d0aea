package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// roundTripFunc intercepts the Discord session's REST calls
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// testContext wires a fake API, a session with intercepted HTTP and a
// client pointed at the fake API.
type testContext struct {
	Server    *httptest.Server
	Mux       *http.ServeMux
	APIClient *APIClient
	Session   *discordgo.Session

	mu        sync.Mutex
	deferred  int
	edits     []discordgo.WebhookEdit
	sentEmbed []*discordgo.MessageEmbed
}

func setupTestContext(t *testing.T) *testContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewAPIClient(server.URL, "test-api-key")
	client.retryDelay = time.Millisecond

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	tc := &testContext{Server: server, Mux: mux, APIClient: client, Session: session}
	session.Client = &http.Client{Transport: roundTripFunc(tc.capture)}
	return tc
}

func (tc *testContext) capture(req *http.Request) (*http.Response, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}

	switch {
	case strings.HasSuffix(req.URL.Path, "/callback"):
		tc.deferred++
	case req.Method == http.MethodPatch && strings.HasSuffix(req.URL.Path, "/messages/@original"):
		var edit discordgo.WebhookEdit
		_ = json.Unmarshal(body, &edit)
		tc.edits = append(tc.edits, edit)
	case req.Method == http.MethodPost && strings.Contains(req.URL.Path, "/channels/"):
		var msg discordgo.MessageSend
		_ = json.Unmarshal(body, &msg)
		tc.sentEmbed = append(tc.sentEmbed, msg.Embeds...)
	}

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Request:    req,
	}, nil
}

// lastEdit returns the final edit of the deferred response
func (tc *testContext) lastEdit(t *testing.T) discordgo.WebhookEdit {
	t.Helper()
	tc.mu.Lock()
	defer tc.mu.Unlock()
	require.NotEmpty(t, tc.edits, "no response edit captured")
	return tc.edits[len(tc.edits)-1]
}

func commandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:    "interaction-1",
		AppID: "app-1",
		Token: "token-1",
		Type:  discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: opts,
		},
	}}
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func jsonDecode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
