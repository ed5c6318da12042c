package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cutline/verifymail/pkg/mailer"
)

type capturedRequest struct {
	Path    string
	Auth    string
	Payload map[string]any
}

func newFakeAPI(t *testing.T, status int) (*httptest.Server, func() []capturedRequest) {
	t.Helper()

	var (
		mu   sync.Mutex
		reqs []capturedRequest
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)

		mu.Lock()
		reqs = append(reqs, capturedRequest{
			Path:    r.URL.Path,
			Auth:    r.Header.Get("Authorization"),
			Payload: payload,
		})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status >= 400 {
			_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid ` + "`to`" + ` field."}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	}))
	t.Cleanup(srv.Close)

	return srv, func() []capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]capturedRequest(nil), reqs...)
	}
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	srv, requests := newFakeAPI(t, http.StatusOK)

	sender, err := New(Config{APIKey: "re_test", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	err = sender.Send(context.Background(), &mailer.Email{
		From:    "CutLine App <noreply@cutline.app>",
		To:      []string{"alice@example.com"},
		Subject: "Your CutLine Verification Code",
		Text:    "Your CutLine verification code is: 483921\nThis code will expire in 5 minutes.",
		Headers: map[string]string{mailer.HeaderEntityRefID: "ref-1"},
		Tags:    mailer.SimpleTags("verification"),
	})
	require.NoError(t, err)

	got := requests()
	require.Len(t, got, 1)
	require.Equal(t, "/emails", got[0].Path)
	require.Equal(t, "Bearer re_test", got[0].Auth)
	require.Equal(t, "CutLine App <noreply@cutline.app>", got[0].Payload["from"])
	require.Equal(t, []any{"alice@example.com"}, got[0].Payload["to"])
	require.Equal(t, "Your CutLine Verification Code", got[0].Payload["subject"])
	require.Equal(t, "Your CutLine verification code is: 483921\nThis code will expire in 5 minutes.", got[0].Payload["text"])
	require.Equal(t, map[string]any{mailer.HeaderEntityRefID: "ref-1"}, got[0].Payload["headers"])
}

func TestSender_Send_DefaultFrom(t *testing.T) {
	t.Parallel()

	srv, requests := newFakeAPI(t, http.StatusOK)

	sender, err := New(Config{
		APIKey:      "re_test",
		BaseURL:     srv.URL + "/",
		SenderEmail: "noreply@cutline.app",
		SenderName:  "CutLine App",
	})
	require.NoError(t, err)

	require.NoError(t, sender.Send(context.Background(), &mailer.Email{To: []string{"bob@example.com"}, Text: "hi"}))

	got := requests()
	require.Len(t, got, 1)
	require.Equal(t, "CutLine App <noreply@cutline.app>", got[0].Payload["from"])
}

func TestSender_Send_ProviderRejects(t *testing.T) {
	t.Parallel()

	srv, requests := newFakeAPI(t, http.StatusUnprocessableEntity)

	sender, err := New(Config{APIKey: "re_test", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	err = sender.Send(context.Background(), &mailer.Email{
		From: "CutLine App <noreply@cutline.app>",
		To:   []string{""},
		Text: "code",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "resend: failed to send email")
	require.Len(t, requests(), 1, "exactly one attempt, no retry")
}

func TestNew_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	_, err := New(Config{APIKey: "re_test", BaseURL: "://bad"})
	require.Error(t, err)
}

func TestSender_Check(t *testing.T) {
	t.Parallel()

	withKey, err := New(Config{APIKey: "re_test"})
	require.NoError(t, err)
	require.NoError(t, withKey.Check(context.Background()))

	withoutKey, err := New(Config{})
	require.NoError(t, err)
	require.ErrorIs(t, withoutKey.Check(context.Background()), ErrMissingAPIKey)
}

func TestTagValue(t *testing.T) {
	t.Parallel()

	require.Equal(t, "true", tagValue(struct{}{}))
	require.Equal(t, "true", tagValue(nil))
	require.Equal(t, "signup", tagValue("signup"))
	require.Equal(t, "false", tagValue(false))
	require.Equal(t, "3", tagValue(3))
	require.Equal(t, "1.5", tagValue(1.5))
}
