package verification_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cutline/verifymail/pkg/callable"
	"github.com/cutline/verifymail/pkg/logger"
	"github.com/cutline/verifymail/pkg/mailer"
	"github.com/cutline/verifymail/verification"
)

const (
	sender          = "CutLine App <noreply@cutline.app>"
	expectedSubject = "Your CutLine Verification Code"
)

// MockSender is a mock implementation of mailer.Sender.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *mailer.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func newDispatcher(t *testing.T, s mailer.Sender, logBuf *bytes.Buffer) *verification.Dispatcher {
	t.Helper()

	m := mailer.New(s, mailer.NewRenderer(verification.Templates()), mailer.Config{
		From:            sender,
		FallbackSubject: "Notification",
		DefaultLayout:   "base.html",
	})

	log := logger.NewNope()
	if logBuf != nil {
		log = logger.NewWithWriter(logBuf, logger.Config{})
	}
	return verification.NewDispatcher(m, verification.WithLogger(log))
}

func expectedText(code string) string {
	return "Your CutLine verification code is: " + code + "\nThis code will expire in 5 minutes."
}

func TestDispatch_Success(t *testing.T) {
	t.Parallel()

	s := &MockSender{}
	s.On("Send", mock.Anything, mock.MatchedBy(func(e *mailer.Email) bool {
		return e.From == sender &&
			len(e.To) == 1 && e.To[0] == "user@example.com" &&
			e.Subject == expectedSubject &&
			e.Text == expectedText("483921")
	})).Return(nil).Once()

	var logs bytes.Buffer
	d := newDispatcher(t, s, &logs)

	res, err := d.Dispatch(context.Background(), verification.Request{Email: "user@example.com", Code: "483921"})

	require.NoError(t, err)
	require.Equal(t, &verification.Result{Success: true}, res)
	s.AssertExpectations(t)
	s.AssertNumberOfCalls(t, "Send", 1)

	require.Contains(t, logs.String(), `"msg":"email sent"`)
	require.Contains(t, logs.String(), `"email":"user@example.com"`)
}

func TestDispatch_RenderedMessage(t *testing.T) {
	t.Parallel()

	var got *mailer.Email
	d := newDispatcher(t, mailer.SenderFunc(func(_ context.Context, e *mailer.Email) error {
		got = e
		return nil
	}), nil)

	_, err := d.Dispatch(context.Background(), verification.Request{Email: "a@b.co", Code: "000123"})
	require.NoError(t, err)

	require.Equal(t, expectedSubject, got.Subject)
	require.Equal(t, expectedText("000123"), got.Text)
	require.Contains(t, got.Text, "expire in 5 minutes")
	require.Contains(t, got.HTML, "000123")
	require.Contains(t, got.HTML, "<title>Your CutLine Verification Code</title>")
	require.NotEmpty(t, got.Headers[mailer.HeaderEntityRefID])
}

func TestDispatch_CodeIsNotInterpreted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code verification.Code
	}{
		{"empty", ""},
		{"template syntax", "{{.Code}}"},
		{"markup", "<b>12&34</b>"},
		{"emphasis", "12*34*"},
		{"code span", "`x`"},
		{"underscores", "a_b_"},
		{"spaces", " 12 34 "},
	}

	htmlEscape := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got *mailer.Email
			d := newDispatcher(t, mailer.SenderFunc(func(_ context.Context, e *mailer.Email) error {
				got = e
				return nil
			}), nil)

			_, err := d.Dispatch(context.Background(), verification.Request{Email: "a@b.co", Code: tt.code})
			require.NoError(t, err)
			require.Equal(t, expectedText(string(tt.code)), got.Text)
			if shown := strings.TrimSpace(string(tt.code)); shown != "" {
				require.Contains(t, got.HTML, htmlEscape.Replace(shown))
			}
		})
	}
}

type ctxKey struct{}

func TestDispatch_CancelledContextStillSends(t *testing.T) {
	t.Parallel()

	var (
		calls   int
		sendErr error
		value   any
	)
	d := newDispatcher(t, mailer.SenderFunc(func(ctx context.Context, _ *mailer.Email) error {
		calls++
		sendErr = ctx.Err()
		value = ctx.Value(ctxKey{})
		return nil
	}), nil)

	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "req-1"))
	cancel()

	res, err := d.Dispatch(ctx, verification.Request{Email: "user@example.com", Code: "483921"})

	require.NoError(t, err)
	require.Equal(t, &verification.Result{Success: true}, res)
	require.Equal(t, 1, calls)
	require.NoError(t, sendErr, "cancellation must not reach the sender")
	require.Equal(t, "req-1", value, "request values must reach the sender")
}

func TestDispatch_TransportFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("535 5.7.8 Username and Password not accepted")
	s := &MockSender{}
	s.On("Send", mock.Anything, mock.Anything).Return(cause).Once()

	var logs bytes.Buffer
	d := newDispatcher(t, s, &logs)

	res, err := d.Dispatch(context.Background(), verification.Request{Email: "user@example.com", Code: "483921"})

	require.Nil(t, res)
	require.Same(t, verification.ErrDeliveryFailed, err)
	require.NotErrorIs(t, err, cause)
	require.Equal(t, "Failed to send email", callable.AsError(err).Message)
	require.Equal(t, callable.Internal, callable.AsError(err).Code)
	require.NotContains(t, err.Error(), "535")
	s.AssertNumberOfCalls(t, "Send", 1)

	require.Contains(t, logs.String(), `"level":"ERROR"`)
	require.Contains(t, logs.String(), "Username and Password not accepted")
	require.Contains(t, logs.String(), `"email":"user@example.com"`)
}

func TestDispatch_EmptyEmailStillAttempted(t *testing.T) {
	t.Parallel()

	s := &MockSender{}
	s.On("Send", mock.Anything, mock.MatchedBy(func(e *mailer.Email) bool {
		return len(e.To) == 1 && e.To[0] == ""
	})).Return(errors.New("invalid recipient")).Once()

	d := newDispatcher(t, s, nil)

	_, err := d.Dispatch(context.Background(), verification.Request{Email: "", Code: "1"})

	require.ErrorIs(t, err, verification.ErrDeliveryFailed)
	s.AssertExpectations(t)
}

func TestDispatch_RepeatedRequestsSendTwice(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		refs []string
	)
	d := newDispatcher(t, mailer.SenderFunc(func(_ context.Context, e *mailer.Email) error {
		mu.Lock()
		defer mu.Unlock()
		refs = append(refs, e.Headers[mailer.HeaderEntityRefID])
		return nil
	}), nil)

	req := verification.Request{Email: "user@example.com", Code: "483921"}
	for range 2 {
		_, err := d.Dispatch(context.Background(), req)
		require.NoError(t, err)
	}

	require.Len(t, refs, 2)
	require.NotEqual(t, refs[0], refs[1])
}

func TestDispatch_Concurrent(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		sent = map[string]string{}
	)
	d := newDispatcher(t, mailer.SenderFunc(func(_ context.Context, e *mailer.Email) error {
		mu.Lock()
		defer mu.Unlock()
		sent[e.To[0]] = e.Text
		return nil
	}), nil)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code := verification.Code(string(rune('a' + i)))
			_, err := d.Dispatch(context.Background(), verification.Request{
				Email: string(code) + "@example.com",
				Code:  code,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Len(t, sent, 20)
	require.Equal(t, expectedText("c"), sent["c@example.com"])
}
