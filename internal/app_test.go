package internal_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cutline/verifymail/internal"
)

type ctxKey struct{}

type echoHandler struct{}

func (echoHandler) Routes(r internal.Router) {
	r.GET("/value", func(c internal.Context) error {
		v, _ := c.Get(ctxKey{}).(string)
		return c.String(http.StatusOK, v)
	})
	r.POST("/fail", func(c internal.Context) error {
		return internal.ErrBadRequest("nope", internal.WithError(errors.New("cause")))
	})
	r.Route("/items", func(r internal.Router) {
		r.GET("/{id}", func(c internal.Context) error {
			return c.JSON(http.StatusOK, map[string]string{"id": c.Param("id")})
		})
	})
	r.GET("/route-mw", func(c internal.Context) error {
		return c.String(http.StatusOK, c.Header("X-Order"))
	}, orderMiddleware("a"), orderMiddleware("b"))
}

func orderMiddleware(tag string) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			c.Request().Header.Set("X-Order", c.Header("X-Order")+tag)
			return next(c)
		}
	}
}

func setValue(next internal.HandlerFunc) internal.HandlerFunc {
	return func(c internal.Context) error {
		c.Set(ctxKey{}, "from-middleware")
		return next(c)
	}
}

func serve(app *internal.App, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestApp_MiddlewareValuesReachHandler(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithMiddleware(setValue),
		internal.WithHandlers(echoHandler{}),
	)

	rec := serve(app, http.MethodGet, "/value")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "from-middleware", rec.Body.String())
}

func TestApp_RouteParamsAndRouteMiddlewareOrder(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(echoHandler{}))

	rec := serve(app, http.MethodGet, "/items/42")
	require.JSONEq(t, `{"id":"42"}`, rec.Body.String())

	rec = serve(app, http.MethodGet, "/route-mw")
	require.Equal(t, "ab", rec.Body.String())
}

func TestApp_ErrorHandler(t *testing.T) {
	t.Parallel()

	var got error
	app := internal.New(
		internal.WithHandlers(echoHandler{}),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			got = err
			httpErr := internal.AsHTTPError(err)
			return c.String(httpErr.StatusCode(), httpErr.Message)
		}),
	)

	rec := serve(app, http.MethodPost, "/fail")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "nope", rec.Body.String())
	require.EqualError(t, errors.Unwrap(got), "cause")
}

func TestApp_DefaultErrorHandler(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(echoHandler{}))

	rec := serve(app, http.MethodPost, "/fail")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "cause")
}

func TestApp_NotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithHandlers(echoHandler{}),
		internal.WithNotFoundHandler(func(c internal.Context) error {
			return c.String(http.StatusNotFound, "missing")
		}),
		internal.WithMethodNotAllowedHandler(func(c internal.Context) error {
			return c.String(http.StatusMethodNotAllowed, "wrong method")
		}),
	)

	rec := serve(app, http.MethodGet, "/nowhere")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "missing", rec.Body.String())

	rec = serve(app, http.MethodGet, "/fail")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, "wrong method", rec.Body.String())
}

func TestApp_HealthChecks(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHealthChecks(
		internal.WithReadinessCheck("mail", func(context.Context) error { return errors.New("down") }),
	))

	rec := serve(app, http.MethodGet, "/health/live")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(app, http.MethodGet, "/health/ready?format=json")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), `"mail"`)
}

func TestApp_RunGracefulShutdown(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(echoHandler{}))

	ctx, cancel := context.WithCancel(context.Background())
	addrCh := make(chan net.Addr, 1)
	hookCalled := make(chan struct{})

	done := make(chan error, 1)
	go func() {
		done <- app.Run("127.0.0.1:0",
			internal.WithContext(ctx),
			internal.OnReady(func(addr net.Addr) { addrCh <- addr }),
			internal.ShutdownTimeout(5*time.Second),
			internal.ShutdownHook(func(context.Context) error {
				close(hookCalled)
				return nil
			}),
		)
	}()

	addr := <-addrCh
	resp, err := http.Get("http://" + addr.String() + "/items/7")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	<-hookCalled
}

func TestApp_RunHookErrorsAreReturned(t *testing.T) {
	t.Parallel()

	app := internal.New()

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan struct{})

	done := make(chan error, 1)
	go func() {
		done <- app.Run("127.0.0.1:0",
			internal.WithContext(ctx),
			internal.OnReady(func(net.Addr) { close(ready) }),
			internal.ShutdownHook(func(context.Context) error { return errors.New("close failed") }),
		)
	}()

	<-ready
	cancel()

	err := <-done
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "close failed"))
}
