package server

import (
	"bufio"
	"context"
	"html/template"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/explorers-mission/internal/content"
	"github.com/aaronzipp/explorers-mission/internal/handlers"
	"github.com/aaronzipp/explorers-mission/internal/store"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	_, r := newContextAndRouter(t)
	return r
}

func newContextAndRouter(t *testing.T) (*handlers.Context, http.Handler) {
	t.Helper()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := content.Default()
	require.NoError(t, err)
	h := &handlers.Context{
		Sessions:  store.NewSessionStore(10, time.Hour, quiet),
		Templates: template.Must(template.New("index.html").Parse(`ok`)),
		Content:   c,
		Clock:     clockwork.NewFakeClock(),
		PublicURL: "http://localhost/",
		Logger:    quiet,
	}
	static := fstest.MapFS{"app.js": {Data: []byte("// app")}}
	images := fstest.MapFS{"map.png": {Data: []byte("png")}}
	return h, NewRouter(h, static, http.FS(images))
}

func TestRoutes(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/static/app.js", http.StatusOK},
		{http.MethodGet, "/images/map.png", http.StatusOK},
		{http.MethodGet, "/images/none.png", http.StatusNotFound},
		{http.MethodGet, "/qr.png", http.StatusOK},
		{http.MethodGet, "/state", http.StatusUnauthorized},
		{http.MethodPost, "/restart", http.StatusUnauthorized},
		{http.MethodGet, "/restart", http.StatusMethodNotAllowed},
		{http.MethodGet, "/lobby", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}
}

func TestSessionFlowThroughRouter(t *testing.T) {
	r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

	form := url.Values{"answer": {"MINE"}}
	req := httptest.NewRequest(http.MethodPost, "/quiz/answer", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStopReleasesOpenStreams(t *testing.T) {
	h, r := newContextAndRouter(t)
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := New(l.Addr().String(), r)
	srv.OnShutdown(h.Sessions.Close)
	go func() { _ = srv.Serve(l) }()
	base := "http://" + l.Addr().String()

	resp, err := http.Get(base + "/")
	require.NoError(t, err)
	resp.Body.Close()
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)

	req, err := http.NewRequest(http.MethodGet, base+"/sse", nil)
	require.NoError(t, err)
	req.AddCookie(cookies[0])
	stream, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer stream.Body.Close()
	sc := bufio.NewScanner(stream.Body)
	require.True(t, sc.Scan())
	assert.Equal(t, "event: effects", sc.Text())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	start := time.Now()
	require.NoError(t, srv.Stop(ctx))
	assert.Less(t, time.Since(start), time.Second)
}
