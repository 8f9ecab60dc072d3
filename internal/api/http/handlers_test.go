package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/CatOS/backend/internal/domain/session"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/chance"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

func setup(t *testing.T) (*gin.Engine, *session.Session) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sess := session.New(session.Options{Clock: clock.NewMock(), Random: chance.NewScript()})
	t.Cleanup(func() { _ = sess.Close() })

	router := gin.New()
	NewHandlers(sess, nil).Register(router)
	return router, sess
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestHealth(t *testing.T) {
	router, sess := setup(t)

	w, body := do(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, sess.ID().String(), body["session_id"])

	_, err := sess.OpenWindow(types.AppYarnBall)
	require.NoError(t, err)
	_, err = sess.OpenWindow(types.AppBoxSimulator)
	require.NoError(t, err)
	require.True(t, sess.RaiseWindow(1))

	_, body = do(t, router, http.MethodGet, "/health", nil)
	windows := body["windows"].(map[string]any)
	assert.EqualValues(t, 2, windows["open"])
	assert.EqualValues(t, 3, windows["allocated"])
	assert.EqualValues(t, 1, windows["topmost_id"])
}

func TestWindowLifecycle(t *testing.T) {
	router, _ := setup(t)

	w, body := do(t, router, http.MethodPost, "/windows", OpenWindowRequest{App: "yarn-ball"})
	require.Equal(t, http.StatusCreated, w.Code)
	window := body["window"].(map[string]any)
	assert.EqualValues(t, 1, window["id"])
	assert.Equal(t, "yarn-ball", window["app"])

	w, _ = do(t, router, http.MethodPost, "/windows", OpenWindowRequest{App: "box-simulator"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = do(t, router, http.MethodPost, "/windows/1/raise", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, body = do(t, router, http.MethodGet, "/windows/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, body["window"].(map[string]any)["z_order"])

	w, _ = do(t, router, http.MethodDelete, "/windows/2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, body = do(t, router, http.MethodGet, "/windows", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["count"])
}

func TestOpenWindowRejectsUnknownApp(t *testing.T) {
	router, _ := setup(t)

	w, body := do(t, router, http.MethodPost, "/windows", OpenWindowRequest{App: "litter-box"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "unknown app")
	assert.Len(t, body["available"], len(types.AppKinds()))

	w, _ = do(t, router, http.MethodPost, "/windows", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWindowNotFound(t *testing.T) {
	router, _ := setup(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/windows/9"},
		{http.MethodDelete, "/windows/9"},
		{http.MethodPost, "/windows/9/raise"},
		{http.MethodPost, "/windows/9/minimize"},
		{http.MethodPost, "/windows/9/maximize"},
	} {
		w, _ := do(t, router, tc.method, tc.path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", tc.method, tc.path)
	}

	w, _ := do(t, router, http.MethodDelete, "/windows/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInteractions(t *testing.T) {
	router, sess := setup(t)

	w, body := do(t, router, http.MethodPost, "/interactions/play", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 100, body["attention"])

	w, body = do(t, router, http.MethodPost, "/interactions/box", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["occupied"])

	w, body = do(t, router, http.MethodPost, "/interactions/key", KeyRequest{Key: "q"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["intercepted"])

	w, _ = do(t, router, http.MethodPost, "/interactions/key", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, router, http.MethodPost, "/interactions/start-menu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Start menu clicked - cat refused", sess.Logs()[0].Message)
	assert.Equal(t, 1, sess.YarnTangles())
}

func TestTriggers(t *testing.T) {
	router, sess := setup(t)

	w, body := do(t, router, http.MethodPost, "/chaos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "vase.exe", body["target"])

	_, body = do(t, router, http.MethodPost, "/zoomies", nil)
	assert.Equal(t, true, body["started"])
	_, body = do(t, router, http.MethodPost, "/zoomies", nil)
	assert.Equal(t, false, body["started"])

	_, body = do(t, router, http.MethodPost, "/crash", nil)
	assert.Equal(t, true, body["started"])
	_, body = do(t, router, http.MethodPost, "/crash", nil)
	assert.Equal(t, false, body["started"])

	assert.True(t, sess.CrashState().Active)
}

func TestState(t *testing.T) {
	router, _ := setup(t)
	do(t, router, http.MethodPost, "/windows", OpenWindowRequest{App: "zoomies"})

	w, body := do(t, router, http.MethodGet, "/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["windows"], 1)
	assert.Len(t, body["processes"], 5)

	w, body = do(t, router, http.MethodGet, "/logs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["count"])
}
