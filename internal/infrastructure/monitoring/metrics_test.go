package monitoring

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

// gaugeValue reads a single sample from the registry
func gaugeValue(t *testing.T, m *Metrics, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	metrics:
		for _, metric := range f.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metrics
				}
			}
			if metric.GetCounter() != nil {
				return metric.GetCounter().GetValue()
			}
			return metric.GetGauge().GetValue()
		}
	}
	t.Fatalf("metric %s %v not found", name, labels)
	return 0
}

func TestNewMetricsIndependentRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.OnAttentionChanged(42)
	assert.Equal(t, 42.0, gaugeValue(t, a, "catos_attention", nil))
	assert.Equal(t, 100.0, gaugeValue(t, b, "catos_attention", nil))
}

func TestObserverUpdatesDesktopMetrics(t *testing.T) {
	m := NewMetrics()

	m.OnLogsChanged([]types.LogEntry{{Message: "CHAOS: Destroyed vase.exe", Severity: types.SeverityError}})
	m.OnLogsChanged([]types.LogEntry{
		{Message: "Yarn ball attacked successfully", Severity: types.SeveritySuccess},
		{Message: "CHAOS: Destroyed vase.exe", Severity: types.SeverityError},
	})
	assert.Equal(t, 1.0, gaugeValue(t, m, "catos_log_entries_total", map[string]string{"severity": "error"}))
	assert.Equal(t, 1.0, gaugeValue(t, m, "catos_log_entries_total", map[string]string{"severity": "success"}))

	m.OnWindowsChanged([]types.WindowHandle{{ID: 1}, {ID: 2}})
	assert.Equal(t, 2.0, gaugeValue(t, m, "catos_windows_open", nil))

	m.OnPriorityChanged(types.PrioritySleep)
	assert.Equal(t, 1.0, gaugeValue(t, m, "catos_priority", map[string]string{"priority": "sleep"}))
	assert.Equal(t, 0.0, gaugeValue(t, m, "catos_priority", map[string]string{"priority": "food"}))

	m.OnProcessesChanged([]types.ProcessEntry{{Key: types.ProcChaosEngine, Load: 78}})
	assert.Equal(t, 78.0, gaugeValue(t, m, "catos_process_load", map[string]string{"process": "chaosEngine"}))

	m.OnCrashStateChanged(types.CrashState{Active: true, Phase: types.CrashActive})
	m.OnCrashStateChanged(types.CrashState{Active: true, Phase: types.CrashActive, Progress: 40})
	assert.Equal(t, 1.0, gaugeValue(t, m, "catos_crashes_total", nil))
	assert.Equal(t, 40.0, gaugeValue(t, m, "catos_crash_progress", nil))

	m.OnZoomiesEffect(true, []int{1})
	m.OnZoomiesEffect(false, []int{1})
	assert.Equal(t, 1.0, gaugeValue(t, m, "catos_zoomies_total", nil))

	m.OnNotify("🐱 Meow! (Translation: No.)", 3*time.Second)
	assert.Equal(t, 1.0, gaugeValue(t, m, "catos_notifications_total", nil))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/windows/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/windows/7", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, 1.0, gaugeValue(t, m, "catos_http_requests_total", map[string]string{
		"method": "GET",
		"path":   "/windows/:id",
		"status": "404",
	}))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "catos_attention 100")
	assert.Contains(t, string(body), "catos_uptime_seconds")
}

func TestWSConnectionGauge(t *testing.T) {
	m := NewMetrics()
	m.IncWSConnections()
	m.IncWSConnections()
	m.DecWSConnections()
	m.RecordWSMessage("in", "ping")

	assert.Equal(t, 1.0, gaugeValue(t, m, "catos_ws_connections", nil))
	assert.Equal(t, 1.0, gaugeValue(t, m, "catos_ws_messages_total", map[string]string{"direction": "in", "type": "ping"}))
}
