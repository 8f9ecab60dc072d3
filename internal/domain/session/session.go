package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/CatOS/backend/internal/domain/crash"
	"github.com/GriffinCanCode/CatOS/backend/internal/domain/events"
	"github.com/GriffinCanCode/CatOS/backend/internal/domain/logbuf"
	"github.com/GriffinCanCode/CatOS/backend/internal/domain/process"
	"github.com/GriffinCanCode/CatOS/backend/internal/domain/vitals"
	"github.com/GriffinCanCode/CatOS/backend/internal/domain/window"
	"github.com/GriffinCanCode/CatOS/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/chance"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/id"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

var (
	ErrAlreadyStarted = errors.New("session already started")
	ErrClosed         = errors.New("session closed")
)

// Probabilities of the randomized behaviours
const (
	LostInterestChance  = 0.20
	CriticalChaosChance = 0.30
	ZoomiesChance       = 0.05
	CrashChance         = 0.01
	KeyInterceptChance  = 0.30
	KeyChaosChance      = 0.10
)

// Timing holds every period and delay of the simulation
type Timing struct {
	AttentionDecay       time.Duration
	PrioritySelect       time.Duration
	ProcessSimulation    time.Duration
	RandomEvents         time.Duration
	CrashProgress        time.Duration
	CrashSettle          time.Duration
	LostInterestDelay    time.Duration
	ZoomiesDuration      time.Duration
	NotificationDuration time.Duration
}

// DefaultTiming returns the tuned timings of the desktop
func DefaultTiming() Timing {
	return Timing{
		AttentionDecay:       3 * time.Second,
		PrioritySelect:       5 * time.Second,
		ProcessSimulation:    5 * time.Second,
		RandomEvents:         4 * time.Second,
		CrashProgress:        500 * time.Millisecond,
		CrashSettle:          time.Second,
		LostInterestDelay:    3 * time.Second,
		ZoomiesDuration:      5 * time.Second,
		NotificationDuration: 3 * time.Second,
	}
}

func (t Timing) withDefaults() Timing {
	d := DefaultTiming()
	fill := func(v *time.Duration, def time.Duration) {
		if *v <= 0 {
			*v = def
		}
	}
	fill(&t.AttentionDecay, d.AttentionDecay)
	fill(&t.PrioritySelect, d.PrioritySelect)
	fill(&t.ProcessSimulation, d.ProcessSimulation)
	fill(&t.RandomEvents, d.RandomEvents)
	fill(&t.CrashProgress, d.CrashProgress)
	fill(&t.CrashSettle, d.CrashSettle)
	fill(&t.LostInterestDelay, d.LostInterestDelay)
	fill(&t.ZoomiesDuration, d.ZoomiesDuration)
	fill(&t.NotificationDuration, d.NotificationDuration)
	return t
}

// Options configures a session. Zero fields get production defaults.
type Options struct {
	Clock       clock.Clock
	Random      chance.Source
	Catalogue   *events.Catalogue
	Observer    Observer
	Logger      *logging.Logger
	Timing      Timing
	LogCapacity int
}

// Session is the owned context of one desktop
type Session struct {
	id     id.SessionID
	clock  clock.Clock
	rnd    chance.Source
	cat    *events.Catalogue
	obs    Observer
	logger *logging.Logger
	timing Timing

	mu          sync.Mutex
	logs        *logbuf.Buffer
	windows     *window.Registry
	vitals      *vitals.Engine
	procs       *process.Table
	crash       *crash.Overlay
	zoomies     types.ZoomiesState
	boxOccupied bool
	yarnTangles int

	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	timers      map[*clock.Timer]struct{}
	crashCancel context.CancelFunc
	started     bool
	closed      bool
}

// New creates an idle session. Call Start to boot the desktop.
func New(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Random == nil {
		opts.Random = chance.New(0)
	}
	if opts.Catalogue == nil {
		opts.Catalogue = events.Default()
	}
	if opts.Observer == nil {
		opts.Observer = NopObserver{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}

	sid := id.NewSessionID()
	ctx, cancel := context.WithCancel(context.Background())

	return &Session{
		id:      sid,
		clock:   opts.Clock,
		rnd:     opts.Random,
		cat:     opts.Catalogue,
		obs:     opts.Observer,
		logger:  opts.Logger.ForSession(sid.String()),
		timing:  opts.Timing.withDefaults(),
		logs:    logbuf.New(opts.LogCapacity),
		windows: window.NewRegistry(),
		vitals:  vitals.New(),
		procs:   process.NewTable(),
		crash:   crash.NewOverlay(),
		ctx:     ctx,
		cancel:  cancel,
		timers:  make(map[*clock.Timer]struct{}),
	}
}

// ID returns the session identifier
func (s *Session) ID() id.SessionID { return s.id }

// Timing returns the effective timings
func (s *Session) Timing() Timing { return s.timing }

// Snapshot returns the complete read model
func (s *Session) Snapshot() types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return types.Snapshot{
		SessionID:   s.id.String(),
		Vitals:      s.vitals.Stats(),
		Windows:     s.windows.List(),
		Processes:   s.procs.Entries(),
		Crash:       s.crash.State(),
		Zoomies:     s.zoomies,
		BoxOccupied: s.boxOccupied,
		YarnTangles: s.yarnTangles,
		Logs:        s.logs.Entries(),
	}
}

// Logs returns the log panel, newest first
func (s *Session) Logs() []types.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logs.Entries()
}

// Vitals returns attention and priority
func (s *Session) Vitals() types.VitalStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vitals.Stats()
}

// Processes returns the process table
func (s *Session) Processes() []types.ProcessEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.procs.Entries()
}

// CrashState returns the crash overlay state
func (s *Session) CrashState() types.CrashState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.crash.State()
}

// Zoomies returns the zoomies flag
func (s *Session) Zoomies() types.ZoomiesState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoomies
}

// EmitLog appends an entry to the log panel
func (s *Session) EmitLog(message string, severity types.Severity) types.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emitLog(message, severity)
}

// emitLog must be called with s.mu held
func (s *Session) emitLog(message string, severity types.Severity) types.LogEntry {
	entry := s.logs.Append(s.clock.Now(), message, severity)
	if ce := s.logger.Check(logging.SeverityLevel(entry.Severity), message); ce != nil {
		ce.Write(zap.String("severity", string(entry.Severity)), zap.String("panel_time", entry.Time))
	}
	s.obs.OnLogsChanged(s.logs.Entries())
	return entry
}

// notify must be called with s.mu held
func (s *Session) notify(text string) {
	s.obs.OnNotify(text, s.timing.NotificationDuration)
}
