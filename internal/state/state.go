// Package state provides thread-safe state management for the application:
// the population, the simulation clock and a log of phase transitions.
package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/litescript/ls-stellar/internal/population"
	"github.com/litescript/ls-stellar/internal/stellar"
)

// ErrNoPopulation is returned when the clock moves before a population is set.
var ErrNoPopulation = errors.New("state: no population loaded")

// EventType represents the type of state change event.
type EventType string

const (
	EventPhaseChange EventType = "PHASE_CHANGE"
	EventRemnant     EventType = "REMNANT"
	EventReload      EventType = "RELOAD"
)

// Event represents a change observed while the clock moved.
type Event struct {
	Type  EventType     `json:"type"`
	Age   float64       `json:"age_myr"`
	Index int           `json:"index"`
	Star  string        `json:"star,omitempty"`
	From  stellar.Phase `json:"from"`
	To    stellar.Phase `json:"to"`
}

// Speed limits, as multiples of the configured step.
const (
	MinSpeed = 1.0 / 64
	MaxSpeed = 4096.0
)

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	// evalMu serialises evaluations, which advance each star's own tick.
	evalMu sync.Mutex

	// Current state
	pop          *population.Population
	ticks        []stellar.Tick
	summary      population.Summary
	age          float64
	lastError    error
	evalDuration time.Duration

	// Clock
	playing bool
	speed   float64
	step    float64
	maxAge  float64

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	// Configuration
	tickInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEvents    int
	MaxAge       float64 // Myr
	Step         float64 // Myr per tick at speed 1
	TickInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents:    200,
		MaxAge:       13800, // age of the universe
		Step:         10,
		TickInterval: 100 * time.Millisecond,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	def := DefaultConfig()
	if cfg.MaxEvents <= 0 {
		cfg.MaxEvents = def.MaxEvents
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = def.MaxAge
	}
	if cfg.Step <= 0 {
		cfg.Step = def.Step
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = def.TickInterval
	}
	return &Manager{
		maxEvents:    cfg.MaxEvents,
		events:       make([]Event, 0, cfg.MaxEvents),
		speed:        1,
		step:         cfg.Step,
		maxAge:       cfg.MaxAge,
		tickInterval: cfg.TickInterval,
	}
}

// SetPopulation replaces the population and evaluates it at the current age.
func (m *Manager) SetPopulation(ctx context.Context, pop *population.Population) error {
	m.evalMu.Lock()
	defer m.evalMu.Unlock()

	age := m.Age()
	start := time.Now()
	ticks, err := pop.EvaluateAll(ctx, age)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastError = err
	if err != nil {
		return err
	}
	m.pop = pop
	m.ticks = ticks
	m.summary = population.Summarize(age, ticks)
	m.evalDuration = time.Since(start)
	m.addEvent(Event{Type: EventReload, Age: age, Index: -1})
	return nil
}

// SetAge moves the clock to age, clamped to [0, MaxAge], re-evaluates
// every star and records the phase changes since the previous age.
func (m *Manager) SetAge(ctx context.Context, age float64) error {
	m.evalMu.Lock()
	defer m.evalMu.Unlock()

	m.mu.RLock()
	pop := m.pop
	maxAge := m.maxAge
	m.mu.RUnlock()
	if pop == nil {
		return ErrNoPopulation
	}

	age = min(max(age, 0), maxAge)
	start := time.Now()
	ticks, err := pop.EvaluateAll(ctx, age)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastError = err
	if err != nil {
		return err
	}
	m.detectEvents(pop, ticks)
	m.age = age
	m.ticks = ticks
	m.summary = population.Summarize(age, ticks)
	m.evalDuration = time.Since(start)
	if age >= maxAge {
		m.playing = false
	}
	return nil
}

// Step moves the clock by n steps at the current speed; negative n
// moves it backwards.
func (m *Manager) Step(ctx context.Context, n int) error {
	m.mu.RLock()
	next := m.age + float64(n)*m.step*m.speed
	m.mu.RUnlock()
	return m.SetAge(ctx, next)
}

// Tick advances the clock one step when playing.
func (m *Manager) Tick(ctx context.Context) error {
	if !m.Playing() {
		return nil
	}
	return m.Step(ctx, 1)
}

// detectEvents compares new ticks with the current ones and logs changes.
func (m *Manager) detectEvents(pop *population.Population, ticks []stellar.Tick) {
	if len(m.ticks) != len(ticks) {
		return
	}
	for i, tk := range ticks {
		prev := m.ticks[i].Phase
		if prev == tk.Phase {
			continue
		}
		typ := EventPhaseChange
		if tk.Phase.IsRemnant() && !prev.IsRemnant() {
			typ = EventRemnant
		}
		m.addEvent(Event{
			Type:  typ,
			Age:   tk.Age,
			Index: i,
			Star:  pop.Spec(i).Name,
			From:  prev,
			To:    tk.Phase,
		})
	}
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Age          float64
	MaxAge       float64
	Playing      bool
	Speed        float64
	Population   *population.Population
	Ticks        []stellar.Tick
	Summary      population.Summary
	Events       []Event
	LastError    error
	EvalDuration time.Duration
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ticks := make([]stellar.Tick, len(m.ticks))
	copy(ticks, m.ticks)

	return Snapshot{
		Age:          m.age,
		MaxAge:       m.maxAge,
		Playing:      m.playing,
		Speed:        m.speed,
		Population:   m.pop,
		Ticks:        ticks,
		Summary:      m.summary,
		Events:       m.getEventsOrdered(),
		LastError:    m.lastError,
		EvalDuration: m.evalDuration,
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// Age returns the current simulation age in Myr.
func (m *Manager) Age() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.age
}

// Playing reports whether the clock runs on Tick.
func (m *Manager) Playing() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.playing
}

// TogglePlay starts or pauses the clock. Playing from the end restarts
// at age zero on the next tick.
func (m *Manager) TogglePlay() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = !m.playing
	if m.playing && m.age >= m.maxAge {
		m.age = 0
	}
	return m.playing
}

// Speed returns the current speed multiplier.
func (m *Manager) Speed() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.speed
}

// Faster doubles the speed up to MaxSpeed.
func (m *Manager) Faster() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.speed = min(m.speed*2, MaxSpeed)
	return m.speed
}

// Slower halves the speed down to MinSpeed.
func (m *Manager) Slower() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.speed = max(m.speed/2, MinSpeed)
	return m.speed
}

// TickInterval returns the configured wall-clock interval between ticks.
func (m *Manager) TickInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tickInterval
}

// HasData returns true once a population has been evaluated.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pop != nil
}
