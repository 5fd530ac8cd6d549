package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/litescript/ls-stellar/internal/population"
	"github.com/litescript/ls-stellar/internal/stellar"
)

func testPopulation(t *testing.T) *population.Population {
	t.Helper()
	specs := []population.Spec{
		{Name: "sun", Mass: 1, Metallicity: 0.02},
		{Name: "b-star", Mass: 5, Metallicity: 0.02},
		{Name: "o-star", Mass: 20, Metallicity: 0.02},
	}
	p, err := population.Build(context.Background(), specs, 2, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return p
}

func TestNewManager(t *testing.T) {
	cfg := DefaultConfig()
	m := NewManager(cfg)

	if m == nil {
		t.Fatal("NewManager returned nil")
	}
	if m.TickInterval() != cfg.TickInterval {
		t.Errorf("TickInterval = %v, want %v", m.TickInterval(), cfg.TickInterval)
	}
	if m.HasData() {
		t.Error("HasData should be false initially")
	}
	if m.Speed() != 1 {
		t.Errorf("Speed = %v, want 1", m.Speed())
	}
}

func TestNewManager_FillsDefaults(t *testing.T) {
	m := NewManager(Config{})
	snap := m.Snapshot()
	if snap.MaxAge != DefaultConfig().MaxAge {
		t.Errorf("MaxAge = %v, want %v", snap.MaxAge, DefaultConfig().MaxAge)
	}
}

func TestManager_SetAgeWithoutPopulation(t *testing.T) {
	m := NewManager(DefaultConfig())
	if err := m.SetAge(context.Background(), 10); !errors.Is(err, ErrNoPopulation) {
		t.Errorf("SetAge() error = %v, want %v", err, ErrNoPopulation)
	}
}

func TestManager_SetPopulation(t *testing.T) {
	m := NewManager(DefaultConfig())
	if err := m.SetPopulation(context.Background(), testPopulation(t)); err != nil {
		t.Fatalf("SetPopulation() error = %v", err)
	}

	if !m.HasData() {
		t.Error("HasData should be true after SetPopulation")
	}
	snap := m.Snapshot()
	if len(snap.Ticks) != 3 {
		t.Fatalf("Ticks = %d, want 3", len(snap.Ticks))
	}
	if snap.Summary.Count != 3 {
		t.Errorf("Summary.Count = %d, want 3", snap.Summary.Count)
	}
	if len(snap.Events) != 1 || snap.Events[0].Type != EventReload {
		t.Errorf("Events = %+v, want one reload", snap.Events)
	}
}

func TestManager_SetAgeRecordsTransitions(t *testing.T) {
	ctx := context.Background()
	m := NewManager(DefaultConfig())
	if err := m.SetPopulation(ctx, testPopulation(t)); err != nil {
		t.Fatal(err)
	}

	// By 50 Myr the 20 Msun star has collapsed; the others are still on
	// the main sequence.
	if err := m.SetAge(ctx, 50); err != nil {
		t.Fatalf("SetAge() error = %v", err)
	}

	events := m.RecentEvents(10)
	var remnant *Event
	for i := range events {
		if events[i].Type == EventRemnant {
			remnant = &events[i]
		}
	}
	if remnant == nil {
		t.Fatalf("events = %+v, want a remnant event", events)
	}
	if remnant.Star != "o-star" || remnant.To != stellar.BlackHole || remnant.From != stellar.MainSequence {
		t.Errorf("remnant event = %+v", *remnant)
	}
	if remnant.Age != 50 {
		t.Errorf("event age = %v, want 50", remnant.Age)
	}
}

func TestManager_SetAgeClamps(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.MaxAge = 100
	m := NewManager(cfg)
	if err := m.SetPopulation(ctx, testPopulation(t)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in, want float64
	}{
		{-5, 0},
		{40, 40},
		{500, 100},
	}
	for _, tt := range tests {
		if err := m.SetAge(ctx, tt.in); err != nil {
			t.Fatal(err)
		}
		if got := m.Age(); got != tt.want {
			t.Errorf("SetAge(%v): Age = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestManager_StepAndSpeed(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.Step = 10
	m := NewManager(cfg)
	if err := m.SetPopulation(ctx, testPopulation(t)); err != nil {
		t.Fatal(err)
	}

	if err := m.Step(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if m.Age() != 10 {
		t.Errorf("Age after one step = %v, want 10", m.Age())
	}

	m.Faster()
	if err := m.Step(ctx, 2); err != nil {
		t.Fatal(err)
	}
	if m.Age() != 50 {
		t.Errorf("Age after two double-speed steps = %v, want 50", m.Age())
	}

	if err := m.Step(ctx, -1); err != nil {
		t.Fatal(err)
	}
	if m.Age() != 30 {
		t.Errorf("Age after stepping back = %v, want 30", m.Age())
	}

	for i := 0; i < 40; i++ {
		m.Faster()
	}
	if m.Speed() != MaxSpeed {
		t.Errorf("Speed = %v, want capped at %v", m.Speed(), MaxSpeed)
	}
	for i := 0; i < 40; i++ {
		m.Slower()
	}
	if m.Speed() != MinSpeed {
		t.Errorf("Speed = %v, want floored at %v", m.Speed(), MinSpeed)
	}
}

func TestManager_TickOnlyWhenPlaying(t *testing.T) {
	ctx := context.Background()
	m := NewManager(DefaultConfig())
	if err := m.SetPopulation(ctx, testPopulation(t)); err != nil {
		t.Fatal(err)
	}

	if err := m.Tick(ctx); err != nil {
		t.Fatal(err)
	}
	if m.Age() != 0 {
		t.Errorf("paused Tick moved the clock to %v", m.Age())
	}

	if !m.TogglePlay() {
		t.Fatal("TogglePlay() = false, want playing")
	}
	if err := m.Tick(ctx); err != nil {
		t.Fatal(err)
	}
	if m.Age() != DefaultConfig().Step {
		t.Errorf("Age after playing Tick = %v, want %v", m.Age(), DefaultConfig().Step)
	}
}

func TestManager_StopsAtMaxAge(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.MaxAge = 15
	m := NewManager(cfg)
	if err := m.SetPopulation(ctx, testPopulation(t)); err != nil {
		t.Fatal(err)
	}
	m.TogglePlay()
	for i := 0; i < 3; i++ {
		if err := m.Tick(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if m.Playing() {
		t.Error("clock still playing at max age")
	}
	if m.Age() != 15 {
		t.Errorf("Age = %v, want 15", m.Age())
	}

	m.TogglePlay()
	if m.Age() != 0 {
		t.Errorf("Age after replay = %v, want 0", m.Age())
	}
}

func TestManager_Snapshot_IsCopy(t *testing.T) {
	m := NewManager(DefaultConfig())
	if err := m.SetPopulation(context.Background(), testPopulation(t)); err != nil {
		t.Fatal(err)
	}

	snap := m.Snapshot()
	snap.Ticks[0].Luminosity = -1

	if m.Snapshot().Ticks[0].Luminosity == -1 {
		t.Error("modifying snapshot ticks affected manager state")
	}
}

func TestManager_EventRingBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxEvents = 3
	m := NewManager(cfg)

	for i := 0; i < 5; i++ {
		m.mu.Lock()
		m.addEvent(Event{Type: EventPhaseChange, Index: i})
		m.mu.Unlock()
	}

	events := m.Snapshot().Events
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	for i, e := range events {
		if e.Index != i+2 {
			t.Errorf("events[%d].Index = %d, want %d", i, e.Index, i+2)
		}
	}

	if recent := m.RecentEvents(2); len(recent) != 2 || recent[1].Index != 4 {
		t.Errorf("RecentEvents(2) = %+v, want the last two", recent)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewManager(DefaultConfig())
	if err := m.SetPopulation(ctx, testPopulation(t)); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = m.Step(ctx, 1)
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = m.Snapshot()
				_ = m.RecentEvents(5)
				time.Sleep(time.Microsecond)
			}
		}()
	}
	wg.Wait()

	if snap := m.Snapshot(); len(snap.Ticks) != 3 {
		t.Errorf("Ticks = %d after concurrent use, want 3", len(snap.Ticks))
	}
}
