package service

import (
	"context"
	"testing"
	"time"

	"citysim/internal/city"
)

func TestSimulatorService_StepTicksAndAutosaves(t *testing.T) {
	session := defaultSession()
	repo := newCityRepoStub()
	sim := NewSimulatorService(session, NewSaveService(session, repo, nil), "auto", nil)

	if !sim.step(context.Background()) {
		t.Fatalf("expected step to continue")
	}
	if session.Snapshot().Day != 1 {
		t.Fatalf("expected day 1")
	}
	if repo.saveCount() != 1 || repo.slots["auto"].Day != 1 {
		t.Fatalf("expected an autosave of day 1")
	}
}

func TestSimulatorService_StepWithoutAutosave(t *testing.T) {
	session := defaultSession()
	repo := newCityRepoStub()
	sim := NewSimulatorService(session, NewSaveService(session, repo, nil), "", nil)

	sim.step(context.Background())
	if repo.saveCount() != 0 {
		t.Fatalf("no save expected without a slot")
	}
}

func TestSimulatorService_StepStopsOnEndedSession(t *testing.T) {
	session := newTestSession(bankruptConfig(), false)
	sim := NewSimulatorService(session, nil, "", nil)

	if sim.step(context.Background()) {
		t.Fatalf("bankrupting step must stop the loop")
	}
	day := session.Snapshot().Day
	if sim.step(context.Background()) {
		t.Fatalf("ended session must stop the loop")
	}
	if session.Snapshot().Day != day {
		t.Fatalf("ended session advanced")
	}
}

func TestSimulatorService_RunDisabled(t *testing.T) {
	session := defaultSession()
	sim := NewSimulatorService(session, nil, "", nil)

	done := make(chan struct{})
	go func() {
		sim.Run(context.Background(), 0)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run with zero interval should return immediately")
	}
	if session.Snapshot().Day != 0 {
		t.Fatalf("disabled simulator ticked")
	}
}

func TestSimulatorService_RunUntilCancelled(t *testing.T) {
	session := newTestSession(city.DefaultConfig(), true)
	sim := NewSimulatorService(session, nil, "", nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sim.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for session.Snapshot().Day < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done

	if session.Snapshot().Day < 3 {
		t.Fatalf("expected at least 3 ticks, got day %d", session.Snapshot().Day)
	}
}

func TestSimulatorService_RunStopsWhenGameEnds(t *testing.T) {
	session := newTestSession(bankruptConfig(), false)
	sim := NewSimulatorService(session, nil, "", nil)

	done := make(chan struct{})
	go func() {
		sim.Run(context.Background(), time.Millisecond)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not stop after bankruptcy")
	}
	if !session.Ended() {
		t.Fatalf("expected ended session")
	}
}
