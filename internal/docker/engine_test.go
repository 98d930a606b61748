package docker

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
)

// fakeEngine records calls and returns canned responses.
type fakeEngine struct {
	summaries []container.Summary
	listErr   error
	startErr  error

	lastListOptions container.ListOptions
	lastStopID      string
	lastStopOptions container.StopOptions
	restarts        int
	pingErr         error
	closed          bool
}

func (f *fakeEngine) ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error) {
	f.lastListOptions = options
	return f.summaries, f.listErr
}

func (f *fakeEngine) ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error {
	return f.startErr
}

func (f *fakeEngine) ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error {
	f.lastStopID = containerID
	f.lastStopOptions = options
	return nil
}

func (f *fakeEngine) ContainerRestart(ctx context.Context, containerID string, options container.StopOptions) error {
	f.restarts++
	f.lastStopID = containerID
	f.lastStopOptions = options
	return nil
}

func (f *fakeEngine) Ping(ctx context.Context) (types.Ping, error) {
	return types.Ping{APIVersion: "1.48"}, f.pingErr
}

func (f *fakeEngine) Close() error {
	f.closed = true
	return nil
}

func TestListContainers_MapsSummaries(t *testing.T) {
	engine := &fakeEngine{
		summaries: []container.Summary{
			{
				ID:     "0123456789abcdef",
				Names:  []string{"/web", "/web-alias"},
				Image:  "nginx:1.27",
				State:  "running",
				Status: "Up 2 hours",
			},
		},
	}
	m := newWithAPI(engine, nil)

	infos, err := m.ListContainers(context.Background(), true)
	if err != nil {
		t.Fatalf("ListContainers failed: %v", err)
	}
	if !engine.lastListOptions.All {
		t.Error("expected All option passed through")
	}
	if len(infos) != 1 {
		t.Fatalf("expected 1 container, got %d", len(infos))
	}
	info := infos[0]
	if info.Names[0] != "web" || info.Names[1] != "web-alias" {
		t.Errorf("expected leading slash stripped, got %v", info.Names)
	}
	if info.Image != "nginx:1.27" || info.State != "running" || info.Status != "Up 2 hours" {
		t.Errorf("unexpected info: %+v", info)
	}
}

func TestListContainers_RunningOnlyByDefault(t *testing.T) {
	engine := &fakeEngine{}
	m := newWithAPI(engine, nil)

	if _, err := m.ListContainers(context.Background(), false); err != nil {
		t.Fatalf("ListContainers failed: %v", err)
	}
	if engine.lastListOptions.All {
		t.Error("expected All=false passed through")
	}
}

func TestStopContainer_PassesTimeout(t *testing.T) {
	engine := &fakeEngine{}
	m := newWithAPI(engine, nil)

	if err := m.StopContainer(context.Background(), "web", 10); err != nil {
		t.Fatalf("StopContainer failed: %v", err)
	}
	if engine.lastStopID != "web" {
		t.Errorf("expected id web, got %q", engine.lastStopID)
	}
	if engine.lastStopOptions.Timeout == nil || *engine.lastStopOptions.Timeout != 10 {
		t.Errorf("expected timeout 10, got %v", engine.lastStopOptions.Timeout)
	}
}

func TestRestartContainer_PassesTimeout(t *testing.T) {
	engine := &fakeEngine{}
	m := newWithAPI(engine, nil)

	if err := m.RestartContainer(context.Background(), "db", 30); err != nil {
		t.Fatalf("RestartContainer failed: %v", err)
	}
	if engine.restarts != 1 {
		t.Errorf("expected 1 restart, got %d", engine.restarts)
	}
	if engine.lastStopOptions.Timeout == nil || *engine.lastStopOptions.Timeout != 30 {
		t.Errorf("expected timeout 30, got %v", engine.lastStopOptions.Timeout)
	}
}

func TestStartContainer_ErrorPropagates(t *testing.T) {
	engine := &fakeEngine{startErr: errors.New("No such container: ghost")}
	m := newWithAPI(engine, nil)

	err := m.StartContainer(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected error from engine")
	}
}

func TestPingAndClose(t *testing.T) {
	engine := &fakeEngine{}
	m := newWithAPI(engine, nil)

	if err := m.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}

	engine.pingErr = errors.New("daemon down")
	if err := m.Ping(context.Background()); err == nil {
		t.Error("expected ping error to propagate")
	}

	if err := m.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if !engine.closed {
		t.Error("expected underlying client closed")
	}
}
