package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yllada/rgb-manager/common"
	"github.com/yllada/rgb-manager/config"
	"github.com/yllada/rgb-manager/effect"
)

// recordingBackend captures every call the coordinator forwards.
type recordingBackend struct {
	profiles []effect.Profile
	customs  []*effect.CustomEffect
}

func (b *recordingBackend) SetProfile(p effect.Profile) {
	b.profiles = append(b.profiles, p)
}

func (b *recordingBackend) QueueCustomEffect(e *effect.CustomEffect) {
	b.customs = append(b.customs, e)
}

func namedProfiles(names ...string) []effect.Profile {
	profiles := make([]effect.Profile, 0, len(names))
	for _, name := range names {
		p := effect.DefaultProfile()
		p.Name = name
		profiles = append(profiles, p)
	}
	return profiles
}

func testCoordinator(t *testing.T, backend EffectBackend, names ...string) *Coordinator {
	t.Helper()

	settings := config.DefaultSettings()
	settings.Profiles = namedProfiles(names...)
	if len(settings.Profiles) > 0 {
		settings.UIState = settings.Profiles[0]
	}

	path := filepath.Join(t.TempDir(), "settings.yaml")
	return NewCoordinator(NewMailbox(), backend, settings, path)
}

func TestCoordinator_CycleProfiles(t *testing.T) {
	backend := &recordingBackend{}
	c := testCoordinator(t, backend, "A", "B", "C")

	c.CycleProfiles()
	if c.ActiveProfile().Name != "B" {
		t.Errorf("active = %v, want B", c.ActiveProfile().Name)
	}

	c.CycleProfiles()
	if c.ActiveProfile().Name != "C" {
		t.Errorf("active = %v, want C", c.ActiveProfile().Name)
	}

	// Wraps back to the first profile.
	c.CycleProfiles()
	if c.ActiveProfile().Name != "A" {
		t.Errorf("active = %v, want A after wrap", c.ActiveProfile().Name)
	}

	if len(backend.profiles) != 3 {
		t.Errorf("backend received %d profiles, want 3", len(backend.profiles))
	}
}

func TestCoordinator_CycleFromMiddle(t *testing.T) {
	c := testCoordinator(t, &recordingBackend{}, "A", "B", "C")
	c.ActiveProfile().Name = "B"

	c.CycleProfiles()
	if c.ActiveProfile().Name != "C" {
		t.Errorf("active = %v, want C", c.ActiveProfile().Name)
	}
}

func TestCoordinator_CycleUnknownActiveName(t *testing.T) {
	backend := &recordingBackend{}
	c := testCoordinator(t, backend, "A", "B")
	c.ActiveProfile().Name = "Ghost"

	c.CycleProfiles()

	if c.ActiveProfile().Name != "Ghost" {
		t.Errorf("unknown active name should make the cycle a no-op, got %v", c.ActiveProfile().Name)
	}
	if len(backend.profiles) != 0 {
		t.Error("no-op cycle should not touch the backend")
	}
}

func TestCoordinator_CycleEmptyList(t *testing.T) {
	c := testCoordinator(t, &recordingBackend{})
	c.CycleProfiles() // must not panic
}

func TestCoordinator_TickHandlesMessages(t *testing.T) {
	backend := &recordingBackend{}
	c := testCoordinator(t, backend, "A", "B")

	shown := false
	c.SetOnShowWindow(func() { shown = true })

	c.mailbox.Post(MessageShowWindow)
	c.mailbox.Post(MessageCycleProfiles)
	c.mailbox.Post(MessageQuit)

	// One message per tick.
	c.Tick(IntentNone)
	if !shown {
		t.Error("first tick should handle ShowWindow")
	}
	if c.ActiveProfile().Name != "A" {
		t.Error("first tick should not cycle yet")
	}

	c.Tick(IntentNone)
	if c.ActiveProfile().Name != "B" {
		t.Errorf("second tick should cycle, active = %v", c.ActiveProfile().Name)
	}

	c.Tick(IntentNone)
	if !c.ShutdownRequested() {
		t.Error("third tick should request shutdown")
	}
}

func TestCoordinator_TickAppliesIntent(t *testing.T) {
	backend := &recordingBackend{}
	c := testCoordinator(t, backend, "A")

	c.ActiveProfile().SetAllZones([3]uint8{1, 2, 3})
	c.Tick(IntentProfileEdited)

	if len(backend.profiles) != 1 {
		t.Fatalf("backend received %d profiles, want 1", len(backend.profiles))
	}
	if backend.profiles[0].Zones[0].RGB != [3]uint8{1, 2, 3} {
		t.Errorf("backend received stale zones: %v", backend.profiles[0].Zones[0].RGB)
	}

	c.Tick(IntentNone)
	if len(backend.profiles) != 1 {
		t.Error("IntentNone tick should not reapply the profile")
	}
}

func TestCoordinator_CustomEffectForwardedOnce(t *testing.T) {
	backend := &recordingBackend{}
	c := testCoordinator(t, backend, "A")

	custom := &effect.CustomEffect{Steps: []effect.EffectStep{{DelayMS: 10}}}
	if err := c.QueueCustomEffect(custom); err != nil {
		t.Fatalf("QueueCustomEffect() error = %v", err)
	}
	if c.CustomEffectState() != effect.StateQueued {
		t.Fatalf("state = %v, want Queued", c.CustomEffectState())
	}

	c.Tick(IntentNone)
	c.Tick(IntentNone)
	c.Tick(IntentNone)

	if len(backend.customs) != 1 {
		t.Fatalf("backend received %d custom effects, want exactly 1", len(backend.customs))
	}
	if backend.customs[0] != custom {
		t.Error("backend should receive the queued effect itself")
	}
	if c.CustomEffectState() != effect.StatePlaying {
		t.Errorf("state = %v, want Playing", c.CustomEffectState())
	}
}

func TestCoordinator_EditCancelsQueuedEffect(t *testing.T) {
	backend := &recordingBackend{}
	c := testCoordinator(t, backend, "A")

	custom := &effect.CustomEffect{Steps: []effect.EffectStep{{DelayMS: 10}}}
	if err := c.QueueCustomEffect(custom); err != nil {
		t.Fatal(err)
	}

	// The edit lands on the same tick; the queued effect must not win.
	c.Tick(IntentProfileEdited)

	if len(backend.customs) != 0 {
		t.Error("edited tick should discard the queued effect")
	}
	if c.CustomEffectState() != effect.StateNone {
		t.Errorf("state = %v, want None", c.CustomEffectState())
	}
}

func TestCoordinator_StopCustomEffectRestoresProfile(t *testing.T) {
	backend := &recordingBackend{}
	c := testCoordinator(t, backend, "A")

	custom := &effect.CustomEffect{Steps: []effect.EffectStep{{DelayMS: 10}}}
	c.QueueCustomEffect(custom)
	c.Tick(IntentNone)

	if err := c.StopCustomEffect(); err != nil {
		t.Fatalf("StopCustomEffect() error = %v", err)
	}
	if c.CustomEffectState() != effect.StateNone {
		t.Errorf("state = %v, want None", c.CustomEffectState())
	}
	if len(backend.profiles) != 1 {
		t.Errorf("stop should reapply the active profile, backend got %d", len(backend.profiles))
	}

	if err := c.StopCustomEffect(); !errors.Is(err, common.ErrNothingPlaying) {
		t.Errorf("second stop error = %v, want ErrNothingPlaying", err)
	}
}

func TestCoordinator_DegradedMode(t *testing.T) {
	c := testCoordinator(t, nil, "A", "B")

	if !c.Degraded() {
		t.Fatal("nil backend should mean degraded mode")
	}

	custom := &effect.CustomEffect{Steps: []effect.EffectStep{{DelayMS: 10}}}
	if err := c.QueueCustomEffect(custom); !errors.Is(err, common.ErrManagerUnavailable) {
		t.Errorf("QueueCustomEffect() error = %v, want ErrManagerUnavailable", err)
	}

	// Cycling still works for the UI state, just without hardware.
	c.CycleProfiles()
	if c.ActiveProfile().Name != "B" {
		t.Errorf("active = %v, want B", c.ActiveProfile().Name)
	}
}

func TestCoordinator_UseProfile(t *testing.T) {
	backend := &recordingBackend{}
	c := testCoordinator(t, backend, "Work", "Gaming")

	if err := c.UseProfile("gaming"); err != nil {
		t.Fatalf("UseProfile() error = %v", err)
	}
	if c.ActiveProfile().Name != "Gaming" {
		t.Errorf("active = %v, want Gaming", c.ActiveProfile().Name)
	}
	if len(backend.profiles) != 0 {
		t.Error("UseProfile should not push to the backend; the startup apply does")
	}

	if err := c.UseProfile("Ghost"); !errors.Is(err, common.ErrProfileNotFound) {
		t.Errorf("unknown name error = %v, want ErrProfileNotFound", err)
	}
	if c.ActiveProfile().Name != "Gaming" {
		t.Error("failed UseProfile should leave the active profile alone")
	}
}

func TestCoordinator_StartupQueuedEffectCommitsOnFirstTick(t *testing.T) {
	backend := &recordingBackend{}
	c := testCoordinator(t, backend, "A")

	// Queued before any tick, the way the --effect startup mode does.
	custom := &effect.CustomEffect{Steps: []effect.EffectStep{{DelayMS: 10}}}
	if err := c.QueueCustomEffect(custom); err != nil {
		t.Fatal(err)
	}

	c.Tick(IntentNone)

	if len(backend.customs) != 1 || backend.customs[0] != custom {
		t.Fatalf("first tick should forward the startup effect, backend got %d", len(backend.customs))
	}
	if c.CustomEffectState() != effect.StatePlaying {
		t.Errorf("state = %v, want Playing", c.CustomEffectState())
	}
}

func TestCoordinator_SaveActiveAsProfile(t *testing.T) {
	c := testCoordinator(t, &recordingBackend{}, "A")

	p, err := c.SaveActiveAsProfile("Gaming")
	if err != nil {
		t.Fatalf("SaveActiveAsProfile() error = %v", err)
	}
	if p.ID == "" {
		t.Error("new profile should have an ID")
	}
	if len(c.Profiles()) != 2 {
		t.Errorf("profile count = %d, want 2", len(c.Profiles()))
	}
	if c.ActiveProfile().Name != "Gaming" {
		t.Errorf("active name = %v, want Gaming", c.ActiveProfile().Name)
	}

	if _, err := c.SaveActiveAsProfile("   "); !errors.Is(err, common.ErrInvalidProfile) {
		t.Errorf("blank name error = %v, want ErrInvalidProfile", err)
	}
}

func TestCoordinator_DeleteProfile(t *testing.T) {
	c := testCoordinator(t, &recordingBackend{}, "A", "B")
	id := c.Profiles()[0].ID

	if err := c.DeleteProfile(id); err != nil {
		t.Fatalf("DeleteProfile() error = %v", err)
	}
	if len(c.Profiles()) != 1 {
		t.Errorf("profile count = %d, want 1", len(c.Profiles()))
	}

	if err := c.DeleteProfile(id); !errors.Is(err, common.ErrProfileNotFound) {
		t.Errorf("second delete error = %v, want ErrProfileNotFound", err)
	}
}

func TestCoordinator_Persist(t *testing.T) {
	c := testCoordinator(t, &recordingBackend{}, "A")
	c.ActiveProfile().SetAllZones([3]uint8{9, 9, 9})
	c.SetUpdates(config.Updates{VersionName: "v2.0.0", SkipVersion: true})

	if err := c.Persist(); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}

	loaded := config.LoadOrDefault(c.settingsPath)
	if len(loaded.Profiles) != 1 || loaded.Profiles[0].Name != "A" {
		t.Errorf("persisted profiles = %+v", loaded.Profiles)
	}
	if loaded.UIState.Zones[0].RGB != [3]uint8{9, 9, 9} {
		t.Errorf("persisted UIState zones = %v", loaded.UIState.Zones[0].RGB)
	}
	if loaded.Updates.VersionName != "v2.0.0" || !loaded.Updates.SkipVersion {
		t.Errorf("persisted updates = %+v", loaded.Updates)
	}
}

func TestCoordinator_PersistFailureSurfaces(t *testing.T) {
	c := testCoordinator(t, &recordingBackend{}, "A")

	// A regular file where the config directory should be makes the
	// save fail; the error must reach the shutdown owner.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	c.settingsPath = filepath.Join(blocker, "settings.yaml")

	if err := c.Persist(); !errors.Is(err, common.ErrSettingsSave) {
		t.Errorf("Persist() error = %v, want ErrSettingsSave", err)
	}
}

func TestCoordinator_PersistKeepsForeignUpdates(t *testing.T) {
	c := testCoordinator(t, &recordingBackend{}, "A")

	// Another writer records update metadata after our session started.
	disk := config.DefaultSettings()
	disk.Updates = config.Updates{VersionName: "v9.9.9"}
	if err := disk.Save(c.settingsPath); err != nil {
		t.Fatal(err)
	}

	if err := c.Persist(); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}

	loaded := config.LoadOrDefault(c.settingsPath)
	if loaded.Updates.VersionName != "v9.9.9" {
		t.Errorf("untouched Updates should survive persist, got %+v", loaded.Updates)
	}
}
