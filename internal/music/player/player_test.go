package player

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"tocadiscos/internal/music/queue"
	"tocadiscos/internal/music/sources"
)

type fakeOpener struct {
	mu     sync.Mutex
	fail   map[string]bool
	opened []string
}

func (f *fakeOpener) OpenStream(_ context.Context, t sources.Track) (io.ReadCloser, func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[t.Title] {
		return nil, nil, errors.New("provider unavailable")
	}
	f.opened = append(f.opened, t.Title)
	return io.NopCloser(strings.NewReader("pcm")), func() {}, nil
}

func (f *fakeOpener) openedTitles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.opened))
	copy(out, f.opened)
	return out
}

type fakeSink struct {
	mu       sync.Mutex
	plays    int
	lastGain float64
	block    bool
}

func (s *fakeSink) Play(ctx context.Context, pcm io.ReadCloser, gain float64) error {
	defer pcm.Close()
	s.mu.Lock()
	s.plays++
	s.lastGain = gain
	block := s.block
	s.mu.Unlock()
	if block {
		<-ctx.Done()
	}
	return nil
}

func (s *fakeSink) SetPaused(bool) {}

func (s *fakeSink) playCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plays
}

type fakeSession struct {
	mu        sync.Mutex
	sink      *fakeSink
	destroyed int
}

func (s *fakeSession) Bind() (Sink, error) { return s.sink, nil }

func (s *fakeSession) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed++
	return nil
}

func (s *fakeSession) destroyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

type fakeTransport struct {
	mu        sync.Mutex
	joins     int
	failJoins int // fail this many initial Join calls
	session   *fakeSession
}

func (t *fakeTransport) Join(_, _ string) (Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.joins++
	if t.joins <= t.failJoins {
		return nil, errors.New("gateway timeout")
	}
	return t.session, nil
}

func (t *fakeTransport) joinCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.joins
}

type fakeNotifier struct {
	mu      sync.Mutex
	playing []string
	errors  []string
}

func (n *fakeNotifier) NowPlaying(_ string, t sources.Track) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.playing = append(n.playing, t.Title)
}

func (n *fakeNotifier) Error(_ string, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *fakeNotifier) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.playing), len(n.errors)
}

func newFixture(failTitles ...string) (*Player, *fakeOpener, *fakeTransport, *fakeSession, *fakeNotifier) {
	fail := make(map[string]bool)
	for _, t := range failTitles {
		fail[t] = true
	}
	opener := &fakeOpener{fail: fail}
	session := &fakeSession{sink: &fakeSink{}}
	transport := &fakeTransport{session: session}
	notifier := &fakeNotifier{}
	q := queue.New(0, 0.5)
	p := New("guild-1", q, opener, transport, notifier, zerolog.Nop())
	return p, opener, transport, session, notifier
}

func track(title string, provider sources.Provider) sources.Track {
	return sources.Track{Title: title, URL: "https://example.com/" + title, Provider: provider}
}

func waitInactive(t *testing.T, p *Player) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !p.Active() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("player did not drain in time")
}

func TestDrainPlaysAllTracksInOrder(t *testing.T) {
	p, opener, transport, session, notifier := newFixture()

	// The trace scenario: a video-platform track, a metadata-service track
	// (already re-resolved by the opener), then an audio-host track.
	for _, tr := range []sources.Track{
		track("A", sources.ProviderYouTube),
		track("B", sources.ProviderYTMusic),
		track("C", sources.ProviderSoundCloud),
	} {
		if err := p.Queue().Enqueue(tr); err != nil {
			t.Fatalf("enqueue err: %v", err)
		}
	}

	p.Kick("voice-1", "text-1")
	waitInactive(t, p)

	got := opener.openedTitles()
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("opened %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("opened %v want %v", got, want)
		}
	}

	if transport.joinCount() != 1 {
		t.Errorf("expected a single voice join, got %d", transport.joinCount())
	}
	// Natural drain must not disconnect the voice session.
	if session.destroyCount() != 0 {
		t.Errorf("session destroyed on natural drain")
	}
	if p.State() != StateIdle {
		t.Errorf("expected idle state, got %s", p.State())
	}
	playing, errs := notifier.counts()
	if playing != 3 || errs != 0 {
		t.Errorf("notifications: playing=%d errors=%d", playing, errs)
	}
}

func TestResolutionFailureSkipsAndContinues(t *testing.T) {
	p, opener, _, _, notifier := newFixture("B")

	for _, title := range []string{"A", "B", "C"} {
		_ = p.Queue().Enqueue(track(title, sources.ProviderYouTube))
	}

	p.Kick("voice-1", "text-1")
	waitInactive(t, p)

	got := opener.openedTitles()
	if len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Fatalf("expected tracks A and C to stream, got %v", got)
	}
	playing, errs := notifier.counts()
	if errs != 1 {
		t.Errorf("expected exactly one error notification, got %d", errs)
	}
	if playing != 2 {
		t.Errorf("expected two now-playing notifications, got %d", playing)
	}
}

func TestStopReleasesSessionAndClearsQueue(t *testing.T) {
	p, _, _, session, _ := newFixture()
	session.sink.block = true

	for _, title := range []string{"A", "B", "C"} {
		_ = p.Queue().Enqueue(track(title, sources.ProviderYouTube))
	}

	p.Kick("voice-1", "text-1")

	// Wait until the sink is actually streaming.
	deadline := time.Now().Add(2 * time.Second)
	for session.sink.playCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if session.sink.playCount() == 0 {
		t.Fatal("stream never started")
	}

	if err := p.Stop(); err != nil {
		t.Fatalf("stop err: %v", err)
	}

	if session.destroyCount() != 1 {
		t.Errorf("expected one session destroy, got %d", session.destroyCount())
	}
	if p.Queue().Len() != 0 {
		t.Errorf("pending not cleared: %d", p.Queue().Len())
	}
	if _, ok := p.Queue().Current(); ok {
		t.Error("current not cleared after stop")
	}
	if p.Active() {
		t.Error("player still active after stop")
	}
	if p.State() != StateStopped {
		t.Errorf("expected stopped state, got %s", p.State())
	}
}

func TestSkipAdvancesToNextTrack(t *testing.T) {
	p, opener, _, session, _ := newFixture()
	session.sink.block = true

	_ = p.Queue().Enqueue(track("A", sources.ProviderYouTube))
	_ = p.Queue().Enqueue(track("B", sources.ProviderYouTube))

	p.Kick("voice-1", "text-1")

	deadline := time.Now().Add(2 * time.Second)
	for session.sink.playCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if err := p.Skip(); err != nil {
		t.Fatalf("skip err: %v", err)
	}

	deadline = time.Now().Add(2 * time.Second)
	for session.sink.playCount() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	got := opener.openedTitles()
	if len(got) < 2 || got[1] != "B" {
		t.Fatalf("expected B after skip, opened %v", got)
	}
	_ = p.Stop()
}

func TestSkipWithoutPlayback(t *testing.T) {
	p, _, _, _, _ := newFixture()
	if err := p.Skip(); !errors.Is(err, ErrNotPlaying) {
		t.Fatalf("expected ErrNotPlaying got %v", err)
	}
}

func TestLoopRepeatsCurrentTrack(t *testing.T) {
	p, opener, _, session, _ := newFixture()

	_ = p.Queue().Enqueue(track("A", sources.ProviderYouTube))
	p.Queue().SetLoop(true)

	p.Kick("voice-1", "text-1")

	deadline := time.Now().Add(2 * time.Second)
	for session.sink.playCount() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if session.sink.playCount() < 3 {
		t.Fatalf("expected repeated playback, got %d plays", session.sink.playCount())
	}

	_ = p.Stop()

	for _, title := range opener.openedTitles() {
		if title != "A" {
			t.Fatalf("loop streamed unexpected track %q", title)
		}
	}
}

func TestTransportFailureRetriesOnce(t *testing.T) {
	p, opener, transport, _, notifier := newFixture()
	transport.failJoins = 1

	_ = p.Queue().Enqueue(track("A", sources.ProviderYouTube))

	p.Kick("voice-1", "text-1")
	waitInactive(t, p)

	if transport.joinCount() != 2 {
		t.Errorf("expected two join attempts, got %d", transport.joinCount())
	}
	if got := opener.openedTitles(); len(got) != 2 {
		t.Errorf("expected re-resolved stream for retry, opened %v", got)
	}
	_, errs := notifier.counts()
	if errs != 0 {
		t.Errorf("retried track should not report an error, got %d", errs)
	}
}

func TestTransportFailureSkipsAfterRetry(t *testing.T) {
	p, _, transport, _, notifier := newFixture()
	transport.failJoins = 2 // both the attempt and its single retry fail

	_ = p.Queue().Enqueue(track("A", sources.ProviderYouTube))
	_ = p.Queue().Enqueue(track("B", sources.ProviderYouTube))

	p.Kick("voice-1", "text-1")
	waitInactive(t, p)

	playing, errs := notifier.counts()
	if errs != 1 {
		t.Errorf("expected one error for the failed track, got %d", errs)
	}
	if playing != 1 {
		t.Errorf("expected the second track to stream, playing=%d", playing)
	}
}

func TestVolumePassedToSink(t *testing.T) {
	p, _, _, session, _ := newFixture()
	p.Queue().SetVolume(0.25)

	_ = p.Queue().Enqueue(track("A", sources.ProviderYouTube))
	p.Kick("voice-1", "text-1")
	waitInactive(t, p)

	session.sink.mu.Lock()
	gain := session.sink.lastGain
	session.sink.mu.Unlock()
	if gain != 0.25 {
		t.Errorf("expected gain 0.25, got %v", gain)
	}
}
