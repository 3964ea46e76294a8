package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"tocadiscos/internal/music/queue"
	"tocadiscos/internal/music/sources"
)

// State is the playback phase of one guild's controller.
type State string

const (
	StateIdle      State = "idle"
	StateResolving State = "resolving"
	StateStreaming State = "streaming"
	StateStopped   State = "stopped"
)

var (
	ErrNotPlaying     = errors.New("no track is currently playing")
	ErrNoVoiceChannel = errors.New("voice channel is not set")

	errResolution = errors.New("resolution failed")
	errTransport  = errors.New("voice transport failed")
)

// StreamOpener resolves a track to a PCM stream. Implemented by the
// provider strategy table in internal/music/resolver.
type StreamOpener interface {
	OpenStream(ctx context.Context, t sources.Track) (io.ReadCloser, func(), error)
}

// Transport joins voice channels. Session and Sink wrap the live voice
// connection and its audio writer; both are exclusively owned by one Player.
type Transport interface {
	Join(guildID, channelID string) (Session, error)
}

type Session interface {
	Bind() (Sink, error)
	Destroy() error
}

// Sink streams PCM into the voice session. Play blocks until the stream
// drains naturally or ctx is cancelled; cancellation is not an error.
type Sink interface {
	Play(ctx context.Context, pcm io.ReadCloser, gain float64) error
	SetPaused(paused bool)
}

// Notifier delivers playback events to the originating text channel.
// Fire-and-forget; the controller never waits on delivery.
type Notifier interface {
	NowPlaying(channelID string, t sources.Track)
	Error(channelID string, message string)
}

// Player drives one guild's queue through resolve/stream cycles. A single
// goroutine per activation walks the queue; command handlers only mutate
// the queue and signal cancellation.
type Player struct {
	mu sync.Mutex

	guildID   string
	queue     *queue.Queue
	opener    StreamOpener
	transport Transport
	notify    Notifier
	log       zerolog.Logger

	state  State
	active bool
	paused bool

	voiceChannelID string
	textChannelID  string

	session Session
	sink    Sink

	runCancel   context.CancelFunc
	trackCancel context.CancelFunc
	done        chan struct{}
}

func New(guildID string, q *queue.Queue, opener StreamOpener, transport Transport, notify Notifier, log zerolog.Logger) *Player {
	return &Player{
		guildID:   guildID,
		queue:     q,
		opener:    opener,
		transport: transport,
		notify:    notify,
		log:       log.With().Str("component", "player").Str("guild", guildID).Logger(),
		state:     StateIdle,
	}
}

// Queue exposes the guild queue for command handlers.
func (p *Player) Queue() *queue.Queue { return p.queue }

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Kick starts the playback loop if it is not already running. Safe to call
// on every enqueue; a running loop just picks up the new tracks.
func (p *Player) Kick(voiceChannelID, textChannelID string) {
	p.mu.Lock()
	p.voiceChannelID = voiceChannelID
	p.textChannelID = textChannelID
	if p.active {
		p.mu.Unlock()
		return
	}
	p.active = true
	p.paused = false

	ctx, cancel := context.WithCancel(context.Background())
	p.runCancel = cancel
	p.done = make(chan struct{})
	done := p.done
	p.mu.Unlock()

	go p.run(ctx, done)
}

// run is the controller loop: Resolving -> Streaming -> Resolving until the
// queue drains or the activation context is cancelled by Stop.
func (p *Player) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		if ctx.Err() != nil {
			return // Stop owns state cleanup
		}

		p.setState(StateResolving)
		track, ok := p.queue.TakeNext()
		if !ok {
			// Natural drain: go idle but keep the voice session connected.
			p.mu.Lock()
			p.state = StateIdle
			p.active = false
			p.mu.Unlock()
			p.log.Debug().Msg("queue drained, player idle")
			return
		}

		err := p.playTrack(ctx, track)
		if err != nil && errors.Is(err, errTransport) && ctx.Err() == nil {
			// One bounded retry after a transport failure: rebuild the
			// session and attempt the same track again.
			p.log.Warn().Err(err).Str("track", track.Title).Msg("transport failure, retrying once")
			p.teardownSession()
			err = p.playTrack(ctx, track)
		}
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			// Skip-and-continue: a bad track never stalls the queue.
			p.log.Warn().Err(err).Str("track", track.Title).Msg("skipping track")
			p.notify.Error(p.textChannel(), fmt.Sprintf("Could not play **%s**, skipping.", track.Title))
			p.queue.ClearCurrent()
			continue
		}

		if !p.queue.Loop() {
			p.queue.ClearCurrent()
		}
	}
}

// playTrack resolves one track, lazily establishes the voice session/sink,
// and streams to completion. Returned errors are tagged errResolution or
// errTransport so the loop can apply the right recovery policy.
func (p *Player) playTrack(ctx context.Context, track sources.Track) error {
	pcm, cleanup, err := p.opener.OpenStream(ctx, track)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", errResolution, track.Title, err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	sink, err := p.ensureSink()
	if err != nil {
		_ = pcm.Close()
		return fmt.Errorf("%w: %v", errTransport, err)
	}

	p.setState(StateStreaming)
	p.notify.NowPlaying(p.textChannel(), track)
	p.log.Info().Str("track", track.Title).Str("provider", string(track.Provider)).Msg("now playing")

	trackCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	p.mu.Lock()
	p.trackCancel = cancel
	p.mu.Unlock()

	err = sink.Play(trackCtx, pcm, p.queue.Volume())

	p.mu.Lock()
	p.trackCancel = nil
	p.paused = false
	p.mu.Unlock()

	if err != nil && trackCtx.Err() == nil {
		return fmt.Errorf("%w: %v", errTransport, err)
	}
	return nil
}

// teardownSession drops the session and sink so the next ensureSink call
// rebuilds both. Used by the transport retry path.
func (p *Player) teardownSession() {
	p.mu.Lock()
	session := p.session
	p.session = nil
	p.sink = nil
	p.mu.Unlock()

	if session != nil {
		_ = session.Destroy()
	}
}

// ensureSink joins the voice channel and binds the audio sink exactly once
// per session; subsequent tracks reuse both.
func (p *Player) ensureSink() (Sink, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sink != nil {
		return p.sink, nil
	}
	if p.voiceChannelID == "" {
		return nil, ErrNoVoiceChannel
	}

	session, err := p.transport.Join(p.guildID, p.voiceChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to join voice channel: %w", err)
	}
	sink, err := session.Bind()
	if err != nil {
		_ = session.Destroy()
		return nil, fmt.Errorf("failed to bind audio sink: %w", err)
	}
	p.session = session
	p.sink = sink
	return sink, nil
}

// Connect joins the voice channel without starting playback.
func (p *Player) Connect(voiceChannelID string) error {
	p.mu.Lock()
	p.voiceChannelID = voiceChannelID
	p.mu.Unlock()
	_, err := p.ensureSink()
	return err
}

// Skip cancels only the current stream; the loop advances to the next track
// exactly as it does on natural completion.
func (p *Player) Skip() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.trackCancel == nil {
		return ErrNotPlaying
	}
	p.trackCancel()
	p.trackCancel = nil
	return nil
}

// Stop cancels any in-flight resolution or stream, clears the queue, and
// releases the voice session and sink deterministically.
func (p *Player) Stop() error {
	p.mu.Lock()
	cancel := p.runCancel
	done := p.done
	p.runCancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}

	p.queue.Clear()

	p.mu.Lock()
	session := p.session
	p.session = nil
	p.sink = nil
	p.active = false
	p.paused = false
	p.trackCancel = nil
	p.done = nil
	p.state = StateStopped
	p.mu.Unlock()

	if session != nil {
		if err := session.Destroy(); err != nil {
			return fmt.Errorf("failed to release voice session: %w", err)
		}
	}
	return nil
}

// Pause suspends frame delivery without dropping the stream.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sink == nil || p.state != StateStreaming {
		return ErrNotPlaying
	}
	p.paused = true
	p.sink.SetPaused(true)
	return nil
}

func (p *Player) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sink == nil || !p.paused {
		return ErrNotPlaying
	}
	p.paused = false
	p.sink.SetPaused(false)
	return nil
}

func (p *Player) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

func (p *Player) textChannel() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.textChannelID
}
