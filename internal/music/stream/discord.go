package stream

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
	"layeh.com/gopus"
)

// StreamToDiscord encodes s16le PCM to opus frames and feeds the voice
// connection until the stream ends or ctx is cancelled. gain scales samples
// in [0,1]; paused suspends frame delivery without closing the stream.
func StreamToDiscord(ctx context.Context, pcm io.ReadCloser, vc *discordgo.VoiceConnection, gain float64, paused *atomic.Bool) error {
	encoder, err := gopus.NewEncoder(sampleRate, channels, gopus.Audio)
	if err != nil {
		return fmt.Errorf("encoder error: %w", err)
	}

	defer pcm.Close()

	if gain < 0 {
		gain = 0
	}
	if gain > 1 {
		gain = 1
	}

	pcmBuf := make([]byte, frameSize*channels*2)
	intBuf := make([]int16, frameSize*channels)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if paused != nil && paused.Load() {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(20 * time.Millisecond):
			}
			continue
		}

		_, err := io.ReadFull(pcm, pcmBuf)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil // natural end of stream
		}
		if err != nil {
			return fmt.Errorf("read error: %w", err)
		}

		for i := range intBuf {
			sample := int16(binary.LittleEndian.Uint16(pcmBuf[i*2 : i*2+2]))
			intBuf[i] = int16(float64(sample) * gain)
		}

		opus, err := encoder.Encode(intBuf, frameSize, len(pcmBuf))
		if err != nil {
			return fmt.Errorf("encode error: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case vc.OpusSend <- opus:
		}
	}
}
