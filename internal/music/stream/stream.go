package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"time"

	yt "github.com/kkdai/youtube/v2"

	"tocadiscos/internal/music/sources/youtube"
)

const (
	channels   = 2
	sampleRate = 48000
	frameSize  = 960 // 20ms at 48kHz
)

// OpenYouTube resolves a video URL to a raw s16le PCM stream: the video
// client picks an audio-only format and ffmpeg decodes the remote stream.
func OpenYouTube(ctx context.Context, videoURL string) (io.ReadCloser, func(), error) {
	videoID, err := youtube.ExtractVideoID(videoURL)
	if err != nil {
		return nil, nil, err
	}

	client := &yt.Client{
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}

	video, err := client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, nil, fmt.Errorf("video lookup error: %w", err)
	}

	formats := video.Formats.WithAudioChannels()
	if len(formats) == 0 {
		return nil, nil, errors.New("no audio formats found for video")
	}

	link, err := client.GetStreamURLContext(ctx, video, &formats[0])
	if err != nil {
		return nil, nil, fmt.Errorf("get stream URL error: %w", err)
	}

	return pcmFromLink(ctx, link)
}

// OpenYTDLP resolves any URL yt-dlp understands to a raw s16le PCM stream
// by piping its bestaudio output through ffmpeg.
func OpenYTDLP(ctx context.Context, trackURL string) (io.ReadCloser, func(), error) {
	ytdlp := exec.CommandContext(ctx, "yt-dlp", "-o", "-", "-f", "bestaudio", trackURL)
	ffmpeg := exec.CommandContext(ctx, "ffmpeg",
		"-i", "pipe:0",
		"-f", "s16le",
		"-ar", fmt.Sprintf("%d", sampleRate),
		"-ac", fmt.Sprintf("%d", channels),
		"-loglevel", "warning",
		"pipe:1",
	)

	ffmpegIn, err := ytdlp.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("yt-dlp stdout pipe error: %w", err)
	}
	ffmpeg.Stdin = ffmpegIn

	reader, err := ffmpeg.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("ffmpeg stdout pipe error: %w", err)
	}

	if err := ytdlp.Start(); err != nil {
		return nil, nil, fmt.Errorf("yt-dlp start error: %w", err)
	}
	if err := ffmpeg.Start(); err != nil {
		_ = ytdlp.Process.Kill()
		return nil, nil, fmt.Errorf("ffmpeg start error: %w", err)
	}

	cleanup := func() {
		_ = ffmpeg.Process.Kill()
		_ = ytdlp.Process.Kill()
	}
	return reader, cleanup, nil
}

func pcmFromLink(ctx context.Context, link string) (io.ReadCloser, func(), error) {
	ffmpeg := exec.CommandContext(ctx, "ffmpeg",
		"-reconnect", "1",
		"-reconnect_streamed", "1",
		"-reconnect_delay_max", "5",
		"-i", link,
		"-f", "s16le",
		"-ar", fmt.Sprintf("%d", sampleRate),
		"-ac", fmt.Sprintf("%d", channels),
		"-loglevel", "warning",
		"pipe:1",
	)

	reader, err := ffmpeg.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("stdout pipe error: %w", err)
	}
	if err := ffmpeg.Start(); err != nil {
		return nil, nil, fmt.Errorf("command start error: %w", err)
	}

	cleanup := func() {
		_ = ffmpeg.Process.Kill()
	}
	return reader, cleanup, nil
}
