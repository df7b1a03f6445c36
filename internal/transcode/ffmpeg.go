// Package transcode compresses recording clips by running ffmpeg as a child
// process.
package transcode

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/audio"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// Tags are the container metadata written into every compressed clip.
type Tags struct {
	Title        string // transcription
	Artist       string // speaker code
	Album        string // session id
	Language     string // language tag
	CreationTime time.Time
}

// FFmpeg transcodes clips to AAC in an MP4 container. At most MaxConcurrent
// ffmpeg processes run at once across all callers.
type FFmpeg struct {
	path    string
	bitrate string
	sem     *semaphore.Weighted
}

// NewFFmpeg creates a transcoder running the ffmpeg binary at path.
func NewFFmpeg(path, bitrate string, maxConcurrent int) *FFmpeg {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &FFmpeg{
		path:    path,
		bitrate: bitrate,
		sem:     semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

// Transcode encodes pcm and returns the compressed bytes. Empty audio fails
// with domain.ErrEmptyAudio without starting a process.
func (f *FFmpeg) Transcode(ctx context.Context, pcm *audio.PCM, tags Tags) ([]byte, error) {
	if pcm.IsEmpty() {
		return nil, fmt.Errorf("transcode %q: %w", tags.Title, domain.ErrEmptyAudio)
	}

	if err := f.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer f.sem.Release(1)

	dir, err := os.MkdirTemp("", "recval-transcode-*")
	if err != nil {
		return nil, fmt.Errorf("transcode temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.m4a")

	if err := writeWAV(in, pcm); err != nil {
		return nil, err
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.path, f.Args(in, out, tags)...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("ffmpeg: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("read ffmpeg output: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("ffmpeg produced no output for %q", tags.Title)
	}
	return data, nil
}

// Args builds the ffmpeg command line, minus the binary.
func (f *FFmpeg) Args(in, out string, tags Tags) []string {
	args := []string{
		"-hide_banner", "-loglevel", "error", "-nostdin", "-y",
		"-i", in,
		"-c:a", "aac",
		"-b:a", f.bitrate,
		"-f", "mp4",
	}
	meta := []struct{ key, value string }{
		{"title", tags.Title},
		{"artist", tags.Artist},
		{"album", tags.Album},
		{"language", tags.Language},
	}
	if !tags.CreationTime.IsZero() {
		meta = append(meta,
			struct{ key, value string }{"creation_time", tags.CreationTime.UTC().Format(time.RFC3339)},
			struct{ key, value string }{"year", strconv.Itoa(tags.CreationTime.Year())},
		)
	}
	for _, m := range meta {
		args = append(args, "-metadata", m.key+"="+m.value)
	}
	return append(args, out)
}

func writeWAV(path string, pcm *audio.PCM) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}
	if err := pcm.WriteWAV(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
