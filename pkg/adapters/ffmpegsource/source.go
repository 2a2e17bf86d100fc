// Package ffmpegsource decodes video files with the ffmpeg command-line tools.
//
// Metadata comes from ffprobe. Frames are streamed from an ffmpeg child
// process that writes raw RGBA pixels to a pipe, one frame per
// width*height*4 bytes, so only a single frame is held in memory at a time.
// The decoder starts on the first ReadNext call.
package ffmpegsource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/user/exportframes/pkg/adapters/mp4probe"
	"github.com/user/exportframes/pkg/ports"
)

var (
	// ErrBinaryNotFound is returned when ffmpeg or ffprobe cannot be located.
	ErrBinaryNotFound = errors.New("ffmpegsource: executable not found")

	// ErrEmptyFile is returned for zero-length input files.
	ErrEmptyFile = errors.New("ffmpegsource: video file is empty")

	// ErrNotVideo is returned when the file header identifies a non-media file.
	ErrNotVideo = errors.New("ffmpegsource: not a video file")

	// ErrProbeFailed is returned when ffprobe cannot read the file.
	ErrProbeFailed = errors.New("ffmpegsource: probe failed")

	// ErrNoVideoStream is returned when the file has no decodable video stream.
	ErrNoVideoStream = errors.New("ffmpegsource: no video stream")

	// ErrDecodeFailed is returned when ffmpeg exits with an error before producing a frame.
	ErrDecodeFailed = errors.New("ffmpegsource: decode failed")

	// ErrReleased is returned by ReadNext after Release.
	ErrReleased = errors.New("ffmpegsource: source released")
)

const bytesPerPixel = 4

// Options configures the ffmpeg tools used by the opener.
type Options struct {
	// FFmpegPath is an optional custom path to the ffmpeg binary.
	FFmpegPath string
	// FFprobePath is an optional custom path to the ffprobe binary.
	FFprobePath string
}

// Opener implements ports.VideoOpener with ffprobe and ffmpeg.
type Opener struct {
	opts   Options
	logger ports.Logger
}

// New creates an Opener.
func New(opts Options, logger ports.Logger) *Opener {
	return &Opener{
		opts:   opts,
		logger: logger.WithComponent("ffmpeg"),
	}
}

// Open probes the video and prepares a decoder for it.
func (o *Opener) Open(ctx context.Context, path string) (ports.VideoSource, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if st.Size() == 0 {
		return nil, ErrEmptyFile
	}
	if err := sniff(path); err != nil {
		return nil, err
	}

	ffprobePath, err := findBinary("ffprobe", o.opts.FFprobePath)
	if err != nil {
		return nil, err
	}
	ffmpegPath, err := findBinary("ffmpeg", o.opts.FFmpegPath)
	if err != nil {
		return nil, err
	}

	info, err := runFFprobe(ctx, ffprobePath, path)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("Probed %s: %s %dx%d, %.3f fps, %d frames", path, info.Codec, info.Width, info.Height, info.FrameRate, info.Frames)

	if info.Frames == 0 {
		info.Frames = o.countFrames(path, info)
	}

	return &Source{
		ctx:        ctx,
		path:       path,
		ffmpegPath: ffmpegPath,
		info:       info,
		logger:     o.logger,
	}, nil
}

// countFrames fills in a frame count when ffprobe reports none: exact from
// the MP4 sample tables when possible, else estimated from the duration.
func (o *Opener) countFrames(path string, info streamInfo) int {
	if mp4Info, err := mp4probe.ProbeFile(path); err == nil && mp4Info.FrameCount > 0 {
		o.logger.Debug("Frame count from %s sample table: %d", mp4Info.Codec, mp4Info.FrameCount)
		return mp4Info.FrameCount
	}
	n := estimateFrames(info.Duration, info.FrameRate)
	o.logger.Debug("Estimated frame count from duration: %d", n)
	return n
}

// Source streams decoded frames from an ffmpeg process.
type Source struct {
	ctx        context.Context
	path       string
	ffmpegPath string
	info       streamInfo
	logger     ports.Logger

	mu       sync.Mutex
	cmd      *exec.Cmd
	pipe     io.ReadCloser
	stderr   bytes.Buffer
	frameBuf []byte
	read     int
	done     bool
	waited   bool
	released bool
}

// FrameRate returns the average frame rate reported by ffprobe.
func (s *Source) FrameRate() float64 {
	return s.info.FrameRate
}

// FrameCount returns the number of frames reported for the stream.
func (s *Source) FrameCount() int {
	return s.info.Frames
}

// Size returns the frame dimensions.
func (s *Source) Size() (width, height int) {
	return s.info.Width, s.info.Height
}

// Codec returns the codec name reported by ffprobe.
func (s *Source) Codec() string {
	return s.info.Codec
}

// decodeArgs returns the ffmpeg arguments that stream every decoded frame
// of the first video stream as raw RGBA. Frame sync is disabled so frames
// are neither duplicated nor dropped to reach a constant rate.
func decodeArgs(path string) []string {
	return []string{
		"-nostdin",
		"-v", "error",
		"-noautorotate",
		"-i", path,
		"-map", "0:v:0",
		"-vsync", "0",
		"-an", "-sn",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-",
	}
}

func (s *Source) start() error {
	args := decodeArgs(s.path)
	s.logger.Debug("Starting decoder: %s %s", s.ffmpegPath, strings.Join(args, " "))

	cmd := exec.CommandContext(s.ctx, s.ffmpegPath, args...)
	cmd.Stderr = &s.stderr
	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	s.cmd = cmd
	s.pipe = pipe
	s.frameBuf = make([]byte, s.info.Width*s.info.Height*bytesPerPixel)
	return nil
}

// ReadNext decodes the next frame.
func (s *Source) ReadNext() (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return nil, ErrReleased
	}
	if s.done {
		return nil, ports.ErrEndOfStream
	}
	if s.cmd == nil {
		if err := s.start(); err != nil {
			return nil, err
		}
	}

	_, err := io.ReadFull(s.pipe, s.frameBuf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		// A trailing partial frame is dropped.
		return nil, s.finish()
	}
	if err != nil {
		return nil, fmt.Errorf("read frame %d: %w", s.read, err)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.info.Width, s.info.Height))
	copy(img.Pix, s.frameBuf)
	s.read++
	return img, nil
}

// finish waits for ffmpeg after its output is exhausted. A failing exit
// before any frame was produced means the file could not be decoded; a
// failure after frames were delivered ends the stream.
func (s *Source) finish() error {
	s.done = true
	err := s.cmd.Wait()
	s.waited = true
	if err == nil {
		return ports.ErrEndOfStream
	}
	if ctxErr := s.ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	msg := strings.TrimSpace(s.stderr.String())
	if s.read == 0 {
		return fmt.Errorf("%w: %w: %s", ErrDecodeFailed, err, msg)
	}
	s.logger.Warn("Decoder stopped after %d frames: %s", s.read, msg)
	return ports.ErrEndOfStream
}

// Release stops ffmpeg if it is still running.
func (s *Source) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return nil
	}
	s.released = true

	if s.cmd == nil || s.waited {
		return nil
	}

	s.pipe.Close()
	s.cmd.Process.Kill()
	s.cmd.Wait()
	s.logger.Debug("Decoder stopped after %d frames", s.read)
	return nil
}

var (
	_ ports.VideoOpener = (*Opener)(nil)
	_ ports.VideoSource = (*Source)(nil)
)
