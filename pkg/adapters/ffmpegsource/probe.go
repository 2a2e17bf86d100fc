package ffmpegsource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// streamInfo is the subset of ffprobe's stream and format report used to
// plan a decode.
type streamInfo struct {
	Codec     string
	Width     int
	Height    int
	FrameRate float64
	Frames    int     // 0 when the container does not record a count
	Duration  float64 // seconds, 0 when unknown
}

type probeOutput struct {
	Streams []struct {
		CodecName    string `json:"codec_name"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		RFrameRate   string `json:"r_frame_rate"`
		AvgFrameRate string `json:"avg_frame_rate"`
		NbFrames     string `json:"nb_frames"`
		Duration     string `json:"duration"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func runFFprobe(ctx context.Context, ffprobePath, path string) (streamInfo, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, ffprobePath,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=codec_name,width,height,r_frame_rate,avg_frame_rate,nb_frames,duration:format=duration",
		"-of", "json",
		path,
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return streamInfo{}, fmt.Errorf("%w: %w: %s", ErrProbeFailed, err, strings.TrimSpace(stderr.String()))
	}

	return parseProbeOutput(stdout.Bytes())
}

func parseProbeOutput(data []byte) (streamInfo, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return streamInfo{}, fmt.Errorf("%w: parse ffprobe output: %w", ErrProbeFailed, err)
	}
	if len(out.Streams) == 0 {
		return streamInfo{}, ErrNoVideoStream
	}

	s := out.Streams[0]
	if s.Width <= 0 || s.Height <= 0 {
		return streamInfo{}, fmt.Errorf("%w: invalid frame size %dx%d", ErrNoVideoStream, s.Width, s.Height)
	}

	info := streamInfo{
		Codec:  s.CodecName,
		Width:  s.Width,
		Height: s.Height,
	}

	info.FrameRate = parseRate(s.AvgFrameRate)
	if info.FrameRate == 0 {
		info.FrameRate = parseRate(s.RFrameRate)
	}

	if n, err := strconv.Atoi(s.NbFrames); err == nil && n > 0 {
		info.Frames = n
	}

	info.Duration = parseFloat(s.Duration)
	if info.Duration == 0 {
		info.Duration = parseFloat(out.Format.Duration)
	}

	return info, nil
}

// parseRate parses an ffprobe rational such as "30000/1001" or a plain number.
// Invalid or undefined rates such as "0/0" yield 0.
func parseRate(s string) float64 {
	num, den, found := strings.Cut(s, "/")
	if !found {
		return parseFloat(s)
	}
	n := parseFloat(num)
	d := parseFloat(den)
	if d == 0 {
		return 0
	}
	return n / d
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// estimateFrames mirrors what demuxers without a frame index report:
// duration multiplied by frame rate, rounded.
func estimateFrames(duration, fps float64) int {
	if duration <= 0 || fps <= 0 {
		return 0
	}
	return int(math.Round(duration * fps))
}
