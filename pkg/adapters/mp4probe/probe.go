// Package mp4probe reads video track metadata from MP4/MOV containers.
//
// ffprobe does not always report a frame count (nb_frames) for a stream. For
// ISO BMFF files the sample tables give the exact number of video samples,
// which is what a sequential decode of the track yields.
package mp4probe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Eyevinn/mp4ff/mp4"
)

// Codec represents a video codec type.
type Codec string

const (
	CodecH264    Codec = "h264"
	CodecHEVC    Codec = "hevc"
	CodecAV1     Codec = "av1"
	CodecVP9     Codec = "vp9"
	CodecUnknown Codec = "unknown"
)

var (
	// ErrNoVideoTrack is returned when the container has no video track.
	ErrNoVideoTrack = errors.New("mp4probe: no video track found")

	// ErrNotMP4 is returned when the data is not a decodable ISO BMFF file.
	ErrNotMP4 = errors.New("mp4probe: not an mp4 file")
)

// Info describes the first video track of a container.
type Info struct {
	Codec      Codec
	Width      int
	Height     int
	FrameCount int
	Timescale  uint32
	Duration   time.Duration
	FrameRate  float64 // Average rate: FrameCount / Duration
	Fragmented bool
}

// ProbeFile reads video track metadata from the file at path.
func ProbeFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

// ProbeBytes reads video track metadata from MP4 data.
func ProbeBytes(data []byte) (Info, error) {
	return ProbeReader(bytes.NewReader(data))
}

// ProbeReader reads video track metadata from r.
func ProbeReader(r io.ReadSeeker) (Info, error) {
	mp4File, err := mp4.DecodeFile(r)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrNotMP4, err)
	}

	if mp4File.IsFragmented() {
		return probeFragmented(mp4File)
	}
	return probeProgressive(mp4File)
}

func probeProgressive(mp4File *mp4.File) (Info, error) {
	if mp4File.Moov == nil {
		return Info{}, fmt.Errorf("%w: no moov box", ErrNotMP4)
	}

	trak := findVideoTrack(mp4File.Moov.Traks)
	if trak == nil {
		return Info{}, ErrNoVideoTrack
	}

	info := describeTrack(trak)
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsz == nil {
		return info, fmt.Errorf("no sample table found")
	}
	stbl := trak.Mdia.Minf.Stbl

	count := stbl.Stsz.SampleNumber
	info.FrameCount = int(count)

	var total uint64
	if stbl.Stts != nil && count > 0 {
		decodeTime, dur := stbl.Stts.GetDecodeTime(count)
		total = decodeTime + uint64(dur)
	}
	info.Duration, info.FrameRate = rate(info.FrameCount, total, info.Timescale)
	return info, nil
}

func probeFragmented(mp4File *mp4.File) (Info, error) {
	if mp4File.Init == nil || mp4File.Init.Moov == nil {
		return Info{}, fmt.Errorf("%w: no init segment", ErrNotMP4)
	}

	trak := findVideoTrack(mp4File.Init.Moov.Traks)
	if trak == nil {
		return Info{}, ErrNoVideoTrack
	}

	info := describeTrack(trak)
	info.Fragmented = true
	trackID := trak.Tkhd.TrackID

	var trex *mp4.TrexBox
	if mp4File.Init.Moov.Mvex != nil {
		for _, t := range mp4File.Init.Moov.Mvex.Trexs {
			if t.TrackID == trackID {
				trex = t
				break
			}
		}
	}

	var total uint64
	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			hasTrack := false
			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd.TrackID == trackID {
					hasTrack = true
				}
			}
			if !hasTrack {
				continue
			}

			samples, err := frag.GetFullSamples(trex)
			if err != nil {
				return info, fmt.Errorf("get samples: %w", err)
			}
			for _, s := range samples {
				info.FrameCount++
				total += uint64(s.Dur)
			}
		}
	}

	info.Duration, info.FrameRate = rate(info.FrameCount, total, info.Timescale)
	return info, nil
}

func findVideoTrack(traks []*mp4.TrakBox) *mp4.TrakBox {
	for _, trak := range traks {
		if trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "vide" {
			return trak
		}
	}
	return nil
}

func describeTrack(trak *mp4.TrakBox) Info {
	info := Info{Codec: CodecUnknown, Timescale: 1000}
	if trak.Mdia.Mdhd != nil && trak.Mdia.Mdhd.Timescale != 0 {
		info.Timescale = trak.Mdia.Mdhd.Timescale
	}

	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return info
	}
	for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
		codec := codecFromType(child.Type())
		if codec == CodecUnknown {
			continue
		}
		info.Codec = codec
		if vse, ok := child.(*mp4.VisualSampleEntryBox); ok {
			info.Width = int(vse.Width)
			info.Height = int(vse.Height)
		}
		break
	}
	return info
}

func codecFromType(boxType string) Codec {
	switch boxType {
	case "avc1", "avc3":
		return CodecH264
	case "hvc1", "hev1":
		return CodecHEVC
	case "av01":
		return CodecAV1
	case "vp09":
		return CodecVP9
	default:
		return CodecUnknown
	}
}

// rate converts a sample count and a total duration in timescale units into
// a wall-clock duration and an average frame rate.
func rate(frames int, total uint64, timescale uint32) (time.Duration, float64) {
	if timescale == 0 || total == 0 {
		return 0, 0
	}
	seconds := float64(total) / float64(timescale)
	return time.Duration(seconds * float64(time.Second)), float64(frames) / seconds
}
