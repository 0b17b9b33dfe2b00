// Package replay records and plays back simulation input as a msgpack stream
//
// Stream layout: one Header followed by one Frame per tick. A world built from the
// header's seed and config and fed the frames in order reproduces the session exactly.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/engine"
)

const (
	Magic         = "vi-invaders-replay"
	FormatVersion = 1
)

var (
	ErrBadMagic   = errors.New("not a replay stream")
	ErrBadVersion = errors.New("unsupported replay version")
)

// Header identifies the session a replay was recorded from
type Header struct {
	Magic   string        `msgpack:"magic"`
	Version int           `msgpack:"version"`
	Seed    uint64        `msgpack:"seed"`
	Config  config.Config `msgpack:"config"`
}

// Frame is one tick's input
type Frame struct {
	Dt      time.Duration  `msgpack:"d"`
	Intents engine.Intents `msgpack:"i"`
}

// ===== RECORDING =====

// Recorder appends frames to a stream
// Not safe for concurrent use; install Observe as the frame driver's observer
type Recorder struct {
	bw     *bufio.Writer
	enc    *msgpack.Encoder
	frames int
	err    error
}

// NewRecorder writes the header and returns a recorder for the rest of the stream
func NewRecorder(w io.Writer, seed uint64, cfg config.Config) (*Recorder, error) {
	bw := bufio.NewWriter(w)
	enc := msgpack.NewEncoder(bw)
	h := Header{Magic: Magic, Version: FormatVersion, Seed: seed, Config: cfg}
	if err := enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("write replay header: %w", err)
	}
	return &Recorder{bw: bw, enc: enc}, nil
}

// Observe records one frame; after the first error further frames are dropped
func (r *Recorder) Observe(dt time.Duration, in engine.Intents) {
	if r.err != nil {
		return
	}
	f := Frame{Dt: dt, Intents: in}
	if err := r.enc.Encode(&f); err != nil {
		r.err = fmt.Errorf("write replay frame %d: %w", r.frames, err)
		return
	}
	r.frames++
}

// Frames returns the number of frames recorded
func (r *Recorder) Frames() int {
	return r.frames
}

// Err returns the first write error, if any
func (r *Recorder) Err() error {
	return r.err
}

// Flush writes buffered frames to the underlying writer
func (r *Recorder) Flush() error {
	if r.err != nil {
		return r.err
	}
	if err := r.bw.Flush(); err != nil {
		return fmt.Errorf("flush replay: %w", err)
	}
	return nil
}

// ===== PLAYBACK =====

// Reader decodes a replay stream
type Reader struct {
	br     *bufio.Reader
	dec    *msgpack.Decoder
	header Header
}

// NewReader reads and validates the header
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	dec := msgpack.NewDecoder(br)
	var h Header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("read replay header: %w", err)
	}
	if h.Magic != Magic {
		return nil, ErrBadMagic
	}
	if h.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, h.Version)
	}
	if err := h.Config.Validate(); err != nil {
		return nil, fmt.Errorf("replay config: %w", err)
	}
	return &Reader{br: br, dec: dec, header: h}, nil
}

func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next frame, io.EOF at a clean end of stream
// A stream ending inside a frame yields io.ErrUnexpectedEOF
func (r *Reader) Next() (Frame, error) {
	if _, err := r.br.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("read replay frame: %w", err)
	}

	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Frame{}, fmt.Errorf("read replay frame: %w", err)
	}
	return f, nil
}

// Play feeds every remaining frame to the driver and returns the number played
// A truncated stream plays the complete frames before the error
func Play(r *Reader, d *engine.FrameDriver) (int, error) {
	n := 0
	for {
		f, err := r.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		d.Step(f.Dt, f.Intents)
		n++
	}
}
