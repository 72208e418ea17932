package audio

import "sync"

// Sound is a decoded mono clip. Playback state is shared with the mixer
// thread and guarded by mu.
type Sound struct {
	name    string
	samples []float32

	mu         sync.Mutex
	gain       float32
	pos        int
	playing    bool
	paused     bool
	looping    bool
	finished   bool
	onFinished func()
}

// NewSound wraps samples recorded at the manager's sample rate.
func NewSound(name string, samples []float32) *Sound {
	return &Sound{name: name, samples: samples, gain: 1}
}

func (s *Sound) Name() string { return s.name }

// Len returns the clip length in samples.
func (s *Sound) Len() int { return len(s.samples) }

// Play starts the clip from the beginning once.
func (s *Sound) Play() {
	s.start(false)
}

// Loop starts the clip from the beginning and repeats it until stopped.
func (s *Sound) Loop() {
	s.start(true)
}

func (s *Sound) start(loop bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = 0
	s.playing = true
	s.paused = false
	s.looping = loop
	s.finished = false
}

func (s *Sound) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playing {
		s.paused = true
	}
}

func (s *Sound) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = false
}

// Stop halts playback and rewinds. The finished callback does not fire.
func (s *Sound) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
	s.paused = false
	s.pos = 0
}

// SetGain sets the linear volume. Negative values are treated as zero.
func (s *Sound) SetGain(gain float32) {
	if gain < 0 {
		gain = 0
	}
	s.mu.Lock()
	s.gain = gain
	s.mu.Unlock()
}

func (s *Sound) Gain() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gain
}

func (s *Sound) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing && !s.paused
}

// Position returns the playback position in samples.
func (s *Sound) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// OnFinished sets a callback fired from Manager.Update after a non-looping
// playback reaches the end.
func (s *Sound) OnFinished(f func()) {
	s.mu.Lock()
	s.onFinished = f
	s.mu.Unlock()
}

// mixInto adds the next len(out) samples to out.
func (s *Sound) mixInto(out []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.playing || s.paused {
		return
	}
	if len(s.samples) == 0 {
		s.playing = false
		s.finished = true
		return
	}
	for i := range out {
		if s.pos >= len(s.samples) {
			if !s.looping {
				break
			}
			s.pos = 0
		}
		out[i] += s.samples[s.pos] * s.gain
		s.pos++
	}
	if !s.looping && s.pos >= len(s.samples) {
		s.playing = false
		s.finished = true
	}
}

// takeFinished clears the finished flag and returns the callback to run.
func (s *Sound) takeFinished() (func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.finished {
		return nil, false
	}
	s.finished = false
	return s.onFinished, true
}
