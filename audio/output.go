package audio

import "sync"

// Output plays mono float32 samples. fill is called from the output's own
// thread and must write len(out) samples.
type Output interface {
	Open(sampleRate int, fill func(out []float32)) error
	Close() error
}

// NullOutput discards audio. Pull drives the mixer by hand, which is how
// headless runs and tests advance playback.
type NullOutput struct {
	mu   sync.Mutex
	fill func([]float32)
	rate int
}

func NewNullOutput() *NullOutput {
	return &NullOutput{}
}

func (o *NullOutput) Open(sampleRate int, fill func(out []float32)) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fill = fill
	o.rate = sampleRate
	return nil
}

func (o *NullOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fill = nil
	return nil
}

// Pull mixes n samples. It returns nil when the output is closed.
func (o *NullOutput) Pull(n int) []float32 {
	o.mu.Lock()
	fill := o.fill
	o.mu.Unlock()
	if fill == nil {
		return nil
	}
	out := make([]float32, n)
	fill(out)
	return out
}

func (o *NullOutput) SampleRate() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rate
}
