// Package pa plays engine audio through PortAudio.
package pa

// We'll be using portaudio for audio output.
// macos:	brew install portaudio
// debian:	sudo apt-get install portaudio19-dev
// windows:	pacman -S mingw-w64-x86_64-portaudio

import (
	"fmt"
	"log"

	"github.com/gordonklaus/portaudio"
	"github.com/richinsley/sparky/audio"
)

// Output streams mono float32 audio to the default output device.
type Output struct {
	stream      *portaudio.Stream
	isStreaming bool
}

func NewOutput() *Output {
	return &Output{}
}

func (o *Output) Open(sampleRate int, fill func(out []float32)) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	host, err := portaudio.DefaultHostApi()
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if host.DefaultOutputDevice == nil {
		portaudio.Terminate()
		return fmt.Errorf("no default audio output device")
	}

	params := portaudio.LowLatencyParameters(nil, host.DefaultOutputDevice)
	params.Output.Channels = 1
	params.SampleRate = float64(sampleRate)

	stream, err := portaudio.OpenStream(params, fill)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("failed to open audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("failed to start audio stream: %w", err)
	}
	o.stream = stream
	o.isStreaming = true
	log.Printf("PortAudio output on %s", host.DefaultOutputDevice.Name)
	return nil
}

func (o *Output) Close() error {
	if !o.isStreaming {
		return nil
	}
	o.isStreaming = false
	if err := o.stream.Close(); err != nil {
		portaudio.Terminate()
		return err
	}
	return portaudio.Terminate()
}

var _ audio.Output = (*Output)(nil)
