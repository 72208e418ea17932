package options

import (
	"flag"
	"os"
)

type EngineOptions struct {
	Title             *string
	Width             *int
	Height            *int
	Vsync             *bool
	FramebufferWidth  *int // Offscreen target size; 0 follows the window.
	FramebufferHeight *int
	SoundFile         *string // Played in a loop when set. WAV is decoded natively, other formats via FFmpeg.
	ImageFile         *string // Registered with the texture manager as "image".
	Mute              *bool   // Mix into a null output instead of PortAudio.
	FFMPEGPath        *string
	Help              *bool
}

// Register defines the engine flags on fs.
func Register(fs *flag.FlagSet) *EngineOptions {
	return &EngineOptions{
		Title:             fs.String("title", "Sparky", "Window title"),
		Width:             fs.Int("width", 1280, "Window width"),
		Height:            fs.Int("height", 720, "Window height"),
		Vsync:             fs.Bool("vsync", true, "Synchronize buffer swaps with the display"),
		FramebufferWidth:  fs.Int("fb-width", 0, "Offscreen framebuffer width (0 = window width)"),
		FramebufferHeight: fs.Int("fb-height", 0, "Offscreen framebuffer height (0 = window height)"),
		SoundFile:         fs.String("sound", "", "Sound file to loop"),
		ImageFile:         fs.String("image", "", "Image file to load as a texture"),
		Mute:              fs.Bool("mute", false, "Disable audio output"),
		FFMPEGPath:        fs.String("ffmpeg", "", "Path to ffmpeg executable (from SPARKY_FFMPEG env var if not set)"),
		Help:              fs.Bool("help", false, "Show help message"),
	}
}

// Resolve fills values that depend on the environment or on other flags.
func (o *EngineOptions) Resolve() {
	if *o.FFMPEGPath == "" {
		*o.FFMPEGPath = os.Getenv("SPARKY_FFMPEG")
	}
	if *o.FramebufferWidth <= 0 {
		*o.FramebufferWidth = *o.Width
	}
	if *o.FramebufferHeight <= 0 {
		*o.FramebufferHeight = *o.Height
	}
}
