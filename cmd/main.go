package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/richinsley/sparky/audio"
	"github.com/richinsley/sparky/audio/pa"
	"github.com/richinsley/sparky/fonts"
	"github.com/richinsley/sparky/glfwcontext"
	"github.com/richinsley/sparky/graphics"
	"github.com/richinsley/sparky/maths"
	"github.com/richinsley/sparky/opengl"
	options "github.com/richinsley/sparky/options"
	"github.com/richinsley/sparky/window"
)

func init() {
	runtime.LockOSThread()
}

func run(opts *options.EngineOptions) error {
	var out audio.Output = pa.NewOutput()
	if *opts.Mute {
		out = audio.NewNullOutput()
	}

	dev := opengl.NewDevice()
	fontManager := fonts.NewManager()
	textureManager := graphics.NewTextureManager()
	soundManager := audio.NewManager(out, audio.DefaultSampleRate)

	win, err := window.New(window.Config{
		Title:  *opts.Title,
		Width:  *opts.Width,
		Height: *opts.Height,
	}, glfwcontext.NewPlatform(), dev, window.Services{
		Fonts:    fontManager,
		Textures: textureManager,
		Sound:    soundManager,
	})
	if err != nil {
		return err
	}
	defer win.Shutdown()
	win.SetVsync(*opts.Vsync)

	if *opts.ImageFile != "" {
		tex, err := graphics.LoadTextureFile(dev, "image", *opts.ImageFile, graphics.TextureParams{VFlip: true})
		if err != nil {
			return err
		}
		if _, err := textureManager.Add(tex); err != nil {
			return err
		}
		log.Printf("Loaded %s (%dx%d)", *opts.ImageFile, tex.Width(), tex.Height())
	}

	if *opts.SoundFile != "" {
		s, err := soundManager.LoadFile("background", *opts.SoundFile, *opts.FFMPEGPath)
		if err != nil {
			return err
		}
		s.Loop()
	}

	fb, err := graphics.NewFramebufferSize(dev, uint32(*opts.FramebufferWidth), uint32(*opts.FramebufferHeight))
	if err != nil {
		return fmt.Errorf("failed to create framebuffer: %w", err)
	}
	defer fb.Destroy()

	label := fontManager.Default()
	log.Printf("Default font %s, %q is %.0fpx wide", label.Name(), *opts.Title, label.Measure(*opts.Title))

	frames := 0
	for !win.Closed() {
		uv := win.CursorUV()
		fb.SetClearColor(maths.NewVec4(uv.X, uv.Y, 0.3, 1))
		fb.Bind()
		fb.Clear()

		graphics.BindDefault(dev, win.Width(), win.Height())
		win.Clear()

		win.Update()
		win.UpdateInput()
		frames++

		if win.IsKeyTyped(window.KeyEscape) {
			win.RequestClose()
		}
		if win.IsKeyTyped(window.KeySpace) {
			win.SetVsync(!win.Vsync())
			log.Printf("Vsync: %v", win.Vsync())
		}
		if win.IsMouseButtonClicked(window.MouseLeft) {
			pos := win.MousePosition()
			log.Printf("Click at %.0f,%.0f (frame %d)", pos.X, pos.Y, frames)
		}
	}
	return nil
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("Sparky sandbox")
		flag.PrintDefaults()
		return
	}
	opts.Resolve()

	if err := run(opts); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
