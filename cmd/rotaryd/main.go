package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	rotary "github.com/CarlosSiles67/Rotary"
	"github.com/CarlosSiles67/Rotary/gpio"
	"github.com/CarlosSiles67/Rotary/internal/config"
	"github.com/CarlosSiles67/Rotary/internal/debug"
)

func main() {
	cfgPath := flag.String("config", filepath.Join("configs", "rotaryd.yaml"), "path to config file")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load configuration
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	// Initialize debug system
	debug.Init(cfg.Defaults.DebugLevel)
	debug.Section("Initialization")
	debug.Value("Config path", *cfgPath)
	debug.Value("Debug level", cfg.Defaults.DebugLevel)
	debug.Value("GPIO driver", cfg.Defaults.GPIODriver)

	// Initialize GPIO driver
	gpioDriver, err := gpio.NewDriver(cfg.Defaults.GPIODriver)
	if err != nil {
		log.Fatalf("init GPIO failed: %v", err)
	}
	defer func() {
		if err := gpioDriver.Close(); err != nil {
			log.Printf("closing GPIO driver failed: %v", err)
		}
	}()

	// Initialize the encoder unit
	mode := rotary.FullStep
	if cfg.HalfStep() {
		mode = rotary.HalfStep
	}
	enc, err := rotary.New(gpioDriver, rotary.SystemClock(), rotary.Config{
		PinA:      cfg.Encoder.PinA,
		PinB:      cfg.Encoder.PinB,
		ButtonPin: cfg.Encoder.ButtonPin,
		Mode:      mode,
	})
	if err != nil {
		log.Fatalf("init encoder failed: %v", err)
	}
	debug.Value("Line A pin", cfg.Encoder.PinA)
	debug.Value("Line B pin", cfg.Encoder.PinB)
	debug.Value("Button pin", cfg.Encoder.ButtonPin)
	debug.Value("Step mode", mode)

	// Optional MQTT fan-out
	pub, err := newPublisher(cfg.MQTT)
	if err != nil {
		log.Fatalf("init MQTT failed: %v", err)
	}
	defer pub.close()

	debug.Section("Polling")
	debug.Value("Poll interval", cfg.PollInterval())

	if err := run(ctx, enc, cfg, pub); err != nil {
		log.Fatalf("polling loop failed: %v", err)
	}
}

// run samples the encoder at a fixed interval until the context is
// cancelled. The interval must stay well below the fastest expected
// rotation; transitions that fall between samples are lost.
func run(ctx context.Context, enc *rotary.Rotary, cfg *config.Config, pub *publisher) error {
	ticker := time.NewTicker(cfg.PollInterval())
	defer ticker.Stop()

	hasButton := cfg.Encoder.ButtonPin > 0

	for {
		select {
		case <-ctx.Done():
			debug.Info("Shutting down")
			return nil
		case <-ticker.C:
		}

		dir, err := enc.Process()
		if err != nil {
			return fmt.Errorf("process encoder: %w", err)
		}
		if dir != rotary.DirNone {
			debug.Turn(dir.String())
			pub.publishTurn(dir)
		}

		if !hasButton {
			continue
		}

		// The two detectors keep independent state, so the daemon can
		// watch for clicks and holds on the same button.
		pressed, err := enc.ButtonPressedReleased(cfg.Debounce())
		if err != nil {
			return fmt.Errorf("poll button: %w", err)
		}
		if pressed {
			debug.Button("press")
			pub.publishButton("press")
		}

		held, err := enc.ButtonPressedHeld(cfg.Hold())
		if err != nil {
			return fmt.Errorf("poll button: %w", err)
		}
		if held {
			debug.Button("hold")
			pub.publishButton("hold")
		}
	}
}
