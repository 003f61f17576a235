package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/render"
)

var (
	debugFlag = flag.Bool("debug", false, "Enable debug logging to logs/")
	seedFlag  = flag.Uint64("seed", 0, "Firing RNG seed (0 = time-based)")
	muteFlag  = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before reporting, or the trace
	// is unreadable in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nINVADERS CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	var sounds engine.SoundSink = engine.NopSound{}
	if !*muteFlag {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err == nil {
			sounds = sm
			defer sm.Cleanup()
		} else {
			log.Printf("audio init failed: %v (continuing without audio)", err)
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("session start: seed=%d", seed)

	session := engine.NewSession(seed, sounds)
	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider())
	collector := input.NewCollector()

	width, height := screen.Size()
	renderer := render.NewRenderer(screen, width, height)

	// Input polling runs in its own goroutine; events drain into the frame
	// loop through the channel
	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if resize, ok := ev.(*tcell.EventResize); ok {
				w, h := resize.Size()
				renderer.Resize(w, h)
				screen.Sync()
				continue
			}
			collector.HandleEvent(ev)

		case <-frameTicker.C:
			dt := clock.Tick()
			in := collector.Frame()
			if in.Quit {
				return
			}
			session.Update(dt, in)
			renderer.Draw(session.Snapshot())
		}
	}
}
