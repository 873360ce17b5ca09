package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kataras/golog"

	"github.com/lixenwraith/touchport/audio"
	"github.com/lixenwraith/touchport/bridge"
	"github.com/lixenwraith/touchport/config"
	"github.com/lixenwraith/touchport/engine"
	"github.com/lixenwraith/touchport/host"
	"github.com/lixenwraith/touchport/parameter"
	"github.com/lixenwraith/touchport/platform"
	"github.com/lixenwraith/touchport/translator"
)

var (
	configPath = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/touchport.log")
)

var logger = golog.Child("[main]")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(*debugFlag, cfg.Log.Level); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: reset the terminal before printing so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTOUCHPORT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var chime host.Chime
	if cfg.Notify.Chime {
		feedback := audio.NewFeedback()
		if err := feedback.Initialize(); err != nil {
			logger.Warnf("audio initialization failed: %v (continuing without chime)", err)
		} else {
			chime = feedback
			defer feedback.Cleanup()
		}
	}

	clock := engine.NewMonotonicClock()
	queue := platform.NewQueue()

	term := host.NewTerminal(screen, host.TerminalOptions{
		Clock: clock,
		Store: config.NewSessionStore(cfg.Session.Path),
		Chime: chime,
		Hide:  cfg.Host.HiddenTypes(),
	})

	tr := translator.New(translator.Options{
		Clock:                 clock,
		Source:                queue,
		Surface:               term,
		Lifecycle:             term,
		Notifier:              term,
		Localizer:             config.NewCatalog(cfg.Messages),
		NotifyDuration:        cfg.Notify.Duration(),
		TouchpadMode:          cfg.Modes.Touchpad,
		ClickAndDragMode:      cfg.Modes.ClickAndDrag,
		JoystickUpFallthrough: cfg.Compat.JoystickUpFallthrough,
	})

	uptime := 0
	tr.SetTimer(time.Second, func() { uptime++ })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Bridge.Enabled {
		srv := bridge.NewServer(cfg.Bridge.Path, queue)
		go func() {
			if err := srv.ListenAndServe(ctx, cfg.Bridge.Listen); err != nil {
				logger.Errorf("bridge stopped: %v", err)
			}
		}()
	}

	adapter := host.NewAdapter(queue, term)

	eventChan := make(chan tcell.Event, 256)
	go func() {
		// Panic recovery for the input goroutine to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(parameter.HostFrameInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !adapter.Handle(ev) {
				return
			}

		case <-frameTicker.C:
			for i := 0; i < parameter.HostMaxPollsPerFrame; i++ {
				ev, ok := tr.Poll()
				if ok {
					term.Record(ev)
					continue
				}
				if queue.Len() == 0 {
					break
				}
			}
			term.Draw(statusLine(tr, term, uptime))
		}
	}
}

func statusLine(tr *translator.Translator, term *host.Terminal, uptime int) string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	return fmt.Sprintf(" touchpad:%s  click-drag:%s  orientation:%s  sound:%s  up:%ds  ^S mute  ^C quit ",
		onOff(tr.TouchpadMode()), onOff(tr.ClickAndDragMode()), tr.Orientation(), onOff(!term.Muted()), uptime)
}
