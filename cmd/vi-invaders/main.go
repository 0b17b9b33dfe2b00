package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/input"
	"github.com/lixenwraith/vi-invaders/parameter"
	"github.com/lixenwraith/vi-invaders/render"
	"github.com/lixenwraith/vi-invaders/replay"
	"github.com/lixenwraith/vi-invaders/status"
	"github.com/lixenwraith/vi-invaders/system"
)

var (
	configFlag   = flag.String("config", "", "Path to a YAML tuning file (default: ./"+config.DefaultConfigPath+", then built-in)")
	seedFlag     = flag.Uint64("seed", 0, "RNG seed, 0 picks one from the clock")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+parameter.LogDir+"/"+parameter.LogFileName)
	logLevelFlag = flag.String("log-level", "", "Log level: trace, debug, info, warn, error (default: $LOG_LEVEL or info)")
	recordFlag   = flag.String("record", "", "Record the session to a replay file")
	replayFlag   = flag.String("replay", "", "Play back a replay file headless and print the result")
	fpsFlag      = flag.Int("fps", int(time.Second/parameter.FrameUpdateInterval), "Target frames per second")
)

func main() {
	flag.Parse()

	log, logFile, err := setupLogging(*debugFlag, *logLevelFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-invaders: %v\n", err)
		os.Exit(2)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if *replayFlag != "" {
		err = runReplay(*replayFlag, log)
	} else {
		err = runGame(log)
	}
	if err != nil {
		log.WithError(err).Error("exit with error")
		fmt.Fprintf(os.Stderr, "vi-invaders: %v\n", err)
		os.Exit(1)
	}
}

// runGame hosts an interactive session on the terminal
func runGame(log *logrus.Logger) error {
	cfg, source, err := config.LoadAuto(*configFlag)
	if err != nil {
		return fmt.Errorf("load config (%s): %w", source, err)
	}
	if *fpsFlag <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *fpsFlag)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.WithFields(logrus.Fields{"config": source, "seed": seed, "fps": *fpsFlag}).Info("starting")

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer core.Recover()
	screen.HideCursor()

	reg := status.NewRegistry()
	world := engine.NewWorld(cfg, seed, log, reg)
	system.RegisterAll(world)

	renderer := render.NewScreenRenderer(screen, cfg.Effects.ExplosionDuration)
	driver := engine.NewFrameDriver(world, engine.NewInputState(), renderer)

	var rec *replay.Recorder
	var recFile *os.File
	if *recordFlag != "" {
		recFile, err = os.Create(*recordFlag)
		if err != nil {
			screen.Fini()
			return fmt.Errorf("create replay file: %w", err)
		}
		rec, err = replay.NewRecorder(recFile, seed, cfg)
		if err != nil {
			screen.Fini()
			recFile.Close()
			return err
		}
		driver.SetObserver(func(dt time.Duration, in engine.Intents) {
			rec.Observe(dt, in)
			if err := rec.Err(); err != nil {
				// Keep playing; the partial recording is still flushed on exit
				log.WithError(err).WithField("frames", rec.Frames()).Warn("recording stopped")
				driver.SetObserver(nil)
			}
		})
	}

	loop(screen, driver, renderer, reg)

	// Terminal back to normal before anything is printed
	core.SetCrashCleanup(nil)
	screen.Fini()

	if rec != nil {
		err = rec.Flush()
		if cerr := recFile.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close replay file: %w", cerr)
		}
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"file": *recordFlag, "frames": rec.Frames()}).Info("replay saved")
	}

	log.WithFields(reg.Fields()).Info("session summary")
	printSummary(world, reg)
	return nil
}

// loop runs until the player quits
// Terminal events are polled on their own goroutine; everything else happens here
func loop(screen tcell.Screen, driver *engine.FrameDriver, renderer *render.ScreenRenderer, reg *status.Registry) {
	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	clock := engine.NewPausableClock(engine.NewTimeProvider())
	mapper := input.NewMapper(nil)
	state := driver.Input()
	paused := reg.Bools.Get(status.KeyPaused)

	ticker := time.NewTicker(time.Second / time.Duration(*fpsFlag))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch mapper.HandleKey(ev, time.Now(), state) {
				case input.ActionQuit:
					return
				case input.ActionPause:
					p := clock.Toggle()
					paused.Store(p)
					renderer.SetPaused(p)
					mapper.Release(state)
					// Drop presses latched while toggling
					state.Consume()
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if clock.IsPaused() {
				driver.Buffer().Read(renderer.Render)
				continue
			}
			mapper.Apply(time.Now(), state)
			driver.Tick(clock.NowMs())
		}
	}
}

// runReplay plays a recording without a terminal and prints the outcome
func runReplay(path string, log *logrus.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open replay: %w", err)
	}
	defer f.Close()

	rd, err := replay.NewReader(f)
	if err != nil {
		return err
	}
	h := rd.Header()

	reg := status.NewRegistry()
	world := engine.NewWorld(h.Config, h.Seed, log, reg)
	system.RegisterAll(world)
	driver := engine.NewFrameDriver(world, nil, nil)

	start := time.Now()
	n, err := replay.Play(rd, driver)
	if err != nil {
		return fmt.Errorf("replay stopped after %d frames: %w", n, err)
	}
	log.WithFields(logrus.Fields{"file": path, "frames": n, "took": time.Since(start)}).Info("replay finished")

	fmt.Printf("replayed %d frames (seed %d)\n", n, h.Seed)
	printSummary(world, reg)
	return nil
}

func printSummary(w *engine.World, reg *status.Registry) {
	fmt.Printf("phase %s, level %d, score %d, high score %d\n",
		w.State.Phase, w.State.Level, w.State.Score, w.State.HighScore)

	fields := reg.Fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-20s %v\n", k, fields[k])
	}
}
