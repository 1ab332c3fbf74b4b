// Command gravityman-sim runs a session without a window. It flips gravity
// on a fixed script so level data and physics can be soaked headless.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/automoto/gravityman/config"
	"github.com/automoto/gravityman/game"
	"github.com/automoto/gravityman/shared/leveldata"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	levelsPath := flag.String("levels", "", "Level pack: a .yaml file, a .tmx file, or a directory of .tmx maps")
	generated := flag.Int("generated", 0, "Number of generated levels appended to the sequence")
	tickRate := flag.Int("tickrate", config.Tick.Rate, "Simulation ticks per second (realtime mode)")
	ticks := flag.Int("ticks", 0, "Run this many ticks as fast as possible and exit (0 = realtime until signalled)")
	flipEvery := flag.Int("flip", 90, "Ticks between scripted gravity changes (0 = never)")
	script := flag.String("script", "left,up,right,down", "Comma separated gravity directions cycled by the flip script")
	duration := flag.Duration("duration", 0, "Stop a realtime run after this long (0 = until signalled)")
	verbose := flag.Bool("v", false, "Log every session event")
	flag.Parse()

	var (
		logger *zap.Logger
		err    error
	)
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	opts := []game.Option{game.WithLogger(logger), game.WithGenerated(*generated)}
	if *levelsPath != "" {
		levels, err := leveldata.LoadPath(*levelsPath)
		if err != nil {
			logger.Fatal("load levels", zap.String("path", *levelsPath), zap.Error(err))
		}
		opts = append(opts, game.WithLevels(levels))
	}

	session, err := game.New(opts...)
	if err != nil {
		logger.Fatal("create session", zap.Error(err))
	}
	session.RequestStart()

	directions := strings.Split(*script, ",")
	step := 0
	onTick := func(s *game.Session) {
		s.DrainEvents()
		step++
		if *flipEvery > 0 && step%*flipEvery == 0 && len(directions) > 0 {
			flip := step / *flipEvery
			s.SetGravityDirection(strings.TrimSpace(directions[(flip-1)%len(directions)]))
		}
	}

	if *ticks > 0 {
		for i := 0; i < *ticks; i++ {
			session.Tick()
			onTick(session)
		}
		report(logger, session)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	loop := game.NewLoop(session, *tickRate, onTick)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loop.Run()
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down simulation")
		loop.Stop()
		return nil
	})

	logger.Info("starting simulation",
		zap.String("run", session.RunID().String()),
		zap.Int("tickRate", *tickRate),
		zap.Int("flipEvery", *flipEvery),
		zap.Duration("duration", *duration))
	start := time.Now()
	if err := g.Wait(); err != nil {
		logger.Error("simulation failed", zap.Error(err))
	}
	logger.Info("wall time", zap.Duration("elapsed", time.Since(start)))
	report(logger, session)
}

func report(logger *zap.Logger, session *game.Session) {
	snap := session.Snapshot()
	logger.Info("simulation finished",
		zap.Uint64("tick", snap.Tick),
		zap.Stringer("mode", snap.Mode),
		zap.Strings("status", snap.StatusLines()))
}
