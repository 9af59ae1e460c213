package main

import (
	"context"
	"flag"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/roadpath/internal/config"
	"github.com/katalvlaran/roadpath/internal/log"
	"github.com/katalvlaran/roadpath/internal/metrics"
	"github.com/katalvlaran/roadpath/internal/server"
	"github.com/katalvlaran/roadpath/pathfind"
)

func serveCmd(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", "", "listen address (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	l := log.New(cfg)
	gin.SetMode(gin.ReleaseMode)

	g, err := loadGraph(ctx, cfg.Dataset.Path, cfg.Dataset.Cache, l)
	if err != nil {
		l.Error().Err(err).Str("path", cfg.Dataset.Path).Msg("loading dataset")
		return err
	}

	opts := []pathfind.Option{pathfind.WithMaxSpeedKPH(cfg.Search.MaxSpeedKPH)}
	if !cfg.Search.Calibrate {
		opts = append(opts, pathfind.WithoutCalibration())
	}
	pf, err := pathfind.New(g, opts...)
	if err != nil {
		return err
	}
	l.Info().Float64("heuristic_speed_mps", pf.HeuristicSpeed()).Msg("pathfinder ready")

	srv := server.New(pf, server.Options{
		Logger:       l,
		Metrics:      metrics.New(),
		QueryTimeout: cfg.QueryTimeout(),
		AllowOrigins: cfg.Server.AllowOrigins,
	})
	return srv.Run(ctx, cfg.Server.Addr,
		time.Duration(cfg.Server.ReadTimeoutSeconds)*time.Second,
		time.Duration(cfg.Server.WriteTimeoutSeconds)*time.Second)
}
