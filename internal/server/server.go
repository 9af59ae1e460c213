package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadpath/geo"
	"github.com/katalvlaran/roadpath/internal/metrics"
	"github.com/katalvlaran/roadpath/pathfind"
	"github.com/katalvlaran/roadpath/roadgraph"
)

// Server is the HTTP front of one Pathfinder.
type Server struct {
	pf      *pathfind.Pathfinder
	log     zerolog.Logger
	metrics *metrics.Metrics
	timeout time.Duration
	engine  *gin.Engine
}

// New wires routes and middleware around pf.
func New(pf *pathfind.Pathfinder, opts Options) *Server {
	s := &Server{
		pf:      pf,
		log:     opts.Logger,
		metrics: opts.Metrics,
		timeout: opts.QueryTimeout,
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	if s.timeout <= 0 {
		s.timeout = DefaultQueryTimeout
	}
	g := pf.Graph()
	s.metrics.SetGraph(g.NodeCount(), g.EdgeCount())

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(s.log), cors.New(corsConfig(opts.AllowOrigins)))

	api := r.Group("/api")
	api.POST("/pathfind", s.handlePathfind)
	api.GET("/algorithms", s.handleAlgorithms)
	api.GET("/graph", s.handleGraph)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	s.engine = r
	return s
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", requestIDHeader}
	return cfg
}

// Handler returns the gin engine.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type outcome struct {
	res *pathfind.Result
	err error
}

func (s *Server) handlePathfind(c *gin.Context) {
	var req pathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.CountQuery("", metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	strategy, err := pathfind.ParseStrategy(req.Algorithm)
	if err != nil {
		s.metrics.CountQuery(req.Algorithm, metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	start := geo.LatLon{Lat: req.Start[0], Lon: req.Start[1]}
	end := geo.LatLon{Lat: req.End[0], Lon: req.End[1]}
	if !start.Valid() || !end.Valid() {
		s.metrics.CountQuery(strategy.String(), metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("%v: start %v end %v", geo.ErrBadCoordinate, start, end)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()
	done := make(chan outcome, 1)
	go func() {
		res, err := s.pf.Pathfind(strategy, start, end)
		done <- outcome{res: res, err: err}
	}()

	var o outcome
	select {
	case o = <-done:
	case <-ctx.Done():
		s.metrics.CountQuery(strategy.String(), metrics.OutcomeTimeout)
		s.log.Warn().Str("algorithm", strategy.String()).Dur("timeout", s.timeout).Msg("query deadline exceeded")
		c.JSON(http.StatusGatewayTimeout, errorResponse{Error: "query deadline exceeded"})
		return
	}

	if o.err != nil {
		s.metrics.CountQuery(strategy.String(), metrics.OutcomeError)
		status := http.StatusInternalServerError
		if errors.Is(o.err, roadgraph.ErrNotFound) {
			status = http.StatusNotFound
		}
		s.log.Error().Err(o.err).Str("algorithm", strategy.String()).Msg("query failed")
		c.JSON(status, errorResponse{Error: o.err.Error()})
		return
	}

	res := o.res
	label := metrics.OutcomeFound
	if !res.Found() {
		label = metrics.OutcomeNoRoute
	}
	s.metrics.ObserveQuery(strategy.String(), label, res.RunTime, res.Closed)
	s.log.Info().
		Str("algorithm", strategy.String()).
		Int64("start", res.Start.ID).
		Int64("goal", res.Goal.ID).
		Bool("found", res.Found()).
		Float64("weight", res.TotalWeight).
		Int("closed", res.Closed).
		Dur("run_time", res.RunTime).
		Msg("query")

	c.JSON(http.StatusOK, toResponse(res))
}

func (s *Server) handleAlgorithms(c *gin.Context) {
	names := make([]string, 0, 4)
	for _, st := range pathfind.Strategies() {
		names = append(names, st.String())
	}
	c.JSON(http.StatusOK, gin.H{"algorithms": names})
}

func (s *Server) handleGraph(c *gin.Context) {
	g := s.pf.Graph()
	lo, hi := geo.FromPoint(g.Bounds().Min), geo.FromPoint(g.Bounds().Max)
	c.JSON(http.StatusOK, graphResponse{
		Nodes:          g.NodeCount(),
		Edges:          g.EdgeCount(),
		Min:            [2]float64{lo.Lat, lo.Lon},
		Max:            [2]float64{hi.Lat, hi.Lon},
		MaxEdgeSpeed:   finite(g.MaxEdgeSpeed()),
		HeuristicSpeed: finite(s.pf.HeuristicSpeed()),
	})
}
