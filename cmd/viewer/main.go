package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Ko-stant/floorplan-engine/internal/config"
	"github.com/Ko-stant/floorplan-engine/internal/floorplan"
	"github.com/Ko-stant/floorplan-engine/internal/geometry"
	"github.com/Ko-stant/floorplan-engine/internal/logger"
	"github.com/Ko-stant/floorplan-engine/internal/protocol"
	"github.com/Ko-stant/floorplan-engine/internal/report"
	"github.com/Ko-stant/floorplan-engine/internal/web/views"
	"github.com/Ko-stant/floorplan-engine/internal/ws"
)

const pollInterval = time.Second

// viewerState holds the last good snapshot of the watched plan.
type viewerState struct {
	mu       sync.RWMutex
	snapshot protocol.PlanSnapshot
}

func (s *viewerState) get() protocol.PlanSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *viewerState) set(snap protocol.PlanSnapshot) {
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}

func buildSnapshot(a *floorplan.Analysis) protocol.PlanSnapshot {
	plan := make([]string, a.Grid.Height())
	for y := range plan {
		plan[y] = a.Grid.Line(y)
	}

	rooms := make([]protocol.RoomLite, 0, len(a.NamesByRegion))
	for id, name := range a.NamesByRegion {
		rooms = append(rooms, protocol.RoomLite{
			RegionID: id,
			Name:     name,
			Counts:   countsMap(a.RegionCounts[id]),
		})
	}

	return protocol.PlanSnapshot{
		Plan:            plan,
		MapWidth:        a.Grid.Width(),
		MapHeight:       a.Grid.Height(),
		RegionsCount:    a.Regions.RegionsCount,
		CellRegionIDs:   a.Regions.CellRegionIDs,
		Rooms:           rooms,
		Totals:          countsMap(a.Totals),
		Report:          report.Render(a),
		Warnings:        a.Warnings,
		ProtocolVersion: "v0",
	}
}

func countsMap(c floorplan.Counts) map[string]int {
	m := make(map[string]int, len(c))
	for i, n := range c {
		m[string(geometry.ChairSymbols[i])] = n
	}
	return m
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: viewer [<plan-file>]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Serves a read-only view of an analyzed floor plan. Without a\nplan file a built-in sample plan is shown.\n")
	}
	flag.Parse()

	cfg := config.Load()
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "viewer")
	if err != nil {
		fmt.Fprintf(os.Stderr, "viewer: failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	opts := floorplan.Options{Labeler: cfg.Labeler}
	state := &viewerState{}

	planPath := flag.Arg(0)
	if planPath == "" {
		analysis, err := floorplan.Analyze(geometry.DevPlan(), opts)
		if err != nil {
			log.Fatal("built-in sample plan failed to analyze", zap.Error(err))
		}
		state.set(buildSnapshot(analysis))
		log.Info("serving built-in sample plan")
	} else {
		analysis, err := floorplan.AnalyzeFile(planPath, opts)
		if err != nil {
			log.Fatal("initial analysis failed", zap.String("plan", planPath), zap.Error(err))
		}
		state.set(buildSnapshot(analysis))
		log.Info("serving plan", zap.String("plan", planPath))
	}

	hub := ws.NewHub()
	var sequence uint64

	if planPath != "" {
		go watchPlan(planPath, opts, state, hub, &sequence, log)
	}

	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		if err := views.PlanPage(state.get()).Render(req.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	r.Get("/api/snapshot", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(state.get()); err != nil {
			log.Warn("encoding snapshot failed", zap.Error(err))
		}
	})

	r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
		conn, err := websocket.Accept(w, req, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.Add(conn)
		go func(c *websocket.Conn) {
			defer hub.Remove(c)
			defer c.Close(websocket.StatusNormalClosure, "")
			for {
				// Clients send nothing meaningful; reads only detect closure.
				if _, _, err := c.Read(context.Background()); err != nil {
					return
				}
			}
		}(conn)
	})

	log.Info("listening", zap.String("addr", cfg.ViewerAddr))
	if err := http.ListenAndServe(cfg.ViewerAddr, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// watchPlan polls the plan file's mtime and re-analyzes on change. A plan
// that stops analyzing keeps the last good snapshot and notifies clients
// of the failure.
func watchPlan(path string, opts floorplan.Options, state *viewerState, hub *ws.Hub, sequence *uint64, log *zap.Logger) {
	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for range ticker.C {
		info, err := os.Stat(path)
		if err != nil {
			log.Warn("plan file unreadable", zap.String("plan", path), zap.Error(err))
			continue
		}
		if !info.ModTime().After(lastMod) {
			continue
		}
		lastMod = info.ModTime()

		analysis, err := floorplan.AnalyzeFile(path, opts)
		if err != nil {
			log.Warn("plan reload failed", zap.String("plan", path), zap.Error(err))
			b, _ := json.Marshal(protocol.PatchEnvelope{
				Sequence: atomic.AddUint64(sequence, 1),
				Type:     "planReloadFailed",
				Payload:  protocol.PlanReloadFailed{Error: err.Error()},
			})
			hub.Broadcast(context.Background(), b)
			continue
		}

		snap := buildSnapshot(analysis)
		state.set(snap)
		b, _ := json.Marshal(protocol.PatchEnvelope{
			Sequence: atomic.AddUint64(sequence, 1),
			Type:     "planReloaded",
			Payload:  protocol.PlanReloaded{Snapshot: snap},
		})
		hub.Broadcast(context.Background(), b)
		log.Info("plan reloaded", zap.Int("clients", hub.Count()), zap.Int("regions", snap.RegionsCount))
	}
}
