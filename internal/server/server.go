// Package server exposes the tracker, statistics, and batch simulation
// over HTTP, plus a websocket feed of live events.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"baccarat-lab/internal/batch"
	"baccarat-lab/internal/config"
	"baccarat-lab/internal/domain"
	"baccarat-lab/internal/grid"
	"baccarat-lab/internal/history"
	"baccarat-lab/internal/observability"
	"baccarat-lab/internal/predictor"
	"baccarat-lab/internal/simulation"
	"baccarat-lab/internal/staking"
	"baccarat-lab/internal/stats"
	"baccarat-lab/internal/storage"
)

// Options contains dependencies for creating a Server. Stores may be nil;
// batch endpoints then run without persistence.
type Options struct {
	History    *history.Store
	RunStore   storage.ShoeRunStore
	BatchStore storage.BatchResultStore
	TrajStore  storage.TrajectoryStore
	Metrics    *observability.Metrics
	Logger     *log.Logger
	Defaults   config.SimulationConfig
}

// Server is the HTTP API. It owns the live hub and the batch runner.
type Server struct {
	history    *history.Store
	runner     *batch.Runner
	batchStore storage.BatchResultStore
	metrics    *observability.Metrics
	logger     *log.Logger
	defaults   config.SimulationConfig
	hub        *Hub
	router     chi.Router
}

// New creates a Server with all routes registered.
func New(opts Options) *Server {
	s := &Server{
		history:    opts.History,
		batchStore: opts.BatchStore,
		metrics:    opts.Metrics,
		logger:     opts.Logger,
		defaults:   opts.Defaults,
	}
	if s.history == nil {
		s.history = history.NewStore()
	}

	s.hub = NewHub(opts.Metrics, opts.Logger)
	s.runner = batch.NewRunner(batch.RunnerOptions{
		RunStore:   opts.RunStore,
		BatchStore: opts.BatchStore,
		TrajStore:  opts.TrajStore,
		Metrics:    opts.Metrics,
		Logger:     opts.Logger,
		OnRunComplete: func(r *domain.ShoeRunResult) {
			s.hub.Broadcast(runEvent{
				Type:          "run",
				RunID:         r.RunID,
				BatchID:       r.BatchID,
				RoundsPlayed:  r.RoundsPlayed,
				FinalBankroll: r.FinalBankroll,
				Busted:        r.Busted,
			})
		},
	})

	r := chi.NewRouter()
	r.Route("/v1", func(rr chi.Router) {
		rr.Post("/history/outcomes", s.handleAppendOutcome)
		rr.Get("/history/outcomes", s.handleGetHistory)
		rr.Delete("/history/outcomes", s.handleClearHistory)
		rr.Get("/stats", s.handleStats)
		rr.Get("/prediction", s.handlePrediction)
		rr.Get("/grid", s.handleGrid)
		rr.Post("/simulations/batch", s.handleRunBatch)
		rr.Get("/batches/{id}", s.handleGetBatch)
		rr.Get("/live", s.hub.Handler)
	})
	r.Handle("/metrics", observability.Handler())
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type outcomeEvent struct {
	Type    string `json:"type"`
	Outcome string `json:"outcome"`
	Total   int    `json:"total"`
}

type runEvent struct {
	Type          string  `json:"type"`
	RunID         string  `json:"run_id"`
	BatchID       string  `json:"batch_id"`
	RoundsPlayed  int     `json:"rounds_played"`
	FinalBankroll float64 `json:"final_bankroll"`
	Busted        bool    `json:"busted"`
}

type appendOutcomeRequest struct {
	Outcome string `json:"outcome"`
}

func (s *Server) handleAppendOutcome(w http.ResponseWriter, r *http.Request) {
	var req appendOutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	outcome, err := domain.ParseOutcome(req.Outcome)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.history.Append(outcome); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.metrics != nil {
		s.metrics.HistoryOutcomesAppended.Inc()
	}
	total := s.history.Len()
	s.hub.Broadcast(outcomeEvent{Type: "outcome", Outcome: string(outcome), Total: total})

	writeJSON(w, http.StatusOK, map[string]int{"total": total})
}

type historyResponse struct {
	Outcomes []string `json:"outcomes"`
	Encoded  string   `json:"encoded"`
	Total    int      `json:"total"`
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	outcomes := s.history.Outcomes()
	resp := historyResponse{
		Outcomes: make([]string, 0, len(outcomes)),
		Encoded:  history.EncodeRLE(outcomes),
		Total:    len(outcomes),
	}
	for _, o := range outcomes {
		resp.Outcomes = append(resp.Outcomes, string(o))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	s.history.Clear()
	writeJSON(w, http.StatusOK, map[string]int{"total": 0})
}

type probabilitiesDTO struct {
	Banker float64 `json:"banker"`
	Player float64 `json:"player"`
	Tie    float64 `json:"tie"`
}

type statsResponse struct {
	Counts          map[string]int   `json:"counts"`
	Total           int              `json:"total"`
	Probabilities   probabilitiesDTO `json:"probabilities"`
	Confidence      float64          `json:"confidence"`
	AlternationRate float64          `json:"alternation_rate"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	summary := stats.Summarize(s.history.Outcomes())

	counts := make(map[string]int, len(summary.Counts))
	for o, n := range summary.Counts {
		counts[string(o)] = n
	}
	writeJSON(w, http.StatusOK, statsResponse{
		Counts: counts,
		Total:  summary.Total,
		Probabilities: probabilitiesDTO{
			Banker: summary.Probabilities.Banker,
			Player: summary.Probabilities.Player,
			Tie:    summary.Probabilities.Tie,
		},
		Confidence:      summary.Confidence,
		AlternationRate: summary.AlternationRate,
	})
}

type predictionResponse struct {
	Side           string  `json:"side"`
	Probability    float64 `json:"probability"`
	TieProbability float64 `json:"tie_probability"`
}

func (s *Server) handlePrediction(w http.ResponseWriter, r *http.Request) {
	summary := stats.Summarize(s.history.Outcomes())
	p := predictor.Predict(summary.Probabilities)

	writeJSON(w, http.StatusOK, predictionResponse{
		Side:           string(p.Side),
		Probability:    p.Probability,
		TieProbability: p.TieProbability,
	})
}

type gridResponse struct {
	Kind   string     `json:"kind"`
	Layout [][]string `json:"layout"`
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = "bead"
	}

	outcomes := s.history.Outcomes()
	var layout grid.Layout
	switch kind {
	case "bead":
		layout = grid.BeadPlate(outcomes, 0, 0)
	case "bigroad":
		layout = grid.BigRoad(outcomes, 0, 0)
	default:
		writeError(w, http.StatusBadRequest, "kind must be bead or bigroad")
		return
	}

	cells := make([][]string, len(layout))
	for i, row := range layout {
		cells[i] = make([]string, len(row))
		for j, o := range row {
			cells[i][j] = string(o)
		}
	}
	writeJSON(w, http.StatusOK, gridResponse{Kind: kind, Layout: cells})
}

type batchRequest struct {
	RunCount         int     `json:"run_count"`
	HandCount        int     `json:"hand_count"`
	BetUnit          float64 `json:"bet_unit"`
	StartingBankroll float64 `json:"starting_bankroll"`
	PolicyType       string  `json:"policy_type"`
	BaseUnit         float64 `json:"base_unit"`
	Seed             int64   `json:"seed"`
	Workers          int     `json:"workers"`
}

type batchResponse struct {
	BatchID             string  `json:"batch_id"`
	PolicyID            string  `json:"policy_id"`
	CreatedAt           int64   `json:"created_at"`
	RunCount            int     `json:"run_count"`
	BustCount           int     `json:"bust_count"`
	BustRate            float64 `json:"bust_rate"`
	AvgFinalBankroll    float64 `json:"avg_final_bankroll"`
	BestFinalBankroll   float64 `json:"best_final_bankroll"`
	WorstFinalBankroll  float64 `json:"worst_final_bankroll"`
	MedianFinalBankroll float64 `json:"median_final_bankroll"`
	StddevFinalBankroll float64 `json:"stddev_final_bankroll"`
	P10FinalBankroll    float64 `json:"p10_final_bankroll"`
	P90FinalBankroll    float64 `json:"p90_final_bankroll"`
}

func toBatchResponse(b *domain.BatchResult) batchResponse {
	return batchResponse{
		BatchID:             b.BatchID,
		PolicyID:            b.PolicyID,
		CreatedAt:           b.CreatedAt,
		RunCount:            b.RunCount,
		BustCount:           b.BustCount,
		BustRate:            b.BustRate,
		AvgFinalBankroll:    b.AvgFinalBankroll,
		BestFinalBankroll:   b.BestFinalBankroll,
		WorstFinalBankroll:  b.WorstFinalBankroll,
		MedianFinalBankroll: b.MedianFinalBankroll,
		StddevFinalBankroll: b.StddevFinalBankroll,
		P10FinalBankroll:    b.P10FinalBankroll,
		P90FinalBankroll:    b.P90FinalBankroll,
	}
}

func (s *Server) handleRunBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	cfg := s.batchConfig(req)
	result, err := s.runner.RunBatch(r.Context(), cfg)
	if err != nil {
		if isConfigError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toBatchResponse(result))
}

// batchConfig fills unset request fields from the configured defaults.
func (s *Server) batchConfig(req batchRequest) domain.BatchConfig {
	if req.RunCount == 0 {
		req.RunCount = s.defaults.RunCount
	}
	if req.HandCount == 0 {
		req.HandCount = s.defaults.HandCount
	}
	if req.BetUnit == 0 {
		req.BetUnit = s.defaults.BetUnit
	}
	if req.StartingBankroll == 0 {
		req.StartingBankroll = s.defaults.StartingBankroll
	}
	if req.Workers == 0 {
		req.Workers = s.defaults.Workers
	}
	if req.PolicyType == "" {
		req.PolicyType = string(domain.StakingFlat)
	}
	if req.BaseUnit == 0 {
		req.BaseUnit = req.BetUnit
	}

	return domain.BatchConfig{
		RunCount: req.RunCount,
		Seed:     req.Seed,
		Workers:  req.Workers,
		Shoe: domain.ShoeConfig{
			HandCount:        req.HandCount,
			BetUnit:          req.BetUnit,
			StartingBankroll: req.StartingBankroll,
			Staking: domain.StakingConfig{
				PolicyType: domain.StakingPolicyType(req.PolicyType),
				BaseUnit:   req.BaseUnit,
			},
		},
	}
}

func (s *Server) handleGetBatch(w http.ResponseWriter, r *http.Request) {
	if s.batchStore == nil {
		writeError(w, http.StatusNotFound, "batch persistence is not configured")
		return
	}

	batchID := chi.URLParam(r, "id")
	result, err := s.batchStore.GetByID(r.Context(), batchID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "batch not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toBatchResponse(result))
}

// isConfigError reports whether err stems from a caller-supplied value.
func isConfigError(err error) bool {
	for _, target := range []error{
		batch.ErrInvalidRunCount,
		simulation.ErrInvalidBetUnit,
		simulation.ErrInvalidBankroll,
		simulation.ErrInvalidHandCount,
		staking.ErrUnknownPolicyType,
		staking.ErrInvalidBaseUnit,
		domain.ErrInvalidDistribution,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
