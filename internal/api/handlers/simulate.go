package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nestegg/wealth-projector/internal/api/models"
	"github.com/nestegg/wealth-projector/internal/config"
	"github.com/nestegg/wealth-projector/internal/domain"
	"github.com/nestegg/wealth-projector/internal/output"
	"github.com/nestegg/wealth-projector/internal/simulation"
)

// SimulationHandler serves projection runs.
type SimulationHandler struct{}

// NewSimulationHandler creates a new simulation handler.
func NewSimulationHandler() *SimulationHandler {
	return &SimulationHandler{}
}

// Simulate handles POST /api/v1/simulate with a JSON body.
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	h.run(c, req)
}

// SimulateQuery handles GET /api/v1/simulate. The query string is the
// shareable form of a run; seed round-trips as an exact integer.
func (h *SimulationHandler) SimulateQuery(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	h.run(c, req)
}

// RepresentativePaths handles GET /api/v1/simulate/paths, returning raw
// year records for the realized paths nearest the requested final-balance
// ranks.
func (h *SimulationHandler) RepresentativePaths(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	params := req.Params()
	if err := params.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_PARAMETER", err.Error())
		return
	}

	seed := resolveSeed(req.Seed)
	runner := simulation.NewRunner(req.PathCount, seed)
	results, err := runner.Run(c.Request.Context(), params)
	if err != nil {
		respondRunError(c, err)
		return
	}

	paths, err := simulation.RepresentativePaths(results, req.Ranks)
	if err != nil {
		respondRunError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PathsResponse{
		ID:    uuid.NewString(),
		Seed:  seed,
		Paths: paths,
	})
}

func (h *SimulationHandler) run(c *gin.Context, req models.SimulateRequest) {
	params := req.Params()
	if err := params.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_PARAMETER", err.Error())
		return
	}

	view := req.View
	if view == "" {
		view = config.ViewNominal
	}
	if view != config.ViewNominal && view != config.ViewReal {
		respondError(c, http.StatusBadRequest, "INVALID_PARAMETER", "view must be \"nominal\" or \"real\"")
		return
	}

	seed := resolveSeed(req.Seed)
	runner := simulation.NewRunner(req.PathCount, seed)
	results, err := runner.Run(c.Request.Context(), params)
	if err != nil {
		respondRunError(c, err)
		return
	}

	bands, err := simulation.ComputePercentiles(results, req.Ranks, view == config.ViewReal)
	if err != nil {
		respondRunError(c, err)
		return
	}

	ranks := req.Ranks
	if len(ranks) == 0 {
		ranks = simulation.DefaultRanks
	}
	report := output.NewReport(params, seed, view, ranks, results, bands)
	if req.IncludePaths {
		if paths, err := simulation.RepresentativePaths(results, ranks); err == nil {
			report.Representative = paths
		}
	}

	c.JSON(http.StatusOK, models.SimulateResponse{
		ID:     uuid.NewString(),
		Status: "ok",
		Query:  req.Query(seed),
		Report: report,
	})
}

// resolveSeed derives a wall-clock seed when the caller supplied none.
// This is the documented boundary for nondeterminism: the derived seed is
// always echoed back so the run stays reproducible.
func resolveSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}

func respondRunError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvalidParameter) {
		respondError(c, http.StatusBadRequest, "INVALID_PARAMETER", err.Error())
		return
	}
	respondError(c, http.StatusInternalServerError, "SIMULATION_ERROR", err.Error())
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
