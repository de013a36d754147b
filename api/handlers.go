/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes payroll.Compute via REST API. Handles HTTP request/response and
  JSON serialization, and delegates every calculation to the payroll package.

ENDPOINTS:
  Payroll:
    POST   /api/payroll/compute        Compute one payroll
    POST   /api/payroll/batch          Compute many payrolls independently
    GET    /api/payroll/rates          Fixed surcharges and deduction rates

  Scenarios:
    GET    /api/scenarios              List reference scenarios
    POST   /api/scenarios/run          Run a reference scenario

  Health:
    GET    /api/health                 Liveness

REQUEST FLOW:
  1. Read the body (bounded by maxBodyBytes)
  2. Decode with factory.ParseInput
  3. Call payroll.Compute
  4. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed JSON, empty or oversized batch
  - 404: Unknown scenario
  - 413: Body too large
  - 422: Payroll validation failure (code = validation kind), or
         amounts too large to encode (code = amount_out_of_range)

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Reference scenarios
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
)

const (
	// DefaultMaxBatchSize bounds the number of items in a batch request.
	DefaultMaxBatchSize = 500

	maxBodyBytes = 1 << 20
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the settings shared by HTTP handlers.
type Handler struct {
	MaxBatchSize int

	// newBatchID generates batch identifiers; replaced in tests.
	newBatchID func() string
}

// NewHandler creates a handler. A non-positive maxBatch uses DefaultMaxBatchSize.
func NewHandler(maxBatch int) *Handler {
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatchSize
	}
	return &Handler{
		MaxBatchSize: maxBatch,
		newBatchID:   uuid.NewString,
	}
}

// =============================================================================
// PAYROLL HANDLERS
// =============================================================================

// ComputePayroll computes a single payroll.
// POST /api/payroll/compute
func (h *Handler) ComputePayroll(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	in, err := factory.ParseInput(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	res, errResp := computeDTO(in)
	if errResp != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errResp)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// ComputeBatch computes every item of a batch. A failing item does not
// affect the others.
// POST /api/payroll/batch
func (h *Handler) ComputeBatch(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	var req BatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Batch has no items", Code: "empty_batch"})
		return
	}
	if len(req.Items) > h.MaxBatchSize {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("Batch has %d items, maximum is %d", len(req.Items), h.MaxBatchSize),
			Code:  "batch_too_large",
		})
		return
	}

	resp := BatchResponseDTO{
		BatchID: h.newBatchID(),
		Items:   make([]BatchItemDTO, len(req.Items)),
	}
	for i, raw := range req.Items {
		item := BatchItemDTO{Index: i}

		in, err := factory.ParseInput(raw)
		if err != nil {
			item.Error = &ErrorResponse{Error: "Invalid item", Code: "malformed_input", Details: err.Error()}
		} else {
			item.Result, item.Error = computeDTO(in)
		}

		if item.Error != nil {
			resp.Failed++
		} else {
			resp.Succeeded++
		}
		resp.Items[i] = item
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetRates returns the fixed payroll policy.
// GET /api/payroll/rates
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toRatesDTO(payroll.Rates()))
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns all reference scenarios.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// RunScenario computes a reference scenario. Validation scenarios are
// expected to fail; their error is part of a 200 response.
// POST /api/scenarios/run
func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	var req RunScenarioRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	scenario, ok := findScenario(req.ScenarioID)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error: fmt.Sprintf("Unknown scenario: %s", req.ScenarioID),
			Code:  "scenario_not_found",
		})
		return
	}

	run := ScenarioRunDTO{Scenario: scenario}
	run.Result, run.Error = computeDTO(scenario.Input.ToInput())

	writeJSON(w, http.StatusOK, run)
}

// Health reports liveness.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

// computeDTO runs one computation and returns exactly one of result or error.
func computeDTO(in payroll.Input) (*PayrollResultDTO, *ErrorResponse) {
	res, err := in.Compute()
	if err != nil {
		return nil, toValidationErrorResponse(err)
	}
	dto, err := toPayrollResultDTO(res)
	if err != nil {
		return nil, &ErrorResponse{Error: err.Error(), Code: "amount_out_of_range"}
	}
	return dto, nil
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large", err)
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return nil, false
	}
	return body, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("write json failed", "status", status, "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
