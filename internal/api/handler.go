package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/eugenenazirov/partition-engine/internal/bins"
	"github.com/eugenenazirov/partition-engine/internal/packing"
	"github.com/eugenenazirov/partition-engine/internal/partition"
	"github.com/eugenenazirov/partition-engine/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires the packing engine and settings storage into HTTP handlers.
type Handler struct {
	storage storage.Storage

	clock func() time.Time

	mu                sync.RWMutex
	settingsUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		storage: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.settingsUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	_ = r
	settings, err := h.storage.GetSettings()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settingsResponse{
		Settings:  toSettingsPayload(settings),
		UpdatedAt: h.currentSettingsUpdatedAt(),
	})
}

func (h *Handler) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	settings := storage.Settings{
		BinSize:    req.BinSize,
		NumBins:    req.NumBins,
		Algorithm:  req.Algorithm,
		OutputType: req.OutputType,
	}
	if err := h.storage.SetSettings(settings); err != nil {
		if errors.Is(err, storage.ErrInvalidSettings) {
			writeError(w, http.StatusBadRequest, "Invalid settings", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markSettingsUpdated()

	updated, err := h.storage.GetSettings()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settingsResponse{
		Settings:  toSettingsPayload(updated),
		UpdatedAt: h.currentSettingsUpdatedAt(),
		Message:   "Settings updated successfully",
	})
}

func (h *Handler) handlePack(w http.ResponseWriter, r *http.Request) {
	var req packRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid request", "items must contain at least one value")
		return
	}
	for _, v := range req.Items {
		if v < 0 {
			writeError(w, http.StatusBadRequest, "Invalid request", "item values must be non-negative")
			return
		}
	}

	settings, err := h.storage.GetSettings()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	binsize := req.BinSize
	if binsize <= 0 {
		binsize = settings.BinSize
	}

	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = "online"
	}
	packer, err := packing.ByName(algorithm)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	fidelity := bins.KeepSums
	if req.KeepContents {
		fidelity = bins.KeepContents
	}

	items := make([]bins.Item, len(req.Items))
	for i, v := range req.Items {
		items[i] = v
	}

	start := h.clock()
	state, packErr := packer(bins.NewBinner(fidelity), binsize, items, nil)
	elapsed := time.Since(start)

	if packErr != nil {
		switch {
		case errors.Is(packErr, packing.ErrItemTooLarge):
			writeError(w, http.StatusUnprocessableEntity, "Item too large", packErr.Error(),
				"Increase binSize or remove items larger than the bin capacity")
		case errors.Is(packErr, packing.ErrInvalidBinSize):
			writeError(w, http.StatusBadRequest, "Invalid request", packErr.Error())
		default:
			writeInternalError(w, packErr)
		}
		return
	}

	resp := packResponse{
		Algorithm:         algorithm,
		BinSize:           binsize,
		NumBins:           state.Len(),
		Sums:              state.Sums(),
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	if contented, ok := state.(bins.Contented); ok {
		resp.Bins = contented.Contents()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePartition(w http.ResponseWriter, r *http.Request) {
	var req partitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Items) > 0 && len(req.ItemValues) > 0 {
		writeError(w, http.StatusBadRequest, "Invalid request", "provide either items or itemValues, not both")
		return
	}
	if len(req.Items) == 0 && len(req.ItemValues) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid request", "items or itemValues must contain at least one entry")
		return
	}

	settings, err := h.storage.GetSettings()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	numbins := req.NumBins
	if numbins <= 0 {
		numbins = settings.NumBins
	}

	algorithmName := req.Algorithm
	if algorithmName == "" {
		algorithmName = settings.Algorithm
	}
	algorithm, err := partition.AlgorithmByName(algorithmName)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	outputName := req.OutputType
	if outputName == "" {
		outputName = settings.OutputType
	}
	output, err := partition.OutputByName(outputName)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	var items partition.Items
	if len(req.ItemValues) > 0 {
		items = partition.Mapping(req.ItemValues)
	} else {
		items = partition.Values(req.Items)
	}

	start := h.clock()
	result, runErr := partition.Run(algorithm, numbins, items, output)
	elapsed := time.Since(start)

	if runErr != nil {
		switch {
		case errors.Is(runErr, partition.ErrInvalidItems),
			errors.Is(runErr, partition.ErrInvalidBinCount):
			writeError(w, http.StatusBadRequest, "Invalid request", runErr.Error())
		default:
			writeInternalError(w, runErr)
		}
		return
	}

	writeJSON(w, http.StatusOK, partitionResponse{
		Algorithm:         algorithmName,
		OutputType:        outputName,
		NumBins:           numbins,
		Result:            result,
		CalculationTimeMs: elapsed.Milliseconds(),
	})
}

func (h *Handler) currentSettingsUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.settingsUpdatedAt
}

func (h *Handler) markSettingsUpdated() {
	h.mu.Lock()
	h.settingsUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func toSettingsPayload(settings storage.Settings) settingsPayload {
	return settingsPayload{
		BinSize:    settings.BinSize,
		NumBins:    settings.NumBins,
		Algorithm:  settings.Algorithm,
		OutputType: settings.OutputType,
	}
}

type settingsPayload struct {
	BinSize    float64 `json:"binSize"`
	NumBins    int     `json:"numBins"`
	Algorithm  string  `json:"algorithm"`
	OutputType string  `json:"outputType"`
}

type settingsResponse struct {
	Settings  settingsPayload `json:"settings"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Message   string          `json:"message,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type packRequest struct {
	Algorithm    string    `json:"algorithm"`
	BinSize      float64   `json:"binSize"`
	Items        []float64 `json:"items"`
	KeepContents bool      `json:"keepContents"`
}

type packResponse struct {
	Algorithm         string        `json:"algorithm"`
	BinSize           float64       `json:"binSize"`
	NumBins           int           `json:"numBins"`
	Sums              []float64     `json:"sums"`
	Bins              [][]bins.Item `json:"bins,omitempty"`
	CalculationTimeMs int64         `json:"calculationTimeMs"`
}

type partitionRequest struct {
	Algorithm  string             `json:"algorithm"`
	NumBins    int                `json:"numBins"`
	Items      []float64          `json:"items"`
	ItemValues map[string]float64 `json:"itemValues"`
	OutputType string             `json:"outputType"`
}

type partitionResponse struct {
	Algorithm         string           `json:"algorithm"`
	OutputType        string           `json:"outputType"`
	NumBins           int              `json:"numBins"`
	Result            partition.Result `json:"result"`
	CalculationTimeMs int64            `json:"calculationTimeMs"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
