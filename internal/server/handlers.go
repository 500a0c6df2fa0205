package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/loanlens/emi-calculator/internal/calculation"
	"github.com/loanlens/emi-calculator/internal/domain"
	"github.com/loanlens/emi-calculator/internal/output"
	"github.com/loanlens/emi-calculator/internal/repository"
	"github.com/loanlens/emi-calculator/pkg/dateutil"
)

const maxMessageBytes = 64 << 10

type calculateRequest struct {
	Principal decimal.Decimal `json:"principal"`
	Rate      decimal.Decimal `json:"rate"`
	Term      int             `json:"term"`
	Unit      string          `json:"unit"`
	Start     string          `json:"start"` // YYYY-MM, defaults to the current month
}

type calculateResponse struct {
	Cached bool           `json:"cached"`
	Report *output.Report `json:"report"`
}

type classifyResponse struct {
	Classification domain.Classification `json:"classification"`
	Label          string                `json:"label"`
	Gauge          output.Gauge          `json:"gauge"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) calculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	input, err := s.loanInput(req)
	if err != nil {
		s.respondCalcError(w, err)
		return
	}

	key := repository.CalculationKey(input)
	if cached, ok := s.cache.Get(r.Context(), key); ok {
		var report output.Report
		if err := json.Unmarshal([]byte(cached), &report); err == nil && report.Result != nil {
			s.render(report.Result)
			respondJSON(w, http.StatusOK, calculateResponse{Cached: true, Report: &report})
			return
		}
		s.logger.WithField("key", key).Warn("discarding unreadable cache entry")
	}

	result, err := s.engine.Calculate(r.Context(), input)
	if err != nil {
		s.respondCalcError(w, err)
		return
	}
	report := output.BuildReport(result, s.engine.TierClassifier(), s.labels)
	if data, err := json.Marshal(report); err == nil {
		if err := s.cache.Set(r.Context(), key, string(data)); err != nil {
			s.logger.WithError(err).Warn("failed to cache calculation")
		}
	}
	s.render(result)
	respondJSON(w, http.StatusOK, calculateResponse{Report: report})
}

// loanInput converts the request to a canonical input so equal loans share a cache key.
func (s *Server) loanInput(req calculateRequest) (domain.LoanInput, error) {
	unit, err := calculation.ParseAmountUnit(req.Unit)
	if err != nil {
		return domain.LoanInput{}, err
	}
	principal, err := calculation.ToCanonical(req.Principal, unit)
	if err != nil {
		return domain.LoanInput{}, err
	}
	start := dateutil.StartOfMonth(s.now())
	if strings.TrimSpace(req.Start) != "" {
		if start, err = dateutil.ParseYearMonth(req.Start); err != nil {
			return domain.LoanInput{}, &calculation.InvalidInputError{Field: "start", Value: req.Start, Message: "expected YYYY-MM"}
		}
	}
	return domain.LoanInput{
		Principal:         principal,
		AnnualRatePercent: req.Rate,
		TermMonths:        req.Term,
		Unit:              domain.UnitRaw,
		StartDate:         start,
	}, nil
}

func (s *Server) classify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw := q.Get("amount")
	if strings.TrimSpace(raw) == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "amount is required", Field: "amount"})
		return
	}
	unit, err := calculation.ParseAmountUnit(q.Get("unit"))
	if err != nil {
		s.respondCalcError(w, err)
		return
	}
	canonical, err := calculation.ToCanonical(calculation.ParseAmount(raw), unit)
	if err != nil {
		s.respondCalcError(w, err)
		return
	}

	key := repository.ClassificationKey(canonical.String())
	if cached, ok := s.cache.Get(r.Context(), key); ok {
		var resp classifyResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			respondJSON(w, http.StatusOK, resp)
			return
		}
	}

	c, err := s.engine.ClassifyAmount(canonical, domain.UnitRaw)
	if err != nil {
		s.respondCalcError(w, err)
		return
	}
	resp := classifyResponse{
		Classification: c,
		Label:          output.FormatAmountLabel(c.Amount),
		Gauge:          output.BuildGauge(s.engine.TierClassifier(), c.Amount),
	}
	if data, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(r.Context(), key, string(data)); err != nil {
			s.logger.WithError(err).Warn("failed to cache classification")
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// message applies a cross-context update. Anything that is not a usable
// update is acknowledged with 204 and leaves the surfaces untouched.
func (s *Server) message(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxMessageBytes))
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	result, ok := s.engine.HandleMessage(body)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	view, err := s.presenter.Render(result)
	if err != nil {
		s.logger.WithError(err).Error("failed to render message")
		respondError(w, http.StatusInternalServerError, "render failed")
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) chart(w http.ResponseWriter, r *http.Request) {
	surface := s.presenter.Bar
	switch strings.ToLower(r.URL.Query().Get("surface")) {
	case "all":
		view, ok := s.presenter.Current()
		if !ok {
			respondError(w, http.StatusNotFound, "nothing rendered yet")
			return
		}
		respondJSON(w, http.StatusOK, view)
		return
	case "", "bar":
	case "pie":
		surface = s.presenter.Pie
	case "gauge":
		surface = s.presenter.Gauge
	case "table":
		surface = s.presenter.Table
	default:
		respondError(w, http.StatusBadRequest, "unknown surface")
		return
	}
	artifact, ok := surface.Current()
	if !ok {
		respondError(w, http.StatusNotFound, "nothing rendered yet")
		return
	}
	respondJSON(w, http.StatusOK, artifact)
}

func (s *Server) render(result *domain.CalculationResult) {
	if _, err := s.presenter.Render(result); err != nil {
		s.logger.WithError(err).Error("failed to render calculation")
	}
}

func (s *Server) respondCalcError(w http.ResponseWriter, err error) {
	var invalid *calculation.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: invalid.Message, Field: invalid.Field})
	case errors.Is(err, calculation.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.WithError(err).Error("calculation failed")
		respondError(w, http.StatusInternalServerError, "calculation failed")
	}
}
