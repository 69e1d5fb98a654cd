package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/bizintel/internal/answer"
	"github.com/sells-group/bizintel/internal/extract"
	"github.com/sells-group/bizintel/internal/model"
	"github.com/sells-group/bizintel/internal/scrape"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type scrapeRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		writeError(w, http.StatusBadRequest, "URL is required", "")
		return
	}

	target := scrape.NormalizeURL(req.URL)
	start := time.Now()

	body, err := s.scraper.Fetch(r.Context(), target)
	if err != nil {
		zap.L().Warn("scrape failed",
			zap.String("url", target),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "Scraping failed", err.Error())
		return
	}

	profile := extract.Profile(body, time.Since(start))
	writeJSON(w, http.StatusOK, profile)
}

type chatRequest struct {
	Message      string                 `json:"message"`
	BusinessData *model.BusinessProfile `json:"business_data"`
}

type chatResponse struct {
	Role    string `json:"role"`
	Message string `json:"message"`
	Cached  bool   `json:"cached"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	ans, err := s.engine.Ask(r.Context(), req.BusinessData, req.Message)
	if err != nil {
		switch {
		case eris.Is(err, answer.ErrEmptyQuestion):
			writeError(w, http.StatusBadRequest, "Message is required", "")
		case eris.Is(err, answer.ErrMissingProfile):
			writeError(w, http.StatusBadRequest, "Business data is required", "")
		default:
			zap.L().Error("chat generation failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "AI generation failed", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Role:    "assistant",
		Message: ans.Message,
		Cached:  ans.Cached,
	})
}
