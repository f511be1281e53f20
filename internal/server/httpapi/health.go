package httpapi

import "net/http"

type healthResponse struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "healthy",
		Timestamp:   now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Uptime:      now.Sub(s.startedAt).Seconds(),
		Environment: s.cfg.Environment,
	})
}
