package http

import "net/http"

const (
	serviceName    = "GoodFoods AI Agent"
	agentName      = "Samvaad - AI Reservation Assistant"
	serviceVersion = "1.0.0"
)

func (api SamvaadServer) ServiceInfo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ServiceInfoResp{
		Message: serviceName + " API is running!",
		Status:  "healthy",
		Version: serviceVersion,
		Agent:   agentName,
	})
}

func (api SamvaadServer) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResp{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: api.TimeProvider.Now().UTC(),
	})
}
