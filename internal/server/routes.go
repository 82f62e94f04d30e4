package server

import "net/http"

// Routes registers the handlers and wraps them with the request logger.
func (s *ServerContext) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/projections", s.HandleProjections)
	mux.HandleFunc("GET /api/project", s.HandleProject)
	mux.HandleFunc("GET /api/unproject", s.HandleUnproject)
	mux.HandleFunc("GET /render", s.HandleRender)

	return RequestLogger(mux)
}
