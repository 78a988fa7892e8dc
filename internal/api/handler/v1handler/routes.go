package v1handler

import "net/http"

// Register adds the v1 routes to mux. Every route requires a bearer token
// verified by sec.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	routes := []struct {
		pattern string
		fn      endpoint
	}{
		{"PUT /v1/me", h.SaveProfile},
		{"GET /v1/surveys", h.ListSurveys},
		{"GET /v1/surveys/{surveyID}", h.GetSurvey},
		{"POST /v1/surveys/{surveyID}/lois", h.AddLOI},
		{"POST /v1/mutations", h.SubmitMutations},
		{"GET /v1/submissions/{submissionID}", h.GetSubmission},
		{"GET /v1/lois/{loiID}/submissions", h.ListLOISubmissions},
	}

	for _, route := range routes {
		mux.Handle(route.pattern, h.secure(sec, h.serve(route.fn)))
	}
}
