package v1handler

import (
	"ground/pkg/domain"
	"ground/pkg/serrors"
	"net/http"

	"github.com/google/uuid"
)

// SaveProfile stores the profile of the authenticated user.
func (h Handler) SaveProfile(r *http.Request) (int, encoder, error) {
	user, err := h.deps.Collector.SaveProfile(r.Context(), GetUserFromContext(r.Context()))
	if err != nil {
		return 0, nil, err //nolint: wrapcheck
	}

	return http.StatusOK, userBody(*user), nil
}

// ListSurveys returns the surveys shared with the authenticated user.
func (h Handler) ListSurveys(r *http.Request) (int, encoder, error) {
	user := GetUserFromContext(r.Context())
	surveys, err := h.deps.Collector.Surveys(r.Context(), user)
	if err != nil {
		return 0, nil, err //nolint: wrapcheck
	}

	return http.StatusOK, surveyListBody{surveys: surveys, email: user.Email}, nil
}

// GetSurvey returns a survey with its jobs and locations of interest.
func (h Handler) GetSurvey(r *http.Request) (int, encoder, error) {
	surveyID, err := pathID(r, "surveyID")
	if err != nil {
		return 0, nil, err
	}

	user := GetUserFromContext(r.Context())
	overview, err := h.deps.Collector.SurveyOverview(r.Context(), user, domain.SurveyID(surveyID))
	if err != nil {
		return 0, nil, err //nolint: wrapcheck
	}

	return http.StatusOK, overviewBody{overview: overview, email: user.Email}, nil
}

// AddLOI adds a location of interest to a survey.
func (h Handler) AddLOI(r *http.Request) (int, encoder, error) {
	surveyID, err := pathID(r, "surveyID")
	if err != nil {
		return 0, nil, err
	}

	loi, err := decodeLOI(newDecoder(r.Body))
	if err != nil {
		return 0, nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	loi.SurveyID = domain.SurveyID(surveyID)

	res, err := h.deps.Collector.AddLOI(r.Context(), GetUserFromContext(r.Context()), loi)
	if err != nil {
		return 0, nil, err //nolint: wrapcheck
	}

	return http.StatusCreated, loiBody(*res), nil
}

// pathID parses the UUID path value name.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.UUID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return id, nil
}
