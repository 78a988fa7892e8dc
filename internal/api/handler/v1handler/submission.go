package v1handler

import (
	"ground/pkg/domain"
	"ground/pkg/serrors"
	"net/http"
	"strconv"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// SubmitMutations accepts a batch of submission mutations for background sync.
func (h Handler) SubmitMutations(r *http.Request) (int, encoder, error) {
	mutations, err := decodeMutations(newDecoder(r.Body))
	if err != nil {
		return 0, nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	res, err := h.deps.Collector.SubmitMutations(r.Context(), GetUserFromContext(r.Context()), mutations...)
	if err != nil {
		return 0, nil, err //nolint: wrapcheck
	}

	return http.StatusAccepted, mutationListBody(res), nil
}

// GetSubmission returns a submission by ID.
func (h Handler) GetSubmission(r *http.Request) (int, encoder, error) {
	submissionID, err := pathID(r, "submissionID")
	if err != nil {
		return 0, nil, err
	}

	res, err := h.deps.Collector.Submission(r.Context(),
		GetUserFromContext(r.Context()),
		domain.SubmissionID(submissionID))
	if err != nil {
		return 0, nil, err //nolint: wrapcheck
	}

	return http.StatusOK, submissionBody(*res), nil
}

// ListLOISubmissions returns a paginated list of the submissions of an LOI.
func (h Handler) ListLOISubmissions(r *http.Request) (int, encoder, error) {
	loiID, err := pathID(r, "loiID")
	if err != nil {
		return 0, nil, err
	}

	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || n == 0 || n > MaxLimit {
			return 0, nil, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit)
		}
		limit = uint(n)
	}

	submissions, nextCursor, err := h.deps.Collector.LOISubmissions(r.Context(),
		GetUserFromContext(r.Context()),
		domain.LOIID(loiID),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		return 0, nil, err //nolint: wrapcheck
	}

	return http.StatusOK, submissionListBody{submissions: submissions, nextCursor: nextCursor}, nil
}
