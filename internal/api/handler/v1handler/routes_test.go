package v1handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"ground/internal/api/handler/v1handler"
	"ground/internal/collector"
	"ground/pkg/document"
	"ground/pkg/domain"
	"ground/pkg/fakedata"
	"ground/pkg/serrors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mockcollector "ground/internal/collector/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiTest struct {
	srv       *httptest.Server
	collector *mockcollector.MockCollector
	token     string
}

func newAPITest(t *testing.T) *apiTest {
	t.Helper()

	priv, pubPEM := genRSAKeys(t)
	sec := newSecHandlerForTest(t, pubPEM)

	ctrl := gomock.NewController(t)
	c := mockcollector.NewMockCollector(ctrl)

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Collector: c}).Register(mux, sec)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	now := time.Now()

	return &apiTest{
		srv:       srv,
		collector: c,
		token:     signJWTRS256(t, priv, fakedata.User(), now, now.Add(time.Hour)),
	}
}

// do sends an authenticated request and decodes the JSON response body.
func (a *apiTest) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, a.srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+a.token)

	res, err := a.srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}

	return res.StatusCode, out
}

func TestRoutes_MissingToken(t *testing.T) {
	a := newAPITest(t)

	res, err := a.srv.Client().Get(a.srv.URL + "/v1/surveys")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, serrors.ErrUnauthorized.Error(), body["code"])
}

func TestRoutes_SaveProfile(t *testing.T) {
	a := newAPITest(t)
	user := fakedata.User()

	a.collector.EXPECT().SaveProfile(gomock.Any(), user).Return(&user, nil)

	status, body := a.do(t, http.MethodPut, "/v1/me", "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, fakedata.UserID, body["id"])
	require.Equal(t, fakedata.UserDisplayName, body["displayName"])
}

func TestRoutes_ListSurveys(t *testing.T) {
	a := newAPITest(t)

	a.collector.EXPECT().Surveys(gomock.Any(), fakedata.User()).Return([]domain.Survey{fakedata.Survey()}, nil)

	status, body := a.do(t, http.MethodGet, "/v1/surveys", "")
	require.Equal(t, http.StatusOK, status)

	items, ok := body["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	survey := items[0].(map[string]any)
	require.Equal(t, fakedata.SurveyID.String(), survey["id"])
	require.Equal(t, string(domain.RoleOwner), survey["role"])
	require.NotContains(t, survey, "jobs")
}

func TestRoutes_GetSurvey(t *testing.T) {
	a := newAPITest(t)

	a.collector.EXPECT().SurveyOverview(gomock.Any(), fakedata.User(), fakedata.SurveyID).Return(&collector.Overview{
		Survey: fakedata.Survey(),
		LOIs:   []domain.LocationOfInterest{fakedata.LocationOfInterest()},
	}, nil)

	status, body := a.do(t, http.MethodGet, "/v1/surveys/"+fakedata.SurveyID.String(), "")
	require.Equal(t, http.StatusOK, status)

	survey := body["survey"].(map[string]any)
	jobs := survey["jobs"].([]any)
	require.Len(t, jobs, 1)
	tasks := jobs[0].(map[string]any)["tasks"].([]any)
	require.Len(t, tasks, 3)
	require.Equal(t, fakedata.TaskID, tasks[0].(map[string]any)["id"])
	require.Contains(t, tasks[2].(map[string]any), "condition")

	lois := body["lois"].([]any)
	require.Len(t, lois, 1)
	require.Equal(t, fakedata.LOIID.String(), lois[0].(map[string]any)["id"])
}

func TestRoutes_GetSurvey_InvalidID(t *testing.T) {
	a := newAPITest(t)

	status, body := a.do(t, http.MethodGet, "/v1/surveys/not-an-id", "")
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, serrors.ErrBadRequest.Error(), body["code"])
}

func TestRoutes_GetSurvey_Forbidden(t *testing.T) {
	a := newAPITest(t)

	a.collector.EXPECT().SurveyOverview(gomock.Any(), gomock.Any(), fakedata.SurveyID).
		Return(nil, serrors.With(serrors.ErrForbidden, "no access to survey"))

	status, body := a.do(t, http.MethodGet, "/v1/surveys/"+fakedata.SurveyID.String(), "")
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "no access to survey", body["message"])
}

func TestRoutes_AddLOI(t *testing.T) {
	a := newAPITest(t)

	a.collector.EXPECT().AddLOI(gomock.Any(), fakedata.User(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.User, loi domain.LocationOfInterest) (*domain.LocationOfInterest, error) {
			require.Equal(t, fakedata.SurveyID, loi.SurveyID)
			require.Equal(t, fakedata.JobID, loi.JobID)
			require.Equal(t, domain.NewPoint(45.5, -73.5), loi.Geometry)
			require.Equal(t, map[string]string{"name": "Fountain"}, loi.Properties)
			require.Equal(t, fakedata.Timestamp, loi.Created.ClientTimestamp)
			loi.ID = fakedata.LOIID

			return &loi, nil
		},
	)

	body := fmt.Sprintf(`{"jobId":%q,"geometry":%s,"properties":{"name":"Fountain"},"clientTimestamp":%q}`,
		fakedata.JobID,
		document.MarshalGeometry(domain.NewPoint(45.5, -73.5)),
		fakedata.Timestamp.Format(time.RFC3339))
	status, res := a.do(t, http.MethodPost, "/v1/surveys/"+fakedata.SurveyID.String()+"/lois", body)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, fakedata.LOIID.String(), res["id"])
}

func TestRoutes_AddLOI_InvalidBody(t *testing.T) {
	a := newAPITest(t)

	status, _ := a.do(t, http.MethodPost, "/v1/surveys/"+fakedata.SurveyID.String()+"/lois", `{"customId":"x"}`)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestRoutes_SubmitMutations(t *testing.T) {
	a := newAPITest(t)

	a.collector.EXPECT().SubmitMutations(gomock.Any(), fakedata.User(), gomock.Any()).DoAndReturn(
		func(_ context.Context,
			_ domain.User,
			mutations ...domain.SubmissionMutation) ([]domain.SubmissionMutation, error) {
			require.Len(t, mutations, 1)
			m := mutations[0]
			require.Equal(t, domain.MutationCreate, m.Type)
			require.Equal(t, fakedata.SubmissionID, m.SubmissionID)
			require.Equal(t, fakedata.SurveyID, m.SurveyID)
			require.Equal(t, fakedata.LOIID, m.LOIID)
			require.Equal(t, fakedata.Timestamp, m.ClientTimestamp)
			require.Equal(t, fakedata.Deltas(), m.Deltas)

			m.ID = 7
			m.SyncStatus = domain.SyncStatusPending

			return []domain.SubmissionMutation{m}, nil
		},
	)

	deltas, err := document.EncodeDeltas(fakedata.Deltas())
	require.NoError(t, err)
	body := fmt.Sprintf(`{"mutations":[{"type":"CREATE","submissionId":%q,"surveyId":%q,"jobId":%q,`+
		`"loiId":%q,"clientTimestamp":%q,"deltas":%s}]}`,
		fakedata.SubmissionID, fakedata.SurveyID, fakedata.JobID, fakedata.LOIID,
		fakedata.Timestamp.Format(time.RFC3339), deltas)

	status, res := a.do(t, http.MethodPost, "/v1/mutations", body)
	require.Equal(t, http.StatusAccepted, status)
	items := res["items"].([]any)
	require.Len(t, items, 1)
	require.InDelta(t, 7, items[0].(map[string]any)["id"], 0)
	require.Equal(t, string(domain.SyncStatusPending), items[0].(map[string]any)["syncStatus"])
}

func TestRoutes_SubmitMutations_InvalidBody(t *testing.T) {
	a := newAPITest(t)

	status, _ := a.do(t, http.MethodPost, "/v1/mutations", `{"mutations":[{"submissionId":"nope"}]}`)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestRoutes_GetSubmission(t *testing.T) {
	a := newAPITest(t)
	submission := fakedata.Submission()

	a.collector.EXPECT().Submission(gomock.Any(), fakedata.User(), fakedata.SubmissionID).Return(&submission, nil)

	status, body := a.do(t, http.MethodGet, "/v1/submissions/"+fakedata.SubmissionID.String(), "")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	require.Len(t, data, 3)
	require.Equal(t, "Some text", data[fakedata.TaskID].(map[string]any)["text"])
}

func TestRoutes_GetSubmission_NotFound(t *testing.T) {
	a := newAPITest(t)

	a.collector.EXPECT().Submission(gomock.Any(), gomock.Any(), fakedata.SubmissionID).
		Return(nil, serrors.With(serrors.ErrNotFound, "submission not found"))

	status, body := a.do(t, http.MethodGet, "/v1/submissions/"+fakedata.SubmissionID.String(), "")
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, serrors.ErrNotFound.Error(), body["code"])
}

func TestRoutes_ListLOISubmissions(t *testing.T) {
	a := newAPITest(t)

	a.collector.EXPECT().LOISubmissions(gomock.Any(), fakedata.User(), fakedata.LOIID, "cursor", uint(5)).
		Return([]domain.Submission{fakedata.Submission()}, "next", nil)

	status, body := a.do(t, http.MethodGet,
		"/v1/lois/"+fakedata.LOIID.String()+"/submissions?limit=5&cursor=cursor", "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["items"], 1)
	require.Equal(t, "next", body["nextCursor"])
}

func TestRoutes_ListLOISubmissions_DefaultLimit(t *testing.T) {
	a := newAPITest(t)

	a.collector.EXPECT().LOISubmissions(gomock.Any(), gomock.Any(), fakedata.LOIID, "", uint(v1handler.DefaultLimit)).
		Return(nil, "", nil)

	status, body := a.do(t, http.MethodGet, "/v1/lois/"+fakedata.LOIID.String()+"/submissions", "")
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, body["items"])
	require.Nil(t, body["nextCursor"])
}

func TestRoutes_ListLOISubmissions_InvalidLimit(t *testing.T) {
	a := newAPITest(t)

	status, _ := a.do(t, http.MethodGet, "/v1/lois/"+fakedata.LOIID.String()+"/submissions?limit=0", "")
	require.Equal(t, http.StatusBadRequest, status)
}
