package main

import (
	"bytes"
	"context"
	"ground/internal/collection"
	"ground/internal/collector"
	mockcollector "ground/internal/collector/mock"
	"ground/pkg/domain"
	"ground/pkg/fakedata"
	"ground/pkg/serrors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func expectOverview(c *mockcollector.MockCollector, survey domain.Survey, lois ...domain.LocationOfInterest) {
	user := fakedata.User()
	c.EXPECT().SaveProfile(gomock.Any(), user).Return(&user, nil)
	c.EXPECT().SurveyOverview(gomock.Any(), fakedata.User(), fakedata.SurveyID).
		Return(&collector.Overview{Survey: survey, LOIs: lois}, nil)
}

func echoMutations(_ context.Context, _ domain.User, mutations ...domain.SubmissionMutation) ([]domain.SubmissionMutation, error) {
	for i := range mutations {
		mutations[i].ID = domain.MutationID(i + 1)
		mutations[i].SyncStatus = domain.SyncStatusPending
	}

	return mutations, nil
}

func TestCollect_ExistingLOI(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mockcollector.NewMockCollector(ctrl)
	expectOverview(c, fakedata.Survey(), fakedata.LocationOfInterest())
	c.EXPECT().SubmitMutations(gomock.Any(), fakedata.User(), gomock.Any()).DoAndReturn(echoMutations)

	loiID := fakedata.LOIID
	var out bytes.Buffer
	mutation, err := collect(context.Background(), c, collectRequest{
		User:     fakedata.User(),
		SurveyID: fakedata.SurveyID,
		LOIID:    &loiID,
	}, strings.NewReader("Some text\nY\n2\n"), &out)
	require.NoError(t, err)

	require.Equal(t, domain.MutationCreate, mutation.Type)
	require.Equal(t, fakedata.LOIID, mutation.LOIID)
	require.Equal(t, fakedata.JobID, mutation.JobID)
	require.NotEqual(t, uuid.Nil, uuid.UUID(mutation.SubmissionID))
	require.Equal(t, fakedata.Deltas(), mutation.Deltas)
	require.Contains(t, out.String(), fakedata.SurveyTitle+" / "+fakedata.JobName)
}

func TestCollect_NewLOI(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mockcollector.NewMockCollector(ctrl)
	survey := fakedata.SurveyWithJobs(fakedata.JobWithTasks(fakedata.AddLOITask(), fakedata.Task()))
	expectOverview(c, survey)

	newID := domain.LOIID(uuid.New())
	c.EXPECT().AddLOI(gomock.Any(), fakedata.User(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.User, loi domain.LocationOfInterest) (*domain.LocationOfInterest, error) {
			require.Equal(t, fakedata.JobID, loi.JobID)
			require.Equal(t, domain.NewPoint(45.5, -73.5), loi.Geometry)
			loi.ID = newID

			return &loi, nil
		})
	c.EXPECT().SubmitMutations(gomock.Any(), fakedata.User(), gomock.Any()).DoAndReturn(echoMutations)

	mutation, err := collect(context.Background(), c, collectRequest{
		User:     fakedata.User(),
		SurveyID: fakedata.SurveyID,
		JobID:    fakedata.JobID,
	}, strings.NewReader("45.5,-73.5\nSome text\n"), &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, newID, mutation.LOIID)
	require.Equal(t, domain.MutationID(1), mutation.ID)
}

func TestCollect_Aborted(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mockcollector.NewMockCollector(ctrl)
	expectOverview(c, fakedata.Survey(), fakedata.LocationOfInterest())

	loiID := fakedata.LOIID
	_, err := collect(context.Background(), c, collectRequest{
		User:     fakedata.User(),
		SurveyID: fakedata.SurveyID,
		LOIID:    &loiID,
	}, strings.NewReader(":quit\n"), &bytes.Buffer{})
	require.ErrorIs(t, err, collection.ErrAborted)
}

func TestCollect_UnknownLOI(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mockcollector.NewMockCollector(ctrl)
	expectOverview(c, fakedata.Survey())

	loiID := fakedata.LOIID
	_, err := collect(context.Background(), c, collectRequest{
		User:     fakedata.User(),
		SurveyID: fakedata.SurveyID,
		LOIID:    &loiID,
	}, strings.NewReader(""), &bytes.Buffer{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestPickJob(t *testing.T) {
	survey := fakedata.Survey()

	job, err := pickJob(survey, "")
	require.NoError(t, err)
	require.Equal(t, fakedata.JobID, job.ID)

	_, err = pickJob(survey, "missing")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	other := fakedata.Job()
	other.ID = "other"
	survey.Jobs[other.ID] = other
	_, err = pickJob(survey, "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
