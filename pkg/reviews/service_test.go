package reviews

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/menshealthfinder/api/ent/review"
	"github.com/menshealthfinder/api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReviewTest(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewService(client, nil, nil), client
}

func createReviewTestClinic(t *testing.T, client *ent.Client) *ent.Clinic {
	row, err := client.Clinic.Create().
		SetName("Apex Men's Health").
		SetSlug("apex-mens-health-austin").
		SetCity("Austin").
		SetState("TX").
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func submitTestReview(t *testing.T, s *Service, rating int) *models.ReviewResponse {
	res, err := s.Submit(context.Background(), "apex-mens-health-austin", models.SubmitReviewRequest{
		Rating:     rating,
		AuthorName: "Sam T.",
		Body:       "Staff walked me through every treatment option without pressure.",
	})
	require.NoError(t, err)
	return res
}

func TestSubmit_LandsPendingWithoutTouchingRating(t *testing.T) {
	service, client := setupReviewTest(t)
	ctx := context.Background()

	target := createReviewTestClinic(t, client)

	res := submitTestReview(t, service, 5)
	assert.Equal(t, "pending", res.Status)
	assert.Equal(t, target.ID, res.ClinicID)

	// Pending submissions never move the aggregates.
	fresh, err := client.Clinic.Get(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, fresh.RatingAvg)
	assert.Equal(t, 0, fresh.ReviewCount)
}

func TestSubmit_UnknownClinic(t *testing.T) {
	service, _ := setupReviewTest(t)

	_, err := service.Submit(context.Background(), "missing-clinic", models.SubmitReviewRequest{
		Rating:     4,
		AuthorName: "Sam T.",
		Body:       "This review has nowhere to go because the clinic is gone.",
	})
	assert.ErrorIs(t, err, ErrClinicNotFound)
}

func TestModerate_PublishRollsUpAggregates(t *testing.T) {
	service, client := setupReviewTest(t)
	ctx := context.Background()

	target := createReviewTestClinic(t, client)
	first := submitTestReview(t, service, 5)
	second := submitTestReview(t, service, 3)

	published, err := service.Moderate(ctx, first.ID, models.ModerateReviewRequest{Decision: "published"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "published", published.Status)

	fresh, err := client.Clinic.Get(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, fresh.RatingAvg)
	assert.Equal(t, 1, fresh.ReviewCount)

	_, err = service.Moderate(ctx, second.ID, models.ModerateReviewRequest{Decision: "published"}, nil)
	require.NoError(t, err)

	fresh, err = client.Clinic.Get(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, fresh.RatingAvg)
	assert.Equal(t, 2, fresh.ReviewCount)
}

func TestModerate_RejectLeavesAggregatesAlone(t *testing.T) {
	service, client := setupReviewTest(t)
	ctx := context.Background()

	target := createReviewTestClinic(t, client)
	res := submitTestReview(t, service, 1)

	rejected, err := service.Moderate(ctx, res.ID, models.ModerateReviewRequest{Decision: "rejected"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)

	fresh, err := client.Clinic.Get(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, fresh.RatingAvg)
	assert.Equal(t, 0, fresh.ReviewCount)
}

func TestModerate_OnlyOnce(t *testing.T) {
	service, client := setupReviewTest(t)
	ctx := context.Background()

	createReviewTestClinic(t, client)
	res := submitTestReview(t, service, 4)

	_, err := service.Moderate(ctx, res.ID, models.ModerateReviewRequest{Decision: "published"}, nil)
	require.NoError(t, err)

	// Published reviews are immutable except for the vote counters.
	_, err = service.Moderate(ctx, res.ID, models.ModerateReviewRequest{Decision: "rejected"}, nil)
	assert.ErrorIs(t, err, ErrAlreadyModerated)
}

func TestHelpfulAndReportCounters(t *testing.T) {
	service, client := setupReviewTest(t)
	ctx := context.Background()

	createReviewTestClinic(t, client)
	res := submitTestReview(t, service, 4)

	// Voting on a pending review is rejected.
	_, err := service.MarkHelpful(ctx, res.ID)
	assert.ErrorIs(t, err, ErrReviewNotPublished)

	_, err = service.Moderate(ctx, res.ID, models.ModerateReviewRequest{Decision: "published"}, nil)
	require.NoError(t, err)

	voted, err := service.MarkHelpful(ctx, res.ID)
	require.NoError(t, err)
	voted, err = service.MarkHelpful(ctx, voted.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, voted.HelpfulCount)

	reported, err := service.Report(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reported.ReportCount)
	assert.Equal(t, 2, reported.HelpfulCount)
}

func TestListForClinic_PublishedOnly(t *testing.T) {
	service, client := setupReviewTest(t)
	ctx := context.Background()

	createReviewTestClinic(t, client)
	first := submitTestReview(t, service, 5)
	submitTestReview(t, service, 2) // stays pending

	_, err := service.Moderate(ctx, first.ID, models.ModerateReviewRequest{Decision: "published"}, nil)
	require.NoError(t, err)

	res, err := service.ListForClinic(ctx, "apex-mens-health-austin", 1, 20)
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, first.ID, res.Data[0].ID)
	assert.Equal(t, 1, res.Pagination.Total)
}

func TestListPending_OldestFirst(t *testing.T) {
	service, client := setupReviewTest(t)
	ctx := context.Background()

	createReviewTestClinic(t, client)
	first := submitTestReview(t, service, 5)
	second := submitTestReview(t, service, 3)

	res, err := service.ListPending(ctx, 1, 20)
	require.NoError(t, err)
	require.Len(t, res.Data, 2)
	assert.Equal(t, first.ID, res.Data[0].ID)
	assert.Equal(t, second.ID, res.Data[1].ID)

	// Moderated reviews drop out of the queue.
	_, err = service.Moderate(ctx, first.ID, models.ModerateReviewRequest{Decision: "rejected"}, nil)
	require.NoError(t, err)

	res, err = service.ListPending(ctx, 1, 20)
	require.NoError(t, err)
	require.Len(t, res.Data, 1)

	count, err := client.Review.Query().Where(review.StatusEQ(review.StatusPending)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
