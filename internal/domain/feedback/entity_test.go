//go:build unit

package feedback_test

import (
	"strings"
	"testing"

	"hotelhub/internal/domain/feedback"
	"hotelhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feedbackCase struct {
	name   string
	mutate func(*builder.FeedbackBuilder)
	errIs  error
}

func TestNewFeedback(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewFeedbackBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("rating validation", func(t *testing.T) {
		runFeedbackCases(t, []feedbackCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.FeedbackBuilder) { b.WithRating(0) },
				errIs:  feedback.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.FeedbackBuilder) { b.WithRating(1) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.FeedbackBuilder) { b.WithRating(6) },
				errIs:  feedback.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runFeedbackCases(t, []feedbackCase{
			{
				name:   "empty comment",
				mutate: func(b *builder.FeedbackBuilder) { b.WithComment("   ") },
				errIs:  feedback.ErrEmptyComment,
			},
			{
				name: "comment at maximum length",
				mutate: func(b *builder.FeedbackBuilder) {
					b.WithComment(strings.Repeat("a", feedback.MaxCommentLength))
				},
			},
			{
				name: "comment exceeds maximum length",
				mutate: func(b *builder.FeedbackBuilder) {
					b.WithComment(strings.Repeat("a", feedback.MaxCommentLength+1))
				},
				errIs: feedback.ErrCommentTooLong,
			},
		})
	})

	t.Run("comment is trimmed", func(t *testing.T) {
		actual, err := builder.NewFeedbackBuilder().WithComment("  Lovely place  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Lovely place", actual.Comment().String())
	})
}

func runFeedbackCases(t *testing.T, cases []feedbackCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewFeedbackBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
