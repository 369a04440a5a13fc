package rating

import (
	"fmt"
	"testing"

	"github.com/de-tools/risk-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Bands(t *testing.T) {
	cases := []struct {
		score float64
		want  domain.RiskRating
	}{
		{100, domain.RatingLow},
		{90, domain.RatingLow},
		{89, domain.RatingMediumLow},
		{74, domain.RatingMediumLow},
		{70, domain.RatingMediumLow},
		{69, domain.RatingMedium},
		{50, domain.RatingMedium},
		{49, domain.RatingHigh},
		{25, domain.RatingHigh},
		{24, domain.RatingCritical},
		{0, domain.RatingCritical},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%.0f", tc.score), func(t *testing.T) {
			got, err := Classify(tc.score)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_FullPrecisionScores(t *testing.T) {
	got, err := Classify(89.9)
	require.NoError(t, err)
	assert.Equal(t, domain.RatingMediumLow, got)

	got, err = Classify(24.999)
	require.NoError(t, err)
	assert.Equal(t, domain.RatingCritical, got)
}

func TestClassify_OutOfRange(t *testing.T) {
	_, err := Classify(-0.01)
	assert.ErrorIs(t, err, domain.ErrInvalidScore)

	_, err = Classify(100.01)
	assert.ErrorIs(t, err, domain.ErrInvalidScore)
}
