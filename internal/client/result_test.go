package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliyevorkhan/face-recognition-frontend/internal/domain"
)

func TestResult_Summary(t *testing.T) {
	tests := []struct {
		name string
		kind domain.Kind
		raw  string
		want string
	}{
		{
			name: "verification match",
			kind: domain.KindVerify,
			raw:  `{"verified":true,"similarity_score":0.93,"message":"Match"}`,
			want: "Match Found\nSimilarity: 93.00%\nMessage: Match",
		},
		{
			name: "verification mismatch",
			kind: domain.KindVerify,
			raw:  `{"verified":false,"similarity_score":0.4121}`,
			want: "No Match\nSimilarity: 41.21%",
		},
		{
			name: "age estimate",
			kind: domain.KindAge,
			raw:  `{"age":27,"confidence":0.91}`,
			want: "Age: 27\nConfidence: 91.00%",
		},
		{
			name: "fractional age",
			kind: domain.KindAge,
			raw:  `{"age":31.5,"confidence":0.8}`,
			want: "Age: 31.5\nConfidence: 80.00%",
		},
		{
			name: "emotion",
			kind: domain.KindEmotion,
			raw:  `{"emotion":"happy","confidence":0.88}`,
			want: "Emotion: happy\nConfidence: 88.00%",
		},
		{
			name: "gender",
			kind: domain.KindGender,
			raw:  `{"gender":"female","confidence":0.97}`,
			want: "Gender: female\nConfidence: 97.00%",
		},
		{
			name: "unexpected shape falls back",
			kind: domain.KindAge,
			raw:  `{"something":"else"}`,
			want: "Analysis complete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &Result{Kind: tt.kind, Raw: []byte(tt.raw)}
			assert.Equal(t, tt.want, result.Summary())
		})
	}
}

func TestResult_Decoding(t *testing.T) {
	verify := &Result{
		Kind: domain.KindVerify,
		Raw:  []byte(`{"verified":true,"similarity_score":0.93,"message":"Match"}`),
	}

	v, err := verify.Verification()
	require.NoError(t, err)
	assert.True(t, v.Verified)
	assert.Equal(t, 0.93, v.SimilarityScore)
	assert.Equal(t, "Match", v.Message)

	attrs := &Result{Kind: domain.KindAge, Raw: []byte(`{"age":27,"confidence":0.91}`)}

	a, err := attrs.Attributes()
	require.NoError(t, err)
	require.NotNil(t, a.Age)
	assert.Equal(t, 27.0, *a.Age)
	assert.Equal(t, 0.91, a.Confidence)
}

func TestResult_Dump(t *testing.T) {
	result := &Result{
		Kind: domain.KindVerify,
		Raw:  []byte(`{"verified":true,"similarity_score":0.93}`),
	}

	dump := result.Dump()
	assert.Equal(t, "{\n  \"verified\": true,\n  \"similarity_score\": 0.93\n}", dump)
}
