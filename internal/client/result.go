package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/aliyevorkhan/face-recognition-frontend/internal/domain"
)

// Result holds one successful analysis reply: the kind it answers and
// the raw JSON body relayed from the upstream service.
type Result struct {
	Kind domain.Kind
	Raw  []byte
}

// Verification decodes the result as a verification reply.
func (r *Result) Verification() (domain.Verification, error) {
	var v domain.Verification
	if err := json.Unmarshal(r.Raw, &v); err != nil {
		return domain.Verification{}, fmt.Errorf("decode verification result: %w", err)
	}
	return v, nil
}

// Attributes decodes the result as a single-image analysis reply.
func (r *Result) Attributes() (domain.Attributes, error) {
	var a domain.Attributes
	if err := json.Unmarshal(r.Raw, &a); err != nil {
		return domain.Attributes{}, fmt.Errorf("decode attributes result: %w", err)
	}
	return a, nil
}

// Summary renders the kind-specific one-glance view of the result. A
// body that does not carry the expected fields falls back to a generic
// line; the raw dump is always available regardless.
func (r *Result) Summary() string {
	switch r.Kind {
	case domain.KindVerify:
		v, err := r.Verification()
		if err != nil {
			return "Analysis complete"
		}
		verdict := "No Match"
		if v.Verified {
			verdict = "Match Found"
		}
		lines := []string{verdict, fmt.Sprintf("Similarity: %s", percent(v.SimilarityScore))}
		if v.Message != "" {
			lines = append(lines, "Message: "+v.Message)
		}
		return strings.Join(lines, "\n")

	case domain.KindAge, domain.KindEmotion, domain.KindGender:
		a, err := r.Attributes()
		if err != nil {
			return "Analysis complete"
		}
		var lines []string
		if a.Age != nil {
			lines = append(lines, "Age: "+strconv.FormatFloat(*a.Age, 'f', -1, 64))
		}
		if a.Gender != "" {
			lines = append(lines, "Gender: "+a.Gender)
		}
		if a.Emotion != "" {
			lines = append(lines, "Emotion: "+a.Emotion)
		}
		if a.Confidence != 0 {
			lines = append(lines, "Confidence: "+percent(a.Confidence))
		}
		if len(lines) == 0 {
			return "Analysis complete"
		}
		return strings.Join(lines, "\n")
	}

	return "Analysis complete"
}

// Dump returns the indented raw JSON body.
func (r *Result) Dump() string {
	var out bytes.Buffer
	if err := json.Indent(&out, r.Raw, "", "  "); err != nil {
		return string(r.Raw)
	}
	return out.String()
}

// percent renders a 0..1 score the way the form displays it: 0.93
// becomes "93.00%".
func percent(score float64) string {
	return fmt.Sprintf("%.2f%%", score*100)
}
