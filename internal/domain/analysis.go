package domain

import "fmt"

// Kind identifies one of the supported analysis operations.
type Kind string

const (
	KindVerify  Kind = "verify"
	KindAge     Kind = "age"
	KindEmotion Kind = "emotion"
	KindGender  Kind = "gender"
)

// MaxImageBytes is the per-image upload ceiling, enforced before any
// encode or network step.
const MaxImageBytes = 5 * 1024 * 1024 // 5MB

// Kinds lists every supported analysis kind.
func Kinds() []Kind {
	return []Kind{KindVerify, KindAge, KindEmotion, KindGender}
}

func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k names a supported analysis kind.
func (k Kind) Valid() bool {
	switch k {
	case KindVerify, KindAge, KindEmotion, KindGender:
		return true
	}
	return false
}

// ParseKind converts user input into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unsupported analysis kind %q", s)
	}
	return k, nil
}

// ImageFields returns the multipart field names the kind requires.
// Verification compares two images; every other kind takes one.
func (k Kind) ImageFields() []string {
	if k == KindVerify {
		return []string{"img1", "img2"}
	}
	return []string{"image"}
}

// Verification is the decoded shape of a successful verify result.
type Verification struct {
	Verified        bool    `json:"verified"`
	SimilarityScore float64 `json:"similarity_score"`
	Message         string  `json:"message,omitempty"`
}

// Attributes is the decoded shape of a successful single-image result.
// Age is a pointer so an absent field is distinguishable from zero.
type Attributes struct {
	Age        *float64 `json:"age,omitempty"`
	Gender     string   `json:"gender,omitempty"`
	Emotion    string   `json:"emotion,omitempty"`
	Confidence float64  `json:"confidence,omitempty"`
}
