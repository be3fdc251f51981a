// Package study defines the domain types shared by the API clients and the
// front-end handlers: study types, samples, result payloads and the optional
// Mechanical Turk crediting parameters.
package study

import "fmt"

// Type identifies one of the supported study variants. The set is closed:
// adding a variant requires a new result payload and a new route mapping in the
// client dispatch table.
type Type string

const (
	Ranking         Type = "ranking"
	Likert          Type = "likert"
	Rating          Type = "rating"
	RatingWithFocus Type = "rating_with_focus"
)

// Types lists all supported study types.
func Types() []Type {
	return []Type{Ranking, Likert, Rating, RatingWithFocus}
}

func (t Type) Valid() bool {
	switch t {
	case Ranking, Likert, Rating, RatingWithFocus:
		return true
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// ParseType validates a study type received from the outside (e.g. a URL
// parameter).
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown study type %q (expected one of %v)", s, Types())
	}
	return t, nil
}

// MTurkParams identifies the Mechanical Turk assignment a result should be
// credited to. The struct is only ever fully populated - see NewMTurkParams.
type MTurkParams struct {
	WorkerID     string `json:"worker_id"`
	AssignmentID string `json:"assignment_id"`
	HitID        string `json:"hit_id"`
}

// NewMTurkParams builds crediting parameters if and only if all three fields
// are non-empty. Any missing field voids the whole group: a partially
// populated crediting object is never sent to the backend.
func NewMTurkParams(workerID, assignmentID, hitID string) *MTurkParams {
	if workerID == "" || assignmentID == "" || hitID == "" {
		return nil
	}
	return &MTurkParams{
		WorkerID:     workerID,
		AssignmentID: assignmentID,
		HitID:        hitID,
	}
}

// Sample is a unit of judgment work presented to a participant. The backend
// serves a different sample model per study type; this struct is the union of
// their fields, with per-type extras left empty where they do not apply.
type Sample struct {
	ID       string   `json:"id"`
	MRID     string   `json:"mr_id,omitempty"`
	Query    string   `json:"query,omitempty"`
	Caption  string   `json:"caption,omitempty"`
	ImageIDs []string `json:"image_ids"`

	// likert extras
	Question      string   `json:"question,omitempty"`
	Answers       []string `json:"answers,omitempty"`
	AnswerWeights []int    `json:"answer_weights,omitempty"`

	// rating extras
	MinRating  float64 `json:"min_rating,omitempty"`
	MaxRating  float64 `json:"max_rating,omitempty"`
	RatingStep float64 `json:"rating_step,omitempty"`

	// rating_with_focus extras
	Focus string `json:"focus,omitempty"`

	MTParams *MTurkParams `json:"mt_params,omitempty"`
}

// Progress reports how far the current study run has come.
type Progress struct {
	NumTodo       int `json:"num_todo"`
	NumInProgress int `json:"num_in_progress"`
	NumDone       int `json:"num_done"`
	NumTotal      int `json:"num_total"`
	Run           int `json:"run"`
}

// Feedback is a free-text participant message about a sample.
type Feedback struct {
	SampleID string `json:"sample_id"`
	Message  string `json:"message"`
	WorkerID string `json:"worker_id"`
	HitID    string `json:"hit_id"`
}
