package study

// ResultMeta carries the fields every result payload shares. The crediting
// parameters and user id are attached by the submission dispatcher, not by the
// caller: which of the two is set decides the route the result travels on.
type ResultMeta struct {
	SampleID string       `json:"sample_id"`
	MTParams *MTurkParams `json:"mt_params"`
	UserID   string       `json:"user_id,omitempty"`
}

func (m *ResultMeta) setIdentity(mt *MTurkParams, userID string) {
	m.MTParams = mt
	m.UserID = userID
}

// Result is a participant's submitted judgment for a sample. Concrete payloads
// report their study type so the submission client can pick the matching route
// and payload validator from its dispatch table.
type Result interface {
	StudyType() Type
	setIdentity(mt *MTurkParams, userID string)
}

// AttachIdentity stamps the crediting parameters and user id onto a result
// before it is dispatched.
func AttachIdentity(r Result, mt *MTurkParams, userID string) {
	r.setIdentity(mt, userID)
}

// RankingResult orders a sample's images by relevance to its query; images the
// participant judged unrelated go to Irrelevant instead.
type RankingResult struct {
	ResultMeta
	Ranking    []string `json:"ranking"`
	Irrelevant []string `json:"irrelevant"`
}

func NewRankingResult(sampleID string, ranking, irrelevant []string) *RankingResult {
	return &RankingResult{
		ResultMeta: ResultMeta{SampleID: sampleID},
		Ranking:    ranking,
		Irrelevant: irrelevant,
	}
}

func (*RankingResult) StudyType() Type { return Ranking }

// LikertResult records the answer chosen from the sample's Likert scale.
type LikertResult struct {
	ResultMeta
	ChosenAnswer string `json:"chosen_answer"`
}

func NewLikertResult(sampleID, chosenAnswer string) *LikertResult {
	return &LikertResult{
		ResultMeta:   ResultMeta{SampleID: sampleID},
		ChosenAnswer: chosenAnswer,
	}
}

func (*LikertResult) StudyType() Type { return Likert }

// RatingResult scores each image of the sample, keyed by image id.
type RatingResult struct {
	ResultMeta
	Ratings map[string]float64 `json:"ratings"`
}

func NewRatingResult(sampleID string, ratings map[string]float64) *RatingResult {
	return &RatingResult{
		ResultMeta: ResultMeta{SampleID: sampleID},
		Ratings:    ratings,
	}
}

func (*RatingResult) StudyType() Type { return Rating }

// RatingWithFocusResult scores each image twice: once for the full caption
// context and once for the focused aspect.
type RatingWithFocusResult struct {
	ResultMeta
	ContextRatings map[string]float64 `json:"context_ratings"`
	FocusRatings   map[string]float64 `json:"focus_ratings"`
}

func NewRatingWithFocusResult(sampleID string, contextRatings, focusRatings map[string]float64) *RatingWithFocusResult {
	return &RatingWithFocusResult{
		ResultMeta:     ResultMeta{SampleID: sampleID},
		ContextRatings: contextRatings,
		FocusRatings:   focusRatings,
	}
}

func (*RatingWithFocusResult) StudyType() Type { return RatingWithFocus }
