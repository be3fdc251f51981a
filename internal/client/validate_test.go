package client

import (
	"testing"

	"github.com/image-ranking-studies/studyfront/internal/study"
)

func TestValidateResult(t *testing.T) {
	mt := study.NewMTurkParams("w-1", "a-1", "h-1")

	tests := []struct {
		name    string
		res     study.Result
		mt      *study.MTurkParams
		wantErr bool
	}{
		{
			name: "ranking with entries",
			res:  study.NewRankingResult("s-1", []string{"img-1"}, []string{"img-2"}),
		},
		{
			name: "ranking with empty lists",
			res:  study.NewRankingResult("s-1", []string{}, []string{}),
		},
		{
			name:    "ranking with nil lists",
			res:     study.NewRankingResult("s-1", nil, nil),
			wantErr: true,
		},
		{
			name: "ranking with crediting parameters",
			res:  study.NewRankingResult("s-1", []string{"img-1"}, []string{}),
			mt:   mt,
		},
		{
			name:    "missing sample id",
			res:     study.NewLikertResult("", "agree"),
			wantErr: true,
		},
		{
			name: "likert",
			res:  study.NewLikertResult("s-1", "strongly disagree"),
		},
		{
			name:    "likert without answer",
			res:     study.NewLikertResult("s-1", ""),
			wantErr: true,
		},
		{
			name: "rating",
			res:  study.NewRatingResult("s-1", map[string]float64{"img-1": 0.5}),
		},
		{
			name:    "rating with no entries",
			res:     study.NewRatingResult("s-1", map[string]float64{}),
			wantErr: true,
		},
		{
			name: "rating with focus",
			res: study.NewRatingWithFocusResult("s-1",
				map[string]float64{"img-1": 1}, map[string]float64{"img-1": 2}),
		},
		{
			name: "rating with focus missing focus ratings",
			res: study.NewRatingWithFocusResult("s-1",
				map[string]float64{"img-1": 1}, nil),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			study.AttachIdentity(tt.res, tt.mt, "")

			payload, err := validateResult(tt.res)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResult() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && len(payload) == 0 {
				t.Error("validateResult() returned empty payload")
			}
		})
	}
}
