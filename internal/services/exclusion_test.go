package services

import (
	"testing"

	"gorm.io/datatypes"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

func TestDecodeVocabularyTerms(t *testing.T) {
	cases := []struct {
		name  string
		vocab *types.ExclusionVocabulary
		want  []string
	}{
		{name: "nil record", vocab: nil, want: nil},
		{name: "empty terms", vocab: &types.ExclusionVocabulary{}, want: nil},
		{
			name:  "valid list",
			vocab: &types.ExclusionVocabulary{Terms: datatypes.JSON(`["baltic","nordic"]`)},
			want:  []string{"baltic", "nordic"},
		},
		{
			name:  "broken json decodes to nothing",
			vocab: &types.ExclusionVocabulary{Terms: datatypes.JSON(`{not json`)},
			want:  nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeVocabularyTerms(tc.vocab)
			if len(got) != len(tc.want) {
				t.Fatalf("want=%v got=%v", tc.want, got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("want=%v got=%v", tc.want, got)
				}
			}
		})
	}
}
