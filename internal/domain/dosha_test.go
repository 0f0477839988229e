package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDosha(t *testing.T) {
	tests := []struct {
		input   string
		want    Dosha
		wantErr bool
	}{
		{input: "vata", want: Vata},
		{input: " Pitta ", want: Pitta},
		{input: "KAPHA", want: Kapha},
		{input: "ether", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDosha(tt.input)
			if tt.wantErr {
				var domainErr *DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, CodeInvalidDosha, domainErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDosha_UnmarshalJSONRejectsUnknownLabels(t *testing.T) {
	var opt QuizOption
	require.NoError(t, json.Unmarshal([]byte(`{"text":"Dry skin","type":"vata"}`), &opt))
	assert.Equal(t, Vata, opt.Type)

	err := json.Unmarshal([]byte(`{"text":"Oily","type":"fire"}`), &opt)
	assert.Error(t, err)
}

func TestScoreTally_Dominant(t *testing.T) {
	assert.Equal(t, Vata, ScoreTally{Vata: 2, Pitta: 2, Kapha: 0}.Dominant())
	assert.Equal(t, Pitta, ScoreTally{Vata: 1, Pitta: 3, Kapha: 3}.Dominant())
	assert.Equal(t, Kapha, ScoreTally{Vata: 1, Pitta: 0, Kapha: 4}.Dominant())
	assert.Equal(t, Vata, NewScoreTally().Dominant())
}

func TestScoreTally_CloneIsIndependent(t *testing.T) {
	orig := NewScoreTally()
	c := orig.Clone()
	c[Pitta] = 7
	assert.Equal(t, 0, orig[Pitta])
	assert.Equal(t, 7, c.Total())
}

func TestProfileFor(t *testing.T) {
	for _, d := range Doshas {
		p := ProfileFor(d)
		assert.Equal(t, d, p.Dosha)
		assert.NotEmpty(t, p.Title)
	}
}
