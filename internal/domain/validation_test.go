package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateQuestionBank(t *testing.T) {
	valid := QuizQuestion{ID: 1, Question: "Skin?", Options: []QuizOption{{Text: "Dry", Type: Vata}}}

	assert.NoError(t, ValidateQuestionBank([]QuizQuestion{valid}))
	assert.Error(t, ValidateQuestionBank(nil))

	dup := valid
	assert.Error(t, ValidateQuestionBank([]QuizQuestion{valid, dup}))

	noOptions := QuizQuestion{ID: 2, Question: "Sleep?"}
	err := ValidateQuestionBank([]QuizQuestion{valid, noOptions})
	if assert.Error(t, err) {
		errs, ok := err.(ValidationErrors)
		assert.True(t, ok)
		assert.Len(t, errs, 1)
	}

	badLabel := QuizQuestion{ID: 3, Question: "Mood?", Options: []QuizOption{{Text: "Calm", Type: Dosha("earth")}}}
	assert.Error(t, ValidateQuestionBank([]QuizQuestion{badLabel}))
}

func TestValidateCatalog(t *testing.T) {
	assert.NoError(t, ValidateCatalog([]Remedy{{ID: "a", Title: "Tea"}, {ID: "b", Title: "Milk"}}))
	assert.NoError(t, ValidateCatalog(nil))
	assert.Error(t, ValidateCatalog([]Remedy{{ID: "a", Title: "Tea"}, {ID: "a", Title: "Tea again"}}))
	assert.Error(t, ValidateCatalog([]Remedy{{ID: "", Title: "Nameless"}}))
}

func TestBodyZone_SymptomsFor(t *testing.T) {
	zone := BodyZone{
		Name: "Pelvis",
		Symptoms: []ZoneSymptom{
			{Name: "Back Pain", Type: SymptomCommon},
			{Name: "Menstrual Cramps", Type: "female"},
			{Name: "Prostate Discomfort", Type: "male"},
		},
	}
	assert.Equal(t, []string{"Back Pain", "Menstrual Cramps"}, zone.SymptomsFor(GenderFemale))
	assert.Equal(t, []string{"Back Pain", "Prostate Discomfort"}, zone.SymptomsFor(GenderMale))
}

func TestParseGender(t *testing.T) {
	g, err := ParseGender("")
	assert.NoError(t, err)
	assert.Equal(t, GenderFemale, g)

	g, err = ParseGender("MALE")
	assert.NoError(t, err)
	assert.Equal(t, GenderMale, g)

	_, err = ParseGender("robot")
	assert.Error(t, err)
}

func TestValidateBodyZones(t *testing.T) {
	ok := map[string]BodyZone{"head": {Name: "Head", Symptoms: []ZoneSymptom{{Name: "Headache", Type: SymptomCommon}}}}
	assert.NoError(t, ValidateBodyZones(ok))

	bad := map[string]BodyZone{"head": {Name: "Head", Symptoms: []ZoneSymptom{{Name: "Headache", Type: "rare"}}}}
	assert.Error(t, ValidateBodyZones(bad))
}

func TestDomainError(t *testing.T) {
	err := NewRemedyNotFoundError("r1").WithContext("id", "r1")
	assert.Equal(t, CodeRemedyNotFound, err.Code)
	assert.Equal(t, "r1", err.Context["id"])

	cause := NewInvalidInputError("inner")
	wrapped := NewInternalError("outer", cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "outer: inner", wrapped.Error())
}

func TestValidatePantry(t *testing.T) {
	assert.NoError(t, ValidatePantry([]Ingredient{{ID: "ginger", Name: "Ginger"}, {ID: "honey", Name: "Honey"}}))

	err := ValidatePantry([]Ingredient{{ID: "ginger", Name: "Ginger"}, {ID: "ginger", Name: "Dry Ginger"}, {Name: "Nameless"}})
	var ve ValidationErrors
	if assert.ErrorAs(t, err, &ve) {
		assert.Len(t, ve, 2)
	}
}

func TestStoryValidate(t *testing.T) {
	s := Story{User: "Priya K.", Remedy: "Clove Oil", Story: "It worked."}
	assert.NoError(t, s.Validate())

	s.Story = "  "
	err := s.Validate()
	var ve ValidationErrors
	if assert.ErrorAs(t, err, &ve) {
		assert.Equal(t, "story", ve[0].Field)
		assert.Equal(t, CodeMissingField, ve[0].Code)
	}
}

func TestSiteSEO(t *testing.T) {
	seo := SiteSEO{SiteTitle: "Ashi's Remedies", TitleSeparator: "|"}
	assert.NoError(t, seo.Validate())
	assert.Equal(t, "Remedies | Ashi's Remedies", seo.PageTitle("Remedies"))
	assert.Equal(t, "Ashi's Remedies", seo.PageTitle(""))

	seo.SiteTitle = ""
	assert.Error(t, seo.Validate())
}
