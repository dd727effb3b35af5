package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfileIsWrittenUnderSingleKey(t *testing.T) {
	u := User{
		ID:    "abc",
		Email: "boulangerie@moulin.fr",
		Name:  "Boulangerie du Moulin",
		Type:  UserTypeBakery,
		BakeryProfile: &BakeryProfile{
			BakeryID:     "bakery1",
			BusinessName: "Boulangerie du Moulin",
		},
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "profile")
	assert.Contains(t, string(raw["profile"]), `"businessName":"Boulangerie du Moulin"`)

	var back User
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, u, back)
}

func TestUserUnmarshalDispatchesOnType(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"id":"1","email":"a@b.fr","name":"Jean Dupont","type":"professional","profile":{"firstName":"Jean","lastName":"Dupont","experience":8}}`), &u)
	require.NoError(t, err)

	require.NotNil(t, u.ProfessionalProfile)
	assert.Nil(t, u.BakeryProfile)
	assert.Equal(t, 8, u.ProfessionalProfile.Experience)

	var admin User
	require.NoError(t, json.Unmarshal([]byte(`{"id":"2","type":"admin","profile":null}`), &admin))
	assert.Nil(t, admin.BakeryProfile)
	assert.Nil(t, admin.ProfessionalProfile)

	assert.Error(t, json.Unmarshal([]byte(`{"id":"3","type":"robot","profile":{}}`), &u))
}

func TestCompletedMissionEarnings(t *testing.T) {
	m := NewCompletedMission("cm1", "pro1", "1", "Remplacement", "Boulangerie du Moulin", "2024-01-28", 16, 28).WithRating(5, "")

	assert.Equal(t, 448.0, m.TotalEarnings)
	assert.True(t, m.IsRated())

	on, err := m.CompletedOn()
	require.NoError(t, err)
	assert.Equal(t, 2024, on.Year())
}
