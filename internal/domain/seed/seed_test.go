package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"choukette/internal/domain/entity"
)

func TestSeedSizes(t *testing.T) {
	assert.Len(t, Missions(day("2024-01-01")), 22)
	assert.Len(t, Bakeries(), 23)
	assert.Len(t, Professionals(day("2024-01-01")), 20)
	assert.Len(t, BlogPosts(), 20)
	assert.Len(t, BlogCategories(), 6)
	assert.Len(t, CompletedMissions(), 6)
}

func TestSeedIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Missions(day("2024-01-01")) {
		assert.False(t, seen[m.ID], "duplicate mission %s", m.ID)
		seen[m.ID] = true
	}

	seen = map[string]bool{}
	for _, b := range Bakeries() {
		assert.False(t, seen[b.ID], "duplicate bakery %s", b.ID)
		assert.False(t, seen[b.Email], "duplicate email %s", b.Email)
		seen[b.ID] = true
		seen[b.Email] = true
	}
}

func TestDemoBakeryCredentials(t *testing.T) {
	b := Bakeries()[0]
	assert.Equal(t, "bakery1", b.ID)
	assert.Equal(t, "boulangerie@moulin.fr", b.Email)
	assert.Equal(t, "demo123", b.Password)
}

func TestCompletedMissionEarningsAreHoursTimesRate(t *testing.T) {
	for _, m := range CompletedMissions() {
		assert.Equal(t, m.Hours*m.HourlyRate, m.TotalEarnings, m.ID)
		assert.Equal(t, DemoProfessionalID, m.ProfessionalID)
	}
	assert.Empty(t, CompletedMissionsFor("pro2"))
	assert.Len(t, CompletedMissionsFor("pro1"), 6)
}

func TestFillerMissions(t *testing.T) {
	b := Bakeries()[1]
	fillers := FillerMissions(b)
	require.Len(t, fillers, 3)

	for _, m := range fillers {
		assert.Equal(t, b.ID, m.BakeryID)
		assert.Equal(t, b.Name, m.BakeryName)
	}
	assert.Equal(t, entity.MissionStatusFilled, fillers[0].Status)
	assert.Equal(t, entity.MissionStatusFilled, fillers[1].Status)
	assert.Equal(t, entity.MissionStatusOpen, fillers[2].Status)

	assert.Equal(t, "Boulangerie", FillerMissions(entity.Bakery{ID: "x"})[0].BakeryName)
}

func TestPickAvatarIsStable(t *testing.T) {
	pool := ProfessionalAvatars()
	a := PickAvatar(pool, 42, "pro1")
	assert.Equal(t, a, PickAvatar(pool, 42, "pro1"))
	assert.Contains(t, pool, a)
	assert.Empty(t, PickAvatar(nil, 42, "pro1"))

	assert.Len(t, BakeryAvatars(), 22)
	assert.Equal(t, "boulangerie1.jpeg", BakeryAvatars()[0])
	assert.Equal(t, "/assets/boulangeries/boulangerie1.jpeg", BakeryImage(22))
}

func TestFeaturedPosts(t *testing.T) {
	var featured []string
	for _, p := range BlogPosts() {
		if p.Featured {
			featured = append(featured, p.ID)
		}
	}
	assert.Equal(t, []string{"1", "3", "12", "18"}, featured)
}
