package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthWindowEndsAtCurrentMonth(t *testing.T) {
	w := monthWindow(time.Date(2024, time.February, 29, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, "2023-09", w[0].Key)
	assert.Equal(t, "septembre 2023", w[0].Label)
	assert.Equal(t, "2023-12", w[3].Key)
	assert.Equal(t, "2024-02", w[5].Key)
	assert.Equal(t, "février 2024", w[5].Label)
}
