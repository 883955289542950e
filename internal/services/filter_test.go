package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%pepp%", containsPattern("PEPP"))
	assert.Equal(t, `%100\% off%`, containsPattern("100% off"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
	assert.Equal(t, `%c:\\x%`, containsPattern(`C:\x`))
}
