//go:build !wasip1 && !js

package alpha_abbrev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentenceInitialisms(t *testing.T) {
	initialisms, err := SentenceInitialisms(
		"The world wide web is big. United States of America is a country.")
	require.NoError(t, err)
	assert.Equal(t, []string{"Twwwib", "USoAiac"}, initialisms)

	initialisms, err = SentenceInitialisms("")
	require.NoError(t, err)
	assert.Empty(t, initialisms)
}
