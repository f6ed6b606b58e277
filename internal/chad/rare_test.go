package chad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowRareCodons(t *testing.T) {
	var rc RareCodonChecker = AllowRareCodons{}

	assert.True(t, rc.Check("", nil))
	assert.True(t, rc.Check("AGAAGAAGA", RareCodonInfo{"AGA": {1}}))
}
