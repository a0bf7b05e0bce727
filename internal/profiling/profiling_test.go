package profiling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackAndSum(t *testing.T) {
	ResetFrame()

	stop := Track("hud.Handle")
	time.Sleep(time.Millisecond)
	stop()
	Track("render.Inventory")()

	snap := Snapshot()
	assert.Len(t, snap, 2)
	assert.GreaterOrEqual(t, snap["hud.Handle"], time.Millisecond)
	assert.Equal(t, snap["hud.Handle"], SumWithPrefix("hud."))
	assert.Contains(t, TopN(1), "hud.Handle:")

	ResetFrame()
	assert.Empty(t, Snapshot())
	assert.Equal(t, "", TopN(3))
}
