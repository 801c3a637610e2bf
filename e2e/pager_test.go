//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJobDescriptionPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	// Open the first featured job, then its full description
	tf.Enter()
	require.True(t, tf.SeePlain("Similar Jobs"), "Should open job details")
	tf.SendKeys("v")

	require.True(t, tf.OutputContainsPlain("Responsibilities", 3*time.Second), "Should show job text in pager")

	// Quit pager and ensure TUI again
	tf.Quit()
	require.True(t, tf.SeePlain("Similar Jobs"), "Should return to details after closing pager")
}
