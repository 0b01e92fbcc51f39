package logging

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterSortsFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.WithFields(log.Fields{"path": "clouds/cloud0.png", "job": 0}).Info("generated")
	assert.Equal(t, "generated job=0 path=clouds/cloud0.png\n", buf.String())
}

func TestVerboseEnablesDebug(t *testing.T) {
	var quiet, loud bytes.Buffer
	New(&quiet, false).Debug("row")
	New(&loud, true).Debug("row")
	assert.Empty(t, quiet.String())
	assert.Equal(t, "row\n", loud.String())
}

func TestConcurrentLinesStayWhole(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	const writers, lines = 8, 200
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < lines; i++ {
				l.WithField("job", w).Infof("progress %03d %s", i, strings.Repeat("x", 64))
			}
		}(w)
	}
	wg.Wait()

	out := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, out, writers*lines)
	want := " " + strings.Repeat("x", 64) + " job="
	for _, line := range out {
		require.True(t, strings.HasPrefix(line, "progress "), line)
		require.Contains(t, line, want)
		var n, job int
		_, err := fmt.Sscanf(line[strings.LastIndex(line, "job="):], "job=%d", &job)
		require.NoError(t, err, line)
		_, err = fmt.Sscanf(line, "progress %d", &n)
		require.NoError(t, err, line)
	}
}
