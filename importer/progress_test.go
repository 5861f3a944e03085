package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_ReportsPerInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, "KJV", 1000, 100)

	p.BatchCommitted(50)
	assert.Empty(t, buf.String(), "nothing printed under the interval")

	p.BatchCommitted(50)
	out := buf.String()
	assert.Contains(t, out, "KJV: 100/1000 verses (10.0%) in 2 batches")
	assert.Contains(t, out, "verses/s")
	assert.Equal(t, 100, p.Written())
}

func TestProgress_DoneReportsActualCount(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, "ASV", 100, 1000)

	p.BatchCommitted(40)
	p.Done()

	out := buf.String()
	assert.Contains(t, out, "ASV: 40/100 verses (40.0%) in 1 batches")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestProgress_ClampsToTotal(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, "KJV", 10, 1)

	p.BatchCommitted(15)
	assert.Equal(t, 10, p.Written())
	assert.Contains(t, buf.String(), "10/10 verses")
}

func TestProgress_Defaults(t *testing.T) {
	p := NewProgress(nil, "", 0, 0)
	p.BatchCommitted(0)
	p.Done()
	assert.Equal(t, "corpus", p.label)
	assert.Equal(t, 1, p.interval)
}
