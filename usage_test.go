package rangeropt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_Usage(t *testing.T) {
	p := NewParser()
	text := p.usage("ranger", 100)

	assert.True(t, strings.HasPrefix(text, "Usage:\n    ranger [options]\n"))

	for pair := p.grammar.Oldest(); pair != nil; pair = pair.Next() {
		opt := pair.Value.(*option)
		assert.Contains(t, text, "--"+opt.long, "every option appears in the usage text")
	}

	assert.Contains(t, text, "TYPE = 11: Quantile.", "the tree type legend keeps its forced line breaks")
	assert.Contains(t, text, "TYPE = 15: Instrumental.")

	for _, line := range strings.Split(text, "\n") {
		assert.LessOrEqual(t, len(line), 100, "line overflows the requested width: %q", line)
	}
}

func TestParser_UsageNarrowWidth(t *testing.T) {
	p := NewParser()

	// below the minimum the renderer clamps rather than producing negative wrap widths
	text := p.usage("ranger", 10)
	assert.Contains(t, text, "--ntree")
}

func TestVersionInfo(t *testing.T) {
	text := VersionInfo()

	assert.Contains(t, text, "Ranger version: "+ToolVersion)
	assert.Contains(t, text, "Please cite Ranger:")
	assert.Contains(t, text, "BibTeX:")
	assert.Contains(t, text, "Journal of Statistical Software")
}
