package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mbeck/finance-analyzer/cmd/analyze"
)

func TestAnalyzeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "analyze", analyze.Cmd.Use)
	assert.Contains(t, analyze.Cmd.Short, "Analyze")
	assert.Contains(t, analyze.Cmd.Long, "budget summary")
	assert.NotNil(t, analyze.Cmd.Run)
}
