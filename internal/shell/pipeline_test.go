package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPipelineSingleStage(t *testing.T) {
	stages, err := SplitPipeline([]string{"echo", "hi"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"echo", "hi"}}, stages)
}

func TestSplitPipelineMultiStage(t *testing.T) {
	stages, err := SplitPipeline([]string{"cat", "f", "|", "grep", "x", "|", "wc"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"cat", "f"}, {"grep", "x"}, {"wc"}}, stages)
}

func TestSplitPipelineLeadingPipeIsSyntaxError(t *testing.T) {
	_, err := SplitPipeline([]string{"|", "cmd"})
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestSplitPipelineTrailingPipeIsSyntaxError(t *testing.T) {
	_, err := SplitPipeline([]string{"cmd", "|"})
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestSplitPipelineDoublePipeIsSyntaxError(t *testing.T) {
	_, err := SplitPipeline([]string{"a", "|", "|", "b"})
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestExtractRedirectionOverwrite(t *testing.T) {
	cmd, redir := ExtractRedirection([]string{"echo", "hi", ">", "out.txt"})
	assert.Equal(t, []string{"echo", "hi"}, cmd)
	require.NotNil(t, redir)
	assert.Equal(t, &Redirection{FD: 1, Mode: ModeOverwrite, Target: "out.txt"}, redir)
}

func TestExtractRedirectionAppendFd2(t *testing.T) {
	cmd, redir := ExtractRedirection([]string{"prog", "2>>", "err.log"})
	assert.Equal(t, []string{"prog"}, cmd)
	require.NotNil(t, redir)
	assert.Equal(t, &Redirection{FD: 2, Mode: ModeAppend, Target: "err.log"}, redir)
}

func TestExtractRedirectionSplitFdForm(t *testing.T) {
	cmd, redir := ExtractRedirection([]string{"prog", "1", ">", "out.txt"})
	assert.Equal(t, []string{"prog"}, cmd)
	require.NotNil(t, redir)
	assert.Equal(t, &Redirection{FD: 1, Mode: ModeOverwrite, Target: "out.txt"}, redir)
}

func TestExtractRedirectionBareOneTwoAreOrdinaryArgsWithoutOperator(t *testing.T) {
	cmd, redir := ExtractRedirection([]string{"echo", "1", "2"})
	assert.Equal(t, []string{"echo", "1", "2"}, cmd)
	assert.Nil(t, redir)
}

func TestExtractRedirectionMissingTarget(t *testing.T) {
	cmd, redir := ExtractRedirection([]string{"echo", "hi", ">"})
	assert.Equal(t, []string{"echo", "hi"}, cmd)
	require.NotNil(t, redir)
	assert.Equal(t, "", redir.Target)
}

func TestParsePipelineBlankLine(t *testing.T) {
	p, err := ParsePipeline("   ")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestParsePipelineFull(t *testing.T) {
	p, err := ParsePipeline(`echo hi | grep h > out.txt`)
	require.NoError(t, err)
	require.Len(t, p.Stages, 2)
	assert.Equal(t, "echo", p.Stages[0].Head)
	assert.Equal(t, []string{"hi"}, p.Stages[0].Args)
	assert.Nil(t, p.Stages[0].Redirect)
	assert.Equal(t, "grep", p.Stages[1].Head)
	require.NotNil(t, p.Stages[1].Redirect)
	assert.Equal(t, "out.txt", p.Stages[1].Redirect.Target)
}

func TestParsePipelineSyntaxError(t *testing.T) {
	_, err := ParsePipeline("echo hi | | wc")
	assert.ErrorIs(t, err, ErrSyntax)
}
