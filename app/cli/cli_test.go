//go:build !integration

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mySmartMarket/business/review"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	// flag values persist across Execute calls
	normalizeMode = "catalog"
	summarizeProduct, summarizeCategory = 0, 0
	summarizeAll, summarizeFile = false, ""
	summarizeConcurrency = 4
	t.Cleanup(func() { db = nil })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestNormalizeCommand_Args(t *testing.T) {
	out, err := execute(t, "", "--stem=false", "normalize", "--mode", "catalog", "Jam Tangan KW", "brg bgt")
	require.NoError(t, err)

	assert.Equal(t, "jam tangan palsu\nbarang banget\n", out)
}

func TestNormalizeCommand_Stdin(t *testing.T) {
	out, err := execute(t, "Jam Tangan KW\n", "--stem=false", "normalize")
	require.NoError(t, err)

	assert.Equal(t, "jam tangan palsu\n", out)
}

func TestNormalizeCommand_UnknownMode(t *testing.T) {
	_, err := execute(t, "", "--stem=false", "normalize", "--mode", "poetry", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestSummarizeCommand_File(t *testing.T) {
	t.Setenv("SUMMARY_TOP_K", "2")
	t.Setenv("SUMMARY_THRESHOLD", "0.1")
	t.Setenv("SUMMARY_SEPARATOR", ",")

	path := filepath.Join(t.TempDir(), "reviews.txt")
	content := "Barang bagus sesuai deskripsi.\n\nPengiriman cepat dan aman.\nBarang bagus dan pengiriman cepat sekali.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := execute(t, "", "--stem=false", "summarize", "--file", path)
	require.NoError(t, err)

	assert.Equal(t, "Pengiriman cepat dan aman.,Barang bagus dan pengiriman cepat sekali.\n", out)
}

func TestSummarizeCommand_FilePlaceholders(t *testing.T) {
	out, err := execute(t, "\n  \n", "--stem=false", "summarize", "--file", "-")
	require.NoError(t, err)
	assert.Equal(t, review.NoReviewsMessage+"\n", out)

	out, err = execute(t, "oke\nbagus\n", "--stem=false", "summarize", "--file", "-")
	require.NoError(t, err)
	assert.Equal(t, review.UnusableMessage+"\n", out)
}

func TestSummarizeCommand_RequiresSource(t *testing.T) {
	_, err := execute(t, "", "--stem=false", "summarize")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestRecommendCommand_RequiresProduct(t *testing.T) {
	recommendProduct = 0
	_, err := execute(t, "", "--stem=false", "recommend")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--product is required")
}
