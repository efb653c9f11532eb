package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	huffman "github.com/chronos-tachyon/huffpack"
)

func TestRun_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.bin")
	packed := filepath.Join(dir, "input.huf")
	output := filepath.Join(dir, "output.bin")
	original := []byte("AAAAABBBCC and then some more text to compress")
	require.NoError(t, os.WriteFile(input, original, 0o644))

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"compress", input, packed}, &stdout, &stderr), stderr.String())
	require.Contains(t, stderr.String(), "[INFO] compressed")

	stderr.Reset()
	require.Equal(t, 0, run([]string{"-quiet", "decompress", packed, output}, &stdout, &stderr), stderr.String())
	require.Empty(t, stderr.String())

	actual, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, original, actual)
}

func TestRun_Inspect(t *testing.T) {
	dir := t.TempDir()
	packed := filepath.Join(dir, "example.huf")
	container, err := huffman.Compress([]byte("AAAAABBBCC"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(packed, container, 0o644))

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"inspect", "-json", packed}, &stdout, &stderr), stderr.String())

	var stats huffman.Stats
	require.NoError(t, jsoniter.Unmarshal(stdout.Bytes(), &stats))
	require.Equal(t, uint64(10), stats.OriginalSize)
	require.Equal(t, 15, stats.PayloadBits)
	require.Len(t, stats.Codes, 3)

	stdout.Reset()
	require.Equal(t, 0, run([]string{"inspect", packed}, &stdout, &stderr), stderr.String())
	require.Contains(t, stdout.String(), "original size:  10\n")
	require.Contains(t, stdout.String(), "\t 65 0\n")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))

	type testRow struct {
		name   string
		args   []string
		expect int
	}

	testData := [...]testRow{
		{name: "no command", args: nil, expect: 2},
		{name: "unknown command", args: []string{"frobnicate"}, expect: 2},
		{name: "missing output", args: []string{"compress", empty}, expect: 2},
		{name: "empty input", args: []string{"compress", empty, filepath.Join(dir, "x.huf")}, expect: 1},
		{name: "missing input", args: []string{"decompress", filepath.Join(dir, "nope"), filepath.Join(dir, "x")}, expect: 1},
		{name: "corrupt container", args: []string{"decompress", empty, filepath.Join(dir, "x")}, expect: 1},
		{name: "inspect corrupt", args: []string{"inspect", empty}, expect: 1},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.Equal(t, row.expect, run(row.args, &stdout, &stderr))
			require.NotEmpty(t, stderr.String())
		})
	}
}
