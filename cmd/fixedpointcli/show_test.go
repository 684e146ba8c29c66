package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShowCmd_DecimalRendersString(t *testing.T) {
	var out bytes.Buffer
	showCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"show", "--width", "32", "--base", "10", "--", "1001", "-3"})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "1.001")
}

func TestShowCmd_RejectsUnsupportedWidth(t *testing.T) {
	var out bytes.Buffer
	showCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"show", "1", "0", "--width", "48", "--base", "10"})
	require.Error(t, rootCmd.Execute())
}

func TestShowCmd_Base2SkipsStringRendering(t *testing.T) {
	var out bytes.Buffer
	showCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"show", "3", "2", "--width", "64", "--base", "2"})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "base2, decimal rendering unsupported")
}
