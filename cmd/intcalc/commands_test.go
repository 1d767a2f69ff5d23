package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOperationCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "sqrt", args: []string{"sqrt", "50"}, want: "7\n"},
		{name: "sqrt_zero", args: []string{"sqrt", "0"}, want: "0\n"},
		{name: "sqrt_max", args: []string{"sqrt", "18446744073709551615"}, want: "4294967295\n"},
		{name: "cbrt", args: []string{"cbrt", "27"}, want: "3\n"},
		{name: "log2", args: []string{"log2", "8"}, want: "3\n"},
		{name: "log10", args: []string{"log10", "100"}, want: "2\n"},
		{name: "ln", args: []string{"ln", "1"}, want: "0\n"},
		{name: "log_base3", args: []string{"log", "--base", "3", "81"}, want: "4\n"},
		{name: "log_default_base", args: []string{"log", "1000"}, want: "3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestOperandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "negative_sqrt", args: []string{"sqrt", "--", "-4"}, wantErr: "negative"},
		{name: "negative_log10", args: []string{"log10", "--", "-100"}, wantErr: "negative"},
		{name: "zero_log2", args: []string{"log2", "0"}, wantErr: "logarithm of 0 is undefined"},
		{name: "zero_ln", args: []string{"ln", "0"}, wantErr: "logarithm of 0 is undefined"},
		{name: "bad_base", args: []string{"log", "--base", "1", "8"}, wantErr: "base must be at least 2"},
		{name: "not_a_number", args: []string{"sqrt", "seven"}, wantErr: "invalid value"},
		{name: "overflow", args: []string{"sqrt", "18446744073709551616"}, wantErr: "invalid value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
