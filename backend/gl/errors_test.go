// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl

import (
	"strings"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func TestShaderErrorMessage(t *testing.T) {
	err := &ShaderError{Stage: "vertex", Log: "0:3: syntax error"}
	msg := err.Error()
	if !strings.Contains(msg, "vertex") {
		t.Errorf("Error() = %q, want stage name included", msg)
	}
	if !strings.Contains(msg, "0:3: syntax error") {
		t.Errorf("Error() = %q, want driver log included", msg)
	}
}

func TestLinkErrorMessage(t *testing.T) {
	err := &LinkError{Log: "undefined varying fragmentColor"}
	if !strings.Contains(err.Error(), "undefined varying fragmentColor") {
		t.Errorf("Error() = %q, want driver log included", err.Error())
	}
}

func TestStageName(t *testing.T) {
	tests := []struct {
		stage uint32
		want  string
	}{
		{gl.VERTEX_SHADER, "vertex"},
		{gl.FRAGMENT_SHADER, "fragment"},
		{gl.GEOMETRY_SHADER, "unknown"},
	}
	for _, tt := range tests {
		if got := stageName(tt.stage); got != tt.want {
			t.Errorf("stageName(%#x) = %q, want %q", tt.stage, got, tt.want)
		}
	}
}
