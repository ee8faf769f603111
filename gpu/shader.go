package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/batch"
	"github.com/gogpu/naga"
)

//go:embed shaders/batch.wgsl
var defaultShaderSource string

// Shader is a WGSL program compiled to SPIR-V. It implements batch.Shader
// so it can travel in batch.RenderStates.
type Shader struct {
	label string
	spirv []uint32
}

// CompileShader compiles WGSL source to SPIR-V.
func CompileShader(label, wgsl string) (*Shader, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile shader %q: %w", label, err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("gpu: compile shader %q: SPIR-V size %d is not a multiple of 4", label, len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	batch.Logger().Debug("gpu: shader compiled", "label", label, "words", len(words))
	return &Shader{label: label, spirv: words}, nil
}

// CompileDefaultShader compiles the built-in vertex/fragment shader that
// draws batch vertices with an optional texture.
func CompileDefaultShader() (*Shader, error) {
	return CompileShader("batch", defaultShaderSource)
}

// DefaultShaderSource returns the WGSL source of the built-in shader.
func DefaultShaderSource() string {
	return defaultShaderSource
}

// Label returns the shader's name.
func (s *Shader) Label() string { return s.label }

// SPIRV returns the compiled SPIR-V words.
func (s *Shader) SPIRV() []uint32 { return s.spirv }

var _ batch.Shader = (*Shader)(nil)
