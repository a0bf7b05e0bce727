package graphics

import "embed"

//go:embed shaders/*.vert shaders/*.frag
var shaderFS embed.FS
