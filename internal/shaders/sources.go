package shaders

import _ "embed"

//go:embed point.vert.glsl
var PointVertex string

//go:embed point.frag.glsl
var PointFragment string
