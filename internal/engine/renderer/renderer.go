// Package renderer draws the toy scene with OpenGL 4.1 core.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/squish/internal/engine/lighting"
	"github.com/Faultbox/squish/internal/engine/mesh"
	"github.com/Faultbox/squish/internal/engine/shader"
	"github.com/Faultbox/squish/internal/logger"
	"github.com/Faultbox/squish/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the GL state for the scene: one lambert program, a
// dynamic vertex buffer for the deformable body, and a shared unit cube
// for particles.
type Renderer struct {
	config Config

	lambert *shader.Program
	light   lighting.Directional

	// Deformable body buffers. The VBO is re-uploaded whenever the mesh
	// reports itself dirty.
	bodyVAO    uint32
	bodyVBO    uint32
	bodyEBO    uint32
	indexCount int32

	cubeVAO   uint32
	cubeVBO   uint32
	cubeCount int32

	// Scratch interleave buffer, reused across frames.
	interleaved []float32
}

const lambertVertex = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;

out vec3 vNormal;
out vec3 vWorldPos;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	vNormal = mat3(uModel) * aNormal;
	gl_Position = uProj * uView * world;
}
`

const lambertFragment = `
#version 410 core

in vec3 vNormal;
in vec3 vWorldPos;

uniform vec3 uColor;
uniform vec3 uLightDir;
uniform vec3 uCamPos;
uniform float uAmbient;
uniform float uDiffuse;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	float diffuse = max(dot(n, -uLightDir), 0.0);
	vec3 viewDir = normalize(uCamPos - vWorldPos);
	vec3 halfway = normalize(viewDir - uLightDir);
	float spec = pow(max(dot(n, halfway), 0.0), 48.0);
	vec3 color = uColor * (uAmbient + uDiffuse * diffuse) + vec3(0.6) * spec;
	FragColor = vec4(color, 1.0);
}
`

// New initializes OpenGL and builds the scene resources. Must be called
// after the GL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg, light: lighting.Key()}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.96, 0.93, 0.89, 1.0) // warm paper background

	var err error
	r.lambert, err = shader.Compile(lambertVertex, lambertFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to build lambert program: %w", err)
	}

	r.createCube()
	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.bodyVAO != 0 {
		gl.DeleteVertexArrays(1, &r.bodyVAO)
		gl.DeleteBuffers(1, &r.bodyVBO)
		gl.DeleteBuffers(1, &r.bodyEBO)
	}
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
		gl.DeleteBuffers(1, &r.cubeVBO)
	}
	if r.lambert != nil {
		r.lambert.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// UploadBody allocates the dynamic buffers for the deformable mesh. Call
// once; per-frame updates go through DrawBody.
func (r *Renderer) UploadBody(m *mesh.Mesh) {
	r.interleaved = m.Interleave(r.interleaved)
	r.indexCount = int32(len(m.Indices))

	gl.GenVertexArrays(1, &r.bodyVAO)
	gl.BindVertexArray(r.bodyVAO)

	gl.GenBuffers(1, &r.bodyVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.bodyVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.interleaved)*4,
		unsafe.Pointer(&r.interleaved[0]), gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &r.bodyEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.bodyEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4,
		unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// BeginFrame clears the buffers and binds the frame-constant uniforms.
func (r *Renderer) BeginFrame(view, proj math.Mat4, camPos math.Vec3) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.lambert.Use()
	r.lambert.SetMat4("uView", view)
	r.lambert.SetMat4("uProj", proj)
	r.lambert.SetVec3("uLightDir", r.light.Direction)
	r.lambert.SetVec3("uCamPos", camPos)
	r.lambert.SetFloat("uAmbient", r.light.Ambient)
	r.lambert.SetFloat("uDiffuse", r.light.Diffuse)
}

// ReadPixels reads the current framebuffer back as RGBA bytes, bottom-up.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE,
		unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// DrawBody re-uploads the live vertices if the mesh changed this frame,
// then draws it with the given transform and color.
func (r *Renderer) DrawBody(m *mesh.Mesh, pos, scale math.Vec3, rotZ float32, color math.Vec3) {
	if r.bodyVAO == 0 {
		return
	}

	if m.Dirty {
		r.interleaved = m.Interleave(r.interleaved)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.bodyVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.interleaved)*4,
			unsafe.Pointer(&r.interleaved[0]))
		m.Dirty = false
	}

	model := math.Translate(pos.X, pos.Y, pos.Z).
		Mul(math.RotateZ(rotZ)).
		Mul(math.Scale(scale.X, scale.Y, scale.Z))
	r.lambert.SetMat4("uModel", model)
	r.lambert.SetVec3("uColor", color)

	gl.BindVertexArray(r.bodyVAO)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// DrawCube draws one shaded unit cube with the given transform. Particles
// and drips are all rendered through this.
func (r *Renderer) DrawCube(pos, scale math.Vec3, rot math.Vec3, color math.Vec3) {
	model := math.Translate(pos.X, pos.Y, pos.Z).
		Mul(math.RotateY(rot.Y)).
		Mul(math.RotateX(rot.X)).
		Mul(math.RotateZ(rot.Z)).
		Mul(math.Scale(scale.X, scale.Y, scale.Z))
	r.lambert.SetMat4("uModel", model)
	r.lambert.SetVec3("uColor", color)

	gl.BindVertexArray(r.cubeVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, r.cubeCount)
	gl.BindVertexArray(0)
}

// createCube builds a unit cube (side 1, centered) with face normals.
func (r *Renderer) createCube() {
	faces := []struct {
		normal     math.Vec3
		a, b, c, d math.Vec3
	}{
		{math.Vec3{Z: 1}, v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1)},
		{math.Vec3{Z: -1}, v(1, -1, -1), v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1)},
		{math.Vec3{X: 1}, v(1, -1, 1), v(1, -1, -1), v(1, 1, -1), v(1, 1, 1)},
		{math.Vec3{X: -1}, v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1)},
		{math.Vec3{Y: 1}, v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1), v(-1, 1, -1)},
		{math.Vec3{Y: -1}, v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), v(-1, -1, 1)},
	}

	var verts []float32
	push := func(p, n math.Vec3) {
		verts = append(verts, p.X*0.5, p.Y*0.5, p.Z*0.5, n.X, n.Y, n.Z)
	}
	for _, f := range faces {
		push(f.a, f.normal)
		push(f.b, f.normal)
		push(f.c, f.normal)
		push(f.a, f.normal)
		push(f.c, f.normal)
		push(f.d, f.normal)
	}
	r.cubeCount = int32(len(verts) / 6)

	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.BindVertexArray(r.cubeVAO)

	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

func v(x, y, z float32) math.Vec3 {
	return math.Vec3{X: x, Y: y, Z: z}
}
