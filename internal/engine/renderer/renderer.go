// Package renderer draws flattened meshes with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/stunts/internal/engine/scene"
	"github.com/Faultbox/stunts/internal/engine/shader"
	"github.com/Faultbox/stunts/internal/logger"
	"github.com/Faultbox/stunts/pkg/math"
)

// LightPosition is the world-space light, high above the track centre.
var LightPosition = math.Vec3{X: 0, Y: 2000, Z: 0}

// SkyColour is the clear colour.
var SkyColour = [3]float32{0.3608, 0.9882, 0.9882}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the GL state and the shader program.
type Renderer struct {
	config  Config
	program *shader.Program
}

// Mesh is a flattened mesh uploaded to the GPU.
type Mesh struct {
	vao   uint32
	vbos  [4]uint32
	count int32
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(SkyColour[0], SkyColour[1], SkyColour[2], 1.0)

	prog, err := shader.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r := &Renderer{config: cfg, program: prog}
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.program.Delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin clears the frame and sets the light for the camera.
func (r *Renderer) Begin(viewProjection math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program.ID)

	light := viewProjection.TransformVec3(LightPosition)
	gl.Uniform3f(r.program.LightPosition, light.X, light.Y, light.Z)
}

// Draw renders a mesh with the given world projection.
func (r *Renderer) Draw(m *Mesh, world math.Mat4) {
	if m == nil || m.count == 0 {
		return
	}

	normal := world.NormalMatrix()
	gl.UniformMatrix4fv(r.program.WorldProjection, 1, false, world.Ptr())
	gl.UniformMatrix3fv(r.program.NormalProjection, 1, false, normal.Ptr())

	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Upload copies a flattened mesh into vertex buffers.
func Upload(fm *scene.FlatMesh) (*Mesh, error) {
	m := &Mesh{count: int32(fm.VertexCount())}
	if m.count == 0 {
		return m, nil
	}

	arrays := [4][]float32{fm.Positions, fm.Normals, fm.Colours, fm.MaterialInfo}
	locs := [4]uint32{shader.AttribPosition, shader.AttribNormal, shader.AttribColour, shader.AttribMaterialInfo}
	for i, a := range arrays {
		if len(a) != len(fm.Positions) {
			return nil, fmt.Errorf("mesh array %d has %d floats, want %d", i, len(a), len(fm.Positions))
		}
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(int32(len(m.vbos)), &m.vbos[0])

	for i, a := range arrays {
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[i])
		gl.BufferData(gl.ARRAY_BUFFER, len(a)*4, unsafe.Pointer(&a[0]), gl.STATIC_DRAW)
		gl.VertexAttribPointer(locs[i], 3, gl.FLOAT, false, 3*4, nil)
		gl.EnableVertexAttribArray(locs[i])
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded", zap.Uint32("vao", m.vao), zap.Int32("vertices", m.count))
	return m, nil
}

// Delete releases the GPU buffers.
func (m *Mesh) Delete() {
	if m == nil || m.vao == 0 {
		return
	}
	gl.DeleteBuffers(int32(len(m.vbos)), &m.vbos[0])
	gl.DeleteVertexArrays(1, &m.vao)
	m.vao = 0
}
