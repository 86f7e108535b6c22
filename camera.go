package main

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// projector is the slice of the camera the gesture classifier and the
// sticker picker actually need: world point in, screen point out.
type projector interface {
	Project(p r3.Vec) (x, y, depth float64, ok bool)
	Facing(p, normal r3.Vec) bool
}

// Camera is a yaw/pitch orbit camera looking at the torus center.
// Screen coordinates are virtual pixels with the origin top-left.
type Camera struct {
	yaw      float64
	pitch    float64
	distance float64
	width    float64
	height   float64
	focal    float64
}

const (
	cameraNear     = 0.1
	cameraFovY     = 0.9 // radians
	pitchLimit     = 1.45
	orbitPerPixel  = 0.005
	orbitPerNotch  = 0.08
	distanceMargin = 1.35
)

func NewCamera() *Camera {
	c := &Camera{
		yaw:   0.6,
		pitch: 0.5,
	}
	c.SetViewport(640, 480)
	return c
}

// SetViewport resizes the projection plane and refits the distance.
func (c *Camera) SetViewport(width, height float64) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.width = width
	c.height = height
	c.focal = height / (2 * math.Tan(cameraFovY/2))
	c.RecomputeDistance(width, height)
}

// Rotate orbits the view. Pitch is clamped short of the poles so the
// view basis never degenerates.
func (c *Camera) Rotate(deltaYaw, deltaPitch float64) {
	c.yaw += deltaYaw
	c.pitch += deltaPitch
	if c.pitch > pitchLimit {
		c.pitch = pitchLimit
	}
	if c.pitch < -pitchLimit {
		c.pitch = -pitchLimit
	}
}

// RecomputeDistance places the camera so the whole torus fits the
// viewport at the current aspect ratio.
func (c *Camera) RecomputeDistance(width, height float64) {
	if width < 1 || height < 1 {
		return
	}
	bound := (majorRadius + minorRadius) * distanceMargin
	fit := bound / math.Tan(cameraFovY/2)
	// A wide terminal is the normal case; a narrow one needs to back
	// off further so the horizontal extent still fits.
	if width < height {
		fit *= height / width
	}
	c.distance = fit
}

func (c *Camera) eye() r3.Vec {
	cp := math.Cos(c.pitch)
	return r3.Scale(c.distance, r3.Vec{
		X: cp * math.Cos(c.yaw),
		Y: cp * math.Sin(c.yaw),
		Z: math.Sin(c.pitch),
	})
}

// Project maps a world point to virtual-pixel screen coordinates.
// ok is false when the point is behind the near plane.
func (c *Camera) Project(p r3.Vec) (x, y, depth float64, ok bool) {
	eye := c.eye()
	forward := r3.Unit(r3.Scale(-1, eye))
	right := r3.Unit(r3.Cross(forward, r3.Vec{Z: 1}))
	up := r3.Cross(right, forward)

	d := r3.Sub(p, eye)
	zc := r3.Dot(d, forward)
	if zc <= cameraNear {
		return 0, 0, 0, false
	}
	xc := r3.Dot(d, right)
	yc := r3.Dot(d, up)
	x = c.width/2 + c.focal*xc/zc
	y = c.height/2 - c.focal*yc/zc
	return x, y, zc, true
}

// Facing reports whether a surface point with the given outward
// normal faces the camera.
func (c *Camera) Facing(p, normal r3.Vec) bool {
	return r3.Dot(normal, r3.Sub(c.eye(), p)) > 0
}
