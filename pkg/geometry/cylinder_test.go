package geometry

import (
	"math"
	"testing"

	"github.com/rv42/go-ray-caster/pkg/core"
	"github.com/rv42/go-ray-caster/pkg/material"
)

func TestCylinder_Intersect_Wall(t *testing.T) {
	cylinder := NewCylinder(core.NewVec3(0, 0, -2), 0.5, 2.0, material.Green())
	ray := core.NewRay(core.Zero(), core.NewVec3(0, 0, -1))

	hit, isHit := cylinder.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-1.5) > 1e-10 {
		t.Errorf("Expected t=1.5, got t=%f", hit.T)
	}
	// Wall normal points back toward the ray in the horizontal plane
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-10 {
		t.Errorf("Expected normal (0, 0, 1), got %v", hit.Normal)
	}
}

func TestCylinder_Intersect_AboveHeight(t *testing.T) {
	cylinder := NewCylinder(core.NewVec3(0, 0, -2), 0.5, 2.0, material.Green())
	// Ray passes over the top of the cylinder (top is at y=1)
	ray := core.NewRay(core.NewVec3(0, 1.5, 0), core.NewVec3(0, 0, -1))

	if _, isHit := cylinder.Intersect(ray); isHit {
		t.Error("Expected miss for ray above the cylinder height")
	}
}

func TestCylinder_Intersect_TopCap(t *testing.T) {
	cylinder := NewCylinder(core.NewVec3(0, 0, 0), 0.5, 2.0, material.Green())
	// Vertical ray straight down through the axis hits the top cap at y=1
	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0))

	hit, isHit := cylinder.Intersect(ray)
	if !isHit {
		t.Fatal("Expected cap hit, but got miss")
	}
	if math.Abs(hit.T-2.0) > 1e-10 {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}
	if hit.Normal != core.UnitY() {
		t.Errorf("Expected top cap normal (0, 1, 0), got %v", hit.Normal)
	}
}

func TestCylinder_Intersect_BottomCap(t *testing.T) {
	cylinder := NewCylinder(core.NewVec3(0, 0, 0), 0.5, 2.0, material.Green())
	ray := core.NewRay(core.NewVec3(0.25, -3, 0), core.NewVec3(0, 1, 0))

	hit, isHit := cylinder.Intersect(ray)
	if !isHit {
		t.Fatal("Expected cap hit, but got miss")
	}
	if math.Abs(hit.T-2.0) > 1e-10 {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}
	if hit.Normal != core.UnitY().Negate() {
		t.Errorf("Expected bottom cap normal (0, -1, 0), got %v", hit.Normal)
	}
}

func TestCylinder_Intersect_WallBeforeCap(t *testing.T) {
	cylinder := NewCylinder(core.NewVec3(0, 0, -2), 0.5, 2.0, material.Green())
	// Slightly downward ray that reaches the wall before any cap plane
	ray := core.NewRay(core.NewVec3(0, 0.1, 0), core.NewVec3(0, -0.01, -1).Normalize())

	hit, isHit := cylinder.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Normal.Y != 0 {
		t.Errorf("Expected wall hit with horizontal normal, got %v", hit.Normal)
	}
}

func TestCylinder_Intersect_Miss(t *testing.T) {
	cylinder := NewCylinder(core.NewVec3(0, 0, -2), 0.5, 2.0, material.Green())
	ray := core.NewRay(core.Zero(), core.NewVec3(0, 0, 1))

	if _, isHit := cylinder.Intersect(ray); isHit {
		t.Error("Expected miss for ray pointing away from cylinder")
	}
}
