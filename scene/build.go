package scene

import (
	"fmt"
	"os"
	"strings"

	"github.com/photonray/photonray/bvh"
	"github.com/photonray/photonray/core"
	"github.com/photonray/photonray/geometry"
	"github.com/photonray/photonray/material"
	"github.com/photonray/photonray/objloader"
	"github.com/photonray/photonray/photon"
)

// Scene bundles everything a render pass needs: the accelerated world,
// the light list for the photon pass, the camera, and the resolved
// config.
type Scene struct {
	World  *bvh.Node
	Lights []photon.Light
	Camera *Camera
	Config Config
}

func (v vec3Doc) toVec3() core.Vec3 { return core.V3(v.X, v.Y, v.Z) }

func parseAxis(s string) (geometry.Axis, error) {
	switch strings.ToLower(s) {
	case "xy", "":
		return geometry.AxisXY, nil
	case "xz":
		return geometry.AxisXZ, nil
	case "yz":
		return geometry.AxisYZ, nil
	default:
		return 0, fmt.Errorf("scene: unknown rect axis %q", s)
	}
}

func buildMaterial(doc matDoc) (core.Material, error) {
	switch strings.ToLower(doc.Kind) {
	case "diffuse":
		return material.NewDiffuse(doc.Albedo.toVec3()), nil
	case "specular":
		return material.NewSpecular(doc.Albedo.toVec3()), nil
	case "refractive":
		return material.NewRefractive(doc.RefractionIndex), nil
	case "emissive":
		return material.NewEmissive(doc.Emit.toVec3()), nil
	default:
		return nil, fmt.Errorf("scene: unknown material kind %q", doc.Kind)
	}
}

func buildMaterials(docs map[string]matDoc) (map[string]core.Material, error) {
	out := make(map[string]core.Material, len(docs))
	for name, doc := range docs {
		mat, err := buildMaterial(doc)
		if err != nil {
			return nil, fmt.Errorf("scene: material %q: %w", name, err)
		}
		out[name] = mat
	}
	return out, nil
}

func buildPrimitives(docs []primitiveDoc, materials map[string]core.Material) ([]core.Hittable, error) {
	var out []core.Hittable
	for i, doc := range docs {
		mat, ok := materials[doc.Material]
		if !ok {
			return nil, fmt.Errorf("scene: primitive %d references unknown material %q", i, doc.Material)
		}
		switch strings.ToLower(doc.Kind) {
		case "sphere":
			out = append(out, geometry.NewSphere(doc.Center.toVec3(), doc.Radius, mat))
		case "plane":
			out = append(out, geometry.NewPlane(doc.Point.toVec3(), doc.Normal.toVec3(), mat))
		case "rect":
			axis, err := parseAxis(doc.Axis)
			if err != nil {
				return nil, err
			}
			out = append(out, geometry.NewRect(axis, doc.A0, doc.A1, doc.B0, doc.B1, doc.K, mat))
		case "obj":
			f, err := os.Open(doc.ObjPath)
			if err != nil {
				return nil, fmt.Errorf("scene: primitive %d: %w", i, err)
			}
			mesh, err := objloader.Load(f, mat)
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("scene: primitive %d: %w", i, err)
			}
			for _, tri := range mesh.Triangles {
				out = append(out, tri)
			}
		default:
			return nil, fmt.Errorf("scene: primitive %d has unknown kind %q", i, doc.Kind)
		}
	}
	return out, nil
}

func buildLights(docs []lightDoc) ([]photon.Light, []core.Hittable, error) {
	var lights []photon.Light
	var hittables []core.Hittable
	for i, doc := range docs {
		axis, err := parseAxis(doc.Axis)
		if err != nil {
			return nil, nil, fmt.Errorf("scene: light %d: %w", i, err)
		}
		color := doc.Color.toVec3()
		mat := material.NewEmissive(color)
		rect := geometry.NewRect(axis, doc.A0, doc.A1, doc.B0, doc.B1, doc.K, mat)
		lights = append(lights, NewAreaLight(rect, color))
		hittables = append(hittables, rect)
	}
	return lights, hittables, nil
}

// Build assembles a Scene from a parsed document: materials, primitives
// (including OBJ meshes), rectangular area lights (added to the world as
// both emissive Hittables and photon.Light emitters), the BVH, and the
// camera.
func Build(doc document) (*Scene, error) {
	if err := doc.Config.Validate(); err != nil {
		return nil, err
	}

	materials, err := buildMaterials(doc.Materials)
	if err != nil {
		return nil, err
	}
	primitives, err := buildPrimitives(doc.Primitives, materials)
	if err != nil {
		return nil, err
	}
	lights, lightHittables, err := buildLights(doc.Lights)
	if err != nil {
		return nil, err
	}
	primitives = append(primitives, lightHittables...)

	root, err := bvh.Build(primitives)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	cam := NewCamera(
		doc.Camera.LookFrom.toVec3(),
		doc.Camera.LookAt.toVec3(),
		doc.Camera.Up.toVec3(),
		doc.Camera.ViewportWidth,
		doc.Camera.ViewportHeight,
		doc.Camera.FocalLength,
	)

	return &Scene{World: root, Lights: lights, Camera: cam, Config: doc.Config}, nil
}
