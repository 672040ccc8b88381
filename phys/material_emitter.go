// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

import (
	"encoding/json"
	"fmt"

	"tracer/r3"
)

// Emitter marks a surface as purely emissive: it contributes no BSDF
// lobes (ComputeScatteringFunctions returns nil, so the integrator
// terminates the path there) and radiates Texture's value uniformly over
// the hemisphere. A Node with an Emitter material and a Sampleable Shape
// is eligible to be wrapped as an AreaLight (see light.go).
type Emitter struct {
	Texture Texture
}

func (m Emitter) Validate() error {
	return m.Texture.Validate()
}

func (m Emitter) ComputeScatteringFunctions(col collision) *BSDF {
	return nil
}

func (m Emitter) Emission(col collision, wo r3.Vec) Spectrum {
	if wo.Dot(col.ng) <= 0 {
		return Spectrum{} // One-sided emitter: dark from the back face.
	}
	return m.Texture.At(col.uv.X, col.uv.Y)
}

// Implement custom JSON marshalling for Emitter
func (e *Emitter) MarshalJSON() ([]byte, error) {
	type EmitterData struct {
		Type    string          `json:"Type"`
		Texture json.RawMessage `json:"Texture"`
	}
	textureData, err := marshalInterface(e.Texture)
	if err != nil {
		return nil, err
	}
	data := EmitterData{
		Type:    "Emitter",
		Texture: textureData,
	}
	return json.Marshal(data)
}

// Implement custom JSON unmarshalling for Emitter
func (e *Emitter) UnmarshalJSON(data []byte) error {
	type EmitterData struct {
		Type    string          `json:"Type"`
		Texture json.RawMessage `json:"Texture"`
	}
	var temp EmitterData
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.Type != "Emitter" {
		return fmt.Errorf("invalid type: expected Emitter, got %s", temp.Type)
	}
	texture, err := unmarshalInterface(temp.Texture)
	if err != nil {
		return err
	}
	e.Texture = texture.(Texture)
	return nil
}

func init() {
	RegisterInterfaceType(Emitter{})
}
