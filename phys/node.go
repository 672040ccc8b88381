// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

import (
	"encoding/json"
	"fmt"
)

// Node represents a physical object in the scene.
// It combines a geometric shape with a material that interacts with light.
// Analogous to the "primitive" concept in some ray tracing systems.
type Node struct {
	Name      string
	Transform Transform
	Shape     Shape
	Material  Material
}

func (n Node) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("Node must have a name")
	}
	if n.Shape == nil {
		return fmt.Errorf("Node %q: missing Shape", n.Name)
	}
	if n.Material == nil {
		return fmt.Errorf("Node %q: missing Material", n.Name)
	}
	if err := n.Shape.Validate(); err != nil {
		return fmt.Errorf("Shape %q: %v", n.Name, err)
	}
	if err := n.Material.Validate(); err != nil {
		return fmt.Errorf("Material %q: %v", n.Name, err)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Node.
func (n Node) MarshalJSON() ([]byte, error) {
	shapeJSON, err := marshalInterface(n.Shape)
	if err != nil {
		return nil, err
	}
	materialJSON, err := marshalInterface(n.Material)
	if err != nil {
		return nil, err
	}
	wrapped := map[string]interface{}{
		"Name":     n.Name,
		"Shape":    shapeJSON,
		"Material": materialJSON,
	}
	return json.Marshal(wrapped)
}

// UnmarshalJSON implements the json.Unmarshaler interface for Node.
func (n *Node) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		Name     string          `json:"Name"`
		Shape    json.RawMessage `json:"Shape"`
		Material json.RawMessage `json:"Material"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	// Unmarshal Shape.
	iface, err := unmarshalInterface(wrapper.Shape)
	if err != nil {
		return err
	}
	shape, ok := iface.(Shape)
	if !ok {
		return fmt.Errorf("expected Shape, got %T", iface)
	}
	// Unmarshal Material.
	iface, err = unmarshalInterface(wrapper.Material)
	if err != nil {
		return err
	}
	material, ok := iface.(Material)
	if !ok {
		return fmt.Errorf("expected Material, got %T", iface)
	}
	n.Name = wrapper.Name
	n.Shape = shape
	n.Material = material
	return nil
}

func (n Node) String() string {
	return fmt.Sprintf("Node{Name: %q, Shape: %v, Material: %v}", n.Name, n.Shape, n.Material)
}
