package server

import (
	"encoding/json"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()
	if len(tools) != 18 {
		t.Errorf("tool count: got %d, want 18", len(tools))
	}

	seen := make(map[string]bool)
	for _, tool := range tools {
		if tool.Name == "" {
			t.Error("tool with empty name")
		}
		if seen[tool.Name] {
			t.Errorf("duplicate tool name %q", tool.Name)
		}
		seen[tool.Name] = true

		if tool.Description == "" {
			t.Errorf("tool %s has no description", tool.Name)
		}
		if tool.InputSchema["type"] != "object" {
			t.Errorf("tool %s schema type: got %v, want object", tool.Name, tool.InputSchema["type"])
		}
		if _, ok := tool.InputSchema["properties"]; !ok {
			t.Errorf("tool %s schema has no properties", tool.Name)
		}
	}

	for _, name := range []string{
		"image_create", "image_list", "image_dimensions", "image_set_keywords",
		"region_set", "region_get", "region_set_compatible", "region_maximize",
		"image_cutout", "image_cutout_radius", "image_cutout_cross",
		"pixel_to_sky", "sky_to_pixel", "sky_separation", "sky_offsets",
		"pixel_scale", "compass", "star_qualsize",
	} {
		if !seen[name] {
			t.Errorf("missing tool %s", name)
		}
	}
}

// Every tool in the catalog must be handled by the dispatch table. Unknown
// names fail with "unknown tool"; catalog names must fail differently (or
// not at all) when called with empty arguments.
func TestEveryDefinedToolIsDispatchable(t *testing.T) {
	s := newTestServer(t)
	for _, tool := range GetToolDefinitions() {
		_, err := s.executeTool(tool.Name, json.RawMessage(`{}`))
		if err != nil && err.Error() == "unknown tool: "+tool.Name {
			t.Errorf("tool %s is defined but not dispatchable", tool.Name)
		}
	}
}

func TestToolDefinitions_Marshal(t *testing.T) {
	b, err := json.Marshal(GetToolDefinitions())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back []map[string]interface{}
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if _, ok := back[0]["inputSchema"]; !ok {
		t.Error("inputSchema field missing from marshaled tool")
	}
}

func TestSchemaRequiredFields(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		props := tool.InputSchema["properties"].(map[string]interface{})
		required, _ := tool.InputSchema["required"].([]string)
		for _, name := range required {
			if _, ok := props[name]; !ok {
				t.Errorf("tool %s requires %q but does not declare it", tool.Name, name)
			}
		}
	}
}
