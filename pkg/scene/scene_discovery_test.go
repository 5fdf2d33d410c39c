package scene

import (
	"math/rand"
	"strings"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-smoke", "Cornell Smoke"},
		{"simple_light", "Simple Light"},
		{"final", "Final"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(registry) {
		t.Fatalf("Expected %d scenes, got %d", len(registry), len(scenes))
	}

	for i, info := range scenes {
		if info.ID == "" || info.DisplayName == "" || info.Description == "" || info.Group == "" {
			t.Errorf("Scene %d has incomplete metadata: %+v", i, info)
		}
		if i == 0 {
			continue
		}
		prev := scenes[i-1]
		if prev.Group > info.Group || (prev.Group == info.Group && prev.ID >= info.ID) {
			t.Errorf("Scenes not sorted: %q/%q before %q/%q", prev.Group, prev.ID, info.Group, info.ID)
		}
	}
}

func TestNewSceneByNameUnknown(t *testing.T) {
	_, err := NewSceneByName("teapot", rand.New(rand.NewSource(1)), Options{})
	if err == nil {
		t.Fatal("Expected an error for an unknown scene")
	}
	if !strings.Contains(err.Error(), "cornell") {
		t.Errorf("Expected available scenes in error, got %v", err)
	}
}

func TestNoiseSceneDescriptions(t *testing.T) {
	for _, id := range []string{"perlin", "simple-light"} {
		description := registry[id].info.Description
		if !strings.Contains(strings.ToLower(description), "turbulence") {
			t.Errorf("%s: expected the description to name the turbulence texture, got %q", id, description)
		}
		if strings.Contains(strings.ToLower(description), "marble") {
			t.Errorf("%s: description promises marble veins the texture does not have: %q", id, description)
		}
	}
}
