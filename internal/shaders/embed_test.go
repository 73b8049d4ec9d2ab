package shaders

import (
	"strconv"
	"strings"
	"testing"
)

func TestSourcesPresent(t *testing.T) {
	for name, src := range map[string]string{
		"scene.vert": SceneVertexShader,
		"scene.frag": SceneFragmentShader,
		"lines.vert": LinesVertexShader,
		"lines.frag": LinesFragmentShader,
	} {
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Errorf("%s: missing version header", name)
		}
	}
}

func TestPointLightArraySize(t *testing.T) {
	want := "#define MAX_POINT_LIGHTS " + strconv.Itoa(MaxPointLights)
	if !strings.Contains(SceneFragmentShader, want) {
		t.Errorf("scene.frag does not declare %q", want)
	}
}

func TestSceneAttributeLocations(t *testing.T) {
	for loc, name := range []string{"iPosition", "iColor", "iNormal", "iTexCoord"} {
		decl := "layout(location = " + strconv.Itoa(loc) + ") in"
		line := ""
		for _, l := range strings.Split(SceneVertexShader, "\n") {
			if strings.Contains(l, name) && strings.HasPrefix(l, "layout") {
				line = l
			}
		}
		if !strings.HasPrefix(line, decl) {
			t.Errorf("%s should be at location %d, got %q", name, loc, line)
		}
	}
}
