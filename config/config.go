package config

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// TextureSlots is the number of texture units the scene binds every frame.
const TextureSlots = 4

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Window   Window    `yaml:"window"`
	Textures []Texture `yaml:"textures"`
	Camera   Camera    `yaml:"camera"`
	Light    Light     `yaml:"light"`
	Model    Model     `yaml:"model"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Texture struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	Unit int    `yaml:"unit"`
}

type Camera struct {
	Position       mgl32.Vec3 `yaml:"position"`
	Front          mgl32.Vec3 `yaml:"front"`
	Up             mgl32.Vec3 `yaml:"up"`
	BaseSpeed      float32    `yaml:"baseSpeed"`
	SpeedScalar    float32    `yaml:"speedScalar"`
	MinSpeedScalar float32    `yaml:"minSpeedScalar"`
	ScrollStep     float32    `yaml:"scrollStep"`
	Sensitivity    float32    `yaml:"sensitivity"`
	Fov            float32    `yaml:"fov"`
	Near           float32    `yaml:"near"`
	Far            float32    `yaml:"far"`
	Ortho          [4]float32 `yaml:"ortho"` // left, right, bottom, top
}

type Light struct {
	Position  mgl32.Vec3 `yaml:"position"`
	Step      float32    `yaml:"step"`
	Ambient   mgl32.Vec3 `yaml:"ambient"`
	Diffuse   mgl32.Vec3 `yaml:"diffuse"`
	Specular  mgl32.Vec3 `yaml:"specular"`
	Constant  float32    `yaml:"constant"`
	Linear    float32    `yaml:"linear"`
	Quadratic float32    `yaml:"quadratic"`
}

type Model struct {
	Scale     float32    `yaml:"scale"`
	Translate mgl32.Vec3 `yaml:"translate"`
}

// Default returns the configuration compiled into the binary.
func Default() (*Config, error) {
	return Parse(defaultYAML)
}

// MustDefault is like Default but panics if the embedded configuration is broken
func MustDefault() *Config {
	cfg, err := Default()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Parse decodes and validates a YAML document
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if len(c.Textures) != TextureSlots {
		return fmt.Errorf("config: expected %d textures, got %d", TextureSlots, len(c.Textures))
	}
	var seen [TextureSlots]bool
	names := make(map[string]bool, len(c.Textures))
	for _, tex := range c.Textures {
		if names[tex.Name] {
			return fmt.Errorf("config: texture name %q used twice", tex.Name)
		}
		names[tex.Name] = true
		if tex.Unit < 0 || tex.Unit >= TextureSlots {
			return fmt.Errorf("config: texture %q has unit %d outside [0, %d)", tex.Name, tex.Unit, TextureSlots)
		}
		if seen[tex.Unit] {
			return fmt.Errorf("config: texture unit %d assigned twice", tex.Unit)
		}
		seen[tex.Unit] = true
		if tex.Path == "" {
			return fmt.Errorf("config: texture %q has no path", tex.Name)
		}
	}

	cam := c.Camera
	if cam.MinSpeedScalar <= 0 {
		return fmt.Errorf("config: minimum speed scalar must be positive, got %v", cam.MinSpeedScalar)
	}
	if cam.SpeedScalar < cam.MinSpeedScalar {
		return fmt.Errorf("config: speed scalar %v is below minimum %v", cam.SpeedScalar, cam.MinSpeedScalar)
	}
	if cam.Near <= 0 || cam.Near >= cam.Far {
		return fmt.Errorf("config: invalid clip planes near=%v far=%v", cam.Near, cam.Far)
	}
	if cam.Front.Len() == 0 || cam.Up.Len() == 0 {
		return fmt.Errorf("config: camera front and up must be non-zero")
	}
	return nil
}

// TextureByName returns the texture configured under name
func (c *Config) TextureByName(name string) (Texture, bool) {
	for _, tex := range c.Textures {
		if tex.Name == name {
			return tex, true
		}
	}
	return Texture{}, false
}
