package scene

// document is the raw YAML scene-description shape: named materials,
// a flat list of primitives referencing them by name, a flat list of
// lights, the camera, and render config. Manual kind-tagged dispatch
// (rather than YAML polymorphism, which the yaml.v3 API doesn't offer
// for interface fields) mirrors the tagged-variant closed-set design
// spec §9 recommends for primitives and materials.
type document struct {
	Camera     cameraDoc            `yaml:"camera"`
	Config     Config               `yaml:"config"`
	Materials  map[string]matDoc    `yaml:"materials"`
	Primitives []primitiveDoc       `yaml:"primitives"`
	Lights     []lightDoc           `yaml:"lights"`
}

type vec3Doc struct {
	X, Y, Z float64
}

type cameraDoc struct {
	LookFrom       vec3Doc `yaml:"look_from"`
	LookAt         vec3Doc `yaml:"look_at"`
	Up             vec3Doc `yaml:"up"`
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
	FocalLength    float64 `yaml:"focal_length"`
}

// matDoc is a tagged union over the four material kinds (spec §4.3):
// kind selects which fields apply.
type matDoc struct {
	Kind            string  `yaml:"kind"` // diffuse | specular | refractive | emissive
	Albedo          vec3Doc `yaml:"albedo"`
	RefractionIndex float64 `yaml:"refraction_index"`
	Emit            vec3Doc `yaml:"emit"`
}

// primitiveDoc is a tagged union over the supported shapes.
type primitiveDoc struct {
	Kind     string  `yaml:"kind"` // sphere | plane | rect | obj
	Material string  `yaml:"material"`
	Center   vec3Doc `yaml:"center"`
	Radius   float64 `yaml:"radius"`
	Point    vec3Doc `yaml:"point"`
	Normal   vec3Doc `yaml:"normal"`
	Axis     string  `yaml:"axis"` // xy | xz | yz, for rect
	A0       float64 `yaml:"a0"`
	A1       float64 `yaml:"a1"`
	B0       float64 `yaml:"b0"`
	B1       float64 `yaml:"b1"`
	K        float64 `yaml:"k"`
	ObjPath  string  `yaml:"obj_path"`
}

// lightDoc describes a rectangular area light sharing primitiveDoc's
// rect fields plus an emission color.
type lightDoc struct {
	Axis  string  `yaml:"axis"`
	A0    float64 `yaml:"a0"`
	A1    float64 `yaml:"a1"`
	B0    float64 `yaml:"b0"`
	B1    float64 `yaml:"b1"`
	K     float64 `yaml:"k"`
	Color vec3Doc `yaml:"color"`
}
