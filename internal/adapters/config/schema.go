package config

// Mistfile is the structure of mist.yaml.
type Mistfile struct {
	Version string              `yaml:"version"`
	Project string              `yaml:"project"`
	Root    string              `yaml:"root"`
	Entry   string              `yaml:"entry"`
	Tasks   map[string]*TaskDTO `yaml:"tasks"`
}

// TaskDTO is a task definition in mist.yaml. Fields that do not apply to the
// task type are ignored.
type TaskDTO struct {
	Type   string `yaml:"type"`
	When   string `yaml:"when"`
	Output string `yaml:"output"`

	// export-pdf
	Standards []string `yaml:"standards"`
	Creation  int64    `yaml:"creation"`

	// export-png
	PPI  float32 `yaml:"ppi"`
	Fill string  `yaml:"fill"`

	// query
	Format   string `yaml:"format"`
	Selector string `yaml:"selector"`
	Field    string `yaml:"field"`
	One      bool   `yaml:"one"`
}
