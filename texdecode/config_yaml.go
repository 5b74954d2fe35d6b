package texdecode

import (
	"os"

	"gopkg.in/yaml.v3"
)

// decoderOptionsFile is the on-disk YAML shape for DecoderOptions. Fields
// mirror DecoderOptions directly; there is no equivalent for Progress,
// which is a callback and has no serializable form.
type decoderOptionsFile struct {
	RedAsLuminance    bool `yaml:"red_as_luminance"`
	DdsBc1ExpectAlpha bool `yaml:"dds_bc1_expect_alpha"`
	IsParallel        bool `yaml:"is_parallel"`
	TaskCount         int  `yaml:"task_count"`
}

// LoadDecoderOptionsYAML reads a DecoderOptions from a YAML file at path,
// layering its fields over DefaultDecoderOptions. A missing file is not an
// error; it returns the defaults unchanged, matching the LoadConfig
// convention of defaulting rather than failing on absence.
func LoadDecoderOptionsYAML(path string) (DecoderOptions, error) {
	opts := DefaultDecoderOptions()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return opts, nil
	}
	if err != nil {
		return opts, err
	}

	f := decoderOptionsFile{
		RedAsLuminance:    opts.RedAsLuminance,
		DdsBc1ExpectAlpha: opts.DdsBc1ExpectAlpha,
		IsParallel:        opts.IsParallel,
		TaskCount:         opts.TaskCount,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return opts, err
	}

	opts.RedAsLuminance = f.RedAsLuminance
	opts.DdsBc1ExpectAlpha = f.DdsBc1ExpectAlpha
	opts.IsParallel = f.IsParallel
	if f.TaskCount > 0 {
		opts.TaskCount = f.TaskCount
	}
	return opts, nil
}

// WriteDecoderOptionsYAML writes opts to path as YAML, for round-tripping a
// config a caller edited via LoadDecoderOptionsYAML.
func WriteDecoderOptionsYAML(path string, opts DecoderOptions) error {
	f := decoderOptionsFile{
		RedAsLuminance:    opts.RedAsLuminance,
		DdsBc1ExpectAlpha: opts.DdsBc1ExpectAlpha,
		IsParallel:        opts.IsParallel,
		TaskCount:         opts.TaskCount,
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
