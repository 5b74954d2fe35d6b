package texdecode_test

import (
	"path/filepath"
	"testing"

	"github.com/texdecode/texdecode/texdecode"
)

func TestLoadDecoderOptionsYAMLMissingFileReturnsDefaults(t *testing.T) {
	opts, err := texdecode.LoadDecoderOptionsYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadDecoderOptionsYAML: %v", err)
	}
	want := texdecode.DefaultDecoderOptions()
	if opts.TaskCount != want.TaskCount || opts.IsParallel != want.IsParallel {
		t.Fatalf("got %+v, want defaults %+v", opts, want)
	}
}

func TestDecoderOptionsYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.yaml")
	opts := texdecode.DefaultDecoderOptions()
	opts.RedAsLuminance = true
	opts.DdsBc1ExpectAlpha = true
	opts.IsParallel = true
	opts.TaskCount = 3

	if err := texdecode.WriteDecoderOptionsYAML(path, opts); err != nil {
		t.Fatalf("WriteDecoderOptionsYAML: %v", err)
	}
	loaded, err := texdecode.LoadDecoderOptionsYAML(path)
	if err != nil {
		t.Fatalf("LoadDecoderOptionsYAML: %v", err)
	}
	if loaded.RedAsLuminance != true || loaded.DdsBc1ExpectAlpha != true || loaded.IsParallel != true || loaded.TaskCount != 3 {
		t.Fatalf("round-tripped opts = %+v, want RedAsLuminance/DdsBc1ExpectAlpha/IsParallel=true, TaskCount=3", loaded)
	}
}
