package model

import (
	"archive/zip"
	"encoding/json"
	"fmt"
)

// FileSuffix is the extension Keras 3 uses for saved model archives.
// Temporary staging files must carry it so the loader recognizes the format.
const FileSuffix = ".keras"

// Names of the entries a Keras 3 archive contains.
const (
	configEntry   = "config.json"
	metadataEntry = "metadata.json"
	weightsEntry  = "model.weights.h5"
)

// Layer describes a single layer parsed from the model config.
type Layer struct {
	ClassName string
	Name      string
}

// Model is the in-memory handle for a deserialized Keras model archive.
type Model struct {
	// Name is the model name from the saved config.
	Name string
	// ClassName is the top-level model class (Sequential, Functional, ...).
	ClassName string
	// KerasVersion is the Keras release that saved the archive.
	KerasVersion string
	// Layers lists the layers declared in the config, in order.
	Layers []Layer
	// WeightsSize is the uncompressed size of the weights payload in bytes.
	WeightsSize int64
}

type modelConfig struct {
	ClassName string `json:"class_name"`
	Config    struct {
		Name   string `json:"name"`
		Layers []struct {
			ClassName string `json:"class_name"`
			Config    struct {
				Name string `json:"name"`
			} `json:"config"`
		} `json:"layers"`
	} `json:"config"`
}

type modelMetadata struct {
	KerasVersion string `json:"keras_version"`
	DateSaved    string `json:"date_saved"`
}

// Load opens a Keras 3 model archive at path and returns its handle.
// The archive is a zip file holding config.json, metadata.json and the
// weights payload. A file that is not a zip archive or lacks a model config
// fails with an error wrapping the underlying cause.
func Load(path string) (*Model, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model archive: %w", err)
	}
	defer r.Close()

	m := &Model{}

	var haveConfig bool
	for _, f := range r.File {
		switch f.Name {
		case configEntry:
			cfg, err := readConfig(f)
			if err != nil {
				return nil, err
			}
			m.Name = cfg.Config.Name
			m.ClassName = cfg.ClassName
			for _, l := range cfg.Config.Layers {
				m.Layers = append(m.Layers, Layer{ClassName: l.ClassName, Name: l.Config.Name})
			}
			haveConfig = true
		case metadataEntry:
			meta, err := readMetadata(f)
			if err != nil {
				return nil, err
			}
			m.KerasVersion = meta.KerasVersion
		case weightsEntry:
			m.WeightsSize = int64(f.UncompressedSize64)
		}
	}

	if !haveConfig {
		return nil, fmt.Errorf("model archive %s has no %s entry", path, configEntry)
	}

	return m, nil
}

func readConfig(f *zip.File) (*modelConfig, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	defer rc.Close()

	var cfg modelConfig
	if err := json.NewDecoder(rc).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", f.Name, err)
	}
	return &cfg, nil
}

func readMetadata(f *zip.File) (*modelMetadata, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	defer rc.Close()

	var meta modelMetadata
	if err := json.NewDecoder(rc).Decode(&meta); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", f.Name, err)
	}
	return &meta, nil
}
