// Package iodataset loads the datasets.yaml manifest that names the raw
// BAAC files of the release being prepared.
package iodataset

import (
	"os"

	"github.com/baactools/baacprep/pkg/config"
	"github.com/baactools/baacprep/pkg/dataset"
	"gopkg.in/yaml.v3"
)

type iodataset struct {
	cfg *config.Config
}

func New(cfg *config.Config) dataset.Datasets {
	res := iodataset{cfg: cfg}
	return &res
}

func (d *iodataset) Load() (*dataset.Manifest, error) {
	path := config.DatasetsFilePath(d.cfg.HomeDir)
	manifest, err := loadManifest(path)
	if err != nil {
		return nil, ManifestError(path, err)
	}
	return manifest, nil
}

func loadManifest(path string) (*dataset.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var res dataset.Manifest
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, err
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}
