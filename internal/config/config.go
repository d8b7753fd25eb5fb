package config

import "fmt"

// Config is the root application configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
}

// DatasetConfig locates the dataset's inputs and outputs. All paths are
// relative to the working directory unless given as absolute.
type DatasetConfig struct {
	ID          string     `yaml:"id"           env:"DATASET_ID"           env-default:"serzantjanicantipassives"`
	Title       string     `yaml:"title"        env:"DATASET_TITLE"        env-default:"Serzant and Janic Antipassives"`
	RawDir      string     `yaml:"raw_dir"      env:"DATASET_RAW_DIR"      env-default:"raw"`
	EtcDir      string     `yaml:"etc_dir"      env:"DATASET_ETC_DIR"      env-default:"etc"`
	CLDFDir     string     `yaml:"cldf_dir"     env:"DATASET_CLDF_DIR"     env-default:"cldf"`
	DataFile    string     `yaml:"data_file"    env:"DATASET_DATA_FILE"    env-default:"Data_to_be_published.csv"`
	SourcesFile string     `yaml:"sources_file" env:"DATASET_SOURCES_FILE" env-default:"sources.bib"`
	Downloads   []Download `yaml:"downloads"`
}

// Download is one raw input fetched from upstream into RawDir.
type Download struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// CatalogConfig points at local exports of the reference catalogs.
// Glottolog is the path to a languoid export: either the CSV file itself
// or a directory containing languoids.csv.
type CatalogConfig struct {
	Glottolog string `yaml:"glottolog" env:"CATALOG_GLOTTOLOG"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Dataset.ID == "" {
		return fmt.Errorf("dataset.id must not be empty")
	}
	if c.Dataset.RawDir == "" || c.Dataset.EtcDir == "" || c.Dataset.CLDFDir == "" {
		return fmt.Errorf("dataset directories must not be empty")
	}
	if c.Dataset.DataFile == "" {
		return fmt.Errorf("dataset.data_file must not be empty")
	}
	if c.Dataset.SourcesFile == "" {
		return fmt.Errorf("dataset.sources_file must not be empty")
	}
	for i, d := range c.Dataset.Downloads {
		if d.Name == "" {
			return fmt.Errorf("dataset.downloads[%d]: name must not be empty", i)
		}
		if d.URL == "" {
			return fmt.Errorf("dataset.downloads[%d] (%s): url must not be empty", i, d.Name)
		}
	}
	return nil
}
