package config

import (
	"github.com/spf13/viper"
)

// Default returns a PrintFilterTable with no (N, S)-specific entries; every
// lookup falls back to DefaultBucket. Callers that don't want a config file
// use this directly.
func Default() *PrintFilterTable {
	return &PrintFilterTable{}
}

// Load reads a YAML print-filter file from path and returns the table it
// describes. There was no strong reason to require viper's AddConfigPath
// search here since the caller already has a concrete path; SetConfigFile
// plus ReadInConfig is the direct equivalent.
func Load(path string) (*PrintFilterTable, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")

	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	var raw rawFile
	if err := vp.Unmarshal(&raw); err != nil {
		return nil, err
	}

	buckets := make(map[key]Bucket, len(raw.Buckets))
	for _, rb := range raw.Buckets {
		buckets[key{N: rb.N, S: rb.S}] = Bucket{
			MaxSteps:     rb.MaxSteps,
			MinPeriod:    rb.MinPeriod,
			MinPreperiod: rb.MinPreperiod,
			MinDegree:    rb.MinDegree,
		}
	}

	return &PrintFilterTable{buckets: buckets}, nil
}
