package store

import _ "embed"

// Sample dataset the store boots from when no seed file is configured.
//
//go:embed seed_data.json
var seedData []byte
