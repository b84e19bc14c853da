package assets

import (
	"embed"
	"io/fs"
	"path"

	"github.com/automoto/pong/shared/courtdata"
)

// CourtDir is the directory of court maps inside Courts.
const CourtDir = "courts"

//go:embed courts/*.tmx
var courtFS embed.FS

// Courts returns the embedded court maps.
func Courts() fs.FS {
	return courtFS
}

// LoadCourt loads an embedded court map by name, without extension.
func LoadCourt(name string) (*courtdata.Layout, error) {
	return courtdata.Load(courtFS, path.Join(CourtDir, name+".tmx"))
}

// LoadCourts loads every embedded court map.
func LoadCourts() ([]*courtdata.Layout, error) {
	return courtdata.LoadAll(courtFS, CourtDir)
}
