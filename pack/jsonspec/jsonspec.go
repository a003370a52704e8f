// Package jsonspec mirrors the CurseForge modpack manifest.json
// layout consumed by the bootstrap command.
package jsonspec

type Manifest struct {
	ManifestType    string `json:"manifestType"`
	ManifestVersion int    `json:"manifestVersion"`

	Name    string `json:"name"`
	Version string `json:"version"`

	Files     []File `json:"files"`
	Overrides string `json:"overrides"`
}

type File struct {
	ProjectID int  `json:"projectID"`
	FileID    int  `json:"fileID"`
	Required  bool `json:"required"`
}
