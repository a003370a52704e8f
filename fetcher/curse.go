package fetcher

import (
	"fmt"
	"net/http"

	"github.com/mcdeploy/mcdeploy"
)

func curseURL(projectID, fileID int) string {
	u := "https://minecraft.curseforge.com/projects/%d/files/%d/download"
	return fmt.Sprintf(u, projectID, fileID)
}

func curseFetchURL(c *http.Client, m mcdeploy.Mod) (string, error) {
	return curseURL(m.ProjectID, m.FileID), nil
}
