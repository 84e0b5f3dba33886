package analyze

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amishk599/resumatch/internal/model"
)

// RequestFromFile builds a Request from a resume on disk. A blank path or
// blank job description is an *model.InputMissingError; a file that cannot
// be read or is empty is a *model.DocumentReadError.
func RequestFromFile(path, job string) (Request, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Request{}, &model.InputMissingError{Field: "resume"}
	}
	if strings.TrimSpace(job) == "" {
		return Request{}, &model.InputMissingError{Field: "job_description"}
	}

	name := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, &model.DocumentReadError{Name: name, Err: err}
	}
	if len(data) == 0 {
		return Request{}, &model.DocumentReadError{Name: name, Err: fmt.Errorf("file is empty")}
	}

	return Request{ResumeName: name, Resume: data, JobDescription: job}, nil
}
