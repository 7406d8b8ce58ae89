package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type uploadError struct {
	status int
	msg    string
}

func (e *uploadError) Error() string { return e.msg }

// multipartOverhead is the room left for boundaries, part headers and other
// form fields on top of the file size limit.
const multipartOverhead = 1 << 20

// readUpload buffers the multipart file in form field "file". The size limit
// applies to the file; the request body may exceed it by multipartOverhead.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	limit := s.cfg.MaxUploadBytes()
	tooLarge := &uploadError{http.StatusRequestEntityTooLarge,
		fmt.Sprintf("upload exceeds %d MB", s.cfg.MaxUploadMB)}
	if r.ContentLength > limit+multipartOverhead {
		return "", nil, tooLarge
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)

	if err := r.ParseMultipartForm(limit); err != nil {
		if isTooLarge(err) {
			return "", nil, tooLarge
		}
		return "", nil, &uploadError{http.StatusBadRequest, "expected multipart form: " + err.Error()}
	}
	defer r.MultipartForm.RemoveAll()

	f, fh, err := r.FormFile("file")
	if err != nil {
		return "", nil, &uploadError{http.StatusBadRequest, `no file uploaded in form field "file"`}
	}
	defer f.Close()
	if fh.Size > limit {
		return "", nil, tooLarge
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, &uploadError{http.StatusBadRequest, "reading upload: " + err.Error()}
	}
	if len(data) == 0 {
		return "", nil, &uploadError{http.StatusBadRequest, "uploaded file is empty"}
	}
	return fh.Filename, data, nil
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe) || strings.Contains(err.Error(), "request body too large")
}

// uploadFailed writes the error response for a readUpload failure.
func (s *Server) uploadFailed(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	var ue *uploadError
	if errors.As(err, &ue) {
		status = ue.status
	}
	s.log.Warn("upload rejected",
		"request_id", RequestIDFromContext(r.Context()),
		"status", status,
		"err", err,
	)
	writeError(w, status, err.Error())
}
