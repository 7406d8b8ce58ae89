package server

import (
	"errors"
	"net/http"

	"github.com/MalithGihan/order-extractor/internal/ingest"
	"github.com/MalithGihan/order-extractor/internal/response"
	"github.com/MalithGihan/order-extractor/internal/validate"
)

const serviceName = "order-extractor"

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"service": serviceName,
		"mock":    s.cfg.MockMode,
	})
}

func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/schema+json")
	w.Write(validate.Schema())
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	if s.cfg.MockMode {
		writeJSON(w, http.StatusOK, response.Mock())
		return
	}
	name, data, err := s.readUpload(w, r)
	if err != nil {
		s.uploadFailed(w, r, err)
		return
	}
	s.extractPDF(w, r, name, data)
}

func (s *Server) handleExcel(w http.ResponseWriter, r *http.Request) {
	if s.cfg.MockMode {
		writeJSON(w, http.StatusOK, response.Mock())
		return
	}
	name, data, err := s.readUpload(w, r)
	if err != nil {
		s.uploadFailed(w, r, err)
		return
	}
	s.extractExcel(w, r, name, data)
}

// handleExtract picks the parser from the uploaded file's extension.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if s.cfg.MockMode {
		writeJSON(w, http.StatusOK, response.Mock())
		return
	}
	name, data, err := s.readUpload(w, r)
	if err != nil {
		s.uploadFailed(w, r, err)
		return
	}
	switch ingest.DetectType(name) {
	case ingest.KindPDF:
		s.extractPDF(w, r, name, data)
	case ingest.KindExcel:
		s.extractExcel(w, r, name, data)
	default:
		writeError(w, http.StatusUnsupportedMediaType, "unsupported file type: "+name)
	}
}

func (s *Server) extractPDF(w http.ResponseWriter, r *http.Request, name string, data []byte) {
	rid := RequestIDFromContext(r.Context())
	pf, err := ingest.ParsePDF(name, data, ingest.Options{
		Extractor:  s.extractor,
		LineTables: s.cfg.PDFLineTables,
	})
	if err != nil {
		s.log.Error("pdf extraction failed", "request_id", rid, "file", name, "err", err)
		msg := "failed to extract PDF text"
		if errors.Is(err, ingest.ErrNotPDF) {
			msg = "file is not a readable PDF"
		}
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	for _, n := range pf.Notes {
		s.log.Warn("pdf page note", "request_id", rid, "file", name, "note", n)
	}

	res := response.PDF(pf.Orders, pf.RawText)
	if err := validate.ValidateDocument(res); err != nil {
		s.log.Warn("pdf result does not match orders schema", "request_id", rid, "file", name, "err", err)
	}
	s.log.Debug("pdf extracted", "request_id", rid, "file", name, "pages", pf.Pages, "orders", len(res.Orders))
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) extractExcel(w http.ResponseWriter, r *http.Request, name string, data []byte) {
	rid := RequestIDFromContext(r.Context())
	pf, err := ingest.ParseExcel(name, data)
	if err != nil {
		s.log.Error("excel extraction failed", "request_id", rid, "file", name, "err", err)
		msg := "failed to read workbook"
		if errors.Is(err, ingest.ErrEmptyWorkbook) {
			msg = "workbook has no sheets"
		}
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	res := response.Excel(pf.Records)
	s.log.Debug("excel extracted", "request_id", rid, "file", name, "rows", len(res.Orders))
	writeJSON(w, http.StatusOK, res)
}
