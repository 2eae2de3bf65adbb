package server

import (
	"arena-tracker/internal/domain"
	"arena-tracker/internal/report"
	"arena-tracker/internal/stats"
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
)

// ExportCSV serves the champion table of GET /api/v1/arena/{gameName}/{tagLine}/export.csv.
func (s *TrackerServer) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	gameName, err := pathParam(r, "gameName")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	tagLine, err := pathParam(r, "tagLine")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	identity, err := domain.NewPlayerIdentity(gameName, tagLine)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rep, err := s.arena.BuildReportFor(ctx, identity)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	summaries := stats.SortByAveragePlacement(rep.Champions, stats.ParseSortOrder(r.URL.Query().Get("sort")))
	if err := report.WriteCSV(&buf, summaries); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", report.CSVContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.CSVFilename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// pathParam decodes a route parameter once. chi matches on the already decoded URL.Path
// unless the request carried an escaping that forced RawPath.
func pathParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, domain.ErrMalformedRiotID)
	}
	return decoded, nil
}

func (s *TrackerServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	cerr := s.toConnectError(r.Context(), err)
	msg := cerr.Message()
	if cerr.Code() == connect.CodeInvalidArgument {
		msg = domain.RiotIDFormatHint
	}
	http.Error(w, msg, httpStatus(cerr))
}
