package server

import (
	"arena-tracker/internal/domain"
	"arena-tracker/internal/service"
	"arena-tracker/internal/stats"
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ArenaTrackerPath       = "/arena.v1.ArenaTracker/"
	GetArenaStatsProcedure = ArenaTrackerPath + "GetArenaStats"
	msgAccountNotFound     = "could not identify account"
	msgQueryUnavailable    = "could not complete arena stats query"
)

type TrackerServer struct {
	arena  *service.ArenaService
	logger zerolog.Logger
}

func NewTrackerServer(arena *service.ArenaService, logger zerolog.Logger) *TrackerServer {
	return &TrackerServer{arena: arena, logger: logger}
}

// Handler returns the connect handler serving every ArenaTracker procedure.
func (s *TrackerServer) Handler() (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(GetArenaStatsProcedure, connect.NewUnaryHandler(
		GetArenaStatsProcedure,
		s.GetArenaStats,
		connect.WithCodec(jsonCodec{}),
	))
	return ArenaTrackerPath, mux
}

func (s *TrackerServer) GetArenaStats(ctx context.Context, req *connect.Request[GetArenaStatsRequest]) (*connect.Response[GetArenaStatsResponse], error) {
	report, err := s.arena.BuildReport(ctx, req.Msg.RiotID)
	if err != nil {
		return nil, s.toConnectError(ctx, err)
	}

	return connect.NewResponse(&GetArenaStatsResponse{
		ReportID:    report.ID,
		RiotID:      report.Identity.String(),
		Puuid:       report.Puuid,
		MatchCount:  report.MatchCount,
		Champions:   stats.SortByAveragePlacement(report.Champions, stats.ParseSortOrder(req.Msg.Sort)),
		Overall:     report.Overall,
		Series:      report.Series,
		Records:     report.Records,
		GeneratedAt: report.GeneratedAt,
	}), nil
}

// toConnectError keeps upstream details in the logs; callers only see a coarse message.
func (s *TrackerServer) toConnectError(ctx context.Context, err error) *connect.Error {
	log := zerolog.Ctx(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = &s.logger
	}

	switch {
	case errors.Is(err, domain.ErrMalformedRiotID):
		cerr := connect.NewError(connect.CodeInvalidArgument, err)
		if detail, derr := connect.NewErrorDetail(wrapperspb.String(domain.RiotIDFormatHint)); derr == nil {
			cerr.AddDetail(detail)
		}
		return cerr
	case errors.Is(err, domain.ErrAccountNotFound):
		return connect.NewError(connect.CodeNotFound, errors.New(msgAccountNotFound))
	default:
		log.Error().Err(err).Msg("arena stats query failed")
		return connect.NewError(connect.CodeUnavailable, errors.New(msgQueryUnavailable))
	}
}

// httpStatus maps a connect error to the status used by the REST routes.
func httpStatus(cerr *connect.Error) int {
	switch cerr.Code() {
	case connect.CodeInvalidArgument:
		return http.StatusBadRequest
	case connect.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
