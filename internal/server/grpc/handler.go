package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/moodlog/internal/common"
	"github.com/dmitrijs2005/moodlog/internal/rpc"
	"github.com/dmitrijs2005/moodlog/internal/server/models"
	"github.com/dmitrijs2005/moodlog/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// codeFor maps a service error onto a gRPC status code.
func codeFor(err error) codes.Code {
	switch {
	case errors.Is(err, common.ErrValidation):
		return codes.InvalidArgument
	case errors.Is(err, common.ErrNotFound):
		return codes.NotFound
	default:
		return codes.Internal
	}
}

// reply converts a Result into the response document, or into a status
// error carrying the same message the HTTP surface would return.
func reply[T any](r services.Result[T]) (*structpb.Struct, error) {
	if err := r.Err(); err != nil {
		return nil, status.Error(codeFor(err), err.Error())
	}
	out, err := rpc.ToStruct(r)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func decode(req *structpb.Struct, out any) error {
	if err := rpc.FromStruct(req, out); err != nil {
		return status.Error(codes.InvalidArgument, "invalid request body")
	}
	return nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return rpc.ToStruct(rpc.PingResponse{Status: "OK"})
}

func (s *GRPCServer) CreateEntry(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in models.NewEntry
	if err := decode(req, &in); err != nil {
		return nil, err
	}
	return reply(s.entries.Create(ctx, in))
}

func (s *GRPCServer) ListEntries(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in rpc.TypeRequest
	if err := decode(req, &in); err != nil {
		return nil, err
	}
	return reply(s.entries.List(ctx, models.EntryType(in.Type)))
}

func (s *GRPCServer) UpdateEntry(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in rpc.UpdateRequest
	if err := decode(req, &in); err != nil {
		return nil, err
	}

	patch := models.EntryPatch{Content: in.Content}
	if in.Mood != nil {
		m := models.Mood(*in.Mood)
		patch.Mood = &m
	}
	return reply(s.entries.Update(ctx, in.ID, patch))
}

func (s *GRPCServer) DeleteEntry(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in rpc.IDRequest
	if err := decode(req, &in); err != nil {
		return nil, err
	}
	return reply(s.entries.Delete(ctx, in.ID))
}

func (s *GRPCServer) DeleteAllEntries(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in rpc.TypeRequest
	if err := decode(req, &in); err != nil {
		return nil, err
	}
	return reply(s.entries.DeleteAll(ctx, models.EntryType(in.Type)))
}

func (s *GRPCServer) GetOverview(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return reply(s.overview.Get(ctx))
}

// feedbackReply wraps generated feedback in the result document. A failure
// becomes codes.Internal with the fixed message; the cause travels as a
// status detail.
func (s *GRPCServer) feedbackReply(ctx context.Context, v any, err error, msg string) (*structpb.Struct, error) {
	if err != nil {
		s.logger.Error(ctx, msg, "error", err)

		st := status.New(codes.Internal, msg)
		details, derr := rpc.ToStruct(rpc.FeedbackErrorDetails{Error: msg, Details: err.Error()})
		if derr == nil {
			if withDetails, werr := st.WithDetails(details); werr == nil {
				st = withDetails
			}
		}
		return nil, st.Err()
	}
	return reply(services.Ok(v))
}

func (s *GRPCServer) GetActivityFeedback(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fb, err := s.feedback.ActivityFeedback(ctx)
	return s.feedbackReply(ctx, fb, err, common.FeedbackFailedMessage)
}

func (s *GRPCServer) GetThoughtsFeedback(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fb, err := s.feedback.ThoughtsFeedback(ctx)
	return s.feedbackReply(ctx, fb, err, common.FeedbackFailedMessage)
}

func (s *GRPCServer) GetDailyAchievements(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	a, err := s.feedback.DailyAchievements(ctx)
	return s.feedbackReply(ctx, a, err, common.AchievementsFailedMessage)
}
