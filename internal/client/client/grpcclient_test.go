package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/moodlog/internal/common"
	"github.com/dmitrijs2005/moodlog/internal/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	gs "github.com/dmitrijs2005/moodlog/internal/server/grpc"
)

/*************
 * Fake journal server
 *************/

type fakeJournal struct {
	gs.JournalServiceServer

	lastToken string
	lastReq   map[string]any

	resp map[string]any
	err  error
}

func (f *fakeJournal) record(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 {
			f.lastToken = v[0]
		}
	}
	f.lastReq = req.AsMap()
	if f.err != nil {
		return nil, f.err
	}
	return structpb.NewStruct(f.resp)
}

func (f *fakeJournal) Ping(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return f.record(ctx, req)
}
func (f *fakeJournal) CreateEntry(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return f.record(ctx, req)
}
func (f *fakeJournal) ListEntries(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return f.record(ctx, req)
}
func (f *fakeJournal) UpdateEntry(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return f.record(ctx, req)
}
func (f *fakeJournal) DeleteEntry(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return f.record(ctx, req)
}
func (f *fakeJournal) DeleteAllEntries(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return f.record(ctx, req)
}
func (f *fakeJournal) GetOverview(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return f.record(ctx, req)
}

func (f *fakeJournal) GetActivityFeedback(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return f.record(ctx, req)
}
func (f *fakeJournal) GetThoughtsFeedback(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return f.record(ctx, req)
}
func (f *fakeJournal) GetDailyAchievements(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return f.record(ctx, req)
}

func newTestClient(t *testing.T, f *fakeJournal, token string) *GRPCClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	gs.RegisterJournalServiceServer(srv, f)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c, err := NewJournalClient("passthrough:///bufnet", token, time.Second,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func entryDoc(id float64, content string) map[string]any {
	return map[string]any{
		"id": id, "content": content, "date": "2024-05-06", "time": "09:15",
		"mood": "happy", "type": "activity",
		"createdAt": "2024-05-06T09:15:00Z", "updatedAt": "2024-05-06T09:15:00Z",
	}
}

func TestPing(t *testing.T) {
	f := &fakeJournal{resp: map[string]any{"status": "OK"}}
	c := newTestClient(t, f, "")

	require.NoError(t, c.Ping(context.Background()))

	f.resp = map[string]any{"status": "DOWN"}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestAccessTokenIsSent(t *testing.T) {
	f := &fakeJournal{resp: map[string]any{"status": "OK"}}
	c := newTestClient(t, f, "tok-1")

	require.NoError(t, c.Ping(context.Background()))
	assert.Equal(t, "tok-1", f.lastToken)

	c.SetAccessToken("tok-2")
	require.NoError(t, c.Ping(context.Background()))
	assert.Equal(t, "tok-2", f.lastToken)
}

func TestCreateEntry(t *testing.T) {
	f := &fakeJournal{resp: map[string]any{"data": entryDoc(7, "walked"), "error": nil}}
	c := newTestClient(t, f, "")

	c.now = func() time.Time { return time.Date(2024, 5, 6, 21, 7, 0, 0, time.FixedZone("EET", 2*60*60)) }

	e, err := c.CreateEntry(context.Background(), "walked", "happy", "activity")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"content": "walked",
		"date":    "2024-05-06",
		"time":    "21:07",
		"mood":    "happy",
		"type":    "activity",
	}, f.lastReq)
	assert.Equal(t, int64(7), e.ID)
	assert.Equal(t, "09:15", e.Time)
	assert.Equal(t, time.Date(2024, 5, 6, 9, 15, 0, 0, time.UTC), e.CreatedAt)
}

func TestListEntries(t *testing.T) {
	f := &fakeJournal{resp: map[string]any{"data": []any{entryDoc(2, "b"), entryDoc(1, "a")}, "error": nil}}
	c := newTestClient(t, f, "")

	list, err := c.ListEntries(context.Background(), "activity")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"type": "activity"}, f.lastReq)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].Content)
}

func TestUpdateEntry_SendsOnlySetFields(t *testing.T) {
	f := &fakeJournal{resp: map[string]any{"data": entryDoc(3, "x"), "error": nil}}
	c := newTestClient(t, f, "")

	mood := "sad"
	_, err := c.UpdateEntry(context.Background(), 3, EntryUpdate{Mood: &mood})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"id": float64(3), "mood": "sad"}, f.lastReq)
}

func TestDeleteAndDeleteAll(t *testing.T) {
	f := &fakeJournal{resp: map[string]any{"data": entryDoc(3, "x"), "error": nil}}
	c := newTestClient(t, f, "")

	e, err := c.DeleteEntry(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), e.ID)

	f.resp = map[string]any{"data": true, "error": nil}
	require.NoError(t, c.DeleteAllEntries(context.Background(), "thoughts"))
	assert.Equal(t, map[string]any{"type": "thoughts"}, f.lastReq)
}

func TestGetOverview(t *testing.T) {
	f := &fakeJournal{resp: map[string]any{"data": map[string]any{
		"totalEntries":   float64(4),
		"happinessRate":  float64(50),
		"dailyAverage":   0.6,
		"mostActiveTime": map[string]any{"name": "Morning", "value": float64(3)},
	}, "error": nil}}
	c := newTestClient(t, f, "")

	ov, err := c.GetOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, ov.TotalEntries)
	assert.Equal(t, 50, ov.HappinessRate)
	assert.Equal(t, "Morning", ov.MostActiveTime.Name)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unauthenticated", status.Error(codes.Unauthenticated, "missing token"), ErrUnauthorized},
		{"unavailable", status.Error(codes.Unavailable, "down"), ErrUnavailable},
		{"not found", status.Error(codes.NotFound, "entry not found"), ErrNotFound},
		{"invalid", status.Error(codes.InvalidArgument, "content is required"), ErrRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeJournal{err: tt.err}
			c := newTestClient(t, f, "")

			_, err := c.DeleteEntry(context.Background(), 1)
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("internal keeps message", func(t *testing.T) {
		f := &fakeJournal{err: status.Error(codes.Internal, "db down")}
		c := newTestClient(t, f, "")

		_, err := c.ListEntries(context.Background(), "thoughts")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
		assert.False(t, errors.Is(err, ErrRejected))
	})
}

func TestResultErrorIsRejected(t *testing.T) {
	f := &fakeJournal{resp: map[string]any{"data": nil, "error": "content is required"}}
	c := newTestClient(t, f, "")

	_, err := c.CreateEntry(context.Background(), "", "happy", "thoughts")
	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "content is required")
}

func TestFullMethodNames(t *testing.T) {
	assert.Equal(t, "/moodlog.v1.JournalService/Ping", rpc.FullMethod(rpc.MethodPing))
}

func TestInsights(t *testing.T) {
	f := &fakeJournal{resp: map[string]any{"data": map[string]any{
		"activityPatterns": "Nu ai înregistrat activități astăzi.",
		"suggestions":      "Adaugă o activitate.",
	}, "error": nil}}
	c := newTestClient(t, f, "")
	ctx := context.Background()

	activity, err := c.GetActivityFeedback(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Nu ai înregistrat activități astăzi.", activity.ActivityPatterns)
	assert.Equal(t, "Adaugă o activitate.", activity.Suggestions)

	f.resp = map[string]any{"data": map[string]any{"thoughtPatterns": "calm"}, "error": nil}
	thoughts, err := c.GetThoughtsFeedback(ctx)
	require.NoError(t, err)
	assert.Equal(t, "calm", thoughts.ThoughtPatterns)

	f.resp = map[string]any{"data": map[string]any{"smallWins": "walked"}, "error": nil}
	wins, err := c.GetDailyAchievements(ctx)
	require.NoError(t, err)
	assert.Equal(t, "walked", wins.SmallWins)
}

func TestInsightsFailureCarriesDetails(t *testing.T) {
	details, err := rpc.ToStruct(rpc.FeedbackErrorDetails{Error: "Failed to generate AI feedback", Details: "model unreachable"})
	require.NoError(t, err)
	st, err := status.New(codes.Internal, "Failed to generate AI feedback").WithDetails(details)
	require.NoError(t, err)

	f := &fakeJournal{err: st.Err()}
	c := newTestClient(t, f, "")

	_, err = c.GetThoughtsFeedback(context.Background())
	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "Failed to generate AI feedback", ge.Message)
	assert.Equal(t, "model unreachable", ge.Details)
	assert.EqualError(t, err, "Failed to generate AI feedback: model unreachable")
}
