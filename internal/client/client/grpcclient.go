package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/moodlog/internal/analytics"
	"github.com/dmitrijs2005/moodlog/internal/client/models"
	"github.com/dmitrijs2005/moodlog/internal/common"
	"github.com/dmitrijs2005/moodlog/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type GRPCClient struct {
	endpointURL    string
	conn           *grpc.ClientConn
	accessToken    string
	requestTimeout time.Duration
	now            func() time.Time
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewJournalClient connects to the server at endpointURL. A non-empty
// accessToken is attached to every call.
func NewJournalClient(endpointURL, accessToken string, requestTimeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken, requestTimeout: requestTimeout, now: time.Now}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	return nil
}

// SetAccessToken replaces the token sent with subsequent calls.
func (s *GRPCClient) SetAccessToken(token string) {
	s.accessToken = token
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// invoke sends req to method and returns the decoded response document.
func (s *GRPCClient) invoke(ctx context.Context, method string, req any) (*structpb.Struct, error) {
	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	in, err := rpc.ToStruct(req)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := s.conn.Invoke(ctx, rpc.FullMethod(method), in, out); err != nil {
		return nil, s.mapError(err)
	}
	return out, nil
}

type resultDoc[T any] struct {
	Data  T       `json:"data"`
	Error *string `json:"error"`
}

// call invokes method and unwraps the data of the result document.
func call[T any](ctx context.Context, s *GRPCClient, method string, req any) (T, error) {
	var zero T

	out, err := s.invoke(ctx, method, req)
	if err != nil {
		return zero, err
	}

	var doc resultDoc[T]
	if err := rpc.FromStruct(out, &doc); err != nil {
		return zero, err
	}
	if doc.Error != nil {
		return zero, fmt.Errorf("%w: %s", ErrRejected, *doc.Error)
	}
	return doc.Data, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	out, err := s.invoke(ctx, rpc.MethodPing, struct{}{})
	if err != nil {
		return err
	}

	var resp rpc.PingResponse
	if err := rpc.FromStruct(out, &resp); err != nil {
		return err
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

type createRequest struct {
	Content string `json:"content"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Mood    string `json:"mood"`
	Type    string `json:"type"`
}

// CreateEntry stamps the entry with the local date and time of this machine.
func (s *GRPCClient) CreateEntry(ctx context.Context, content, mood, entryType string) (*models.Entry, error) {
	local := s.now()
	req := createRequest{
		Content: content,
		Date:    local.Format(models.DateLayout),
		Time:    local.Format(models.ClockLayout),
		Mood:    mood,
		Type:    entryType,
	}
	return call[*models.Entry](ctx, s, rpc.MethodCreateEntry, req)
}

func (s *GRPCClient) ListEntries(ctx context.Context, entryType string) ([]*models.Entry, error) {
	return call[[]*models.Entry](ctx, s, rpc.MethodListEntries, rpc.TypeRequest{Type: entryType})
}

func (s *GRPCClient) UpdateEntry(ctx context.Context, id int64, u EntryUpdate) (*models.Entry, error) {
	return call[*models.Entry](ctx, s, rpc.MethodUpdateEntry, rpc.UpdateRequest{ID: id, Content: u.Content, Mood: u.Mood})
}

func (s *GRPCClient) DeleteEntry(ctx context.Context, id int64) (*models.Entry, error) {
	return call[*models.Entry](ctx, s, rpc.MethodDeleteEntry, rpc.IDRequest{ID: id})
}

func (s *GRPCClient) DeleteAllEntries(ctx context.Context, entryType string) error {
	_, err := call[bool](ctx, s, rpc.MethodDeleteAllEntries, rpc.TypeRequest{Type: entryType})
	return err
}

func (s *GRPCClient) GetOverview(ctx context.Context) (*analytics.Overview, error) {
	return call[*analytics.Overview](ctx, s, rpc.MethodGetOverview, struct{}{})
}

func (s *GRPCClient) GetActivityFeedback(ctx context.Context) (*models.ActivityFeedback, error) {
	return call[*models.ActivityFeedback](ctx, s, rpc.MethodGetActivityFeedback, struct{}{})
}

func (s *GRPCClient) GetThoughtsFeedback(ctx context.Context) (*models.ThoughtsFeedback, error) {
	return call[*models.ThoughtsFeedback](ctx, s, rpc.MethodGetThoughtsFeedback, struct{}{})
}

func (s *GRPCClient) GetDailyAchievements(ctx context.Context) (*models.DailyAchievements, error) {
	return call[*models.DailyAchievements](ctx, s, rpc.MethodGetDailyAchievements, struct{}{})
}

// generationError extracts the feedback failure details attached to st, if any.
func generationError(st *status.Status) (*GenerationError, bool) {
	for _, d := range st.Details() {
		doc, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		var fe rpc.FeedbackErrorDetails
		if err := rpc.FromStruct(doc, &fe); err != nil || fe.Error == "" {
			continue
		}
		return &GenerationError{Message: fe.Error, Details: fe.Details}, true
	}
	return nil, false
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	case codes.Internal:
		if ge, ok := generationError(st); ok {
			return ge
		}
		return fmt.Errorf("rpc error: %w", err)
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
