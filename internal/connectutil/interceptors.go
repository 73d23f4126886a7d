package connectutil

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/pitabwire/frame/security"
	connectInterceptors "github.com/pitabwire/frame/security/interceptors/connect"
	securityhttp "github.com/pitabwire/frame/security/interceptors/httptor"
)

// SessionScoped is implemented by request messages addressed to one reading
// session. The logging interceptor tags such calls with the session id.
type SessionScoped interface {
	GetSessionId() string
}

// DefaultOptions returns the default Connect handler options (logging only, no auth).
func DefaultOptions() []connect.HandlerOption {
	return []connect.HandlerOption{
		connect.WithInterceptors(
			NewLoggingInterceptor(),
		),
	}
}

// AuthenticatedOptions returns Connect handler options with frame's security
// interceptor chain followed by the logging interceptor.
func AuthenticatedOptions(ctx context.Context, authenticator security.Authenticator) ([]connect.HandlerOption, error) {
	interceptors, err := connectInterceptors.DefaultList(ctx, authenticator)
	if err != nil {
		return nil, err
	}
	interceptors = append(interceptors, NewLoggingInterceptor())

	return []connect.HandlerOption{
		connect.WithInterceptors(interceptors...),
	}, nil
}

// HandlerOptions picks the authenticated chain when auth is enabled.
func HandlerOptions(ctx context.Context, authEnabled bool, authenticator security.Authenticator) ([]connect.HandlerOption, error) {
	if !authEnabled || authenticator == nil {
		return DefaultOptions(), nil
	}
	return AuthenticatedOptions(ctx, authenticator)
}

// AuthenticatedHTTPMiddleware wraps an http.Handler with frame's
// authentication middleware, validating bearer tokens on REST endpoints.
func AuthenticatedHTTPMiddleware(handler http.Handler, authenticator security.Authenticator) http.Handler {
	return securityhttp.AuthenticationMiddleware(handler, authenticator)
}

// DefaultClientOptions returns the default Connect client options.
func DefaultClientOptions() []connect.ClientOption {
	return []connect.ClientOption{
		connect.WithInterceptors(
			NewLoggingInterceptor(),
		),
	}
}

type loggingInterceptor struct{}

// NewLoggingInterceptor creates an interceptor that logs procedure, duration,
// session and error for unary and streaming calls.
func NewLoggingInterceptor() connect.Interceptor {
	return &loggingInterceptor{}
}

func rpcAttrs(procedure string, streaming bool, msg any) []any {
	attrs := []any{
		slog.String("procedure", procedure),
		slog.Bool("streaming", streaming),
	}
	if s, ok := msg.(SessionScoped); ok && s.GetSessionId() != "" {
		attrs = append(attrs, slog.String("session_id", s.GetSessionId()))
	}
	return attrs
}

func (l *loggingInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		start := time.Now()
		resp, err := next(ctx, req)

		attrs := append(rpcAttrs(req.Spec().Procedure, false, req.Any()),
			slog.Duration("duration", time.Since(start)))
		if err != nil {
			attrs = append(attrs, slog.String("code", connect.CodeOf(err).String()), slog.String("error", err.Error()))
			slog.WarnContext(ctx, "rpc error", attrs...)
		} else {
			slog.DebugContext(ctx, "rpc ok", attrs...)
		}
		return resp, err
	}
}

func (l *loggingInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return func(ctx context.Context, spec connect.Spec) connect.StreamingClientConn {
		slog.DebugContext(ctx, "rpc stream client start", rpcAttrs(spec.Procedure, true, nil)...)
		return next(ctx, spec)
	}
}

func (l *loggingInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		slog.DebugContext(ctx, "rpc stream handler start", rpcAttrs(conn.Spec().Procedure, true, nil)...)

		err := next(ctx, conn)

		attrs := append(rpcAttrs(conn.Spec().Procedure, true, nil),
			slog.Duration("duration", time.Since(start)))
		if err != nil {
			attrs = append(attrs, slog.String("code", connect.CodeOf(err).String()), slog.String("error", err.Error()))
			slog.WarnContext(ctx, "rpc stream error", attrs...)
		} else {
			slog.DebugContext(ctx, "rpc stream ok", attrs...)
		}
		return err
	}
}
